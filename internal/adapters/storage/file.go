// Package storage persists the application snapshot as a single JSON
// document. The snapshot is all-or-nothing: anything that fails to decode or
// validate is discarded in favor of the fresh default state.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rolldo-dev/rolldo/internal/domain"
	"github.com/rolldo-dev/rolldo/internal/ports"
)

// FileStore implements ports.StateStore on a JSON file.
type FileStore struct {
	path string
}

// Ensure FileStore implements ports.StateStore.
var _ ports.StateStore = (*FileStore)(nil)

// NewFileStore creates a store backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultStatePath returns the standard snapshot location, ~/.rolldo/state.json.
func DefaultStatePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".rolldo", "state.json"), nil
}

// Load reads the snapshot. A missing file, malformed JSON or an invariant
// violation all yield the default state; load never fails.
func (s *FileStore) Load() domain.AppState {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return domain.NewAppState()
	}

	var state domain.AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return domain.NewAppState()
	}
	if !state.Validate() {
		return domain.NewAppState()
	}
	return state
}

// Save overwrites the snapshot, creating the parent directory if needed.
func (s *FileStore) Save(state domain.AppState) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write state: %w", err)
	}
	return nil
}
