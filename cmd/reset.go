package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rolldo-dev/rolldo/internal/ports"
)

// resetCmd clears a stuck or stale timer without touching the tasks.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the timer to idle",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := resetTimer(store); err != nil {
			return err
		}
		fmt.Println("Timer reset")
		return nil
	},
}

// resetTimer loads the snapshot, resets the timer, and saves it back.
func resetTimer(s ports.StateStore) error {
	state := s.Load()
	state.Timer.Reset()
	return s.Save(state)
}
