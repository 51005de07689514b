// Package cmd provides the CLI commands for the Rolldo application.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rolldo-dev/rolldo/internal/adapters/notification"
	"github.com/rolldo-dev/rolldo/internal/adapters/storage"
	"github.com/rolldo-dev/rolldo/internal/adapters/tui"
	"github.com/rolldo-dev/rolldo/internal/config"
	"github.com/rolldo-dev/rolldo/internal/engine"
)

var (
	// Version info (set at build time via ldflags)
	Version = "dev"

	// Global flags
	stateFile string

	// Global dependencies
	appConfig *config.Config
	store     *storage.FileStore
	notifier  *notification.DesktopNotifier
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "rolldo",
	Short: "Rolldo - roll the dice, do the task",
	Long: `Rolldo is a terminal task tracker with a randomized time-boxing
mechanic: roll for a duration, roll for one of your six tasks, then run the
countdown.

Run "rolldo" with no arguments to open the interactive board.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeServices()
	},
	RunE: runBoard,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&stateFile, "state", "", "Path to the state snapshot (default: ~/.rolldo/state.json)")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("Rolldo\nVersion: {{.Version}}\n")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(tasksCmd)
	rootCmd.AddCommand(resetCmd)
}

// initializeServices sets up configuration, the snapshot store, and the
// notifier.
func initializeServices() error {
	var err error
	appConfig, err = config.Load()
	if err != nil {
		// If config loading fails, use defaults
		appConfig = config.DefaultConfig()
	}

	path := stateFile
	if path == "" {
		path = appConfig.Storage.StateFile
	}
	if path == "" {
		path, err = storage.DefaultStatePath()
		if err != nil {
			return fmt.Errorf("failed to resolve state path: %w", err)
		}
	}

	store = storage.NewFileStore(path)
	notifier = notification.New(appConfig.Notifications.Enabled)
	return nil
}

// runBoard launches the interactive Bubbletea board.
func runBoard(cmd *cobra.Command, args []string) error {
	state := store.Load()

	eng := engine.New(state, store, notifier)
	eng.SetSweepConfig(appConfig.Animation.ToSweepConfig())

	model := tui.NewModel(eng, appConfig.Theme, state)
	program := tea.NewProgram(model, tea.WithAltScreen())

	surface := tui.NewSurface()
	surface.Attach(program)
	eng.SetSurface(surface)
	eng.SetConfirmer(surface)

	_, err := program.Run()
	eng.Close()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
