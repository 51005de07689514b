package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rolldo-dev/rolldo/internal/domain"
)

// statusCmd prints the current snapshot without opening the board.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the task board and timer state",
	RunE: func(cmd *cobra.Command, args []string) error {
		state := store.Load()
		printStatus(os.Stdout, state)
		return nil
	},
}

// printStatus writes a plain-text rendering of the snapshot.
func printStatus(w io.Writer, state domain.AppState) {
	fmt.Fprintln(w, "📝 Tasks")
	for i := range state.Tasks {
		task := state.Tasks[i]
		mark := " "
		if task.Completed {
			mark = "✓"
		}
		text := task.Text
		if text == "" {
			text = "(empty)"
		}
		fmt.Fprintf(w, "  [%d] [%s] %s\n", i+1, mark, text)
	}

	timer := state.Timer
	switch {
	case timer.Running && timer.IsBreak:
		fmt.Fprintf(w, "\n⏱  On a break, %s remaining\n", formatSeconds(timer.RemainingSeconds))
	case timer.Running && timer.TaskIndex != nil:
		fmt.Fprintf(w, "\n⏱  Task %d running, %s remaining\n", *timer.TaskIndex+1, formatSeconds(timer.RemainingSeconds))
	case timer.RemainingSeconds > 0:
		fmt.Fprintf(w, "\n⏱  Paused, %s remaining\n", formatSeconds(timer.RemainingSeconds))
	default:
		fmt.Fprintln(w, "\n⏱  No timer running")
	}
}

// formatSeconds renders a second count as MM:SS.
func formatSeconds(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
