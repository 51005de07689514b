package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rolldo-dev/rolldo/internal/domain"
	"github.com/rolldo-dev/rolldo/internal/ports"
)

// tasksCmd lists the six task slots.
var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "List the six task slots",
	RunE: func(cmd *cobra.Command, args []string) error {
		state := store.Load()
		printStatus(os.Stdout, state)
		return nil
	},
}

// tasksSetCmd edits one slot from the command line.
var tasksSetCmd = &cobra.Command{
	Use:   "set <slot> <text>",
	Short: "Set the text of a task slot (1-6)",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid slot %q: %w", args[0], err)
		}
		text := strings.Join(args[1:], " ")
		if err := setTask(store, slot-1, text); err != nil {
			return err
		}
		fmt.Printf("Task %d updated\n", slot)
		return nil
	},
}

func init() {
	tasksCmd.AddCommand(tasksSetCmd)
}

// setTask loads the snapshot, edits one slot, and saves it back.
func setTask(s ports.StateStore, index int, text string) error {
	if index < 0 || index >= domain.MaxTasks {
		return domain.ErrTaskIndexOutOfRange
	}
	state := s.Load()
	state.Tasks[index].SetText(text)
	return s.Save(state)
}
