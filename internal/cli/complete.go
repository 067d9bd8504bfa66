package cli

import (
	"fmt"

	"github.com/Y3K/todos/internal/tasks"
	"github.com/spf13/cobra"
)

func newCompleteCmd(a *app) *cobra.Command {
	var number uint64

	return &cobra.Command{
		Use:   "complete <n>",
		Short: "Mark a task as completed",
		Args: func(cmd *cobra.Command, args []string) (err error) {
			number, err = parseTaskNumber(args)
			return err
		},
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(store *tasks.Store) error {
				fmt.Fprintf(cmd.OutOrStdout(), "Completing task: %d\n", number)
				index, err := taskIndex(number)
				if err != nil {
					return err
				}
				if err := store.Complete(index); err != nil {
					return err
				}
				return store.Save()
			})
		},
	}
}
