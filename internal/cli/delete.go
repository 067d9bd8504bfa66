package cli

import (
	"fmt"

	"github.com/Y3K/todos/internal/tasks"
	"github.com/spf13/cobra"
)

func newDeleteCmd(a *app) *cobra.Command {
	var number uint64

	return &cobra.Command{
		Use:   "delete <n>",
		Short: "Delete a task, renumbering the ones after it",
		Args: func(cmd *cobra.Command, args []string) (err error) {
			number, err = parseTaskNumber(args)
			return err
		},
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(store *tasks.Store) error {
				fmt.Fprintf(cmd.OutOrStdout(), "Deleting task: %d\n", number)
				index, err := taskIndex(number)
				if err != nil {
					return err
				}
				if _, err := store.Remove(index); err != nil {
					return err
				}
				return store.Save()
			})
		},
	}
}
