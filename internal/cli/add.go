package cli

import (
	"fmt"

	ierr "github.com/Y3K/todos/internal/errors"
	"github.com/Y3K/todos/internal/tasks"
	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>",
		Short: "Add a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return ierr.NewError("missing task text").
					WithHint(`usage: todos add "<text>"`).
					Mark(ierr.ErrMissingArgument)
			}
			return nil
		},
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := args[0]
			return a.withStore(func(store *tasks.Store) error {
				fmt.Fprintf(cmd.OutOrStdout(), "Adding task: %s\n", text)
				store.Add(text)
				return store.Save()
			})
		},
	}
}
