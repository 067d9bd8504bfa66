package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Y3K/todos/internal/tasks"
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:                "list",
		Short:              "List all tasks",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withStore(func(store *tasks.Store) error {
				return printTasks(cmd.OutOrStdout(), store.Tasks())
			})
		},
	}
}

// printTasks writes the header row and one "<index>|<flag>|<name>" row per task.
func printTasks(w io.Writer, list []tasks.Task) error {
	if _, err := fmt.Fprintln(w, "#"+tasks.Separator+"C"+tasks.Separator+"Task"); err != nil {
		return err
	}
	for i, t := range list {
		if _, err := fmt.Fprintln(w, strconv.Itoa(i)+tasks.Separator+tasks.Encode(t)); err != nil {
			return err
		}
	}
	return nil
}
