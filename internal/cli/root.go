package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/Y3K/todos/internal/config"
	ierr "github.com/Y3K/todos/internal/errors"
	"github.com/Y3K/todos/internal/logger"
	"github.com/Y3K/todos/internal/tasks"
	"github.com/spf13/cobra"
)

const (
	ExitSuccess = 0
	ExitFailure = 1
)

func init() {
	// command words match regardless of case; arguments are taken verbatim
	cobra.EnableCaseInsensitive = true
}

// app carries what the commands of one invocation share.
type app struct {
	out        io.Writer
	loadConfig func() (*config.Config, error)
}

// Execute runs one invocation with the given arguments (without the program
// name) and returns the process exit code. Errors are reported on stderr.
func Execute(args []string, stdout, stderr io.Writer) int {
	return run(&app{out: stdout, loadConfig: config.Load}, args, stderr)
}

func run(a *app, args []string, stderr io.Writer) int {
	// cobra reads os.Args when given nil
	if args == nil {
		args = []string{}
	}

	// cobra always answers its shell completion requests, whatever the
	// completion options say
	if len(args) > 0 && isShellCompRequest(args[0]) {
		reportError(stderr, unsupportedCommand(args[0]))
		return ExitFailure
	}

	rootCmd := newRootCmd(a)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		reportError(stderr, err)
		return ExitFailure
	}
	return ExitSuccess
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "todos",
		Short: "todos - a minimal task tracker",
		Long: `todos keeps a numbered task list in a flat text file.

Commands:
  add <text>      add a task
  list            show all tasks
  complete <n>    mark task n as completed
  delete <n>      remove task n (later tasks are renumbered)`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return ierr.NewError("missing command").
					WithHint("use one of: add, list, complete, delete").
					Mark(ierr.ErrMissingArgument)
			}
			return unsupportedCommand(args[0])
		},
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
	}

	// no built-in help or completion commands
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetHelpCommand(newUnsupportedCmd("help"))

	rootCmd.SetOut(a.out)
	rootCmd.SetErr(io.Discard)

	rootCmd.AddCommand(newAddCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newCompleteCmd(a))
	rootCmd.AddCommand(newDeleteCmd(a))

	return rootCmd
}

func newUnsupportedCmd(name string) *cobra.Command {
	return &cobra.Command{
		Use:                name,
		Hidden:             true,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return unsupportedCommand(name)
		},
	}
}

func isShellCompRequest(word string) bool {
	return strings.EqualFold(word, cobra.ShellCompRequestCmd) ||
		strings.EqualFold(word, cobra.ShellCompNoDescRequestCmd)
}

func unsupportedCommand(name string) error {
	return ierr.NewErrorf("unsupported command %q", name).
		WithHint("use one of: add, list, complete, delete").
		Mark(ierr.ErrUnsupportedCommand)
}

// withStore loads the configuration, opens the task store and hands it to fn.
// The store is closed afterwards.
func (a *app) withStore(fn func(*tasks.Store) error) (err error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	log, err := logger.NewLogger(cfg.Log.Level)
	if err != nil {
		return ierr.WithError(err).
			WithMessage("failed to create logger").
			Mark(ierr.ErrConfig)
	}
	defer log.Sync()

	store, err := tasks.Open(cfg.Store.File, log)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	return fn(store)
}

// reportError writes err to w with a prefix telling a bad invocation apart
// from a failure while running the command.
func reportError(w io.Writer, err error) {
	prefix := "App error"
	if ierr.IsCommandError(err) {
		prefix = "Command error"
	}
	fmt.Fprintf(w, "%s: %s\n", prefix, err)

	for _, hint := range ierr.Hints(err) {
		fmt.Fprintf(w, "  hint: %s\n", strings.TrimSpace(hint))
	}
}
