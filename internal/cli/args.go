package cli

import (
	"math"
	"strconv"

	ierr "github.com/Y3K/todos/internal/errors"
)

// parseTaskNumber reads the task number from the first argument as an
// unsigned integer, so signs ("-0", "-3") are rejected. Anything after the
// first argument is ignored.
func parseTaskNumber(args []string) (uint64, error) {
	if len(args) == 0 {
		return 0, ierr.NewError("missing task number").
			Mark(ierr.ErrMissingArgument)
	}

	n, err := strconv.ParseUint(args[0], 10, 0)
	if err != nil {
		return 0, ierr.NewErrorf("task number %q is not a non-negative integer", args[0]).
			Mark(ierr.ErrInvalidNumber)
	}
	return n, nil
}

// taskIndex converts a parsed task number to a list index. A number too large
// for an int cannot address any task.
func taskIndex(n uint64) (int, error) {
	if n > math.MaxInt {
		return 0, ierr.NewErrorf("task %d does not exist", n).
			Mark(ierr.ErrMissingTask)
	}
	return int(n), nil
}
