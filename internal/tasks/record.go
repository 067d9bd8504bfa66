package tasks

import (
	"strconv"
	"strings"

	ierr "github.com/Y3K/todos/internal/errors"
)

// Separator splits the completion flag from the task name on disk.
// It is not escaped inside names.
const Separator = "|"

const (
	flagIncomplete = "0"
	flagCompleted  = "1"
)

// Encode renders a task as one record line, without the trailing newline.
func Encode(t Task) string {
	flag := flagIncomplete
	if t.Completed {
		flag = flagCompleted
	}
	return flag + Separator + t.Name
}

// Decode parses one record line. The line must split into exactly a flag and
// a name. Any non-negative integer flag other than 1 decodes as incomplete.
func Decode(line string) (Task, error) {
	parts := strings.Split(strings.TrimSuffix(line, "\r"), Separator)
	if len(parts) != 2 {
		return Task{}, ierr.NewErrorf("failed to parse task %q: expected 2 fields, got %d", line, len(parts)).
			WithHint("task names cannot contain '" + Separator + "'").
			Mark(ierr.ErrParse)
	}

	flag, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return Task{}, ierr.NewErrorf("failed to parse task %q: flag %q is not a number", line, parts[0]).
			Mark(ierr.ErrParse)
	}

	return Task{
		Name:      parts[1],
		Completed: flag == 1,
	}, nil
}

// isStrictFlag reports whether a raw flag field is one Encode would produce.
func isStrictFlag(raw string) bool {
	return raw == flagIncomplete || raw == flagCompleted
}
