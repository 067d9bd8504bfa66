package testutil

import (
	"strings"

	"github.com/Y3K/todos/internal/tasks"
)

// SampleTasks returns a small mixed list of completed and open tasks.
func SampleTasks() []tasks.Task {
	return []tasks.Task{
		{Name: "buy milk"},
		{Name: "file taxes", Completed: true},
		{Name: "call mom"},
	}
}

// TaskFileContent renders list in the on-disk record format.
func TaskFileContent(list []tasks.Task) string {
	var b strings.Builder
	for _, t := range list {
		b.WriteString(tasks.Encode(t))
		b.WriteByte('\n')
	}
	return b.String()
}

// SetupTasks writes list to the environment's task file.
func (e *TestEnv) SetupTasks(list []tasks.Task) {
	e.t.Helper()
	e.WriteTaskFile(TaskFileContent(list))
}
