package tasks

// Task is a single entry in the task list. Its number is its position in the
// list, so it carries no identifier of its own.
type Task struct {
	Name      string
	Completed bool
}

// NewTask creates an incomplete task.
func NewTask(name string) Task {
	return Task{Name: name}
}

// Complete marks the task as done. There is no way back.
func (t *Task) Complete() {
	t.Completed = true
}
