// Package tasks implements the task list and its flat-file persistence.
//
// # File Format
//
// The task file holds one record per line, in list order, with no header:
//
//	0|buy milk
//	1|file taxes
//	0|call mom
//
// The first field is the completion flag (1 completed, 0 not), the second is
// the task name written verbatim. The separator is never escaped, so a name
// containing '|' produces a line that fails to load. When reading, any
// non-negative integer flag other than 1 is accepted as incomplete.
//
// # Numbering
//
// A task's number is its position in the list. Removing a task renumbers every
// task after it.
//
// # Persistence
//
// A Store keeps the file open for its lifetime. Save truncates the file and
// writes the whole list again, so after a successful Save the file reflects the
// in-memory list exactly. A crash during Save can leave the file truncated.
//
// # Usage
//
//	store, err := tasks.Open("/tmp/tasks.txt", log)
//	if err != nil {
//		return err
//	}
//	defer store.Close()
//
//	store.Add("buy milk")
//	if err := store.Complete(0); err != nil {
//		return err
//	}
//	err = store.Save()
package tasks
