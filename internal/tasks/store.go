package tasks

import (
	"bufio"
	"io"
	"os"
	"strings"

	ierr "github.com/Y3K/todos/internal/errors"
	"github.com/Y3K/todos/internal/logger"
	"github.com/samber/lo"
)

// maxRecordSize bounds a single line in the task file.
const maxRecordSize = 1 << 20

// Store holds the ordered task list for one invocation together with the open
// backing file. Every Save rewrites the whole file from the in-memory list.
//
// A Store is not safe for concurrent use, and nothing stops two processes
// from rewriting the same file at once; the last Save wins.
type Store struct {
	path  string
	file  *os.File
	tasks []Task
	log   *logger.Logger
}

// Open opens (creating if needed) the task file at path and loads it.
// A new or empty file yields an empty list.
func Open(path string, log *logger.Logger) (*Store, error) {
	if log == nil {
		log = logger.NewNopLogger()
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to open task file").
			Mark(ierr.ErrIO)
	}

	tasks, err := load(file, log)
	if err != nil {
		file.Close()
		return nil, err
	}

	s := &Store{
		path:  path,
		file:  file,
		tasks: tasks,
		log:   log,
	}

	total, completed := s.Stats()
	log.Debugw("loaded tasks", "path", path, "total", total, "completed", completed)

	return s, nil
}

// load decodes every record in r. The first bad line aborts the load.
func load(r io.Reader, log *logger.Logger) ([]Task, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxRecordSize)

	tasks := []Task{}
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		task, err := Decode(line)
		if err != nil {
			return nil, ierr.WithError(err).
				WithMessagef("line %d", lineNo).
				Mark(ierr.ErrParse)
		}

		if flag, _, _ := strings.Cut(line, Separator); !isStrictFlag(flag) {
			log.Debugw("treating unknown completion flag as incomplete", "line", lineNo, "flag", flag)
		}

		tasks = append(tasks, task)
	}

	if err := scanner.Err(); err != nil {
		return nil, ierr.WithError(err).
			WithMessage("failed to read task file").
			Mark(ierr.ErrIO)
	}

	return tasks, nil
}

// Save truncates the backing file and writes every task back, one per line.
// A failure part way through is not rolled back.
func (s *Store) Save() error {
	if err := s.file.Truncate(0); err != nil {
		return ierr.WithError(err).
			WithMessage("failed to truncate task file").
			Mark(ierr.ErrIO)
	}

	if _, err := s.file.Seek(0, io.SeekStart); err != nil {
		return ierr.WithError(err).
			WithMessage("failed to rewind task file").
			Mark(ierr.ErrIO)
	}

	w := bufio.NewWriter(s.file)
	for _, t := range s.tasks {
		if _, err := w.WriteString(Encode(t) + "\n"); err != nil {
			return ierr.WithError(err).
				WithMessage("failed to write task file").
				Mark(ierr.ErrIO)
		}
	}

	if err := w.Flush(); err != nil {
		return ierr.WithError(err).
			WithMessage("failed to flush task file").
			Mark(ierr.ErrIO)
	}

	if err := s.file.Sync(); err != nil {
		return ierr.WithError(err).
			WithMessage("failed to sync task file").
			Mark(ierr.ErrIO)
	}

	total, completed := s.Stats()
	s.log.Debugw("saved tasks", "path", s.path, "total", total, "completed", completed)

	return nil
}

// Close releases the backing file.
func (s *Store) Close() error {
	if err := s.file.Close(); err != nil {
		return ierr.WithError(err).
			WithMessage("failed to close task file").
			Mark(ierr.ErrIO)
	}
	return nil
}

// Tasks returns a copy of the list in index order.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Add appends an incomplete task. The caller saves.
func (s *Store) Add(name string) Task {
	t := NewTask(name)
	s.tasks = append(s.tasks, t)
	return t
}

// Get returns the task at index for in-place mutation.
func (s *Store) Get(index int) (*Task, error) {
	if err := s.checkIndex(index); err != nil {
		return nil, err
	}
	return &s.tasks[index], nil
}

// Complete marks the task at index as completed. The caller saves.
func (s *Store) Complete(index int) error {
	t, err := s.Get(index)
	if err != nil {
		return err
	}
	t.Complete()
	return nil
}

// Remove deletes the task at index and returns it. Every later task moves
// down by one position. The caller saves.
func (s *Store) Remove(index int) (Task, error) {
	if err := s.checkIndex(index); err != nil {
		return Task{}, err
	}
	t := s.tasks[index]
	s.tasks = append(s.tasks[:index], s.tasks[index+1:]...)
	return t, nil
}

// Stats returns the total and completed task counts.
func (s *Store) Stats() (total, completed int) {
	return len(s.tasks), lo.CountBy(s.tasks, func(t Task) bool {
		return t.Completed
	})
}

func (s *Store) checkIndex(index int) error {
	if index < 0 || index >= len(s.tasks) {
		return ierr.NewErrorf("task %d does not exist", index).
			WithHintf("there are %d tasks, numbered from 0", len(s.tasks)).
			WithReportableDetails(map[string]any{"index": index, "len": len(s.tasks)}).
			Mark(ierr.ErrMissingTask)
	}
	return nil
}
