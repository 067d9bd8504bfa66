package tasks

import (
	"os"
	"path/filepath"
	"testing"

	ierr "github.com/Y3K/todos/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openStore(t *testing.T, path string) *Store {
	t.Helper()
	s, err := Open(path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func writeTaskFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func readTaskFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestOpen(t *testing.T) {
	t.Run("it creates a missing file and starts empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.txt")

		s := openStore(t, path)

		assert.Empty(t, s.Tasks())
		assert.FileExists(t, path)
	})

	t.Run("it loads records in file order", func(t *testing.T) {
		path := writeTaskFile(t, "0|buy milk\n1|file taxes\n0|call mom\n")

		s := openStore(t, path)

		assert.Equal(t, []Task{
			{Name: "buy milk"},
			{Name: "file taxes", Completed: true},
			{Name: "call mom"},
		}, s.Tasks())
	})

	t.Run("it accepts a last line without newline", func(t *testing.T) {
		path := writeTaskFile(t, "0|a\n1|b")

		s := openStore(t, path)

		assert.Len(t, s.Tasks(), 2)
	})

	t.Run("it fails on a malformed line and names it", func(t *testing.T) {
		path := writeTaskFile(t, "0|a\n0|b|c\n0|d\n")

		_, err := Open(path, nil)

		require.Error(t, err)
		assert.True(t, ierr.IsParse(err))
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("it fails with an io error when the file cannot be opened", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing-dir", "tasks.txt")

		_, err := Open(path, nil)

		require.Error(t, err)
		assert.True(t, ierr.IsIO(err))
	})
}

func TestSave(t *testing.T) {
	t.Run("it persists added tasks", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.txt")
		s := openStore(t, path)

		s.Add("buy milk")
		s.Add("file taxes")
		require.NoError(t, s.Save())

		assert.Equal(t, "0|buy milk\n0|file taxes\n", readTaskFile(t, path))
	})

	t.Run("it truncates when the list shrinks", func(t *testing.T) {
		path := writeTaskFile(t, "0|a rather long task name\n0|another long task name\n")
		s := openStore(t, path)

		_, err := s.Remove(0)
		require.NoError(t, err)
		require.NoError(t, s.Save())

		assert.Equal(t, "0|another long task name\n", readTaskFile(t, path))
	})

	t.Run("it rewrites lenient flags canonically", func(t *testing.T) {
		path := writeTaskFile(t, "2|odd\n")
		s := openStore(t, path)

		require.NoError(t, s.Save())

		assert.Equal(t, "0|odd\n", readTaskFile(t, path))
	})

	t.Run("it can save repeatedly through the same handle", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.txt")
		s := openStore(t, path)

		s.Add("one")
		require.NoError(t, s.Save())
		s.Add("two")
		require.NoError(t, s.Save())

		assert.Equal(t, "0|one\n0|two\n", readTaskFile(t, path))
	})

	t.Run("reloading reproduces the in-memory list", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tasks.txt")
		s := openStore(t, path)

		s.Add("a")
		s.Add("b")
		s.Add("c")
		require.NoError(t, s.Complete(1))
		_, err := s.Remove(0)
		require.NoError(t, err)
		require.NoError(t, s.Save())

		reloaded := openStore(t, path)
		assert.Equal(t, s.Tasks(), reloaded.Tasks())
	})
}

func TestComplete(t *testing.T) {
	path := writeTaskFile(t, "0|only\n")
	s := openStore(t, path)

	require.NoError(t, s.Complete(0))
	assert.True(t, s.Tasks()[0].Completed)

	// completing twice is harmless
	require.NoError(t, s.Complete(0))

	err := s.Complete(5)
	require.Error(t, err)
	assert.True(t, ierr.IsMissingTask(err))
}

func TestGet(t *testing.T) {
	path := writeTaskFile(t, "0|a\n0|b\n")
	s := openStore(t, path)

	task, err := s.Get(1)
	require.NoError(t, err)
	task.Name = "renamed"
	assert.Equal(t, "renamed", s.Tasks()[1].Name)

	for _, index := range []int{-1, 2, 100} {
		_, err := s.Get(index)
		assert.True(t, ierr.IsMissingTask(err), "index %d", index)
	}
}

func TestRemove(t *testing.T) {
	t.Run("it renumbers later tasks", func(t *testing.T) {
		path := writeTaskFile(t, "0|a\n0|b\n0|c\n")
		s := openStore(t, path)

		removed, err := s.Remove(1)
		require.NoError(t, err)

		assert.Equal(t, Task{Name: "b"}, removed)
		assert.Len(t, s.Tasks(), 2)
		task, err := s.Get(1)
		require.NoError(t, err)
		assert.Equal(t, "c", task.Name)
	})

	t.Run("it rejects an index equal to the length", func(t *testing.T) {
		path := writeTaskFile(t, "0|a\n")
		s := openStore(t, path)

		_, err := s.Remove(1)

		assert.True(t, ierr.IsMissingTask(err))
		assert.Len(t, s.Tasks(), 1)
	})
}

func TestTasksReturnsCopy(t *testing.T) {
	path := writeTaskFile(t, "0|a\n")
	s := openStore(t, path)

	list := s.Tasks()
	list[0].Name = "changed"

	assert.Equal(t, "a", s.Tasks()[0].Name)
}

func TestStats(t *testing.T) {
	path := writeTaskFile(t, "0|a\n1|b\n1|c\n")
	s := openStore(t, path)

	total, completed := s.Stats()
	assert.Equal(t, 3, total)
	assert.Equal(t, 2, completed)
}
