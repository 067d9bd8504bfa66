// Package testutil provides reusable test utilities for todos tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Y3K/todos/internal/config"
	"gopkg.in/yaml.v3"
)

// TestEnv provides access to isolated test directories
type TestEnv struct {
	Home       string // Mocked HOME directory
	ProjectDir string // Test project directory
	GlobalDir  string // ~/.todos equivalent
	TaskFile   string // Backing task file configured for the environment
	t          *testing.T
}

// SetupTestEnv creates an isolated test environment with mocked HOME and a
// global config pointing the store at a task file inside the temp project.
// Uses t.TempDir() for automatic cleanup and t.Setenv() for automatic env restoration.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpHome := t.TempDir()
	tmpProject := t.TempDir()

	globalDir := filepath.Join(tmpHome, ".todos")
	if err := os.MkdirAll(globalDir, 0755); err != nil {
		t.Fatalf("Failed to create global .todos: %v", err)
	}

	// Set HOME to temp directory (auto-restored after test)
	t.Setenv("HOME", tmpHome)

	env := &TestEnv{
		Home:       tmpHome,
		ProjectDir: tmpProject,
		GlobalDir:  globalDir,
		TaskFile:   filepath.Join(tmpProject, "tasks.txt"),
		t:          t,
	}

	cfg := config.DefaultConfig()
	cfg.Store.File = env.TaskFile
	env.WriteConfig(filepath.Join(globalDir, "config.yaml"), cfg)

	return env
}

// Config returns the configuration SetupTestEnv wrote.
func (e *TestEnv) Config() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Store.File = e.TaskFile
	return cfg
}

// WriteConfig writes cfg as YAML to path.
func (e *TestEnv) WriteConfig(path string, cfg *config.Config) {
	e.t.Helper()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		e.t.Fatalf("Failed to marshal config: %v", err)
	}
	e.CreateFile(path, string(data))
}

// CreateFile creates a file with the given content in the test environment.
func (e *TestEnv) CreateFile(path, content string) {
	e.t.Helper()

	fullPath := path
	if !filepath.IsAbs(path) {
		fullPath = filepath.Join(e.ProjectDir, path)
	}

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		e.t.Fatalf("Failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		e.t.Fatalf("Failed to write file %s: %v", fullPath, err)
	}
}

// WriteTaskFile replaces the backing task file content.
func (e *TestEnv) WriteTaskFile(content string) {
	e.t.Helper()
	e.CreateFile(e.TaskFile, content)
}

// ReadTaskFile returns the backing task file content, or "" if it does not exist.
func (e *TestEnv) ReadTaskFile() string {
	e.t.Helper()

	data, err := os.ReadFile(e.TaskFile)
	if os.IsNotExist(err) {
		return ""
	}
	if err != nil {
		e.t.Fatalf("Failed to read task file %s: %v", e.TaskFile, err)
	}
	return string(data)
}

// FileExists checks if a file exists in the test environment.
func (e *TestEnv) FileExists(path string) bool {
	e.t.Helper()

	fullPath := path
	if !filepath.IsAbs(path) {
		fullPath = filepath.Join(e.ProjectDir, path)
	}

	_, err := os.Stat(fullPath)
	return err == nil
}
