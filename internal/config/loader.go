package config

import (
	"os"
	"path/filepath"
	"strings"

	ierr "github.com/Y3K/todos/internal/errors"
	"github.com/Y3K/todos/internal/logger"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Load loads and merges configuration from global and project sources
func Load() (*Config, error) {
	return LoadFrom(GlobalConfigPath(), ProjectConfigPath())
}

// LoadFrom merges the given config files over the defaults, in order, so later
// files override earlier ones. Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	present := lo.Filter(paths, func(path string, _ int) bool {
		if path == "" {
			return false
		}
		_, err := os.Stat(path)
		return err == nil
	})

	for _, path := range present {
		if err := loadFile(path, cfg); err != nil {
			return nil, ierr.WithError(err).
				WithMessagef("failed to load config %s", path).
				Mark(ierr.ErrConfig)
		}
	}

	cfg.Store.File = expandHomePath(cfg.Store.File)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}

// Validate checks that the merged configuration is usable
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Store.File) == "" {
		return ierr.NewError("store.file must not be empty").
			WithHint("set store.file in ~/.todos/config.yaml").
			Mark(ierr.ErrConfig)
	}
	if !logger.ValidLevel(c.Log.Level) {
		return ierr.NewErrorf("unknown log level %q", c.Log.Level).
			WithHint("use one of debug, info, warn, error").
			Mark(ierr.ErrConfig)
	}
	return nil
}

// GlobalConfigPath returns the path to the global config file
func GlobalConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".todos", "config.yaml")
}

// ProjectConfigPath returns the path to the project config file
func ProjectConfigPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return filepath.Join(cwd, ".todos", "config.yaml")
}

func expandHomePath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
