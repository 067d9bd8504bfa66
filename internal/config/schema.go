package config

// Config represents the full todos configuration
type Config struct {
	Version string `yaml:"version" mapstructure:"version"`

	// Backing task file
	Store StoreConfig `yaml:"store" mapstructure:"store"`

	// Diagnostic logging
	Log LogConfig `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the task store
type StoreConfig struct {
	File string `yaml:"file" mapstructure:"file"`
}

// LogConfig configures diagnostic logging on stderr
type LogConfig struct {
	Level string `yaml:"level" mapstructure:"level"`
}
