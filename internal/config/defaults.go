package config

const (
	// DefaultTaskFile is the backing file used when no config overrides it
	DefaultTaskFile = "/tmp/tasks.txt"

	// DefaultLogLevel keeps normal runs quiet
	DefaultLogLevel = "warn"
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Store: StoreConfig{
			File: DefaultTaskFile,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}
