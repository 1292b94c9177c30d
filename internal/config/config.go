package config

// Config is the CLI runtime configuration. Values come from an optional
// YAML file, overridden by environment variables, overridden again by
// command-line flags (handled in cmd).
type Config struct {
	// Path locates the box: a JSON file for the file backend, a
	// database file for the sqlite backend. Empty means the default
	// location under the user's home directory.
	Path string `yaml:"path" env:"CARDBOX_PATH"`

	Backend      string `yaml:"backend" env:"CARDBOX_BACKEND" env-default:"file"`
	DefaultColor string `yaml:"default_color" env:"CARDBOX_DEFAULT_COLOR"`
	LogLevel     string `yaml:"log_level" env:"CARDBOX_LOG_LEVEL" env-default:"warn"`
	Pretty       bool   `yaml:"pretty" env:"CARDBOX_PRETTY" env-default:"true"`
}
