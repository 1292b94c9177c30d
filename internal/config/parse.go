package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Parse loads the configuration. A .env file in the working directory
// is honored first, then the optional YAML file, then the environment.
func Parse(file string) (Config, error) {
	godotenv.Load()

	var cfg Config
	if file != "" {
		if err := cleanenv.ReadConfig(file, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", file, err)
		}
		return cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// ResolvePath returns the box location, defaulting to a file under the
// user's home directory when unset.
func (c Config) ResolvePath() (string, error) {
	if c.Path != "" {
		return c.Path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}

	name := "notes.json"
	if c.Backend == "sqlite" {
		name = "notes.db"
	}
	return filepath.Join(home, ".cardbox", name), nil
}
