package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is read when neither --config nor CONFIG_PATH names a file.
const DefaultPath = "./config.yaml"

// Load reads configuration from CONFIG_PATH (see LoadFrom).
func Load() (*Config, error) {
	return LoadFrom(os.Getenv("CONFIG_PATH"))
}

// LoadFrom reads configuration with priority ENV > YAML > env-default tags.
//
// An explicit path must exist. With an empty path DefaultPath is used when
// present, otherwise only ENV and defaults apply.
func LoadFrom(path string) (*Config, error) {
	var cfg Config
	if err := read(path, &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func read(path string, cfg *Config) error {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
		return nil
	}

	_, err := os.Stat(DefaultPath)
	switch {
	case err == nil:
		if err := cleanenv.ReadConfig(DefaultPath, cfg); err != nil {
			return fmt.Errorf("config: read %s: %w", DefaultPath, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return fmt.Errorf("config: read env: %w", err)
		}
	default:
		return fmt.Errorf("config: file %s: %w", DefaultPath, err)
	}
	return nil
}
