package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const defaultPath = "./config.yaml"

// Load builds the configuration from a YAML file overlaid with environment
// variables: env always wins, tag defaults fill the rest. The file comes
// from CONFIG_PATH when set; otherwise ./config.yaml is tried and silently
// skipped when absent, leaving env and defaults as the only sources.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = defaultPath
	}

	err := cleanenv.ReadConfig(path, &cfg)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config from env: %w", err)
		}
	default:
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}
