// Package config loads run configuration from an optional YAML file with
// environment overrides. A missing file is not an error; defaults apply.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds everything the CLI needs to run a session. API keys are
// never stored here; the provider layer reads them from the environment.
type Config struct {
	Provider      string  `yaml:"provider" validate:"required,oneof=openai anthropic google"`
	Model         string  `yaml:"model" validate:"required"`
	Profile       string  `yaml:"profile" validate:"required"`
	MaxIterations int     `yaml:"max_iterations" validate:"required,min=1,max=25"`
	Suggestions   int     `yaml:"suggestions" validate:"required,min=1,max=10"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Provider:      "openai",
		Model:         "gpt-4o-mini",
		Profile:       "classic",
		MaxIterations: 5,
		Suggestions:   3,
	}
}

// Load reads configuration in increasing precedence: defaults, YAML file,
// environment variables. A .env file in the working directory is loaded
// first so that API keys and overrides can live beside the project.
// path selects an explicit config file; empty falls back to
// $BEDTIME_CONFIG, then the XDG config location. A missing file at the
// fallback locations is fine; a missing explicit path is an error.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = configPath()
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// No config file; defaults and environment take over.
	default:
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	applyEnv(&cfg)

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

func configPath() string {
	if p := os.Getenv("BEDTIME_CONFIG"); p != "" {
		return p
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "bedtime", "config.yaml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "bedtime", "config.yaml")
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("BEDTIME_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("BEDTIME_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("BEDTIME_PROFILE"); v != "" {
		cfg.Profile = v
	}
	if v := os.Getenv("BEDTIME_MAX_ITERATIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxIterations = n
		}
	}
}
