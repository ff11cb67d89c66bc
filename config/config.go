// Package config loads server configuration from an optional TOML file
// with environment variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the server's settings.
type Config struct {
	// StorePath is a JSON file to seed the store from on startup and
	// write back to on shutdown. Empty means in-memory only.
	StorePath string `toml:"store_path"`

	// OutputFormat selects the MCP response rendering: "json" or
	// "compact".
	OutputFormat string `toml:"output_format"`

	// Debug enables debug logging to stderr.
	Debug bool `toml:"debug"`
}

func defaults() *Config {
	return &Config{
		OutputFormat: "compact",
	}
}

// Load reads configuration from the given TOML file (skipped when the
// path is empty or the file does not exist), then applies environment
// overrides. A .env file in the working directory is honored.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// No config file is fine; env and defaults apply.
		case err != nil:
			return nil, fmt.Errorf("reading config file: %w", err)
		default:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv("WORKSPACE_SIM_STORE"); v != "" {
		cfg.StorePath = v
	}
	if v := os.Getenv("MCP_OUTPUT_FORMAT"); v != "" {
		cfg.OutputFormat = v
	}
	if v := os.Getenv("WORKSPACE_SIM_DEBUG"); v == "1" || v == "true" {
		cfg.Debug = true
	}
	return cfg, nil
}
