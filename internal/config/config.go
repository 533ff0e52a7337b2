// SPDX-License-Identifier: Apache-2.0

// Package config loads the runtime settings: built-in defaults, then an
// optional YAML file, then FISA_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of every environment override, e.g. FISA_LOG_LEVEL.
const EnvPrefix = "FISA"

type Config struct {
	Log    LogConfig    `yaml:"log"`
	Output OutputConfig `yaml:"output"`
	Server ServerConfig `yaml:"server"`
}

type LogConfig struct {
	Level  string `yaml:"level" envconfig:"LOG_LEVEL"`
	Format string `yaml:"format" envconfig:"LOG_FORMAT"`
}

type OutputConfig struct {
	// Format is "json" or "yaml".
	Format string `yaml:"format" envconfig:"OUTPUT_FORMAT"`
	// Dir is where --save writes timestamped documents.
	Dir      string `yaml:"dir" envconfig:"OUTPUT_DIR"`
	Validate bool   `yaml:"validate" envconfig:"OUTPUT_VALIDATE"`
}

type ServerConfig struct {
	Name    string `yaml:"name" envconfig:"SERVER_NAME"`
	Version string `yaml:"version" envconfig:"SERVER_VERSION"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Output: OutputConfig{
			Format: "json",
			Dir:    ".",
		},
		Server: ServerConfig{
			Name:    "fisa-mcp",
			Version: "0.1.0",
		},
	}
}

// Load builds the configuration. path may be empty, in which case only the
// defaults and the environment are used.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %q: %w", path, err)
		}
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to unmarshal config %q: %w", path, err)
		}
	}

	// envconfig prefixes nested struct fields with the struct name, so the
	// sections are processed one by one to keep the variable names flat.
	for _, section := range []interface{}{&cfg.Log, &cfg.Output, &cfg.Server} {
		if err := envconfig.Process(EnvPrefix, section); err != nil {
			return Config{}, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format %q (want json or console)", c.Log.Format)
	}
	switch c.Output.Format {
	case "json", "yaml":
	default:
		return fmt.Errorf("invalid output format %q (want json or yaml)", c.Output.Format)
	}
	return nil
}
