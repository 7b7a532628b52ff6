package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when no -config
// flag is given.
const DefaultFileName = ".minijavac.yaml"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".java", ".mjava"}

// Config holds the tool settings read from the YAML config file. Zero
// value = defaults.
type Config struct {
	// Color selects console coloring: "auto" (TTY detection), "always"
	// or "never".
	Color string `yaml:"color"`

	// HistoryDB is the path of the sqlite run-log database. Empty
	// disables history recording.
	HistoryDB string `yaml:"history"`

	Warnings WarningsConfig `yaml:"warnings"`
}

type WarningsConfig struct {
	// UnusedVariables enables the unused-variable section of the report.
	UnusedVariables bool `yaml:"unused-variables"`
}

func Default() *Config {
	return &Config{
		Color: "auto",
		Warnings: WarningsConfig{
			UnusedVariables: true,
		},
	}
}

// Load reads a config file. A missing file at the default location is not
// an error; a missing file named explicitly is.
func Load(path string, explicit bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	switch cfg.Color {
	case "", "auto", "always", "never":
	default:
		return nil, fmt.Errorf("config: invalid color mode %q (want auto, always or never)", cfg.Color)
	}
	if cfg.Color == "" {
		cfg.Color = "auto"
	}

	return cfg, nil
}
