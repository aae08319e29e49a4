package config

import (
	"fmt"
	"os"
)

// Output formats.
const (
	FormatJSON   = "json"
	FormatSQLite = "sqlite"
)

// Config holds application configuration
type Config struct {
	// Directory scanned for .txt and .eml email files
	EmailDir string

	// Destination for the serialized results
	OutputPath string

	// Output format: json or sqlite
	Format string

	// Optional YAML file overriding the built-in classification rules
	RulesPath string

	// Number of concurrent processing workers; 0 picks a default
	Workers int

	Verbose bool
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		OutputPath: "results.json",
		Format:     FormatJSON,
	}
}

// Validate checks that the configuration is usable. It is called before any
// processing starts; a validation error is fatal for the run.
func (c *Config) Validate() error {
	if c.EmailDir == "" {
		return fmt.Errorf("email directory is required")
	}

	info, err := os.Stat(c.EmailDir)
	if err != nil {
		return fmt.Errorf("email directory %s: %w", c.EmailDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("email directory %s is not a directory", c.EmailDir)
	}

	if c.OutputPath == "" {
		return fmt.Errorf("output path is required")
	}

	switch c.Format {
	case FormatJSON, FormatSQLite:
	default:
		return fmt.Errorf("unknown output format %q (expected %s or %s)", c.Format, FormatJSON, FormatSQLite)
	}

	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative")
	}

	return nil
}
