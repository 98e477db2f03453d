// Package config holds the command-line configuration for platform-detect.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrInvalidFormat is returned by Validate for an unsupported output format.
var ErrInvalidFormat = errors.New("invalid output format")

// Config controls a single detection run.
type Config struct {
	// Format is one of FormatText, FormatJSON or FormatYAML.
	Format string
	// EnvFile, when set, is loaded into the process environment before
	// detection. Variables that are already set are kept.
	EnvFile string
	// Strict classifies unrecognized host operating systems as unknown
	// instead of local.
	Strict bool
	Debug  bool
}

// Default returns the default configuration.
func Default() Config {
	return Config{Format: FormatText}
}

// Validate checks c for unsupported values.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Format) {
	case FormatText, FormatJSON, FormatYAML:
		c.Format = strings.ToLower(c.Format)
		return nil
	default:
		return fmt.Errorf("%w: %q (want text, json or yaml)", ErrInvalidFormat, c.Format)
	}
}

// LoadEnvFile loads EnvFile into the process environment. It is a no-op
// when EnvFile is empty.
func (c Config) LoadEnvFile() error {
	if c.EnvFile == "" {
		return nil
	}
	if err := godotenv.Load(c.EnvFile); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", c.EnvFile, err)
	}
	return nil
}

// Logger returns a text logger writing to w. Debug enables debug output;
// otherwise only warnings and errors are shown.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if c.Debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
