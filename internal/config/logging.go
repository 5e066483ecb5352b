package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rshade/aboutlibs/internal/logging"
)

const (
	formatConsole = "console"
	formatJSON    = "json"
)

// LoggingConfig is the logging section of the config file.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// File switches logging to a file; empty logs to stderr.
	File string `yaml:"file,omitempty"`
}

// Validate rejects unknown formats.
func (lc LoggingConfig) Validate() error {
	switch lc.Format {
	case "", formatConsole, formatJSON:
		return nil
	default:
		return fmt.Errorf("logging.format must be %q or %q, got %q", formatConsole, formatJSON, lc.Format)
	}
}

// ToLoggingConfig converts the file settings to a logging.Config.
// A non-empty File selects file output; otherwise logs go to stderr.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// EnsureLogDir creates the directory holding the configured log file.
func (lc *LoggingConfig) EnsureLogDir() error {
	if lc.File == "" {
		return nil
	}
	return os.MkdirAll(filepath.Dir(lc.File), 0o700)
}
