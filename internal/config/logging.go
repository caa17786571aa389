package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rshade/dosecalc/internal/logging"
)

// LoggingConfig is the logging section of the config file.
type LoggingConfig struct {
	Level  string `yaml:"level"            json:"level"`
	Format string `yaml:"format"           json:"format"`
	// Output is stderr (default) or stdout. File takes precedence.
	Output string `yaml:"output,omitempty" json:"output,omitempty"`
	File   string `yaml:"file,omitempty"   json:"file,omitempty"`
	Caller bool   `yaml:"caller,omitempty" json:"caller,omitempty"`
}

// Validate checks level and format.
func (lc LoggingConfig) Validate() error {
	if lc.Level != "" {
		lvl, err := zerolog.ParseLevel(strings.ToLower(lc.Level))
		if err != nil || lvl == zerolog.NoLevel {
			return fmt.Errorf("%w: got %q", ErrInvalidLogLevel, lc.Level)
		}
	}

	switch strings.ToLower(lc.Output) {
	case "", logging.OutputStderr, logging.OutputStdout:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidLogOutput, lc.Output)
	}

	switch strings.ToLower(lc.Format) {
	case "", logging.FormatJSON, logging.FormatConsole, logging.FormatText:
		return nil
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidLogFormat, lc.Format)
	}
}

// ToLoggingConfig converts the section into a logging.Config. A configured
// File switches output to the file; otherwise logs go to Output.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	switch {
	case lc.File != "":
		output = logging.OutputFile
	case strings.EqualFold(lc.Output, logging.OutputStdout):
		output = logging.OutputStdout
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
		Caller: lc.Caller,
	}
}

// GetLoggingConfig returns a copy of the global Logging section. Flag
// overrides such as --debug are applied by the caller.
func GetLoggingConfig() LoggingConfig {
	cfg := GetGlobalConfig()
	return cfg.Logging
}
