package config

import (
	"path/filepath"

	"github.com/GiuseppeVizzari/pokedex2022-applicazioni-web/internal/logging"
)

// LoggingConfig configures the zerolog logger.
//
// YAML Location: ~/.pokedex/config.yaml under "logging" key
//
// Example:
//
//	logging:
//	  level: debug
//	  format: console
//	  file: /tmp/pokedex.log
type LoggingConfig struct {
	// Level is a zerolog level name (trace, debug, info, warn, error).
	Level string `yaml:"level"`

	// Format is "json" or "console".
	Format string `yaml:"format"`

	// File is the log file. Empty selects DefaultLogFile() when the caller
	// owns the terminal, or stderr otherwise.
	File string `yaml:"file"`
}

// DefaultLogFile returns ~/.pokedex/logs/pokedex.log.
func DefaultLogFile() string {
	return filepath.Join(Dir(), "logs", "pokedex.log")
}

// ToLoggingConfig converts the YAML section to a logging.Config.
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		File:   lc.File,
	}
}
