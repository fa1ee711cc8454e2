// Package config provides application configuration loaded from the
// environment, with a process-wide read-only instance.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

var (
	// Global configuration instance
	globalConfig *Config
	configMutex  sync.RWMutex
)

// Get returns the global configuration instance
// If the configuration has not been initialized, it will return an error
func Get() (*Config, error) {
	configMutex.RLock()
	defer configMutex.RUnlock()

	if globalConfig == nil {
		return nil, fmt.Errorf("configuration not initialized")
	}

	return globalConfig, nil
}

// Set sets the global configuration instance
func Set(cfg *Config) {
	configMutex.Lock()
	defer configMutex.Unlock()

	globalConfig = cfg
}

// Config represents the complete application configuration
type Config struct {
	Output  OutputConfig
	Logging LoggingConfig
}

// OutputConfig represents defaults for the generated artifact
type OutputConfig struct {
	FileName string // Default merged artifact name
	NoColor  bool   // Disable colored terminal output
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level      string // debug, info, warn, error
	Format     string // text or json
	Output     string // stdout, stderr, or file path
	TimeFormat string // Time format for logs (empty uses RFC3339)
}

// New creates a configuration populated with defaults
func New() *Config {
	return &Config{
		Output: OutputConfig{
			FileName: "combicode.txt",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
			Output: "stderr",
		},
	}
}

// ParseLogLevel converts a string log level to slog.Level
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
