package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadFromEnv loads configuration from environment variables, optionally
// reading a .env file from the current directory first. Missing variables
// fall back to defaults; a missing .env file is not an error.
func LoadFromEnv() (*Config, error) {
	cfg := New()

	// Check if ENV_FILE_PATH is set to load from a custom .env file
	envFilePath := getEnvString("ENV_FILE_PATH", "")
	if envFilePath != "" {
		if err := godotenv.Load(envFilePath); err != nil {
			return nil, err
		}
	} else {
		_ = godotenv.Load() // Ignore errors if file doesn't exist
	}

	cfg.Output.FileName = getEnvString("COMBICODE_OUTPUT", cfg.Output.FileName)
	cfg.Output.NoColor = getEnvBool("COMBICODE_NO_COLOR", cfg.Output.NoColor)

	cfg.Logging = LoggingConfig{
		Level:      getEnvString("COMBICODE_LOG_LEVEL", cfg.Logging.Level),
		Format:     getEnvString("COMBICODE_LOG_FORMAT", cfg.Logging.Format),
		Output:     getEnvString("COMBICODE_LOG_OUTPUT", cfg.Logging.Output),
		TimeFormat: getEnvString("COMBICODE_LOG_TIME_FORMAT", ""),
	}

	return cfg, nil
}

// getEnvString gets a string from environment variable with a default value
func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean from environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
