package config

import (
	"os"
	"strconv"
	"time"

	"github.com/dminhvu/GSD-222/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig
	Upload  UploadConfig
	Results ResultConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Addr    string
	GinMode string
}

// UploadConfig holds upload handling settings
type UploadConfig struct {
	MaxUploadMB   int
	MaxConcurrent int64
}

// ResultConfig holds result store settings
type ResultConfig struct {
	TTL         time.Duration
	PreviewRows int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:  loadServerConfig(),
		Upload:  loadUploadConfig(),
		Results: loadResultConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Addr:    getEnvOrDefault("LEDGER_ADDR", ":8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "debug"),
	}
}

func loadUploadConfig() UploadConfig {
	return UploadConfig{
		MaxUploadMB:   getEnvIntOrDefault("LEDGER_MAX_UPLOAD_MB", 16),
		MaxConcurrent: int64(getEnvIntOrDefault("LEDGER_MAX_CONCURRENT", 4)),
	}
}

func loadResultConfig() ResultConfig {
	return ResultConfig{
		TTL:         getEnvDurationOrDefault("LEDGER_RESULT_TTL", 30*time.Minute),
		PreviewRows: getEnvIntOrDefault("LEDGER_PREVIEW_ROWS", 50),
	}
}

func validateConfig(config *Config) error {
	if config.Server.Addr == "" {
		return errors.ConfigInvalid("LEDGER_ADDR must not be empty")
	}
	if config.Upload.MaxUploadMB <= 0 {
		return errors.ConfigInvalid("LEDGER_MAX_UPLOAD_MB must be positive")
	}
	if config.Upload.MaxConcurrent <= 0 {
		return errors.ConfigInvalid("LEDGER_MAX_CONCURRENT must be positive")
	}
	if config.Results.TTL <= 0 {
		return errors.ConfigInvalid("LEDGER_RESULT_TTL must be positive")
	}
	if config.Results.PreviewRows <= 0 {
		return errors.ConfigInvalid("LEDGER_PREVIEW_ROWS must be positive")
	}
	return nil
}

// MaxUploadBytes returns the upload size cap in bytes
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.Upload.MaxUploadMB) << 20
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
