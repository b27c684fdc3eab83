package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Extract  ExtractConfig
	Export   ExportConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Path        string // SQLite file path; ignored when InMemory is set
	InMemory    bool
	BusyTimeout time.Duration
}

// ExtractConfig holds text-extraction configuration
type ExtractConfig struct {
	MaxPages int // 0 = no limit
	Timeout  time.Duration
}

// ExportConfig holds export-related configuration
type ExportConfig struct {
	Format    string // "xlsx" | "csv"
	SheetName string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Path:        getEnv("DB_PATH", "invoices.db"),
			InMemory:    getEnvAsBool("DB_INMEM", false),
			BusyTimeout: getEnvAsDuration("DB_BUSY_TIMEOUT", 5*time.Second),
		},
		Extract: ExtractConfig{
			MaxPages: getEnvAsInt("EXTRACT_MAX_PAGES", 0),
			Timeout:  getEnvAsDuration("EXTRACT_TIMEOUT", 30*time.Second),
		},
		Export: ExportConfig{
			Format:    getEnv("EXPORT_FORMAT", "xlsx"),
			SheetName: getEnv("EXPORT_SHEET", "Line Items"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if !c.Database.InMemory && c.Database.Path == "" {
		return NewAppError("CONFIG_ERROR", "DB_PATH is required", ErrInvalidInput)
	}
	if c.Export.Format != "xlsx" && c.Export.Format != "csv" {
		return NewAppError("CONFIG_ERROR", "EXPORT_FORMAT must be xlsx or csv", ErrInvalidInput)
	}
	return nil
}
