package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration.
// Supports environment variables with sensible defaults.
//
// Environment Variables:
// Dictionary Configuration:
// - TRANSLATIONS_FILE: learned translations JSON file (default: learned_translations.json)
// - CARE_LABELS_FILE: care label dictionary JSON file (default: care_labels.json)
//
// Run Configuration:
// - TRANSLATE_WORKERS: parallel row translation workers (default: 4)
// - MATERIALS_COLUMN: 1-based materials column (default: 2, 0 disables)
//
// Watch Configuration:
// - WATCH_DIR: directory scanned for new CSV files in watch mode
// - CRON_EXPR: watch schedule (default: every 5 minutes)
//
// History Configuration:
// - HISTORY_DB: sqlite run-history database path (empty disables)
//
// Log Configuration:
// - LOG_LEVEL: debug|info|warn|error (default: info)
// - LOG_FILE: optional log file path

type Config struct {
	Dict    DictConfig    `json:"dict"`
	Run     RunConfig     `json:"run"`
	Watch   WatchConfig   `json:"watch"`
	History HistoryConfig `json:"history"`
	Log     LogConfig     `json:"log"`
}

// DictConfig locates the external dictionary resources.
type DictConfig struct {
	TranslationsFile string `json:"translations_file"`
	CareLabelsFile   string `json:"care_labels_file"`
}

// RunConfig controls a translation run.
type RunConfig struct {
	Workers         int  `json:"workers"`
	MaterialsColumn int  `json:"materials_column"` // 1-based, 0 disables
	Learn           bool `json:"learn"`
	ASCIIPunct      bool `json:"ascii_punct"`
}

// WatchConfig controls the scheduled watch mode.
type WatchConfig struct {
	Dir      string `json:"dir"`
	CronExpr string `json:"cron_expr"`
}

// HistoryConfig controls the optional run-history store.
type HistoryConfig struct {
	DBPath string `json:"db_path"`
}

// LogConfig controls logging output.
type LogConfig struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

// Option is a function type for configuring Config
type Option func(*Config)

// NewFromEnv creates a new Config instance with values from environment
// variables and options.
func NewFromEnv(opts ...Option) (*Config, error) {
	config := &Config{
		Dict: DictConfig{
			TranslationsFile: getEnvString("TRANSLATIONS_FILE", "learned_translations.json"),
			CareLabelsFile:   getEnvString("CARE_LABELS_FILE", "care_labels.json"),
		},
		Run: RunConfig{
			Workers:         getEnvInt("TRANSLATE_WORKERS", 4),
			MaterialsColumn: getEnvInt("MATERIALS_COLUMN", 2),
			Learn:           getEnvBool("TRANSLATE_LEARN", true),
			ASCIIPunct:      getEnvBool("TRANSLATE_ASCII_PUNCT", false),
		},
		Watch: WatchConfig{
			Dir:      getEnvString("WATCH_DIR", ""),
			CronExpr: getEnvString("CRON_EXPR", "*/5 * * * *"),
		},
		History: HistoryConfig{
			DBPath: getEnvString("HISTORY_DB", ""),
		},
		Log: LogConfig{
			Level: getEnvString("LOG_LEVEL", "info"),
			File:  getEnvString("LOG_FILE", ""),
		},
	}

	// Apply custom options
	for _, opt := range opts {
		opt(config)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// validate checks if all required configuration is properly set
func (c *Config) validate() error {
	if c.Run.Workers < 1 {
		return fmt.Errorf("TRANSLATE_WORKERS must be at least 1, got %d", c.Run.Workers)
	}
	if c.Run.MaterialsColumn < 0 {
		return fmt.Errorf("MATERIALS_COLUMN must not be negative, got %d", c.Run.MaterialsColumn)
	}
	return nil
}

// getEnvString gets a string value from environment variables with default
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer value from environment variables with default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets a boolean value from environment variables with default
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
