package internal

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	StorageBackendFile   = "file"
	StorageBackendSQLite = "sqlite"
)

type Config struct {
	Storage  StorageConfig  `mapstructure:"storage"`
	Currency CurrencyConfig `mapstructure:"currency"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type StorageConfig struct {
	Backend    string `mapstructure:"backend"`
	DataDir    string `mapstructure:"data_dir"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

type CurrencyConfig struct {
	Symbol string `mapstructure:"symbol"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultConfig returns the configuration used when no config file or
// environment overrides are present. Data lives under ~/.sakuku.
func DefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	dataDir := filepath.Join(home, ".sakuku")

	return &Config{
		Storage: StorageConfig{
			Backend:    StorageBackendFile,
			DataDir:    dataDir,
			SQLitePath: filepath.Join(dataDir, "sakuku.db"),
		},
		Currency: CurrencyConfig{
			Symbol: "Rp",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// ----------------- HELPERS -----------------

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

// LoadConfigFromEnv builds a config entirely from SAKUKU_* environment
// variables, falling back to defaults for anything unset.
func LoadConfigFromEnv() *Config {
	cfg := DefaultConfig()

	cfg.Storage.Backend = getEnv("SAKUKU_STORAGE_BACKEND", cfg.Storage.Backend)
	cfg.Storage.DataDir = getEnv("SAKUKU_STORAGE_DATA_DIR", cfg.Storage.DataDir)
	cfg.Storage.SQLitePath = getEnv("SAKUKU_STORAGE_SQLITE_PATH", cfg.Storage.SQLitePath)
	cfg.Currency.Symbol = getEnv("SAKUKU_CURRENCY_SYMBOL", cfg.Currency.Symbol)
	cfg.Logging.Level = getEnv("SAKUKU_LOGGING_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = getEnv("SAKUKU_LOGGING_FORMAT", cfg.Logging.Format)

	return cfg
}

// ----------------- VALIDATION -----------------

func (c *Config) Validate() error {
	var errs []string

	if err := c.Storage.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("storage config: %v", err))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Sprintf("logging config: %v", err))
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

func (c *StorageConfig) Validate() error {
	switch c.Backend {
	case StorageBackendFile:
		if c.DataDir == "" {
			return errors.New("data_dir is required for the file backend")
		}
	case StorageBackendSQLite:
		if c.SQLitePath == "" {
			return errors.New("sqlite_path is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("unknown storage backend %q", c.Backend)
	}
	return nil
}

func (c *LoggingConfig) Validate() error {
	switch strings.ToLower(c.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Level)
	}
	switch c.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.Format)
	}
	return nil
}
