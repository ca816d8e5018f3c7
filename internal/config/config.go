package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gowrangle/internal/errors"

	"github.com/joho/godotenv"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Cache    CacheConfig
	Split    SplitConfig
	LogLevel string
}

// DatabaseConfig holds the remote store connection settings. The database
// name is not part of it: every dataset descriptor names its own.
type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	SSLMode  string
}

// CacheConfig holds the local cache location
type CacheConfig struct {
	Dir string
}

// SplitConfig holds the default partition ratios
type SplitConfig struct {
	ValidateRatio float64
	TestRatio     float64
	Seed          int64
}

// Supported database drivers
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// Load reads an optional .env file and the environment. It does not
// validate database credentials; call Database.Validate before connecting.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "failed to read .env file")
	}
	return FromEnv()
}

// LoadFile reads configuration from the named env files instead of .env
func LoadFile(filenames ...string) (*Config, error) {
	if err := godotenv.Load(filenames...); err != nil {
		return nil, errors.Wrap(err, "failed to read env file")
	}
	return FromEnv()
}

// FromEnv builds the configuration from environment variables only
func FromEnv() (*Config, error) {
	driver := strings.ToLower(getEnvOrDefault("DB_DRIVER", DriverMySQL))

	cfg := &Config{
		Database: DatabaseConfig{
			Driver:   driver,
			Host:     os.Getenv("DB_HOST"),
			Port:     getEnvIntOrDefault("DB_PORT", defaultPort(driver)),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASS"),
			SSLMode:  getEnvOrDefault("DB_SSLMODE", "disable"),
		},
		Cache: CacheConfig{
			Dir: getEnvOrDefault("CACHE_DIR", "."),
		},
		Split: SplitConfig{
			ValidateRatio: getEnvFloatOrDefault("SPLIT_VALIDATE_RATIO", 0.2),
			TestRatio:     getEnvFloatOrDefault("SPLIT_TEST_RATIO", 0.1),
			Seed:          int64(getEnvIntOrDefault("SPLIT_SEED", 88)),
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "INFO"),
	}

	switch driver {
	case DriverMySQL, DriverPostgres, DriverSQLite:
	default:
		return nil, errors.ConfigInvalid(fmt.Sprintf("unsupported DB_DRIVER %q", driver))
	}

	return cfg, nil
}

// Validate fails loudly when the connection settings are incomplete
func (c DatabaseConfig) Validate() error {
	if c.Host == "" {
		return errors.ConfigInvalid("DB_HOST is required")
	}
	if c.Driver == DriverSQLite {
		return nil
	}
	if c.User == "" {
		return errors.ConfigInvalid("DB_USER is required")
	}
	if c.Password == "" {
		return errors.ConfigInvalid("DB_PASS is required")
	}
	return nil
}

func defaultPort(driver string) int {
	if driver == DriverPostgres {
		return 5432
	}
	return 3306
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

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
