package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the timetrack application
type Config struct {
	Database    DatabaseConfig
	Display     DisplayConfig
	Application ApplicationConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Dir            string        `env:"TIMETRACK_DB_DIR"`
	Filename       string        `env:"TIMETRACK_DB_FILENAME"`
	QueryTimeout   time.Duration `env:"TIMETRACK_DB_QUERY_TIMEOUT"`
	DirPermissions uint32        `env:"TIMETRACK_DB_DIR_PERMISSIONS"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	DateFormat string `env:"TIMETRACK_DISPLAY_DATE_FORMAT"`
	TimeFormat string `env:"TIMETRACK_DISPLAY_TIME_FORMAT"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TIMETRACK_APP_TIMEOUT"`
	Debug   bool          `env:"TIMETRACK_DEBUG"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".timetrack")

	return &Config{
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "timetrack.db",
			QueryTimeout:   10 * time.Second,
			DirPermissions: 0755,
		},
		Display: DisplayConfig{
			DateFormat: "2006-01-02",
			TimeFormat: "2006-01-02 15:04",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Debug:   false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if dir := os.Getenv("TIMETRACK_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TIMETRACK_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TIMETRACK_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}
	if perms := os.Getenv("TIMETRACK_DB_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Database.DirPermissions = uint32(p)
		}
	}

	if format := os.Getenv("TIMETRACK_DISPLAY_DATE_FORMAT"); format != "" {
		c.Display.DateFormat = format
	}
	if format := os.Getenv("TIMETRACK_DISPLAY_TIME_FORMAT"); format != "" {
		c.Display.TimeFormat = format
	}

	if timeout := os.Getenv("TIMETRACK_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if debug := os.Getenv("TIMETRACK_DEBUG"); debug != "" {
		c.Application.Debug = true
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}

	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}
	if c.Display.TimeFormat == "" {
		return &ConfigError{Field: "display.time_format", Message: "time format cannot be empty"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
