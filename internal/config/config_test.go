package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "timetrack.db", cfg.Database.Filename)
	assert.Contains(t, cfg.Database.Dir, ".timetrack")
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, "2006-01-02", cfg.Display.DateFormat)
	assert.Equal(t, "2006-01-02 15:04", cfg.Display.TimeFormat)
	assert.Equal(t, 60*time.Second, cfg.Application.Timeout)
	assert.False(t, cfg.Application.Debug)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TIMETRACK_DB_DIR", "/tmp/timetrack-test")
	t.Setenv("TIMETRACK_DB_FILENAME", "custom.db")
	t.Setenv("TIMETRACK_DB_QUERY_TIMEOUT", "30s")
	t.Setenv("TIMETRACK_DISPLAY_DATE_FORMAT", "02/01/2006")
	t.Setenv("TIMETRACK_APP_TIMEOUT", "2m")
	t.Setenv("TIMETRACK_DEBUG", "1")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, "/tmp/timetrack-test", cfg.Database.Dir)
	assert.Equal(t, "custom.db", cfg.Database.Filename)
	assert.Equal(t, 30*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, "02/01/2006", cfg.Display.DateFormat)
	assert.Equal(t, 2*time.Minute, cfg.Application.Timeout)
	assert.True(t, cfg.Application.Debug)
}

func TestLoadFromEnvironment_IgnoresInvalidDurations(t *testing.T) {
	t.Setenv("TIMETRACK_DB_QUERY_TIMEOUT", "soon")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
}

func TestGetDatabasePath(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.Dir = "/data"
	cfg.Database.Filename = "timetrack.db"

	assert.Equal(t, "/data/timetrack.db", cfg.GetDatabasePath())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"should accept the defaults", func(c *Config) {}, ""},
		{"should reject an empty db dir", func(c *Config) { c.Database.Dir = "" }, "database.dir"},
		{"should reject an empty filename", func(c *Config) { c.Database.Filename = "" }, "database.filename"},
		{"should reject a zero query timeout", func(c *Config) { c.Database.QueryTimeout = 0 }, "database.query_timeout"},
		{"should reject an empty date format", func(c *Config) { c.Display.DateFormat = "" }, "display.date_format"},
		{"should reject a zero app timeout", func(c *Config) { c.Application.Timeout = 0 }, "application.timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadWithOverrides(t *testing.T) {
	dir := t.TempDir()
	filename := "override.db"
	debug := true

	cfg, err := NewLoader().LoadWithOverrides(&ConfigOverrides{
		DBDir:      &dir,
		DBFilename: &filename,
		Debug:      &debug,
	})

	require.NoError(t, err)
	assert.Equal(t, dir, cfg.Database.Dir)
	assert.Equal(t, "override.db", cfg.Database.Filename)
	assert.True(t, cfg.Application.Debug)
}

func TestCreateRepository(t *testing.T) {
	cfg := NewConfig()
	cfg.Database.Dir = t.TempDir() + "/nested"
	cfg.Database.Filename = "test.db"

	repo, err := CreateRepository(cfg)

	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	assert.FileExists(t, cfg.GetDatabasePath())
}

func TestCreateTestRepository(t *testing.T) {
	repo, err := CreateTestRepository()

	require.NoError(t, err)
	assert.NoError(t, repo.Close())
}
