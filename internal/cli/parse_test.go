package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetrack/internal/errors"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name      string
		arg       string
		want      int64
		wantError bool
	}{
		{"should parse a positive id", "42", 42, false},
		{"should reject zero", "0", 0, true},
		{"should reject negative numbers", "-3", 0, true},
		{"should reject non-numeric input", "abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := parseID("task ID", tt.arg)

			if tt.wantError {
				require.Error(t, err)
				assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, id)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	app := NewApp(nil, nil)

	t.Run("should parse the default date format", func(t *testing.T) {
		date, err := app.parseDate("2026-08-26")

		require.NoError(t, err)
		assert.Equal(t, 2026, date.Year())
		assert.Equal(t, time.August, date.Month())
		assert.Equal(t, 26, date.Day())
	})

	t.Run("should reject other layouts", func(t *testing.T) {
		_, err := app.parseDate("26/08/2026")
		assert.Error(t, err)
	})
}

func TestParseDateTime(t *testing.T) {
	app := NewApp(nil, nil)

	t.Run("should parse a full timestamp", func(t *testing.T) {
		ts, err := app.parseDateTime("2026-08-26 09:30")

		require.NoError(t, err)
		assert.Equal(t, 9, ts.Hour())
		assert.Equal(t, 30, ts.Minute())
	})

	t.Run("should treat a bare date as midnight", func(t *testing.T) {
		ts, err := app.parseDateTime("2026-08-26")

		require.NoError(t, err)
		assert.Equal(t, 0, ts.Hour())
		assert.Equal(t, 0, ts.Minute())
		assert.Equal(t, 26, ts.Day())
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := app.parseDateTime("yesterday")
		assert.Error(t, err)
	})
}

func TestParseMonth(t *testing.T) {
	t.Run("should parse a year-month pair", func(t *testing.T) {
		year, month, err := parseMonth("2026-08")

		require.NoError(t, err)
		assert.Equal(t, 2026, year)
		assert.Equal(t, time.August, month)
	})

	t.Run("should reject a full date", func(t *testing.T) {
		_, _, err := parseMonth("2026-08-26")
		assert.Error(t, err)
	})
}
