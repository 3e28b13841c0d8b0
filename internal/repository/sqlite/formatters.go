package sqlite

import (
	"time"
)

// Timestamps are naive local date-times; they are stored without a zone
// suffix and compared lexically, which sorts correctly for this layout.
const dbTimeLayout = "2006-01-02 15:04:05"

// FormatTimeForDB formats a time.Time value for database storage.
func FormatTimeForDB(t time.Time) string {
	return t.Format(dbTimeLayout)
}

// FormatTimePtrForDB formats a *time.Time value, returning nil for NULL columns.
func FormatTimePtrForDB(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return FormatTimeForDB(*t)
}

// ParseTimeFromDB parses a stored time string back into a local time.Time.
func ParseTimeFromDB(s string) (time.Time, error) {
	return time.ParseInLocation(dbTimeLayout, s, time.Local)
}
