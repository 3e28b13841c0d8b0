package cli

import (
	"strconv"
	"time"

	"timetrack/internal/errors"
)

const monthLayout = "2006-01"

// parseID parses a positive numeric identifier argument.
func parseID(field, arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewValidationError(field+" must be a positive number", err)
	}
	return id, nil
}

// parseDate parses a calendar date argument in the configured date format.
func (a *App) parseDate(arg string) (time.Time, error) {
	date, err := time.ParseInLocation(a.dateFormat(), arg, time.Local)
	if err != nil {
		return time.Time{}, errors.NewValidationError("invalid date, expected "+a.dateFormat(), err)
	}
	return date, nil
}

// parseDateTime parses a timestamp argument. A date without a time of day
// is accepted and means midnight local time.
func (a *App) parseDateTime(arg string) (time.Time, error) {
	if t, err := time.ParseInLocation(a.timeFormat(), arg, time.Local); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(a.dateFormat(), arg, time.Local)
	if err != nil {
		return time.Time{}, errors.NewValidationError("invalid timestamp, expected "+a.timeFormat(), err)
	}
	return t, nil
}

// parseMonth parses a "YYYY-MM" month argument.
func parseMonth(arg string) (int, time.Month, error) {
	t, err := time.ParseInLocation(monthLayout, arg, time.Local)
	if err != nil {
		return 0, 0, errors.NewValidationError("invalid month, expected "+monthLayout, err)
	}
	return t.Year(), t.Month(), nil
}
