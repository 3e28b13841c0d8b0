package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTimeEntryForCreation(t *testing.T) {
	validator := NewTimeEntryValidator()
	now := time.Now()
	hourAgo := now.Add(-time.Hour)

	tests := []struct {
		name      string
		taskID    int64
		startTime time.Time
		endTime   *time.Time
		wantError bool
	}{
		{
			name:      "should accept a completed entry",
			taskID:    1,
			startTime: hourAgo,
			endTime:   &now,
			wantError: false,
		},
		{
			name:      "should accept a running entry with no end time",
			taskID:    1,
			startTime: hourAgo,
			endTime:   nil,
			wantError: false,
		},
		{
			name:      "should accept start equal to end",
			taskID:    1,
			startTime: now,
			endTime:   &now,
			wantError: false,
		},
		{
			name:      "should reject end before start",
			taskID:    1,
			startTime: now,
			endTime:   &hourAgo,
			wantError: true,
		},
		{
			name:      "should reject a non-positive task id",
			taskID:    0,
			startTime: hourAgo,
			endTime:   &now,
			wantError: true,
		},
		{
			name:      "should reject a zero start time",
			taskID:    1,
			startTime: time.Time{},
			endTime:   nil,
			wantError: true,
		},
		{
			name:      "should reject a start far in the past",
			taskID:    1,
			startTime: now.AddDate(-11, 0, 0),
			endTime:   nil,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateTimeEntryForCreation(tt.taskID, tt.startTime, tt.endTime)

			if tt.wantError {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateTimeEntryForUpdate(t *testing.T) {
	validator := NewTimeEntryValidator()
	now := time.Now()
	hourAgo := now.Add(-time.Hour)

	t.Run("should accept a valid update", func(t *testing.T) {
		err := validator.ValidateTimeEntryForUpdate(5, 1, hourAgo, &now)
		assert.NoError(t, err)
	})

	t.Run("should collect entry id and range errors together", func(t *testing.T) {
		err := validator.ValidateTimeEntryForUpdate(0, 1, now, &hourAgo)

		require.Error(t, err)
		validationErr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.Len(t, validationErr.Errors, 2)
	})
}

func TestValidateProjectForCreation(t *testing.T) {
	validator := NewProjectValidator()
	rate := 50.0
	negative := -1.0

	tests := []struct {
		name        string
		projectName string
		hourlyRate  *float64
		budget      *float64
		wantError   bool
	}{
		{"should accept a plain name", "Website", nil, nil, false},
		{"should accept name with rate and budget", "Website", &rate, &rate, false},
		{"should reject an empty name", "", nil, nil, true},
		{"should reject a whitespace name", "   ", nil, nil, true},
		{"should reject a negative rate", "Website", &negative, nil, true},
		{"should reject a negative budget", "Website", nil, &negative, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateProjectForCreation(tt.projectName, tt.hourlyRate, tt.budget)

			if tt.wantError {
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetValidProjectName(t *testing.T) {
	validator := NewProjectValidator()

	t.Run("should trim surrounding whitespace", func(t *testing.T) {
		name, err := validator.GetValidProjectName("  Website  ")
		require.NoError(t, err)
		assert.Equal(t, "Website", name)
	})

	t.Run("should reject an empty name", func(t *testing.T) {
		_, err := validator.GetValidProjectName("")
		assert.Error(t, err)
	})
}
