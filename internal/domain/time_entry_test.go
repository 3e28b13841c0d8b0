package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDuration(t *testing.T) {
	base := time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{
			name:     "should truncate partial minutes",
			start:    base,
			end:      base.Add(90 * time.Second),
			expected: 1,
		},
		{
			name:     "should return zero for under a minute",
			start:    base,
			end:      base.Add(59 * time.Second),
			expected: 0,
		},
		{
			name:     "should return zero for identical endpoints",
			start:    base,
			end:      base,
			expected: 0,
		},
		{
			name:     "should count exact hours",
			start:    base,
			end:      base.Add(2 * time.Hour),
			expected: 120,
		},
		{
			name:     "should truncate just under the next minute",
			start:    base,
			end:      base.Add(29*time.Minute + 59*time.Second),
			expected: 29,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComputeDuration(tt.start, tt.end))
		})
	}
}

func TestNewRunningEntry(t *testing.T) {
	now := time.Date(2026, 8, 30, 10, 15, 0, 0, time.Local)

	entry := NewRunningEntry(7, true, now)

	assert.Equal(t, int64(7), entry.TaskID)
	assert.Equal(t, now, entry.StartTime)
	assert.Nil(t, entry.EndTime)
	assert.Nil(t, entry.DurationMinutes)
	assert.True(t, entry.IsRunning)
	assert.True(t, entry.Billable)
	assert.True(t, entry.IsConsistent())
}

func TestNewManualEntry(t *testing.T) {
	start := time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local)
	end := start.Add(90 * time.Minute)

	entry := NewManualEntry(3, start, end, "sprint planning", false, end)

	require.NotNil(t, entry.EndTime)
	require.NotNil(t, entry.DurationMinutes)
	assert.Equal(t, end, *entry.EndTime)
	assert.Equal(t, 90, *entry.DurationMinutes)
	assert.Equal(t, "sprint planning", entry.Notes)
	assert.False(t, entry.IsRunning)
	assert.False(t, entry.Billable)
	assert.True(t, entry.IsConsistent())
}

func TestTimeEntry_Stop(t *testing.T) {
	start := time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local)

	t.Run("should close a running entry and compute its duration", func(t *testing.T) {
		entry := NewRunningEntry(1, true, start)
		end := start.Add(45*time.Minute + 30*time.Second)

		stopped := entry.Stop(end)

		require.NotNil(t, stopped.EndTime)
		require.NotNil(t, stopped.DurationMinutes)
		assert.Equal(t, 45, *stopped.DurationMinutes)
		assert.False(t, stopped.IsRunning)
		assert.True(t, stopped.IsConsistent())
	})

	t.Run("should leave a stopped entry untouched", func(t *testing.T) {
		entry := NewManualEntry(1, start, start.Add(time.Hour), "", true, start.Add(time.Hour))

		again := entry.Stop(start.Add(3 * time.Hour))

		assert.Equal(t, entry, again)
	})
}

func TestTimeEntry_Elapsed(t *testing.T) {
	start := time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local)

	t.Run("running entries measure up to now", func(t *testing.T) {
		entry := NewRunningEntry(1, true, start)
		assert.Equal(t, 30*time.Minute, entry.Elapsed(start.Add(30*time.Minute)))
	})

	t.Run("stopped entries measure to their end time", func(t *testing.T) {
		entry := NewManualEntry(1, start, start.Add(time.Hour), "", true, start.Add(time.Hour))
		assert.Equal(t, time.Hour, entry.Elapsed(start.Add(5*time.Hour)))
	})
}

func TestTimeEntry_IsConsistent(t *testing.T) {
	start := time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local)
	end := start.Add(time.Hour)
	minutes := 60

	tests := []struct {
		name     string
		entry    TimeEntry
		expected bool
	}{
		{
			name:     "running entry without end or duration",
			entry:    TimeEntry{TaskID: 1, StartTime: start, IsRunning: true},
			expected: true,
		},
		{
			name:     "stopped entry with end and duration",
			entry:    TimeEntry{TaskID: 1, StartTime: start, EndTime: &end, DurationMinutes: &minutes},
			expected: true,
		},
		{
			name:     "running entry with an end time",
			entry:    TimeEntry{TaskID: 1, StartTime: start, EndTime: &end, IsRunning: true},
			expected: false,
		},
		{
			name:     "stopped entry missing its duration",
			entry:    TimeEntry{TaskID: 1, StartTime: start, EndTime: &end},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.entry.IsConsistent())
		})
	}
}

func TestTimeEntry_IsValid(t *testing.T) {
	start := time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local)
	before := start.Add(-time.Hour)

	assert.True(t, TimeEntry{TaskID: 1, StartTime: start}.IsValid())
	assert.False(t, TimeEntry{TaskID: 0, StartTime: start}.IsValid())
	assert.False(t, TimeEntry{TaskID: 1}.IsValid())
	assert.False(t, TimeEntry{TaskID: 1, StartTime: start, EndTime: &before}.IsValid())
}
