package domain

import (
	"time"
)

// TimeEntry represents a tracked block of time against a task.
// Exactly one entry system-wide may be running at any moment; the
// timer service enforces that, not this type.
//
// Consistency invariant: IsRunning holds exactly when EndTime and
// DurationMinutes are both nil.
type TimeEntry struct {
	ID              int64
	TaskID          int64
	StartTime       time.Time
	EndTime         *time.Time
	DurationMinutes *int
	Notes           string
	Billable        bool
	IsRunning       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewRunningEntry creates an entry in running mode: started now, no end time.
// The billable flag is copied from the owning task at creation time.
func NewRunningEntry(taskID int64, billable bool, now time.Time) TimeEntry {
	return TimeEntry{
		TaskID:    taskID,
		StartTime: now,
		Billable:  billable,
		IsRunning: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewManualEntry creates a fully-formed entry with both endpoints known.
// The duration is computed immediately and the entry is never running.
func NewManualEntry(taskID int64, start, end time.Time, notes string, billable bool, now time.Time) TimeEntry {
	minutes := ComputeDuration(start, end)
	return TimeEntry{
		TaskID:          taskID,
		StartTime:       start,
		EndTime:         &end,
		DurationMinutes: &minutes,
		Notes:           notes,
		Billable:        billable,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// ComputeDuration returns the whole minutes between start and end,
// truncated toward zero. This is the only place duration math lives;
// callers must never derive DurationMinutes any other way.
func ComputeDuration(start, end time.Time) int {
	return int(end.Sub(start).Minutes())
}

// Stop closes a running entry at the given time, computing its duration.
// Calling Stop on an already stopped entry is a no-op.
func (e TimeEntry) Stop(endTime time.Time) TimeEntry {
	if !e.IsRunning {
		return e
	}
	minutes := ComputeDuration(e.StartTime, endTime)
	e.EndTime = &endTime
	e.DurationMinutes = &minutes
	e.IsRunning = false
	e.UpdatedAt = endTime
	return e
}

// Elapsed returns the wall-clock duration of the entry. Running entries
// measure up to now.
func (e TimeEntry) Elapsed(now time.Time) time.Duration {
	if e.EndTime == nil {
		return now.Sub(e.StartTime)
	}
	return e.EndTime.Sub(e.StartTime)
}

// IsConsistent reports whether the running flag, end time and duration
// agree with each other.
func (e TimeEntry) IsConsistent() bool {
	if e.IsRunning {
		return e.EndTime == nil && e.DurationMinutes == nil
	}
	return e.EndTime != nil && e.DurationMinutes != nil
}

// IsValid checks if the time entry has valid data.
func (e TimeEntry) IsValid() bool {
	if e.TaskID <= 0 {
		return false
	}
	if e.StartTime.IsZero() {
		return false
	}
	if e.EndTime != nil && e.EndTime.Before(e.StartTime) {
		return false
	}
	return true
}
