package sqlite

import "time"

// Project represents a project row. Enum columns are stored as their
// machine-readable string names; the domain mapper translates them.
type Project struct {
	ID          int64
	Name        string
	Description string
	ColorCode   string
	Client      string
	Status      string
	HourlyRate  *float64
	Budget      *float64
	Deadline    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Task represents a task row plus its tags from the task_tags table.
// Tags keep their insertion order via the position column.
type Task struct {
	ID              int64
	Name            string
	Description     string
	ProjectID       int64
	Tags            []string
	Priority        string
	Status          string
	EstimateMinutes *int
	DueDate         *time.Time
	Billable        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TimeEntry represents a time entry row. DurationMinutes is stored
// verbatim and never recomputed on load.
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
