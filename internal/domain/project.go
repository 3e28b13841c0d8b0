package domain

import (
	"time"
)

// ProjectStatus represents the lifecycle status of a project.
type ProjectStatus int

const (
	ProjectActive ProjectStatus = iota
	ProjectArchived
	ProjectCompleted
)

// String returns the machine-readable name of the status.
func (s ProjectStatus) String() string {
	switch s {
	case ProjectActive:
		return "active"
	case ProjectArchived:
		return "archived"
	case ProjectCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// ProjectStatusDisplayName maps a project status to its human-readable label.
func ProjectStatusDisplayName(s ProjectStatus) string {
	switch s {
	case ProjectActive:
		return "Active"
	case ProjectArchived:
		return "Archived"
	case ProjectCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Project represents a project that groups tasks in the domain model.
// Tasks reference their project by ID; the project holds no task collection.
type Project struct {
	ID          int64
	Name        string
	Description string
	ColorCode   string
	Client      string
	Status      ProjectStatus
	HourlyRate  *float64
	Budget      *float64
	Deadline    *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProject creates a new active Project with the given name and description.
func NewProject(name, description string, now time.Time) Project {
	return Project{
		Name:        name,
		Description: description,
		Status:      ProjectActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsValid checks if the project has valid data.
func (p Project) IsValid() bool {
	return p.Name != ""
}

// String returns the project name for display purposes.
func (p Project) String() string {
	return p.Name
}
