package domain

import (
	"time"
)

// Priority represents the urgency of a task.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

// String returns the machine-readable name of the priority.
func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityMedium:
		return "medium"
	case PriorityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// PriorityDisplayName maps a priority to its human-readable label.
func PriorityDisplayName(p Priority) string {
	switch p {
	case PriorityLow:
		return "Low"
	case PriorityMedium:
		return "Medium"
	case PriorityHigh:
		return "High"
	default:
		return "Unknown"
	}
}

// TaskStatus represents the workflow status of a task.
type TaskStatus int

const (
	TaskTodo TaskStatus = iota
	TaskInProgress
	TaskCompleted
)

// String returns the machine-readable name of the status.
func (s TaskStatus) String() string {
	switch s {
	case TaskTodo:
		return "todo"
	case TaskInProgress:
		return "in_progress"
	case TaskCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// TaskStatusDisplayName maps a task status to its human-readable label.
func TaskStatusDisplayName(s TaskStatus) string {
	switch s {
	case TaskTodo:
		return "To Do"
	case TaskInProgress:
		return "In Progress"
	case TaskCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// Task represents a unit of work in the domain model.
// It references its owning project by ID only.
type Task struct {
	ID              int64
	Name            string
	Description     string
	ProjectID       int64
	Tags            []string // insertion order preserved for display
	Priority        Priority
	Status          TaskStatus
	EstimateMinutes *int
	DueDate         *time.Time
	Billable        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewTask creates a new Task with default priority, status and billable flag.
func NewTask(name, description string, projectID int64, now time.Time) Task {
	return Task{
		Name:        name,
		Description: description,
		ProjectID:   projectID,
		Priority:    PriorityMedium,
		Status:      TaskTodo,
		Billable:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Rename updates the task name and refreshes UpdatedAt.
func (t Task) Rename(name string, now time.Time) Task {
	t.Name = name
	t.UpdatedAt = now
	return t
}

// Redescribe updates the task description and refreshes UpdatedAt.
func (t Task) Redescribe(description string, now time.Time) Task {
	t.Description = description
	t.UpdatedAt = now
	return t
}

// HasTag reports whether the task carries the given tag.
func (t Task) HasTag(tag string) bool {
	for _, candidate := range t.Tags {
		if candidate == tag {
			return true
		}
	}
	return false
}

// AddTag appends a tag, ignoring duplicates while preserving insertion order.
func (t Task) AddTag(tag string) Task {
	if t.HasTag(tag) {
		return t
	}
	t.Tags = append(t.Tags, tag)
	return t
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.Name != "" && t.ProjectID > 0
}

// String returns the task name for display purposes.
func (t Task) String() string {
	return t.Name
}
