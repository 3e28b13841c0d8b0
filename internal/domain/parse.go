package domain

// ParseProjectStatus parses a machine-readable project status name.
// The second return value reports whether the name was recognized.
func ParseProjectStatus(s string) (ProjectStatus, bool) {
	switch s {
	case "active":
		return ProjectActive, true
	case "archived":
		return ProjectArchived, true
	case "completed":
		return ProjectCompleted, true
	default:
		return ProjectActive, false
	}
}

// ParsePriority parses a machine-readable priority name.
func ParsePriority(s string) (Priority, bool) {
	switch s {
	case "low":
		return PriorityLow, true
	case "medium":
		return PriorityMedium, true
	case "high":
		return PriorityHigh, true
	default:
		return PriorityMedium, false
	}
}

// ParseTaskStatus parses a machine-readable task status name.
func ParseTaskStatus(s string) (TaskStatus, bool) {
	switch s {
	case "todo":
		return TaskTodo, true
	case "in_progress":
		return TaskInProgress, true
	case "completed":
		return TaskCompleted, true
	default:
		return TaskTodo, false
	}
}
