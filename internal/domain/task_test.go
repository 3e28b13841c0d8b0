package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTaskStatusDisplayName(t *testing.T) {
	tests := []struct {
		status   TaskStatus
		expected string
	}{
		{TaskTodo, "To Do"},
		{TaskInProgress, "In Progress"},
		{TaskCompleted, "Completed"},
		{TaskStatus(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, TaskStatusDisplayName(tt.status))
		})
	}
}

func TestPriorityDisplayName(t *testing.T) {
	assert.Equal(t, "Low", PriorityDisplayName(PriorityLow))
	assert.Equal(t, "Medium", PriorityDisplayName(PriorityMedium))
	assert.Equal(t, "High", PriorityDisplayName(PriorityHigh))
	assert.Equal(t, "Unknown", PriorityDisplayName(Priority(99)))
}

func TestNewTask(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local)

	task := NewTask("Design header", "mockups first", 4, now)

	assert.Equal(t, int64(4), task.ProjectID)
	assert.Equal(t, PriorityMedium, task.Priority)
	assert.Equal(t, TaskTodo, task.Status)
	assert.True(t, task.Billable)
	assert.Empty(t, task.Tags)
}

func TestTask_Rename(t *testing.T) {
	created := time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local)
	later := created.Add(time.Hour)

	task := NewTask("Old name", "", 1, created)
	renamed := task.Rename("New name", later)

	assert.Equal(t, "New name", renamed.Name)
	assert.Equal(t, later, renamed.UpdatedAt)
	assert.Equal(t, created, renamed.CreatedAt)
}

func TestTask_AddTag(t *testing.T) {
	task := NewTask("Tagged", "", 1, time.Now())

	task = task.AddTag("backend")
	task = task.AddTag("urgent")
	task = task.AddTag("backend") // duplicate is ignored

	assert.Equal(t, []string{"backend", "urgent"}, task.Tags)
	assert.True(t, task.HasTag("urgent"))
	assert.False(t, task.HasTag("frontend"))
}

func TestParseTaskStatus(t *testing.T) {
	status, ok := ParseTaskStatus("in_progress")
	assert.True(t, ok)
	assert.Equal(t, TaskInProgress, status)

	_, ok = ParseTaskStatus("doing")
	assert.False(t, ok)
}

func TestParsePriority(t *testing.T) {
	priority, ok := ParsePriority("high")
	assert.True(t, ok)
	assert.Equal(t, PriorityHigh, priority)

	_, ok = ParsePriority("urgent")
	assert.False(t, ok)
}
