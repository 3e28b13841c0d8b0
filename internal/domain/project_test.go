package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProjectStatusDisplayName(t *testing.T) {
	assert.Equal(t, "Active", ProjectStatusDisplayName(ProjectActive))
	assert.Equal(t, "Archived", ProjectStatusDisplayName(ProjectArchived))
	assert.Equal(t, "Completed", ProjectStatusDisplayName(ProjectCompleted))
	assert.Equal(t, "Unknown", ProjectStatusDisplayName(ProjectStatus(99)))
}

func TestNewProject(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local)

	project := NewProject("Website", "redesign", now)

	assert.Equal(t, ProjectActive, project.Status)
	assert.Nil(t, project.HourlyRate)
	assert.Nil(t, project.Budget)
	assert.True(t, project.IsValid())
	assert.False(t, Project{}.IsValid())
}

func TestParseProjectStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected ProjectStatus
		ok       bool
	}{
		{"active", ProjectActive, true},
		{"archived", ProjectArchived, true},
		{"completed", ProjectCompleted, true},
		{"paused", ProjectActive, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			status, ok := ParseProjectStatus(tt.input)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.expected, status)
			}
		})
	}
}
