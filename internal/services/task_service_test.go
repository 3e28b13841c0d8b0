package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetrack/internal/domain"
	"timetrack/internal/errors"
)

func TestTaskService_CreateTask(t *testing.T) {
	t.Run("should create a task with default status, priority and billable flag", func(t *testing.T) {
		container, _ := setupContainer(t)
		ctx := context.Background()
		project, err := container.Project.CreateProject(ctx, "Website", "")
		require.NoError(t, err)

		task, err := container.Task.CreateTask(ctx, "Design header", "mockups first", project.ID)

		require.NoError(t, err)
		assert.Greater(t, task.ID, int64(0))
		assert.Equal(t, project.ID, task.ProjectID)
		assert.Equal(t, domain.TaskTodo, task.Status)
		assert.Equal(t, domain.PriorityMedium, task.Priority)
		assert.True(t, task.Billable)
	})

	t.Run("should fail with not found for an unknown project", func(t *testing.T) {
		container, _ := setupContainer(t)

		_, err := container.Task.CreateTask(context.Background(), "Orphan", "", 9999)

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})

	t.Run("should reject an empty name", func(t *testing.T) {
		container, _ := setupContainer(t)
		ctx := context.Background()
		project, err := container.Project.CreateProject(ctx, "Website", "")
		require.NoError(t, err)

		_, err = container.Task.CreateTask(ctx, "   ", "", project.ID)

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
	})
}

func TestTaskService_RenameTask(t *testing.T) {
	container, _ := setupContainer(t)
	task := seedTask(t, container)
	ctx := context.Background()

	renamed, err := container.Task.RenameTask(ctx, task.ID, "Design footer")

	require.NoError(t, err)
	assert.Equal(t, "Design footer", renamed.Name)
	assert.True(t, renamed.UpdatedAt.After(task.UpdatedAt) || renamed.UpdatedAt.Equal(task.UpdatedAt))

	stored, err := container.Task.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Design footer", stored.Name)
}

func TestTaskService_SetTaskStatus(t *testing.T) {
	container, _ := setupContainer(t)
	task := seedTask(t, container)
	ctx := context.Background()

	updated, err := container.Task.SetTaskStatus(ctx, task.ID, domain.TaskCompleted)

	require.NoError(t, err)
	assert.Equal(t, domain.TaskCompleted, updated.Status)

	completed, err := container.Task.ListTasksByStatus(ctx, domain.TaskCompleted)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, task.ID, completed[0].ID)
}

func TestTaskService_SetTaskPriority(t *testing.T) {
	container, _ := setupContainer(t)
	task := seedTask(t, container)
	ctx := context.Background()

	updated, err := container.Task.SetTaskPriority(ctx, task.ID, domain.PriorityHigh)

	require.NoError(t, err)
	assert.Equal(t, domain.PriorityHigh, updated.Priority)

	high, err := container.Task.ListTasksByPriority(ctx, domain.PriorityHigh)
	require.NoError(t, err)
	require.Len(t, high, 1)
}

func TestTaskService_TagTask(t *testing.T) {
	container, _ := setupContainer(t)
	task := seedTask(t, container)
	ctx := context.Background()

	_, err := container.Task.TagTask(ctx, task.ID, "backend")
	require.NoError(t, err)
	_, err = container.Task.TagTask(ctx, task.ID, "urgent")
	require.NoError(t, err)
	tagged, err := container.Task.TagTask(ctx, task.ID, "backend") // duplicate ignored
	require.NoError(t, err)

	assert.Equal(t, []string{"backend", "urgent"}, tagged.Tags)

	// The insertion order survives a storage round trip.
	stored, err := container.Task.GetTask(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"backend", "urgent"}, stored.Tags)

	byTag, err := container.Task.ListTasksByTag(ctx, "urgent")
	require.NoError(t, err)
	require.Len(t, byTag, 1)
	assert.Equal(t, task.ID, byTag[0].ID)
}

func TestTaskService_TaskTotalMinutes(t *testing.T) {
	container, _ := setupContainer(t)
	task := seedTask(t, container)
	ctx := context.Background()

	start := time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local)
	_, err := container.Timer.AddManualEntry(ctx, task.ID, start, start.Add(time.Hour), "")
	require.NoError(t, err)
	_, err = container.Timer.AddManualEntry(ctx, task.ID, start.Add(2*time.Hour), start.Add(150*time.Minute), "")
	require.NoError(t, err)
	// A running entry carries no duration and is excluded.
	_, err = container.Timer.StartTimer(ctx, task.ID)
	require.NoError(t, err)

	total, err := container.Task.TaskTotalMinutes(ctx, task.ID)

	require.NoError(t, err)
	assert.Equal(t, 90, total)
}

func TestTaskService_DeleteTaskWithEntries(t *testing.T) {
	container, _ := setupContainer(t)
	task := seedTask(t, container)
	ctx := context.Background()

	start := time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local)
	entry, err := container.Timer.AddManualEntry(ctx, task.ID, start, start.Add(time.Hour), "")
	require.NoError(t, err)

	err = container.Task.DeleteTaskWithEntries(ctx, task.ID)
	require.NoError(t, err)

	_, err = container.Task.GetTask(ctx, task.ID)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	_, err = container.Timer.GetTimeEntry(ctx, entry.ID)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}
