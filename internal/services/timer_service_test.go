package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetrack/internal/domain"
	"timetrack/internal/errors"
	"timetrack/internal/repository/sqlite"
)

func setupContainer(t *testing.T) (*ServiceContainer, sqlite.Repository) {
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return NewServiceContainer(repo), repo
}

func seedTask(t *testing.T, container *ServiceContainer) *domain.Task {
	ctx := context.Background()
	project, err := container.Project.CreateProject(ctx, "Website", "")
	require.NoError(t, err)
	task, err := container.Task.CreateTask(ctx, "Design header", "", project.ID)
	require.NoError(t, err)
	return task
}

func TestTimerService_StartTimer(t *testing.T) {
	t.Run("should create a running entry for the task", func(t *testing.T) {
		container, _ := setupContainer(t)
		task := seedTask(t, container)

		entry, err := container.Timer.StartTimer(context.Background(), task.ID)

		require.NoError(t, err)
		assert.Equal(t, task.ID, entry.TaskID)
		assert.True(t, entry.IsRunning)
		assert.Nil(t, entry.EndTime)
		assert.Nil(t, entry.DurationMinutes)
		assert.True(t, entry.Billable) // copied from the task
	})

	t.Run("should stop the running timer before starting a new one", func(t *testing.T) {
		container, _ := setupContainer(t)
		task := seedTask(t, container)
		ctx := context.Background()

		first, err := container.Timer.StartTimer(ctx, task.ID)
		require.NoError(t, err)

		second, err := container.Timer.StartTimer(ctx, task.ID)
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)

		// The first entry was auto-stopped and now carries a duration.
		stopped, err := container.Timer.GetTimeEntry(ctx, first.ID)
		require.NoError(t, err)
		assert.False(t, stopped.IsRunning)
		require.NotNil(t, stopped.EndTime)
		require.NotNil(t, stopped.DurationMinutes)

		// Exactly one entry is running.
		running, err := container.Timer.CurrentRunningTimer(ctx)
		require.NoError(t, err)
		require.NotNil(t, running)
		assert.Equal(t, second.ID, running.ID)
	})

	t.Run("should fail with not found for an unknown task", func(t *testing.T) {
		container, _ := setupContainer(t)

		_, err := container.Timer.StartTimer(context.Background(), 9999)

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})
}

func TestTimerService_StopTimer(t *testing.T) {
	t.Run("should stop a running entry and record its duration", func(t *testing.T) {
		container, _ := setupContainer(t)
		task := seedTask(t, container)
		ctx := context.Background()

		started, err := container.Timer.StartTimer(ctx, task.ID)
		require.NoError(t, err)

		stopped, err := container.Timer.StopTimer(ctx, started.ID)

		require.NoError(t, err)
		assert.False(t, stopped.IsRunning)
		require.NotNil(t, stopped.EndTime)
		require.NotNil(t, stopped.DurationMinutes)
		assert.Equal(t, 0, *stopped.DurationMinutes) // under a minute elapsed

		running, err := container.Timer.CurrentRunningTimer(ctx)
		require.NoError(t, err)
		assert.Nil(t, running)
	})

	t.Run("should fail with invalid state for a stopped entry", func(t *testing.T) {
		container, _ := setupContainer(t)
		task := seedTask(t, container)
		ctx := context.Background()

		started, err := container.Timer.StartTimer(ctx, task.ID)
		require.NoError(t, err)
		_, err = container.Timer.StopTimer(ctx, started.ID)
		require.NoError(t, err)

		_, err = container.Timer.StopTimer(ctx, started.ID)

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidState))
	})

	t.Run("should fail with not found for an unknown entry", func(t *testing.T) {
		container, _ := setupContainer(t)

		_, err := container.Timer.StopTimer(context.Background(), 9999)

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})
}

func TestTimerService_CurrentSession(t *testing.T) {
	t.Run("should return nil when no timer is running", func(t *testing.T) {
		container, _ := setupContainer(t)

		session, err := container.Timer.CurrentSession(context.Background())

		require.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("should pair the running entry with its task", func(t *testing.T) {
		container, _ := setupContainer(t)
		task := seedTask(t, container)
		ctx := context.Background()

		_, err := container.Timer.StartTimer(ctx, task.ID)
		require.NoError(t, err)

		session, err := container.Timer.CurrentSession(ctx)

		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, task.ID, session.Task.ID)
		assert.Equal(t, "Design header", session.Task.Name)
		assert.Regexp(t, `^\d{2}:\d{2}:\d{2}$`, session.Elapsed)
	})
}

func TestTimerService_AddManualEntry(t *testing.T) {
	t.Run("should record a completed entry with a truncated duration", func(t *testing.T) {
		container, _ := setupContainer(t)
		task := seedTask(t, container)

		start := time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local)
		end := start.Add(90*time.Minute + 30*time.Second)

		entry, err := container.Timer.AddManualEntry(context.Background(), task.ID, start, end, "sprint planning")

		require.NoError(t, err)
		assert.False(t, entry.IsRunning)
		require.NotNil(t, entry.DurationMinutes)
		assert.Equal(t, 90, *entry.DurationMinutes)
		assert.Equal(t, "sprint planning", entry.Notes)
	})

	t.Run("should reject an end before the start", func(t *testing.T) {
		container, _ := setupContainer(t)
		task := seedTask(t, container)

		start := time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local)

		_, err := container.Timer.AddManualEntry(context.Background(), task.ID, start, start.Add(-time.Hour), "")

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
	})

	t.Run("should accept entries overlapping existing ones", func(t *testing.T) {
		container, _ := setupContainer(t)
		task := seedTask(t, container)
		ctx := context.Background()

		start := time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local)
		_, err := container.Timer.AddManualEntry(ctx, task.ID, start, start.Add(time.Hour), "")
		require.NoError(t, err)

		_, err = container.Timer.AddManualEntry(ctx, task.ID, start.Add(30*time.Minute), start.Add(90*time.Minute), "")
		require.NoError(t, err)

		total, err := container.Task.TaskTotalMinutes(ctx, task.ID)
		require.NoError(t, err)
		assert.Equal(t, 120, total)
	})
}

func TestTimerService_UpdateTimeEntry(t *testing.T) {
	t.Run("should recompute the duration from the new endpoints", func(t *testing.T) {
		container, _ := setupContainer(t)
		task := seedTask(t, container)
		ctx := context.Background()

		start := time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local)
		entry, err := container.Timer.AddManualEntry(ctx, task.ID, start, start.Add(time.Hour), "")
		require.NoError(t, err)

		edited := *entry
		newEnd := start.Add(2 * time.Hour)
		edited.EndTime = &newEnd
		bogus := 5
		edited.DurationMinutes = &bogus // callers cannot force a duration

		updated, err := container.Timer.UpdateTimeEntry(ctx, edited)

		require.NoError(t, err)
		require.NotNil(t, updated.DurationMinutes)
		assert.Equal(t, 120, *updated.DurationMinutes)
	})

	t.Run("should fail with invalid state for a running entry", func(t *testing.T) {
		container, _ := setupContainer(t)
		task := seedTask(t, container)
		ctx := context.Background()

		entry, err := container.Timer.StartTimer(ctx, task.ID)
		require.NoError(t, err)

		edited := *entry
		end := entry.StartTime.Add(time.Hour)
		edited.EndTime = &end

		_, err = container.Timer.UpdateTimeEntry(ctx, edited)

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidState))
	})
}

func TestTimerService_DeleteTimeEntry(t *testing.T) {
	container, _ := setupContainer(t)
	task := seedTask(t, container)
	ctx := context.Background()

	start := time.Date(2026, 8, 30, 9, 0, 0, 0, time.Local)
	entry, err := container.Timer.AddManualEntry(ctx, task.ID, start, start.Add(time.Hour), "")
	require.NoError(t, err)

	err = container.Timer.DeleteTimeEntry(ctx, entry.ID)
	require.NoError(t, err)

	_, err = container.Timer.GetTimeEntry(ctx, entry.ID)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestTimerService_EntriesByDateRange(t *testing.T) {
	container, _ := setupContainer(t)
	task := seedTask(t, container)
	ctx := context.Background()

	inRange := time.Date(2026, 8, 26, 9, 0, 0, 0, time.Local)
	outOfRange := time.Date(2026, 8, 10, 9, 0, 0, 0, time.Local)
	_, err := container.Timer.AddManualEntry(ctx, task.ID, inRange, inRange.Add(time.Hour), "")
	require.NoError(t, err)
	_, err = container.Timer.AddManualEntry(ctx, task.ID, outOfRange, outOfRange.Add(time.Hour), "")
	require.NoError(t, err)

	entries, err := container.Timer.EntriesByDateRange(ctx,
		time.Date(2026, 8, 24, 0, 0, 0, 0, time.Local),
		time.Date(2026, 8, 30, 23, 59, 59, 0, time.Local))

	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, inRange.Unix(), entries[0].StartTime.Unix())
}
