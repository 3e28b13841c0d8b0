package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetrack/internal/domain"
	"timetrack/internal/errors"
)

func TestProjectService_CreateProject(t *testing.T) {
	t.Run("should create an active project", func(t *testing.T) {
		container, _ := setupContainer(t)

		project, err := container.Project.CreateProject(context.Background(), "Website", "redesign")

		require.NoError(t, err)
		assert.Greater(t, project.ID, int64(0))
		assert.Equal(t, domain.ProjectActive, project.Status)
	})

	t.Run("should reject an empty name", func(t *testing.T) {
		container, _ := setupContainer(t)

		_, err := container.Project.CreateProject(context.Background(), "  ", "")

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
	})
}

func TestProjectService_SetProjectStatus(t *testing.T) {
	container, _ := setupContainer(t)
	ctx := context.Background()
	project, err := container.Project.CreateProject(ctx, "Website", "")
	require.NoError(t, err)

	// Transitions are free-form in any direction.
	archived, err := container.Project.SetProjectStatus(ctx, project.ID, domain.ProjectArchived)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectArchived, archived.Status)

	completed, err := container.Project.SetProjectStatus(ctx, project.ID, domain.ProjectCompleted)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectCompleted, completed.Status)

	active, err := container.Project.SetProjectStatus(ctx, project.ID, domain.ProjectActive)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectActive, active.Status)
}

func TestProjectService_ListProjectsByStatus(t *testing.T) {
	container, _ := setupContainer(t)
	ctx := context.Background()

	first, err := container.Project.CreateProject(ctx, "Website", "")
	require.NoError(t, err)
	_, err = container.Project.CreateProject(ctx, "Internal", "")
	require.NoError(t, err)
	_, err = container.Project.SetProjectStatus(ctx, first.ID, domain.ProjectArchived)
	require.NoError(t, err)

	active, err := container.Project.ListProjectsByStatus(ctx, domain.ProjectActive)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Internal", active[0].Name)

	archived, err := container.Project.ListProjectsByStatus(ctx, domain.ProjectArchived)
	require.NoError(t, err)
	require.Len(t, archived, 1)
	assert.Equal(t, "Website", archived[0].Name)
}

func TestProjectService_UpdateProject(t *testing.T) {
	t.Run("should persist edited fields", func(t *testing.T) {
		container, _ := setupContainer(t)
		ctx := context.Background()
		project, err := container.Project.CreateProject(ctx, "Website", "")
		require.NoError(t, err)

		rate := 75.0
		edited := *project
		edited.Client = "Acme Corp"
		edited.HourlyRate = &rate

		updated, err := container.Project.UpdateProject(ctx, edited)

		require.NoError(t, err)
		assert.Equal(t, "Acme Corp", updated.Client)
		require.NotNil(t, updated.HourlyRate)
		assert.Equal(t, 75.0, *updated.HourlyRate)

		stored, err := container.Project.GetProject(ctx, project.ID)
		require.NoError(t, err)
		assert.Equal(t, "Acme Corp", stored.Client)
	})

	t.Run("should fail with not found for an unknown project", func(t *testing.T) {
		container, _ := setupContainer(t)

		ghost := domain.Project{ID: 9999, Name: "Ghost"}
		_, err := container.Project.UpdateProject(context.Background(), ghost)

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})

	t.Run("should reject a negative hourly rate", func(t *testing.T) {
		container, _ := setupContainer(t)
		ctx := context.Background()
		project, err := container.Project.CreateProject(ctx, "Website", "")
		require.NoError(t, err)

		rate := -10.0
		edited := *project
		edited.HourlyRate = &rate

		_, err = container.Project.UpdateProject(ctx, edited)

		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
	})
}

func TestProjectService_GetProject(t *testing.T) {
	container, _ := setupContainer(t)

	_, err := container.Project.GetProject(context.Background(), 9999)

	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}
