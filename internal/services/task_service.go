package services

import (
	"context"
	"time"

	"timetrack/internal/domain"
	"timetrack/internal/errors"
	"timetrack/internal/repository/sqlite"
	"timetrack/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          sqlite.Repository
	mapper        *domain.Mapper
	taskValidator *validation.TaskValidator
}

// NewTaskService creates a new TaskService instance
func NewTaskService(repo sqlite.Repository) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		mapper:        domain.NewMapper(),
		taskValidator: validation.NewTaskValidator(),
	}
}

// CreateTask creates a new task in the given project
func (t *taskServiceImpl) CreateTask(ctx context.Context, name, description string, projectID int64) (*domain.Task, error) {
	trimmedName, err := t.taskValidator.GetValidTaskName(name)
	if err != nil {
		return nil, errors.NewValidationError("invalid task name", err)
	}

	// Resolve the project so unknown IDs fail as not-found, not as a
	// foreign key violation
	if _, err := t.repo.GetProject(ctx, projectID); err != nil {
		return nil, err
	}

	task := domain.NewTask(trimmedName, description, projectID, time.Now())
	dbTask := t.mapper.Task.ToDatabase(task)
	if err := t.repo.CreateTask(ctx, &dbTask); err != nil {
		return nil, err
	}

	created := t.mapper.Task.FromDatabase(dbTask)
	return &created, nil
}

// GetTask retrieves a task by ID
func (t *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return nil, errors.NewValidationError("invalid task ID", err)
	}

	dbTask, err := t.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	task := t.mapper.Task.FromDatabase(*dbTask)
	return &task, nil
}

// ListTasks retrieves all tasks
func (t *taskServiceImpl) ListTasks(ctx context.Context) ([]domain.Task, error) {
	dbTasks, err := t.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return t.mapper.Task.FromDatabaseSlice(dbTasks), nil
}

// ListTasksByProject retrieves all tasks belonging to a project
func (t *taskServiceImpl) ListTasksByProject(ctx context.Context, projectID int64) ([]domain.Task, error) {
	dbTasks, err := t.repo.ListTasksByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return t.mapper.Task.FromDatabaseSlice(dbTasks), nil
}

// ListTasksByStatus retrieves all tasks with the given status
func (t *taskServiceImpl) ListTasksByStatus(ctx context.Context, status domain.TaskStatus) ([]domain.Task, error) {
	dbTasks, err := t.repo.ListTasksByStatus(ctx, status.String())
	if err != nil {
		return nil, err
	}
	return t.mapper.Task.FromDatabaseSlice(dbTasks), nil
}

// ListTasksByPriority retrieves all tasks with the given priority
func (t *taskServiceImpl) ListTasksByPriority(ctx context.Context, priority domain.Priority) ([]domain.Task, error) {
	dbTasks, err := t.repo.ListTasksByPriority(ctx, priority.String())
	if err != nil {
		return nil, err
	}
	return t.mapper.Task.FromDatabaseSlice(dbTasks), nil
}

// ListTasksByTag retrieves all tasks carrying the given tag
func (t *taskServiceImpl) ListTasksByTag(ctx context.Context, tag string) ([]domain.Task, error) {
	dbTasks, err := t.repo.ListTasksByTag(ctx, tag)
	if err != nil {
		return nil, err
	}
	return t.mapper.Task.FromDatabaseSlice(dbTasks), nil
}

// RenameTask updates a task's name, refreshing UpdatedAt
func (t *taskServiceImpl) RenameTask(ctx context.Context, id int64, name string) (*domain.Task, error) {
	trimmedName, err := t.taskValidator.GetValidTaskName(name)
	if err != nil {
		return nil, errors.NewValidationError("invalid task name", err)
	}

	task, err := t.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	renamed := task.Rename(trimmedName, time.Now())
	return t.saveTask(ctx, renamed)
}

// RedescribeTask updates a task's description, refreshing UpdatedAt
func (t *taskServiceImpl) RedescribeTask(ctx context.Context, id int64, description string) (*domain.Task, error) {
	task, err := t.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	redescribed := task.Redescribe(description, time.Now())
	return t.saveTask(ctx, redescribed)
}

// SetTaskStatus updates a task's workflow status
func (t *taskServiceImpl) SetTaskStatus(ctx context.Context, id int64, status domain.TaskStatus) (*domain.Task, error) {
	task, err := t.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Status = status
	task.UpdatedAt = time.Now()
	return t.saveTask(ctx, *task)
}

// SetTaskPriority updates a task's priority
func (t *taskServiceImpl) SetTaskPriority(ctx context.Context, id int64, priority domain.Priority) (*domain.Task, error) {
	task, err := t.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Priority = priority
	task.UpdatedAt = time.Now()
	return t.saveTask(ctx, *task)
}

// TagTask adds a tag to a task, preserving insertion order and ignoring
// duplicates
func (t *taskServiceImpl) TagTask(ctx context.Context, id int64, tag string) (*domain.Task, error) {
	task, err := t.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	tagged := task.AddTag(tag)
	tagged.UpdatedAt = time.Now()
	return t.saveTask(ctx, tagged)
}

// TaskTotalMinutes sums the recorded minutes across a task's entries.
// Running entries carry no duration and are excluded.
func (t *taskServiceImpl) TaskTotalMinutes(ctx context.Context, id int64) (int, error) {
	dbEntries, err := t.repo.ListTimeEntriesByTask(ctx, id)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, dbEntry := range dbEntries {
		if dbEntry.DurationMinutes != nil {
			total += *dbEntry.DurationMinutes
		}
	}
	return total, nil
}

// DeleteTaskWithEntries deletes a task and all its time entries
func (t *taskServiceImpl) DeleteTaskWithEntries(ctx context.Context, id int64) error {
	if err := t.taskValidator.ValidateTaskID(id); err != nil {
		return errors.NewValidationError("invalid task ID", err)
	}

	if _, err := t.repo.GetTask(ctx, id); err != nil {
		return err
	}

	entries, err := t.repo.ListTimeEntriesByTask(ctx, id)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if err := t.repo.DeleteTimeEntry(ctx, entry.ID); err != nil {
			return err
		}
	}

	return t.repo.DeleteTask(ctx, id)
}

// saveTask persists a modified task and returns the stored version
func (t *taskServiceImpl) saveTask(ctx context.Context, task domain.Task) (*domain.Task, error) {
	dbTask := t.mapper.Task.ToDatabase(task)
	if err := t.repo.UpdateTask(ctx, &dbTask); err != nil {
		return nil, err
	}

	saved := t.mapper.Task.FromDatabase(dbTask)
	return &saved, nil
}
