package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"timetrack/internal/errors"
	"timetrack/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the storage collaborator consumed by the services.
// It is the single source of truth for running-timer state; services do
// not cache entries between calls.
type Repository interface {
	// Project operations
	CreateProject(ctx context.Context, project *Project) error
	GetProject(ctx context.Context, id int64) (*Project, error)
	ListProjects(ctx context.Context) ([]*Project, error)
	ListProjectsByStatus(ctx context.Context, status string) ([]*Project, error)
	UpdateProject(ctx context.Context, project *Project) error
	DeleteProject(ctx context.Context, id int64) error

	// Task operations
	CreateTask(ctx context.Context, task *Task) error
	GetTask(ctx context.Context, id int64) (*Task, error)
	ListTasks(ctx context.Context) ([]*Task, error)
	ListTasksByProject(ctx context.Context, projectID int64) ([]*Task, error)
	ListTasksByStatus(ctx context.Context, status string) ([]*Task, error)
	ListTasksByPriority(ctx context.Context, priority string) ([]*Task, error)
	ListTasksByTag(ctx context.Context, tag string) ([]*Task, error)
	UpdateTask(ctx context.Context, task *Task) error
	DeleteTask(ctx context.Context, id int64) error

	// Time entry operations
	CreateTimeEntry(ctx context.Context, entry *TimeEntry) error
	GetTimeEntry(ctx context.Context, id int64) (*TimeEntry, error)
	ListTimeEntries(ctx context.Context) ([]*TimeEntry, error)
	ListTimeEntriesByTask(ctx context.Context, taskID int64) ([]*TimeEntry, error)
	FindTimeEntriesByDateRange(ctx context.Context, start, end time.Time) ([]*TimeEntry, error)
	FindRunningEntry(ctx context.Context) (*TimeEntry, error)
	UpdateTimeEntry(ctx context.Context, entry *TimeEntry) error
	DeleteTimeEntry(ctx context.Context, id int64) error

	// Utility
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db *sql.DB
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateProject creates a new project
func (r *SQLiteRepository) CreateProject(ctx context.Context, project *Project) error {
	query := `
	INSERT INTO projects (name, description, color_code, client, status, hourly_rate, budget, deadline, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		project.Name, project.Description, project.ColorCode, project.Client, project.Status,
		nullableFloat(project.HourlyRate), nullableFloat(project.Budget), FormatTimePtrForDB(project.Deadline),
		FormatTimeForDB(project.CreatedAt), FormatTimeForDB(project.UpdatedAt))
	if err != nil {
		return err
	}

	project.ID = id
	return nil
}

// GetProject retrieves a project by ID
func (r *SQLiteRepository) GetProject(ctx context.Context, id int64) (*Project, error) {
	query := `
	SELECT id, name, description, color_code, client, status, hourly_rate, budget, deadline, created_at, updated_at
	FROM projects
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanProject, "project", fmt.Sprintf("%d", id), id)
}

// ListProjects retrieves all projects ordered by name
func (r *SQLiteRepository) ListProjects(ctx context.Context) ([]*Project, error) {
	query := `
	SELECT id, name, description, color_code, client, status, hourly_rate, budget, deadline, created_at, updated_at
	FROM projects
	ORDER BY name ASC`

	return QueryMultiple(ctx, r.db, query, ScanProjects, "projects")
}

// ListProjectsByStatus retrieves all projects with the given status
func (r *SQLiteRepository) ListProjectsByStatus(ctx context.Context, status string) ([]*Project, error) {
	query := `
	SELECT id, name, description, color_code, client, status, hourly_rate, budget, deadline, created_at, updated_at
	FROM projects
	WHERE status = ?
	ORDER BY name ASC`

	return QueryMultiple(ctx, r.db, query, ScanProjects, "projects", status)
}

// UpdateProject updates an existing project
func (r *SQLiteRepository) UpdateProject(ctx context.Context, project *Project) error {
	query := `
	UPDATE projects
	SET name = ?, description = ?, color_code = ?, client = ?, status = ?, hourly_rate = ?, budget = ?, deadline = ?, updated_at = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "project", fmt.Sprintf("%d", project.ID),
		project.Name, project.Description, project.ColorCode, project.Client, project.Status,
		nullableFloat(project.HourlyRate), nullableFloat(project.Budget), FormatTimePtrForDB(project.Deadline),
		FormatTimeForDB(project.UpdatedAt), project.ID)
}

// DeleteProject deletes a project by ID
func (r *SQLiteRepository) DeleteProject(ctx context.Context, id int64) error {
	query := `DELETE FROM projects WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "project", fmt.Sprintf("%d", id), id)
}

// CreateTask creates a new task and its tags
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *Task) error {
	query := `
	INSERT INTO tasks (name, description, project_id, priority, status, estimate_minutes, due_date, billable, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		task.Name, task.Description, task.ProjectID, task.Priority, task.Status,
		nullableInt(task.EstimateMinutes), FormatTimePtrForDB(task.DueDate), task.Billable,
		FormatTimeForDB(task.CreatedAt), FormatTimeForDB(task.UpdatedAt))
	if err != nil {
		return err
	}

	task.ID = id
	return r.replaceTaskTags(ctx, task.ID, task.Tags)
}

// GetTask retrieves a task by ID, including its tags
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*Task, error) {
	query := `
	SELECT id, name, description, project_id, priority, status, estimate_minutes, due_date, billable, created_at, updated_at
	FROM tasks
	WHERE id = ?`

	task, err := QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
	if err != nil {
		return nil, err
	}

	if err := r.loadTaskTags(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// ListTasks retrieves all tasks ordered by name
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	query := `
	SELECT id, name, description, project_id, priority, status, estimate_minutes, due_date, billable, created_at, updated_at
	FROM tasks
	ORDER BY name ASC`

	return r.queryTasksWithTags(ctx, query)
}

// ListTasksByProject retrieves all tasks belonging to a project
func (r *SQLiteRepository) ListTasksByProject(ctx context.Context, projectID int64) ([]*Task, error) {
	query := `
	SELECT id, name, description, project_id, priority, status, estimate_minutes, due_date, billable, created_at, updated_at
	FROM tasks
	WHERE project_id = ?
	ORDER BY name ASC`

	return r.queryTasksWithTags(ctx, query, projectID)
}

// ListTasksByStatus retrieves all tasks with the given status
func (r *SQLiteRepository) ListTasksByStatus(ctx context.Context, status string) ([]*Task, error) {
	query := `
	SELECT id, name, description, project_id, priority, status, estimate_minutes, due_date, billable, created_at, updated_at
	FROM tasks
	WHERE status = ?
	ORDER BY name ASC`

	return r.queryTasksWithTags(ctx, query, status)
}

// ListTasksByPriority retrieves all tasks with the given priority
func (r *SQLiteRepository) ListTasksByPriority(ctx context.Context, priority string) ([]*Task, error) {
	query := `
	SELECT id, name, description, project_id, priority, status, estimate_minutes, due_date, billable, created_at, updated_at
	FROM tasks
	WHERE priority = ?
	ORDER BY name ASC`

	return r.queryTasksWithTags(ctx, query, priority)
}

// ListTasksByTag retrieves all tasks carrying the given tag
func (r *SQLiteRepository) ListTasksByTag(ctx context.Context, tag string) ([]*Task, error) {
	query := `
	SELECT tasks.id, name, description, project_id, priority, status, estimate_minutes, due_date, billable, created_at, updated_at
	FROM tasks
	JOIN task_tags ON task_tags.task_id = tasks.id
	WHERE task_tags.tag = ?
	ORDER BY name ASC`

	return r.queryTasksWithTags(ctx, query, tag)
}

// UpdateTask updates an existing task and rewrites its tags
func (r *SQLiteRepository) UpdateTask(ctx context.Context, task *Task) error {
	query := `
	UPDATE tasks
	SET name = ?, description = ?, project_id = ?, priority = ?, status = ?, estimate_minutes = ?, due_date = ?, billable = ?, updated_at = ?
	WHERE id = ?`

	err := ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", task.ID),
		task.Name, task.Description, task.ProjectID, task.Priority, task.Status,
		nullableInt(task.EstimateMinutes), FormatTimePtrForDB(task.DueDate), task.Billable,
		FormatTimeForDB(task.UpdatedAt), task.ID)
	if err != nil {
		return err
	}

	return r.replaceTaskTags(ctx, task.ID, task.Tags)
}

// DeleteTask deletes a task and its tags by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM task_tags WHERE task_id = ?`, id); err != nil {
		return HandleDatabaseError("delete task tags", err)
	}

	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), id)
}

// CreateTimeEntry creates a new time entry
func (r *SQLiteRepository) CreateTimeEntry(ctx context.Context, entry *TimeEntry) error {
	query := `
	INSERT INTO time_entries (task_id, start_time, end_time, duration_minutes, notes, billable, is_running, created_at, updated_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	id, err := ExecuteWithLastInsertID(ctx, r.db, query,
		entry.TaskID, FormatTimeForDB(entry.StartTime), FormatTimePtrForDB(entry.EndTime),
		nullableInt(entry.DurationMinutes), entry.Notes, entry.Billable, entry.IsRunning,
		FormatTimeForDB(entry.CreatedAt), FormatTimeForDB(entry.UpdatedAt))
	if err != nil {
		return err
	}

	entry.ID = id
	return nil
}

// GetTimeEntry retrieves a time entry by ID
func (r *SQLiteRepository) GetTimeEntry(ctx context.Context, id int64) (*TimeEntry, error) {
	query := `
	SELECT id, task_id, start_time, end_time, duration_minutes, notes, billable, is_running, created_at, updated_at
	FROM time_entries
	WHERE id = ?`

	return QuerySingle(ctx, r.db, query, ScanTimeEntry, "time entry", fmt.Sprintf("%d", id), id)
}

// ListTimeEntries retrieves all time entries, most recent first
func (r *SQLiteRepository) ListTimeEntries(ctx context.Context) ([]*TimeEntry, error) {
	query := `
	SELECT id, task_id, start_time, end_time, duration_minutes, notes, billable, is_running, created_at, updated_at
	FROM time_entries
	ORDER BY start_time DESC`

	return QueryMultiple(ctx, r.db, query, ScanTimeEntries, "time entries")
}

// ListTimeEntriesByTask retrieves all time entries for a task, oldest first
func (r *SQLiteRepository) ListTimeEntriesByTask(ctx context.Context, taskID int64) ([]*TimeEntry, error) {
	query := `
	SELECT id, task_id, start_time, end_time, duration_minutes, notes, billable, is_running, created_at, updated_at
	FROM time_entries
	WHERE task_id = ?
	ORDER BY start_time ASC`

	return QueryMultiple(ctx, r.db, query, ScanTimeEntries, "time entries", taskID)
}

// FindTimeEntriesByDateRange retrieves entries whose start time falls in
// [start, end] inclusive, most recent first
func (r *SQLiteRepository) FindTimeEntriesByDateRange(ctx context.Context, start, end time.Time) ([]*TimeEntry, error) {
	query := `
	SELECT id, task_id, start_time, end_time, duration_minutes, notes, billable, is_running, created_at, updated_at
	FROM time_entries
	WHERE start_time >= ? AND start_time <= ?
	ORDER BY start_time DESC`

	return QueryMultiple(ctx, r.db, query, ScanTimeEntries, "time entries",
		FormatTimeForDB(start), FormatTimeForDB(end))
}

// FindRunningEntry retrieves the currently running time entry, or nil if
// no entry is running
func (r *SQLiteRepository) FindRunningEntry(ctx context.Context) (*TimeEntry, error) {
	query := `
	SELECT id, task_id, start_time, end_time, duration_minutes, notes, billable, is_running, created_at, updated_at
	FROM time_entries
	WHERE is_running = 1
	ORDER BY start_time DESC
	LIMIT 1`

	row := r.db.QueryRowContext(ctx, query)
	entry, err := ScanTimeEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, HandleDatabaseError("scan running entry", err)
	}
	return entry, nil
}

// UpdateTimeEntry updates an existing time entry
func (r *SQLiteRepository) UpdateTimeEntry(ctx context.Context, entry *TimeEntry) error {
	query := `
	UPDATE time_entries
	SET task_id = ?, start_time = ?, end_time = ?, duration_minutes = ?, notes = ?, billable = ?, is_running = ?, updated_at = ?
	WHERE id = ?`

	return ExecuteWithRowsAffected(ctx, r.db, query, "time entry", fmt.Sprintf("%d", entry.ID),
		entry.TaskID, FormatTimeForDB(entry.StartTime), FormatTimePtrForDB(entry.EndTime),
		nullableInt(entry.DurationMinutes), entry.Notes, entry.Billable, entry.IsRunning,
		FormatTimeForDB(entry.UpdatedAt), entry.ID)
}

// DeleteTimeEntry deletes a time entry by ID
func (r *SQLiteRepository) DeleteTimeEntry(ctx context.Context, id int64) error {
	query := `DELETE FROM time_entries WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "time entry", fmt.Sprintf("%d", id), id)
}

// queryTasksWithTags runs a task query and loads tags for each result
func (r *SQLiteRepository) queryTasksWithTags(ctx context.Context, query string, args ...interface{}) ([]*Task, error) {
	tasks, err := QueryMultiple(ctx, r.db, query, ScanTasks, "tasks", args...)
	if err != nil {
		return nil, err
	}

	for _, task := range tasks {
		if err := r.loadTaskTags(ctx, task); err != nil {
			return nil, err
		}
	}
	return tasks, nil
}

// loadTaskTags loads the tags for a task in insertion order
func (r *SQLiteRepository) loadTaskTags(ctx context.Context, task *Task) error {
	rows, err := r.db.QueryContext(ctx, `SELECT tag FROM task_tags WHERE task_id = ? ORDER BY position ASC`, task.ID)
	if err != nil {
		return HandleDatabaseError("query task tags", err)
	}
	defer rows.Close()

	var tags []string
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return HandleDatabaseError("scan task tag", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return HandleDatabaseError("iterate task tags", err)
	}

	task.Tags = tags
	return nil
}

// replaceTaskTags rewrites the tags for a task. Delete and insert run as
// separate statements; a failure between them leaves the partial write in
// place, matching the documented storage contract.
func (r *SQLiteRepository) replaceTaskTags(ctx context.Context, taskID int64, tags []string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM task_tags WHERE task_id = ?`, taskID); err != nil {
		return HandleDatabaseError("delete task tags", err)
	}

	for position, tag := range tags {
		_, err := r.db.ExecContext(ctx, `INSERT INTO task_tags (task_id, position, tag) VALUES (?, ?, ?)`, taskID, position, tag)
		if err != nil {
			return HandleDatabaseError("insert task tag", err)
		}
	}
	return nil
}

func nullableFloat(f *float64) interface{} {
	if f == nil {
		return nil
	}
	return *f
}

func nullableInt(i *int) interface{} {
	if i == nil {
		return nil
	}
	return *i
}
