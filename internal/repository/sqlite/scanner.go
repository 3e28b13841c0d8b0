package sqlite

import (
	"database/sql"
	"time"
)

// Scanner is the common scanning behavior of sql.Row and sql.Rows.
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows is the common iteration behavior of sql.Rows.
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// Timestamp columns are scanned as text and parsed with ParseTimeFromDB
// so stored values always come back as local times, independent of the
// driver's own time conversion.
func parseTimePtr(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid {
		return nil, nil
	}
	t, err := ParseTimeFromDB(ns.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ScanProject scans a single project from a database row.
func ScanProject(scanner Scanner) (*Project, error) {
	project := &Project{}
	var hourlyRate, budget sql.NullFloat64
	var deadline sql.NullString
	var createdAt, updatedAt string

	err := scanner.Scan(
		&project.ID,
		&project.Name,
		&project.Description,
		&project.ColorCode,
		&project.Client,
		&project.Status,
		&hourlyRate,
		&budget,
		&deadline,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if project.CreatedAt, err = ParseTimeFromDB(createdAt); err != nil {
		return nil, err
	}
	if project.UpdatedAt, err = ParseTimeFromDB(updatedAt); err != nil {
		return nil, err
	}
	if project.Deadline, err = parseTimePtr(deadline); err != nil {
		return nil, err
	}
	if hourlyRate.Valid {
		project.HourlyRate = &hourlyRate.Float64
	}
	if budget.Valid {
		project.Budget = &budget.Float64
	}

	return project, nil
}

// ScanProjects scans multiple projects from database rows.
func ScanProjects(rows Rows) ([]*Project, error) {
	var projects []*Project
	for rows.Next() {
		project, err := ScanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}

// ScanTask scans a single task from a database row. Tags come from a
// separate table and are loaded by the repository after scanning.
func ScanTask(scanner Scanner) (*Task, error) {
	task := &Task{}
	var estimate sql.NullInt64
	var dueDate sql.NullString
	var createdAt, updatedAt string

	err := scanner.Scan(
		&task.ID,
		&task.Name,
		&task.Description,
		&task.ProjectID,
		&task.Priority,
		&task.Status,
		&estimate,
		&dueDate,
		&task.Billable,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if task.CreatedAt, err = ParseTimeFromDB(createdAt); err != nil {
		return nil, err
	}
	if task.UpdatedAt, err = ParseTimeFromDB(updatedAt); err != nil {
		return nil, err
	}
	if task.DueDate, err = parseTimePtr(dueDate); err != nil {
		return nil, err
	}
	if estimate.Valid {
		minutes := int(estimate.Int64)
		task.EstimateMinutes = &minutes
	}

	return task, nil
}

// ScanTasks scans multiple tasks from database rows.
func ScanTasks(rows Rows) ([]*Task, error) {
	var tasks []*Task
	for rows.Next() {
		task, err := ScanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// ScanTimeEntry scans a single time entry from a database row.
func ScanTimeEntry(scanner Scanner) (*TimeEntry, error) {
	entry := &TimeEntry{}
	var endTime sql.NullString
	var duration sql.NullInt64
	var startTime, createdAt, updatedAt string

	err := scanner.Scan(
		&entry.ID,
		&entry.TaskID,
		&startTime,
		&endTime,
		&duration,
		&entry.Notes,
		&entry.Billable,
		&entry.IsRunning,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if entry.StartTime, err = ParseTimeFromDB(startTime); err != nil {
		return nil, err
	}
	if entry.CreatedAt, err = ParseTimeFromDB(createdAt); err != nil {
		return nil, err
	}
	if entry.UpdatedAt, err = ParseTimeFromDB(updatedAt); err != nil {
		return nil, err
	}
	if entry.EndTime, err = parseTimePtr(endTime); err != nil {
		return nil, err
	}
	if duration.Valid {
		minutes := int(duration.Int64)
		entry.DurationMinutes = &minutes
	}

	return entry, nil
}

// ScanTimeEntries scans multiple time entries from database rows.
func ScanTimeEntries(rows Rows) ([]*TimeEntry, error) {
	var entries []*TimeEntry
	for rows.Next() {
		entry, err := ScanTimeEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
