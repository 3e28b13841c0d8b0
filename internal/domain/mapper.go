package domain

import (
	"timetrack/internal/repository/sqlite"
)

// Mapper bundles the per-entity mappers between domain and database models.
type Mapper struct {
	Project   *ProjectMapper
	Task      *TaskMapper
	TimeEntry *TimeEntryMapper
}

// NewMapper creates a Mapper with all entity mappers initialized.
func NewMapper() *Mapper {
	return &Mapper{
		Project:   NewProjectMapper(),
		Task:      NewTaskMapper(),
		TimeEntry: NewTimeEntryMapper(),
	}
}

// ProjectMapper handles conversion between domain and database Project models.
type ProjectMapper struct{}

// NewProjectMapper creates a new ProjectMapper instance.
func NewProjectMapper() *ProjectMapper {
	return &ProjectMapper{}
}

// ToDatabase converts a domain Project to a database Project.
func (m *ProjectMapper) ToDatabase(project Project) sqlite.Project {
	return sqlite.Project{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		ColorCode:   project.ColorCode,
		Client:      project.Client,
		Status:      project.Status.String(),
		HourlyRate:  project.HourlyRate,
		Budget:      project.Budget,
		Deadline:    project.Deadline,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}
}

// FromDatabase converts a database Project to a domain Project.
func (m *ProjectMapper) FromDatabase(dbProject sqlite.Project) Project {
	return Project{
		ID:          dbProject.ID,
		Name:        dbProject.Name,
		Description: dbProject.Description,
		ColorCode:   dbProject.ColorCode,
		Client:      dbProject.Client,
		Status:      parseProjectStatus(dbProject.Status),
		HourlyRate:  dbProject.HourlyRate,
		Budget:      dbProject.Budget,
		Deadline:    dbProject.Deadline,
		CreatedAt:   dbProject.CreatedAt,
		UpdatedAt:   dbProject.UpdatedAt,
	}
}

// FromDatabaseSlice converts a slice of database Projects to domain Projects.
func (m *ProjectMapper) FromDatabaseSlice(dbProjects []*sqlite.Project) []Project {
	projects := make([]Project, len(dbProjects))
	for i, dbProject := range dbProjects {
		projects[i] = m.FromDatabase(*dbProject)
	}
	return projects
}

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(task Task) sqlite.Task {
	return sqlite.Task{
		ID:              task.ID,
		Name:            task.Name,
		Description:     task.Description,
		ProjectID:       task.ProjectID,
		Tags:            task.Tags,
		Priority:        task.Priority.String(),
		Status:          task.Status.String(),
		EstimateMinutes: task.EstimateMinutes,
		DueDate:         task.DueDate,
		Billable:        task.Billable,
		CreatedAt:       task.CreatedAt,
		UpdatedAt:       task.UpdatedAt,
	}
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask sqlite.Task) Task {
	return Task{
		ID:              dbTask.ID,
		Name:            dbTask.Name,
		Description:     dbTask.Description,
		ProjectID:       dbTask.ProjectID,
		Tags:            dbTask.Tags,
		Priority:        parsePriority(dbTask.Priority),
		Status:          parseTaskStatus(dbTask.Status),
		EstimateMinutes: dbTask.EstimateMinutes,
		DueDate:         dbTask.DueDate,
		Billable:        dbTask.Billable,
		CreatedAt:       dbTask.CreatedAt,
		UpdatedAt:       dbTask.UpdatedAt,
	}
}

// FromDatabaseSlice converts a slice of database Tasks to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*sqlite.Task) []Task {
	tasks := make([]Task, len(dbTasks))
	for i, dbTask := range dbTasks {
		tasks[i] = m.FromDatabase(*dbTask)
	}
	return tasks
}

// TimeEntryMapper handles conversion between domain and database TimeEntry models.
type TimeEntryMapper struct{}

// NewTimeEntryMapper creates a new TimeEntryMapper instance.
func NewTimeEntryMapper() *TimeEntryMapper {
	return &TimeEntryMapper{}
}

// ToDatabase converts a domain TimeEntry to a database TimeEntry.
func (m *TimeEntryMapper) ToDatabase(entry TimeEntry) sqlite.TimeEntry {
	return sqlite.TimeEntry{
		ID:              entry.ID,
		TaskID:          entry.TaskID,
		StartTime:       entry.StartTime,
		EndTime:         entry.EndTime,
		DurationMinutes: entry.DurationMinutes,
		Notes:           entry.Notes,
		Billable:        entry.Billable,
		IsRunning:       entry.IsRunning,
		CreatedAt:       entry.CreatedAt,
		UpdatedAt:       entry.UpdatedAt,
	}
}

// FromDatabase converts a database TimeEntry to a domain TimeEntry.
// DurationMinutes is carried over verbatim, never recomputed from the
// timestamps.
func (m *TimeEntryMapper) FromDatabase(dbEntry sqlite.TimeEntry) TimeEntry {
	return TimeEntry{
		ID:              dbEntry.ID,
		TaskID:          dbEntry.TaskID,
		StartTime:       dbEntry.StartTime,
		EndTime:         dbEntry.EndTime,
		DurationMinutes: dbEntry.DurationMinutes,
		Notes:           dbEntry.Notes,
		Billable:        dbEntry.Billable,
		IsRunning:       dbEntry.IsRunning,
		CreatedAt:       dbEntry.CreatedAt,
		UpdatedAt:       dbEntry.UpdatedAt,
	}
}

// FromDatabaseSlice converts a slice of database TimeEntries to domain TimeEntries.
func (m *TimeEntryMapper) FromDatabaseSlice(dbEntries []*sqlite.TimeEntry) []TimeEntry {
	entries := make([]TimeEntry, len(dbEntries))
	for i, dbEntry := range dbEntries {
		entries[i] = m.FromDatabase(*dbEntry)
	}
	return entries
}

func parseProjectStatus(s string) ProjectStatus {
	switch s {
	case "archived":
		return ProjectArchived
	case "completed":
		return ProjectCompleted
	default:
		return ProjectActive
	}
}

func parsePriority(s string) Priority {
	switch s {
	case "low":
		return PriorityLow
	case "high":
		return PriorityHigh
	default:
		return PriorityMedium
	}
}

func parseTaskStatus(s string) TaskStatus {
	switch s {
	case "in_progress":
		return TaskInProgress
	case "completed":
		return TaskCompleted
	default:
		return TaskTodo
	}
}
