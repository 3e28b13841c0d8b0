package services

import (
	"context"
	"time"

	"timetrack/internal/domain"
	"timetrack/internal/report"
)

// Session pairs a running time entry with its task and a live elapsed
// clock for display.
type Session struct {
	Task    *domain.Task
	Entry   *domain.TimeEntry
	Elapsed string // HH:MM:SS live clock
}

// TimerService is the time-entry engine: the timer state machine plus
// entry CRUD. It enforces the single-running-timer invariant by always
// re-reading running state from storage; it caches nothing between calls.
type TimerService interface {
	// Timer state machine
	StartTimer(ctx context.Context, taskID int64) (*domain.TimeEntry, error)
	StopTimer(ctx context.Context, entryID int64) (*domain.TimeEntry, error)
	CurrentRunningTimer(ctx context.Context) (*domain.TimeEntry, error)
	CurrentSession(ctx context.Context) (*Session, error)

	// Entry management
	AddManualEntry(ctx context.Context, taskID int64, start, end time.Time, notes string) (*domain.TimeEntry, error)
	GetTimeEntry(ctx context.Context, id int64) (*domain.TimeEntry, error)
	UpdateTimeEntry(ctx context.Context, entry domain.TimeEntry) (*domain.TimeEntry, error)
	DeleteTimeEntry(ctx context.Context, id int64) error

	// Entry listings
	ListTimeEntries(ctx context.Context) ([]domain.TimeEntry, error)
	EntriesByTask(ctx context.Context, taskID int64) ([]domain.TimeEntry, error)
	EntriesByDateRange(ctx context.Context, start, end time.Time) ([]domain.TimeEntry, error)
}

// ProjectService handles project lifecycle operations.
type ProjectService interface {
	CreateProject(ctx context.Context, name, description string) (*domain.Project, error)
	GetProject(ctx context.Context, id int64) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	ListProjectsByStatus(ctx context.Context, status domain.ProjectStatus) ([]domain.Project, error)
	UpdateProject(ctx context.Context, project domain.Project) (*domain.Project, error)
	SetProjectStatus(ctx context.Context, id int64, status domain.ProjectStatus) (*domain.Project, error)
	DeleteProject(ctx context.Context, id int64) error
}

// TaskService handles task lifecycle and tagging operations.
type TaskService interface {
	CreateTask(ctx context.Context, name, description string, projectID int64) (*domain.Task, error)
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]domain.Task, error)
	ListTasksByProject(ctx context.Context, projectID int64) ([]domain.Task, error)
	ListTasksByStatus(ctx context.Context, status domain.TaskStatus) ([]domain.Task, error)
	ListTasksByPriority(ctx context.Context, priority domain.Priority) ([]domain.Task, error)
	ListTasksByTag(ctx context.Context, tag string) ([]domain.Task, error)

	RenameTask(ctx context.Context, id int64, name string) (*domain.Task, error)
	RedescribeTask(ctx context.Context, id int64, description string) (*domain.Task, error)
	SetTaskStatus(ctx context.Context, id int64, status domain.TaskStatus) (*domain.Task, error)
	SetTaskPriority(ctx context.Context, id int64, priority domain.Priority) (*domain.Task, error)
	TagTask(ctx context.Context, id int64, tag string) (*domain.Task, error)

	TaskTotalMinutes(ctx context.Context, id int64) (int, error)
	DeleteTaskWithEntries(ctx context.Context, id int64) error
}

// ReportService assembles aggregation results into renderable reports.
// It is a read-only consumer of entries; it never mutates them.
type ReportService interface {
	Daily(ctx context.Context, date time.Time) (*report.DailyReport, error)
	Weekly(ctx context.Context, ref time.Time) (*report.WeeklyReport, error)
	Monthly(ctx context.Context, year int, month time.Month) (*report.MonthlyReport, error)
	Project(ctx context.Context, projectID int64, start, end time.Time) (*report.ProjectReport, error)
	Overall(ctx context.Context, start, end time.Time) (*report.OverallReport, error)
	Statistics(ctx context.Context) (*report.Statistics, error)
}

// ServiceContainer bundles all services behind a single wiring point.
type ServiceContainer struct {
	Timer   TimerService
	Project ProjectService
	Task    TaskService
	Report  ReportService
}
