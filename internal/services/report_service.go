package services

import (
	"context"
	"sort"
	"time"

	"timetrack/internal/aggregate"
	"timetrack/internal/domain"
	"timetrack/internal/format"
	"timetrack/internal/report"
	"timetrack/internal/repository/sqlite"
)

const topTaskLimit = 5

// reportServiceImpl implements the ReportService interface
type reportServiceImpl struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
}

// NewReportService creates a new ReportService instance
func NewReportService(repo sqlite.Repository) ReportService {
	return &reportServiceImpl{
		repo:   repo,
		mapper: domain.NewMapper(),
	}
}

// Daily builds the report for one calendar date.
func (r *reportServiceImpl) Daily(ctx context.Context, date time.Time) (*report.DailyReport, error) {
	start := startOfDay(date)
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)

	entries, err := r.entriesInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	names, err := r.nameLookup(ctx)
	if err != nil {
		return nil, err
	}

	ordered := aggregate.OldestFirst(entries)
	lines := make([]report.EntryLine, 0, len(ordered))
	for _, entry := range ordered {
		lines = append(lines, report.EntryLine{
			TaskName: names.taskName(entry.TaskID),
			Duration: format.MinutesPtr(entry.DurationMinutes),
			Notes:    entry.Notes,
		})
	}

	summary := aggregate.Summarize(entries)
	return &report.DailyReport{
		Date:          date,
		Entries:       lines,
		ProjectTotals: sortedByKey(aggregate.SumBy(entries, names.projectKey)),
		TotalMinutes:  summary.TotalMinutes,
	}, nil
}

// Weekly builds the report for the Monday-to-Sunday week containing ref.
func (r *reportServiceImpl) Weekly(ctx context.Context, ref time.Time) (*report.WeeklyReport, error) {
	start, end := aggregate.WeekBounds(ref)

	entries, err := r.entriesInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	names, err := r.nameLookup(ctx)
	if err != nil {
		return nil, err
	}

	summary := aggregate.Summarize(entries)
	return &report.WeeklyReport{
		WeekStart:     start,
		WeekEnd:       start.AddDate(0, 0, 6),
		DayTotals:     sortedByKey(aggregate.SumByDay(entries)),
		ProjectTotals: sortedByKey(aggregate.SumBy(entries, names.projectKey)),
		TotalMinutes:  summary.TotalMinutes,
		EntryCount:    summary.EntryCount,
	}, nil
}

// Monthly builds the report for one calendar month.
func (r *reportServiceImpl) Monthly(ctx context.Context, year int, month time.Month) (*report.MonthlyReport, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	entries, err := r.entriesInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	names, err := r.nameLookup(ctx)
	if err != nil {
		return nil, err
	}

	summary := aggregate.Summarize(entries)
	return &report.MonthlyReport{
		Year:          year,
		Month:         month,
		ProjectTotals: sortedByKey(aggregate.SumBy(entries, names.projectKey)),
		TopTasks:      aggregate.TopTasks(aggregate.OldestFirst(entries), names.taskName, topTaskLimit),
		TotalMinutes:  summary.TotalMinutes,
		EntryCount:    summary.EntryCount,
	}, nil
}

// Project builds the per-task report for one project. Task subtotals
// cover the task's full history; the period is header information.
func (r *reportServiceImpl) Project(ctx context.Context, projectID int64, start, end time.Time) (*report.ProjectReport, error) {
	dbProject, err := r.repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	project := r.mapper.Project.FromDatabase(*dbProject)

	dbTasks, err := r.repo.ListTasksByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	tasks := r.mapper.Task.FromDatabaseSlice(dbTasks)

	totalMinutes := 0
	lines := make([]report.TaskLine, 0, len(tasks))
	for _, task := range tasks {
		entries, err := r.repo.ListTimeEntriesByTask(ctx, task.ID)
		if err != nil {
			return nil, err
		}

		taskMinutes := 0
		for _, entry := range entries {
			if entry.DurationMinutes != nil {
				taskMinutes += *entry.DurationMinutes
			}
		}
		totalMinutes += taskMinutes

		lines = append(lines, report.TaskLine{
			Name:            task.Name,
			StatusDisplay:   domain.TaskStatusDisplayName(task.Status),
			Minutes:         taskMinutes,
			EstimateMinutes: task.EstimateMinutes,
		})
	}

	return &report.ProjectReport{
		ProjectName:   project.Name,
		Client:        project.Client,
		StatusDisplay: domain.ProjectStatusDisplayName(project.Status),
		PeriodStart:   start,
		PeriodEnd:     end,
		Tasks:         lines,
		TotalMinutes:  totalMinutes,
		HourlyRate:    project.HourlyRate,
	}, nil
}

// Overall builds the billable-split report for a window.
func (r *reportServiceImpl) Overall(ctx context.Context, start, end time.Time) (*report.OverallReport, error) {
	entries, err := r.entriesInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	names, err := r.nameLookup(ctx)
	if err != nil {
		return nil, err
	}

	summary := aggregate.Summarize(entries)
	return &report.OverallReport{
		PeriodStart:        start,
		PeriodEnd:          end,
		EntryCount:         summary.EntryCount,
		TotalMinutes:       summary.TotalMinutes,
		BillableMinutes:    summary.BillableMinutes,
		NonBillableMinutes: summary.NonBillableMinutes(),
		ProjectTotals:      sortedByMinutesDesc(aggregate.SumBy(entries, names.projectKey)),
	}, nil
}

// Statistics builds the read-only cross-entity snapshot.
func (r *reportServiceImpl) Statistics(ctx context.Context) (*report.Statistics, error) {
	projects, err := r.repo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	activeProjects, err := r.repo.ListProjectsByStatus(ctx, domain.ProjectActive.String())
	if err != nil {
		return nil, err
	}
	tasks, err := r.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	completedTasks, err := r.repo.ListTasksByStatus(ctx, domain.TaskCompleted.String())
	if err != nil {
		return nil, err
	}
	entries, err := r.repo.ListTimeEntries(ctx)
	if err != nil {
		return nil, err
	}
	running, err := r.repo.FindRunningEntry(ctx)
	if err != nil {
		return nil, err
	}

	return &report.Statistics{
		TotalProjects:    len(projects),
		ActiveProjects:   len(activeProjects),
		TotalTasks:       len(tasks),
		CompletedTasks:   len(completedTasks),
		TotalTimeEntries: len(entries),
		HasRunningTimer:  running != nil,
	}, nil
}

// entriesInRange fetches domain entries starting within [start, end].
func (r *reportServiceImpl) entriesInRange(ctx context.Context, start, end time.Time) ([]domain.TimeEntry, error) {
	dbEntries, err := r.repo.FindTimeEntriesByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return r.mapper.TimeEntry.FromDatabaseSlice(dbEntries), nil
}

// nameLookup resolves task and project names by task ID. Names are
// resolved through storage lookups, never through embedded back-references.
type nameLookup struct {
	taskNames    map[int64]string
	projectNames map[int64]string // keyed by task ID
}

func (n *nameLookup) taskName(taskID int64) string {
	if name, ok := n.taskNames[taskID]; ok {
		return name
	}
	return "(unknown task)"
}

func (n *nameLookup) projectKey(entry domain.TimeEntry) string {
	if name, ok := n.projectNames[entry.TaskID]; ok {
		return name
	}
	return "(unknown project)"
}

func (r *reportServiceImpl) nameLookup(ctx context.Context) (*nameLookup, error) {
	dbProjects, err := r.repo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	projectByID := make(map[int64]string, len(dbProjects))
	for _, dbProject := range dbProjects {
		projectByID[dbProject.ID] = dbProject.Name
	}

	dbTasks, err := r.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	lookup := &nameLookup{
		taskNames:    make(map[int64]string, len(dbTasks)),
		projectNames: make(map[int64]string, len(dbTasks)),
	}
	for _, dbTask := range dbTasks {
		lookup.taskNames[dbTask.ID] = dbTask.Name
		if projectName, ok := projectByID[dbTask.ProjectID]; ok {
			lookup.projectNames[dbTask.ID] = projectName
		}
	}
	return lookup, nil
}

func sortedByKey(totals map[string]int) []report.KeyMinutes {
	result := make([]report.KeyMinutes, 0, len(totals))
	for key, minutes := range totals {
		result = append(result, report.KeyMinutes{Key: key, Minutes: minutes})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Key < result[j].Key
	})
	return result
}

func sortedByMinutesDesc(totals map[string]int) []report.KeyMinutes {
	result := make([]report.KeyMinutes, 0, len(totals))
	for key, minutes := range totals {
		result = append(result, report.KeyMinutes{Key: key, Minutes: minutes})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Minutes != result[j].Minutes {
			return result[i].Minutes > result[j].Minutes
		}
		return result[i].Key < result[j].Key
	})
	return result
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
