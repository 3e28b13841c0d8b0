package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"timetrack/internal/domain"
	"timetrack/internal/errors"
	"timetrack/internal/format"
	"timetrack/internal/repository/sqlite"
	"timetrack/internal/validation"
)

// timerServiceImpl implements the TimerService interface
type timerServiceImpl struct {
	repo               sqlite.Repository
	mapper             *domain.Mapper
	timeEntryValidator *validation.TimeEntryValidator

	// mu serializes the read-check-write sequences of StartTimer and
	// StopTimer; storage alone cannot guarantee the single-running-timer
	// invariant against concurrent callers.
	mu sync.Mutex
}

// NewTimerService creates a new TimerService instance
func NewTimerService(repo sqlite.Repository) TimerService {
	return &timerServiceImpl{
		repo:               repo,
		mapper:             domain.NewMapper(),
		timeEntryValidator: validation.NewTimeEntryValidator(),
	}
}

// StartTimer starts a new running entry for the task. Any entry already
// running anywhere in the system is stopped first, without error or
// confirmation. The new entry inherits the task's billable flag.
func (t *timerServiceImpl) StartTimer(ctx context.Context, taskID int64) (*domain.TimeEntry, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	dbTask, err := t.repo.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	task := t.mapper.Task.FromDatabase(*dbTask)

	now := time.Now()
	if err := t.stopRunningEntry(ctx, now); err != nil {
		return nil, err
	}

	entry := domain.NewRunningEntry(task.ID, task.Billable, now)
	dbEntry := t.mapper.TimeEntry.ToDatabase(entry)
	if err := t.repo.CreateTimeEntry(ctx, &dbEntry); err != nil {
		return nil, err
	}

	created := t.mapper.TimeEntry.FromDatabase(dbEntry)
	return &created, nil
}

// StopTimer stops a running entry, computing its duration. Stopping an
// entry that is not running is an invalid-state error.
func (t *timerServiceImpl) StopTimer(ctx context.Context, entryID int64) (*domain.TimeEntry, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	dbEntry, err := t.repo.GetTimeEntry(ctx, entryID)
	if err != nil {
		return nil, err
	}

	entry := t.mapper.TimeEntry.FromDatabase(*dbEntry)
	if !entry.IsRunning {
		return nil, errors.NewInvalidStateError("time entry is not running", fmt.Sprintf("%d", entryID))
	}

	stopped := entry.Stop(time.Now())
	dbStopped := t.mapper.TimeEntry.ToDatabase(stopped)
	if err := t.repo.UpdateTimeEntry(ctx, &dbStopped); err != nil {
		return nil, err
	}

	return &stopped, nil
}

// CurrentRunningTimer returns the single running entry, or nil when no
// timer is running.
func (t *timerServiceImpl) CurrentRunningTimer(ctx context.Context) (*domain.TimeEntry, error) {
	dbEntry, err := t.repo.FindRunningEntry(ctx)
	if err != nil {
		return nil, err
	}
	if dbEntry == nil {
		return nil, nil
	}

	entry := t.mapper.TimeEntry.FromDatabase(*dbEntry)
	return &entry, nil
}

// CurrentSession returns the running entry with its task and a live
// elapsed clock, or nil when no timer is running.
func (t *timerServiceImpl) CurrentSession(ctx context.Context) (*Session, error) {
	entry, err := t.CurrentRunningTimer(ctx)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}

	dbTask, err := t.repo.GetTask(ctx, entry.TaskID)
	if err != nil {
		return nil, err
	}
	task := t.mapper.Task.FromDatabase(*dbTask)

	return &Session{
		Task:    &task,
		Entry:   entry,
		Elapsed: format.Clock(entry.Elapsed(time.Now())),
	}, nil
}

// AddManualEntry records a fully-formed entry with both endpoints known.
// Overlap with other entries is not checked; overlapping entries are
// accepted and all count in aggregation.
func (t *timerServiceImpl) AddManualEntry(ctx context.Context, taskID int64, start, end time.Time, notes string) (*domain.TimeEntry, error) {
	if err := t.timeEntryValidator.ValidateTimeEntryForCreation(taskID, start, &end); err != nil {
		return nil, errors.NewValidationError("invalid time entry", err)
	}

	dbTask, err := t.repo.GetTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	task := t.mapper.Task.FromDatabase(*dbTask)

	entry := domain.NewManualEntry(task.ID, start, end, notes, task.Billable, time.Now())
	dbEntry := t.mapper.TimeEntry.ToDatabase(entry)
	if err := t.repo.CreateTimeEntry(ctx, &dbEntry); err != nil {
		return nil, err
	}

	created := t.mapper.TimeEntry.FromDatabase(dbEntry)
	return &created, nil
}

// GetTimeEntry retrieves a single entry by ID.
func (t *timerServiceImpl) GetTimeEntry(ctx context.Context, id int64) (*domain.TimeEntry, error) {
	dbEntry, err := t.repo.GetTimeEntry(ctx, id)
	if err != nil {
		return nil, err
	}

	entry := t.mapper.TimeEntry.FromDatabase(*dbEntry)
	return &entry, nil
}

// UpdateTimeEntry edits a stopped entry. Edits on a running entry are an
// invalid-state error; callers must stop the timer first. The duration is
// recomputed from the supplied endpoints, never taken from the caller.
func (t *timerServiceImpl) UpdateTimeEntry(ctx context.Context, entry domain.TimeEntry) (*domain.TimeEntry, error) {
	stored, err := t.repo.GetTimeEntry(ctx, entry.ID)
	if err != nil {
		return nil, err
	}
	if stored.IsRunning {
		return nil, errors.NewInvalidStateError("cannot update a running time entry; stop the timer first", fmt.Sprintf("%d", entry.ID))
	}

	if err := t.timeEntryValidator.ValidateTimeEntryForUpdate(entry.ID, entry.TaskID, entry.StartTime, entry.EndTime); err != nil {
		return nil, errors.NewValidationError("invalid time entry", err)
	}
	if entry.EndTime == nil {
		return nil, errors.NewValidationError("a stopped time entry requires an end time", nil)
	}

	minutes := domain.ComputeDuration(entry.StartTime, *entry.EndTime)
	entry.DurationMinutes = &minutes
	entry.IsRunning = false
	entry.UpdatedAt = time.Now()

	dbEntry := t.mapper.TimeEntry.ToDatabase(entry)
	if err := t.repo.UpdateTimeEntry(ctx, &dbEntry); err != nil {
		return nil, err
	}

	updated := t.mapper.TimeEntry.FromDatabase(dbEntry)
	return &updated, nil
}

// DeleteTimeEntry deletes an entry unconditionally.
func (t *timerServiceImpl) DeleteTimeEntry(ctx context.Context, id int64) error {
	return t.repo.DeleteTimeEntry(ctx, id)
}

// ListTimeEntries returns all entries, most recent first.
func (t *timerServiceImpl) ListTimeEntries(ctx context.Context) ([]domain.TimeEntry, error) {
	dbEntries, err := t.repo.ListTimeEntries(ctx)
	if err != nil {
		return nil, err
	}
	return t.mapper.TimeEntry.FromDatabaseSlice(dbEntries), nil
}

// EntriesByTask returns all entries for a task, oldest first.
func (t *timerServiceImpl) EntriesByTask(ctx context.Context, taskID int64) ([]domain.TimeEntry, error) {
	dbEntries, err := t.repo.ListTimeEntriesByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return t.mapper.TimeEntry.FromDatabaseSlice(dbEntries), nil
}

// EntriesByDateRange returns entries starting within [start, end]
// inclusive, most recent first.
func (t *timerServiceImpl) EntriesByDateRange(ctx context.Context, start, end time.Time) ([]domain.TimeEntry, error) {
	dbEntries, err := t.repo.FindTimeEntriesByDateRange(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return t.mapper.TimeEntry.FromDatabaseSlice(dbEntries), nil
}

// stopRunningEntry closes whichever entry is currently running, if any.
// Caller must hold mu.
func (t *timerServiceImpl) stopRunningEntry(ctx context.Context, now time.Time) error {
	dbRunning, err := t.repo.FindRunningEntry(ctx)
	if err != nil {
		return err
	}
	if dbRunning == nil {
		return nil
	}

	running := t.mapper.TimeEntry.FromDatabase(*dbRunning)
	stopped := running.Stop(now)
	dbStopped := t.mapper.TimeEntry.ToDatabase(stopped)
	return t.repo.UpdateTimeEntry(ctx, &dbStopped)
}
