package cli

import (
	"context"
	"fmt"

	"timetrack/internal/domain"
	"timetrack/internal/format"
	"timetrack/internal/logging"
)

// EntriesCommand handles the entries listing command
type EntriesCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewEntriesCommand creates a new entries command handler
func NewEntriesCommand(app *App) *EntriesCommand {
	return &EntriesCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the entries command. With no arguments it lists every
// entry, most recent first; with a task ID it lists that task's entries
// oldest first.
func (c *EntriesCommand) Execute(ctx context.Context, args []string) error {
	var (
		entries []domain.TimeEntry
		err     error
	)
	if len(args) > 0 {
		var taskID int64
		taskID, err = parseID("task id", args[0])
		if err != nil {
			return c.errorHandler.HandleSimple(err)
		}
		entries, err = c.app.services.Timer.EntriesByTask(ctx, taskID)
		if err != nil {
			return c.errorHandler.Handle("list time entries", err)
		}
	} else {
		// A failed full listing shows an empty list instead of failing
		// the command.
		entries, err = c.app.services.Timer.ListTimeEntries(ctx)
		if err != nil {
			logging.Debugf("time entry listing failed, showing empty list: %v\n", err)
			entries = nil
		}
	}

	if len(entries) == 0 {
		fmt.Println("No time entries found")
		return nil
	}

	for _, entry := range entries {
		c.printEntry(entry)
	}
	return nil
}

func (c *EntriesCommand) printEntry(entry domain.TimeEntry) {
	end := format.InProgress
	if entry.EndTime != nil {
		end = entry.EndTime.Format(c.app.timeFormat())
	}
	fmt.Printf("#%d  task %d  %s - %s  %s",
		entry.ID, entry.TaskID,
		entry.StartTime.Format(c.app.timeFormat()), end,
		format.MinutesPtr(entry.DurationMinutes))
	if entry.Notes != "" {
		fmt.Printf("  (%s)", entry.Notes)
	}
	fmt.Println()
}
