package cli

import (
	"context"
	"fmt"
	"strings"

	"timetrack/internal/errors"
	"timetrack/internal/format"
)

// LogCommand handles the log command, which records a manual time entry
// with both endpoints already known.
type LogCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewLogCommand creates a new log command handler
func NewLogCommand(app *App) *LogCommand {
	return &LogCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the log command
func (c *LogCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return errors.NewValidationError("usage: timetrack log <task-id> <start> <end> [notes]", nil)
	}

	taskID, err := parseID("task id", args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}
	start, err := c.app.parseDateTime(args[1])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}
	end, err := c.app.parseDateTime(args[2])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}
	notes := strings.Join(args[3:], " ")

	entry, err := c.app.services.Timer.AddManualEntry(ctx, taskID, start, end, notes)
	if err != nil {
		return c.errorHandler.Handle("log time entry", err)
	}

	fmt.Printf("Logged %s for task #%d (entry #%d)\n",
		format.MinutesPtr(entry.DurationMinutes), taskID, entry.ID)
	return nil
}
