package cli

import (
	"context"
	"fmt"

	"timetrack/internal/errors"
)

// StartCommand handles the start command
type StartCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewStartCommand creates a new start command handler
func NewStartCommand(app *App) *StartCommand {
	return &StartCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the start command
func (c *StartCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewValidationError("usage: timetrack start <task-id>", nil)
	}

	taskID, err := parseID("task id", args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	// Remember whether a timer was running so the auto-stop can be reported.
	running, err := c.app.services.Timer.CurrentRunningTimer(ctx)
	if err != nil {
		return c.errorHandler.Handle("start timer", err)
	}

	entry, err := c.app.services.Timer.StartTimer(ctx, taskID)
	if err != nil {
		return c.errorHandler.Handle("start timer", err)
	}

	task, err := c.app.services.Task.GetTask(ctx, taskID)
	if err != nil {
		return c.errorHandler.Handle("start timer", err)
	}

	if running != nil {
		fmt.Printf("Stopped running timer (entry #%d)\n", running.ID)
	}
	fmt.Printf("Started timer for task: %s (entry #%d)\n", task.Name, entry.ID)
	return nil
}
