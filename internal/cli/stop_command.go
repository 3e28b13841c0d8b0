package cli

import (
	"context"
	"fmt"

	"timetrack/internal/format"
)

// StopCommand handles the stop command
type StopCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewStopCommand creates a new stop command handler
func NewStopCommand(app *App) *StopCommand {
	return &StopCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the stop command
func (c *StopCommand) Execute(ctx context.Context, args []string) error {
	running, err := c.app.services.Timer.CurrentRunningTimer(ctx)
	if err != nil {
		return c.errorHandler.Handle("stop timer", err)
	}
	if running == nil {
		fmt.Println("No timer is running")
		return nil
	}

	stopped, err := c.app.services.Timer.StopTimer(ctx, running.ID)
	if err != nil {
		return c.errorHandler.Handle("stop timer", err)
	}

	fmt.Printf("Stopped timer (entry #%d): %s\n", stopped.ID, format.MinutesPtr(stopped.DurationMinutes))
	return nil
}
