package cli

import (
	"context"
	"fmt"
)

// CurrentCommand handles the current command
type CurrentCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewCurrentCommand creates a new current command handler
func NewCurrentCommand(app *App) *CurrentCommand {
	return &CurrentCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the current command
func (c *CurrentCommand) Execute(ctx context.Context, args []string) error {
	session, err := c.app.services.Timer.CurrentSession(ctx)
	if err != nil {
		return c.errorHandler.Handle("show current timer", err)
	}
	if session == nil {
		fmt.Println("No timer is running")
		return nil
	}

	fmt.Printf("Current task: %s\n", session.Task.Name)
	fmt.Printf("Started at:   %s\n", session.Entry.StartTime.Format(c.app.timeFormat()))
	fmt.Printf("Elapsed:      %s\n", session.Elapsed)
	return nil
}
