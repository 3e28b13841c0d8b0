package cli

import (
	"context"
	"fmt"
	"strings"

	"timetrack/internal/errors"
	"timetrack/internal/format"
)

// EntryCommand handles edit and delete operations on a single time entry
type EntryCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewEntryCommand creates a new entry command handler
func NewEntryCommand(app *App) *EntryCommand {
	return &EntryCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Edit rewrites the endpoints and notes of a stopped entry. The duration
// is recomputed by the service from the new endpoints.
func (c *EntryCommand) Edit(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return errors.NewValidationError("usage: timetrack entry edit <entry-id> <start> <end> [notes]", nil)
	}

	entryID, err := parseID("entry id", args[0])
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

	entry, err := c.app.services.Timer.GetTimeEntry(ctx, entryID)
	if err != nil {
		return c.errorHandler.Handle("edit time entry", err)
	}

	edited := *entry
	edited.StartTime = start
	edited.EndTime = &end
	if len(args) > 3 {
		edited.Notes = strings.Join(args[3:], " ")
	}

	updated, err := c.app.services.Timer.UpdateTimeEntry(ctx, edited)
	if err != nil {
		return c.errorHandler.Handle("edit time entry", err)
	}

	fmt.Printf("Updated entry #%d: %s\n", updated.ID, format.MinutesPtr(updated.DurationMinutes))
	return nil
}

// Delete removes a single time entry
func (c *EntryCommand) Delete(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewValidationError("usage: timetrack entry delete <entry-id>", nil)
	}

	entryID, err := parseID("entry id", args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if err := c.app.services.Timer.DeleteTimeEntry(ctx, entryID); err != nil {
		return c.errorHandler.Handle("delete time entry", err)
	}

	fmt.Printf("Deleted entry #%d\n", entryID)
	return nil
}
