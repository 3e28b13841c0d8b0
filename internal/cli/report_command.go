package cli

import (
	"context"
	"fmt"
	"time"

	"timetrack/internal/errors"
	"timetrack/internal/logging"
	"timetrack/internal/report"
)

// ReportCommand handles the report subcommands
type ReportCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewReportCommand creates a new report command handler
func NewReportCommand(app *App) *ReportCommand {
	return &ReportCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Daily prints the report for one calendar date, defaulting to today
func (c *ReportCommand) Daily(ctx context.Context, args []string) error {
	date := time.Now()
	if len(args) > 0 {
		parsed, err := c.app.parseDate(args[0])
		if err != nil {
			return c.errorHandler.HandleSimple(err)
		}
		date = parsed
	}

	daily, err := c.app.services.Report.Daily(ctx, date)
	if err != nil {
		return c.errorHandler.Handle("generate daily report", err)
	}

	fmt.Print(daily.Render())
	return nil
}

// Weekly prints the report for the week containing the given date,
// defaulting to the current week. Weeks run Monday through Sunday.
func (c *ReportCommand) Weekly(ctx context.Context, args []string) error {
	ref := time.Now()
	if len(args) > 0 {
		parsed, err := c.app.parseDate(args[0])
		if err != nil {
			return c.errorHandler.HandleSimple(err)
		}
		ref = parsed
	}

	weekly, err := c.app.services.Report.Weekly(ctx, ref)
	if err != nil {
		return c.errorHandler.Handle("generate weekly report", err)
	}

	fmt.Print(weekly.Render())
	return nil
}

// Monthly prints the report for a calendar month given as YYYY-MM,
// defaulting to the current month
func (c *ReportCommand) Monthly(ctx context.Context, args []string) error {
	now := time.Now()
	year, month := now.Year(), now.Month()
	if len(args) > 0 {
		var err error
		year, month, err = parseMonth(args[0])
		if err != nil {
			return c.errorHandler.HandleSimple(err)
		}
	}

	monthly, err := c.app.services.Report.Monthly(ctx, year, month)
	if err != nil {
		return c.errorHandler.Handle("generate monthly report", err)
	}

	fmt.Print(monthly.Render())
	return nil
}

// Project prints the per-task report for one project over a period. With
// no period arguments the report covers the last 30 days.
func (c *ReportCommand) Project(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewValidationError("usage: timetrack report project <project-id> [start end]", nil)
	}

	projectID, err := parseID("project id", args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	start, end, err := c.parsePeriod(args[1:])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	projectReport, err := c.app.services.Report.Project(ctx, projectID, start, end)
	if err != nil {
		return c.errorHandler.Handle("generate project report", err)
	}

	fmt.Print(projectReport.Render())
	return nil
}

// Overall prints the billable-split report over a period. With no period
// arguments the report covers the last 30 days.
func (c *ReportCommand) Overall(ctx context.Context, args []string) error {
	start, end, err := c.parsePeriod(args)
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	overall, err := c.app.services.Report.Overall(ctx, start, end)
	if err != nil {
		return c.errorHandler.Handle("generate overall report", err)
	}

	fmt.Print(overall.Render())
	return nil
}

// Stats prints the cross-entity statistics snapshot. A failed read
// prints an empty snapshot rather than failing the command.
func (c *ReportCommand) Stats(ctx context.Context, args []string) error {
	stats, err := c.app.services.Report.Statistics(ctx)
	if err != nil {
		logging.Debugf("statistics read failed, showing empty snapshot: %v\n", err)
		stats = &report.Statistics{}
	}

	fmt.Print(stats.Render())
	return nil
}

func (c *ReportCommand) parsePeriod(args []string) (time.Time, time.Time, error) {
	now := time.Now()
	if len(args) == 0 {
		return now.AddDate(0, 0, -30), now, nil
	}
	if len(args) < 2 {
		return time.Time{}, time.Time{}, errors.NewValidationError("a period needs both a start and an end", nil)
	}

	start, err := c.app.parseDateTime(args[0])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := c.app.parseDateTime(args[1])
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.NewValidationError("period end must not be before its start", nil)
	}
	return start, end, nil
}
