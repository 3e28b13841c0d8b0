package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"timetrack/internal/domain"
	"timetrack/internal/errors"
	"timetrack/internal/format"
)

// ProjectCommand handles the project subcommands
type ProjectCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewProjectCommand creates a new project command handler
func NewProjectCommand(app *App) *ProjectCommand {
	return &ProjectCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Create creates a new project
func (c *ProjectCommand) Create(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewValidationError("usage: timetrack project create <name> [description]", nil)
	}

	name := args[0]
	description := strings.Join(args[1:], " ")

	project, err := c.app.services.Project.CreateProject(ctx, name, description)
	if err != nil {
		return c.errorHandler.Handle("create project", err)
	}

	fmt.Printf("Created project #%d: %s\n", project.ID, project.Name)
	return nil
}

// List lists projects, optionally filtered by status
func (c *ProjectCommand) List(ctx context.Context, args []string) error {
	var (
		projects []domain.Project
		err      error
	)
	if len(args) > 0 {
		status, ok := domain.ParseProjectStatus(args[0])
		if !ok {
			return c.errorHandler.HandleSimple(
				errors.NewValidationError("unknown project status: "+args[0], nil))
		}
		projects, err = c.app.services.Project.ListProjectsByStatus(ctx, status)
	} else {
		projects, err = c.app.services.Project.ListProjects(ctx)
	}
	if err != nil {
		return c.errorHandler.Handle("list projects", err)
	}

	if len(projects) == 0 {
		fmt.Println("No projects found")
		return nil
	}

	for _, project := range projects {
		fmt.Printf("#%d  %s [%s]", project.ID, project.Name, domain.ProjectStatusDisplayName(project.Status))
		if project.Client != "" {
			fmt.Printf("  client: %s", project.Client)
		}
		fmt.Println()
	}
	return nil
}

// Show prints the details of one project
func (c *ProjectCommand) Show(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewValidationError("usage: timetrack project show <project-id>", nil)
	}

	projectID, err := parseID("project id", args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	project, err := c.app.services.Project.GetProject(ctx, projectID)
	if err != nil {
		return c.errorHandler.Handle("show project", err)
	}

	fmt.Printf("Project #%d: %s\n", project.ID, project.Name)
	fmt.Printf("Status: %s\n", domain.ProjectStatusDisplayName(project.Status))
	if project.Description != "" {
		fmt.Printf("Description: %s\n", project.Description)
	}
	if project.Client != "" {
		fmt.Printf("Client: %s\n", project.Client)
	}
	if project.HourlyRate != nil {
		fmt.Printf("Hourly rate: $%s\n", format.Earnings(*project.HourlyRate))
	}
	if project.Budget != nil {
		fmt.Printf("Budget: $%s\n", format.Earnings(*project.Budget))
	}
	if project.Deadline != nil {
		fmt.Printf("Deadline: %s\n", project.Deadline.Format(c.app.dateFormat()))
	}
	return nil
}

// SetStatus moves a project to a new status
func (c *ProjectCommand) SetStatus(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewValidationError("usage: timetrack project status <project-id> <active|archived|completed>", nil)
	}

	projectID, err := parseID("project id", args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}
	status, ok := domain.ParseProjectStatus(args[1])
	if !ok {
		return c.errorHandler.HandleSimple(
			errors.NewValidationError("unknown project status: "+args[1], nil))
	}

	project, err := c.app.services.Project.SetProjectStatus(ctx, projectID, status)
	if err != nil {
		return c.errorHandler.Handle("set project status", err)
	}

	fmt.Printf("Project #%d is now %s\n", project.ID, domain.ProjectStatusDisplayName(project.Status))
	return nil
}

// Edit updates project fields given as key=value pairs, for example
// client="Acme Corp" rate=75 budget=10000 deadline=2026-12-31
func (c *ProjectCommand) Edit(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewValidationError("usage: timetrack project edit <project-id> <field>=<value> ...", nil)
	}

	projectID, err := parseID("project id", args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	project, err := c.app.services.Project.GetProject(ctx, projectID)
	if err != nil {
		return c.errorHandler.Handle("edit project", err)
	}

	edited := *project
	for _, pair := range args[1:] {
		if err := c.applyField(&edited, pair); err != nil {
			return c.errorHandler.HandleSimple(err)
		}
	}

	updated, err := c.app.services.Project.UpdateProject(ctx, edited)
	if err != nil {
		return c.errorHandler.Handle("edit project", err)
	}

	fmt.Printf("Updated project #%d: %s\n", updated.ID, updated.Name)
	return nil
}

// Delete removes a project
func (c *ProjectCommand) Delete(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewValidationError("usage: timetrack project delete <project-id>", nil)
	}

	projectID, err := parseID("project id", args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if err := c.app.services.Project.DeleteProject(ctx, projectID); err != nil {
		return c.errorHandler.Handle("delete project", err)
	}

	fmt.Printf("Deleted project #%d\n", projectID)
	return nil
}

func (c *ProjectCommand) applyField(project *domain.Project, pair string) error {
	key, value, found := strings.Cut(pair, "=")
	if !found {
		return errors.NewValidationError("expected <field>=<value>, got: "+pair, nil)
	}
	value = strings.Trim(value, `"`)

	switch key {
	case "name":
		project.Name = value
	case "description":
		project.Description = value
	case "client":
		project.Client = value
	case "color":
		project.ColorCode = value
	case "rate":
		rate, err := strconv.ParseFloat(value, 64)
		if err != nil || rate < 0 {
			return errors.NewValidationError("rate must be a non-negative number", err)
		}
		project.HourlyRate = &rate
	case "budget":
		budget, err := strconv.ParseFloat(value, 64)
		if err != nil || budget < 0 {
			return errors.NewValidationError("budget must be a non-negative number", err)
		}
		project.Budget = &budget
	case "deadline":
		deadline, err := c.app.parseDate(value)
		if err != nil {
			return err
		}
		project.Deadline = &deadline
	default:
		return errors.NewValidationError("unknown project field: "+key, nil)
	}
	return nil
}
