package cli

import (
	"context"
	"fmt"
	"strings"

	"timetrack/internal/domain"
	"timetrack/internal/errors"
	"timetrack/internal/format"
)

// TaskCommand handles the task subcommands
type TaskCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewTaskCommand creates a new task command handler
func NewTaskCommand(app *App) *TaskCommand {
	return &TaskCommand{
		app:          app,
		errorHandler: NewErrorHandler(),
	}
}

// Create creates a new task under a project
func (c *TaskCommand) Create(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewValidationError("usage: timetrack task create <project-id> <name> [description]", nil)
	}

	projectID, err := parseID("project id", args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}
	name := args[1]
	description := strings.Join(args[2:], " ")

	task, err := c.app.services.Task.CreateTask(ctx, name, description, projectID)
	if err != nil {
		return c.errorHandler.Handle("create task", err)
	}

	fmt.Printf("Created task #%d: %s (project #%d)\n", task.ID, task.Name, task.ProjectID)
	return nil
}

// List lists tasks with an optional filter. Filters take the form of a
// selector and value: project <id>, status <status>, priority <priority>
// or tag <tag>.
func (c *TaskCommand) List(ctx context.Context, args []string) error {
	tasks, err := c.filteredTasks(ctx, args)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	for _, task := range tasks {
		fmt.Printf("#%d  %s [%s, %s priority]",
			task.ID, task.Name,
			domain.TaskStatusDisplayName(task.Status),
			domain.PriorityDisplayName(task.Priority))
		if len(task.Tags) > 0 {
			fmt.Printf("  tags: %s", strings.Join(task.Tags, ", "))
		}
		fmt.Println()
	}
	return nil
}

// Rename changes a task's name
func (c *TaskCommand) Rename(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewValidationError("usage: timetrack task rename <task-id> <name>", nil)
	}

	taskID, err := parseID("task id", args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	task, err := c.app.services.Task.RenameTask(ctx, taskID, strings.Join(args[1:], " "))
	if err != nil {
		return c.errorHandler.Handle("rename task", err)
	}

	fmt.Printf("Renamed task #%d to: %s\n", task.ID, task.Name)
	return nil
}

// Describe changes a task's description
func (c *TaskCommand) Describe(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewValidationError("usage: timetrack task describe <task-id> <description>", nil)
	}

	taskID, err := parseID("task id", args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	task, err := c.app.services.Task.RedescribeTask(ctx, taskID, strings.Join(args[1:], " "))
	if err != nil {
		return c.errorHandler.Handle("describe task", err)
	}

	fmt.Printf("Updated description of task #%d\n", task.ID)
	return nil
}

// SetStatus moves a task to a new workflow status
func (c *TaskCommand) SetStatus(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewValidationError("usage: timetrack task status <task-id> <todo|in_progress|completed>", nil)
	}

	taskID, err := parseID("task id", args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}
	status, ok := domain.ParseTaskStatus(args[1])
	if !ok {
		return c.errorHandler.HandleSimple(
			errors.NewValidationError("unknown task status: "+args[1], nil))
	}

	task, err := c.app.services.Task.SetTaskStatus(ctx, taskID, status)
	if err != nil {
		return c.errorHandler.Handle("set task status", err)
	}

	fmt.Printf("Task #%d is now %s\n", task.ID, domain.TaskStatusDisplayName(task.Status))
	return nil
}

// SetPriority changes a task's priority
func (c *TaskCommand) SetPriority(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewValidationError("usage: timetrack task priority <task-id> <low|medium|high>", nil)
	}

	taskID, err := parseID("task id", args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}
	priority, ok := domain.ParsePriority(args[1])
	if !ok {
		return c.errorHandler.HandleSimple(
			errors.NewValidationError("unknown priority: "+args[1], nil))
	}

	task, err := c.app.services.Task.SetTaskPriority(ctx, taskID, priority)
	if err != nil {
		return c.errorHandler.Handle("set task priority", err)
	}

	fmt.Printf("Task #%d priority is now %s\n", task.ID, domain.PriorityDisplayName(task.Priority))
	return nil
}

// Tag adds a tag to a task. Duplicate tags are ignored.
func (c *TaskCommand) Tag(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewValidationError("usage: timetrack task tag <task-id> <tag>", nil)
	}

	taskID, err := parseID("task id", args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	task, err := c.app.services.Task.TagTask(ctx, taskID, args[1])
	if err != nil {
		return c.errorHandler.Handle("tag task", err)
	}

	fmt.Printf("Task #%d tags: %s\n", task.ID, strings.Join(task.Tags, ", "))
	return nil
}

// Time prints the total tracked minutes for a task
func (c *TaskCommand) Time(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewValidationError("usage: timetrack task time <task-id>", nil)
	}

	taskID, err := parseID("task id", args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	minutes, err := c.app.services.Task.TaskTotalMinutes(ctx, taskID)
	if err != nil {
		return c.errorHandler.Handle("total task time", err)
	}

	fmt.Printf("Total time for task #%d: %s\n", taskID, format.Minutes(minutes))
	return nil
}

// Delete removes a task together with all of its time entries
func (c *TaskCommand) Delete(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewValidationError("usage: timetrack task delete <task-id>", nil)
	}

	taskID, err := parseID("task id", args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if err := c.app.services.Task.DeleteTaskWithEntries(ctx, taskID); err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	fmt.Printf("Deleted task #%d and its time entries\n", taskID)
	return nil
}

func (c *TaskCommand) filteredTasks(ctx context.Context, args []string) ([]domain.Task, error) {
	if len(args) == 0 {
		tasks, err := c.app.services.Task.ListTasks(ctx)
		if err != nil {
			return nil, c.errorHandler.Handle("list tasks", err)
		}
		return tasks, nil
	}
	if len(args) < 2 {
		return nil, errors.NewValidationError("usage: timetrack task list [project|status|priority|tag <value>]", nil)
	}

	selector, value := args[0], args[1]
	switch selector {
	case "project":
		projectID, err := parseID("project id", value)
		if err != nil {
			return nil, c.errorHandler.HandleSimple(err)
		}
		tasks, err := c.app.services.Task.ListTasksByProject(ctx, projectID)
		if err != nil {
			return nil, c.errorHandler.Handle("list tasks", err)
		}
		return tasks, nil
	case "status":
		status, ok := domain.ParseTaskStatus(value)
		if !ok {
			return nil, c.errorHandler.HandleSimple(
				errors.NewValidationError("unknown task status: "+value, nil))
		}
		tasks, err := c.app.services.Task.ListTasksByStatus(ctx, status)
		if err != nil {
			return nil, c.errorHandler.Handle("list tasks", err)
		}
		return tasks, nil
	case "priority":
		priority, ok := domain.ParsePriority(value)
		if !ok {
			return nil, c.errorHandler.HandleSimple(
				errors.NewValidationError("unknown priority: "+value, nil))
		}
		tasks, err := c.app.services.Task.ListTasksByPriority(ctx, priority)
		if err != nil {
			return nil, c.errorHandler.Handle("list tasks", err)
		}
		return tasks, nil
	case "tag":
		tasks, err := c.app.services.Task.ListTasksByTag(ctx, value)
		if err != nil {
			return nil, c.errorHandler.Handle("list tasks", err)
		}
		return tasks, nil
	default:
		return nil, errors.NewValidationError("unknown task filter: "+selector, nil)
	}
}
