package cli

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"

	"timetrack/internal/config"
	"timetrack/internal/logging"
	"timetrack/internal/services"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	app    *App
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(container *services.ServiceContainer, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		app:    NewApp(container, cfg),
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "timetrack",
		Short: "A command-line personal time tracker",
		Long: `timetrack is a command-line application for tracking time spent on tasks,
organized into projects, with aggregated reports.

Only one timer runs at a time: starting a timer stops whatever was
running. Durations are whole minutes tracked per task.

EXAMPLES:
  timetrack project create "Website"       # Create a project
  timetrack task create 1 "Design header"  # Create a task under project 1
  timetrack start 1                        # Start the timer for task 1
  timetrack current                        # Show the running timer
  timetrack stop                           # Stop the running timer
  timetrack log 1 "2026-08-30 09:00" "2026-08-30 10:30" standup
  timetrack report daily                   # Today's report
  timetrack report weekly                  # This week's report (Mon-Sun)
  timetrack report monthly 2026-08         # One month's report
  timetrack stats                          # Cross-entity statistics

CONFIGURATION:
  Configuration follows this priority order: command-line flags > environment variables > defaults

  TIMETRACK_DB_DIR                         Database directory (default: ~/.timetrack)
  TIMETRACK_DB_FILENAME                    Database filename (default: timetrack.db)
  TIMETRACK_DB_QUERY_TIMEOUT               Query timeout (default: 10s)
  TIMETRACK_DISPLAY_DATE_FORMAT            Date format (default: 2006-01-02)
  TIMETRACK_DISPLAY_TIME_FORMAT            Timestamp format (default: 2006-01-02 15:04)
  TIMETRACK_APP_TIMEOUT                    Application timeout (default: 60s)
  TIMETRACK_DEBUG                          Enable debug output when set

GETTING HELP:
  timetrack [command] --help               # Get help for any specific command`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// Command exposes the underlying cobra command, primarily for tests
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("db-dir", "", "Database directory (overrides TIMETRACK_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides TIMETRACK_DB_FILENAME)")
	flags.Duration("db-query-timeout", 0, "Database query timeout (overrides TIMETRACK_DB_QUERY_TIMEOUT)")
	flags.Duration("app-timeout", 0, "Application timeout (overrides TIMETRACK_APP_TIMEOUT)")
	flags.Bool("debug", false, "Enable debug output (overrides TIMETRACK_DEBUG)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(
		r.startCmd(),
		r.stopCmd(),
		r.currentCmd(),
		r.logCmd(),
		r.entriesCmd(),
		r.entryCmd(),
		r.projectCmd(),
		r.taskCmd(),
		r.reportCmd(),
		r.statsCmd(),
	)
}

func (r *RootCommand) startCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start [task-id]",
		Short: "Start the timer for a task",
		Long:  "Start tracking time for a task. A timer already running is stopped first.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewStartCommand(r.app).Execute(ctx, args)
		},
	}
}

func (r *RootCommand) stopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the running timer",
		Long:  "Stop the currently running timer and record its duration in whole minutes.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewStopCommand(r.app).Execute(ctx, args)
		},
	}
}

func (r *RootCommand) currentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the running timer",
		Long:  "Display the running timer's task with a live elapsed clock, if any timer is running.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewCurrentCommand(r.app).Execute(ctx, args)
		},
	}
}

func (r *RootCommand) logCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log [task-id] [start] [end] [notes...]",
		Short: "Record a manual time entry",
		Long: `Record a completed time entry with known start and end timestamps.

Timestamps use the configured time format (default "2006-01-02 15:04");
a bare date means midnight. Entries overlapping existing ones are accepted.

Example:
  timetrack log 1 "2026-08-30 09:00" "2026-08-30 10:30" sprint planning`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewLogCommand(r.app).Execute(ctx, args)
		},
	}
}

func (r *RootCommand) entriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "entries [task-id]",
		Short: "List time entries",
		Long: `List time entries, most recent first. With a task ID, list only that
task's entries, oldest first.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewEntriesCommand(r.app).Execute(ctx, args)
		},
	}
}

func (r *RootCommand) entryCmd() *cobra.Command {
	entry := &cobra.Command{
		Use:   "entry",
		Short: "Edit or delete a single time entry",
	}

	entry.AddCommand(
		&cobra.Command{
			Use:   "edit [entry-id] [start] [end] [notes...]",
			Short: "Edit a stopped time entry",
			Long: `Rewrite the endpoints and notes of a stopped time entry. The duration
is recomputed from the new endpoints. Running entries cannot be edited;
stop the timer first.`,
			Args: cobra.MinimumNArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewEntryCommand(r.app).Edit(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "delete [entry-id]",
			Short: "Delete a time entry",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewEntryCommand(r.app).Delete(ctx, args)
			},
		},
	)
	return entry
}

func (r *RootCommand) projectCmd() *cobra.Command {
	project := &cobra.Command{
		Use:   "project",
		Short: "Manage projects",
	}

	project.AddCommand(
		&cobra.Command{
			Use:   "create [name] [description...]",
			Short: "Create a project",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewProjectCommand(r.app).Create(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "list [status]",
			Short: "List projects, optionally filtered by status",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewProjectCommand(r.app).List(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "show [project-id]",
			Short: "Show a project's details",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewProjectCommand(r.app).Show(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "status [project-id] [status]",
			Short: "Set a project's status",
			Long:  "Move a project to active, archived or completed. All transitions are allowed.",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewProjectCommand(r.app).SetStatus(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "edit [project-id] [field=value...]",
			Short: "Edit project fields",
			Long: `Edit project fields given as field=value pairs.

Fields: name, description, client, color, rate, budget, deadline

Example:
  timetrack project edit 1 client="Acme Corp" rate=75 deadline=2026-12-31`,
			Args: cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewProjectCommand(r.app).Edit(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "delete [project-id]",
			Short: "Delete a project",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewProjectCommand(r.app).Delete(ctx, args)
			},
		},
	)
	return project
}

func (r *RootCommand) taskCmd() *cobra.Command {
	task := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	task.AddCommand(
		&cobra.Command{
			Use:   "create [project-id] [name] [description...]",
			Short: "Create a task under a project",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewTaskCommand(r.app).Create(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "list [project|status|priority|tag] [value]",
			Short: "List tasks with an optional filter",
			Long: `List tasks, optionally filtered by a selector and value.

Examples:
  timetrack task list                   # All tasks
  timetrack task list project 1         # Tasks of project 1
  timetrack task list status completed  # Completed tasks
  timetrack task list priority high     # High priority tasks
  timetrack task list tag backend       # Tasks tagged "backend"`,
			Args: cobra.MaximumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewTaskCommand(r.app).List(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "rename [task-id] [name...]",
			Short: "Rename a task",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewTaskCommand(r.app).Rename(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "describe [task-id] [description...]",
			Short: "Update a task's description",
			Args:  cobra.MinimumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewTaskCommand(r.app).Describe(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "status [task-id] [status]",
			Short: "Set a task's workflow status",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewTaskCommand(r.app).SetStatus(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "priority [task-id] [priority]",
			Short: "Set a task's priority",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewTaskCommand(r.app).SetPriority(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "tag [task-id] [tag]",
			Short: "Add a tag to a task",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewTaskCommand(r.app).Tag(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "time [task-id]",
			Short: "Show the total tracked time for a task",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewTaskCommand(r.app).Time(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "delete [task-id]",
			Short: "Delete a task and all its time entries",
			Long:  "Delete a task together with every time entry recorded against it. This cannot be undone.",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewTaskCommand(r.app).Delete(ctx, args)
			},
		},
	)
	return task
}

func (r *RootCommand) reportCmd() *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Generate time reports",
	}

	reportCmd.AddCommand(
		&cobra.Command{
			Use:   "daily [date]",
			Short: "Report for one calendar date (default today)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewReportCommand(r.app).Daily(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "weekly [date]",
			Short: "Report for the Monday-Sunday week containing a date (default this week)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewReportCommand(r.app).Weekly(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "monthly [YYYY-MM]",
			Short: "Report for one calendar month (default this month)",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewReportCommand(r.app).Monthly(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "project [project-id] [start] [end]",
			Short: "Per-task report for one project (default period: last 30 days)",
			Args:  cobra.RangeArgs(1, 3),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewReportCommand(r.app).Project(ctx, args)
			},
		},
		&cobra.Command{
			Use:   "overall [start] [end]",
			Short: "Billable-split report over a period (default: last 30 days)",
			Args:  cobra.MaximumNArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, cancel := r.commandContext()
				defer cancel()
				return NewReportCommand(r.app).Overall(ctx, args)
			},
		},
	)
	return reportCmd
}

func (r *RootCommand) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show cross-entity statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewReportCommand(r.app).Stats(ctx, args)
		},
	}
}

func (r *RootCommand) commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.getAppTimeout())
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return nil
	}

	flags := r.cmd.PersistentFlags()

	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Database.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Database.Filename = dbFilename
	}
	if queryTimeout, _ := flags.GetDuration("db-query-timeout"); queryTimeout > 0 {
		r.config.Database.QueryTimeout = queryTimeout
	}
	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if debug, _ := flags.GetBool("debug"); debug {
		r.config.Application.Debug = debug
		// The logger reads the environment, so the flag has to reach it.
		os.Setenv("TIMETRACK_DEBUG", "1")
		logging.Debugln("debug logging enabled")
	}

	return nil
}
