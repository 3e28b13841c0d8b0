// Package report renders aggregated time-tracking results into report
// text. All rendering is pure: the structs carry everything needed and
// nothing here reaches into storage.
package report

import (
	"fmt"
	"strings"
	"time"

	"timetrack/internal/aggregate"
	"timetrack/internal/format"
)

const (
	banner     = "═══════════════════════════════════════════════"
	dateLayout = "2006-01-02"
	timeLayout = "2006-01-02 15:04"
)

// KeyMinutes is a named subtotal in minutes.
type KeyMinutes struct {
	Key     string
	Minutes int
}

// EntryLine is a single entry row in a daily report.
type EntryLine struct {
	TaskName string
	Duration string // "Xh Ym" or the in-progress marker
	Notes    string
}

// DailyReport summarizes the entries of one calendar date.
type DailyReport struct {
	Date          time.Time
	Entries       []EntryLine
	ProjectTotals []KeyMinutes
	TotalMinutes  int
}

// Render produces the report text.
func (r DailyReport) Render() string {
	var b strings.Builder
	b.WriteString(banner + "\n")
	b.WriteString("        DAILY REPORT\n")
	b.WriteString(banner + "\n\n")
	fmt.Fprintf(&b, "Date: %s\n\n", r.Date.Format(dateLayout))

	if len(r.Entries) == 0 {
		b.WriteString("No time entries for this date.\n")
		b.WriteString("\n" + banner + "\n")
		return b.String()
	}

	b.WriteString("Entries:\n")
	for _, entry := range r.Entries {
		fmt.Fprintf(&b, "  • %s - %s", entry.TaskName, entry.Duration)
		if entry.Notes != "" {
			fmt.Fprintf(&b, " (%s)", entry.Notes)
		}
		b.WriteString("\n")
	}

	writeSubtotals(&b, "Time by Project", r.ProjectTotals)
	fmt.Fprintf(&b, "\nTotal Time: %s\n", format.Minutes(r.TotalMinutes))
	b.WriteString("\n" + banner + "\n")
	return b.String()
}

// WeeklyReport summarizes the entries of a Monday-to-Sunday week.
type WeeklyReport struct {
	WeekStart     time.Time
	WeekEnd       time.Time
	DayTotals     []KeyMinutes
	ProjectTotals []KeyMinutes
	TotalMinutes  int
	EntryCount    int
}

// Render produces the report text.
func (r WeeklyReport) Render() string {
	var b strings.Builder
	b.WriteString(banner + "\n")
	b.WriteString("        WEEKLY REPORT\n")
	b.WriteString(banner + "\n\n")
	fmt.Fprintf(&b, "Week: %s to %s\n\n", r.WeekStart.Format(dateLayout), r.WeekEnd.Format(dateLayout))

	if r.EntryCount == 0 {
		b.WriteString("No time entries for this week.\n")
		b.WriteString("\n" + banner + "\n")
		return b.String()
	}

	writeSubtotals(&b, "Daily Breakdown", r.DayTotals)
	writeSubtotals(&b, "Time by Project", r.ProjectTotals)
	fmt.Fprintf(&b, "\nTotal Time: %s\n", format.Minutes(r.TotalMinutes))
	fmt.Fprintf(&b, "Total Entries: %d\n", r.EntryCount)
	b.WriteString("\n" + banner + "\n")
	return b.String()
}

// MonthlyReport summarizes the entries of one calendar month.
type MonthlyReport struct {
	Year          int
	Month         time.Month
	ProjectTotals []KeyMinutes
	TopTasks      []aggregate.TaskFrequency
	TotalMinutes  int
	EntryCount    int
}

// AveragePerDayMinutes divides the total by a fixed 30 days regardless of
// the month's actual length.
func (r MonthlyReport) AveragePerDayMinutes() int {
	return r.TotalMinutes / 30
}

// Render produces the report text.
func (r MonthlyReport) Render() string {
	var b strings.Builder
	b.WriteString(banner + "\n")
	b.WriteString("        MONTHLY REPORT\n")
	b.WriteString(banner + "\n\n")
	fmt.Fprintf(&b, "Month: %04d-%02d\n\n", r.Year, int(r.Month))

	if r.EntryCount == 0 {
		b.WriteString("No time entries for this month.\n")
		b.WriteString("\n" + banner + "\n")
		return b.String()
	}

	writeSubtotals(&b, "Time by Project", r.ProjectTotals)

	if len(r.TopTasks) > 0 {
		b.WriteString("\nMost Frequent Tasks:\n")
		for _, frequency := range r.TopTasks {
			fmt.Fprintf(&b, "  %s: %d times\n", frequency.Name, frequency.Count)
		}
	}

	fmt.Fprintf(&b, "\nTotal Time: %s\n", format.Minutes(r.TotalMinutes))
	fmt.Fprintf(&b, "Total Entries: %d\n", r.EntryCount)
	fmt.Fprintf(&b, "Average per Day: %s\n", format.Minutes(r.AveragePerDayMinutes()))
	b.WriteString("\n" + banner + "\n")
	return b.String()
}

// TaskLine is a per-task row in a project report.
type TaskLine struct {
	Name            string
	StatusDisplay   string
	Minutes         int
	EstimateMinutes *int
}

// Progress returns the percentage of the estimate consumed, or nil when
// the task has no estimate. No estimate means no percentage, never a
// division by zero.
func (l TaskLine) Progress() *float64 {
	if l.EstimateMinutes == nil || *l.EstimateMinutes == 0 {
		return nil
	}
	percent := float64(l.Minutes) / float64(*l.EstimateMinutes) * 100
	return &percent
}

// ProjectReport summarizes tracked time for one project over a period.
type ProjectReport struct {
	ProjectName   string
	Client        string
	StatusDisplay string
	PeriodStart   time.Time
	PeriodEnd     time.Time
	Tasks         []TaskLine
	TotalMinutes  int
	HourlyRate    *float64
}

// Earnings returns the estimated earnings for the tracked time, or nil
// when the project has no hourly rate.
func (r ProjectReport) Earnings() *float64 {
	if r.HourlyRate == nil {
		return nil
	}
	earnings := float64(r.TotalMinutes) / 60.0 * *r.HourlyRate
	return &earnings
}

// Render produces the report text.
func (r ProjectReport) Render() string {
	var b strings.Builder
	b.WriteString(banner + "\n")
	fmt.Fprintf(&b, "     PROJECT REPORT: %s\n", r.ProjectName)
	b.WriteString(banner + "\n\n")

	if r.Client != "" {
		fmt.Fprintf(&b, "Client: %s\n", r.Client)
	}
	fmt.Fprintf(&b, "Status: %s\n", r.StatusDisplay)
	fmt.Fprintf(&b, "Period: %s to %s\n\n", r.PeriodStart.Format(timeLayout), r.PeriodEnd.Format(timeLayout))
	fmt.Fprintf(&b, "Total Tasks: %d\n\n", len(r.Tasks))

	b.WriteString("Tasks:\n")
	for _, task := range r.Tasks {
		fmt.Fprintf(&b, "  • %s [%s] - %s", task.Name, task.StatusDisplay, format.Minutes(task.Minutes))
		if progress := task.Progress(); progress != nil {
			fmt.Fprintf(&b, " (%.0f%% of estimate)", *progress)
		} else {
			b.WriteString(" (No estimate)")
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nTotal Time: %s\n", format.Minutes(r.TotalMinutes))
	if earnings := r.Earnings(); earnings != nil {
		fmt.Fprintf(&b, "Estimated Earnings: $%s\n", format.Earnings(*earnings))
	}
	b.WriteString("\n" + banner + "\n")
	return b.String()
}

// OverallReport summarizes all tracked time in a window with a billable
// split and per-project breakdown sorted by time descending.
type OverallReport struct {
	PeriodStart        time.Time
	PeriodEnd          time.Time
	EntryCount         int
	TotalMinutes       int
	BillableMinutes    int
	NonBillableMinutes int
	ProjectTotals      []KeyMinutes // sorted descending by minutes
}

// Render produces the report text.
func (r OverallReport) Render() string {
	var b strings.Builder
	b.WriteString(banner + "\n")
	b.WriteString("        TIME TRACKING REPORT\n")
	b.WriteString(banner + "\n\n")
	fmt.Fprintf(&b, "Period: %s to %s\n\n", r.PeriodStart.Format(timeLayout), r.PeriodEnd.Format(timeLayout))

	b.WriteString("Summary:\n")
	fmt.Fprintf(&b, "  Total Entries: %d\n", r.EntryCount)
	fmt.Fprintf(&b, "  Total Time: %s\n", format.Minutes(r.TotalMinutes))
	fmt.Fprintf(&b, "  Billable Time: %s\n", format.Minutes(r.BillableMinutes))
	fmt.Fprintf(&b, "  Non-billable Time: %s\n", format.Minutes(r.NonBillableMinutes))

	if len(r.ProjectTotals) > 0 {
		writeSubtotals(&b, "Time by Project", r.ProjectTotals)
	}

	b.WriteString("\n" + banner + "\n")
	return b.String()
}

// Statistics is a read-only cross-entity snapshot.
type Statistics struct {
	TotalProjects    int
	ActiveProjects   int
	TotalTasks       int
	CompletedTasks   int
	TotalTimeEntries int
	HasRunningTimer  bool
}

// Render produces the snapshot text.
func (s Statistics) Render() string {
	var b strings.Builder
	b.WriteString("Statistics:\n")
	fmt.Fprintf(&b, "  Projects: %d (%d active)\n", s.TotalProjects, s.ActiveProjects)
	fmt.Fprintf(&b, "  Tasks: %d (%d completed)\n", s.TotalTasks, s.CompletedTasks)
	fmt.Fprintf(&b, "  Time Entries: %d\n", s.TotalTimeEntries)
	if s.HasRunningTimer {
		b.WriteString("  Timer: running\n")
	} else {
		b.WriteString("  Timer: stopped\n")
	}
	return b.String()
}

func writeSubtotals(b *strings.Builder, header string, totals []KeyMinutes) {
	if len(totals) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n", header)
	for _, total := range totals {
		fmt.Fprintf(b, "  %s: %s\n", total.Key, format.Minutes(total.Minutes))
	}
}
