// Package aggregate provides pure functions that bucket and summarize
// time entries for reporting. Nothing here mutates entries or touches
// storage; callers fetch the entry sets and supply name lookups.
package aggregate

import (
	"sort"
	"time"

	"timetrack/internal/domain"
)

// DayKeyLayout is the key format used for per-day breakdowns.
const DayKeyLayout = "2006-01-02"

// InRange returns the entries whose start time falls within [start, end]
// inclusive, preserving input order.
func InRange(entries []domain.TimeEntry, start, end time.Time) []domain.TimeEntry {
	var matched []domain.TimeEntry
	for _, entry := range entries {
		if entry.StartTime.Before(start) || entry.StartTime.After(end) {
			continue
		}
		matched = append(matched, entry)
	}
	return matched
}

// RecentFirst returns a copy of entries sorted by start time descending,
// the order used for "recent" listings.
func RecentFirst(entries []domain.TimeEntry) []domain.TimeEntry {
	sorted := make([]domain.TimeEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.After(sorted[j].StartTime)
	})
	return sorted
}

// OldestFirst returns a copy of entries sorted by start time ascending,
// the natural order for report listings.
func OldestFirst(entries []domain.TimeEntry) []domain.TimeEntry {
	sorted := make([]domain.TimeEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})
	return sorted
}

// OnDay returns the entries whose start time falls on the calendar date
// of the given day.
func OnDay(entries []domain.TimeEntry, day time.Time) []domain.TimeEntry {
	var matched []domain.TimeEntry
	for _, entry := range entries {
		if sameDate(entry.StartTime, day) {
			matched = append(matched, entry)
		}
	}
	return matched
}

// WeekBounds returns the Monday 00:00 start and Sunday end of the week
// containing the reference date. The returned end is the last instant of
// Sunday, so Sunday-dated entries are included.
func WeekBounds(ref time.Time) (time.Time, time.Time) {
	weekday := int(ref.Weekday())
	if weekday == 0 { // Sunday counts as day 7 of the ISO week
		weekday = 7
	}
	monday := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location()).
		AddDate(0, 0, -(weekday - 1))
	end := monday.AddDate(0, 0, 7).Add(-time.Nanosecond)
	return monday, end
}

// InWeek returns the entries whose start time falls in the Monday-to-Sunday
// week containing the reference date.
func InWeek(entries []domain.TimeEntry, ref time.Time) []domain.TimeEntry {
	start, end := WeekBounds(ref)
	return InRange(entries, start, end)
}

// InMonth returns the entries whose start time matches the given year and
// month. No day-of-month filtering applies.
func InMonth(entries []domain.TimeEntry, year int, month time.Month) []domain.TimeEntry {
	var matched []domain.TimeEntry
	for _, entry := range entries {
		if entry.StartTime.Year() == year && entry.StartTime.Month() == month {
			matched = append(matched, entry)
		}
	}
	return matched
}

// SumBy sums duration minutes grouped by the supplied key function.
// Running entries carry no duration and are excluded from the sums.
func SumBy(entries []domain.TimeEntry, key func(domain.TimeEntry) string) map[string]int {
	totals := make(map[string]int)
	for _, entry := range entries {
		if entry.DurationMinutes == nil {
			continue
		}
		totals[key(entry)] += *entry.DurationMinutes
	}
	return totals
}

// SumByDay sums duration minutes keyed by calendar date (DayKeyLayout).
func SumByDay(entries []domain.TimeEntry) map[string]int {
	return SumBy(entries, func(e domain.TimeEntry) string {
		return e.StartTime.Format(DayKeyLayout)
	})
}

// TaskFrequency is a task name with the number of entries recorded for it.
type TaskFrequency struct {
	Name  string
	Count int
}

// TopTasks counts completed entries per task name and returns the n most
// frequent. Ties keep first-encountered order. Running entries carry no
// duration and are excluded from the ranking.
func TopTasks(entries []domain.TimeEntry, taskName func(taskID int64) string, n int) []TaskFrequency {
	counts := make(map[string]int)
	var order []string
	for _, entry := range entries {
		if entry.DurationMinutes == nil {
			continue
		}
		name := taskName(entry.TaskID)
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
	}

	frequencies := make([]TaskFrequency, 0, len(order))
	for _, name := range order {
		frequencies = append(frequencies, TaskFrequency{Name: name, Count: counts[name]})
	}

	sort.SliceStable(frequencies, func(i, j int) bool {
		return frequencies[i].Count > frequencies[j].Count
	})

	if n >= 0 && len(frequencies) > n {
		frequencies = frequencies[:n]
	}
	return frequencies
}

// Summary holds entry count and total/billable minute sums for a window.
type Summary struct {
	EntryCount      int
	TotalMinutes    int
	BillableMinutes int
}

// NonBillableMinutes returns the non-billable share of the total.
func (s Summary) NonBillableMinutes() int {
	return s.TotalMinutes - s.BillableMinutes
}

// Summarize computes the entry count and minute totals for a set of
// entries. Running entries count toward EntryCount but not the sums.
func Summarize(entries []domain.TimeEntry) Summary {
	summary := Summary{EntryCount: len(entries)}
	for _, entry := range entries {
		if entry.DurationMinutes == nil {
			continue
		}
		summary.TotalMinutes += *entry.DurationMinutes
		if entry.Billable {
			summary.BillableMinutes += *entry.DurationMinutes
		}
	}
	return summary
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
