// Package format renders durations for reports and live timer displays.
package format

import (
	"fmt"
	"time"
)

// InProgress is the marker shown in place of a duration for entries that
// are still running.
const InProgress = "in progress"

// Minutes renders a minute count as "Xh Ym", the contract used by every
// report.
func Minutes(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}

// MinutesPtr renders a nullable minute count, falling back to the
// in-progress marker for running entries.
func MinutesPtr(minutes *int) string {
	if minutes == nil {
		return InProgress
	}
	return Minutes(*minutes)
}

// Clock renders an elapsed duration as HH:MM:SS, the style used for live
// timer displays.
func Clock(elapsed time.Duration) string {
	if elapsed < 0 {
		elapsed = 0
	}
	total := int(elapsed.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total/60)%60, total%60)
}

// Earnings renders a monetary amount with two decimal places.
func Earnings(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
