package styles

import (
	"fmt"
	"time"
)

// RelativeTime formats tm relative to now ("just now", "5m ago", "3d ago").
// Anything older than four weeks is printed as a date.
func RelativeTime(tm, now time.Time) string {
	diff := now.Sub(tm)
	unit := func(n int, suffix string) string { return fmt.Sprintf("%d%s ago", n, suffix) }

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return unit(int(diff.Minutes()), "m")
	case diff < 24*time.Hour:
		return unit(int(diff.Hours()), "h")
	case diff < 7*24*time.Hour:
		return unit(int(diff.Hours()/24), "d")
	case diff < 28*24*time.Hour:
		return unit(int(diff.Hours()/(24*7)), "w")
	default:
		return tm.Format("2006-01-02")
	}
}
