package scoring

import "time"

// withinWindow reports whether t falls strictly after now minus window.
func withinWindow(t, now time.Time, window time.Duration) bool {
	return t.After(now.Add(-window))
}

// percent returns part/total as an integer percentage, 0 when total is 0.
func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return part * 100 / total
}

// windowDays renders a recency window as whole days for messages.
func windowDays(window time.Duration) int {
	return int(window.Hours() / 24)
}
