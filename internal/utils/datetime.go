package utils

import "time"

// DisplayTimeLayout formats timestamps for human-facing output.
const DisplayTimeLayout = "2006-01-02 15:04:05"

// FormatDateTime renders a timestamp for display.
func FormatDateTime(t time.Time) string {
	return t.Format(DisplayTimeLayout)
}

// DaysBetween returns the number of whole days from start to end.
func DaysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}
