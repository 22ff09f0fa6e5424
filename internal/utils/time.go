package utils

import (
	"strings"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutTime     = "15:04"
	layoutDateTime = "2006-01-02 15:04"
)

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// ParseDateTime combines a YYYY-MM-DD date and HH:MM time in local timezone.
func ParseDateTime(date, clock string) (time.Time, error) {
	return time.ParseInLocation(layoutDateTime, strings.TrimSpace(date)+" "+strings.TrimSpace(clock), time.Local)
}

// Midnight truncates t to the start of its local day.
func Midnight(t time.Time) time.Time {
	t = t.In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// FormatTime formats time to HH:MM in local timezone.
func FormatTime(t time.Time) string {
	return t.In(time.Local).Format(layoutTime)
}
