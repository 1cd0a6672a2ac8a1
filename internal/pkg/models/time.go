package models

import (
	"time"
)

// DateLayout is the date format the backend uses for payments
const DateLayout = "2006-01-02"

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// FormatTime formats a time.Time according to RFC3339
func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

// FormatDate formats t as a backend date
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a backend date
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
