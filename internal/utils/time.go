package utils

import (
	"fmt"
	"time"

	"daygrid/internal/constants"
)

// ParseDay parses a date string (YYYY-MM-DD) into a time.Time at midnight UTC.
func ParseDay(day string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, day)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", day, err)
	}
	return t, nil
}

// FormatDay formats a time as a date string (YYYY-MM-DD).
func FormatDay(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// Day truncates a time to its calendar date at midnight UTC. Calendar
// arithmetic elsewhere assumes dates normalized this way.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddDays shifts a date by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// ValidateDay checks if the string matches the standard date format.
func ValidateDay(day string) bool {
	_, err := ParseDay(day)
	return err == nil
}
