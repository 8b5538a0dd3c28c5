// Package timeutil provides calendar boundary helpers and date parsing
// shared by reports, listings and export.
package timeutil

import (
	"fmt"
	"time"
)

// StartOfDay returns midnight (00:00:00) of the given day in the same timezone.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of the given day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Nanosecond)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// StartOfWeek returns the first day of the week containing t at
// midnight. weekStart is "sunday" or "monday"; anything else defaults
// to monday (ISO convention). Handles the Sunday edge case where Go's
// Weekday() returns 0.
func StartOfWeek(t time.Time, weekStart string) time.Time {
	weekday := int(t.Weekday())
	if weekStart == "sunday" {
		return StartOfDay(t).AddDate(0, 0, -weekday)
	}
	if weekday == 0 { // Sunday
		weekday = 7
	}
	return StartOfDay(t).AddDate(0, 0, -(weekday - 1))
}

// EndOfWeek returns the last nanosecond of the week containing t.
func EndOfWeek(t time.Time, weekStart string) time.Time {
	return StartOfWeek(t, weekStart).AddDate(0, 0, 7).Add(-time.Nanosecond)
}

// StartOfMonth returns the first day of the month at midnight.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last nanosecond of the last day of the month.
// Adding a month to the first day handles the varying month lengths.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}

// IsInRange checks if t falls within [start, end] inclusive.
func IsInRange(t, start, end time.Time) bool {
	return (t.Equal(start) || t.After(start)) && (t.Equal(end) || t.Before(end))
}

// ParseDate parses a date string in YYYY-MM-DD or DD/MM/YYYY format,
// returning midnight of that day in local time. ISO format is preferred
// for ambiguous dates.
func ParseDate(input string) (time.Time, error) {
	if input == "" {
		return time.Time{}, fmt.Errorf("date cannot be empty (use format YYYY-MM-DD or DD/MM/YYYY)")
	}

	if t, err := time.ParseInLocation("2006-01-02", input, time.Local); err == nil {
		return StartOfDay(t), nil
	}

	if t, err := time.ParseInLocation("02/01/2006", input, time.Local); err == nil {
		return StartOfDay(t), nil
	}

	return time.Time{}, fmt.Errorf("invalid date format '%s' (use YYYY-MM-DD or DD/MM/YYYY, e.g., 2024-01-15 or 15/01/2024)", input)
}

// ParseDateRangeFlags resolves --from/--to flag values into a concrete
// range. A missing --from leaves the lower bound open (zero); a missing
// --to closes the range at the end of today.
func ParseDateRangeFlags(fromStr, toStr string) (start, end time.Time, err error) {
	if fromStr != "" {
		start, err = ParseDate(fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --from date: %w", err)
		}
	}

	if toStr != "" {
		toDate, err := ParseDate(toStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --to date: %w", err)
		}
		end = EndOfDay(toDate)
	} else {
		end = EndOfDay(time.Now())
	}

	if !start.IsZero() && start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("--from date (%s) is after --to date (%s)",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	return start, end, nil
}
