// Package dates holds the month-key helpers used across payroll.
// A month key is a "YYYY-MM" string; zero-padded keys order correctly
// under plain string comparison, which the recurrence rules rely on.
package dates

import (
	"fmt"
	"time"
)

const monthKeyLayout = "2006-01"

// ParseMonth parses a "YYYY-MM" month key.
func ParseMonth(monthKey string) (year int, month time.Month, err error) {
	t, err := time.Parse(monthKeyLayout, monthKey)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q: %w", monthKey, err)
	}
	return t.Year(), t.Month(), nil
}

// IsValidMonth reports whether monthKey is a well-formed "YYYY-MM" key.
func IsValidMonth(monthKey string) bool {
	_, _, err := ParseMonth(monthKey)
	return err == nil
}

// MonthOf returns the month key containing t.
func MonthOf(t time.Time) string {
	return t.Format(monthKeyLayout)
}

// MonthEnd returns the last day of the keyed month at midnight UTC.
func MonthEnd(monthKey string) (time.Time, error) {
	year, month, err := ParseMonth(monthKey)
	if err != nil {
		return time.Time{}, err
	}
	firstOfNext := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
	return firstOfNext.AddDate(0, 0, -1), nil
}

// DaysInMonth returns the calendar length of the keyed month (28-31).
func DaysInMonth(monthKey string) (int, error) {
	end, err := MonthEnd(monthKey)
	if err != nil {
		return 0, err
	}
	return end.Day(), nil
}

// FirstDay returns the "YYYY-MM-01" date string for the keyed month.
func FirstDay(monthKey string) string {
	return monthKey + "-01"
}

var spanishMonths = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// FormatMonthYear renders a month key for reports, e.g. "Marzo 2024".
func FormatMonthYear(monthKey string) string {
	year, month, err := ParseMonth(monthKey)
	if err != nil {
		return monthKey
	}
	return fmt.Sprintf("%s %d", spanishMonths[month-1], year)
}
