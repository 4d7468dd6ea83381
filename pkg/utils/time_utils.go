package utils

import (
	"fmt"
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a midnight-UTC time.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, ErrInvalidInput)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format("Jan 02, 2006")
}

func FormatDateTime(t time.Time) string {
	return t.Format("Jan 02, 2006 at 15:04")
}

// DaysBetween counts whole calendar days from a to b, truncating both to
// midnight UTC first so time-of-day never skews the count.
func DaysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// Round2 rounds to two decimal places, the precision all prices carry.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to one decimal place, used for ratings.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
