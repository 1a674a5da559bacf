package utils

import (
	"fmt"
	"time"

	"github.com/mantra-journal/mantra/internal/constants"
)

// FormatDate renders t as a YYYY-MM-DD day string.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// FormatTime renders t as an HH:MM display time.
func FormatTime(t time.Time) string {
	return t.Format(constants.TimeFormat)
}

// Today returns today's day string in the local timezone.
func Today() string {
	return FormatDate(time.Now())
}

// ParseDate parses a YYYY-MM-DD day string.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", date, err)
	}
	return t, nil
}

// AddDays shifts a day string by n calendar days.
func AddDays(date string, n int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return FormatDate(t.AddDate(0, 0, n)), nil
}

// MonthPrefix returns the YYYY-MM prefix shared by all day strings in the
// given month.
func MonthPrefix(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// UnixMillis converts t to unix milliseconds, the timestamp unit used by
// entries and profiles.
func UnixMillis(t time.Time) int64 {
	return t.UnixMilli()
}
