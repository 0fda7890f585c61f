// Package timeutil parses and formats the calendar dates typed at the desk.
package timeutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/tuitiondesk/tuition-desk/internal/domain/shared"
)

// DateLayout is the only accepted input format, e.g. "2024-03-01".
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date at midnight UTC.
// Blank input yields the zero time, meaning "unknown".
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", shared.ErrInvalidDate, s)
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD, or "unknown" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return t.Format(DateLayout)
}

// Date creates a UTC date at midnight.
func Date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
