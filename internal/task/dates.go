package task

import (
	"fmt"
	"strings"
	"time"
)

const (
	dateKeyLayout  = "2006-01-02"
	dueDateDisplay = "Mon 02-01-2006"
)

// ParseDueDate accepts a calendar date or an RFC 3339 timestamp and returns
// midnight UTC of the calendar day written in the input. Blank input yields
// nil.
func ParseDueDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	t, err := time.Parse(dateKeyLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, fmt.Errorf("invalid due date %q: expected YYYY-MM-DD or RFC 3339", s)
		}
	}
	day := dateOnly(t)
	return &day, nil
}

// dateOnly drops the time of day and zone, keeping the calendar day as seen
// in t's own location.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sameDay(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Format(dateKeyLayout) == b.Format(dateKeyLayout)
}

// FormatDueDate renders a due date for humans, e.g. "Mon 10-06-2024".
func FormatDueDate(t *time.Time) string {
	if t == nil {
		return "none"
	}
	return t.Format(dueDateDisplay)
}
