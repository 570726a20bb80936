package calendar

import (
	"fmt"
	"strings"
	"time"
)

// InstantLayout is the external representation of an instant:
// ISO-8601 combined date-time, seconds precision, no zone designator.
const InstantLayout = "2006-01-02T15:04:05"

// instantLayouts are the accepted inputs, tried in order. The space
// separator is tolerated because every shell makes quoting the T form
// annoying; RFC 3339 input is accepted and converted to UTC.
var instantLayouts = []string{
	InstantLayout,
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// ParseInstant parses an external date-time string into a UTC instant.
// Only the transport boundaries (HTTP handlers, CLI) should call this;
// the engine itself works on time.Time values exclusively.
func ParseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date-time")
	}
	for _, layout := range instantLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date-time %q: expected %s", s, InstantLayout)
}

// FormatInstant renders an instant in the external representation.
func FormatInstant(t time.Time) string {
	return t.UTC().Format(InstantLayout)
}
