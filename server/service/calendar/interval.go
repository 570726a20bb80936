package calendar

import (
	"fmt"
	"time"
)

// Interval is a half-open time range [Start, End).
// Instants are normalized to UTC on construction; comparisons use the
// time.Time order, so the zone a caller parsed with does not matter.
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewInterval builds a validated interval. Zero-length and inverted ranges
// are rejected with *InvalidRangeError.
func NewInterval(start, end time.Time) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, &InvalidRangeError{Start: start, End: end}
	}
	return Interval{Start: start.UTC(), End: end.UTC()}, nil
}

// Duration returns End - Start.
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps reports whether the two intervals share at least one instant.
// Half-open semantics: [9,10) and [10,11) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Touches reports whether the two intervals are adjacent without
// overlapping, i.e. one ends exactly where the other starts.
func (i Interval) Touches(other Interval) bool {
	return i.End.Equal(other.Start) || other.End.Equal(i.Start)
}

// Merge returns the union of two intervals. Callers must check
// Overlaps or Touches first; merging disjoint intervals would silently
// cover the gap between them.
func (i Interval) Merge(other Interval) Interval {
	merged := i
	if other.Start.Before(merged.Start) {
		merged.Start = other.Start
	}
	if other.End.After(merged.End) {
		merged.End = other.End
	}
	return merged
}

// Intersect returns the overlap of two intervals. The second return value
// is false when the intervals are disjoint, including when they merely
// touch: a single shared boundary instant is a zero-length window, which
// is not a usable time range.
func (i Interval) Intersect(other Interval) (Interval, bool) {
	start := i.Start
	if other.Start.After(start) {
		start = other.Start
	}
	end := i.End
	if other.End.Before(end) {
		end = other.End
	}
	if !start.Before(end) {
		return Interval{}, false
	}
	return Interval{Start: start, End: end}, true
}

// String renders the interval in the external ISO-8601 form, mostly for
// logs and test failure messages.
func (i Interval) String() string {
	return fmt.Sprintf("[%s, %s)", i.Start.Format(InstantLayout), i.End.Format(InstantLayout))
}
