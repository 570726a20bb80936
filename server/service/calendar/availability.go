package calendar

import (
	"sort"
)

// AvailabilitySet is one person's free time as the minimal sorted set of
// disjoint, non-touching intervals. The invariant holds between any two
// operations: intervals are ascending by start, no two overlap, and no
// two are adjacent (touching neighbors are merged on insert).
//
// The zero value is an empty, usable set. AvailabilitySet is not safe for
// concurrent mutation; the service serializes writers per person.
type AvailabilitySet struct {
	intervals []Interval
}

// NewAvailabilitySet builds a set from arbitrary intervals, merging as it
// goes. Input order does not matter.
func NewAvailabilitySet(intervals ...Interval) *AvailabilitySet {
	s := &AvailabilitySet{}
	for _, iv := range intervals {
		s.Add(iv)
	}
	return s
}

// Add inserts an interval, merging it with the contiguous run of existing
// intervals it overlaps or touches. Because the set is sorted and
// disjoint, all mergeable intervals are adjacent in the slice: binary
// search finds the first candidate, a forward scan collects the run, and
// the merged result is spliced in its place. O(log n + k) for a run of k.
func (s *AvailabilitySet) Add(iv Interval) {
	// First interval whose end reaches the new start. Everything before
	// this index ends strictly before iv and cannot overlap or touch it.
	lo := sort.Search(len(s.intervals), func(k int) bool {
		return !s.intervals[k].End.Before(iv.Start)
	})

	hi := lo
	for hi < len(s.intervals) && (s.intervals[hi].Overlaps(iv) || s.intervals[hi].Touches(iv)) {
		iv = iv.Merge(s.intervals[hi])
		hi++
	}

	if lo == hi {
		// No neighbors absorbed; plain insert.
		s.intervals = append(s.intervals, Interval{})
		copy(s.intervals[lo+1:], s.intervals[lo:])
		s.intervals[lo] = iv
		return
	}

	s.intervals[lo] = iv
	s.intervals = append(s.intervals[:lo+1], s.intervals[hi:]...)
}

// Intersect computes the overlap between two availability sets with a
// two-pointer sweep over the sorted interval lists, advancing whichever
// interval ends first. O(n + m); the result is sorted and disjoint by
// construction, so no re-normalization is needed.
func (s *AvailabilitySet) Intersect(other *AvailabilitySet) *AvailabilitySet {
	out := &AvailabilitySet{}
	i, j := 0, 0
	for i < len(s.intervals) && j < len(other.intervals) {
		if iv, ok := s.intervals[i].Intersect(other.intervals[j]); ok {
			out.intervals = append(out.intervals, iv)
		}
		switch {
		case s.intervals[i].End.Before(other.intervals[j].End):
			i++
		case other.intervals[j].End.Before(s.intervals[i].End):
			j++
		default:
			i++
			j++
		}
	}
	return out
}

// IsEmpty reports whether the set contains no free time.
func (s *AvailabilitySet) IsEmpty() bool {
	return len(s.intervals) == 0
}

// Len returns the number of stored intervals.
func (s *AvailabilitySet) Len() int {
	return len(s.intervals)
}

// Intervals returns an ordered snapshot of the set. The returned slice is
// a copy; mutating it does not affect the set.
func (s *AvailabilitySet) Intervals() []Interval {
	out := make([]Interval, len(s.intervals))
	copy(out, s.intervals)
	return out
}
