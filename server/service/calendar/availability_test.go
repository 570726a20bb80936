package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailabilitySet_AddMergesOverlapping(t *testing.T) {
	set := NewAvailabilitySet()
	set.Add(span(t, 9, 11))
	set.Add(span(t, 10, 12))

	require.Equal(t, 1, set.Len())
	assert.Equal(t, []Interval{span(t, 9, 12)}, set.Intervals())
}

func TestAvailabilitySet_AddMergesTouching(t *testing.T) {
	set := NewAvailabilitySet(span(t, 9, 10), span(t, 10, 11))
	require.Equal(t, 1, set.Len())
	assert.Equal(t, []Interval{span(t, 9, 11)}, set.Intervals())
}

func TestAvailabilitySet_AddKeepsDisjoint(t *testing.T) {
	set := NewAvailabilitySet(span(t, 14, 16), span(t, 9, 10))
	assert.Equal(t, []Interval{span(t, 9, 10), span(t, 14, 16)}, set.Intervals())
}

func TestAvailabilitySet_AddIsIdempotent(t *testing.T) {
	set := NewAvailabilitySet(span(t, 9, 11))
	set.Add(span(t, 9, 11))
	assert.Equal(t, []Interval{span(t, 9, 11)}, set.Intervals())
}

func TestAvailabilitySet_AddBridgesRun(t *testing.T) {
	// One insert can swallow a whole run of existing intervals.
	set := NewAvailabilitySet(span(t, 9, 10), span(t, 11, 12), span(t, 13, 14), span(t, 16, 17))
	set.Add(span(t, 10, 13))

	assert.Equal(t, []Interval{span(t, 9, 14), span(t, 16, 17)}, set.Intervals())
}

func TestAvailabilitySet_AddOrderIndependent(t *testing.T) {
	intervals := []Interval{span(t, 13, 14), span(t, 9, 10), span(t, 10, 11), span(t, 12, 15)}

	forward := NewAvailabilitySet(intervals...)
	backward := NewAvailabilitySet(intervals[3], intervals[2], intervals[1], intervals[0])
	assert.Equal(t, forward.Intervals(), backward.Intervals())
}

func TestAvailabilitySet_Intersect(t *testing.T) {
	a := NewAvailabilitySet(span(t, 9, 12), span(t, 14, 18))
	b := NewAvailabilitySet(span(t, 10, 15), span(t, 17, 20))

	got := a.Intersect(b)
	assert.Equal(t, []Interval{span(t, 10, 12), span(t, 14, 15), span(t, 17, 18)}, got.Intervals())
}

func TestAvailabilitySet_IntersectTouchDropsWindow(t *testing.T) {
	a := NewAvailabilitySet(span(t, 9, 10))
	b := NewAvailabilitySet(span(t, 10, 11))
	assert.True(t, a.Intersect(b).IsEmpty())
}

func TestAvailabilitySet_IntersectEmptyOperand(t *testing.T) {
	a := NewAvailabilitySet(span(t, 9, 12))
	empty := NewAvailabilitySet()

	assert.True(t, a.Intersect(empty).IsEmpty())
	assert.True(t, empty.Intersect(a).IsEmpty())
}

func TestAvailabilitySet_IntersectAssociative(t *testing.T) {
	a := NewAvailabilitySet(span(t, 8, 12), span(t, 13, 18))
	b := NewAvailabilitySet(span(t, 9, 14), span(t, 15, 19))
	c := NewAvailabilitySet(span(t, 10, 16))

	left := a.Intersect(b).Intersect(c)
	right := a.Intersect(b.Intersect(c))
	assert.Equal(t, left.Intervals(), right.Intervals())
}

func TestAvailabilitySet_IntervalsReturnsCopy(t *testing.T) {
	set := NewAvailabilitySet(span(t, 9, 10))
	snapshot := set.Intervals()
	snapshot[0] = span(t, 14, 16)
	assert.Equal(t, []Interval{span(t, 9, 10)}, set.Intervals())
}
