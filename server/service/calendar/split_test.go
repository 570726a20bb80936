package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitIntervals_Hourly(t *testing.T) {
	got := SplitIntervals([]Interval{span(t, 9, 12)}, time.Hour)
	assert.Equal(t, []Interval{span(t, 9, 10), span(t, 10, 11), span(t, 11, 12)}, got)
}

func TestSplitIntervals_KeepsRemainder(t *testing.T) {
	iv, err := NewInterval(at(9, 0), at(10, 30))
	require.NoError(t, err)

	got := SplitIntervals([]Interval{iv}, time.Hour)
	require.Len(t, got, 2)
	assert.Equal(t, span(t, 9, 10), got[0])
	assert.True(t, got[1].Start.Equal(at(10, 0)))
	assert.True(t, got[1].End.Equal(at(10, 30)))
}

func TestSplitIntervals_ShorterThanStep(t *testing.T) {
	iv, err := NewInterval(at(9, 0), at(9, 20))
	require.NoError(t, err)

	got := SplitIntervals([]Interval{iv}, time.Hour)
	assert.Equal(t, []Interval{iv}, got)
}

func TestSplitIntervals_NonPositiveStep(t *testing.T) {
	in := []Interval{span(t, 9, 12)}
	assert.Equal(t, in, SplitIntervals(in, 0))
	assert.Equal(t, in, SplitIntervals(in, -time.Hour))
}

func TestSplitIntervals_MultipleIntervalsStaySorted(t *testing.T) {
	got := SplitIntervals([]Interval{span(t, 9, 11), span(t, 14, 16)}, time.Hour)
	assert.Equal(t, []Interval{
		span(t, 9, 10), span(t, 10, 11),
		span(t, 14, 15), span(t, 15, 16),
	}, got)
}
