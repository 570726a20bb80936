package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// at builds an instant on a fixed day; tests only care about relative order.
func at(hour, min int) time.Time {
	return time.Date(2026, time.March, 10, hour, min, 0, 0, time.UTC)
}

func span(t *testing.T, startHour, endHour int) Interval {
	t.Helper()
	iv, err := NewInterval(at(startHour, 0), at(endHour, 0))
	require.NoError(t, err)
	return iv
}

func TestNewInterval_Validation(t *testing.T) {
	_, err := NewInterval(at(10, 0), at(9, 0))
	var invalid *InvalidRangeError
	require.ErrorAs(t, err, &invalid)

	// Zero-length ranges are rejected too.
	_, err = NewInterval(at(10, 0), at(10, 0))
	require.ErrorAs(t, err, &invalid)

	iv, err := NewInterval(at(9, 0), at(10, 0))
	require.NoError(t, err)
	assert.Equal(t, time.Hour, iv.Duration())
}

func TestNewInterval_NormalizesToUTC(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*60*60)
	iv, err := NewInterval(
		time.Date(2026, time.March, 10, 11, 0, 0, 0, zone),
		time.Date(2026, time.March, 10, 12, 0, 0, 0, zone),
	)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, iv.Start.Location())
	assert.True(t, iv.Start.Equal(at(9, 0)))
}

func TestInterval_OverlapsAndTouches(t *testing.T) {
	morning := span(t, 9, 11)
	late := span(t, 10, 12)
	noon := span(t, 11, 13)
	afternoon := span(t, 14, 16)

	assert.True(t, morning.Overlaps(late))
	assert.True(t, late.Overlaps(morning))

	// Half-open: sharing a boundary is touching, not overlapping.
	assert.False(t, morning.Overlaps(noon))
	assert.True(t, morning.Touches(noon))
	assert.True(t, noon.Touches(morning))

	assert.False(t, morning.Overlaps(afternoon))
	assert.False(t, morning.Touches(afternoon))
}

func TestInterval_Merge(t *testing.T) {
	merged := span(t, 9, 11).Merge(span(t, 10, 12))
	assert.True(t, merged.Start.Equal(at(9, 0)))
	assert.True(t, merged.End.Equal(at(12, 0)))

	// Merge is symmetric and swallows contained intervals.
	assert.Equal(t, merged, span(t, 10, 12).Merge(span(t, 9, 11)))
	assert.Equal(t, span(t, 9, 12), span(t, 9, 12).Merge(span(t, 10, 11)))
}

func TestInterval_Intersect(t *testing.T) {
	got, ok := span(t, 9, 11).Intersect(span(t, 10, 12))
	require.True(t, ok)
	assert.Equal(t, span(t, 10, 11), got)

	// Touching intervals have an empty intersection.
	_, ok = span(t, 9, 10).Intersect(span(t, 10, 11))
	assert.False(t, ok)

	_, ok = span(t, 9, 10).Intersect(span(t, 14, 16))
	assert.False(t, ok)

	// Containment.
	got, ok = span(t, 9, 17).Intersect(span(t, 12, 13))
	require.True(t, ok)
	assert.Equal(t, span(t, 12, 13), got)
}
