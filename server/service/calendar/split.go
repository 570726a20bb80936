package calendar

import "time"

// SplitIntervals chops each interval into consecutive chunks of at most
// step. A remainder shorter than step is kept as a final short chunk, so
// splitting never discards availability. A non-positive step returns the
// input unchanged. This is presentation only; stored availability stays
// in merged form.
func SplitIntervals(intervals []Interval, step time.Duration) []Interval {
	if step <= 0 {
		out := make([]Interval, len(intervals))
		copy(out, intervals)
		return out
	}

	out := make([]Interval, 0, len(intervals))
	for _, iv := range intervals {
		for start := iv.Start; start.Before(iv.End); start = start.Add(step) {
			end := start.Add(step)
			if end.After(iv.End) {
				end = iv.End
			}
			out = append(out, Interval{Start: start, End: end})
		}
	}
	return out
}
