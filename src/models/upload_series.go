package models

import "time"

// MUploadSeries is the cumulative series in chronological order.
type MUploadSeries struct {
	Records []MUploadRecord
}

// -----------------------------------------------------------------------------

// MDeltaSeries holds per-interval upload counts aligned with the series
// timestamps. The first interval is always zero and no interval is negative.
type MDeltaSeries struct {
	Timestamps []time.Time
	Deltas     []int64
	Clamped    int
}
