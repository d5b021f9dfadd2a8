package models

// -----------------------------------------------------------------------------
// Report bundle handed from the analysis stage to the consumers
// -----------------------------------------------------------------------------

// MReport bundles everything one run derives from the input series.
type MReport struct {
	Series  MUploadSeries
	Deltas  MDeltaSeries
	Buckets []MHourlyBucket
	Stats   MSummaryStats
}
