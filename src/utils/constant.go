package utils

import "time"

// -----------------------------------------------------------------------------

// Column names the loader requires. The counter columns are checked in the
// order they appear in RequiredCounterColumns.
const (
	ColumnTimestamp    = "Timestamp"
	ColumnTotalUploads = "TotalUploads"
	ColumnSuccesses    = "Successes"
	ColumnFailures     = "Failures"
)

// RequiredCounterColumns lists the counter columns every input file must carry.
var RequiredCounterColumns = []string{ColumnTotalUploads, ColumnSuccesses, ColumnFailures}

// -----------------------------------------------------------------------------

// DefaultTimestampLayouts are the layouts tried when the config does not
// override them. The benchmark monitor writes RFC3339; older exports used
// the plain space-separated form.
var DefaultTimestampLayouts = []string{time.RFC3339, "2006-01-02 15:04:05"}

// -----------------------------------------------------------------------------

// Trailing windows reported in the summary block.
const (
	TrailingShortWindow = 10 * time.Minute
	TrailingLongWindow  = 24 * time.Hour
)

// DefaultBucketWindow is the resample window used when the config omits one.
const DefaultBucketWindow = time.Hour
