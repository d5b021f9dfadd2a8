package models

import "time"

// MUploadRecord represents one validated row of the stats CSV.
type MUploadRecord struct {
	Timestamp    time.Time
	TotalUploads int64
	Successes    int64
	Failures     int64
}
