package models

import "time"

// MSummaryStats stores the headline statistics for one report run.
type MSummaryStats struct {
	TotalUploads   int64
	Successes      int64
	Failures       int64
	StartTime      time.Time
	EndTime        time.Time
	ElapsedMinutes float64
	AvgPerMinute   float64
	AvgPerSecond   float64
	AvgPerHour     float64
	UploadsLast10m int64
	UploadsLast24h int64
	DataPoints     int
}
