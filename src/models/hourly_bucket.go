package models

// MHourlyBucket represents summed uploads for one aligned clock-hour window.
type MHourlyBucket struct {
	StartTime  int64
	EndTime    int64
	Uploads    int64
	DataPoints int
}
