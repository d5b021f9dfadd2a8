package analysis

import (
	"sort"

	"upload-report/src/models"
)

// TimeSeriesResampler handles time-based resampling calculations.
type TimeSeriesResampler struct{}

// -----------------------------------------------------------------------------

// ResampleSums partitions values into aligned windows and sums each one.
// Timestamps must be sorted ascending. Windows start on multiples of
// windowSeconds (UTC epoch), cover [start, start+windowSeconds), and are
// emitted contiguously from the first aligned window through the last so
// interior gaps show up as zero-sum windows.
func (r *TimeSeriesResampler) ResampleSums(timestamps []int64, values []int64, windowSeconds int64) []models.MHourlyBucket {
	if len(timestamps) == 0 || windowSeconds <= 0 {
		return []models.MHourlyBucket{}
	}

	minTs := timestamps[0]
	maxTs := timestamps[len(timestamps)-1]
	firstStart, _ := CalculateWindowBoundaries(minTs, windowSeconds)

	var buckets []models.MHourlyBucket
	for start := firstStart; start <= maxTs; start += windowSeconds {
		end := start + windowSeconds

		// Window boundary indices, left inclusive, right exclusive
		startIdx := sort.Search(len(timestamps), func(j int) bool {
			return timestamps[j] >= start
		})
		endIdx := sort.Search(len(timestamps), func(j int) bool {
			return timestamps[j] >= end
		})

		bucket := models.MHourlyBucket{
			StartTime:  start,
			EndTime:    end,
			DataPoints: endIdx - startIdx,
		}
		for idx := startIdx; idx < endIdx && idx < len(values); idx++ {
			bucket.Uploads += values[idx]
		}
		buckets = append(buckets, bucket)
	}

	return buckets
}

// -----------------------------------------------------------------------------

// CalculateWindowBoundaries returns the aligned [start, end) window containing ts.
func CalculateWindowBoundaries(ts int64, window int64) (int64, int64) {
	start := ts - (ts % window)
	return start, start + window
}
