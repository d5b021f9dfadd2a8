package report

import (
	"fmt"
	"time"

	"upload-report/src/analysis/core"
	"upload-report/src/logger"
	"upload-report/src/models"
	"upload-report/src/render"
)

// bucketTimeLayout is how bucket starts are shown in the report.
const bucketTimeLayout = "2006-01-02 15:04"

// -----------------------------------------------------------------------------

// PrintSummary writes the final console report for one run.
func PrintSummary(rep models.MReport, outPath string) {
	stats := rep.Stats

	fmt.Println("\nUpload Report:")
	fmt.Println("====================")
	fmt.Printf("Window: %s -> %s\n", stats.StartTime.Format(time.RFC3339), stats.EndTime.Format(time.RFC3339))
	fmt.Printf("Data Points: %d\n", stats.DataPoints)
	fmt.Printf("Total Uploads: %s\n", render.FormatGrouped(stats.TotalUploads))
	fmt.Printf("Successes: %s\n", render.FormatGrouped(stats.Successes))
	fmt.Printf("Failures: %s\n", render.FormatGrouped(stats.Failures))
	fmt.Printf("Success Rate: %.2f%%\n", core.SuccessRatio(float64(stats.Successes), float64(stats.TotalUploads))*100)
	fmt.Printf("Average per Minute: %s\n", render.FormatGroupedFloat(stats.AvgPerMinute))
	fmt.Printf("Average per Second (Estimated): %s\n", render.FormatGroupedFloat(stats.AvgPerSecond))
	fmt.Printf("Average per Hour: %s\n", render.FormatGroupedFloat(stats.AvgPerHour))
	fmt.Printf("Uploads in Last 10 Minutes: %s\n", render.FormatGrouped(stats.UploadsLast10m))
	fmt.Printf("Uploads in Last 24 Hours: %s\n", render.FormatGrouped(stats.UploadsLast24h))
	if peak, ok := PeakBucket(rep.Buckets); ok {
		start := time.Unix(peak.StartTime, 0).UTC()
		fmt.Printf("Peak Hour: %s (%s uploads)\n", start.Format(bucketTimeLayout), render.FormatGrouped(peak.Uploads))
	}
	fmt.Printf("Plot File: %s\n", outPath)
	fmt.Println("====================")
}

// -----------------------------------------------------------------------------

// PeakBucket returns the bucket with the most uploads.
func PeakBucket(buckets []models.MHourlyBucket) (models.MHourlyBucket, bool) {
	if len(buckets) == 0 {
		return models.MHourlyBucket{}, false
	}

	peak := buckets[0]
	for _, b := range buckets[1:] {
		if b.Uploads > peak.Uploads {
			peak = b
		}
	}
	return peak, true
}

// -----------------------------------------------------------------------------

// DumpBuckets logs the full bucket table at debug level.
func DumpBuckets(log *logger.Logger, buckets []models.MHourlyBucket) {
	if len(buckets) == 0 {
		return
	}

	vals := make([]float64, len(buckets))
	for i, b := range buckets {
		vals[i] = float64(b.Uploads)
		log.Debug("Bucket %s: uploads=%d points=%d",
			time.Unix(b.StartTime, 0).UTC().Format(bucketTimeLayout), b.Uploads, b.DataPoints)
	}

	mean, std := core.CalculateMeanStd(vals)
	log.Debug("Buckets: n=%d mean=%.2f std=%.2f", len(buckets), mean, std)
}
