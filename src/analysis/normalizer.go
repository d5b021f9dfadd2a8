package analysis

import (
	"fmt"
	"sort"
	"time"

	"upload-report/src/helpers"
	"upload-report/src/logger"
	"upload-report/src/models"
)

// Negative delta policies.
const (
	PolicyClamp = "clamp"
	PolicyWarn  = "warn"
	PolicyFail  = "fail"
)

// -----------------------------------------------------------------------------

// SortRecords orders records chronologically. The sort is stable so rows
// sharing a timestamp keep their input order.
func SortRecords(records []models.MUploadRecord) []models.MUploadRecord {
	sorted := make([]models.MUploadRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})
	return sorted
}

// -----------------------------------------------------------------------------

// BuildDeltaSeries derives per-interval upload counts from the sorted
// cumulative series. The first interval is zero. A cumulative counter that
// decreases (counter reset, interleaved writers) is handled according to
// the negative delta policy.
func BuildDeltaSeries(series models.MUploadSeries, policy string, log *logger.Logger) (models.MDeltaSeries, error) {
	delta := models.MDeltaSeries{
		Timestamps: make([]time.Time, len(series.Records)),
		Deltas:     make([]int64, len(series.Records)),
	}

	for i, rec := range series.Records {
		delta.Timestamps[i] = rec.Timestamp
		if i == 0 {
			continue
		}

		d := rec.TotalUploads - series.Records[i-1].TotalUploads
		if d < 0 {
			switch policy {
			case PolicyFail:
				return models.MDeltaSeries{}, &helpers.ValidationError{UploadReportError: helpers.UploadReportError{
					Message: fmt.Sprintf("cumulative counter decreased by %d at %s", -d, rec.Timestamp.Format(time.RFC3339)),
				}}
			case PolicyWarn:
				log.Warning("Clamped negative delta %d at %s", d, rec.Timestamp.Format(time.RFC3339))
			}
			d = 0
			delta.Clamped++
		}
		delta.Deltas[i] = d
	}

	return delta, nil
}
