package analysis

import (
	"time"

	"upload-report/src/analysis/core"
	"upload-report/src/helpers"
	"upload-report/src/logger"
	"upload-report/src/models"
	"upload-report/src/utils"
)

type AnalysisFacade struct {
	Config        *models.MConfig
	WindowSeconds int64
	Logger        *logger.Logger
	resampler     *TimeSeriesResampler
}

// -----------------------------------------------------------------------------

func NewAnalysisFacade(cfg *models.MConfig, log *logger.Logger) *AnalysisFacade {
	// Bucket window comes from config, parsed like a duration string
	windowSeconds := int64(utils.DefaultBucketWindow.Seconds())
	if cfg.Report.BucketWindow != "" {
		if dur, err := time.ParseDuration(cfg.Report.BucketWindow); err == nil && dur > 0 {
			windowSeconds = int64(dur.Seconds())
		}
	}

	return &AnalysisFacade{
		Config:        cfg,
		WindowSeconds: windowSeconds,
		Logger:        log,
		resampler:     &TimeSeriesResampler{},
	}
}

// -----------------------------------------------------------------------------

// BuildReport runs the normalization and aggregation stages over raw records
// and returns the full report bundle.
func (a *AnalysisFacade) BuildReport(records []models.MUploadRecord) (models.MReport, error) {
	if len(records) == 0 {
		return models.MReport{}, &helpers.ValidationError{UploadReportError: helpers.UploadReportError{
			Message: "no records to analyze",
		}}
	}

	// 1. Chronological order
	series := models.MUploadSeries{Records: SortRecords(records)}

	// 2. Per-interval deltas
	deltas, err := BuildDeltaSeries(series, a.Config.Report.NegativeDeltaPolicy, a.Logger)
	if err != nil {
		return models.MReport{}, err
	}
	if deltas.Clamped > 0 {
		a.Logger.Debug("Clamped %d negative interval(s)", deltas.Clamped)
	}

	// 3. Epoch timestamps for the window math
	timestamps := make([]int64, len(series.Records))
	for i, rec := range series.Records {
		timestamps[i] = rec.Timestamp.Unix()
	}

	// 4. Aligned buckets
	buckets := a.resampler.ResampleSums(timestamps, deltas.Deltas, a.WindowSeconds)

	// 5. Headline statistics
	stats := a.summarize(series, deltas, timestamps)

	return models.MReport{
		Series:  series,
		Deltas:  deltas,
		Buckets: buckets,
		Stats:   stats,
	}, nil
}

// -----------------------------------------------------------------------------

// summarize computes the headline statistics from the sorted series.
func (a *AnalysisFacade) summarize(series models.MUploadSeries, deltas models.MDeltaSeries, timestamps []int64) models.MSummaryStats {
	first := series.Records[0]
	last := series.Records[len(series.Records)-1]

	total := last.TotalUploads
	elapsedMinutes := last.Timestamp.Sub(first.Timestamp).Minutes()

	avgPerMinute := core.SafeRate(float64(total), elapsedMinutes)
	avgPerSecond := avgPerMinute / 60
	avgPerHour := core.SafeRate(float64(total), elapsedMinutes/60)

	endTs := timestamps[len(timestamps)-1]
	last10m := core.SumInWindow(timestamps, deltas.Deltas, endTs-int64(utils.TrailingShortWindow.Seconds()), endTs)
	last24h := core.SumInWindow(timestamps, deltas.Deltas, endTs-int64(utils.TrailingLongWindow.Seconds()), endTs)

	return models.MSummaryStats{
		TotalUploads:   total,
		Successes:      last.Successes,
		Failures:       last.Failures,
		StartTime:      first.Timestamp,
		EndTime:        last.Timestamp,
		ElapsedMinutes: elapsedMinutes,
		AvgPerMinute:   avgPerMinute,
		AvgPerSecond:   avgPerSecond,
		AvgPerHour:     avgPerHour,
		UploadsLast10m: last10m,
		UploadsLast24h: last24h,
		DataPoints:     len(series.Records),
	}
}
