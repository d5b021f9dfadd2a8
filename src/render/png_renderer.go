package render

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"upload-report/src/helpers"
	"upload-report/src/logger"
	"upload-report/src/models"
)

// PNGRenderer draws the annotated report chart and writes it to disk.
type PNGRenderer struct {
	Config *models.MConfig
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewPNGRenderer(cfg *models.MConfig) *PNGRenderer {
	return &PNGRenderer{
		Config: cfg,
		Logger: logger.NewLogger(nil, "PNGRenderer"),
	}
}

// -----------------------------------------------------------------------------

func (r *PNGRenderer) Name() string {
	return "png"
}

// -----------------------------------------------------------------------------

// Render draws the cumulative series with its annotation block and writes
// plot_<date>_<total>.png into the output directory. An existing file with
// the same name is overwritten.
func (r *PNGRenderer) Render(series models.MUploadSeries, stats models.MSummaryStats) (string, error) {
	xs := make([]time.Time, len(series.Records))
	ys := make([]float64, len(series.Records))
	for i, rec := range series.Records {
		xs[i] = rec.Timestamp
		ys[i] = float64(rec.TotalUploads)
	}

	// Pad a single-point series so the x range is non-degenerate
	if len(xs) == 1 {
		xs = append(xs, xs[0].Add(time.Minute))
		ys = append(ys, ys[0])
	}

	ch := BuildChart(r.Config.Chart, xs, ys)

	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return "", &helpers.RenderError{UploadReportError: helpers.UploadReportError{
			Message: "chart render failed",
			Cause:   err,
		}}
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		return "", &helpers.RenderError{UploadReportError: helpers.UploadReportError{
			Message: "decoding rendered chart failed",
			Cause:   err,
		}}
	}

	rgba := image.NewRGBA(decoded.Bounds())
	draw.Draw(rgba, rgba.Bounds(), decoded, decoded.Bounds().Min, draw.Src)
	StampAnnotation(rgba, AnnotationLines(stats))

	outPath := filepath.Join(r.Config.Chart.OutputDir, OutputFilename(stats))

	f, err := os.Create(outPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := png.Encode(f, rgba); err != nil {
		return "", err
	}

	r.Logger.Info("Wrote %s", outPath)
	return outPath, nil
}

// -----------------------------------------------------------------------------

// AnnotationLines renders the six summary lines shown under the plot.
func AnnotationLines(stats models.MSummaryStats) []string {
	return []string{
		fmt.Sprintf("Total Uploads: %s", FormatGrouped(stats.TotalUploads)),
		fmt.Sprintf("Average per Minute: %s", FormatGroupedFloat(stats.AvgPerMinute)),
		fmt.Sprintf("Average per Second (Estimated): %s", FormatGroupedFloat(stats.AvgPerSecond)),
		fmt.Sprintf("Average per Hour: %s", FormatGroupedFloat(stats.AvgPerHour)),
		fmt.Sprintf("Uploads in Last 10 Minutes: %s", FormatGrouped(stats.UploadsLast10m)),
		fmt.Sprintf("Uploads in Last 24 Hours: %s", FormatGrouped(stats.UploadsLast24h)),
	}
}

// -----------------------------------------------------------------------------

// OutputFilename derives plot_<YYYYMMDD>_<total>.png from the last sample.
func OutputFilename(stats models.MSummaryStats) string {
	return fmt.Sprintf("plot_%s_%d.png", stats.EndTime.Format("20060102"), stats.TotalUploads)
}
