package interfaces

import "upload-report/src/models"

// -----------------------------------------------------------------------------
// IChartRenderer interface for drawing the report artifact.
// -----------------------------------------------------------------------------

type IChartRenderer interface {

	// Name returns the renderer identifier
	Name() string

	// -----------------------------------------------------------------------------

	// Render draws the series with its summary block and returns the path
	// of the written file.
	Render(series models.MUploadSeries, stats models.MSummaryStats) (string, error)
}
