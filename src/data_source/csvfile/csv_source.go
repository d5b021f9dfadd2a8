package csvfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"upload-report/src/helpers"
	"upload-report/src/logger"
	"upload-report/src/models"
	"upload-report/src/utils"
)

// CSVFileSource reads upload records from a stats CSV on disk.
type CSVFileSource struct {
	Config *models.MConfig
	Logger *logger.Logger
	Errors *helpers.ErrorHandler
	Path   string
}

// -----------------------------------------------------------------------------

func NewCSVFileSource(cfg *models.MConfig) *CSVFileSource {
	return &CSVFileSource{
		Config: cfg,
		Logger: logger.NewLogger(nil, "CSVFileSource"),
		Errors: helpers.NewErrorHandler(),
		Path:   cfg.Input.Path,
	}
}

// -----------------------------------------------------------------------------

func (s *CSVFileSource) Name() string {
	return s.Path
}

// -----------------------------------------------------------------------------

// Load reads the whole file and returns typed records plus the header columns.
// Every failure comes back as one of the loader error kinds carrying the
// message the operator should see.
func (s *CSVFileSource) Load() ([]models.MUploadRecord, []string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, &helpers.DataSourceError{UploadReportError: helpers.UploadReportError{
				Message: fmt.Sprintf("Error: The file '%s' was not found.", s.Path),
			}}
		}
		return nil, nil, &helpers.DataSourceError{UploadReportError: helpers.UploadReportError{
			Message: fmt.Sprintf("Error: The file '%s' could not be opened", s.Path),
			Cause:   err,
		}}
	}
	defer func() { s.Errors.Handle(f.Close(), "closing "+s.Path) }()

	reader := csv.NewReader(f)

	// Header row
	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, &helpers.DataSourceError{UploadReportError: helpers.UploadReportError{
			Message: fmt.Sprintf("Error: The file '%s' is empty.", s.Path),
		}}
	}
	if err != nil {
		return nil, nil, &helpers.DataSourceError{UploadReportError: helpers.UploadReportError{
			Message: fmt.Sprintf("Error parsing the CSV file: %v", err),
		}}
	}

	s.Logger.Info("Available columns in CSV: %v", header)

	// Map column names to indices, first occurrence wins, extras ignored
	colIdx := make(map[string]int, len(header))
	for i, name := range header {
		if _, ok := colIdx[name]; !ok {
			colIdx[name] = i
		}
	}

	if _, ok := colIdx[utils.ColumnTimestamp]; !ok {
		return nil, header, &helpers.SchemaError{UploadReportError: helpers.UploadReportError{
			Message: fmt.Sprintf("Error: The '%s' column is not present in the CSV file.", utils.ColumnTimestamp),
		}}
	}
	for _, col := range utils.RequiredCounterColumns {
		if _, ok := colIdx[col]; !ok {
			return nil, header, &helpers.SchemaError{UploadReportError: helpers.UploadReportError{
				Message: fmt.Sprintf("Error: The column '%s' is not present in the CSV file.", col),
			}}
		}
	}

	var records []models.MUploadRecord
	row := 1
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, header, &helpers.DataSourceError{UploadReportError: helpers.UploadReportError{
				Message: fmt.Sprintf("Error parsing the CSV file: %v", err),
			}}
		}

		ts, err := s.parseTimestamp(fields[colIdx[utils.ColumnTimestamp]])
		if err != nil {
			return nil, header, &helpers.ValidationError{UploadReportError: helpers.UploadReportError{
				Message: fmt.Sprintf("Error: invalid value for '%s' on row %d", utils.ColumnTimestamp, row),
				Cause:   err,
			}}
		}

		total, err := parseCounter(fields, colIdx, utils.ColumnTotalUploads, row)
		if err != nil {
			return nil, header, err
		}
		successes, err := parseCounter(fields, colIdx, utils.ColumnSuccesses, row)
		if err != nil {
			return nil, header, err
		}
		failures, err := parseCounter(fields, colIdx, utils.ColumnFailures, row)
		if err != nil {
			return nil, header, err
		}

		records = append(records, models.MUploadRecord{
			Timestamp:    ts,
			TotalUploads: total,
			Successes:    successes,
			Failures:     failures,
		})
	}

	if len(records) == 0 {
		return nil, header, &helpers.DataSourceError{UploadReportError: helpers.UploadReportError{
			Message: fmt.Sprintf("Error: The file '%s' contains no data rows.", s.Path),
		}}
	}

	s.Logger.Info("Loaded %d records from %s", len(records), s.Path)
	return records, header, nil
}

// -----------------------------------------------------------------------------

// parseTimestamp tries the configured layouts in order.
func (s *CSVFileSource) parseTimestamp(raw string) (time.Time, error) {
	layouts := s.Config.Input.TimestampLayouts
	if len(layouts) == 0 {
		layouts = utils.DefaultTimestampLayouts
	}

	var lastErr error
	for _, layout := range layouts {
		ts, err := time.Parse(layout, strings.TrimSpace(raw))
		if err == nil {
			return ts, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// -----------------------------------------------------------------------------

func parseCounter(fields []string, colIdx map[string]int, col string, row int) (int64, error) {
	raw := fields[colIdx[col]]
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, &helpers.ValidationError{UploadReportError: helpers.UploadReportError{
			Message: fmt.Sprintf("Error: invalid value '%s' for '%s' on row %d", raw, col, row),
		}}
	}
	return v, nil
}
