package csvfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"upload-report/src/config"
	"upload-report/src/helpers"
)

func newTestSource(t *testing.T, path string) *CSVFileSource {
	t.Helper()
	conf := config.DefaultConfig()
	conf.Input.Path = path
	return NewCSVFileSource(conf.MConfig)
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stats_report.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture failed: %v", err)
	}
	return path
}

func TestLoadHappyPath(t *testing.T) {
	path := writeCSV(t, strings.Join([]string{
		"Timestamp,TotalUploads,Successes,Failures,Region",
		"2024-03-05T10:00:00Z,100,99,1,us-east-1",
		"2024-03-05T10:01:00Z,150,148,2,us-east-1",
		"2024-03-05T10:02:00Z,120,118,2,us-east-1",
	}, "\n") + "\n")

	records, header, err := newTestSource(t, path).Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Load() returned %d records, want 3", len(records))
	}
	if len(header) != 5 {
		t.Errorf("Load() header has %d columns, want 5", len(header))
	}

	first := records[0]
	wantTs := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	if !first.Timestamp.Equal(wantTs) {
		t.Errorf("Timestamp = %v, want %v", first.Timestamp, wantTs)
	}
	if first.TotalUploads != 100 || first.Successes != 99 || first.Failures != 1 {
		t.Errorf("counters = %d/%d/%d, want 100/99/1", first.TotalUploads, first.Successes, first.Failures)
	}
}

func TestLoadFallbackTimestampLayout(t *testing.T) {
	path := writeCSV(t, "Timestamp,TotalUploads,Successes,Failures\n2024-03-05 10:00:00,42,42,0\n")

	records, _, err := newTestSource(t, path).Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	want := time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)
	if !records[0].Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, want %v", records[0].Timestamp, want)
	}
}

func TestLoadFileNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.csv")

	_, _, err := newTestSource(t, path).Load()
	if err == nil {
		t.Fatal("Load() should fail for a missing file")
	}
	if !strings.Contains(err.Error(), "was not found") {
		t.Errorf("error = %q, want it to mention the file was not found", err)
	}
	var dataErr *helpers.DataSourceError
	if !errors.As(err, &dataErr) {
		t.Errorf("error type = %T, want *helpers.DataSourceError", err)
	}
	if !helpers.IsLoaderFailure(err) {
		t.Error("IsLoaderFailure() = false, want true")
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeCSV(t, "")

	_, _, err := newTestSource(t, path).Load()
	if err == nil {
		t.Fatal("Load() should fail for an empty file")
	}
	if !strings.Contains(err.Error(), "is empty") {
		t.Errorf("error = %q, want it to identify the file as empty", err)
	}
}

func TestLoadMissingColumns(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		wantMsg string
	}{
		{"NoTimestamp", "Time,TotalUploads,Successes,Failures", "The 'Timestamp' column is not present"},
		{"NoTotalUploads", "Timestamp,Successes,Failures", "The column 'TotalUploads' is not present"},
		{"NoFailures", "Timestamp,TotalUploads,Successes", "The column 'Failures' is not present"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, tt.header+"\n")
			_, _, err := newTestSource(t, path).Load()
			if err == nil {
				t.Fatal("Load() should fail for a missing column")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantMsg)
			}
			var schemaErr *helpers.SchemaError
			if !errors.As(err, &schemaErr) {
				t.Errorf("error type = %T, want *helpers.SchemaError", err)
			}
		})
	}
}

func TestLoadMalformedCSV(t *testing.T) {
	path := writeCSV(t, strings.Join([]string{
		"Timestamp,TotalUploads,Successes,Failures",
		"2024-03-05T10:00:00Z,100,99,1",
		"2024-03-05T10:01:00Z,150,148,2,extra-field",
	}, "\n") + "\n")

	_, _, err := newTestSource(t, path).Load()
	if err == nil {
		t.Fatal("Load() should fail for a ragged row")
	}
	if !strings.Contains(err.Error(), "Error parsing the CSV file") {
		t.Errorf("error = %q, want a parse error message", err)
	}
}

func TestLoadBadValues(t *testing.T) {
	tests := []struct {
		name string
		row  string
		want string
	}{
		{"BadTimestamp", "not-a-time,100,99,1", "invalid value for 'Timestamp' on row 2"},
		{"BadCounter", "2024-03-05T10:00:00Z,abc,99,1", "invalid value 'abc' for 'TotalUploads' on row 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeCSV(t, "Timestamp,TotalUploads,Successes,Failures\n"+tt.row+"\n")
			_, _, err := newTestSource(t, path).Load()
			if err == nil {
				t.Fatal("Load() should fail for an unparseable value")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
			var validationErr *helpers.ValidationError
			if !errors.As(err, &validationErr) {
				t.Errorf("error type = %T, want *helpers.ValidationError", err)
			}
		})
	}
}

func TestLoadNoDataRows(t *testing.T) {
	path := writeCSV(t, "Timestamp,TotalUploads,Successes,Failures\n")

	_, _, err := newTestSource(t, path).Load()
	if err == nil {
		t.Fatal("Load() should fail for a header-only file")
	}
	if !strings.Contains(err.Error(), "contains no data rows") {
		t.Errorf("error = %q, want it to mention missing data rows", err)
	}
}
