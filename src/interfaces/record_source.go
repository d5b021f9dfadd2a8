package interfaces

import "upload-report/src/models"

// -----------------------------------------------------------------------------
// IRecordSource interface for loading upload records from an input.
// -----------------------------------------------------------------------------

type IRecordSource interface {

	// Name returns the unique identifier of the source
	Name() string

	// -----------------------------------------------------------------------------

	// Load reads every record plus the raw header columns found in the input.
	Load() ([]models.MUploadRecord, []string, error)
}
