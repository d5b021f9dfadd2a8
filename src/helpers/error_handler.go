package helpers

import (
	"errors"
	"fmt"

	"upload-report/src/logger"
)

// -----------------------------------------------------------------------------
// Custom Error Types
// -----------------------------------------------------------------------------

type UploadReportError struct {
	Message string
	Cause   error
}

func (e *UploadReportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *UploadReportError) Unwrap() error {
	return e.Cause
}

// Helper to define distinct error types for type assertions if needed
type ConfigurationError struct{ UploadReportError }
type DataSourceError struct{ UploadReportError }
type SchemaError struct{ UploadReportError }
type ValidationError struct{ UploadReportError }
type RenderError struct{ UploadReportError }

// -----------------------------------------------------------------------------

// IsLoaderFailure reports whether err belongs to the load and validation
// family that exits with a friendly one-line message instead of a raw dump.
func IsLoaderFailure(err error) bool {
	var dataErr *DataSourceError
	var schemaErr *SchemaError
	var validationErr *ValidationError
	return errors.As(err, &dataErr) || errors.As(err, &schemaErr) || errors.As(err, &validationErr)
}

// -----------------------------------------------------------------------------
// Error Handler
// -----------------------------------------------------------------------------

type ErrorHandler struct {
	Logger *logger.Logger
}

func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{
		Logger: logger.NewLogger(nil, "ErrorHandler"),
	}
}

// -----------------------------------------------------------------------------

func (e *ErrorHandler) Handle(err error, context string) {
	if err != nil {
		e.Logger.Error("Error in %s: %v", context, err)
	}
}
