package port

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrNotCSV          = errors.New("not a csv file")
	ErrNoPlotRows      = errors.New("csv file contains no plot rows")
	ErrFileTooLarge    = errors.New("file is too large")
)

// ImportFailedError is returned when the backend answers an import without
// reporting success.
type ImportFailedError struct {
	Message string
}

func (e *ImportFailedError) Error() string {
	if e.Message == "" {
		return "Upload completed but success status unclear"
	}
	return e.Message
}
