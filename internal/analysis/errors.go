package analysis

import "fmt"

// NotFoundError is returned when no analysis has the requested ID.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("analysis not found: %s", e.ID)
}

// UploadError wraps a failure to store the original document.
type UploadError struct {
	Filename string
	Cause    error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("failed to upload %s: %v", e.Filename, e.Cause)
}

func (e *UploadError) Unwrap() error {
	return e.Cause
}
