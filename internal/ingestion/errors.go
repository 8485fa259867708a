package ingestion

import "fmt"

// DocumentUnreadableError means the bytes are not a parseable document or
// yield no extractable text.
type DocumentUnreadableError struct {
	Reason string
	Cause  error
}

func (e *DocumentUnreadableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("document unreadable: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("document unreadable: %s", e.Reason)
}

func (e *DocumentUnreadableError) Unwrap() error {
	return e.Cause
}

// TooLargeError is returned before conversion when input exceeds the limit.
type TooLargeError struct {
	Size  int
	Limit int
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("document is %d bytes, limit is %d", e.Size, e.Limit)
}
