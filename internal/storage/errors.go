package storage

import "fmt"

// NotFoundError is returned when no object exists under the key.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("object not found: %s", e.Key)
}

// OperationError wraps a failed blob store call.
type OperationError struct {
	Op    string
	Key   string
	Cause error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Key, e.Cause)
}

func (e *OperationError) Unwrap() error {
	return e.Cause
}
