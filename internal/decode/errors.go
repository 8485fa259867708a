package decode

import "fmt"

// FormatError reports a document that could not be parsed or does not have
// the expected shape.
type FormatError struct {
	Format  string // "JSON" or "YAML", empty when decoding an already parsed map
	Message string
	Cause   error
}

func (e *FormatError) Error() string {
	what := "document"
	if e.Format != "" {
		what = e.Format + " document"
	}
	if e.Cause != nil {
		return fmt.Sprintf("invalid %s: %s: %v", what, e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid %s: %s", what, e.Message)
}

func (e *FormatError) Unwrap() error {
	return e.Cause
}
