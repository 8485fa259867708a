package scoring

import (
	"errors"
	"fmt"
)

// InvalidRequirementError reports a structurally invalid job requirement,
// such as a required skill level outside 0-10 or a negative weight.
type InvalidRequirementError struct {
	Field   string
	Message string
	Cause   error
}

func (e *InvalidRequirementError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid job requirement: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid job requirement: %s", e.Message)
}

func (e *InvalidRequirementError) Unwrap() error {
	return e.Cause
}

// MissingWeightsError is returned when declared scoring weights sum to zero,
// which would make every overall score 0 regardless of the candidate.
type MissingWeightsError struct {
	Sum float64
}

func (e *MissingWeightsError) Error() string {
	return fmt.Sprintf("invalid scoring weights: declared weights sum to %g", e.Sum)
}

// IsInvalidScoringInput reports whether err means the scoring input itself
// was malformed, as opposed to an internal failure.
func IsInvalidScoringInput(err error) bool {
	var reqErr *InvalidRequirementError
	var weightsErr *MissingWeightsError
	return errors.As(err, &reqErr) || errors.As(err, &weightsErr)
}
