package pipeline

import (
	"errors"
	"fmt"
)

// InsufficientDataError is returned when a summary statistic cannot be
// computed because a field has no present values at all.
type InsufficientDataError struct {
	Field string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient data: no present values in %q", e.Field)
}

// IsInsufficientData returns true if the error chain contains an
// InsufficientDataError.
func IsInsufficientData(err error) bool {
	var ide *InsufficientDataError
	return errors.As(err, &ide)
}

// PreconditionError reports a contract violation between stages: a
// stage encountered a missing value an earlier stage should have
// already handled.
type PreconditionError struct {
	Field      string
	CustomerID int
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("precondition: missing %q for customer %d", e.Field, e.CustomerID)
}

// IsPrecondition returns true if the error chain contains a
// PreconditionError.
func IsPrecondition(err error) bool {
	var pe *PreconditionError
	return errors.As(err, &pe)
}
