package domain

import (
	"errors"
	"fmt"
)

// ErrDataUnavailable is returned when the historical data source yields no
// data at all. It is the only engine failure that reaches the caller.
var ErrDataUnavailable = errors.New("historical campaign data unavailable")

// ValidationError reports a request field that violates its constraint.
type ValidationError struct {
	Field      string
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Constraint)
}
