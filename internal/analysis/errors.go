package analysis

import (
	"errors"
	"fmt"
)

// ErrInsufficientData indicates that a derivation had no valid rows to work
// with. It degrades the affected part of the result; the rest of the analysis
// remains usable.
var ErrInsufficientData = errors.New("insufficient data")

// ValidationError represents an out-of-range input, rejected before any
// network call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}
