package formatting

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPrice means the price did not start with a number.
	ErrInvalidPrice = errors.New("formatting: invalid price")
	// ErrMissingConfig means no currency configuration was available yet.
	ErrMissingConfig = errors.New("formatting: missing currency config")
	// ErrInvalidConfig means the currency configuration breaks its own invariants.
	ErrInvalidConfig = errors.New("formatting: invalid currency config")
)

// FormatError is returned by the strict formatter. Value still carries the
// string the lenient formatter would have produced.
type FormatError struct {
	Price any
	Value string
	Err   error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format price %v: %v", e.Price, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
