package consumption

import "fmt"

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// ErrInvalidInput is returned when a calculator precondition is violated.
// Every error produced by this package wraps it, so callers need a single
// errors.Is check.
var ErrInvalidInput = constError("invalid input")

// Lookup errors. Both wrap ErrInvalidInput.
var (
	// ErrUnknownUnit indicates an unrecognized volume unit string.
	ErrUnknownUnit = fmt.Errorf("%w: unknown volume unit", ErrInvalidInput)

	// ErrUnknownBeverage indicates an unrecognized beverage category.
	ErrUnknownBeverage = fmt.Errorf("%w: unknown beverage category", ErrInvalidInput)
)
