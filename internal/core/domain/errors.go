package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrFormat indicates the input has no recognisable header/items
	// structure. Fatal for the affected run.
	ErrFormat = errors.New("unrecognisable input format")

	// ErrValidation indicates a required field is missing or a numeric
	// field could not be parsed. Fatal for the affected run; no artifact
	// is written.
	ErrValidation = errors.New("validation failed")

	// ErrConversion indicates the external converter could not produce
	// the secondary artifact. Warning only; the primary artifact is kept.
	ErrConversion = errors.New("conversion failed")

	// ErrCancelled indicates the operator aborted an interactive session.
	// Nothing is written.
	ErrCancelled = errors.New("cancelled by operator")
)

// Converter failure modes. All satisfy errors.Is(err, ErrConversion).
var (
	// ErrConverterNotFound indicates the converter binary is not installed.
	ErrConverterNotFound = fmt.Errorf("%w: converter not found", ErrConversion)

	// ErrConverterFailed indicates the converter exited non-zero.
	ErrConverterFailed = fmt.Errorf("%w: converter exited with error", ErrConversion)

	// ErrConverterTimeout indicates the converter exceeded its deadline.
	ErrConverterTimeout = fmt.Errorf("%w: converter timed out", ErrConversion)
)
