package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Lookup errors
	ErrNotFound       = errors.New("resource not found")
	ErrUnknownDataset = fmt.Errorf("%w: dataset", ErrNotFound)
	ErrMissingColumn  = fmt.Errorf("%w: column", ErrNotFound)

	// I/O and connectivity errors
	ErrCacheIO           = errors.New("local cache i/o failed")
	ErrSourceUnavailable = errors.New("remote source unavailable")

	// Validation errors
	ErrInvalidRatio        = errors.New("invalid split ratio")
	ErrInsufficientStratum = errors.New("insufficient members to stratify")
	ErrLengthMismatch      = errors.New("label sequences differ in length")
	ErrPositiveAbsent      = errors.New("positive label not present in actual values")
	ErrNotNumeric          = errors.New("value is not numeric")

	// ErrUnsupportedCardinality marks the binary-only limitation of model
	// statistics. It is reported, never raised.
	ErrUnsupportedCardinality = errors.New("cannot handle greater than 2 target variable outcomes")
)

// NewUnknownDatasetError reports an identifier outside the descriptor table
func NewUnknownDatasetError(id DatasetID) error {
	return fmt.Errorf("%w: %q", ErrUnknownDataset, id)
}

// NewMissingColumnError reports a column absent from a frame
func NewMissingColumnError(column string) error {
	return fmt.Errorf("%w: %q", ErrMissingColumn, column)
}

func NewRatioError(field string, value float64, reason string) error {
	return fmt.Errorf("%w: %s=%g %s", ErrInvalidRatio, field, value, reason)
}

func NewStratumError(reason string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInsufficientStratum, fmt.Sprintf(reason, args...))
}

// Error checking helpers
func IsLookupError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsIOError(err error) bool {
	return errors.Is(err, ErrCacheIO) ||
		errors.Is(err, ErrSourceUnavailable)
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidRatio) ||
		errors.Is(err, ErrInsufficientStratum) ||
		errors.Is(err, ErrLengthMismatch) ||
		errors.Is(err, ErrPositiveAbsent) ||
		errors.Is(err, ErrNotNumeric)
}
