package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound          = errors.New("resource not found")
	ErrBandNotFound      = fmt.Errorf("%w: bandpass", ErrNotFound)
	ErrMagSystemNotFound = fmt.Errorf("%w: magnitude system", ErrNotFound)
	ErrBatchNotFound     = fmt.Errorf("%w: observation batch", ErrNotFound)

	// Validation errors
	ErrEmptyBatch      = errors.New("observation batch is empty")
	ErrColumnMismatch  = errors.New("observation columns have unequal lengths")
	ErrShapeMismatch   = errors.New("sample matrix shape mismatch")
	ErrInvalidErrorBar = errors.New("uncertainty must be positive")
)

// Error constructors with context
func NewBandNotFoundError(band string) error {
	return fmt.Errorf("%w %q", ErrBandNotFound, band)
}

func NewMagSystemNotFoundError(sys string) error {
	return fmt.Errorf("%w %q", ErrMagSystemNotFound, sys)
}

func NewShapeError(what string, want, got int) error {
	return fmt.Errorf("%w: %s: want %d, got %d", ErrShapeMismatch, what, want, got)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyBatch) ||
		errors.Is(err, ErrColumnMismatch) ||
		errors.Is(err, ErrShapeMismatch) ||
		errors.Is(err, ErrInvalidErrorBar)
}
