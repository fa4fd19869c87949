package common

import (
	"errors"
	"fmt"
)

// Common error types used across filesystem packages
var (
	ErrPathEmpty      = errors.New("path cannot be empty")
	ErrPathInvalid    = errors.New("path contains invalid characters")
	ErrNotDirectory   = errors.New("path is not a directory")
	ErrInvalidPattern = errors.New("invalid name pattern")
)

// InvalidPatternError reports a pattern source that failed to compile.
type InvalidPatternError struct {
	Pattern string
	Err     error
}

// NewInvalidPatternError wraps a compile failure for the given source
func NewInvalidPatternError(pattern string, err error) *InvalidPatternError {
	return &InvalidPatternError{Pattern: pattern, Err: err}
}

func (e *InvalidPatternError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %q", ErrInvalidPattern, e.Pattern)
	}
	return fmt.Sprintf("%s %q: %v", ErrInvalidPattern, e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrInvalidPattern) match any InvalidPatternError
func (e *InvalidPatternError) Is(target error) bool {
	return target == ErrInvalidPattern
}

// WrapError wraps an error with additional context
func WrapError(err error, message string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	context := fmt.Sprintf(message, args...)
	return fmt.Errorf("%s: %w", context, err)
}
