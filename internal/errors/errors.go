package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Process exit codes.
const (
	ExitSuccess       = 0
	ExitErrorGeneric  = 1
	ExitErrorTimeout  = 2
	ExitErrorMismatch = 3   // strategies disagree on the product
	ExitErrorConfig   = 4   // bad flags, operands or config file
	ExitErrorCanceled = 130 // SIGINT
)

// ConfigError reports an unusable command line or config file: an unknown
// flag, a missing operand, an unreadable file.
type ConfigError struct {
	Message string
}

func (e ConfigError) Error() string { return e.Message }

// NewConfigError formats a ConfigError.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// CalculationError marks a failure raised by a strategy while it was
// multiplying, as opposed to a context cancellation.
type CalculationError struct {
	Cause error
}

func (e CalculationError) Error() string { return e.Cause.Error() }

func (e CalculationError) Unwrap() error { return e.Cause }

// TimeoutError reports a strategy stopped by the --timeout deadline.
type TimeoutError struct {
	Operation string
	Limit     time.Duration
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// Unwrap lets errors.Is match context.DeadlineExceeded.
func (e TimeoutError) Unwrap() error { return context.DeadlineExceeded }

// ValidationError rejects an input value. Field names the input, e.g. "x"
// for an operand containing a digit other than 0 or 1.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError prefixes err with a formatted message, keeping it unwrappable.
// It returns nil for a nil err.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// IsContextError reports whether err comes from a canceled or expired
// context.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
