package apperrors

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Application exit codes.
const (
	ExitSuccess         = 0   // Indicates successful execution.
	ExitErrorGeneric    = 1   // Indicates a generic error.
	ExitErrorTimeout    = 2   // Indicates an evaluation exceeded its deadline.
	ExitErrorEvaluation = 3   // Indicates an expression failed to evaluate.
	ExitErrorConfig     = 4   // Indicates a configuration error.
	ExitErrorCanceled   = 130 // Indicates the run was canceled (e.g., SIGINT).
)

// ConfigError represents invalid flags, environment values or settings.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// EvaluationError reports that an operation ran and failed, for example a
// division by zero or an exhausted prime search. It preserves the engine's
// error as its cause.
type EvaluationError struct {
	// Op is the name of the operation that failed.
	Op string
	// Cause is the underlying engine error.
	Cause error
}

// Error prefixes the cause with the operation name.
func (e EvaluationError) Error() string {
	if e.Op == "" {
		return e.Cause.Error()
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying cause.
func (e EvaluationError) Unwrap() error { return e.Cause }

// TimeoutError represents an evaluation that did not finish within its
// deadline.
type TimeoutError struct {
	// Operation is the name of the operation that timed out.
	Operation string
	// Limit is the duration after which the operation was abandoned.
	Limit time.Duration
}

// Error returns a formatted message describing the timeout.
func (e TimeoutError) Error() string {
	return fmt.Sprintf("operation %q timed out after %s", e.Operation, e.Limit)
}

// ValidationError represents a malformed expression or argument. Field names
// the offending token (operation name, argument position or flag).
type ValidationError struct {
	// Field is the name of the item that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError wraps err with a formatted context message. It returns nil when
// err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// IsContextError reports whether err is a context cancellation or deadline.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// ExitCodeFor maps an error to the process exit code that reports it.
func ExitCodeFor(err error) int {
	var (
		configErr     ConfigError
		timeoutErr    TimeoutError
		validationErr ValidationError
		evalErr       EvaluationError
	)
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &timeoutErr), errors.Is(err, context.DeadlineExceeded):
		return ExitErrorTimeout
	case errors.Is(err, context.Canceled):
		return ExitErrorCanceled
	case errors.As(err, &configErr):
		return ExitErrorConfig
	case errors.As(err, &validationErr), errors.As(err, &evalErr):
		return ExitErrorEvaluation
	}
	return ExitErrorGeneric
}
