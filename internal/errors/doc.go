// Package apperrors defines the application's structured error types and
// exit codes, keeping configuration, validation, evaluation and timeout
// failures distinguishable while carrying the underlying cause.
//
// Error Wrapping Guidelines:
// Wrap with fmt.Errorf and %w. Every type holding a cause implements Unwrap
// so errors.Is and errors.As see through it.
package apperrors
