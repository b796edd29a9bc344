// Package apperrors holds the error types of the multiply command and maps
// them to process exit codes. Every type that carries a cause implements
// Unwrap, so callers classify errors with errors.Is and errors.As.
package apperrors
