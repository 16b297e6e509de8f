// Package errors provides sentinel errors and structured error types for gdscaffold.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid input: a bad directory name, answers file or config value.
	ErrValidation = errors.New("validation error")

	// ErrFilesystem indicates a directory could not be created or a file could not be written.
	ErrFilesystem = errors.New("filesystem error")

	// ErrProcess indicates an external process failed to start or exited non-zero.
	ErrProcess = errors.New("process error")

	// ErrPrompt indicates the interactive session was aborted or could not read input.
	ErrPrompt = errors.New("prompt error")

	// ErrNotFound indicates a file was not found.
	ErrNotFound = errors.New("not found")
)

// DetailError captures structured error information for display.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is a file or directory path (optional).
	Location string

	// Field is the configuration or answer field (optional).
	Field string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	if e.Field != "" {
		b.WriteString("  Field: ")
		b.WriteString(e.Field)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewFilesystemError wraps a failed filesystem operation on path.
func NewFilesystemError(op, path string, err error) error {
	return &DetailError{
		Type:     "filesystem operation failed",
		Message:  fmt.Sprintf("%s: %v", op, err),
		Location: path,
		Cause:    fmt.Errorf("%w: %w", ErrFilesystem, err),
	}
}

// NewProcessError wraps a failed external command.
func NewProcessError(command, dir string, err error) error {
	return &DetailError{
		Type:     "external command failed",
		Message:  fmt.Sprintf("%s: %v", command, err),
		Location: dir,
		Hint:     "Check that the command is installed and on PATH, then re-run.",
		Cause:    fmt.Errorf("%w: %w", ErrProcess, err),
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
