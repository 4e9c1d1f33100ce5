package errors

import (
	"errors"
	"fmt"
)

// ErrorType categorizes different error types
type ErrorType string

const (
	// Input errors
	ErrorTypeFileNotFound  ErrorType = "file_not_found"
	ErrorTypeInvalidFormat ErrorType = "invalid_format"
	ErrorTypeValidation    ErrorType = "validation"
	ErrorTypeEmptyDataset  ErrorType = "empty_dataset"

	// Recoverable parse errors (logged and skipped, never fatal)
	ErrorTypeParse ErrorType = "parse"

	// Network errors (research synthesizer only)
	ErrorTypeNetwork ErrorType = "network"
	ErrorTypeTimeout ErrorType = "timeout"

	// Unknown errors
	ErrorTypeUnknown ErrorType = "unknown"
)

// CLIError represents a structured error with context
type CLIError struct {
	Type       ErrorType
	Message    string
	Cause      error
	Suggestion string
}

// Error implements the error interface
func (e *CLIError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error
func (e *CLIError) Unwrap() error {
	return e.Cause
}

// WithSuggestion adds a helpful suggestion to the error
func (e *CLIError) WithSuggestion(suggestion string) *CLIError {
	e.Suggestion = suggestion
	return e
}

// HasSuggestion returns true if the error has a suggestion
func (e *CLIError) HasSuggestion() bool {
	return e.Suggestion != ""
}

// NewCLIError creates a new CLI error
func NewCLIError(errorType ErrorType, message string, cause error) *CLIError {
	return &CLIError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// NewFileNotFound creates a file-not-found error for the given path
func NewFileNotFound(path string) *CLIError {
	return NewCLIError(ErrorTypeFileNotFound, fmt.Sprintf("file not found: %s", path), nil)
}

// NewInvalidFormat creates an unsupported-format error for the given extension
func NewInvalidFormat(ext string) *CLIError {
	e := NewCLIError(ErrorTypeInvalidFormat, fmt.Sprintf("unsupported file format: %s", ext), nil)
	return e.WithSuggestion("use a .json or .csv analytics export")
}

// NewEmptyDataset creates an error for filters that matched nothing
func NewEmptyDataset(detail string) *CLIError {
	return NewCLIError(ErrorTypeEmptyDataset, detail, nil)
}

// IsType reports whether err is a CLIError of the given type
func IsType(err error, t ErrorType) bool {
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Type == t
	}
	return false
}
