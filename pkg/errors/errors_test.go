package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestNewCLIError creates and validates a CLI error
func TestNewCLIError(t *testing.T) {
	cause := errors.New("underlying error")
	err := NewCLIError(ErrorTypeValidation, "Test error", cause)

	if err == nil {
		t.Fatal("NewCLIError returned nil")
	}

	if err.Type != ErrorTypeValidation {
		t.Errorf("Expected type %s, got %s", ErrorTypeValidation, err.Type)
	}

	if err.Message != "Test error" {
		t.Errorf("Expected message 'Test error', got '%s'", err.Message)
	}

	if err.Cause != cause {
		t.Error("Cause not set correctly")
	}
}

// TestErrorInterface validates Error() and Unwrap()
func TestErrorInterface(t *testing.T) {
	cause := errors.New("root cause")
	err := NewCLIError(ErrorTypeParse, "parse failed", cause)

	if err.Error() != "parse failed" {
		t.Errorf("Error() = %q", err.Error())
	}

	if !errors.Is(err, cause) {
		t.Error("errors.Is should unwrap to the cause")
	}
}

// TestWithSuggestion validates suggestion chaining
func TestWithSuggestion(t *testing.T) {
	err := NewCLIError(ErrorTypeValidation, "bad niche", nil)

	if err.HasSuggestion() {
		t.Error("New error should have no suggestion")
	}

	err = err.WithSuggestion("valid niches: ttbp, cb")
	if !err.HasSuggestion() {
		t.Error("Suggestion not recorded")
	}
	if !strings.Contains(err.Suggestion, "ttbp") {
		t.Errorf("Suggestion = %q", err.Suggestion)
	}
}

// TestNewFileNotFound validates the file-not-found constructor
func TestNewFileNotFound(t *testing.T) {
	err := NewFileNotFound("/tmp/missing.csv")

	if err.Type != ErrorTypeFileNotFound {
		t.Errorf("Expected type %s, got %s", ErrorTypeFileNotFound, err.Type)
	}
	if !strings.Contains(err.Error(), "/tmp/missing.csv") {
		t.Errorf("Message should name the path: %q", err.Error())
	}
}

// TestNewInvalidFormat validates the format constructor and its suggestion
func TestNewInvalidFormat(t *testing.T) {
	err := NewInvalidFormat(".xlsx")

	if err.Type != ErrorTypeInvalidFormat {
		t.Errorf("Expected type %s, got %s", ErrorTypeInvalidFormat, err.Type)
	}
	if !err.HasSuggestion() {
		t.Error("Invalid-format errors should carry a suggestion")
	}
}

// TestIsType validates type checks through wrapping
func TestIsType(t *testing.T) {
	err := NewEmptyDataset("No posts found for the specified period and filters.")

	if !IsType(err, ErrorTypeEmptyDataset) {
		t.Error("IsType should match the error's own type")
	}
	if IsType(err, ErrorTypeNetwork) {
		t.Error("IsType matched the wrong type")
	}

	wrapped := fmt.Errorf("summarize: %w", err)
	if !IsType(wrapped, ErrorTypeEmptyDataset) {
		t.Error("IsType should see through wrapping")
	}

	if IsType(errors.New("plain"), ErrorTypeEmptyDataset) {
		t.Error("Plain errors should never match")
	}
}
