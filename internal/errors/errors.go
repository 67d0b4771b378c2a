package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing errors
const (
	ErrConfig  = "CONFIG"
	ErrExec    = "EXEC"
	ErrUnknown = "UNKNOWN"
	ErrArity   = "ARITY"
	ErrParse   = "PARSE"
	ErrRange   = "RANGE"
)

// Error represents a structured error with code, message, suggestion, and optional cause.
// Rendered as:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a new structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// NewArity reports a command that received a value count it doesn't accept.
func NewArity(command string, count int) *Error {
	return &Error{
		Code:       ErrArity,
		Message:    fmt.Sprintf("'%s' does not accept %d arguments", command, count),
		Suggestion: "See 'nvh help' for more information.",
	}
}

// NewParse reports a value token that couldn't be parsed for a command.
func NewParse(command, token, want string) *Error {
	return &Error{
		Code:    ErrParse,
		Message: fmt.Sprintf("'%s' is not %s (%s)", token, want, command),
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var nvErr *Error
	if errors.As(err, &nvErr) {
		return nvErr.Code == code
	}
	return false
}
