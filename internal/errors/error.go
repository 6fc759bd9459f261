package errors

import (
	"errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryConfig   Category = "config"
	CategoryDocument Category = "document"
	CategoryRender   Category = "render"
	CategoryOutput   Category = "output"
	CategoryServer   Category = "server"
	CategoryCLI      Category = "cli"
)

// Location points at the place in a source document where an error
// occurred. Path is the entry path inside the document, such as
// "content[2].children[0]".
type Location struct {
	File string
	Path string
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Path != "" {
		return fmt.Sprintf("%s: %s", l.File, l.Path)
	}
	return l.File
}

// WhitsError is a structured error with a code, location and hint.
type WhitsError struct {
	// Code is a unique error identifier (e.g., "W201").
	Code string

	// Category is the error type (config, document, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is where in a source document the error occurred.
	Location *Location

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *WhitsError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Location != nil {
		msg = e.Location.String() + ": " + msg
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *WhitsError) Unwrap() error {
	return e.Wrapped
}

// WithFile sets the source file.
func (e *WhitsError) WithFile(file string) *WhitsError {
	if e.Location == nil {
		e.Location = &Location{}
	}
	e.Location.File = file
	return e
}

// WithPath sets the entry path inside the source document.
func (e *WhitsError) WithPath(path string) *WhitsError {
	if e.Location == nil {
		e.Location = &Location{}
	}
	e.Location.Path = path
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *WhitsError) WithSuggestion(s string) *WhitsError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *WhitsError) WithDetail(d string) *WhitsError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *WhitsError) Wrap(err error) *WhitsError {
	e.Wrapped = err
	return e
}

// New creates a WhitsError from a registered error code.
func New(code string) *WhitsError {
	template, ok := registry[code]
	if !ok {
		return &WhitsError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &WhitsError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Detail:     template.Detail,
		Suggestion: template.Suggestion,
	}
}

// Newf creates a new WhitsError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *WhitsError {
	return &WhitsError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a WhitsError. An error that already
// is (or wraps) a WhitsError is returned unchanged.
func FromError(err error, code string) *WhitsError {
	if err == nil {
		return nil
	}
	var we *WhitsError
	if errors.As(err, &we) {
		return we
	}
	return New(code).Wrap(err)
}

// Code returns the code of the first WhitsError in err's chain, or "".
func Code(err error) string {
	var we *WhitsError
	if errors.As(err, &we) {
		return we.Code
	}
	return ""
}
