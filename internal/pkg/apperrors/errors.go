package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	// Resource errors
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// Entity errors
var (
	ErrBookNotFound    = errors.New("book not found")
	ErrStudentNotFound = errors.New("student not found")
	ErrOfferNotFound   = errors.New("offer not found")
	ErrRequestNotFound = errors.New("request not found")
)

// Field error kinds. These are the "kind" half of the structured
// {field, kind, message} validation records.
const (
	KindRequired         = "Required"
	KindMinLength        = "MinLength"
	KindMin              = "Min"
	KindMax              = "Max"
	KindEmail            = "Email"
	KindInvalid          = "Invalid"
	KindAlreadyExists    = "AlreadyExists"
	KindUnknownReference = "UnknownReference"
)

// FieldError describes a single rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// ValidationError carries every rejected field of a submission. A submission
// is rejected as a whole: the caller gets the full list, nothing is persisted.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError creates an empty ValidationError ready to accumulate
// field errors.
func NewValidationError() *ValidationError {
	return &ValidationError{}
}

// Add records a rejected field.
func (e *ValidationError) Add(field, kind, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Kind: kind, Message: message})
}

// HasErrors reports whether any field was rejected.
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidationFailed.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return strings.Join(parts, "; ")
}

// Unwrap lets errors.Is(err, ErrValidationFailed) match any ValidationError.
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// AsValidationError extracts a *ValidationError from an error chain.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
