package dto

import (
	"time"

	"github.com/textex/textex/internal/pkg/apperrors"
)

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Authentication errors
	ErrorCodeInvalidCredentials ErrorCode = "AUTH_001"
	ErrorCodeUnauthorized       ErrorCode = "AUTH_002"
	ErrorCodeInvalidToken       ErrorCode = "AUTH_003"
	ErrorCodeExpiredToken       ErrorCode = "AUTH_004"

	// Resource errors
	ErrorCodeResourceNotFound ErrorCode = "RES_001"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
)

// ErrorDetail represents a single error in a response. Rejected-field errors
// carry Field and Kind; request-level errors carry only Code and Message.
type ErrorDetail struct {
	Code    ErrorCode `json:"code" example:"VAL_001"`
	Message string    `json:"message" example:"This field is required."`
	Field   string    `json:"field,omitempty" example:"isbn"`
	Kind    string    `json:"kind,omitempty" example:"Required"`
}

// NewErrorDetail creates a new error detail
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{
		Code:    code,
		Message: message,
	}
}

// WithField adds a field name to the error detail
func (e *ErrorDetail) WithField(field string) *ErrorDetail {
	e.Field = field
	return e
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Success   bool          `json:"success" example:"false"`
	Error     *ErrorDetail  `json:"error,omitempty"`
	Errors    []ErrorDetail `json:"errors,omitempty"`
	Timestamp time.Time     `json:"timestamp" example:"2026-09-01T12:01:05.123Z"`
}

// NewErrorResponse creates a standard single-error response
func NewErrorResponse(errorDetail *ErrorDetail) *ErrorResponse {
	return &ErrorResponse{
		Success:   false,
		Error:     errorDetail,
		Timestamp: time.Now(),
	}
}

// NewValidationErrorResponse renders an accumulated validation error as the
// full list of rejected fields.
func NewValidationErrorResponse(ve *apperrors.ValidationError) *ErrorResponse {
	details := make([]ErrorDetail, 0, len(ve.Fields))
	for _, f := range ve.Fields {
		details = append(details, ErrorDetail{
			Code:    ErrorCodeValidationFailed,
			Message: f.Message,
			Field:   f.Field,
			Kind:    f.Kind,
		})
	}
	return &ErrorResponse{
		Success:   false,
		Errors:    details,
		Timestamp: time.Now(),
	}
}
