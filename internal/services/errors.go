// Package services provides the business logic layer between handlers and
// the analytics engine: DTO conversion, validation and error mapping.
package services

import (
	"errors"

	"github.com/vitalyze/vitalyze/internal/analytics"
)

// ServiceError represents a service layer error
type ServiceError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func (e *ServiceError) Error() string {
	return e.Message
}

// NewServiceError creates a new ServiceError
func NewServiceError(code, message string) *ServiceError {
	return &ServiceError{Code: code, Message: message}
}

// HTTPStatus maps the error code onto an HTTP status for the handlers.
// Insufficient data is the one well-formed-but-unanalyzable case.
func (e *ServiceError) HTTPStatus() int {
	if e.Code == CodeInsufficientData {
		return 422
	}
	return 400
}

// Error codes surfaced to API clients
const (
	CodeInsufficientData = "INSUFFICIENT_DATA"
	CodeInvalidRange     = "INVALID_RANGE"
	CodeInvalidMethod    = "INVALID_METHOD"
	CodeInvalidRequest   = "INVALID_REQUEST"
)

// fromEngine maps engine sentinel errors onto client-facing codes
func fromEngine(err error) *ServiceError {
	switch {
	case errors.Is(err, analytics.ErrInsufficientData):
		return NewServiceError(CodeInsufficientData, err.Error())
	case errors.Is(err, analytics.ErrInvalidRange):
		return NewServiceError(CodeInvalidRange, err.Error())
	case errors.Is(err, analytics.ErrLengthMismatch):
		return NewServiceError(CodeInvalidRequest, err.Error())
	case errors.Is(err, analytics.ErrUnknownMethod):
		return NewServiceError(CodeInvalidMethod, err.Error())
	default:
		return NewServiceError(CodeInvalidRequest, err.Error())
	}
}
