// Package dto defines the request and response shapes of the HTTP API.
package dto

import (
	"time"

	"github.com/sue-zadeh/fieldbase/pkg/constants"
	"github.com/sue-zadeh/fieldbase/pkg/errors"
)

// APIResponse is the envelope for every JSON response.
type APIResponse struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Error     *ErrorDTO   `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
	Timestamp int64       `json:"timestamp"`
}

// ErrorDTO carries the error code and message of a failed request.
type ErrorDTO struct {
	Code    constants.ErrorCode `json:"code"`
	Message string              `json:"message"`
	Details map[string]string   `json:"details,omitempty"`
}

// SuccessResponse wraps data in the standard envelope.
func SuccessResponse(data interface{}, requestID string) *APIResponse {
	return &APIResponse{
		Success:   true,
		Data:      data,
		RequestID: requestID,
		Timestamp: time.Now().Unix(),
	}
}

// ErrorResponse wraps any error in the standard envelope. Non-AppError values
// are reported as internal errors without leaking their text.
func ErrorResponse(err error, requestID string) *APIResponse {
	errorDTO := &ErrorDTO{
		Code:    constants.ErrCodeInternal,
		Message: "internal error",
	}
	if appErr, ok := errors.AsAppError(err); ok {
		errorDTO = &ErrorDTO{
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		}
	}

	return &APIResponse{
		Success:   false,
		Error:     errorDTO,
		RequestID: requestID,
		Timestamp: time.Now().Unix(),
	}
}
