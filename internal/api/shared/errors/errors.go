package errors

import (
	"errors"
	"net/http"
	"strings"

	"github.com/sphera-world/market-engine/internal/domain"
)

// ErrorCode is the machine readable class of an API error
type ErrorCode string

const (
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeConflict         ErrorCode = "conflict"
	ErrCodeRateLimited      ErrorCode = "rate_limited"
	ErrCodeInternalError    ErrorCode = "internal_error"
)

// APIError is the body of every non-2xx response.
// Reason carries the engine error code (NOT_OWNER, EVENT_MISMATCH, ...) when
// the failure has one, so clients can branch without parsing Message.
type APIError struct {
	Code    ErrorCode `json:"code"`
	Reason  string    `json:"reason,omitempty"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	if e.Details == "" {
		return string(e.Code) + ": " + e.Message
	}
	return string(e.Code) + ": " + e.Message + " (" + e.Details + ")"
}

func newError(code ErrorCode, message string, details []string) *APIError {
	return &APIError{Code: code, Message: message, Details: strings.Join(details, ", ")}
}

func NewBadRequestError(message string, details ...string) *APIError {
	return newError(ErrCodeBadRequest, message, details)
}

func NewValidationError(details ...string) *APIError {
	return newError(ErrCodeValidationFailed, "Validation failed", details)
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return newError(ErrCodeUnauthorized, message, details)
}

func NewNotFoundError(message string, details ...string) *APIError {
	return newError(ErrCodeNotFound, message, details)
}

func NewInternalError(message string, details ...string) *APIError {
	return newError(ErrCodeInternalError, message, details)
}

// kindStatus is checked in order. Rate limiting precedes conflict because
// ErrRateLimited is a conflict.
var kindStatus = []struct {
	kind   error
	status int
	code   ErrorCode
}{
	{domain.ErrValidationFailure, http.StatusBadRequest, ErrCodeValidationFailed},
	{domain.ErrNotFound, http.StatusNotFound, ErrCodeNotFound},
	{domain.ErrRateLimited, http.StatusTooManyRequests, ErrCodeRateLimited},
	{domain.ErrConflict, http.StatusConflict, ErrCodeConflict},
}

// FromDomain maps an engine error to its HTTP status and response body.
// Anything outside the known kinds is a 500 whose body hides err.
func FromDomain(err error) (int, *APIError) {
	for _, ks := range kindStatus {
		if !errors.Is(err, ks.kind) {
			continue
		}
		apiErr := &APIError{Code: ks.code, Message: err.Error()}
		var me *domain.MarketError
		if errors.As(err, &me) {
			apiErr.Reason = me.Code
		}
		return ks.status, apiErr
	}
	return http.StatusInternalServerError, NewInternalError("Internal server error")
}
