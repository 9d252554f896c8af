package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to an HTTP status and carries
// a Transient flag the resilience layer uses to decide whether a failure
// is worth retrying.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Transient  bool   `json:"-"` // eligible for retry/backoff when true
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func new(code, message string, status int, transient bool) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status, Transient: transient}
}

func wrap(code, message string, status int, transient bool, err error) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: status, Transient: transient, Err: err}
}

// ---- ValidationError: malformed or business-rule-violating input. ----

func Validation(message string) *AppError {
	return new("VALIDATION_ERROR", message, http.StatusBadRequest, false)
}

// ---- NotFound: the referenced aggregate does not exist. ----

func NotFound(entity string) *AppError {
	return new("NOT_FOUND", fmt.Sprintf("%s not found", entity), http.StatusNotFound, false)
}

// ---- Duplicate: a uniqueness constraint (e.g. invoice number) was violated. ----

func Duplicate(entity string) *AppError {
	return new("DUPLICATE", fmt.Sprintf("%s already exists", entity), http.StatusConflict, false)
}

// ---- PermissionDenied: the calling actor's role forbids this operation. ----

func PermissionDenied(action string) *AppError {
	return new("PERMISSION_DENIED", fmt.Sprintf("actor not authorized to %s", action), http.StatusForbidden, false)
}

// ---- GatewayError: the payment/payout gateway returned a failure or
// unreachable response. Transient by default — the resilience layer
// decides whether to retry based on the gateway's own error code. ----

func GatewayError(err error) *AppError {
	return wrap("GATEWAY_ERROR", "payment gateway request failed", http.StatusBadGateway, true, err)
}

func GatewayErrorPermanent(code, message string) *AppError {
	return new("GATEWAY_ERROR", fmt.Sprintf("gateway rejected request: %s: %s", code, message), http.StatusBadGateway, false)
}

// ---- KmsUnavailable: the envelope-encryption transit backend is down. ----

func KmsUnavailable(err error) *AppError {
	return wrap("KMS_UNAVAILABLE", "encryption key service unavailable", http.StatusServiceUnavailable, true, err)
}

// ---- InconsistentState: a state-machine transition was attempted out of order. ----

func InconsistentState(entity, from, to string) *AppError {
	return new("INCONSISTENT_STATE", fmt.Sprintf("%s cannot transition from %s to %s", entity, from, to), http.StatusConflict, false)
}

// ---- InternalError: unexpected internal failure (DB, encoding, etc). ----

func InternalError(err error) *AppError {
	return wrap("INTERNAL_ERROR", "internal server error", http.StatusInternalServerError, false, err)
}

// DatabaseError reports a persistence-layer failure. Transient: connection
// pool exhaustion and serialization failures are worth retrying upstream;
// constraint violations are not, and callers should prefer Duplicate/
// NotFound when the cause is known.
func DatabaseError(err error) *AppError {
	return wrap("INTERNAL_ERROR", "database operation failed", http.StatusInternalServerError, true, err)
}

// LockTimeout reports a failure to acquire a row lock within budget.
func LockTimeout(err error) *AppError {
	return wrap("INTERNAL_ERROR", "lock acquisition timeout", http.StatusServiceUnavailable, true, err)
}

// RateLimitExceeded reports a caller-side throttling decision.
func RateLimitExceeded() *AppError {
	return new("VALIDATION_ERROR", "rate limit exceeded", http.StatusTooManyRequests, false)
}

// IsTransient reports whether err (if an *AppError) is eligible for retry.
func IsTransient(err error) bool {
	ae, ok := err.(*AppError)
	return ok && ae.Transient
}
