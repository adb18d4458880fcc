package errors

import (
	"errors"
	"fmt"
)

// AppError is the error type every layer above the repositories speaks.
// Code is a business error code (not an HTTP status) so clients can branch
// on it; Message is safe to show to callers; Err carries the internal cause
// and is only ever logged, never serialized.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap supports errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates an AppError with no internal cause.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap converts a low-level error (database, redis, broker) into an internal
// AppError, hiding the cause from the caller.
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// Error codes.
// 4xxxx: client errors (missing resources, business-rule violations).
// 5xxxx: server errors (database failures, serialization conflicts).
const (
	// System errors (50000-50099).
	ErrCodeInternal      = 50000
	ErrCodeDatabaseError = 50001
	ErrCodeRedisError    = 50002
	// ErrCodeTxConflict marks a transaction serialization failure (deadlock,
	// lock wait timeout). Retryable: use cases retry the unit of work a
	// bounded number of times before surfacing ErrInternal.
	ErrCodeTxConflict = 50003

	// Authentication errors (40100-40199).
	ErrCodeUnauthorized    = 40100
	ErrCodeInvalidToken    = 40101
	ErrCodeTokenExpired    = 40102
	ErrCodeInvalidPassword = 40103
	ErrCodeForbidden       = 40104

	// Missing resources (40400-40499).
	ErrCodeNotFound          = 40400
	ErrCodeLibrarianNotFound = 40401
	ErrCodeBookNotFound      = 40402
	ErrCodeReaderNotFound    = 40403
	ErrCodeRecordNotFound    = 40404

	// Business-rule violations (40000-40099).
	ErrCodeBusinessError     = 40000
	ErrCodeNoCopiesAvailable = 40001
	ErrCodeBorrowLimit       = 40002
	ErrCodeNoActiveBorrow    = 40003
	ErrCodeHasActiveBorrows  = 40004
	ErrCodeWeakPassword      = 40005
	ErrCodeEmailDuplicate    = 40006
	ErrCodeISBNDuplicate     = 40007
	ErrCodeDuplicateEntry    = 40009

	// Request errors (40900-40999).
	ErrCodeInvalidParams = 40900
	ErrCodeBindError     = 40901
)

// Predefined errors shared across packages. Domain-specific errors live in
// their domain packages and reuse the codes above.
var (
	ErrInternal      = New(ErrCodeInternal, "internal server error")
	ErrDatabaseError = New(ErrCodeDatabaseError, "database error")
	ErrRedisError    = New(ErrCodeRedisError, "cache service error")
	ErrTxConflict    = New(ErrCodeTxConflict, "transaction conflict, please retry")

	ErrUnauthorized    = New(ErrCodeUnauthorized, "authentication required")
	ErrInvalidToken    = New(ErrCodeInvalidToken, "invalid token")
	ErrTokenExpired    = New(ErrCodeTokenExpired, "token expired")
	ErrInvalidPassword = New(ErrCodeInvalidPassword, "invalid email or password")
	ErrForbidden       = New(ErrCodeForbidden, "librarian privileges required")

	ErrLibrarianNotFound = New(ErrCodeLibrarianNotFound, "librarian not found")

	ErrWeakPassword   = New(ErrCodeWeakPassword, "password must be 8-20 characters and contain letters and digits")
	ErrEmailDuplicate = New(ErrCodeEmailDuplicate, "email already registered")

	ErrInvalidParams = New(ErrCodeInvalidParams, "invalid parameters")
	ErrBindError     = New(ErrCodeBindError, "malformed request body")
)

// IsAppError reports whether err is (or wraps) an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts the AppError from err, wrapping unknown errors as
// internal so handlers always have a code to return.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "internal server error")
}

// IsCode reports whether err resolves to the given business code.
func IsCode(err error, code int) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
