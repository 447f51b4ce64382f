package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Standard sentinel errors for common error cases
var (
	// ErrNotFound indicates the requested resource was not found
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized indicates the request lacks valid authentication
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden indicates the user doesn't have permission for this action
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidInput indicates the provided input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternalServer indicates an internal server error occurred
	ErrInternalServer = errors.New("internal server error")

	// ErrUserExists indicates a user with the same email/subject already exists
	ErrUserExists = errors.New("user already exists")

	// ErrInvalidToken indicates the session token is malformed, tampered or expired
	ErrInvalidToken = errors.New("invalid token")

	// ErrPendingApproval indicates the account has not been approved yet
	ErrPendingApproval = errors.New("account pending approval")

	// ErrAccountRejected indicates the account has been rejected
	ErrAccountRejected = errors.New("account rejected")

	// ErrAdminRequired indicates the action requires admin privileges
	ErrAdminRequired = errors.New("admin privileges required")

	// ErrSelfAction indicates an admin attempted to reject or delete themselves
	ErrSelfAction = errors.New("cannot perform this action on your own account")

	// ErrAlreadyApproved indicates the target user is already approved
	ErrAlreadyApproved = errors.New("user already approved")

	// ErrFederation indicates the external identity provider exchange failed
	ErrFederation = errors.New("identity provider error")

	// ErrProvider indicates an external generation/scraping provider call failed
	ErrProvider = errors.New("provider request failed")

	// ErrBrandExists indicates a brand with the same name already exists for the owner
	ErrBrandExists = errors.New("brand already exists")

	// ErrStorageError indicates a storage operation failed
	ErrStorageError = errors.New("storage error")

	// ErrDatabaseError indicates a database operation failed
	ErrDatabaseError = errors.New("database error")
)

// ErrorCode represents HTTP-like error codes
type ErrorCode int

const (
	CodeBadRequest          ErrorCode = http.StatusBadRequest
	CodeUnauthorized        ErrorCode = http.StatusUnauthorized
	CodeForbidden           ErrorCode = http.StatusForbidden
	CodeNotFound            ErrorCode = http.StatusNotFound
	CodeConflict            ErrorCode = http.StatusConflict
	CodeInternalServerError ErrorCode = http.StatusInternalServerError
	CodeServiceUnavailable  ErrorCode = http.StatusServiceUnavailable
)

// AppError represents an application-level error with additional context
type AppError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Err     error                  `json:"-"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is interface for comparison
func (e *AppError) Is(target error) bool {
	if e.Err != nil {
		return errors.Is(e.Err, target)
	}
	return false
}

// HTTPStatus returns the HTTP status code for this error
func (e *AppError) HTTPStatus() int {
	return int(e.Code)
}

// WithDetails adds additional details to the error
func (e *AppError) WithDetails(details map[string]interface{}) *AppError {
	e.Details = details
	return e
}

// NewAppError creates a new AppError with the given code, message, and underlying error
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NotFound creates a new not found error
func NotFound(resource string, err error) *AppError {
	return NewAppError(CodeNotFound, fmt.Sprintf("%s not found", resource), err)
}

// Unauthorized creates a new unauthorized error
func Unauthorized(message string, err error) *AppError {
	if message == "" {
		message = "authentication required"
	}
	return NewAppError(CodeUnauthorized, message, err)
}

// Forbidden creates a new forbidden error
func Forbidden(message string, err error) *AppError {
	if message == "" {
		message = "access denied"
	}
	return NewAppError(CodeForbidden, message, err)
}

// BadRequest creates a new bad request error
func BadRequest(message string, err error) *AppError {
	if message == "" {
		message = "invalid request"
	}
	return NewAppError(CodeBadRequest, message, err)
}

// Conflict creates a new conflict error (for duplicate resources)
func Conflict(message string, err error) *AppError {
	return NewAppError(CodeConflict, message, err)
}

// InternalError creates a new internal server error
func InternalError(message string, err error) *AppError {
	if message == "" {
		message = "an internal error occurred"
	}
	return NewAppError(CodeInternalServerError, message, err)
}

// FederationError creates an error for a failed identity provider exchange.
// The provider's error payload goes into details for diagnostics; it is
// surfaced to the caller as a 400 per the authentication contract.
func FederationError(message string, err error) *AppError {
	if message == "" {
		message = "identity provider request failed"
	}
	return NewAppError(CodeBadRequest, message, ErrFederation).WithDetails(map[string]interface{}{
		"provider_error": errString(err),
	})
}

// ProviderError creates an error for a failed generation/scraping provider call
func ProviderError(provider string, err error) *AppError {
	return NewAppError(CodeServiceUnavailable, fmt.Sprintf("%s provider request failed", provider), ErrProvider).WithDetails(map[string]interface{}{
		"provider": provider,
		"cause":    errString(err),
	})
}

// DatabaseError creates a new database error
func DatabaseError(operation string, err error) *AppError {
	return NewAppError(CodeInternalServerError, fmt.Sprintf("database %s failed", operation), err)
}

// StorageError creates a new storage error
func StorageError(operation string, err error) *AppError {
	return NewAppError(CodeInternalServerError, fmt.Sprintf("storage %s failed", operation), err)
}

// ValidationError creates a new validation error with field details
func ValidationError(field, message string) *AppError {
	return NewAppError(CodeBadRequest, message, ErrInvalidInput).WithDetails(map[string]interface{}{
		"field": field,
	})
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == CodeNotFound
	}
	return errors.Is(err, ErrNotFound)
}

// IsUnauthorized checks if an error is an unauthorized error
func IsUnauthorized(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == CodeUnauthorized
	}
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrInvalidToken)
}

// IsForbidden checks if an error is a forbidden error
func IsForbidden(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == CodeForbidden
	}
	return errors.Is(err, ErrForbidden) || errors.Is(err, ErrPendingApproval) ||
		errors.Is(err, ErrAccountRejected) || errors.Is(err, ErrAdminRequired)
}

// IsConflict checks if an error is a conflict error
func IsConflict(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == CodeConflict
	}
	return errors.Is(err, ErrUserExists) || errors.Is(err, ErrBrandExists)
}

// IsBadRequest checks if an error is a bad request error
func IsBadRequest(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == CodeBadRequest
	}
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrSelfAction) ||
		errors.Is(err, ErrAlreadyApproved)
}

// IsFederation checks if an error originated from the identity provider exchange
func IsFederation(err error) bool {
	return errors.Is(err, ErrFederation)
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
