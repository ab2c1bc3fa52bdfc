package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrConflict           = errors.New("resource already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrValidation         = errors.New("validation failed")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountDeactivated = errors.New("account deactivated")
	ErrInvalidToken       = errors.New("invalid token")
	ErrAlreadyActive      = errors.New("record is already active")
	ErrAlreadyInactive    = errors.New("record is already inactive")
	ErrInternal           = errors.New("internal error")
)

// Error codes returned to API clients
const (
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeInvalidInput       = "INVALID_INPUT"
	CodeValidation         = "VALIDATION_ERROR"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeAccountDeactivated = "ACCOUNT_DEACTIVATED"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeAlreadyActive      = "ALREADY_ACTIVE"
	CodeAlreadyInactive    = "ALREADY_INACTIVE"
	CodeInternalError      = "INTERNAL_ERROR"
)

// AppError represents application error with HTTP status
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the wrapped sentinel to errors.Is
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, CodeNotFound, message, ErrNotFound)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, CodeConflict, message, ErrConflict)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeInvalidInput, message, ErrInvalidInput)
}

func Validation(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeValidation, message, ErrValidation)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, CodeUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, CodeForbidden, message, ErrForbidden)
}

func InvalidCredentials() *AppError {
	return NewAppError(http.StatusUnauthorized, CodeInvalidCredentials, "Invalid email or password", ErrInvalidCredentials)
}

// AccountDeactivated is deliberately more specific than InvalidCredentials.
func AccountDeactivated() *AppError {
	return NewAppError(http.StatusUnauthorized, CodeAccountDeactivated, "User account is deactivated", ErrAccountDeactivated)
}

func InvalidToken(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, CodeInvalidToken, message, ErrInvalidToken)
}

func AlreadyActive(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeAlreadyActive, message, ErrAlreadyActive)
}

func AlreadyInactive(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeAlreadyInactive, message, ErrAlreadyInactive)
}

func InternalError(err error) *AppError {
	if err == nil {
		err = ErrInternal
	}
	return NewAppError(http.StatusInternalServerError, CodeInternalError, "internal server error", err)
}

// FromSentinel maps a bare domain error to its AppError. Unknown errors become InternalError.
func FromSentinel(err error, message string) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return NotFound(message)
	case errors.Is(err, ErrConflict):
		return Conflict(message)
	case errors.Is(err, ErrForbidden):
		return Forbidden(message)
	case errors.Is(err, ErrAlreadyActive):
		return AlreadyActive(message)
	case errors.Is(err, ErrAlreadyInactive):
		return AlreadyInactive(message)
	case errors.Is(err, ErrInvalidInput):
		return BadRequest(message)
	case errors.Is(err, ErrValidation):
		return Validation(message)
	case errors.Is(err, ErrUnauthorized):
		return Unauthorized(message)
	case errors.Is(err, ErrInvalidToken):
		return InvalidToken(message)
	case errors.Is(err, ErrInvalidCredentials):
		return InvalidCredentials()
	case errors.Is(err, ErrAccountDeactivated):
		return AccountDeactivated()
	default:
		return InternalError(err)
	}
}
