// AngelaMos | 2026
// errors.go

package core

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// AppError is the structured error that crosses the HTTP boundary. Services
// return it as data; the response layer renders it verbatim as
// {status, success:false, error, message}.
type AppError struct {
	Status  int    `json:"status"`
	Success bool   `json:"success"`
	Code    string `json:"error"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAppError(status int, code, message string) *AppError {
	return &AppError{
		Status:  status,
		Success: false,
		Code:    code,
		Message: message,
	}
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

func UnauthorizedError(message string) *AppError {
	if message == "" {
		message = "You do not have permission to make this request."
	}
	return NewAppError(http.StatusUnauthorized, "UNAUTHORIZED", message)
}

func InternalError() *AppError {
	return NewAppError(
		http.StatusInternalServerError,
		"INTERNAL_SERVER_ERROR",
		"An unexpected error has occurred.",
	)
}

func ServiceUnavailableError() *AppError {
	return NewAppError(
		http.StatusServiceUnavailable,
		"SERVICE_UNAVAILABLE",
		"Server is in the process of shutting down or restarting.",
	)
}
