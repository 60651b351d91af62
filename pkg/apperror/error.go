package apperror

import "net/http"

// AppError is rendered by the error middleware as response.ErrorBody
type AppError struct {
	Code    int
	Message string
	Err     error
	Origin  string
	Details map[string]any
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Forbidden carries the rejected origin so the caller can see what was refused
func Forbidden(message, origin string) *AppError {
	e := New(http.StatusForbidden, message, nil)
	e.Origin = origin
	return e
}

func MethodNotAllowed() *AppError {
	return New(http.StatusMethodNotAllowed, "Method not allowed", nil)
}

// Upstream relays a third-party failure with its raw response for diagnostics
func Upstream(code int, message string, details map[string]any, err error) *AppError {
	e := New(code, message, err)
	e.Details = details
	return e
}

func Internal(err error) *AppError {
	message := "Server error"
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	return New(http.StatusInternalServerError, message, err)
}
