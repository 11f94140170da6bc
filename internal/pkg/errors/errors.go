package errors

import (
	"errors"
	"net/http"
)

type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *CustomError) Error() string {
	return e.Message
}

func New(code int, message string) error {
	return &CustomError{Code: code, Message: message}
}

func BadRequest(message string) error {
	return New(http.StatusBadRequest, message)
}

func UnauthorizedError(message string) error {
	return New(http.StatusUnauthorized, message)
}

func Forbidden(message string) error {
	return New(http.StatusForbidden, message)
}

func NotFound(message string) error {
	return New(http.StatusNotFound, message)
}

func Conflict(message string) error {
	return New(http.StatusConflict, message)
}

func TooManyRequests(message string) error {
	return New(http.StatusTooManyRequests, message)
}

func InternalServerError(message string) error {
	return New(http.StatusInternalServerError, message)
}

// Code returns the HTTP status carried by err, 500 for anything that is not a CustomError.
func Code(err error) int {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return http.StatusInternalServerError
}

// Is reports whether err is a CustomError with the given status.
func Is(err error, code int) bool {
	var ce *CustomError
	return errors.As(err, &ce) && ce.Code == code
}
