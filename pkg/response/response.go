package response

import (
	"errors"
	"net/http"
)

type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on code and message so sentinels declared in different
// domain packages with the same meaning compare equal.
func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Err.Error() == t.Err.Error()
}

func NewError(code int, err string) error {
	return &Error{code, errors.New(err)}
}

func BadRequest(err string) error {
	return NewError(http.StatusBadRequest, err)
}

func NotFound(err string) error {
	return NewError(http.StatusNotFound, err)
}

func Internal(err string) error {
	return NewError(http.StatusInternalServerError, err)
}

// StatusOf returns the HTTP status carried by err, or 500 when err is not
// a response error.
func StatusOf(err error) int {
	var respErr *Error
	if errors.As(err, &respErr) {
		return respErr.Code
	}
	return http.StatusInternalServerError
}

// Or returns err when it already carries a response status, fallback
// otherwise.
func Or(err, fallback error) error {
	var respErr *Error
	if errors.As(err, &respErr) {
		return err
	}
	return fallback
}
