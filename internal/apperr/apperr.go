// Package apperr defines the error vocabulary shared by services and
// handlers. Services return these; the HTTP layer maps each kind to a
// fixed status code and a {"detail": ...} payload.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindUnauthenticated Kind = iota + 1
	KindForbidden
	KindNotFound
	KindConflict
	KindInvalidOperation
	KindValidation
)

// Error carries a kind and a user-facing message. Supports errors.As.
type Error struct {
	kind Kind
	msg  string
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Kind() Kind {
	return e.kind
}

func New(kind Kind, msg string) error {
	return &Error{kind: kind, msg: msg}
}

func Unauthenticated(msg string) error {
	return New(KindUnauthenticated, msg)
}

func Forbidden(msg string) error {
	return New(KindForbidden, msg)
}

func NotFound(format string, args ...any) error {
	return New(KindNotFound, fmt.Sprintf(format, args...))
}

func Conflict(format string, args ...any) error {
	return New(KindConflict, fmt.Sprintf(format, args...))
}

func InvalidOperation(format string, args ...any) error {
	return New(KindInvalidOperation, fmt.Sprintf(format, args...))
}

func Validation(msg string) error {
	return New(KindValidation, msg)
}

func IsKind(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.kind == kind
}

// Status returns the HTTP status for err; unknown errors are 500.
func Status(err error) int {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError
	}
	switch appErr.kind {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict, KindInvalidOperation:
		return http.StatusBadRequest
	case KindValidation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Detail returns the user-facing message for err. Unknown errors are
// never leaked to clients.
func Detail(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.msg
	}
	return "Internal server error"
}
