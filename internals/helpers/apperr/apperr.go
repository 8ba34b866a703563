// Package apperr holds the domain error taxonomy shared by services and controllers.
package apperr

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindDomain Kind = iota
	KindNotFound
	KindAlreadyExists
	KindConflict
	KindValidation
	KindForbidden
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindAlreadyExists:
		return "already_exists"
	case KindConflict:
		return "conflict"
	case KindValidation:
		return "validation"
	case KindForbidden:
		return "forbidden"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "domain"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) error      { return newf(KindNotFound, format, args...) }
func AlreadyExists(format string, args ...any) error { return newf(KindAlreadyExists, format, args...) }
func Conflict(format string, args ...any) error      { return newf(KindConflict, format, args...) }
func Validation(format string, args ...any) error    { return newf(KindValidation, format, args...) }
func Forbidden(format string, args ...any) error     { return newf(KindForbidden, format, args...) }
func Unauthorized(format string, args ...any) error  { return newf(KindUnauthorized, format, args...) }

// Wrap attaches a cause while keeping the public message.
func Wrap(kind Kind, err error, format string, args ...any) error {
	e := newf(kind, format, args...)
	e.Err = err
	return e
}

func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func Is(err error, kind Kind) bool {
	e, ok := As(err)
	return ok && e.Kind == kind
}

// Message returns the public message, without the wrapped cause.
func Message(err error) string {
	if e, ok := As(err); ok {
		return e.Message
	}
	return err.Error()
}
