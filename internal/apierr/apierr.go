// Package apierr carries the error kinds the simulated services return and
// renders them in the wire shape of the real Google APIs.
package apierr

import (
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
)

type Kind int

const (
	KindValidation Kind = iota
	KindInvalidInput
	KindNotFound
	KindConcurrency
	KindUserNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "INVALID_ARGUMENT"
	case KindInvalidInput:
		return "INVALID_ARGUMENT"
	case KindNotFound:
		return "NOT_FOUND"
	case KindConcurrency:
		return "ABORTED"
	case KindUserNotFound:
		return "NOT_FOUND"
	}
	return "UNKNOWN"
}

// Error is a simulation failure with an API error kind attached. Message is
// the user-visible text; it survives wrapping unchanged.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) *Error {
	return newf(KindValidation, format, args...)
}

func InvalidInput(format string, args ...any) *Error {
	return newf(KindInvalidInput, format, args...)
}

func NotFound(format string, args ...any) *Error {
	return newf(KindNotFound, format, args...)
}

func Concurrency(format string, args ...any) *Error {
	return newf(KindConcurrency, format, args...)
}

func UserNotFound(format string, args ...any) *Error {
	return newf(KindUserNotFound, format, args...)
}

// KindOf reports the kind of err if any error in its chain is an *Error.
func KindOf(err error) (Kind, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind, true
	}
	return 0, false
}

// IsKind reports whether err carries exactly kind.
func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

func httpCode(kind Kind) int {
	switch kind {
	case KindNotFound, KindUserNotFound:
		return 404
	case KindConcurrency:
		return 409
	default:
		return 400
	}
}

// GoogleAPI renders err as the googleapi.Error the real services would
// return. Errors with no kind in their chain render as a 400.
func GoogleAPI(err error) *googleapi.Error {
	kind := KindValidation
	if k, ok := KindOf(err); ok {
		kind = k
	}
	return &googleapi.Error{
		Code:    httpCode(kind),
		Message: err.Error(),
	}
}
