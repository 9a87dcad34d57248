// Package apperror defines the stable error kinds every operation in the
// service can fail with, plus their HTTP status mapping. Handlers never
// invent ad-hoc statuses; they classify through this package so callers can
// tell a connectivity failure from a business rejection.
package apperror

import (
	"errors"
	"net/http"
)

// Kind is a stable, machine-readable classification of a failure.
type Kind string

const (
	KindDuplicateEmail     Kind = "duplicate_email"
	KindInvalidCredentials Kind = "invalid_credentials"
	KindNotFound           Kind = "not_found"
	KindIllegalTransition  Kind = "illegal_transition"
	KindForbidden          Kind = "forbidden"
	KindUnauthenticated    Kind = "unauthenticated"
	KindInvalidToken       Kind = "invalid_token"
	KindExpiredToken       Kind = "expired_token"
	KindStoreUnavailable   Kind = "store_unavailable"
	KindValidation         Kind = "validation"
)

// Error carries a kind alongside a human-readable message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// New builds an Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf extracts the Kind from err, or "" when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether err is an Error of the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// HTTPStatus maps an error to the status its kind is served with. Unknown
// errors are treated as store failures so the caller sees "try again", not
// "not allowed".
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindDuplicateEmail, KindIllegalTransition:
		return http.StatusConflict
	case KindInvalidCredentials, KindUnauthenticated, KindInvalidToken, KindExpiredToken:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindStoreUnavailable:
		return http.StatusServiceUnavailable
	}
	return http.StatusServiceUnavailable
}
