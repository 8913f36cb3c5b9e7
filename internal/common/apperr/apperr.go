package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an error so the HTTP layer can pick a status code without
// inspecting store-level errors.
type Kind int

const (
	KindValidation Kind = iota
	KindDuplicateKey
	KindNotFound
	KindPersistence
	KindAuth
)

// Error carries a client-safe message and an optional wrapped cause.
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

func Validation(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

func Duplicate(msg string) error {
	return &Error{Kind: KindDuplicateKey, Message: msg}
}

func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Persistence(msg string, cause error) error {
	return &Error{Kind: KindPersistence, Message: msg, Err: cause}
}

func Unauthorized(msg string) error {
	return &Error{Kind: KindAuth, Message: msg}
}

func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func IsNotFound(err error) bool { return IsKind(err, KindNotFound) }

// StatusCode maps an error to the HTTP status the envelope should carry.
// Unknown errors are treated as persistence failures.
func StatusCode(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation, KindDuplicateKey:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindAuth:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// ClientMessage returns the message safe to expose. Unknown errors collapse
// to a generic message; wrapped causes belong in logs, never in responses.
func ClientMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return "Server error"
	}
	return e.Message
}
