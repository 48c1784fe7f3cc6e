package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies where in the intake flow a failure happened.
type Kind string

const (
	KindInvalidRequest Kind = "INVALID_REQUEST"
	KindRemoteContent  Kind = "REMOTE_CONTENT_UNAVAILABLE"
	KindProvider       Kind = "EXTRACTION_PROVIDER_ERROR"
	KindSchema         Kind = "SCHEMA_VALIDATION_ERROR"
	KindPersistence    Kind = "PERSISTENCE_ERROR"
)

// Error carries a Kind so the handler layer can pick a status code without
// string-matching the underlying cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func New(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// KindOf returns the Kind of err, or "" if err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// HTTPStatus maps an error to the status the API responds with. Caller input
// problems are 400s; provider, schema and storage faults are 500s.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindInvalidRequest, KindRemoteContent:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
