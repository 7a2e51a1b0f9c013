// Package apperrors defines the closed set of failure classes the core
// operations can produce, and the re-tagging of raw storage errors into
// that set.
package apperrors

import (
	"errors"
	"net/http"

	"github.com/lib/pq"
)

// Kind identifies a failure class
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidID
	KindInvalidQuery
	KindInvalidVoteDelta
	KindInvalidComment
	KindNotFound
	KindReferentialViolation
)

// Error is a classified failure carrying exactly one human-readable
// message, consumed verbatim by the HTTP layer.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New creates a classified error
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// InvalidID marks a malformed identifier
func InvalidID(message string) *Error {
	return New(KindInvalidID, message)
}

// InvalidQuery marks a bad sort/order/limit parameter or unknown column
func InvalidQuery(message string) *Error {
	return New(KindInvalidQuery, message)
}

// InvalidVoteDelta marks a non-numeric vote increment
func InvalidVoteDelta(message string) *Error {
	return New(KindInvalidVoteDelta, message)
}

// InvalidComment marks a comment with a missing body or username
func InvalidComment(message string) *Error {
	return New(KindInvalidComment, message)
}

// NotFound marks a referenced entity as absent
func NotFound(message string) *Error {
	return New(KindNotFound, message)
}

// ReferentialViolation marks a storage-level foreign-key failure
func ReferentialViolation(message string) *Error {
	return New(KindReferentialViolation, message)
}

// KindOf returns the failure class of err, or KindUnknown for errors
// outside the taxonomy.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// Postgres SQLSTATE codes re-tagged by Classify
const (
	pgForeignKeyViolation = "23503"
	pgUndefinedColumn     = "42703"
)

// Classify re-tags storage-level constraint violations into the
// taxonomy: a foreign-key failure on insert (unknown comment author)
// becomes ReferentialViolation, a reference to a column that does not
// exist (pass-through sort_by) becomes InvalidQuery. Already-classified
// errors and anything unrecognized pass through unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case pgForeignKeyViolation:
			return ReferentialViolation("Unprocessable entity")
		case pgUndefinedColumn:
			return InvalidQuery("Invalid query parameter")
		}
	}
	return err
}

// Status maps a classified error to the HTTP status the boundary layer
// returns. Unclassified storage errors surface as 500s.
func Status(err error) int {
	switch KindOf(err) {
	case KindInvalidID, KindInvalidQuery, KindInvalidVoteDelta, KindInvalidComment:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindReferentialViolation:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
