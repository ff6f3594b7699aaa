// Package apperror defines the error taxonomy shared by every module:
// query failures (reads), write failures (creates/updates/deletes),
// pre-submission validation failures, and authorization refusals.
package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound marks a write that targeted a row which does not exist.
// Wrap it in a WriteError so delete/update of a missing id surfaces as
// a normal write failure rather than a crash.
var ErrNotFound = errors.New("record not found")

// QueryError reports a failed read. The caller keeps its previous
// snapshot; nothing is cleared on a query failure.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *QueryError) Unwrap() error { return e.Err }

// WriteError reports a rejected create, update or delete. No partial
// local mutation accompanies it.
type WriteError struct {
	Op  string
	Err error
}

func (e *WriteError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *WriteError) Unwrap() error { return e.Err }

// ValidationError is raised before any database call is made.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return fmt.Sprintf("%s: %s", e.Field, e.Message) }

// AuthorizationError refuses an admin-only action.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }

// Status maps an error to the HTTP status a handler should answer with.
func Status(err error) int {
	var ve *ValidationError
	var ae *AuthorizationError
	var we *WriteError
	var qe *QueryError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &ae):
		return http.StatusForbidden
	case errors.As(err, &we):
		if errors.Is(err, ErrNotFound) {
			return http.StatusNotFound
		}
		return http.StatusUnprocessableEntity
	case errors.As(err, &qe):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Write answers a request with the JSON error envelope and the status
// derived from the error type. End users only ever see the short
// message, never driver-level detail.
func Write(w http.ResponseWriter, err error) {
	status := Status(err)
	msg := publicMessage(err, status)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func publicMessage(err error, status int) string {
	var ve *ValidationError
	var ae *AuthorizationError
	switch {
	case errors.As(err, &ve):
		return ve.Error()
	case errors.As(err, &ae):
		return ae.Message
	case status == http.StatusNotFound:
		return "record not found"
	case status == http.StatusUnprocessableEntity:
		return "the requested change was rejected"
	case status == http.StatusBadGateway:
		return "could not reach the data store"
	default:
		return "internal error"
	}
}
