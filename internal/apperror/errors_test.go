package apperror

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", &ValidationError{Field: "name", Message: "required"}, http.StatusBadRequest},
		{"authorization", &AuthorizationError{Message: "restricted to administrators"}, http.StatusForbidden},
		{"write", &WriteError{Op: "create computer", Err: errors.New("constraint violation")}, http.StatusUnprocessableEntity},
		{"write not found", &WriteError{Op: "delete computer", Err: ErrNotFound}, http.StatusNotFound},
		{"query", &QueryError{Op: "list computers", Err: errors.New("connection refused")}, http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Status(tc.err); got != tc.want {
				t.Fatalf("Status(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestStatusWrapped(t *testing.T) {
	err := fmt.Errorf("save expense: %w", &WriteError{Op: "update expense", Err: ErrNotFound})
	if got := Status(err); got != http.StatusNotFound {
		t.Fatalf("Status on wrapped error = %d, want %d", got, http.StatusNotFound)
	}
}

func TestUnwrap(t *testing.T) {
	inner := errors.New("duplicate key")
	we := &WriteError{Op: "create peripheral", Err: inner}
	if !errors.Is(we, inner) {
		t.Fatal("WriteError should unwrap to its cause")
	}
	qe := &QueryError{Op: "list", Err: inner}
	if !errors.Is(qe, inner) {
		t.Fatal("QueryError should unwrap to its cause")
	}
}

func TestWriteHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, &WriteError{Op: "create computer", Err: errors.New("pq: duplicate key value violates unique constraint")})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["error"] == "" {
		t.Fatal("expected an error message")
	}
	if got := body["error"]; got != "the requested change was rejected" {
		t.Fatalf("driver detail leaked to the client: %q", got)
	}
}

func TestWriteValidationMessageIsFieldLevel(t *testing.T) {
	rec := httptest.NewRecorder()
	Write(rec, &ValidationError{Field: "month", Message: "must be between 1 and 12"})
	var body map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	if body["error"] != "month: must be between 1 and 12" {
		t.Fatalf("unexpected message %q", body["error"])
	}
}
