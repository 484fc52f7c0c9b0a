package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{Unauthenticated("no session"), http.StatusUnauthorized},
		{Forbidden("not yours"), http.StatusForbidden},
		{NotFound("User '%s' not found", "bob"), http.StatusNotFound},
		{Conflict("duplicate"), http.StatusBadRequest},
		{InvalidOperation("self friend"), http.StatusBadRequest},
		{Validation("bad payload"), http.StatusUnprocessableEntity},
		{errors.New("db exploded"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := Status(tc.err); got != tc.want {
			t.Errorf("Status(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestDetail_HidesUnknownErrors(t *testing.T) {
	if got := Detail(errors.New("pq: connection refused")); got != "Internal server error" {
		t.Fatalf("unknown error detail leaked: %q", got)
	}
	if got := Detail(NotFound("Message not found")); got != "Message not found" {
		t.Fatalf("detail mismatch: %q", got)
	}
}

func TestIsKind_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("handling request: %w", Conflict("Username already registered"))
	if !IsKind(err, KindConflict) {
		t.Fatalf("expected wrapped conflict to be detected")
	}
	if IsKind(err, KindNotFound) {
		t.Fatalf("wrong kind matched")
	}
}
