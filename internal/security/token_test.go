package security

import (
	"testing"
	"time"
)

func TestIssueAndParseToken_Success(t *testing.T) {
	t.Parallel()

	tok, err := IssueToken("super-secret", "alice", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	username, err := ParseToken(tok, "super-secret")
	if err != nil {
		t.Fatalf("ParseToken error: %v", err)
	}
	if username != "alice" {
		t.Fatalf("username mismatch: got %q want %q", username, "alice")
	}
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	tok, err := IssueToken("secret", "alice", -1*time.Second)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	if _, err := ParseToken(tok, "secret"); err == nil {
		t.Fatalf("expected error for expired token, got nil")
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := IssueToken("right-secret", "alice", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken error: %v", err)
	}

	if _, err := ParseToken(tok, "wrong-secret"); err == nil {
		t.Fatalf("expected error for wrong secret, got nil")
	}
}

func TestParseToken_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := ParseToken("not.a.jwt", "secret"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
	if _, err := ParseToken("", "secret"); err == nil {
		t.Fatalf("expected error for empty token, got nil")
	}
}
