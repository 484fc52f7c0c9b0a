package security

import (
	"strings"
	"testing"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("password123")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if hash == "password123" {
		t.Fatalf("hash must not equal the plaintext")
	}
	if !CheckPassword("password123", hash) {
		t.Fatalf("expected password to match")
	}
	if CheckPassword("wrong", hash) {
		t.Fatalf("expected password mismatch")
	}
}

func TestHashPassword_RejectsOverlongInput(t *testing.T) {
	_, err := HashPassword(strings.Repeat("x", 73))
	if err == nil {
		t.Fatalf("expected error for >72 byte password")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	if CheckPassword("password123", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must never verify")
	}
}
