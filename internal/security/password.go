package security

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt truncates input after 72 bytes.
const maxPasswordLen = 72

func HashPassword(password string) (string, error) {
	if len(password) > maxPasswordLen {
		return "", errors.New("password exceeds 72 bytes")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether password matches hash. Any bcrypt
// failure counts as a mismatch; callers never see a distinct error.
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
