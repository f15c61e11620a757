// Package credentials hashes and verifies account passwords with bcrypt.
package credentials

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// Cost is the bcrypt work factor for new hashes
const Cost = 10

// ErrMismatch is returned when a password does not match its hash
var ErrMismatch = errors.New("password does not match")

// dummyHash is compared against when the account does not exist so a failed login
// costs the same whatever the reason.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("legal-aid-placeholder"), Cost)

// Hash returns the bcrypt hash of password
func Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), Cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify checks password against hash. An empty hash never matches but still pays
// for one comparison.
func Verify(hash, password string) error {
	if hash == "" {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return ErrMismatch
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrMismatch
	}
	return nil
}
