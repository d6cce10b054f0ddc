package store

import (
	. "github.com/sky-brothers/skyair/internal/interfaces/operation"
	"golang.org/x/crypto/bcrypt"
)

// PlainVerifier stores and compares passwords as-is. This matches the
// historical record format and remains the default scheme; it is a known
// gap, kept behind CredentialVerifier so deployments can switch to bcrypt
// without a store migration tool touching the ledger core.
type PlainVerifier struct{}

func (PlainVerifier) Hash(password string) (string, error) { return password, nil }

func (PlainVerifier) Verify(stored, presented string) bool { return stored == presented }

// BcryptVerifier encodes passwords with bcrypt. Records written under the
// plain scheme will no longer verify once this scheme is enabled.
type BcryptVerifier struct {
	Cost int
}

func (verifier BcryptVerifier) Hash(password string) (string, error) {
	encoded, err := bcrypt.GenerateFromPassword([]byte(password), verifier.Cost)
	if err != nil {
		return "", ErrPasswordEncode
	}
	return string(encoded), nil
}

func (verifier BcryptVerifier) Verify(stored, presented string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(presented)) == nil
}
