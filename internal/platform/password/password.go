// Package password wraps bcrypt hashing and verification behind a small
// service so that every user-creation path hashes the same way.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes and verifies user passwords.
type Hasher interface {
	// Hash returns a salted one-way hash of the plaintext password.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches the stored hash.
	// The comparison is constant-time.
	Verify(hash, plaintext string) bool
}

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a Hasher using bcrypt with the default cost.
func NewBcryptHasher() Hasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

func (h *bcryptHasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func (h *bcryptHasher) Verify(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}

// DummyHash is a valid bcrypt hash of a random string. Login flows compare
// against it when the email does not resolve to a user, so that the bcrypt
// comparison runs regardless and response timing does not reveal whether the
// account exists.
const DummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
