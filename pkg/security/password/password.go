// Package password implements credential hashing with bcrypt.
package password

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/artem13815/identity/pkg/auth"
)

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns an auth.PasswordHasher backed by bcrypt with the
// default cost. bcrypt embeds a fresh random salt in every digest.
func NewBcryptHasher() auth.PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

// NewBcryptHasherWithCost allows lowering the cost, e.g. in tests.
func NewBcryptHasherWithCost(cost int) auth.PasswordHasher {
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext reproduces digest. bcrypt compares in
// constant time; a malformed digest yields an error and therefore false.
func (h *bcryptHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
