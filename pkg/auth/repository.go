package auth

import (
	"context"
	"errors"
)

// Common errors used by repository/use cases
var (
	ErrNotFound           = errors.New("not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation failed")

	// ErrStorage marks persistence-layer failures (connectivity, timeouts,
	// unexpected constraint violations). Use cases must abort on it rather
	// than fall through as if the lookup or insert had a definite answer.
	ErrStorage = errors.New("storage failure")
)

// UserRepository abstracts persistence concerns from the domain layer.
// Implementations may be in-memory, SQL, NoSQL, etc.
//
// Create must be atomic with respect to concurrent inserts of the same email:
// two simultaneous registrations yield exactly one success and one
// ErrUserAlreadyExists, never two successes.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByEmail(ctx context.Context, email string) (User, error)
}
