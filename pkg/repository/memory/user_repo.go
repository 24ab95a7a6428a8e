// Package memory provides an in-memory auth.UserRepository for tests and
// local development without a database.
package memory

import (
	"context"
	"sync"

	"github.com/artem13815/identity/pkg/auth"
)

// UserRepository keeps users in a map keyed by email. The mutex gives Create
// the same check-and-insert atomicity the SQL unique index provides.
type UserRepository struct {
	mu    sync.Mutex
	users map[string]auth.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]auth.User)}
}

func (r *UserRepository) Create(ctx context.Context, user auth.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Email]; exists {
		return auth.ErrUserAlreadyExists
	}
	r.users[user.Email] = user
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[email]
	if !ok {
		return auth.User{}, auth.ErrNotFound
	}
	return user, nil
}

var _ auth.UserRepository = (*UserRepository)(nil)
