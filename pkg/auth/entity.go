package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a domain entity representing one registered identity.
// Username is a display name and is not required to be unique; Email is.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
