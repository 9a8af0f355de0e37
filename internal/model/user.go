package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	// GetByID returns the user together with its login and logout history.
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	AppendAuthEvent(ctx context.Context, userID uuid.UUID, kind AuthEventKind, at time.Time) error
}

// User represents a registered account.
type User struct {
	ID            uuid.UUID
	Email         string
	PasswordHash  string
	LoginHistory  []time.Time
	LogoutHistory []time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AuthResult is returned by successful registration and login.
type AuthResult struct {
	Token string
	User  User
}

// AuthEventKind enumerates entries of a user's auth history.
type AuthEventKind string

const (
	AuthEventLogin  AuthEventKind = "login"
	AuthEventLogout AuthEventKind = "logout"
)

// PasswordHasher hashes and verifies user passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare reports whether password matches hash. An empty hash is
	// compared against a fixed dummy hash and never matches.
	Compare(hash, password string) bool
}
