package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for user operations.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrDuplicateUsername    = errors.New("username already in use")
	ErrRegistrationConflict = errors.New("username already exists or passwords do not match")
)

// User represents a registered account. PasswordHash is never rendered.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Admin        bool      `json:"admin"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewUser returns a new User with the given fields. ID is set by the repository on create.
func NewUser(name, username, passwordHash string, createdAt, updatedAt time.Time) *User {
	return &User{
		Name:         name,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// PasswordHasher handles hashing and verification of account passwords.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// UserRepository defines the interface for account storage.
// Create returns ErrDuplicateUsername when the username unique constraint
// is violated; GetByUsername returns ErrUserNotFound when no row matches.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context) ([]*User, error)
}

// UserService defines the business logic for account registration and listing.
// Register fails with ErrRegistrationConflict when the username is taken or
// the two submitted passwords differ; the caller renders one generic message
// either way.
type UserService interface {
	Register(ctx context.Context, name, username, password, confirm string) (*User, error)
	List(ctx context.Context) ([]*User, error)
}
