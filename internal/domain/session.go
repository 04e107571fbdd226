package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for session operations.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
)

// Principal is the authenticated identity attached to a request for the
// lifetime of a session. Admin is read-only view conditioning.
type Principal struct {
	UserID   string
	Username string
	Admin    bool
}

// Session is the server-side record backing a logged-in principal.
// The browser never sees the row itself, only a signed token whose ID
// refers back to it, so deleting the row revokes the login.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// SessionTokenIssuer signs a token binding the session ID to its principal.
type SessionTokenIssuer interface {
	Issue(sessionID string, principal Principal, expiry time.Duration) (string, error)
}

// SessionTokenVerifier checks a token's signature and expiry and returns
// the session ID and principal it was issued for.
type SessionTokenVerifier interface {
	Verify(token string) (sessionID string, principal Principal, err error)
}

// SessionRepository defines the interface for session storage.
// GetByID returns ErrInvalidSession for unknown or expired rows.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// AuthService defines the business logic for the session gate.
type AuthService interface {
	// Login verifies the submitted credentials and, on success, establishes
	// a session and returns its signed token. Returns ErrInvalidCredentials
	// for an unknown username or a wrong password.
	Login(ctx context.Context, username, password string) (string, error)
	// Principal resolves a token into its authenticated principal,
	// returning ErrInvalidSession when the token or its session is no
	// longer good.
	Principal(ctx context.Context, token string) (*Principal, error)
	// Logout destroys the session behind the token. A bad token is not an
	// error; there is nothing to destroy.
	Logout(ctx context.Context, token string) error
	// PurgeExpiredSessions removes expired session rows and reports how
	// many were deleted.
	PurgeExpiredSessions(ctx context.Context) (int64, error)
}
