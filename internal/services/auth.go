package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"eventadmin/internal/domain"
)

type authService struct {
	userRepo    domain.UserRepository
	sessionRepo domain.SessionRepository
	hasher      domain.PasswordHasher
	issuer      domain.SessionTokenIssuer
	verifier    domain.SessionTokenVerifier
	sessionTTL  time.Duration
}

// NewAuthService creates an AuthService with the given repositories and
// credential/token ports.
func NewAuthService(userRepo domain.UserRepository, sessionRepo domain.SessionRepository, hasher domain.PasswordHasher, issuer domain.SessionTokenIssuer, verifier domain.SessionTokenVerifier, sessionTTL time.Duration) domain.AuthService {
	return &authService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		issuer:      issuer,
		verifier:    verifier,
		sessionTTL:  sessionTTL,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return "", domain.ErrInvalidCredentials
	}

	sessionID, err := newSessionID()
	if err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	now := time.Now()
	session := &domain.Session{
		ID:        sessionID,
		UserID:    user.ID,
		ExpiresAt: now.Add(s.sessionTTL),
		CreatedAt: now,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	principal := domain.Principal{UserID: user.ID, Username: user.Username, Admin: user.Admin}
	token, err := s.issuer.Issue(sessionID, principal, s.sessionTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, nil
}

func (s *authService) Principal(ctx context.Context, token string) (*domain.Principal, error) {
	sessionID, principal, err := s.verifier.Verify(token)
	if err != nil {
		return nil, domain.ErrInvalidSession
	}
	// The row check makes logout effective before the token expires.
	if _, err := s.sessionRepo.GetByID(ctx, sessionID); err != nil {
		if errors.Is(err, domain.ErrInvalidSession) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return &principal, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	sessionID, _, err := s.verifier.Verify(token)
	if err != nil {
		return nil
	}
	if err := s.sessionRepo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (s *authService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	return s.sessionRepo.DeleteExpired(ctx)
}

func newSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
