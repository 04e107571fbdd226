package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"eventadmin/internal/domain"
	"eventadmin/internal/sanitize"
)

type userService struct {
	userRepo domain.UserRepository
	hasher   domain.PasswordHasher
	emails   domain.EmailService // nil when no operator address is configured
	logger   *slog.Logger
}

// NewUserService creates a UserService with the given repository, hasher,
// and optional notification email service.
func NewUserService(userRepo domain.UserRepository, hasher domain.PasswordHasher, emails domain.EmailService, logger *slog.Logger) domain.UserService {
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
		emails:   emails,
		logger:   logger,
	}
}

// Register creates an account when the username is free and the two
// submitted passwords match. Every failure collapses into
// ErrRegistrationConflict; the registration view shows one generic message
// with no field-level detail.
func (s *userService) Register(ctx context.Context, name, username, password, confirm string) (*domain.User, error) {
	name = sanitize.Text(strings.TrimSpace(name))
	username = sanitize.Text(strings.TrimSpace(username))

	if username == "" || password == "" || password != confirm {
		return nil, domain.ErrRegistrationConflict
	}

	if _, err := s.userRepo.GetByUsername(ctx, username); err == nil {
		return nil, domain.ErrRegistrationConflict
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up username: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.NewUser(name, username, hash, now, now)
	if err := s.userRepo.Create(ctx, user); err != nil {
		// A concurrent registration can win the race past the lookup; the
		// unique constraint reports it as the same conflict.
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return nil, domain.ErrRegistrationConflict
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if s.emails != nil {
		data := &domain.NewAccountEmailData{Name: user.Name, Username: user.Username}
		if err := s.emails.SendNewAccountNotice(ctx, data); err != nil {
			s.logger.Warn("failed to send new account notice", "username", user.Username, "err", err)
		}
	}
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
