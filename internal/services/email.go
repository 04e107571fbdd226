package services

import (
	"context"
	"fmt"
	"log/slog"

	"eventadmin/internal/domain"
)

type emailService struct {
	mailer     domain.Mailer
	renderer   domain.EmailTemplateRenderer
	adminEmail string
	logger     *slog.Logger
}

// NewEmailService returns an EmailService that sends operator notifications
// to adminEmail through the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, adminEmail string, logger *slog.Logger) domain.EmailService {
	return &emailService{
		mailer:     mailer,
		renderer:   renderer,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

// SendNewAccountNotice sends the registration notice using the
// "new_account" template.
func (s *emailService) SendNewAccountNotice(ctx context.Context, data *domain.NewAccountEmailData) error {
	if data == nil {
		return fmt.Errorf("new account data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("new_account", data)
	if err != nil {
		return fmt.Errorf("failed to render new_account template: %w", err)
	}
	if err := s.mailer.Send(s.adminEmail, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send new account notice: %w", err)
	}
	s.logger.Info("new account notice sent", "to", s.adminEmail, "username", data.Username)
	return nil
}
