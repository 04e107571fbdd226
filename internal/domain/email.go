package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// NewAccountEmailData holds data for the registration notice sent to the
// operator address when an account is created.
type NewAccountEmailData struct {
	Name     string
	Username string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendNewAccountNotice(ctx context.Context, data *NewAccountEmailData) error
}
