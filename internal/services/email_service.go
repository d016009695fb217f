package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"atlantic-api/internal/logger"
)

const confirmationTemplate = `<p>Hi {{.Name}},</p>
<p>We received your application for <strong>{{.InternshipTitle}}</strong>.</p>
<p>Your application reference is <strong>{{.ApplicationID}}</strong>. Keep it handy for any follow-up.</p>
<p>Our team reviews applications on a rolling basis and will reach out over email.</p>
<p>The Atlantic Enterprise team</p>`

// EmailService sends applicant-facing mail through Resend.
type EmailService struct {
	client    *resend.Client
	logger    *zap.Logger
	fromEmail string
	fromName  string
	tmpl      *template.Template
}

// NewEmailService creates a new email service.
func NewEmailService(apiKey string, fromEmail string, fromName string) *EmailService {
	return &EmailService{
		client:    resend.NewClient(apiKey),
		logger:    logger.Log,
		fromEmail: fromEmail,
		fromName:  fromName,
		tmpl:      template.Must(template.New("confirmation").Parse(confirmationTemplate)),
	}
}

type confirmationData struct {
	Name            string
	InternshipTitle string
	ApplicationID   string
}

// SendApplicationConfirmation emails the applicant their reference after a
// successful submission.
func (s *EmailService) SendApplicationConfirmation(ctx context.Context, email, name, internshipTitle, applicationID string) error {
	if email == "" {
		return fmt.Errorf("recipient email is required")
	}

	var body bytes.Buffer
	if err := s.tmpl.Execute(&body, confirmationData{
		Name:            name,
		InternshipTitle: internshipTitle,
		ApplicationID:   applicationID,
	}); err != nil {
		return fmt.Errorf("failed to render confirmation email: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail),
		To:      []string{email},
		Subject: fmt.Sprintf("Application received - %s", internshipTitle),
		Html:    body.String(),
		Tags: []resend.Tag{
			{Name: "category", Value: "application_confirmation"},
		},
	}

	sent, err := s.client.Emails.Send(params)
	if err != nil {
		s.logger.Error("failed to send confirmation email",
			zap.Error(err),
			zap.String("to", email),
			zap.String("application_id", applicationID))
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("confirmation email sent",
		zap.String("email_id", sent.Id),
		zap.String("to", email),
		zap.String("application_id", applicationID))

	return nil
}
