package service

import (
	"context"
	"fmt"

	"propertypulse-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) send(ctx context.Context, to, toName, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	if htmlContent == "" {
		htmlContent = "<pre>" + plainText + "</pre>"
	}
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	logger.ExternalServiceCall("sendgrid", "Send", "to", to, "subject", subject)
	response, err := client.SendWithContext(ctx, message)
	logger.ExternalServiceResult("sendgrid", "Send", err)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *emailService) SendSignInLink(ctx context.Context, email, name, link string) error {
	subject := "Your PropertyPulse sign-in link"
	plainText := fmt.Sprintf("Hello %s,\n\nUse the link below to sign in to PropertyPulse:\n\n%s\n\nThe link can be used once.\n\nBest regards,\nThe PropertyPulse Team", name, link)
	htmlContent := fmt.Sprintf(`<p>Hello %s,</p><p>Use the link below to sign in to PropertyPulse:</p><p><a href="%s">Sign in</a></p><p>The link can be used once.</p>`, name, link)
	return s.send(ctx, email, name, subject, plainText, htmlContent)
}

func (s *emailService) SendAccountStatusNotification(ctx context.Context, email, name, status, reason string) error {
	subject := "Your PropertyPulse application status"
	body := fmt.Sprintf("Hello %s,\n\nYour application status has been updated to: %s.", name, status)
	if reason != "" {
		body += fmt.Sprintf("\n\nReason: %s", reason)
	}
	body += "\n\nBest regards,\nThe PropertyPulse Team"
	return s.send(ctx, email, name, subject, body, "")
}

func (s *emailService) SendContractExpiryReminder(ctx context.Context, email, name, propertyName, endDate string) error {
	subject := fmt.Sprintf("Contract for %s ends on %s", propertyName, endDate)
	body := fmt.Sprintf("Hello %s,\n\nThe rental contract for %s ends on %s. Please arrange a renewal or a move-out inspection.\n\nBest regards,\nThe PropertyPulse Team", name, propertyName, endDate)
	return s.send(ctx, email, name, subject, body, "")
}

func (s *emailService) SendEventReminder(ctx context.Context, email, name, title, scheduledOn string) error {
	subject := fmt.Sprintf("Reminder: %s", title)
	body := fmt.Sprintf("Hello %s,\n\nThis is a reminder for the upcoming event %q scheduled on %s.\n\nBest regards,\nThe PropertyPulse Team", name, title, scheduledOn)
	return s.send(ctx, email, name, subject, body, "")
}

func (s *emailService) SendPendingRequestsDigest(ctx context.Context, adminEmail string, pendingCount int) error {
	subject := "Pending join requests awaiting review"
	body := fmt.Sprintf("There are %d join requests waiting for review.\n\nBest regards,\nThe PropertyPulse Team", pendingCount)
	return s.send(ctx, adminEmail, "", subject, body, "")
}
