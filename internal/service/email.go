package service

import (
	"context"
	"fmt"

	"clubreg-backend/internal/logger"

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

func (s *emailService) SendApprovalEmail(ctx context.Context, email, contactName, clubName, notes string) error {
	subject := fmt.Sprintf("Your club registration for %s has been approved", clubName)
	body := fmt.Sprintf("Hello %s,\n\nGood news: the registration request for %s has been approved and your club is now live on the platform.", contactName, clubName)
	if notes != "" {
		body += fmt.Sprintf("\n\nNote from the review team: %s", notes)
	}
	body += "\n\nBest regards,\nThe ClubReg Team"

	return s.send(ctx, email, contactName, subject, body)
}

func (s *emailService) SendRejectionEmail(ctx context.Context, email, contactName, clubName, reason string) error {
	subject := fmt.Sprintf("Update on your club registration for %s", clubName)
	body := fmt.Sprintf("Hello %s,\n\nUnfortunately the registration request for %s was not approved.\n\nReason: %s\n\nYou are welcome to submit a new application once the issue has been addressed.\n\nBest regards,\nThe ClubReg Team", contactName, clubName, reason)

	return s.send(ctx, email, contactName, subject, body)
}

func (s *emailService) send(ctx context.Context, to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	logger.ExternalServiceCall("sendgrid", "send", "to", to, "subject", subject)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "send", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "send", err)
		return err
	}

	logger.ExternalServiceResult("sendgrid", "send", nil, "status", response.StatusCode)
	return nil
}
