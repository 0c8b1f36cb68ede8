package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
	opsEmail  string
}

// NewEmailService creates the SendGrid-backed alert channel. opsEmail is the
// review inbox that receives study lifecycle alerts.
func NewEmailService(apiKey, fromEmail, fromName, opsEmail string) EmailService {
	return &sendGridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
		opsEmail:  opsEmail,
	}
}

func (s *sendGridEmailService) send(subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail("Study Review", s.opsEmail)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func (s *sendGridEmailService) SendStudyProposedAlert(ctx context.Context, studyTitle, proposerID string) error {
	subject := fmt.Sprintf("New study proposal: %s", studyTitle)
	body := fmt.Sprintf("A new study %q was proposed by %s and is awaiting review.", studyTitle, proposerID)
	return s.send(subject, body)
}

func (s *sendGridEmailService) SendStudyDecisionAlert(ctx context.Context, studyTitle, status string) error {
	subject := fmt.Sprintf("Study %s: %s", status, studyTitle)
	body := fmt.Sprintf("The study %q is now %s.", studyTitle, status)
	return s.send(subject, body)
}
