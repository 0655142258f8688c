package services

import (
	"fmt"

	"portfolio/internal/mailer"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// ContactInput is the public contact form.
type ContactInput struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Subject string `validate:"required"`
	Message string `validate:"required"`
}

// ContactService dispatches a visitor message as two emails: a notification
// to the operator and a confirmation to the sender. One best-effort attempt,
// no retry; if the operator notification fails the confirmation is not
// attempted.
type ContactService struct {
	mail      mailer.Mailer
	recipient string // operator inbox
	validate  *validator.Validate
	log       *logrus.Logger
}

// NewContactService creates a new ContactService.
func NewContactService(mail mailer.Mailer, recipient string, log *logrus.Logger) *ContactService {
	return &ContactService{
		mail:      mail,
		recipient: recipient,
		validate:  validator.New(),
		log:       log,
	}
}

// Send validates the form and dispatches both emails. Mail relay failures
// come back as errors for the caller to surface; they never panic.
func (s *ContactService) Send(in ContactInput) error {
	const op = "ContactService.Send"

	if err := validateInput(s.validate, op, in); err != nil {
		return err
	}

	notification := mailer.Message{
		To:      s.recipient,
		ReplyTo: in.Email,
		Subject: fmt.Sprintf("Portfolio Contact: %s", in.Subject),
		Body: fmt.Sprintf(`New message from your portfolio website:

Name: %s
Email: %s
Subject: %s

Message:
%s

---
This message was sent from your portfolio contact form.
`, in.Name, in.Email, in.Subject, in.Message),
	}
	if err := s.mail.Send(notification); err != nil {
		s.log.WithError(err).Warn("contact notification failed")
		return err
	}

	confirmation := mailer.Message{
		To:      in.Email,
		Subject: "Thank you for contacting me!",
		Body: fmt.Sprintf(`Dear %s,

Thank you for reaching out through my portfolio website. I have received
your message and will get back to you soon.

Your message:
Subject: %s
Message: %s

Best regards
`, in.Name, in.Subject, in.Message),
	}
	if err := s.mail.Send(confirmation); err != nil {
		s.log.WithError(err).Warn("contact confirmation failed")
		return err
	}

	return nil
}
