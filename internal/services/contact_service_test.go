package services_test

import (
	"testing"

	"portfolio/internal/apperr"
	"portfolio/internal/logger"
	"portfolio/internal/mailer"
	"portfolio/internal/services"

	"github.com/stretchr/testify/assert"
)

// recordingMailer captures outgoing messages and can be told to fail.
type recordingMailer struct {
	sent  []mailer.Message
	calls int
	err   error
}

func (m *recordingMailer) Send(msg mailer.Message) error {
	m.calls++
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func validContact() services.ContactInput {
	return services.ContactInput{
		Name:    "Jordan",
		Email:   "jordan@example.com",
		Subject: "Freelance work",
		Message: "Are you available next month?",
	}
}

func TestContactService_Send(t *testing.T) {
	mail := &recordingMailer{}
	service := services.NewContactService(mail, "owner@example.com", logger.New("error"))

	err := service.Send(validContact())

	assert.NoError(t, err)
	assert.Len(t, mail.sent, 2)

	notification := mail.sent[0]
	assert.Equal(t, "owner@example.com", notification.To)
	assert.Equal(t, "jordan@example.com", notification.ReplyTo)
	assert.Equal(t, "Portfolio Contact: Freelance work", notification.Subject)
	assert.Contains(t, notification.Body, "Are you available next month?")

	confirmation := mail.sent[1]
	assert.Equal(t, "jordan@example.com", confirmation.To)
	assert.Equal(t, "Thank you for contacting me!", confirmation.Subject)
	assert.Contains(t, confirmation.Body, "Dear Jordan")
}

func TestContactService_Send_RelayFailure(t *testing.T) {
	mail := &recordingMailer{err: apperr.E(apperr.CodeUnavailable, "test", "relay down", nil)}
	service := services.NewContactService(mail, "owner@example.com", logger.New("error"))

	err := service.Send(validContact())

	assert.True(t, apperr.IsCode(err, apperr.CodeUnavailable))
	// Nothing went out and the confirmation was never attempted.
	assert.Empty(t, mail.sent)
	assert.Equal(t, 1, mail.calls)
}

func TestContactService_Send_Invalid(t *testing.T) {
	mail := &recordingMailer{}
	service := services.NewContactService(mail, "owner@example.com", logger.New("error"))

	in := validContact()
	in.Email = "not-an-email"

	err := service.Send(in)

	assert.True(t, apperr.IsCode(err, apperr.CodeInvalidArgument))
	assert.Empty(t, mail.sent)
}
