package services

import (
	"fmt"

	"github.com/mindhaven-org/backend/config"
	"github.com/mindhaven-org/backend/models"
	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Notifier sends an out-of-band alert when a visitor submits the contact
// form. Failures are logged and never surface to the submitter.
type Notifier interface {
	NotifyContactMessage(msg *models.ContactMessage)
}

// SMSNotifier texts a staff phone number through Twilio.
type SMSNotifier struct {
	client *twilio.RestClient
	from   string
	to     string
}

// NewNotifierFromConfig returns an SMS notifier when the Twilio settings
// are present, otherwise a no-op notifier.
func NewNotifierFromConfig(cfg map[string]string) Notifier {
	sid := config.GetString(cfg, "TWILIO_ACCOUNT_SID", "")
	token := config.GetString(cfg, "TWILIO_AUTH_TOKEN", "")
	from := config.GetString(cfg, "TWILIO_FROM_NUMBER", "")
	to := config.GetString(cfg, "CONTACT_NOTIFY_NUMBER", "")
	if sid == "" || token == "" || from == "" || to == "" {
		log.Info().Msg("Twilio settings not configured, contact notifications disabled")
		return noopNotifier{}
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: sid,
		Password: token,
	})
	return &SMSNotifier{client: client, from: from, to: to}
}

func (n *SMSNotifier) NotifyContactMessage(msg *models.ContactMessage) {
	subject := "(no subject)"
	if msg.Subject != nil && *msg.Subject != "" {
		subject = *msg.Subject
	}
	body := fmt.Sprintf("New contact message from %s <%s>: %s", msg.Name, msg.Email, subject)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(n.to)
	params.SetFrom(n.from)
	params.SetBody(body)

	if _, err := n.client.Api.CreateMessage(params); err != nil {
		log.Error().Err(err).Uint("messageId", msg.ID).Msg("Failed to send contact notification SMS")
		return
	}
	log.Debug().Uint("messageId", msg.ID).Msg("Sent contact notification SMS")
}

type noopNotifier struct{}

func (noopNotifier) NotifyContactMessage(*models.ContactMessage) {}
