package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"termin/config"
	"termin/infras/otel"
	"termin/shared/failure"
	"termin/shared/timezone"
)

const (
	otelScopeName = "mailer"

	appointmentTimeFormat = "02.01.2006 15:04"
)

// ConfirmationRequest is the hold email sent right after booking. It
// carries the single-use confirm link and the uploaded invite file.
type ConfirmationRequest struct {
	Name          string
	Email         string
	AppointmentAt time.Time
	ExpiresAt     time.Time
	ConfirmURL    string
	InviteURL     string
}

type Reminder struct {
	Name          string
	Email         string
	AppointmentAt time.Time
	ExpiresAt     time.Time
	StatusURL     string
}

type Confirmation struct {
	Name          string
	Email         string
	AppointmentAt time.Time
}

type Rejection struct {
	Name          string
	Email         string
	AppointmentAt time.Time
}

// Mailer delivers the lifecycle emails through the platform's mail
// service. Template rendering and delivery retries live on the other
// side of the API; this client only posts the message.
type Mailer interface {
	SendConfirmationRequest(ctx context.Context, req ConfirmationRequest) error
	SendReminder(ctx context.Context, req Reminder) error
	SendConfirmation(ctx context.Context, req Confirmation) error
	SendRejection(ctx context.Context, req Rejection) error
}

type mailerImpl struct {
	config *config.Config
	otel   otel.Otel
	client *http.Client
}

func New(cfg *config.Config, otl otel.Otel) Mailer {
	return &mailerImpl{
		config: cfg,
		otel:   otl,
		client: &http.Client{
			Timeout: time.Duration(cfg.External.Mailer.TimeoutSeconds) * time.Second,
		},
	}
}

type message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

func (m *mailerImpl) SendConfirmationRequest(ctx context.Context, req ConfirmationRequest) (err error) {
	ctx, scope := m.otel.NewScope(ctx, otelScopeName, otelScopeName+".SendConfirmationRequest")
	defer scope.End()
	defer scope.TraceIfError(err)

	body := fmt.Sprintf(
		"Hallo %s,\n\n"+
			"vielen Dank für Ihre Terminanfrage. Wir haben den Termin am %s für Sie reserviert.\n\n"+
			"Bitte bestätigen Sie Ihren Termin bis %s über den folgenden Link, andernfalls wird der reservierte Zeitslot automatisch wieder freigegeben:\n\n%s\n\n"+
			"Kalendereintrag (ICS): %s\n",
		req.Name,
		timezone.Format(req.AppointmentAt, appointmentTimeFormat),
		timezone.Format(req.ExpiresAt, appointmentTimeFormat),
		req.ConfirmURL,
		req.InviteURL,
	)

	return m.send(ctx, req.Email, "Terminanfrage erhalten - bitte bestätigen", body)
}

func (m *mailerImpl) SendReminder(ctx context.Context, req Reminder) (err error) {
	ctx, scope := m.otel.NewScope(ctx, otelScopeName, otelScopeName+".SendReminder")
	defer scope.End()
	defer scope.TraceIfError(err)

	remaining := time.Until(req.ExpiresAt).Round(time.Minute)

	body := fmt.Sprintf(
		"Hallo %s,\n\n"+
			"dies ist eine freundliche Erinnerung: Ihre Terminanfrage für den %s muss innerhalb der nächsten Stunde bestätigt werden, andernfalls wird der reservierte Zeitslot automatisch freigegeben.\n\n"+
			"Bitte nutzen Sie dazu den Bestätigungslink aus unserer ersten E-Mail. Den aktuellen Status finden Sie hier: %s\n",
		req.Name,
		timezone.Format(req.AppointmentAt, appointmentTimeFormat),
		req.StatusURL,
	)

	subject := fmt.Sprintf("Erinnerung: Termin läuft in %dh %dmin ab", int(remaining.Hours()), int(remaining.Minutes())%60)

	return m.send(ctx, req.Email, subject, body)
}

func (m *mailerImpl) SendConfirmation(ctx context.Context, req Confirmation) (err error) {
	ctx, scope := m.otel.NewScope(ctx, otelScopeName, otelScopeName+".SendConfirmation")
	defer scope.End()
	defer scope.TraceIfError(err)

	body := fmt.Sprintf(
		"Hallo %s,\n\n"+
			"Ihr Termin am %s ist bestätigt und wurde in unseren Kalender eingetragen. Wir freuen uns auf Sie!\n",
		req.Name,
		timezone.Format(req.AppointmentAt, appointmentTimeFormat),
	)

	return m.send(ctx, req.Email, "Terminbestätigung", body)
}

func (m *mailerImpl) SendRejection(ctx context.Context, req Rejection) (err error) {
	ctx, scope := m.otel.NewScope(ctx, otelScopeName, otelScopeName+".SendRejection")
	defer scope.End()
	defer scope.TraceIfError(err)

	body := fmt.Sprintf(
		"Hallo %s,\n\n"+
			"leider können wir Ihre Terminanfrage für den %s nicht bestätigen. Bitte wählen Sie einen anderen Zeitpunkt oder kontaktieren Sie uns direkt.\n",
		req.Name,
		timezone.Format(req.AppointmentAt, appointmentTimeFormat),
	)

	return m.send(ctx, req.Email, "Ihre Terminanfrage", body)
}

func (m *mailerImpl) send(ctx context.Context, to, subject, text string) error {
	payload, err := json.Marshal(message{
		From:    m.config.External.Mailer.FromAddress,
		To:      []string{to},
		Subject: subject,
		Text:    text,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal mail payload: %w", err)
	}

	url := m.config.External.Mailer.BaseURL + "/emails"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build mail request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+m.config.External.Mailer.APIKey)

	resp, err := m.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("to", to).Str("subject", subject).Msg("failed to send mail")

		return fmt.Errorf("%w: %v", failure.NotifierFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Error().Int("status", resp.StatusCode).Str("to", to).Str("subject", subject).Msg("mail service rejected message")

		return fmt.Errorf("%w: mail service returned %d: %s", failure.NotifierFailure, resp.StatusCode, string(detail))
	}

	log.Info().Str("to", to).Str("subject", subject).Msg("mail sent")

	return nil
}
