package calendar

//go:generate go run go.uber.org/mock/mockgen -source=./calendar.go -destination=./mocks/calendar_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/jwt"

	"termin/config"
	"termin/infras/otel"
	"termin/shared/failure"
)

const (
	otelScopeName = "calendar"
	scopeEvents   = "https://www.googleapis.com/auth/calendar.events"

	breakerMaxRequests = 3
	breakerTimeout     = 60 * time.Second
	breakerThreshold   = 5
)

// Event is the time range and attendee handed to the external calendar.
type Event struct {
	Summary       string
	Description   string
	Location      string
	Start         time.Time
	End           time.Time
	AttendeeEmail string
	AttendeeName  string
}

// Calendar creates events in the operator's external calendar. Calls
// carry a hard timeout and run behind a circuit breaker so a slow or
// failing calendar API cannot stall confirmation handling.
type Calendar interface {
	CreateEvent(ctx context.Context, event Event) (string, error)
}

type googleCalendar struct {
	config  *config.Config
	otel    otel.Otel
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[string]
}

func New(cfg *config.Config, otl otel.Otel) Calendar {
	source := (&jwt.Config{
		Email:      cfg.External.Calendar.ClientEmail,
		PrivateKey: []byte(cfg.External.Calendar.PrivateKey),
		Scopes:     []string{scopeEvents},
		TokenURL:   cfg.External.Calendar.TokenURL,
	}).TokenSource(context.Background())

	client := &http.Client{
		Timeout: time.Duration(cfg.External.Calendar.TimeoutSeconds) * time.Second,
		Transport: &oauthTransport{
			base:   http.DefaultTransport,
			source: source,
		},
	}

	settings := gobreaker.Settings{
		Name:        otelScopeName,
		MaxRequests: breakerMaxRequests,
		Timeout:     breakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerThreshold
		},
	}

	return &googleCalendar{
		config:  cfg,
		otel:    otl,
		client:  client,
		breaker: gobreaker.NewCircuitBreaker[string](settings),
	}
}

type googleEvent struct {
	Summary     string `json:"summary"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Start       struct {
		DateTime string `json:"dateTime"`
	} `json:"start"`
	End struct {
		DateTime string `json:"dateTime"`
	} `json:"end"`
	Attendees []googleAttendee `json:"attendees,omitempty"`
}

type googleAttendee struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
}

func (cal *googleCalendar) CreateEvent(ctx context.Context, event Event) (eventID string, err error) {
	ctx, scope := cal.otel.NewScope(ctx, otelScopeName, otelScopeName+".CreateEvent")
	defer scope.End()
	defer scope.TraceIfError(err)

	eventID, err = cal.breaker.Execute(func() (string, error) {
		return cal.createEvent(ctx, event)
	})
	if err != nil {
		log.Error().Err(err).Str("summary", event.Summary).Msg("failed to create calendar event")

		return "", fmt.Errorf("%w: %v", failure.CalendarSyncFailure, err)
	}

	return eventID, nil
}

func (cal *googleCalendar) createEvent(ctx context.Context, event Event) (string, error) {
	payload := googleEvent{
		Summary:     event.Summary,
		Description: event.Description,
		Location:    event.Location,
	}
	payload.Start.DateTime = event.Start.Format(time.RFC3339)
	payload.End.DateTime = event.End.Format(time.RFC3339)

	if event.AttendeeEmail != "" {
		payload.Attendees = []googleAttendee{
			{Email: event.AttendeeEmail, DisplayName: event.AttendeeName},
		}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal calendar event: %w", err)
	}

	url := fmt.Sprintf("%s/calendars/%s/events", cal.config.External.Calendar.BaseURL, cal.config.External.Calendar.CalendarID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build calendar request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := cal.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("calendar request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return "", fmt.Errorf("calendar API returned %d: %s", resp.StatusCode, string(detail))
	}

	var created struct {
		ID string `json:"id"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("failed to decode calendar response: %w", err)
	}

	return created.ID, nil
}

type oauthTransport struct {
	base   http.RoundTripper
	source oauth2.TokenSource
}

func (t *oauthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.source.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to obtain calendar token: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	return t.base.RoundTrip(req) //nolint:wrapcheck
}
