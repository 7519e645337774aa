package ics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termin/shared/ics"
)

func TestEncode(t *testing.T) {
	start := time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC)

	payload, err := ics.Encode(ics.Invite{
		UID:           "inquiry-123",
		Summary:       "Beratungstermin",
		Description:   "Beratung zur Konfiguration",
		Location:      "Karmeliterplatz 8, 8010 Graz",
		Start:         start,
		End:           start.Add(time.Hour),
		AttendeeEmail: "kunde@example.com",
		AttendeeName:  "Max Mustermann",
	})
	require.NoError(t, err)

	body := string(payload)
	assert.Contains(t, body, "BEGIN:VCALENDAR")
	assert.Contains(t, body, "METHOD:REQUEST")
	assert.Contains(t, body, "UID:inquiry-123")
	assert.Contains(t, body, "SUMMARY:Beratungstermin")
	assert.Contains(t, body, "DTSTART:20250602T140000Z")
	assert.Contains(t, body, "STATUS:TENTATIVE")
	assert.Contains(t, body, "mailto:kunde@example.com")
	assert.Contains(t, body, "END:VCALENDAR")
}

func TestEncode_OptionalFieldsOmitted(t *testing.T) {
	start := time.Date(2025, 6, 2, 14, 0, 0, 0, time.UTC)

	payload, err := ics.Encode(ics.Invite{
		UID:     "inquiry-456",
		Summary: "Beratungstermin",
		Start:   start,
		End:     start.Add(time.Hour),
	})
	require.NoError(t, err)

	body := string(payload)
	assert.NotContains(t, body, "LOCATION")
	assert.NotContains(t, body, "ATTENDEE")
}
