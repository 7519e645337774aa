package ics

import (
	"bytes"
	"fmt"
	"time"

	"github.com/emersion/go-ical"
)

// Invite describes a single tentative appointment sent alongside the
// confirmation-request email.
type Invite struct {
	UID           string
	Summary       string
	Description   string
	Location      string
	Start         time.Time
	End           time.Time
	AttendeeEmail string
	AttendeeName  string
}

// Encode renders the invite as an iCalendar REQUEST so mail clients offer
// an accept/decline flow.
func Encode(invite Invite) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//Termin//Appointments//EN")
	cal.Props.SetText(ical.PropMethod, "REQUEST")

	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, invite.UID)
	event.Props.SetDateTime(ical.PropDateTimeStamp, time.Now().UTC())
	event.Props.SetDateTime(ical.PropDateTimeStart, invite.Start.UTC())
	event.Props.SetDateTime(ical.PropDateTimeEnd, invite.End.UTC())
	event.Props.SetText(ical.PropSummary, invite.Summary)
	event.Props.SetText(ical.PropStatus, "TENTATIVE")

	if invite.Description != "" {
		event.Props.SetText(ical.PropDescription, invite.Description)
	}

	if invite.Location != "" {
		event.Props.SetText(ical.PropLocation, invite.Location)
	}

	if invite.AttendeeEmail != "" {
		attendee := ical.NewProp(ical.PropAttendee)
		attendee.Params.Set(ical.ParamParticipationStatus, "NEEDS-ACTION")

		if invite.AttendeeName != "" {
			attendee.Params.Set(ical.ParamCommonName, invite.AttendeeName)
		}

		attendee.Value = "mailto:" + invite.AttendeeEmail
		event.Props.Add(attendee)
	}

	cal.Children = append(cal.Children, event.Component)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("failed to encode calendar invite: %w", err)
	}

	return buf.Bytes(), nil
}
