package dto

import (
	"time"

	"github.com/google/uuid"

	"termin/internal/domains/reservation/model"
	"termin/shared"
	"termin/shared/constant"
	gModel "termin/shared/model"
	"termin/shared/timezone"
)

type BookAppointmentRequest struct {
	Name                string `json:"name"                  validate:"required,max=100"`
	Email               string `json:"email"                 validate:"required,email,max=100"`
	Phone               string `json:"phone"                 validate:"omitempty,max=20"`
	AppointmentDateTime string `json:"appointment_date_time" validate:"required"`
}

func (c *BookAppointmentRequest) ToModel(tokenDigest string, now time.Time, holdHours int) (model.Reservation, error) {
	appointmentAt, err := time.Parse(time.RFC3339, c.AppointmentDateTime)
	if err != nil {
		return model.Reservation{}, err //nolint:wrapcheck
	}

	expiresAt := now.Add(time.Duration(holdHours) * time.Hour)

	return model.Reservation{
		ID:                  uuid.NewString(),
		Name:                c.Name,
		Email:               c.Email,
		Phone:               c.Phone,
		AppointmentDateTime: appointmentAt,
		SlotAt:              model.SlotFor(appointmentAt),
		Status:              model.StatusPending,
		ConfirmationToken:   tokenDigest,
		ExpiresAt:           &expiresAt,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  constant.ActorCustomer,
			ModifiedBy: constant.ActorCustomer,
		},
	}, nil
}

type BookAppointmentResponse struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	AppointmentAt string `json:"appointment_at"`
	ExpiresAt     string `json:"expires_at"`
	// Token travels only in the confirmation email; it is returned here
	// so the caller can build the confirm link and is never persisted
	// in clear text.
	Token string `json:"token"`
}

const (
	AdminActionConfirm = "confirm"
	AdminActionReject  = "reject"
)

type AdminActionRequest struct {
	Action string `json:"action" validate:"required,oneof=confirm reject"`
}

type AuditEntryResponse struct {
	OccurredAt string `json:"occurred_at"`
	Actor      string `json:"actor"`
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
	Note       string `json:"note,omitempty"`
}

func (r *AuditEntryResponse) FromModel(entry model.AuditEntry) {
	r.OccurredAt = entry.OccurredAt.Format(time.RFC3339)
	r.Actor = entry.Actor
	r.FromStatus = string(entry.FromStatus)
	r.ToStatus = string(entry.ToStatus)
	r.Note = entry.Note
}

type ReservationSnapshot struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	Email           string               `json:"email"`
	Phone           string               `json:"phone,omitempty"`
	AppointmentAt   string               `json:"appointment_at"`
	Status          string               `json:"status"`
	ExpiresAt       string               `json:"expires_at,omitempty"`
	CalendarEventID string               `json:"calendar_event_id,omitempty"`
	ReminderSentAt  string               `json:"reminder_sent_at,omitempty"`
	Audit           []AuditEntryResponse `json:"audit"`
}

func (r *ReservationSnapshot) FromModel(res model.Reservation, audit []model.AuditEntry) {
	r.ID = res.ID
	r.Name = res.Name
	r.Email = res.Email
	r.Phone = res.Phone
	r.AppointmentAt = res.AppointmentDateTime.Format(time.RFC3339)
	r.Status = string(res.Status)

	if res.ExpiresAt != nil {
		r.ExpiresAt = res.ExpiresAt.Format(time.RFC3339)
	}

	r.CalendarEventID = res.CalendarEventID

	if res.ReminderSentAt != nil {
		r.ReminderSentAt = res.ReminderSentAt.Format(time.RFC3339)
	}

	r.Audit = make([]AuditEntryResponse, len(audit))
	for i, entry := range audit {
		r.Audit[i].FromModel(entry)
	}
}

type GetReservationsResponse struct {
	Reservations []ReservationSnapshot `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationSnapshot, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod, nil)
	}
}

type SweepFailure struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

type SweepSummary struct {
	Expired       int            `json:"expired"`
	RemindersSent int            `json:"reminders_sent"`
	Failures      []SweepFailure `json:"failures"`
}

// LifecycleEvent is the message published after every committed
// transition so downstream consumers (operator dashboard, analytics)
// can follow reservation state without polling.
type LifecycleEvent struct {
	InquiryID     string `json:"inquiry_id"`
	FromStatus    string `json:"from_status"`
	ToStatus      string `json:"to_status"`
	Actor         string `json:"actor"`
	AppointmentAt string `json:"appointment_at"`
	OccurredAt    string `json:"occurred_at"`
}
