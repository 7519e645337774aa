package model

import (
	"time"

	"termin/shared/model"
)

const (
	TableName      = "customer_inquiries"
	AuditTableName = "reservation_audit"
	EntityName     = "reservation"

	FieldID                  = "id"
	FieldName                = "name"
	FieldEmail               = "email"
	FieldPhone               = "phone"
	FieldAppointmentDateTime = "appointment_date_time"
	FieldSlotAt              = "slot_at"
	FieldStatus              = "appointment_status"
	FieldConfirmationToken   = "confirmation_token"
	FieldExpiresAt           = "appointment_expires_at"
	FieldCalendarEventID     = "calendar_event_id"
	FieldReminderSentAt      = "reminder_sent_at"
)

// Status is the appointment lifecycle state. CONFIRMED, CANCELLED and
// EXPIRED are terminal.
type Status string

const (
	StatusNone      Status = "NONE"
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusExpired   Status = "EXPIRED"
)

func (s Status) Terminal() bool {
	return s == StatusConfirmed || s == StatusCancelled || s == StatusExpired
}

// SlotGranularity is the bucket size two appointment times are compared
// within for double-booking purposes.
const SlotGranularity = time.Hour

// SlotFor maps an appointment instant onto its slot key.
func SlotFor(t time.Time) time.Time {
	return t.UTC().Truncate(SlotGranularity)
}

type Reservation struct {
	ID                  string     `db:"id"`
	Name                string     `db:"name"`
	Email               string     `db:"email"`
	Phone               string     `db:"phone"`
	AppointmentDateTime time.Time  `db:"appointment_date_time"`
	SlotAt              time.Time  `db:"slot_at"`
	Status              Status     `db:"appointment_status"`
	ConfirmationToken   string     `db:"confirmation_token"`
	ExpiresAt           *time.Time `db:"appointment_expires_at"`
	CalendarEventID     string     `db:"calendar_event_id"`
	ReminderSentAt      *time.Time `db:"reminder_sent_at"`
	model.Metadata
}

// AuditEntry is one append-only record of a reservation transition.
// Replaces free-text admin notes so history can be queried and tested.
type AuditEntry struct {
	ID         string    `db:"id"`
	InquiryID  string    `db:"inquiry_id"`
	OccurredAt time.Time `db:"occurred_at"`
	Actor      string    `db:"actor"`
	FromStatus Status    `db:"from_status"`
	ToStatus   Status    `db:"to_status"`
	Note       string    `db:"note"`
}
