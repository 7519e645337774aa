package dto_test

import (
	"testing"
	"time"

	"termin/internal/domains/reservation/model"
	"termin/internal/domains/reservation/model/dto"
	"termin/shared/constant"

	"github.com/stretchr/testify/assert"
)

func TestBookAppointmentRequest_ToModel(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	appointment := now.Add(72 * time.Hour)

	req := dto.BookAppointmentRequest{
		Name:                "Max Mustermann",
		Email:               "max@example.test",
		Phone:               "+49 170 1234567",
		AppointmentDateTime: appointment.Format(time.RFC3339),
	}

	reservation, err := req.ToModel("digest", now, 24)

	assert.NoError(t, err)
	assert.NotEmpty(t, reservation.ID, "expected ID to be generated")
	assert.Equal(t, req.Name, reservation.Name)
	assert.Equal(t, req.Email, reservation.Email)
	assert.Equal(t, model.StatusPending, reservation.Status)
	assert.Equal(t, "digest", reservation.ConfirmationToken)
	assert.True(t, appointment.Equal(reservation.AppointmentDateTime))
	assert.True(t, appointment.Truncate(model.SlotGranularity).Equal(reservation.SlotAt))
	assert.NotNil(t, reservation.ExpiresAt)
	assert.True(t, now.Add(24*time.Hour).Equal(*reservation.ExpiresAt))
	assert.Equal(t, constant.ActorCustomer, reservation.CreatedBy)
}

func TestBookAppointmentRequest_ToModel_InvalidDate(t *testing.T) {
	req := dto.BookAppointmentRequest{
		Name:                "Max Mustermann",
		Email:               "max@example.test",
		AppointmentDateTime: "10.03.2026 09:30",
	}

	_, err := req.ToModel("digest", time.Now(), 24)

	assert.Error(t, err)
}

func TestReservationSnapshot_FromModel(t *testing.T) {
	expiry := time.Date(2026, 3, 11, 9, 30, 0, 0, time.UTC)
	reservation := model.Reservation{
		ID:                  "res-1",
		Name:                "Max Mustermann",
		Email:               "max@example.test",
		AppointmentDateTime: expiry.Add(48 * time.Hour),
		Status:              model.StatusConfirmed,
		ExpiresAt:           &expiry,
		CalendarEventID:     "evt-1",
	}

	audit := []model.AuditEntry{
		{
			OccurredAt: expiry.Add(-time.Hour),
			Actor:      constant.ActorCustomer,
			FromStatus: model.StatusNone,
			ToStatus:   model.StatusPending,
		},
		{
			OccurredAt: expiry.Add(-time.Minute),
			Actor:      constant.ActorCustomer,
			FromStatus: model.StatusPending,
			ToStatus:   model.StatusConfirmed,
		},
	}

	var snapshot dto.ReservationSnapshot
	snapshot.FromModel(reservation, audit)

	assert.Equal(t, "res-1", snapshot.ID)
	assert.Equal(t, string(model.StatusConfirmed), snapshot.Status)
	assert.Equal(t, "evt-1", snapshot.CalendarEventID)
	assert.Equal(t, expiry.Format(time.RFC3339), snapshot.ExpiresAt)
	assert.Empty(t, snapshot.ReminderSentAt)
	assert.Len(t, snapshot.Audit, 2)
	assert.Equal(t, string(model.StatusPending), snapshot.Audit[0].ToStatus)
	assert.Equal(t, string(model.StatusConfirmed), snapshot.Audit[1].ToStatus)
}

func TestGetReservationsResponse_FromModels(t *testing.T) {
	models := []model.Reservation{
		{ID: "res-1", Status: model.StatusPending},
		{ID: "res-2", Status: model.StatusExpired},
	}

	var res dto.GetReservationsResponse
	res.FromModels(models, 12, 5)

	assert.Equal(t, 12, res.TotalData)
	assert.Equal(t, 3, res.TotalPage)
	assert.Len(t, res.Reservations, 2)
	assert.Equal(t, "res-2", res.Reservations[1].ID)
}
