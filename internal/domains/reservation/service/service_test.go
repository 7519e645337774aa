package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"termin/config"
	calendarMocks "termin/infras/calendar/mocks"
	kafkaMocks "termin/infras/kafka/mocks"
	mailerMocks "termin/infras/mailer/mocks"
	otelMocks "termin/infras/otel/mocks"
	s3Mocks "termin/infras/s3/mocks"
	"termin/internal/domains/reservation/mocks"
	"termin/internal/domains/reservation/model"
	"termin/internal/domains/reservation/model/dto"
	"termin/internal/domains/reservation/service"
	cacheMocks "termin/shared/cache/mocks"
	"termin/shared/failure"
	"termin/shared/token"
)

type fixture struct {
	repo     *mocks.MockReservation
	cache    *cacheMocks.MockRedisCache
	calendar *calendarMocks.MockCalendar
	mailer   *mailerMocks.MockMailer
	storage  *s3Mocks.MockS3
	broker   *kafkaMocks.MockClient
	svc      service.Reservation
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.App.BaseURL = "https://example.test"
	cfg.Appointment.HoldHours = 24
	cfg.Appointment.ReminderLeadMin = 60
	cfg.Appointment.DurationMin = 60
	cfg.Appointment.StatusPagePath = "/termine/status"
	cfg.Appointment.SweepBatchLimit = 200
	cfg.Cache.TTL = 300
	cfg.Kafka.LifecycleTopic = "reservation.lifecycle"

	f := &fixture{
		repo:     mocks.NewMockReservation(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		calendar: calendarMocks.NewMockCalendar(ctrl),
		mailer:   mailerMocks.NewMockMailer(ctrl),
		storage:  s3Mocks.NewMockS3(ctrl),
		broker:   kafkaMocks.NewMockClient(ctrl),
	}

	// Cache invalidation and event publishing run on detached
	// goroutines; they may or may not land before the test finishes.
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.broker.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.repo, cfg, f.cache, otelMocks.NewOtel(), f.calendar, f.mailer, f.storage, f.broker)

	return f
}

func pendingReservation(id string, digest string, expiresIn time.Duration) model.Reservation {
	expiry := time.Now().Add(expiresIn)
	appointment := time.Now().Add(5 * 24 * time.Hour)

	return model.Reservation{
		ID:                  id,
		Name:                "Max Mustermann",
		Email:               "max@example.test",
		AppointmentDateTime: appointment,
		SlotAt:              model.SlotFor(appointment),
		Status:              model.StatusPending,
		ConfirmationToken:   digest,
		ExpiresAt:           &expiry,
	}
}

func TestReservationService_Book(t *testing.T) {
	future := time.Now().Add(3 * 24 * time.Hour).Format(time.RFC3339)

	tests := []struct {
		name      string
		req       dto.BookAppointmentRequest
		setupMock func(f *fixture)
		wantErr   error
	}{
		{
			name: "successful booking",
			req: dto.BookAppointmentRequest{
				Name:                "Max Mustermann",
				Email:               "max@example.test",
				AppointmentDateTime: future,
			},
			setupMock: func(f *fixture) {
				f.repo.EXPECT().CreatePending(gomock.Any(), gomock.Any()).Return(nil)
				f.repo.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(nil)
				f.storage.EXPECT().
					UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn.example.test/invites/x.ics", nil)
				f.mailer.EXPECT().SendConfirmationRequest(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "slot already confirmed",
			req: dto.BookAppointmentRequest{
				Name:                "Max Mustermann",
				Email:               "max@example.test",
				AppointmentDateTime: future,
			},
			setupMock: func(f *fixture) {
				f.repo.EXPECT().CreatePending(gomock.Any(), gomock.Any()).Return(failure.SlotTaken)
			},
			wantErr: failure.SlotTaken,
		},
		{
			name: "appointment in the past",
			req: dto.BookAppointmentRequest{
				Name:                "Max Mustermann",
				Email:               "max@example.test",
				AppointmentDateTime: time.Now().Add(-time.Hour).Format(time.RFC3339),
			},
			setupMock: func(f *fixture) {},
			wantErr:   failure.PastDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Book(context.Background(), tt.req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.NotEmpty(t, res.Token)
			assert.Equal(t, string(model.StatusPending), res.Status)
		})
	}
}

func TestReservationService_Book_MailFailureKeepsHold(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().CreatePending(gomock.Any(), gomock.Any()).Return(nil)
	f.repo.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(nil)
	f.storage.EXPECT().
		UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", assert.AnError)
	f.mailer.EXPECT().SendConfirmationRequest(gomock.Any(), gomock.Any()).Return(failure.NotifierFailure)

	req := dto.BookAppointmentRequest{
		Name:                "Max Mustermann",
		Email:               "max@example.test",
		AppointmentDateTime: time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	}

	res, err := f.svc.Book(context.Background(), req)

	assert.ErrorIs(t, err, failure.NotifierFailure)
	// The hold is committed; the caller still receives the reservation.
	assert.NotEmpty(t, res.ID)
	assert.NotEmpty(t, res.Token)
}

func TestReservationService_ConfirmByToken(t *testing.T) {
	raw, digest, err := token.Issue()
	require.NoError(t, err)

	t.Run("valid token confirms and creates calendar event", func(t *testing.T) {
		f := newFixture(t)
		reservation := pendingReservation("res-1", digest, 2*time.Hour)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation, nil)
		f.repo.EXPECT().
			Transition(gomock.Any(), "res-1", model.StatusPending, model.StatusConfirmed, gomock.Any()).
			Return(true, nil)
		f.repo.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(nil)
		f.calendar.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Return("evt-1", nil)
		f.repo.EXPECT().SetCalendarEventID(gomock.Any(), "res-1", "evt-1").Return(nil)
		f.mailer.EXPECT().SendConfirmation(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		eventID, err := f.svc.ConfirmByToken(context.Background(), "res-1", raw)

		assert.NoError(t, err)
		assert.Equal(t, "evt-1", eventID)
	})

	t.Run("wrong token is rejected without a write", func(t *testing.T) {
		f := newFixture(t)
		reservation := pendingReservation("res-1", digest, 2*time.Hour)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation, nil)

		_, err := f.svc.ConfirmByToken(context.Background(), "res-1", "not-the-token")

		assert.ErrorIs(t, err, failure.InvalidToken)
	})

	t.Run("missing parameters are rejected", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.ConfirmByToken(context.Background(), "", "")

		assert.ErrorIs(t, err, failure.InvalidToken)
	})

	t.Run("unknown id maps to invalid token", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Reservation{}, nil)

		_, err := f.svc.ConfirmByToken(context.Background(), "missing", raw)

		assert.ErrorIs(t, err, failure.InvalidToken)
	})

	t.Run("expired hold is lazily expired", func(t *testing.T) {
		f := newFixture(t)
		reservation := pendingReservation("res-1", digest, -time.Minute)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation, nil)
		f.repo.EXPECT().
			Transition(gomock.Any(), "res-1", model.StatusPending, model.StatusExpired, gomock.Any()).
			Return(true, nil)
		f.repo.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.svc.ConfirmByToken(context.Background(), "res-1", raw)

		assert.ErrorIs(t, err, failure.Expired)
	})

	t.Run("second confirm is idempotent and makes no calendar call", func(t *testing.T) {
		f := newFixture(t)
		reservation := pendingReservation("res-1", digest, 2*time.Hour)
		reservation.Status = model.StatusConfirmed
		reservation.ConfirmationToken = ""

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation, nil)

		_, err := f.svc.ConfirmByToken(context.Background(), "res-1", raw)

		assert.ErrorIs(t, err, failure.AlreadyConfirmed)
	})

	t.Run("losing the race reports the winner's state", func(t *testing.T) {
		f := newFixture(t)
		reservation := pendingReservation("res-1", digest, 2*time.Hour)

		cancelled := reservation
		cancelled.Status = model.StatusCancelled

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation, nil)
		f.repo.EXPECT().
			Transition(gomock.Any(), "res-1", model.StatusPending, model.StatusConfirmed, gomock.Any()).
			Return(false, nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cancelled, nil)

		_, err := f.svc.ConfirmByToken(context.Background(), "res-1", raw)

		assert.ErrorIs(t, err, failure.AlreadyCancelled)
	})

	t.Run("calendar failure does not roll back the confirmation", func(t *testing.T) {
		f := newFixture(t)
		reservation := pendingReservation("res-1", digest, 2*time.Hour)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation, nil)
		f.repo.EXPECT().
			Transition(gomock.Any(), "res-1", model.StatusPending, model.StatusConfirmed, gomock.Any()).
			Return(true, nil)
		f.repo.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(nil)
		f.calendar.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Return("", failure.CalendarSyncFailure)
		f.mailer.EXPECT().SendConfirmation(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		_, err := f.svc.ConfirmByToken(context.Background(), "res-1", raw)

		assert.ErrorIs(t, err, failure.CalendarSyncFailure)
	})
}

func TestReservationService_ConfirmByAdmin(t *testing.T) {
	f := newFixture(t)
	reservation := pendingReservation("res-2", "some-digest", 2*time.Hour)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation, nil)
	f.repo.EXPECT().
		Transition(gomock.Any(), "res-2", model.StatusPending, model.StatusConfirmed, gomock.Any()).
		Return(true, nil)
	f.repo.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(nil)
	f.calendar.EXPECT().CreateEvent(gomock.Any(), gomock.Any()).Return("evt-2", nil)
	f.repo.EXPECT().SetCalendarEventID(gomock.Any(), "res-2", "evt-2").Return(nil)
	f.mailer.EXPECT().SendConfirmation(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	eventID, err := f.svc.ConfirmByAdmin(context.Background(), "res-2")

	assert.NoError(t, err)
	assert.Equal(t, "evt-2", eventID)
}

func TestReservationService_RejectByAdmin(t *testing.T) {
	t.Run("pending reservation is cancelled", func(t *testing.T) {
		f := newFixture(t)
		reservation := pendingReservation("res-3", "digest", 2*time.Hour)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation, nil)
		f.repo.EXPECT().
			Transition(gomock.Any(), "res-3", model.StatusPending, model.StatusCancelled, gomock.Any()).
			Return(true, nil)
		f.repo.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(nil)
		f.mailer.EXPECT().SendRejection(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		assert.NoError(t, f.svc.RejectByAdmin(context.Background(), "res-3"))
	})

	t.Run("confirmed reservation cannot be rejected", func(t *testing.T) {
		f := newFixture(t)
		reservation := pendingReservation("res-3", "", 2*time.Hour)
		reservation.Status = model.StatusConfirmed

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation, nil)

		err := f.svc.RejectByAdmin(context.Background(), "res-3")

		assert.ErrorIs(t, err, failure.AlreadyConfirmed)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Reservation{}, nil)

		err := f.svc.RejectByAdmin(context.Background(), "missing")

		assert.ErrorIs(t, err, failure.ReservationNotFound)
	})
}

func TestReservationService_SweepExpire(t *testing.T) {
	t.Run("overdue hold expires", func(t *testing.T) {
		f := newFixture(t)
		reservation := pendingReservation("res-4", "digest", -time.Hour)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation, nil)
		f.repo.EXPECT().
			Transition(gomock.Any(), "res-4", model.StatusPending, model.StatusExpired, gomock.Any()).
			Return(true, nil)
		f.repo.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, f.svc.SweepExpire(context.Background(), "res-4"))
	})

	t.Run("hold that is not due yet", func(t *testing.T) {
		f := newFixture(t)
		reservation := pendingReservation("res-4", "digest", 2*time.Hour)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation, nil)

		err := f.svc.SweepExpire(context.Background(), "res-4")

		assert.ErrorIs(t, err, failure.NotYetDue)
	})

	t.Run("row already confirmed by another actor", func(t *testing.T) {
		f := newFixture(t)
		reservation := pendingReservation("res-4", "digest", -time.Hour)
		confirmed := reservation
		confirmed.Status = model.StatusConfirmed

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation, nil)
		f.repo.EXPECT().
			Transition(gomock.Any(), "res-4", model.StatusPending, model.StatusExpired, gomock.Any()).
			Return(false, nil)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmed, nil)

		err := f.svc.SweepExpire(context.Background(), "res-4")

		assert.ErrorIs(t, err, failure.AlreadyConfirmed)
	})
}

func TestReservationService_SweepRemind(t *testing.T) {
	t.Run("reminder sent inside window", func(t *testing.T) {
		f := newFixture(t)
		reservation := pendingReservation("res-5", "digest", 30*time.Minute)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation, nil)
		f.repo.EXPECT().MarkReminderSent(gomock.Any(), "res-5", gomock.Any()).Return(true, nil)
		f.repo.EXPECT().AppendAudit(gomock.Any(), gomock.Any()).Return(nil)
		f.mailer.EXPECT().SendReminder(gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, f.svc.SweepRemind(context.Background(), "res-5"))
	})

	t.Run("reminder marker wins over concurrent sweep", func(t *testing.T) {
		f := newFixture(t)
		reservation := pendingReservation("res-5", "digest", 30*time.Minute)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation, nil)
		f.repo.EXPECT().MarkReminderSent(gomock.Any(), "res-5", gomock.Any()).Return(false, nil)

		err := f.svc.SweepRemind(context.Background(), "res-5")

		assert.ErrorIs(t, err, failure.AlreadyReminded)
	})

	t.Run("reminder already recorded", func(t *testing.T) {
		f := newFixture(t)
		reservation := pendingReservation("res-5", "digest", 30*time.Minute)
		sent := time.Now().Add(-10 * time.Minute)
		reservation.ReminderSentAt = &sent

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation, nil)

		err := f.svc.SweepRemind(context.Background(), "res-5")

		assert.ErrorIs(t, err, failure.AlreadyReminded)
	})

	t.Run("too early for a reminder", func(t *testing.T) {
		f := newFixture(t)
		reservation := pendingReservation("res-5", "digest", 3*time.Hour)

		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation, nil)

		err := f.svc.SweepRemind(context.Background(), "res-5")

		assert.ErrorIs(t, err, failure.NotYetDue)
	})
}

func TestReservationService_GetStatus(t *testing.T) {
	t.Run("snapshot with audit trail", func(t *testing.T) {
		f := newFixture(t)
		reservation := pendingReservation("res-6", "digest", 2*time.Hour)
		audit := []model.AuditEntry{
			{
				InquiryID:  "res-6",
				OccurredAt: time.Now().Add(-time.Hour),
				Actor:      "customer",
				FromStatus: model.StatusNone,
				ToStatus:   model.StatusPending,
			},
		}

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation, nil)
		f.repo.EXPECT().ListAudit(gomock.Any(), "res-6").Return(audit, nil)

		snapshot, err := f.svc.GetStatus(context.Background(), "res-6")

		assert.NoError(t, err)
		assert.Equal(t, "res-6", snapshot.ID)
		assert.Equal(t, string(model.StatusPending), snapshot.Status)
		assert.Len(t, snapshot.Audit, 1)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Reservation{}, nil)

		_, err := f.svc.GetStatus(context.Background(), "missing")

		assert.ErrorIs(t, err, failure.ReservationNotFound)
	})
}
