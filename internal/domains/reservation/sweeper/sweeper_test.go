package sweeper_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"termin/config"
	otelMocks "termin/infras/otel/mocks"
	"termin/internal/domains/reservation/model"
	svcMocks "termin/internal/domains/reservation/service/mocks"
	"termin/internal/domains/reservation/sweeper"
	"termin/shared/failure"
)

func newSweeper(t *testing.T, workers int) (sweeper.Sweeper, *svcMocks.MockReservation) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := svcMocks.NewMockReservation(ctrl)

	cfg := &config.Config{}
	cfg.Appointment.SweepWorkers = workers
	cfg.Appointment.SweepBatchLimit = 200

	return sweeper.New(svc, cfg, otelMocks.NewOtel()), svc
}

func rows(ids ...string) []model.Reservation {
	out := make([]model.Reservation, len(ids))
	for i, id := range ids {
		out[i] = model.Reservation{ID: id, Status: model.StatusPending}
	}

	return out
}

func TestSweeper_Sweep(t *testing.T) {
	t.Run("expires and reminds due rows", func(t *testing.T) {
		s, svc := newSweeper(t, 4)

		svc.EXPECT().ListDueExpirations(gomock.Any(), gomock.Any()).Return(rows("a", "b"), nil)
		svc.EXPECT().SweepExpire(gomock.Any(), "a").Return(nil)
		svc.EXPECT().SweepExpire(gomock.Any(), "b").Return(nil)
		svc.EXPECT().ListDueReminders(gomock.Any(), gomock.Any()).Return(rows("c"), nil)
		svc.EXPECT().SweepRemind(gomock.Any(), "c").Return(nil)

		summary, err := s.Sweep(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 2, summary.Expired)
		assert.Equal(t, 1, summary.RemindersSent)
		assert.Empty(t, summary.Failures)
	})

	t.Run("rows finished by another actor are skipped", func(t *testing.T) {
		s, svc := newSweeper(t, 2)

		svc.EXPECT().ListDueExpirations(gomock.Any(), gomock.Any()).Return(rows("a", "b"), nil)
		svc.EXPECT().SweepExpire(gomock.Any(), "a").Return(failure.AlreadyConfirmed)
		svc.EXPECT().SweepExpire(gomock.Any(), "b").Return(nil)
		svc.EXPECT().ListDueReminders(gomock.Any(), gomock.Any()).Return(rows("c", "d"), nil)
		svc.EXPECT().SweepRemind(gomock.Any(), "c").Return(failure.AlreadyReminded)
		svc.EXPECT().SweepRemind(gomock.Any(), "d").Return(failure.NotYetDue)

		summary, err := s.Sweep(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 1, summary.Expired)
		assert.Equal(t, 0, summary.RemindersSent)
		assert.Empty(t, summary.Failures)
	})

	t.Run("infrastructure failures are reported per row", func(t *testing.T) {
		s, svc := newSweeper(t, 1)

		svc.EXPECT().ListDueExpirations(gomock.Any(), gomock.Any()).Return(rows("a"), nil)
		svc.EXPECT().SweepExpire(gomock.Any(), "a").Return(failure.StoreUnavailable)
		svc.EXPECT().ListDueReminders(gomock.Any(), gomock.Any()).Return(rows("b"), nil)
		svc.EXPECT().SweepRemind(gomock.Any(), "b").Return(failure.NotifierFailure)

		summary, err := s.Sweep(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, 0, summary.Expired)
		assert.Equal(t, 0, summary.RemindersSent)
		assert.Len(t, summary.Failures, 2)
	})

	t.Run("batch query failure aborts the sweep", func(t *testing.T) {
		s, svc := newSweeper(t, 1)

		svc.EXPECT().ListDueExpirations(gomock.Any(), gomock.Any()).Return(nil, failure.StoreUnavailable)

		_, err := s.Sweep(context.Background())

		assert.ErrorIs(t, err, failure.StoreUnavailable)
	})

	t.Run("large batch fans out over the pool", func(t *testing.T) {
		s, svc := newSweeper(t, 8)

		ids := make([]string, 50)
		for i := range ids {
			ids[i] = fmt.Sprintf("res-%02d", i)
		}

		batch := rows(ids...)
		svc.EXPECT().ListDueExpirations(gomock.Any(), gomock.Any()).Return(batch, nil)
		svc.EXPECT().SweepExpire(gomock.Any(), gomock.Any()).Return(nil).Times(len(batch))
		svc.EXPECT().ListDueReminders(gomock.Any(), gomock.Any()).Return(nil, nil)

		summary, err := s.Sweep(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, len(batch), summary.Expired)
	})
}
