package sweeper

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"termin/config"
	"termin/infras/otel"
	"termin/internal/domains/reservation/model"
	"termin/internal/domains/reservation/model/dto"
	"termin/internal/domains/reservation/service"
	"termin/shared/failure"
	"termin/shared/timezone"
)

const otelScopeName = "sweeper"

// Sweeper walks due reservations and applies expiry and reminder
// transitions through the service layer so every row goes through the
// same compare-and-swap path as customer and admin actions.
type Sweeper interface {
	Sweep(ctx context.Context) (dto.SweepSummary, error)
}

type sweeperImpl struct {
	svc  service.Reservation
	cfg  *config.Config
	otel otel.Otel
}

func New(svc service.Reservation, cfg *config.Config, otl otel.Otel) Sweeper {
	return &sweeperImpl{
		svc:  svc,
		cfg:  cfg,
		otel: otl,
	}
}

func (s *sweeperImpl) Sweep(ctx context.Context) (summary dto.SweepSummary, err error) {
	ctx, scope := s.otel.NewScope(ctx, otelScopeName, otelScopeName+".Sweep")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()

	due, err := s.svc.ListDueExpirations(ctx, now)
	if err != nil {
		log.Error().Err(err).Msg("failed to list due expirations")

		return summary, err
	}

	expired, expireFailures := s.dispatch(ctx, due, s.svc.SweepExpire)
	summary.Expired = expired
	summary.Failures = append(summary.Failures, expireFailures...)

	reminders, err := s.svc.ListDueReminders(ctx, now)
	if err != nil {
		log.Error().Err(err).Msg("failed to list due reminders")

		return summary, err
	}

	sent, remindFailures := s.dispatch(ctx, reminders, s.svc.SweepRemind)
	summary.RemindersSent = sent
	summary.Failures = append(summary.Failures, remindFailures...)

	log.Info().
		Int("expired", summary.Expired).
		Int("reminders_sent", summary.RemindersSent).
		Int("failures", len(summary.Failures)).
		Msg("sweep completed")

	return summary, nil
}

// dispatch fans the batch out over a bounded worker pool. Rows that
// another actor finished first are skipped, not failed.
func (s *sweeperImpl) dispatch(
	ctx context.Context,
	rows []model.Reservation,
	apply func(ctx context.Context, id string) error,
) (succeeded int, failures []dto.SweepFailure) {
	workers := s.cfg.Appointment.SweepWorkers
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan model.Reservation)

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for row := range jobs {
				applyErr := apply(ctx, row.ID)

				mu.Lock()
				switch {
				case applyErr == nil:
					succeeded++
				case isBenignRejection(applyErr):
				default:
					failures = append(failures, dto.SweepFailure{
						ID:     row.ID,
						Reason: applyErr.Error(),
					})
				}
				mu.Unlock()
			}
		}()
	}

	for _, row := range rows {
		select {
		case jobs <- row:
		case <-ctx.Done():
			close(jobs)
			wg.Wait()

			return succeeded, failures
		}
	}

	close(jobs)
	wg.Wait()

	return succeeded, failures
}

// isBenignRejection reports whether the row reached a valid state
// through another actor between the batch query and the transition.
func isBenignRejection(err error) bool {
	for _, sentinel := range []error{
		failure.NotYetDue,
		failure.AlreadyReminded,
		failure.AlreadyConfirmed,
		failure.AlreadyCancelled,
		failure.Expired,
		failure.ReservationNotFound,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}

// Runner drives periodic sweeps for the standalone sweeper binary. The
// HTTP cron endpoint shares the same Sweeper.
type Runner struct {
	sweeper  Sweeper
	interval time.Duration
}

func NewRunner(sweeper Sweeper, cfg *config.Config) *Runner {
	interval := time.Duration(cfg.Appointment.SweepIntervalMin) * time.Minute
	if interval <= 0 {
		interval = time.Hour
	}

	return &Runner{
		sweeper:  sweeper,
		interval: interval,
	}
}

// Run blocks until ctx is cancelled. One sweep fires immediately so a
// freshly deployed sweeper does not wait a full interval.
func (r *Runner) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	log.Info().Dur("interval", r.interval).Msg("sweeper runner started")

	for {
		if _, err := r.sweeper.Sweep(ctx); err != nil {
			log.Error().Err(err).Msg("sweep run failed")
		}

		select {
		case <-ctx.Done():
			log.Info().Msg("sweeper runner stopped")

			return
		case <-ticker.C:
		}
	}
}
