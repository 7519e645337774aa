package state

import (
	"time"

	"termin/internal/domains/reservation/model"
	"termin/shared/failure"
)

// Command is one of the lifecycle mutations an actor can request.
type Command string

const (
	CommandBook        Command = "book"
	CommandConfirm     Command = "confirm"
	CommandReject      Command = "reject"
	CommandSweepExpire Command = "sweep_expire"
	CommandSweepRemind Command = "sweep_remind"
)

// Input is the snapshot Decide evaluates. It carries no identity and no
// store handle so the decision stays a pure function of its arguments.
type Input struct {
	Status         model.Status
	AppointmentAt  time.Time
	ExpiresAt      *time.Time
	ReminderSentAt *time.Time
	// TokenRequired marks the customer path. Admin commands skip the
	// token check entirely.
	TokenRequired bool
	TokenMatches  bool
	ReminderLead  time.Duration
}

// Transition is the committed outcome Decide schedules. The caller
// performs the conditional write From->To and only then runs the side
// effects flagged here.
type Transition struct {
	From         model.Status
	To           model.Status
	ClearToken   bool
	CreateEvent  bool
	SendReminder bool
}

// Decide evaluates a single command against the current snapshot and
// returns either the transition to attempt or a typed rejection.
// Expiry boundary: a hold is usable strictly before ExpiresAt, so
// now == ExpiresAt already counts as expired.
func Decide(in Input, cmd Command, now time.Time) (Transition, error) {
	switch cmd {
	case CommandBook:
		if in.Status != model.StatusNone {
			return Transition{}, rejectionFor(in.Status)
		}

		if !in.AppointmentAt.After(now) {
			return Transition{}, failure.PastDate
		}

		return Transition{From: model.StatusNone, To: model.StatusPending}, nil

	case CommandConfirm:
		if in.Status != model.StatusPending {
			return Transition{}, rejectionFor(in.Status)
		}

		if in.TokenRequired && !in.TokenMatches {
			return Transition{}, failure.InvalidToken
		}

		if in.ExpiresAt == nil || !now.Before(*in.ExpiresAt) {
			return Transition{}, failure.Expired
		}

		return Transition{
			From:        model.StatusPending,
			To:          model.StatusConfirmed,
			ClearToken:  true,
			CreateEvent: true,
		}, nil

	case CommandReject:
		if in.Status != model.StatusPending {
			return Transition{}, rejectionFor(in.Status)
		}

		return Transition{
			From:       model.StatusPending,
			To:         model.StatusCancelled,
			ClearToken: true,
		}, nil

	case CommandSweepExpire:
		if in.Status != model.StatusPending {
			return Transition{}, rejectionFor(in.Status)
		}

		if in.ExpiresAt == nil || now.Before(*in.ExpiresAt) {
			return Transition{}, failure.NotYetDue
		}

		return Transition{
			From:       model.StatusPending,
			To:         model.StatusExpired,
			ClearToken: true,
		}, nil

	case CommandSweepRemind:
		if in.Status != model.StatusPending {
			return Transition{}, rejectionFor(in.Status)
		}

		if in.ReminderSentAt != nil {
			return Transition{}, failure.AlreadyReminded
		}

		if in.ExpiresAt == nil {
			return Transition{}, failure.NoAppointment
		}

		remaining := in.ExpiresAt.Sub(now)
		if remaining <= 0 {
			return Transition{}, failure.Expired
		}

		if remaining > in.ReminderLead {
			return Transition{}, failure.NotYetDue
		}

		// The reservation itself stays PENDING, only the reminder
		// marker is written.
		return Transition{
			From:         model.StatusPending,
			To:           model.StatusPending,
			SendReminder: true,
		}, nil

	default:
		return Transition{}, failure.BadRequestFromString("unknown reservation command: " + string(cmd))
	}
}

func rejectionFor(status model.Status) error {
	switch status {
	case model.StatusConfirmed:
		return failure.AlreadyConfirmed
	case model.StatusCancelled:
		return failure.AlreadyCancelled
	case model.StatusExpired:
		return failure.Expired
	case model.StatusNone:
		return failure.NoAppointment
	default:
		return failure.Conflict("appointment already requested")
	}
}
