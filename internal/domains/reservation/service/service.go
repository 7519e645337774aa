package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"termin/config"
	"termin/infras/calendar"
	"termin/infras/kafka"
	"termin/infras/mailer"
	"termin/infras/otel"
	"termin/infras/s3"
	"termin/internal/domains/reservation/model"
	"termin/internal/domains/reservation/model/dto"
	"termin/internal/domains/reservation/repository"
	"termin/internal/domains/reservation/state"
	"termin/shared"
	"termin/shared/cache"
	"termin/shared/constant"
	gDto "termin/shared/dto"
	"termin/shared/failure"
	"termin/shared/ics"
	"termin/shared/token"
	"termin/shared/timezone"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"

	auditNoteBooked   = "Terminanfrage eingegangen, Zeitslot reserviert"
	auditNoteExpired  = "Automatisch abgelaufen, Bestätigungsfrist überschritten, Zeitfenster wieder verfügbar"
	auditNoteReminder = "Erinnerung an ablaufende Bestätigungsfrist versendet"
)

// Reservation drives the appointment lifecycle. Every transition is a
// load, a pure decision, then one conditional write; side effects only
// run after the write commits, so a calendar or mail failure can never
// leave a slot half booked.
type Reservation interface {
	Book(ctx context.Context, req dto.BookAppointmentRequest) (dto.BookAppointmentResponse, error)
	ConfirmByToken(ctx context.Context, id, presentedToken string) (string, error)
	ConfirmByAdmin(ctx context.Context, id string) (string, error)
	RejectByAdmin(ctx context.Context, id string) error
	GetStatus(ctx context.Context, id string) (dto.ReservationSnapshot, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	SweepExpire(ctx context.Context, id string) error
	SweepRemind(ctx context.Context, id string) error
	ListDueExpirations(ctx context.Context, now time.Time) ([]model.Reservation, error)
	ListDueReminders(ctx context.Context, now time.Time) ([]model.Reservation, error)
}

type serviceImpl struct {
	repo     repository.Reservation
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	calendar calendar.Calendar
	mailer   mailer.Mailer
	storage  s3.S3
	broker   kafka.Client
}

func New(
	repo repository.Reservation,
	cfg *config.Config,
	redisCache cache.RedisCache,
	otl otel.Otel,
	cal calendar.Calendar,
	mail mailer.Mailer,
	storage s3.S3,
	broker kafka.Client,
) Reservation {
	return &serviceImpl{
		repo:     repo,
		cfg:      cfg,
		cache:    redisCache,
		otel:     otl,
		calendar: cal,
		mailer:   mail,
		storage:  storage,
		broker:   broker,
	}
}

func (s *serviceImpl) Book(ctx context.Context, req dto.BookAppointmentRequest) (res dto.BookAppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Book")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()

	rawToken, digest, err := token.Issue()
	if err != nil {
		log.Error().Err(err).Msg("failed to issue confirmation token")

		return res, fmt.Errorf("failed to issue confirmation token: %w", err)
	}

	reservation, err := req.ToModel(digest, now, s.cfg.Appointment.HoldHours)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse appointment request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid appointment date/time: %v", err)) //nolint:wrapcheck
	}

	input := state.Input{
		Status:        model.StatusNone,
		AppointmentAt: reservation.AppointmentDateTime,
	}

	if _, err = state.Decide(input, state.CommandBook, now); err != nil {
		return res, err //nolint:wrapcheck
	}

	if err = s.repo.CreatePending(ctx, reservation); err != nil {
		if !errors.Is(err, failure.SlotTaken) {
			log.Error().Err(err).Msg("failed to create reservation")
		}

		return res, err //nolint:wrapcheck
	}

	s.appendAudit(ctx, reservation.ID, constant.ActorCustomer, model.StatusNone, model.StatusPending, auditNoteBooked)
	s.publishLifecycle(ctx, reservation, model.StatusNone, model.StatusPending, constant.ActorCustomer)
	s.invalidateListCaches(ctx)

	res = dto.BookAppointmentResponse{
		ID:            reservation.ID,
		Status:        string(reservation.Status),
		AppointmentAt: reservation.AppointmentDateTime.Format(time.RFC3339),
		ExpiresAt:     reservation.ExpiresAt.Format(time.RFC3339),
		Token:         rawToken,
	}

	inviteURL := s.uploadInvite(ctx, reservation)

	mailReq := mailer.ConfirmationRequest{
		Name:          reservation.Name,
		Email:         reservation.Email,
		AppointmentAt: reservation.AppointmentDateTime,
		ExpiresAt:     *reservation.ExpiresAt,
		ConfirmURL:    s.confirmURL(reservation.ID, rawToken),
		InviteURL:     inviteURL,
	}

	if err = s.mailer.SendConfirmationRequest(ctx, mailReq); err != nil {
		// The hold is committed and the sweeper will still expire it;
		// the caller learns delivery failed and keeps the booking.
		log.Error().Err(err).Str("inquiry_id", reservation.ID).Msg("failed to send confirmation request mail")

		return res, err //nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) ConfirmByToken(ctx context.Context, id, presentedToken string) (eventID string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConfirmByToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	if id == "" || presentedToken == "" {
		return "", failure.InvalidToken //nolint:wrapcheck
	}

	return s.confirm(ctx, id, constant.ActorCustomer, &presentedToken)
}

func (s *serviceImpl) ConfirmByAdmin(ctx context.Context, id string) (eventID string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConfirmByAdmin")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.confirm(ctx, id, constant.ActorAdmin, nil)
}

func (s *serviceImpl) confirm(ctx context.Context, id, actor string, presentedToken *string) (string, error) {
	now := timezone.Now()

	reservation, err := s.load(ctx, id)
	if err != nil {
		if errors.Is(err, failure.ReservationNotFound) && presentedToken != nil {
			// The customer endpoint must not reveal whether the id exists.
			return "", failure.InvalidToken //nolint:wrapcheck
		}

		return "", err
	}

	input := state.Input{
		Status:         reservation.Status,
		AppointmentAt:  reservation.AppointmentDateTime,
		ExpiresAt:      reservation.ExpiresAt,
		ReminderSentAt: reservation.ReminderSentAt,
		TokenRequired:  presentedToken != nil,
	}

	if presentedToken != nil && reservation.Status == model.StatusPending {
		input.TokenMatches = token.Verify(reservation.ConfirmationToken, *presentedToken) == nil
	}

	transition, err := state.Decide(input, state.CommandConfirm, now)
	if err != nil {
		if errors.Is(err, failure.Expired) && reservation.Status == model.StatusPending {
			s.lazyExpire(ctx, reservation)
		}

		return "", err //nolint:wrapcheck
	}

	set := map[string]any{
		model.FieldConfirmationToken: constant.Empty,
		constant.FieldModifiedBy:     actor,
	}

	ok, err := s.repo.Transition(ctx, id, transition.From, transition.To, set)
	if err != nil {
		return "", err //nolint:wrapcheck
	}

	if !ok {
		return "", s.lostRace(ctx, id)
	}

	s.appendAudit(ctx, id, actor, transition.From, transition.To, constant.Empty)
	s.publishLifecycle(ctx, reservation, transition.From, transition.To, actor)
	s.invalidateCaches(ctx, id)

	eventID, calErr := s.createCalendarEvent(ctx, reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		mail := mailer.Confirmation{
			Name:          reservation.Name,
			Email:         reservation.Email,
			AppointmentAt: reservation.AppointmentDateTime,
		}
		if mailErr := s.mailer.SendConfirmation(c, mail); mailErr != nil {
			log.Error().Err(mailErr).Str("inquiry_id", id).Msg("failed to send confirmation mail")
		}
	}()

	if calErr != nil {
		// The reservation is confirmed regardless; the operator retries
		// the calendar sync out of band.
		return "", calErr
	}

	return eventID, nil
}

func (s *serviceImpl) RejectByAdmin(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RejectByAdmin")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()

	reservation, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	input := state.Input{
		Status:        reservation.Status,
		AppointmentAt: reservation.AppointmentDateTime,
		ExpiresAt:     reservation.ExpiresAt,
	}

	transition, err := state.Decide(input, state.CommandReject, now)
	if err != nil {
		return err //nolint:wrapcheck
	}

	set := map[string]any{
		model.FieldConfirmationToken: constant.Empty,
		constant.FieldModifiedBy:     constant.ActorAdmin,
	}

	ok, err := s.repo.Transition(ctx, id, transition.From, transition.To, set)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !ok {
		return s.lostRace(ctx, id)
	}

	s.appendAudit(ctx, id, constant.ActorAdmin, transition.From, transition.To, constant.Empty)
	s.publishLifecycle(ctx, reservation, transition.From, transition.To, constant.ActorAdmin)
	s.invalidateCaches(ctx, id)

	go func() {
		c := context.WithoutCancel(ctx)

		mail := mailer.Rejection{
			Name:          reservation.Name,
			Email:         reservation.Email,
			AppointmentAt: reservation.AppointmentDateTime,
		}
		if mailErr := s.mailer.SendRejection(c, mail); mailErr != nil {
			log.Error().Err(mailErr).Str("inquiry_id", id).Msg("failed to send rejection mail")
		}
	}()

	return nil
}

func (s *serviceImpl) GetStatus(ctx context.Context, id string) (res dto.ReservationSnapshot, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	reservation, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	audit, err := s.repo.ListAudit(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("inquiry_id", id).Msg("failed to list audit entries")

		return res, fmt.Errorf("failed to list audit entries: %w", err)
	}

	res.FromModel(reservation, audit)

	go func() {
		c := context.WithoutCancel(ctx)

		if cacheErr := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); cacheErr != nil {
			log.Error().Err(cacheErr).Str("cacheKey", cacheKey).Msg("failed to cache reservation snapshot")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.Count(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if cacheErr := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); cacheErr != nil {
			log.Error().Err(cacheErr).Str("cacheKey", cacheKey).Msg("failed to cache reservations")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &total); err == nil {
		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if cacheErr := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); cacheErr != nil {
			log.Error().Err(cacheErr).Str("cacheKey", cacheKey).Msg("failed to cache reservation count")
		}
	}()

	return total, nil
}

// SweepExpire drives one overdue PENDING row to EXPIRED. Losing the
// race to another actor is a normal outcome, reported as a typed
// rejection the sweeper can skip.
func (s *serviceImpl) SweepExpire(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SweepExpire")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()

	reservation, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	input := state.Input{
		Status:        reservation.Status,
		AppointmentAt: reservation.AppointmentDateTime,
		ExpiresAt:     reservation.ExpiresAt,
	}

	transition, err := state.Decide(input, state.CommandSweepExpire, now)
	if err != nil {
		return err //nolint:wrapcheck
	}

	set := map[string]any{
		model.FieldConfirmationToken: constant.Empty,
		constant.FieldModifiedBy:     constant.ActorSweeper,
	}

	ok, err := s.repo.Transition(ctx, id, transition.From, transition.To, set)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !ok {
		return s.lostRace(ctx, id)
	}

	s.appendAudit(ctx, id, constant.ActorSweeper, transition.From, transition.To, auditNoteExpired)
	s.publishLifecycle(ctx, reservation, transition.From, transition.To, constant.ActorSweeper)
	s.invalidateCaches(ctx, id)

	return nil
}

// SweepRemind sends the single expiry reminder. The reminder marker is
// written before the mail goes out, so a crash between the two costs a
// reminder but can never duplicate one.
func (s *serviceImpl) SweepRemind(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SweepRemind")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()

	reservation, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	input := state.Input{
		Status:         reservation.Status,
		AppointmentAt:  reservation.AppointmentDateTime,
		ExpiresAt:      reservation.ExpiresAt,
		ReminderSentAt: reservation.ReminderSentAt,
		ReminderLead:   time.Duration(s.cfg.Appointment.ReminderLeadMin) * time.Minute,
	}

	if _, err = state.Decide(input, state.CommandSweepRemind, now); err != nil {
		return err //nolint:wrapcheck
	}

	ok, err := s.repo.MarkReminderSent(ctx, id, now)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !ok {
		return failure.AlreadyReminded //nolint:wrapcheck
	}

	s.appendAudit(ctx, id, constant.ActorSweeper, model.StatusPending, model.StatusPending, auditNoteReminder)
	s.invalidateCaches(ctx, id)

	mail := mailer.Reminder{
		Name:          reservation.Name,
		Email:         reservation.Email,
		AppointmentAt: reservation.AppointmentDateTime,
		ExpiresAt:     *reservation.ExpiresAt,
		StatusURL:     s.statusURL(id),
	}

	if err = s.mailer.SendReminder(ctx, mail); err != nil {
		log.Error().Err(err).Str("inquiry_id", id).Msg("failed to send reminder mail")

		return err //nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) ListDueExpirations(ctx context.Context, now time.Time) ([]model.Reservation, error) {
	return s.repo.ListDueExpirations(ctx, now, s.cfg.Appointment.SweepBatchLimit) //nolint:wrapcheck
}

func (s *serviceImpl) ListDueReminders(ctx context.Context, now time.Time) ([]model.Reservation, error) {
	lead := time.Duration(s.cfg.Appointment.ReminderLeadMin) * time.Minute

	return s.repo.ListDueReminders(ctx, now, lead, s.cfg.Appointment.SweepBatchLimit) //nolint:wrapcheck
}

func (s *serviceImpl) load(ctx context.Context, id string) (model.Reservation, error) {
	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("inquiry_id", id).Msg("failed to load reservation")

		return reservation, fmt.Errorf("failed to load reservation: %w", err)
	}

	if reservation.ID == "" {
		return reservation, fmt.Errorf("%w: %s", failure.ReservationNotFound, model.EntityName)
	}

	return reservation, nil
}

// lazyExpire retires an overdue hold found on the confirm path instead
// of waiting for the next sweep. Best effort: the CAS may lose to the
// sweeper doing the same thing.
func (s *serviceImpl) lazyExpire(ctx context.Context, reservation model.Reservation) {
	set := map[string]any{
		model.FieldConfirmationToken: constant.Empty,
		constant.FieldModifiedBy:     constant.ActorSystem,
	}

	ok, err := s.repo.Transition(ctx, reservation.ID, model.StatusPending, model.StatusExpired, set)
	if err != nil || !ok {
		return
	}

	s.appendAudit(ctx, reservation.ID, constant.ActorSystem, model.StatusPending, model.StatusExpired, auditNoteExpired)
	s.publishLifecycle(ctx, reservation, model.StatusPending, model.StatusExpired, constant.ActorSystem)
	s.invalidateCaches(ctx, reservation.ID)
}

func (s *serviceImpl) lostRace(ctx context.Context, id string) error {
	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil || reservation.ID == "" {
		return failure.Conflict("reservation changed concurrently") //nolint:wrapcheck
	}

	switch reservation.Status {
	case model.StatusConfirmed:
		return failure.AlreadyConfirmed //nolint:wrapcheck
	case model.StatusCancelled:
		return failure.AlreadyCancelled //nolint:wrapcheck
	case model.StatusExpired:
		return failure.Expired //nolint:wrapcheck
	default:
		return failure.Conflict("reservation changed concurrently") //nolint:wrapcheck
	}
}

func (s *serviceImpl) createCalendarEvent(ctx context.Context, reservation model.Reservation) (string, error) {
	duration := time.Duration(s.cfg.Appointment.DurationMin) * time.Minute

	event := calendar.Event{
		Summary:       fmt.Sprintf("Termin: %s", reservation.Name),
		Description:   fmt.Sprintf("Bestätigter Termin mit %s (%s)", reservation.Name, reservation.Email),
		Location:      s.cfg.Appointment.Location,
		Start:         reservation.AppointmentDateTime,
		End:           reservation.AppointmentDateTime.Add(duration),
		AttendeeEmail: reservation.Email,
		AttendeeName:  reservation.Name,
	}

	eventID, err := s.calendar.CreateEvent(ctx, event)
	if err != nil {
		log.Error().Err(err).Str("inquiry_id", reservation.ID).Msg("calendar sync failed after confirmation")

		return "", err //nolint:wrapcheck
	}

	if err := s.repo.SetCalendarEventID(ctx, reservation.ID, eventID); err != nil {
		log.Error().Err(err).Str("inquiry_id", reservation.ID).Str("event_id", eventID).Msg("failed to store calendar event id")
	}

	return eventID, nil
}

func (s *serviceImpl) uploadInvite(ctx context.Context, reservation model.Reservation) string {
	duration := time.Duration(s.cfg.Appointment.DurationMin) * time.Minute

	invite := ics.Invite{
		UID:           reservation.ID,
		Summary:       fmt.Sprintf("Termin: %s", reservation.Name),
		Location:      s.cfg.Appointment.Location,
		Start:         reservation.AppointmentDateTime,
		End:           reservation.AppointmentDateTime.Add(duration),
		AttendeeEmail: reservation.Email,
		AttendeeName:  reservation.Name,
	}

	data, err := ics.Encode(invite)
	if err != nil {
		log.Error().Err(err).Str("inquiry_id", reservation.ID).Msg("failed to encode invite")

		return constant.Empty
	}

	fileName := reservation.ID + ".ics"
	directory := s.cfg.External.S3.InviteDirectory

	inviteURL, err := s.storage.UploadFileBytes(ctx, constant.Empty, directory, fileName, constant.ContentTypeCalendar, data)
	if err != nil {
		log.Error().Err(err).Str("inquiry_id", reservation.ID).Msg("failed to upload invite")

		return constant.Empty
	}

	return inviteURL
}

func (s *serviceImpl) statusURL(id string) string {
	query := url.Values{}
	query.Set(constant.RequestParamID, id)

	return fmt.Sprintf("%s%s?%s", s.cfg.App.BaseURL, s.cfg.Appointment.StatusPagePath, query.Encode())
}

func (s *serviceImpl) confirmURL(id, rawToken string) string {
	query := url.Values{}
	query.Set(constant.RequestParamID, id)
	query.Set(constant.RequestParamToken, rawToken)

	return fmt.Sprintf("%s/v1/appointments/confirm?%s", s.cfg.App.BaseURL, query.Encode())
}

func (s *serviceImpl) appendAudit(ctx context.Context, inquiryID, actor string, from, to model.Status, note string) {
	entry := model.AuditEntry{
		ID:         uuid.NewString(),
		InquiryID:  inquiryID,
		OccurredAt: timezone.Now(),
		Actor:      actor,
		FromStatus: from,
		ToStatus:   to,
		Note:       note,
	}

	if err := s.repo.AppendAudit(ctx, entry); err != nil {
		log.Error().Err(err).Str("inquiry_id", inquiryID).Msg("failed to append audit entry")
	}
}

func (s *serviceImpl) publishLifecycle(ctx context.Context, reservation model.Reservation, from, to model.Status, actor string) {
	event := dto.LifecycleEvent{
		InquiryID:     reservation.ID,
		FromStatus:    string(from),
		ToStatus:      string(to),
		Actor:         actor,
		AppointmentAt: reservation.AppointmentDateTime.Format(time.RFC3339),
		OccurredAt:    timezone.Now().Format(time.RFC3339),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		message := kafka.Message{Key: reservation.ID, Value: event}
		if err := s.broker.SendMessages(c, s.cfg.Kafka.LifecycleTopic, message); err != nil {
			log.Error().Err(err).Str("inquiry_id", reservation.ID).Msg("failed to publish lifecycle event")
		}
	}()
}

func (s *serviceImpl) invalidateCaches(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
			log.Error().Err(err).Str("inquiry_id", id).Msg("failed to invalidate snapshot cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()
}

func (s *serviceImpl) invalidateListCaches(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()
}
