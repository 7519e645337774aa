package appointment

import (
	"errors"
	"net/http"
	"net/url"
	"termin/config"
	"termin/infras/otel"
	"termin/internal/domains/reservation/model/dto"
	"termin/internal/domains/reservation/service"
	"termin/shared/constant"
	"termin/shared/failure"
	"termin/shared/validator"
	"termin/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	cfg     *config.Config
	otel    otel.Otel
}

func New(service service.Reservation, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		service: service,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/appointments", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.BookAppointment)
		routerGroup.Get("/confirm", handler.ConfirmAppointment)
		routerGroup.Get("/{id}", handler.GetAppointmentStatus)
	})
}

// BookAppointment places a 24 hour hold on an appointment slot.
// @Summary Book an appointment
// @Description Place a pending hold on an appointment slot. The customer receives a confirmation link by email.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param request body dto.BookAppointmentRequest true "Book Appointment Request"
// @Success 201 {object} dto.BookAppointmentResponse "Appointment hold created"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments [post]
func (handler *Handler) BookAppointment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BookAppointment")
	defer scope.End()

	req := dto.BookAppointmentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Book(ctx, req)
	if err != nil {
		// The hold can be committed even when the notification fails;
		// the caller still gets the reservation and the token.
		if errors.Is(err, failure.NotifierFailure) && res.ID != "" {
			scope.AddEvent("Appointment hold created, confirmation mail failed")
			log.Error().Err(err).Str("id", res.ID).Msg("confirmation mail failed after booking")

			response.WithJSON(writer, http.StatusCreated, res)

			return
		}

		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to book appointment")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Appointment hold created")

	response.WithJSON(writer, http.StatusCreated, res)
}

// ConfirmAppointment confirms a pending hold through the emailed token
// link and redirects the browser to the status page.
// @Summary Confirm an appointment via token link
// @Description Confirm a pending appointment using the token from the confirmation email. Responds with a redirect to the status page.
// @Tags Appointment
// @Produce json
// @Param id query string true "Reservation ID"
// @Param token query string true "Confirmation token"
// @Success 302 "Redirect to the status page"
// @Router /v1/appointments/confirm [get]
func (handler *Handler) ConfirmAppointment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConfirmAppointment")
	defer scope.End()

	id := request.URL.Query().Get(constant.RequestParamID)
	token := request.URL.Query().Get(constant.RequestParamToken)

	_, err := handler.service.ConfirmByToken(ctx, id, token)

	result := constant.RedirectConfirmed

	switch {
	case err == nil:
	case errors.Is(err, failure.CalendarSyncFailure):
		// The state change committed; only the calendar event is missing.
		log.Error().Err(err).Str("id", id).Msg("calendar sync failed after confirmation")
	case errors.Is(err, failure.AlreadyConfirmed):
		result = constant.RedirectAlready
	case errors.Is(err, failure.Expired):
		result = constant.RedirectExpired
	case errors.Is(err, failure.NoAppointment):
		result = constant.RedirectNoAppointment
	case errors.Is(err, failure.InvalidToken), errors.Is(err, failure.ReservationNotFound):
		result = constant.RedirectInvalidToken
	default:
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to confirm appointment")

		result = constant.RedirectServerError
	}

	scope.AddEvent("Appointment confirmation resolved to " + result)

	http.Redirect(writer, request, handler.statusPageURL(id, result), http.StatusFound)
}

// GetAppointmentStatus returns the reservation snapshot with its audit trail.
// @Summary Get appointment status
// @Description Retrieve the current state of a reservation including its transition history.
// @Tags Appointment
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} dto.ReservationSnapshot "Reservation snapshot"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id} [get]
func (handler *Handler) GetAppointmentStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointmentStatus")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	snapshot, err := handler.service.GetStatus(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get appointment status")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Appointment status retrieved")

	response.WithJSON(writer, http.StatusOK, snapshot)
}

func (handler *Handler) statusPageURL(id, result string) string {
	query := url.Values{}
	query.Set(constant.RequestParamID, id)
	query.Set(constant.RequestParamResult, result)

	return handler.cfg.App.BaseURL + handler.cfg.Appointment.StatusPagePath + "?" + query.Encode()
}
