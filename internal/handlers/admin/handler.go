package admin

import (
	"net/http"
	"termin/infras/otel"
	"termin/internal/domains/reservation/model"
	"termin/internal/domains/reservation/model/dto"
	"termin/internal/domains/reservation/service"
	"termin/shared/constant"
	gDto "termin/shared/dto"
	"termin/shared/validator"
	"termin/transport/http/middleware"
	"termin/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service    service.Reservation
	middleware middleware.AuthRole
	otel       otel.Otel
}

func New(service service.Reservation, middleware middleware.AuthRole, otel otel.Otel) Handler {
	return Handler{
		service:    service,
		middleware: middleware,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin/appointments", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetAppointments)
		routerGroup.Post("/{id}", handler.ResolveAppointment)
	})
}

// GetAppointments lists reservations for the admin dashboard.
// @Summary List appointments
// @Description Retrieve reservations with optional status and email filtering and pagination.
// @Tags Admin
// @Accept json
// @Produce json
// @Param status query string false "Filter by appointment status"
// @Param email query string false "Filter by customer email"
// @Success 200 {object} dto.GetReservationsResponse "List of reservations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/appointments [get]
// @Security BearerAuth
func (handler *Handler) GetAppointments(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if status := request.URL.Query().Get("status"); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if email := request.URL.Query().Get(model.FieldEmail); email != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEmail,
			Operator: gDto.FilterOperatorEq,
			Value:    email,
			Table:    model.TableName,
		})
	}

	reservations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get appointments")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Appointments retrieved successfully")

	response.WithJSON(writer, http.StatusOK, reservations)
}

// ResolveAppointment confirms or rejects a pending reservation.
// @Summary Confirm or reject an appointment
// @Description Apply an admin decision to a pending reservation. Confirmation creates the calendar event, rejection cancels the hold.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body dto.AdminActionRequest true "Admin Action Request"
// @Success 200 {object} response.Message "Decision applied"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/appointments/{id} [post]
// @Security BearerAuth
func (handler *Handler) ResolveAppointment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResolveAppointment")
	defer scope.End()

	id := chi.URLParam(request, constant.RequestParamID)

	req := dto.AdminActionRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	var err error

	var message string

	switch req.Action {
	case dto.AdminActionConfirm:
		_, err = handler.service.ConfirmByAdmin(ctx, id)
		message = "Appointment confirmed successfully"
	case dto.AdminActionReject:
		err = handler.service.RejectByAdmin(ctx, id)
		message = "Appointment rejected successfully"
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("action", req.Action).Msg("failed to resolve appointment")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Appointment " + req.Action + " applied by user " + user)

	response.WithMessage(writer, http.StatusOK, message)
}
