package sweep

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"termin/config"
	"termin/infras/otel"
	"termin/internal/domains/reservation/sweeper"
	"termin/shared/constant"
	"termin/shared/failure"
	"termin/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	sweeper sweeper.Sweeper
	cfg     *config.Config
	otel    otel.Otel
}

func New(sweeper sweeper.Sweeper, cfg *config.Config, otel otel.Otel) Handler {
	return Handler{
		sweeper: sweeper,
		cfg:     cfg,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/cron", func(routerGroup chi.Router) {
		routerGroup.Get("/expire-appointments", handler.RunSweep)
		routerGroup.Post("/expire-appointments", handler.RunSweep)
	})
}

// RunSweep expires overdue holds and sends due reminders in one pass.
// External schedulers hit this endpoint; the standalone sweeper binary
// runs the same sweep on a ticker.
// @Summary Run the appointment sweep
// @Description Expire overdue pending holds and send reminders for holds close to expiry.
// @Tags Cron
// @Produce json
// @Success 200 {object} dto.SweepSummary "Sweep summary"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/cron/expire-appointments [get]
func (handler *Handler) RunSweep(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RunSweep")
	defer scope.End()

	if err := handler.authorize(request); err != nil {
		scope.TraceError(err)
		log.Warn().Str("remote", request.RemoteAddr).Msg("sweep request rejected")

		response.WithError(writer, err)

		return
	}

	summary, err := handler.sweeper.Sweep(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("sweep run failed")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Sweep completed")

	response.WithJSON(writer, http.StatusOK, summary)
}

// authorize checks the shared secret when one is configured. Without a
// secret the endpoint stays open for cluster-internal schedulers.
func (handler *Handler) authorize(request *http.Request) error {
	secret := handler.cfg.Appointment.SweepSharedSecret
	if secret == "" {
		return nil
	}

	header := request.Header.Get(constant.RequestHeaderAuthorization)
	presented, ok := strings.CutPrefix(header, "Bearer ")

	if !ok || subtle.ConstantTimeCompare([]byte(presented), []byte(secret)) != 1 {
		return failure.Unauthorized("invalid sweep credentials")
	}

	return nil
}
