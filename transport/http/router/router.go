package router

import (
	"termin/internal/handlers/admin"
	"termin/internal/handlers/appointment"
	"termin/internal/handlers/sweep"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Appointment appointment.Handler
	Admin       admin.Handler
	Sweep       sweep.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Appointment.Router(routerGroup)
		r.DomainHandlers.Admin.Router(routerGroup)
		r.DomainHandlers.Sweep.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
