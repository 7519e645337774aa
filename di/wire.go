//go:build wireinject
// +build wireinject

package di

import (
	"termin/config"
	"termin/infras/calendar"
	"termin/infras/jwt"
	"termin/infras/kafka"
	"termin/infras/mailer"
	"termin/infras/otel"
	"termin/infras/postgres"
	"termin/infras/redis"
	"termin/infras/s3"
	"termin/permissions"
	"termin/shared/cache"
	"termin/transport/http"
	"termin/transport/http/middleware"
	"termin/transport/http/router"

	reservationRepository "termin/internal/domains/reservation/repository"
	reservationService "termin/internal/domains/reservation/service"
	"termin/internal/domains/reservation/sweeper"


	adminHandler "termin/internal/handlers/admin"
	appointmentHandler "termin/internal/handlers/appointment"
	sweepHandler "termin/internal/handlers/sweep"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
	calendar.New,
	mailer.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
	sweeper.New,
)

var domains = wire.NewSet(
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	appointmentHandler.New,
	adminHandler.New,
	sweepHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		permissions.Get,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeSweeper() *sweeper.Runner {
	wire.Build(
		configurations,
		postgres.New,
		otel.New,
		redis.New,
		s3.New,
		kafka.New,
		calendar.New,
		mailer.New,
		sharedHelpers,
		reservationRepository.New,
		reservationService.New,
		sweeper.New,
		sweeper.NewRunner,
	)

	return &sweeper.Runner{}
}
