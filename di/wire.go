//go:build wireinject
// +build wireinject

package di

import (
	"darshan/config"
	"darshan/infras/jwt"
	"darshan/infras/kafka"
	"darshan/infras/metrics"
	"darshan/infras/otel"
	"darshan/infras/payment"
	"darshan/infras/postgres"
	"darshan/infras/redis"
	"darshan/shared/cache"
	"darshan/transport/http"
	"darshan/transport/http/middleware"
	"darshan/transport/http/router"

	eventRepository "darshan/internal/domains/event/repository"
	eventService "darshan/internal/domains/event/service"
	museumRepository "darshan/internal/domains/museum/repository"
	museumService "darshan/internal/domains/museum/service"
	ticketRepository "darshan/internal/domains/ticket/repository"
	ticketService "darshan/internal/domains/ticket/service"

	"github.com/google/wire"

	eventHandler "darshan/internal/handlers/event"
	museumHandler "darshan/internal/handlers/museum"
	paymentHandler "darshan/internal/handlers/payment"
	ticketHandler "darshan/internal/handlers/ticket"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	payment.New,
	metrics.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var museumDomain = wire.NewSet(
	museumRepository.New,
	museumService.New,
)

var eventDomain = wire.NewSet(
	eventRepository.New,
	eventService.New,
)

var ticketDomain = wire.NewSet(
	ticketRepository.New,
	ticketService.New,
)

var domains = wire.NewSet(
	museumDomain,
	eventDomain,
	ticketDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	museumHandler.New,
	eventHandler.New,
	ticketHandler.New,
	paymentHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
