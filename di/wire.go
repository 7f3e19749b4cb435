//go:build wireinject
// +build wireinject

package di

import (
	"salon/config"
	"salon/infras/automation"
	"salon/infras/kafka"
	"salon/infras/otel"
	"salon/infras/postgres"
	"salon/infras/redis"
	"salon/infras/s3"
	"salon/shared/cache"
	"salon/transport/http"
	"salon/transport/http/middleware"
	"salon/transport/http/router"

	"github.com/google/wire"

	availabilityService "salon/internal/domains/availability/service"
	bookingRepository "salon/internal/domains/booking/repository"
	bookingService "salon/internal/domains/booking/service"
	catalogRepository "salon/internal/domains/catalog/repository"
	catalogService "salon/internal/domains/catalog/service"
	customerRepository "salon/internal/domains/customer/repository"
	draftRepository "salon/internal/domains/draft/repository"
	draftService "salon/internal/domains/draft/service"
	uploadService "salon/internal/domains/upload/service"

	availabilityHandler "salon/internal/handlers/availability"
	bookingHandler "salon/internal/handlers/booking"
	catalogHandler "salon/internal/handlers/catalog"
	draftHandler "salon/internal/handlers/draft"
	healthHandler "salon/internal/handlers/health"
	uploadHandler "salon/internal/handlers/upload"
	webhookHandler "salon/internal/handlers/webhook"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	s3.New,
	kafka.New,
	automation.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewSecretMiddleware,
	middleware.NewSession,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var catalogDomain = wire.NewSet(
	catalogRepository.New,
	catalogService.New,
)

var bookingDomain = wire.NewSet(
	customerRepository.New,
	bookingRepository.New,
	bookingService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityService.New,
)

var draftDomain = wire.NewSet(
	draftRepository.New,
	draftService.New,
)

var uploadDomain = wire.NewSet(
	uploadService.New,
)

var domains = wire.NewSet(
	catalogDomain,
	bookingDomain,
	availabilityDomain,
	draftDomain,
	uploadDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	catalogHandler.New,
	availabilityHandler.New,
	bookingHandler.New,
	webhookHandler.New,
	uploadHandler.New,
	draftHandler.New,
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

