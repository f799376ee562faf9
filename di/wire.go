//go:build wireinject
// +build wireinject

package di

import (
	"hostly/config"
	"hostly/infras/jwt"
	"hostly/infras/kafka"
	"hostly/infras/otel"
	"hostly/infras/postgres"
	"hostly/infras/rabbitmq"
	"hostly/infras/redis"
	"hostly/infras/s3"
	"hostly/infras/twilio"
	"hostly/internal/events/observer"
	"hostly/permissions"
	"hostly/shared/cache"
	"hostly/transport/http"
	"hostly/transport/http/middleware"
	"hostly/transport/http/router"
	"hostly/transport/scheduler"

	billingRepository "hostly/internal/domains/billing/repository"
	billingService "hostly/internal/domains/billing/service"
	bookingRepository "hostly/internal/domains/booking/repository"
	bookingService "hostly/internal/domains/booking/service"
	hostRepository "hostly/internal/domains/host/repository"
	paymentRepository "hostly/internal/domains/payment/repository"
	"hostly/internal/domains/payment/strategy"
	productRepository "hostly/internal/domains/product/repository"
	userRepository "hostly/internal/domains/user/repository"
	userService "hostly/internal/domains/user/service"
	gRepository "hostly/shared/repository"

	bookingHandler "hostly/internal/handlers/booking"
	healthHandler "hostly/internal/handlers/health"
	invoiceHandler "hostly/internal/handlers/invoice"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
	rabbitmq.New,
	twilio.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	gRepository.NewTransactor,
)

var identityDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var billingDomain = wire.NewSet(
	billingRepository.New,
	billingService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	hostRepository.New,
	productRepository.New,
	paymentRepository.New,
	strategy.NewSelector,
	observer.NewDispatcher,
	wire.Struct(new(bookingService.Dependencies),
		"Repo", "Identity", "Billing", "Strategies", "Products", "Hosts", "Payments",
		"Transactor", "Storage", "Dispatcher", "Config", "Cache", "Otel"),
	bookingService.New,
)

var domains = wire.NewSet(
	identityDomain,
	billingDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	healthHandler.New,
	bookingHandler.New,
	invoiceHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}, nil
}

func InitializeScheduler() *scheduler.Scheduler {
	wire.Build(
		configurations,
		postgres.New,
		otel.New,
		redis.New,
		cache.NewRedisCache,
		billingDomain,
		scheduler.New,
	)

	return &scheduler.Scheduler{}
}
