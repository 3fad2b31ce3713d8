//go:build wireinject
// +build wireinject

package di

import (
	"roombooking/config"
	"roombooking/infras/bookingapi"
	"roombooking/infras/kafka"
	"roombooking/infras/otel"
	"roombooking/infras/redis"
	"roombooking/permissions"
	"roombooking/shared/cache"
	"roombooking/transport/cli"
	"roombooking/transport/http"
	"roombooking/transport/http/middleware"
	"roombooking/transport/http/router"

	authRepository "roombooking/internal/domains/auth/repository"
	authService "roombooking/internal/domains/auth/service"
	bookingRepository "roombooking/internal/domains/booking/repository"
	bookingService "roombooking/internal/domains/booking/service"
	roomRepository "roombooking/internal/domains/room/repository"
	roomService "roombooking/internal/domains/room/service"
	sessionRepository "roombooking/internal/domains/session/repository"
	sessionService "roombooking/internal/domains/session/service"

	authHandler "roombooking/internal/handlers/auth"
	bookingHandler "roombooking/internal/handlers/booking"
	roomHandler "roombooking/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	kafka.New,
	bookingapi.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewPolicyMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var sessionDomain = wire.NewSet(
	sessionRepository.New,
	sessionService.New,
)

var authDomain = wire.NewSet(
	authRepository.New,
	authService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	sessionDomain,
	authDomain,
	roomDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	bookingHandler.New,
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

func InitializeCLI() *cli.CLI {
	wire.Build(
		config.Get,
		infrastructures,
		sharedHelpers,
		domains,
		cli.New,
	)

	return &cli.CLI{}
}
