//go:build wireinject
// +build wireinject

package di

import (
	"hotel/config"
	"hotel/infras/jwt"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/infras/redis"
	"hotel/infras/s3"
	"hotel/internal/events"
	"hotel/permissions"
	"hotel/shared/cache"
	"hotel/transport/http"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"

	"github.com/google/wire"

	authService "hotel/internal/domains/auth/service"
	bookingRepository "hotel/internal/domains/booking/repository"
	bookingService "hotel/internal/domains/booking/service"
	cleaningRepository "hotel/internal/domains/cleaning/repository"
	cleaningService "hotel/internal/domains/cleaning/service"
	consumableRepository "hotel/internal/domains/consumable/repository"
	consumableService "hotel/internal/domains/consumable/service"
	dashboardRepository "hotel/internal/domains/dashboard/repository"
	dashboardService "hotel/internal/domains/dashboard/service"
	employeeRepository "hotel/internal/domains/employee/repository"
	employeeService "hotel/internal/domains/employee/service"
	guestRepository "hotel/internal/domains/guest/repository"
	guestService "hotel/internal/domains/guest/service"
	roomRepository "hotel/internal/domains/room/repository"
	roomService "hotel/internal/domains/room/service"
	userRepository "hotel/internal/domains/user/repository"
	userService "hotel/internal/domains/user/service"

	authHandler "hotel/internal/handlers/auth"
	bookingHandler "hotel/internal/handlers/booking"
	cleaningHandler "hotel/internal/handlers/cleaning"
	consumableHandler "hotel/internal/handlers/consumable"
	dashboardHandler "hotel/internal/handlers/dashboard"
	employeeHandler "hotel/internal/handlers/employee"
	guestHandler "hotel/internal/handlers/guest"
	roomHandler "hotel/internal/handlers/room"
	userHandler "hotel/internal/handlers/user"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var repositories = wire.NewSet(
	userRepository.New,
	roomRepository.New,
	guestRepository.New,
	employeeRepository.New,
	consumableRepository.New,
	bookingRepository.New,
	cleaningRepository.New,
	dashboardRepository.New,
)

var domains = wire.NewSet(
	repositories,
	authService.New,
	userService.New,
	roomService.New,
	guestService.New,
	employeeService.New,
	consumableService.New,
	bookingService.New,
	cleaningService.New,
	dashboardService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	roomHandler.New,
	guestHandler.New,
	employeeHandler.New,
	consumableHandler.New,
	bookingHandler.New,
	cleaningHandler.New,
	dashboardHandler.New,
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

func InitializeWorker() *events.Worker {
	wire.Build(
		config.Get,
		postgres.New,
		otel.New,
		redis.New,
		kafka.New,
		sharedHelpers,
		consumableRepository.New,
		consumableService.New,
		events.NewBookingLifecycle,
		events.NewWorker,
	)

	return &events.Worker{}
}
