package http

import (
	"context"
	"errors"
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/shared"
	"hotel/shared/constant"
	"hotel/transport/http/middleware"
	"hotel/transport/http/response"
	"hotel/transport/http/router"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "hotel/docs" // registers the swagger document
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const (
	readHeaderTimeout = 10 * time.Second
	healthTimeout     = 3 * time.Second
)

type HTTP struct {
	Config   *config.Config
	Router   router.Router
	DB       *postgres.Connection
	Otel     otel.Otel
	Kafka    kafka.Client
	App      middleware.AppMiddleware
	AuthRole middleware.AuthRole

	state   atomic.Int32
	mux     *chi.Mux
	server  *http.Server
	signals chan os.Signal
	done    chan struct{}
}

func New(
	cfg *config.Config,
	r router.Router,
	db *postgres.Connection,
	otl otel.Otel,
	kafkaClient kafka.Client,
	app middleware.AppMiddleware,
	authRole middleware.AuthRole,
) *HTTP {
	return &HTTP{
		Config:   cfg,
		Router:   r,
		DB:       db,
		Otel:     otl,
		Kafka:    kafkaClient,
		App:      app,
		AuthRole: authRole,
	}
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

// Serve blocks until the server has stopped and its resources are released.
func (h *HTTP) Serve() {
	h.setup()

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	h.done = make(chan struct{})

	h.setupGracefulShutdown()

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}

	<-h.done
}

// ServeHTTP lets the server run behind a serverless entry point without
// owning the listener or the signal handling.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.mux == nil {
		h.setup()
	}

	h.mux.ServeHTTP(w, r)
}

func (h *HTTP) setup() {
	h.mux = chi.NewRouter()

	h.mux.Use(chiMiddleware.RequestID)
	h.mux.Use(chiMiddleware.Recoverer)
	h.mux.Use(h.serverState)

	if h.Config.App.CORS.Enable {
		h.mux.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.Config.App.CORS.AllowedOrigins,
			AllowedMethods:   h.Config.App.CORS.AllowedMethods,
			AllowedHeaders:   h.Config.App.CORS.AllowedHeaders,
			AllowCredentials: h.Config.App.CORS.AllowCredentials,
			MaxAge:           h.Config.App.CORS.MaxAgeSeconds,
		}))
	}

	h.mux.Get("/health", h.health)

	if h.Config.Server.Env != constant.ServerEnvProduction {
		h.mux.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	h.mux.Group(func(r chi.Router) {
		r.Use(h.App.Tracing)
		r.Use(h.App.RateLimit())
		r.Use(h.AuthRole.APIKey)
		r.Use(h.AuthRole.Auth)
		r.Use(h.AuthRole.RBAC)

		h.Router.SetupRoutes(r)
	})

	h.state.Store(int32(ServerStateReady))
}

func (h *HTTP) serverState(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.State() == ServerStateInCleanupPeriod {
			response.WithPreparingShutdown(w)

			return
		}

		next.ServeHTTP(w, r)
	})
}

// health reports unhealthy as soon as the grace period starts so load
// balancers drain the instance before it stops accepting requests.
func (h *HTTP) health(w http.ResponseWriter, r *http.Request) {
	if h.State() != ServerStateReady {
		response.WithPreparingShutdown(w)

		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.DB.Ping(ctx); err != nil {
		log.Error().Err(err).Msg("health check failed")
		response.WithUnhealthy(w)

		return
	}

	response.WithMessage(w, http.StatusOK, "OK")
}

func (h *HTTP) setupGracefulShutdown() {
	if h.signals == nil {
		h.signals = make(chan os.Signal, 1)
	}

	signal.Notify(h.signals, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(h.signals)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	defer h.shutdown()

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.state.Store(int32(ServerStateInGracePeriod))

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.state.Store(int32(ServerStateInCleanupPeriod))

	time.Sleep(time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

func (h *HTTP) shutdown() {
	defer close(h.done)

	ctx, cancel := context.WithTimeout(context.Background(), readHeaderTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("failed to shut down HTTP server")
	}

	shared.Drain()

	if err := h.Kafka.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close kafka client")
	}

	if err := h.DB.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close database connections")
	}

	if err := h.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("failed to flush traces")
	}
}
