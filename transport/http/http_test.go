package http

import (
	"context"
	"os"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	jwtMocks "hotel/infras/jwt/mocks"
	kafkaMocks "hotel/infras/kafka/mocks"
	"hotel/infras/otel"
	otelMocks "hotel/infras/otel/mocks"
	"hotel/infras/postgres"
	"hotel/permissions"
	"hotel/shared/constant"
	"hotel/transport/http/middleware"
	"hotel/transport/http/router"
)

type slowFlushOtel struct {
	otel.Otel
	flushed atomic.Bool
}

func (o *slowFlushOtel) Shutdown(_ context.Context) error {
	time.Sleep(300 * time.Millisecond)
	o.flushed.Store(true)

	return nil
}

func TestHTTP_ServeWaitsForShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)

	kafkaClient := kafkaMocks.NewMockClient(ctrl)
	kafkaClient.EXPECT().Close().Return(nil)

	// sql.Open does not dial, so the pools can be closed without a database.
	read, err := sqlx.Open("postgres", "postgres://hotel@127.0.0.1:1/hotel?sslmode=disable")
	require.NoError(t, err)
	write, err := sqlx.Open("postgres", "postgres://hotel@127.0.0.1:1/hotel?sslmode=disable")
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Server.Env = constant.ServerEnvDevelopment
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = "0"

	tracer := &slowFlushOtel{Otel: otelMocks.NewOtel()}

	server := New(
		cfg,
		router.New(router.DomainHandlers{}),
		&postgres.Connection{Read: read, Write: write},
		tracer,
		kafkaClient,
		middleware.NewAppMiddleware(tracer, cfg, nil),
		middleware.NewAuthRoleMiddleware(jwtMocks.NewMockJWT(ctrl), tracer, &permissions.PermissionData{}, cfg),
	)
	server.signals = make(chan os.Signal, 1)
	server.signals <- syscall.SIGTERM

	returned := make(chan struct{})

	go func() {
		server.Serve()
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after SIGTERM")
	}

	assert.True(t, tracer.flushed.Load(), "traces must be flushed before Serve returns")
	assert.Error(t, write.Ping(), "database pools must be closed before Serve returns")
}
