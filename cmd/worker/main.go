package main

import (
	"context"
	"errors"
	"hotel/config"
	"hotel/di"
	"hotel/internal/events"
	"hotel/shared/logger"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
)

func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.SetLogLevel(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	worker := di.InitializeWorker()

	log.Info().Str("topic", cfg.Kafka.Topics.BookingLifecycle).Msg("starting booking lifecycle worker")

	err := worker.Run(ctx)

	switch {
	case errors.Is(err, events.ErrKafkaDisabled):
		log.Warn().Msg("kafka is disabled, worker has nothing to consume")
	case err != nil && !errors.Is(err, context.Canceled):
		log.Fatal().Err(err).Msg("worker stopped")
	default:
		log.Info().Msg("worker stopped")
	}
}
