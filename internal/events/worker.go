package events

import (
	"context"
	"errors"
	"fmt"
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/shared"

	"github.com/rs/zerolog/log"
)

var ErrKafkaDisabled = errors.New("kafka is disabled")

type Worker struct {
	cfg       *config.Config
	client    kafka.Client
	otel      otel.Otel
	lifecycle *BookingLifecycle
}

func NewWorker(cfg *config.Config, client kafka.Client, otel otel.Otel, lifecycle *BookingLifecycle) *Worker {
	return &Worker{
		cfg:       cfg,
		client:    client,
		otel:      otel,
		lifecycle: lifecycle,
	}
}

// Run consumes booking lifecycle events until ctx is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	if !w.cfg.Kafka.Enable {
		return ErrKafkaDisabled
	}

	defer func() {
		shared.Drain()

		if err := w.client.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close kafka client")
		}

		if err := w.otel.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("failed to flush traces")
		}
	}()

	topic := w.cfg.Kafka.Topics.BookingLifecycle

	if err := w.client.Consume(ctx, w.cfg.Kafka.ConsumerGroup, topic, w.lifecycle.Handle); err != nil {
		return fmt.Errorf("failed to consume %s: %w", topic, err)
	}

	return nil
}
