package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotel/config"
	kafkaMocks "hotel/infras/kafka/mocks"
	"hotel/infras/otel/mocks"
	consumableMocks "hotel/internal/domains/consumable/service/mocks"
	"hotel/internal/events"
	cacheMocks "hotel/shared/cache/mocks"
)

func TestWorker_Run(t *testing.T) {
	newWorker := func(t *testing.T, enable bool) (*kafkaMocks.MockClient, *events.Worker) {
		t.Helper()

		ctrl := gomock.NewController(t)
		client := kafkaMocks.NewMockClient(ctrl)

		cfg := &config.Config{}
		cfg.Kafka.Enable = enable
		cfg.Kafka.ConsumerGroup = "hotel-worker"
		cfg.Kafka.Topics.BookingLifecycle = "hotel.booking.lifecycle"

		otl := mocks.NewOtel()
		lifecycle := events.NewBookingLifecycle(consumableMocks.NewMockConsumable(ctrl), cacheMocks.NewMockRedisCache(ctrl), otl)

		return client, events.NewWorker(cfg, client, otl, lifecycle)
	}

	t.Run("disabled", func(t *testing.T) {
		_, worker := newWorker(t, false)

		assert.ErrorIs(t, worker.Run(context.Background()), events.ErrKafkaDisabled)
	})

	t.Run("consumes the lifecycle topic", func(t *testing.T) {
		client, worker := newWorker(t, true)

		client.EXPECT().Consume(gomock.Any(), "hotel-worker", "hotel.booking.lifecycle", gomock.Any()).Return(nil)
		client.EXPECT().Close().Return(nil)

		assert.NoError(t, worker.Run(context.Background()))
	})

	t.Run("consumer failure", func(t *testing.T) {
		client, worker := newWorker(t, true)

		client.EXPECT().Consume(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("topic name cannot be empty"))
		client.EXPECT().Close().Return(nil)

		assert.Error(t, worker.Run(context.Background()))
	})
}
