package events

import (
	"context"
	"fmt"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	bookingModel "hotel/internal/domains/booking/model"
	bookingDto "hotel/internal/domains/booking/model/dto"
	consumableService "hotel/internal/domains/consumable/service"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

// BookingLifecycle reacts to committed booking changes: it drops the cached
// dashboard figures and warns about consumables that a checkout pushed to or
// below their minimum stock.
type BookingLifecycle struct {
	consumables consumableService.Consumable
	cache       cache.RedisCache
	otel        otel.Otel
}

func NewBookingLifecycle(consumables consumableService.Consumable, cache cache.RedisCache, otel otel.Otel) *BookingLifecycle {
	return &BookingLifecycle{
		consumables: consumables,
		cache:       cache,
		otel:        otel,
	}
}

// Handle satisfies kafka.Handler.
func (b *BookingLifecycle) Handle(ctx context.Context, msg kafkaGo.Message) (err error) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".BookingLifecycle")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event, err := kafka.Decode[bookingDto.LifecycleEvent](msg)
	if err != nil {
		log.Error().Err(err).Str("key", string(msg.Key)).Msg("failed to decode booking lifecycle event")

		return err
	}

	scope.SetAttributes(map[string]any{
		"booking.id":   event.BookingID,
		"booking.to":   string(event.To),
		"event.name":   kafka.EventOf(msg),
		"event.actor":  event.Actor,
		"event.lines":  len(event.Consumables),
		"booking.room": event.RoomID,
	})

	shared.InvalidateCaches(ctx, b.cache, constant.CacheKeyDashboard)

	if event.To != bookingModel.StatusCompleted || len(event.Consumables) == 0 {
		return nil
	}

	low, err := b.consumables.GetLowStock(ctx, event.ConsumableIDs()...)
	if err != nil {
		log.Error().Err(err).Str("booking_id", event.BookingID).Msg("failed to check consumable stock")

		return fmt.Errorf("failed to check consumable stock: %w", err)
	}

	for _, consumable := range low {
		log.Warn().
			Str("consumable_id", consumable.ID).
			Str("name", consumable.Name).
			Int("stock", consumable.Stock).
			Int("min_stock", consumable.MinStock).
			Str("booking_id", event.BookingID).
			Msg("consumable stock is low")
	}

	return nil
}
