package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/infras/otel/mocks"
	bookingModel "hotel/internal/domains/booking/model"
	bookingDto "hotel/internal/domains/booking/model/dto"
	consumableDto "hotel/internal/domains/consumable/model/dto"
	consumableMocks "hotel/internal/domains/consumable/service/mocks"
	"hotel/internal/events"
	cacheMocks "hotel/shared/cache/mocks"
)

func message(t *testing.T, event bookingDto.LifecycleEvent) kafka.Message {
	t.Helper()

	raw, err := json.Marshal(event)
	require.NoError(t, err)

	return kafka.Message{
		Key:     []byte(event.BookingID),
		Value:   raw,
		Headers: []kafka.Header{{Key: "event", Value: []byte(bookingDto.EventBookingTransitioned)}},
	}
}

func TestBookingLifecycle_Handle(t *testing.T) {
	tests := []struct {
		name      string
		msg       func(t *testing.T) kafka.Message
		setupMock func(svc *consumableMocks.MockConsumable)
		wantErr   bool
	}{
		{
			name: "check-in only refreshes the dashboard",
			msg: func(t *testing.T) kafka.Message {
				t.Helper()

				return message(t, bookingDto.LifecycleEvent{BookingID: "b-1", From: bookingModel.StatusConfirmed, To: bookingModel.StatusCheckedIn})
			},
		},
		{
			name: "checkout with consumables checks their stock",
			msg: func(t *testing.T) kafka.Message {
				t.Helper()

				return message(t, bookingDto.LifecycleEvent{
					BookingID: "b-1",
					From:      bookingModel.StatusCheckedIn,
					To:        bookingModel.StatusCompleted,
					Consumables: []bookingDto.ConsumableLine{
						{ConsumableID: "c-soda", Quantity: 2},
						{ConsumableID: "c-water", Quantity: 1},
					},
				})
			},
			setupMock: func(svc *consumableMocks.MockConsumable) {
				svc.EXPECT().GetLowStock(gomock.Any(), "c-soda", "c-water").
					Return([]consumableDto.ConsumableResponse{{ID: "c-water", Name: "Water", Stock: 0, MinStock: 5, LowStock: true}}, nil)
			},
		},
		{
			name: "checkout without consumables",
			msg: func(t *testing.T) kafka.Message {
				t.Helper()

				return message(t, bookingDto.LifecycleEvent{BookingID: "b-1", To: bookingModel.StatusCompleted})
			},
		},
		{
			name: "stock lookup failure is reported",
			msg: func(t *testing.T) kafka.Message {
				t.Helper()

				return message(t, bookingDto.LifecycleEvent{
					BookingID:   "b-1",
					To:          bookingModel.StatusCompleted,
					Consumables: []bookingDto.ConsumableLine{{ConsumableID: "c-soda", Quantity: 1}},
				})
			},
			setupMock: func(svc *consumableMocks.MockConsumable) {
				svc.EXPECT().GetLowStock(gomock.Any(), "c-soda").Return(nil, errors.New("timeout"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := consumableMocks.NewMockConsumable(ctrl)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)

			mockCache.EXPECT().Clear(gomock.Any(), "dashboard:*").Return(nil)

			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			handler := events.NewBookingLifecycle(svc, mockCache, mocks.NewOtel())

			err := handler.Handle(context.Background(), tt.msg(t))

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}

	t.Run("malformed payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		handler := events.NewBookingLifecycle(consumableMocks.NewMockConsumable(ctrl), cacheMocks.NewMockRedisCache(ctrl), mocks.NewOtel())

		err := handler.Handle(context.Background(), kafka.Message{Value: []byte("{")})

		assert.Error(t, err)
	})
}
