package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/kafka"
	kafkaMocks "hotel/infras/kafka/mocks"
	otelMocks "hotel/infras/otel/mocks"
	pgMocks "hotel/infras/postgres/mocks"
	bookingMocks "hotel/internal/domains/booking/mocks"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
	consumableMocks "hotel/internal/domains/consumable/mocks"
	consumableModel "hotel/internal/domains/consumable/model"
	guestMocks "hotel/internal/domains/guest/mocks"
	guestModel "hotel/internal/domains/guest/model"
	roomMocks "hotel/internal/domains/room/mocks"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
)

type fixture struct {
	bookings    *bookingMocks.MockBooking
	rooms       *roomMocks.MockRoom
	guests      *guestMocks.MockGuest
	consumables *consumableMocks.MockConsumable
	kafka       *kafkaMocks.MockClient
	cache       *cacheMocks.MockRedisCache
	cfg         *config.Config
	svc         service.Booking
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		bookings:    bookingMocks.NewMockBooking(ctrl),
		rooms:       roomMocks.NewMockRoom(ctrl),
		guests:      guestMocks.NewMockGuest(ctrl),
		consumables: consumableMocks.NewMockConsumable(ctrl),
		kafka:       kafkaMocks.NewMockClient(ctrl),
		cache:       cacheMocks.NewMockRedisCache(ctrl),
		cfg:         &config.Config{},
	}
	f.cfg.Cache.TTL = 3600
	f.cfg.Kafka.Topics.BookingLifecycle = "hotel.booking.lifecycle"

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.bookings, f.rooms, f.guests, f.consumables, pgMocks.NewTransactor(), f.kafka, f.cfg, f.cache, otelMocks.NewOtel())

	return f
}

func idOf(filter gDto.FilterGroup) string {
	_, args := filter.GetWhereClause()
	id, _ := args[constant.FieldID].(string)

	return id
}

func userCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
}

func money(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func bookingWith(status model.Status) model.Booking {
	return model.Booking{
		ID:              "booking-1",
		GuestID:         "guest-1",
		RoomID:          "room-1",
		CheckIn:         time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:        time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC),
		Status:          status,
		TotalAmount:     money("600"),
		GuestsCount:     2,
		ConsumablesCost: decimal.Zero,
	}
}

func room() roomModel.Room {
	return roomModel.Room{ID: "room-1", Number: "101", Status: roomModel.StatusAvailable, Price: money("200")}
}

type edge struct {
	from model.Status
	to   model.Status
}

func TestBookingService_TransitionMatrix(t *testing.T) {
	statuses := []model.Status{
		model.StatusConfirmed,
		model.StatusCheckedIn,
		model.StatusCheckedOut,
		model.StatusCompleted,
		model.StatusCancelled,
	}

	// Allowed edges and the room status each one leaves behind; "" means the
	// room is not touched.
	allowed := map[edge]roomModel.Status{
		{model.StatusConfirmed, model.StatusCheckedIn}:  roomModel.StatusOccupied,
		{model.StatusCheckedIn, model.StatusCheckedOut}: roomModel.StatusCleaning,
		{model.StatusCheckedOut, model.StatusCompleted}: roomModel.StatusCleaning,
		{model.StatusConfirmed, model.StatusCancelled}:  "",
		{model.StatusCheckedIn, model.StatusCancelled}:  roomModel.StatusAvailable,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				f := newFixture(t)

				f.bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingWith(from), nil)

				wantRoom, ok := allowed[edge{from, to}]
				if !ok {
					_, err := f.svc.Transition(userCtx(), "booking-1", dto.TransitionRequest{Status: to})

					require.Error(t, err)
					assert.ErrorIs(t, err, failure.ErrIllegalTransition)
					assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

					return
				}

				f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room(), nil)
				f.bookings.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, values map[string]any, filter gDto.FilterGroup) error {
						assert.Equal(t, to, values[model.FieldStatus])
						assert.Equal(t, "user-1", values[model.FieldModifiedBy])
						assert.Equal(t, "booking-1", idOf(filter))

						return nil
					})

				if wantRoom != "" {
					f.rooms.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
						DoAndReturn(func(_ context.Context, _ *sqlx.Tx, values map[string]any, filter gDto.FilterGroup) error {
							assert.Equal(t, wantRoom, values[roomModel.FieldStatus])
							assert.Equal(t, "room-1", idOf(filter))

							return nil
						})
				}

				res, err := f.svc.Transition(userCtx(), "booking-1", dto.TransitionRequest{Status: to})

				shared.Drain()

				require.NoError(t, err)
				assert.Equal(t, to, res.Status)
				assert.Equal(t, "user-1", res.ModifiedBy)
			})
		}
	}
}

func TestBookingService_TransitionCompleteConsumesStock(t *testing.T) {
	f := newFixture(t)

	stock := map[string]consumableModel.Consumable{
		"c-soda":  {ID: "c-soda", Name: "Refrigerante", Price: money("6.50"), Stock: 10},
		"c-water": {ID: "c-water", Name: "Água", Price: money("4.00"), Stock: 3},
	}

	var locked []string

	f.bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingWith(model.StatusCheckedOut), nil)
	f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room(), nil)
	f.consumables.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, filter gDto.FilterGroup) (consumableModel.Consumable, error) {
			locked = append(locked, idOf(filter))

			return stock[idOf(filter)], nil
		}).Times(2)
	f.consumables.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, values map[string]any, filter gDto.FilterGroup) error {
			switch idOf(filter) {
			case "c-soda":
				assert.Equal(t, 7, values[consumableModel.FieldStock])
			case "c-water":
				assert.Equal(t, 0, values[consumableModel.FieldStock])
			}

			return nil
		}).Times(2)
	f.bookings.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, values map[string]any, _ gDto.FilterGroup) error {
			cost, _ := values[model.FieldConsumablesCost].(decimal.Decimal)
			total, _ := values[model.FieldTotalAmount].(decimal.Decimal)

			assert.True(t, money("31.50").Equal(cost), "cost %s", cost)
			assert.True(t, money("631.50").Equal(total), "total %s", total)

			return nil
		})
	f.rooms.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	res, err := f.svc.Transition(userCtx(), "booking-1", dto.TransitionRequest{
		Status: model.StatusCompleted,
		Consumables: []dto.ConsumableLine{
			{ConsumableID: "c-water", Quantity: 3},
			{ConsumableID: "c-soda", Quantity: 1},
			{ConsumableID: "c-soda", Quantity: 2},
		},
	})

	shared.Drain()

	require.NoError(t, err)
	assert.Equal(t, []string{"c-soda", "c-water"}, locked)
	assert.Equal(t, model.StatusCompleted, res.Status)
	assert.True(t, money("31.50").Equal(res.ConsumablesCost))
	assert.True(t, res.ConsumablesCost.LessThanOrEqual(res.TotalAmount))
}

func TestBookingService_TransitionRejections(t *testing.T) {
	tests := []struct {
		name     string
		req      dto.TransitionRequest
		setup    func(f *fixture)
		wantCode int
	}{
		{
			name:     "non-positive quantity",
			req:      dto.TransitionRequest{Status: model.StatusCompleted, Consumables: []dto.ConsumableLine{{ConsumableID: "c-1", Quantity: 0}}},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "consumables outside completion",
			req:      dto.TransitionRequest{Status: model.StatusCheckedOut, Consumables: []dto.ConsumableLine{{ConsumableID: "c-1", Quantity: 1}}},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown status",
			req:      dto.TransitionRequest{Status: model.Status("archived")},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "missing booking",
			req:  dto.TransitionRequest{Status: model.StatusCheckedIn},
			setup: func(f *fixture) {
				f.bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "missing room",
			req:  dto.TransitionRequest{Status: model.StatusCheckedIn},
			setup: func(f *fixture) {
				f.bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingWith(model.StatusConfirmed), nil)
				f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "insufficient stock leaves booking untouched",
			req:  dto.TransitionRequest{Status: model.StatusCompleted, Consumables: []dto.ConsumableLine{{ConsumableID: "c-1", Quantity: 5}}},
			setup: func(f *fixture) {
				f.bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingWith(model.StatusCheckedOut), nil)
				f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room(), nil)
				f.consumables.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(consumableModel.Consumable{ID: "c-1", Name: "Vinho", Price: money("80"), Stock: 4}, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "missing consumable",
			req:  dto.TransitionRequest{Status: model.StatusCompleted, Consumables: []dto.ConsumableLine{{ConsumableID: "c-1", Quantity: 1}}},
			setup: func(f *fixture) {
				f.bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingWith(model.StatusCheckedOut), nil)
				f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room(), nil)
				f.consumables.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(consumableModel.Consumable{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "database failure",
			req:  dto.TransitionRequest{Status: model.StatusCheckedIn},
			setup: func(f *fixture) {
				f.bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Booking{}, errors.New("deadlock detected"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			if tt.setup != nil {
				tt.setup(f)
			}

			_, err := f.svc.Transition(userCtx(), "booking-1", tt.req)

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
			assert.NotErrorIs(t, err, failure.ErrIllegalTransition)
		})
	}
}

func TestBookingService_TransitionPublishesEvent(t *testing.T) {
	f := newFixture(t)
	f.cfg.Kafka.Enable = true

	published := make(chan kafka.Message, 1)

	f.bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingWith(model.StatusConfirmed), nil)
	f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room(), nil)
	f.bookings.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.rooms.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.kafka.EXPECT().SendMessages(gomock.Any(), "hotel.booking.lifecycle", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			published <- messages[0]

			return nil
		})

	_, err := f.svc.Transition(userCtx(), "booking-1", dto.TransitionRequest{Status: model.StatusCheckedIn})
	require.NoError(t, err)

	select {
	case msg := <-published:
		event, ok := msg.Value.(dto.LifecycleEvent)
		require.True(t, ok)

		assert.Equal(t, "booking-1", msg.Key)
		assert.Equal(t, dto.EventBookingTransitioned, msg.Event)
		assert.Equal(t, model.StatusConfirmed, event.From)
		assert.Equal(t, model.StatusCheckedIn, event.To)
		assert.Equal(t, string(roomModel.StatusOccupied), event.RoomStatus)
		assert.Equal(t, "user-1", event.Actor)
	case <-time.After(time.Second):
		t.Fatal("lifecycle event was not published")
	}
}

func TestBookingService_Create(t *testing.T) {
	guest := guestModel.Guest{ID: "guest-1", Name: "Maria", Email: "maria@example.com", Phone: "123"}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setup     func(f *fixture)
		wantCode  int
		wantTotal string
	}{
		{
			name:     "check-out not after check-in",
			req:      dto.CreateBookingRequest{GuestID: "guest-1", RoomID: "room-1", CheckIn: "2024-03-10", CheckOut: "2024-03-10", GuestsCount: 1},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown guest",
			req:  dto.CreateBookingRequest{GuestID: "guest-1", RoomID: "room-1", CheckIn: "2024-03-10", CheckOut: "2024-03-12", GuestsCount: 1},
			setup: func(f *fixture) {
				f.guests.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guestModel.Guest{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "unknown room",
			req:  dto.CreateBookingRequest{GuestID: "guest-1", RoomID: "room-1", CheckIn: "2024-03-10", CheckOut: "2024-03-12", GuestsCount: 1},
			setup: func(f *fixture) {
				f.guests.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guest, nil)
				f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "prices the stay per night",
			req:  dto.CreateBookingRequest{GuestID: "guest-1", RoomID: "room-1", CheckIn: "2024-03-10", CheckOut: "2024-03-13", GuestsCount: 2},
			setup: func(f *fixture) {
				f.guests.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guest, nil)
				f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room(), nil)
				f.bookings.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, model.StatusConfirmed, booking.Status)
						assert.True(t, booking.ConsumablesCost.IsZero())

						return nil
					})
			},
			wantTotal: "600",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			if tt.setup != nil {
				tt.setup(f)
			}

			res, err := f.svc.Create(userCtx(), tt.req)

			shared.Drain()

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.True(t, money(tt.wantTotal).Equal(res.TotalAmount), "total %s", res.TotalAmount)
			require.NotNil(t, res.Guest)
			assert.Equal(t, "Maria", res.Guest.Name)
			require.NotNil(t, res.Room)
			assert.Equal(t, "101", res.Room.Number)
		})
	}
}

func TestBookingService_Update(t *testing.T) {
	checkOut := "2024-03-15"
	guests := 3

	t.Run("terminal booking is immutable", func(t *testing.T) {
		for _, status := range []model.Status{model.StatusCompleted, model.StatusCancelled} {
			f := newFixture(t)

			f.bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingWith(status), nil)

			_, err := f.svc.Update(userCtx(), "booking-1", dto.UpdateBookingRequest{GuestsCount: &guests})

			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		}
	})

	t.Run("new dates reprice the stay", func(t *testing.T) {
		f := newFixture(t)

		updated := bookingWith(model.StatusConfirmed)
		updated.CheckOut = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		updated.TotalAmount = money("1000")

		f.bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingWith(model.StatusConfirmed), nil)
		f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room(), nil)
		f.bookings.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, values map[string]any, _ gDto.FilterGroup) error {
				total, _ := values[model.FieldTotalAmount].(decimal.Decimal)

				assert.True(t, money("1000").Equal(total), "total %s", total)
				assert.Equal(t, checkOut, values["check_out"])
				assert.NotContains(t, values, model.FieldStatus)

				return nil
			})
		f.bookings.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(updated, nil)

		res, err := f.svc.Update(userCtx(), "booking-1", dto.UpdateBookingRequest{CheckOut: &checkOut})

		shared.Drain()

		require.NoError(t, err)
		assert.Equal(t, checkOut, res.CheckOut)
	})

	t.Run("dates out of order", func(t *testing.T) {
		f := newFixture(t)
		early := "2024-03-09"

		f.bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingWith(model.StatusCheckedIn), nil)

		_, err := f.svc.Update(userCtx(), "booking-1", dto.UpdateBookingRequest{CheckOut: &early})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestBookingService_Delete(t *testing.T) {
	t.Run("completed booking cannot be deleted", func(t *testing.T) {
		f := newFixture(t)

		f.bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingWith(model.StatusCompleted), nil)

		err := f.svc.Delete(userCtx(), "booking-1")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("missing booking", func(t *testing.T) {
		f := newFixture(t)

		f.bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		err := f.svc.Delete(userCtx(), "booking-1")

		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("checked-in booking releases its room", func(t *testing.T) {
		f := newFixture(t)

		f.bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingWith(model.StatusCheckedIn), nil)
		f.bookings.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.rooms.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, values map[string]any, filter gDto.FilterGroup) error {
				assert.Equal(t, roomModel.StatusAvailable, values[roomModel.FieldStatus])
				assert.Equal(t, "room-1", idOf(filter))

				return nil
			})

		err := f.svc.Delete(userCtx(), "booking-1")

		shared.Drain()

		assert.NoError(t, err)
	})

	t.Run("confirmed booking leaves room alone", func(t *testing.T) {
		f := newFixture(t)

		f.bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingWith(model.StatusConfirmed), nil)
		f.bookings.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.Delete(userCtx(), "booking-1")

		shared.Drain()

		assert.NoError(t, err)
	})
}

func TestBookingService_GetAll(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss")).Times(2)
	f.bookings.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	f.bookings.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Booking, error) {
			assert.Equal(t, model.FieldCheckIn, params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)

			return []model.Booking{bookingWith(model.StatusConfirmed)}, nil
		})

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.NewFilterGroup())

	shared.Drain()

	require.NoError(t, err)
	require.Len(t, res.Bookings, 1)
	assert.Nil(t, res.Bookings[0].Guest)
	assert.Equal(t, "2024-03-10", res.Bookings[0].CheckIn)
}

func TestBookingService_Get(t *testing.T) {
	t.Run("cache miss reads the repository", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Booking, error) {
				assert.Equal(t, "booking-1", idOf(filter))

				return bookingWith(model.StatusCheckedIn), nil
			})

		res, err := f.svc.Get(context.Background(), "booking-1")

		shared.Drain()

		require.NoError(t, err)
		assert.Equal(t, "booking-1", res.ID)
		assert.Equal(t, "guest-1", res.GuestID)
		assert.Equal(t, "room-1", res.RoomID)
		assert.Equal(t, "2024-03-10", res.CheckIn)
		assert.Equal(t, "2024-03-13", res.CheckOut)
		assert.Equal(t, model.StatusCheckedIn, res.Status)
		assert.True(t, money("600").Equal(res.TotalAmount))
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				value.(*dto.BookingResponse).ID = "booking-1"

				return nil
			})

		res, err := f.svc.Get(context.Background(), "booking-1")

		require.NoError(t, err)
		assert.Equal(t, "booking-1", res.ID)
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

		_, err := f.svc.Get(context.Background(), "booking-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("repository failure", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, errors.New("connection reset"))

		_, err := f.svc.Get(context.Background(), "booking-1")

		require.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestBookingService_CreateThenGet(t *testing.T) {
	f := newFixture(t)

	var stored model.Booking

	f.guests.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guestModel.Guest{ID: "guest-1", Name: "Maria"}, nil)
	f.rooms.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room(), nil)
	f.bookings.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, booking model.Booking) error {
			stored = booking

			return nil
		})

	created, err := f.svc.Create(userCtx(), dto.CreateBookingRequest{
		GuestID:     "guest-1",
		RoomID:      "room-1",
		CheckIn:     "2024-03-10",
		CheckOut:    "2024-03-13",
		GuestsCount: 2,
	})

	shared.Drain()
	require.NoError(t, err)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
	f.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.Booking, error) {
			assert.Equal(t, created.ID, idOf(filter))

			return stored, nil
		})

	got, err := f.svc.Get(context.Background(), created.ID)

	shared.Drain()

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.GuestID, got.GuestID)
	assert.Equal(t, created.RoomID, got.RoomID)
	assert.Equal(t, "2024-03-10", got.CheckIn)
	assert.Equal(t, "2024-03-13", got.CheckOut)
	assert.Equal(t, model.StatusConfirmed, got.Status)
	assert.True(t, created.TotalAmount.Equal(got.TotalAmount))
}

func TestBookingService_TracesErrors(t *testing.T) {
	f := newFixture(t)
	recorder := otelMocks.NewRecorder()
	svc := service.New(f.bookings, f.rooms, f.guests, f.consumables, pgMocks.NewTransactor(), f.kafka, f.cfg, f.cache, recorder)

	f.bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingWith(model.StatusCompleted), nil)

	_, err := svc.Transition(userCtx(), "booking-1", dto.TransitionRequest{Status: model.StatusCheckedIn})
	require.Error(t, err)

	traced := recorder.Errors(constant.OtelServiceScopeName + ".Transition")
	require.Len(t, traced, 1)
	assert.ErrorIs(t, traced[0], failure.ErrIllegalTransition)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
	f.bookings.EXPECT().Get(gomock.Any(), gomock.Any()).Return(bookingWith(model.StatusConfirmed), nil)

	_, err = svc.Get(context.Background(), "booking-1")

	shared.Drain()

	require.NoError(t, err)
	assert.Empty(t, recorder.Errors(constant.OtelServiceScopeName+".Get"))
}
