package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	consumableModel "hotel/internal/domains/consumable/model"
	consumableRepo "hotel/internal/domains/consumable/repository"
	guestModel "hotel/internal/domains/guest/model"
	guestRepo "hotel/internal/domains/guest/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	cacheGetBooking    = constant.CacheKeyBookings + ":get"
	cacheGetAllBooking = constant.CacheKeyBookings + ":gets"
	cacheCountBooking  = constant.CacheKeyBookings + ":count"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateBookingRequest) (dto.BookingResponse, error)
	Transition(ctx context.Context, id string, req dto.TransitionRequest) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo           repository.Booking
	roomRepo       roomRepo.Room
	guestRepo      guestRepo.Guest
	consumableRepo consumableRepo.Consumable
	transactor     postgres.Transactor
	kafka          kafka.Client
	cfg            *config.Config
	cache          cache.RedisCache
	otel           otel.Otel
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	guestRepo guestRepo.Guest,
	consumableRepo consumableRepo.Consumable,
	transactor postgres.Transactor,
	kafka kafka.Client,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:           repo,
		roomRepo:       roomRepo,
		guestRepo:      guestRepo,
		consumableRepo: consumableRepo,
		transactor:     transactor,
		kafka:          kafka,
		cfg:            cfg,
		cache:          cache,
		otel:           otel,
	}
}

// Create books a room for a guest. Overlapping stays are not checked.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkIn, checkOut, err := req.Stay()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	guest, err := s.guestRepo.Get(ctx, shared.FilterByID(req.GuestID, guestModel.FieldID, guestModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("guestId", req.GuestID).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == constant.Empty {
		return res, failure.NotFound("guest not found") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("roomId", req.RoomID).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	booking := req.ToModel(shared.Actor(ctx), checkIn, checkOut, room.Price)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	booking.GuestName, booking.GuestEmail, booking.GuestPhone = &guest.Name, &guest.Email, &guest.Phone
	roomType := string(room.Type)
	booking.RoomNumber, booking.RoomType = &room.Number, &roomType
	booking.RoomPrice = decimal.NewNullDecimal(room.Price)

	s.invalidate(ctx, booking.ID)
	s.publish(ctx, dto.EventBookingCreated, dto.LifecycleEvent{
		BookingID:   booking.ID,
		GuestID:     booking.GuestID,
		RoomID:      booking.RoomID,
		To:          booking.Status,
		TotalAmount: booking.TotalAmount,
	})

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req = req.WithDefaultSort(model.FieldCheckIn, gDto.SortDirDesc)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, gDto.QueryParams{}, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	booking, err := s.repo.Get(ctx, s.byID(id))
	if err != nil {
		log.Error().Err(err).Str("bookingId", id).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	s.save(ctx, cacheKey, res)

	return res, nil
}

// Update edits an open booking. New dates reprice the stay from the room's
// current price.
func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	var updated model.Booking

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		booking, err := s.lockBooking(ctx, tx, id)
		if err != nil {
			return err
		}

		if booking.Status.IsTerminal() {
			return failure.BadRequestFromString(fmt.Sprintf("cannot modify a %s booking", booking.Status)) // nolint:wrapcheck
		}

		values := shared.TransformFields(req, shared.Actor(ctx))

		if req.ChangesStay() {
			checkIn, checkOut, err := req.Stay(booking)
			if err != nil {
				return failure.BadRequest(err) // nolint:wrapcheck
			}

			room, err := s.roomRepo.GetForUpdateTx(ctx, tx, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName))
			if err != nil {
				log.Error().Err(err).Str("roomId", booking.RoomID).Msg("failed to get room")

				return fmt.Errorf("failed to get room: %w", err)
			}

			if room.ID == constant.Empty {
				return failure.NotFound("room not found") // nolint:wrapcheck
			}

			values[model.FieldTotalAmount] = model.StayAmount(room.Price, checkIn, checkOut).Add(booking.ConsumablesCost)
		}

		if err = s.repo.UpdateTx(ctx, tx, values, s.byID(id)); err != nil {
			log.Error().Err(err).Str("bookingId", id).Msg("failed to update booking")

			return fmt.Errorf("failed to update booking: %w", err)
		}

		if updated, err = s.repo.GetTx(ctx, tx, s.byID(id)); err != nil {
			log.Error().Err(err).Str("bookingId", id).Msg("failed to reload booking")

			return fmt.Errorf("failed to reload booking: %w", err)
		}

		return nil
	})
	if err != nil {
		return res, err
	}

	s.invalidate(ctx, id)

	res.FromModel(updated)

	return res, nil
}

// Transition moves a booking along its lifecycle. The booking row is locked
// first, then its room, then each consumed item in id order; booking, room
// and stock changes commit together or not at all.
func (s *serviceImpl) Transition(ctx context.Context, id string, req dto.TransitionRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Transition")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !req.Status.IsValid() {
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown booking status %q", req.Status)) // nolint:wrapcheck
	}

	lines, err := req.Lines()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if len(lines) > 0 && req.Status != model.StatusCompleted {
		return res, failure.BadRequestFromString("consumables can only be recorded when completing a booking") // nolint:wrapcheck
	}

	actor := shared.Actor(ctx)

	var (
		booking    model.Booking
		from       model.Status
		roomStatus roomModel.Status
	)

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		var err error

		if booking, err = s.lockBooking(ctx, tx, id); err != nil {
			return err
		}

		from = booking.Status
		if !from.CanTransitionTo(req.Status) {
			return failure.IllegalTransition(string(from), string(req.Status)) // nolint:wrapcheck
		}

		roomFilter := shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName)

		room, err := s.roomRepo.GetForUpdateTx(ctx, tx, roomFilter)
		if err != nil {
			log.Error().Err(err).Str("roomId", booking.RoomID).Msg("failed to lock room")

			return fmt.Errorf("failed to lock room: %w", err)
		}

		if room.ID == constant.Empty {
			return failure.NotFound("room not found") // nolint:wrapcheck
		}

		now := timezone.Now()
		values := map[string]any{
			model.FieldStatus:     req.Status,
			model.FieldModifiedAt: now,
			model.FieldModifiedBy: actor,
		}

		if req.Status == model.StatusCompleted {
			cost, err := s.consume(ctx, tx, lines, actor)
			if err != nil {
				return err
			}

			booking.ConsumablesCost = cost
			booking.TotalAmount = booking.TotalAmount.Add(cost)
			values[model.FieldConsumablesCost] = booking.ConsumablesCost
			values[model.FieldTotalAmount] = booking.TotalAmount
		}

		if err = s.repo.UpdateTx(ctx, tx, values, s.byID(id)); err != nil {
			log.Error().Err(err).Str("bookingId", id).Msg("failed to update booking status")

			return fmt.Errorf("failed to update booking status: %w", err)
		}

		if next, ok := model.RoomStatusAfter(from, req.Status); ok {
			roomValues := map[string]any{
				roomModel.FieldStatus:     next,
				roomModel.FieldModifiedAt: now,
				roomModel.FieldModifiedBy: actor,
			}

			if err = s.roomRepo.UpdateTx(ctx, tx, roomValues, roomFilter); err != nil {
				log.Error().Err(err).Str("roomId", booking.RoomID).Msg("failed to update room status")

				return fmt.Errorf("failed to update room status: %w", err)
			}

			roomStatus = next
		}

		booking.Status = req.Status
		booking.ModifiedAt = now
		booking.ModifiedBy = actor

		return nil
	})
	if err != nil {
		return res, err
	}

	log.Info().Str("bookingId", id).Str("from", string(from)).Str("to", string(req.Status)).Msg("booking transitioned")

	prefixes := []string{constant.CacheKeyRooms}
	if len(lines) > 0 {
		prefixes = append(prefixes, constant.CacheKeyConsumables)
	}

	s.invalidate(ctx, id, prefixes...)
	s.publish(ctx, dto.EventBookingTransitioned, dto.LifecycleEvent{
		BookingID:       booking.ID,
		GuestID:         booking.GuestID,
		RoomID:          booking.RoomID,
		From:            from,
		To:              booking.Status,
		RoomStatus:      string(roomStatus),
		TotalAmount:     booking.TotalAmount,
		ConsumablesCost: booking.ConsumablesCost,
		Consumables:     lines,
	})

	res.FromModel(booking)

	return res, nil
}

// Delete removes a booking that is not completed. A checked-in booking gives
// its room back.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actor := shared.Actor(ctx)

	var booking model.Booking

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		var err error

		if booking, err = s.lockBooking(ctx, tx, id); err != nil {
			return err
		}

		if booking.Status == model.StatusCompleted {
			return failure.BadRequestFromString("completed bookings cannot be deleted") // nolint:wrapcheck
		}

		if err = s.repo.DeleteTx(ctx, tx, s.byID(id)); err != nil {
			log.Error().Err(err).Str("bookingId", id).Msg("failed to delete booking")

			return fmt.Errorf("failed to delete booking: %w", err)
		}

		if booking.Status != model.StatusCheckedIn {
			return nil
		}

		roomValues := map[string]any{
			roomModel.FieldStatus:     roomModel.StatusAvailable,
			roomModel.FieldModifiedAt: timezone.Now(),
			roomModel.FieldModifiedBy: actor,
		}

		if err = s.roomRepo.UpdateTx(ctx, tx, roomValues, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName)); err != nil {
			log.Error().Err(err).Str("roomId", booking.RoomID).Msg("failed to release room")

			return fmt.Errorf("failed to release room: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx, id, constant.CacheKeyRooms)

	event := dto.LifecycleEvent{
		BookingID:       booking.ID,
		GuestID:         booking.GuestID,
		RoomID:          booking.RoomID,
		From:            booking.Status,
		TotalAmount:     booking.TotalAmount,
		ConsumablesCost: booking.ConsumablesCost,
	}
	if booking.Status == model.StatusCheckedIn {
		event.RoomStatus = string(roomModel.StatusAvailable)
	}

	s.publish(ctx, dto.EventBookingDeleted, event)

	return nil
}

func (s *serviceImpl) lockBooking(ctx context.Context, tx *sqlx.Tx, id string) (model.Booking, error) {
	booking, err := s.repo.GetForUpdateTx(ctx, tx, s.byID(id))
	if err != nil {
		log.Error().Err(err).Str("bookingId", id).Msg("failed to lock booking")

		return booking, fmt.Errorf("failed to lock booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

// consume draws each line from stock and returns what it costs. Asking for
// more than is in stock fails the whole transition.
func (s *serviceImpl) consume(ctx context.Context, tx *sqlx.Tx, lines []dto.ConsumableLine, actor string) (decimal.Decimal, error) {
	cost := decimal.Zero

	for _, line := range lines {
		filter := shared.FilterByID(line.ConsumableID, consumableModel.FieldID, consumableModel.TableName)

		consumable, err := s.consumableRepo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			log.Error().Err(err).Str("consumableId", line.ConsumableID).Msg("failed to lock consumable")

			return cost, fmt.Errorf("failed to lock consumable: %w", err)
		}

		if consumable.ID == constant.Empty {
			return cost, failure.NotFound(fmt.Sprintf("consumable %s not found", line.ConsumableID)) // nolint:wrapcheck
		}

		if line.Quantity > consumable.Stock {
			return cost, failure.BadRequestFromString(fmt.Sprintf( // nolint:wrapcheck
				"insufficient stock for %s: requested %d, available %d", consumable.Name, line.Quantity, consumable.Stock))
		}

		values := map[string]any{
			consumableModel.FieldStock: consumable.Stock - line.Quantity,
			constant.FieldModifiedAt:   timezone.Now(),
			constant.FieldModifiedBy:   actor,
		}

		if err = s.consumableRepo.UpdateTx(ctx, tx, values, filter); err != nil {
			log.Error().Err(err).Str("consumableId", line.ConsumableID).Msg("failed to update consumable stock")

			return cost, fmt.Errorf("failed to update consumable stock: %w", err)
		}

		cost = cost.Add(consumable.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	return cost, nil
}

func (s *serviceImpl) byID(id string) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	shared.Detach(ctx, func(ctx context.Context) {
		if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save booking cache")
		}
	})
}

// invalidate drops the booking, every booking listing, the dashboard and any
// extra namespaces the change touched.
func (s *serviceImpl) invalidate(ctx context.Context, id string, prefixes ...string) {
	shared.Detach(ctx, func(ctx context.Context) {
		if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(ctx, s.cache, append([]string{constant.CacheKeyBookings, constant.CacheKeyDashboard}, prefixes...)...)
	})
}

// publish emits a lifecycle event when Kafka is enabled. Delivery failures
// are logged; the booking change is already committed.
func (s *serviceImpl) publish(ctx context.Context, eventType string, event dto.LifecycleEvent) {
	if !s.cfg.Kafka.Enable {
		return
	}

	event.Actor = shared.Actor(ctx)
	event.OccurredAt = timezone.Now()

	shared.Detach(ctx, func(ctx context.Context) {
		msg := kafka.Message{
			Key:   event.BookingID,
			Event: eventType,
			Value: event,
		}

		if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.BookingLifecycle, msg); err != nil {
			log.Error().Err(err).Str("bookingId", event.BookingID).Str("event", eventType).Msg("failed to publish booking event")
		}
	})
}
