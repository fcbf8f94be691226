package service

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/guest/model"
	"hotel/internal/domains/guest/model/dto"
	"hotel/internal/domains/guest/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

var (
	cacheGetGuest    = constant.CacheKeyGuests + ":get"
	cacheGetAllGuest = constant.CacheKeyGuests + ":gets"
)

type Guest interface {
	Create(ctx context.Context, req dto.CreateGuestRequest) (dto.GuestResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetGuestsResponse, error)
	Get(ctx context.Context, id string) (dto.GuestResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateGuestRequest) (dto.GuestResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Guest
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Guest, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Guest {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateGuestRequest) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	guest := req.ToModel(shared.Actor(ctx))

	if err = s.repo.Insert(ctx, guest); err != nil {
		log.Error().Err(err).Msg("failed to create guest")

		return res, fmt.Errorf("failed to create guest: %w", err)
	}

	s.invalidate(ctx, guest.ID)

	res.FromModel(guest)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req = req.WithDefaultSort(model.FieldName, gDto.SortDirAsc)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllGuest, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count guests")

		return res, fmt.Errorf("failed to count guests: %w", err)
	}

	guests, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get guests")

		return res, fmt.Errorf("failed to get guests: %w", err)
	}

	res.FromModels(guests, total, req.Limit)

	cached := res

	shared.Detach(ctx, func(ctx context.Context) {
		if err := s.cache.Save(ctx, cacheKey, cached, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guests to cache")
		}
	})

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetGuest, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	guest, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(guest)

	cached := res

	shared.Detach(ctx, func(ctx context.Context) {
		if err := s.cache.Save(ctx, cacheKey, cached, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save guest to cache")
		}
	})

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateGuestRequest) (res dto.GuestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if _, err = s.find(ctx, id); err != nil {
		return res, err
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, shared.Actor(ctx)), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("guestId", id).Msg("failed to update guest")

		return res, fmt.Errorf("failed to update guest: %w", err)
	}

	s.invalidate(ctx, id)

	guest, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(guest)

	return res, nil
}

// Delete keeps the guest's bookings; they still reference the id.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.find(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("guestId", id).Msg("failed to delete guest")

		return fmt.Errorf("failed to delete guest: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Guest, error) {
	guest, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("guestId", id).Msg("failed to get guest")

		return guest, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == constant.Empty {
		return guest, failure.NotFound("guest not found") // nolint:wrapcheck
	}

	return guest, nil
}

// invalidate also drops booking listings, which embed the guest projection.
func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	shared.Detach(ctx, func(ctx context.Context) {
		if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetGuest, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete guest from cache")
		}

		shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyGuests, constant.CacheKeyBookings, constant.CacheKeyDashboard)
	})
}
