package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/consumable/model"
	"hotel/internal/domains/consumable/model/dto"
	"hotel/internal/domains/consumable/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

var (
	cacheGetConsumable    = constant.CacheKeyConsumables + ":get"
	cacheGetAllConsumable = constant.CacheKeyConsumables + ":gets"
	cacheLowStock         = constant.CacheKeyConsumables + ":low_stock"
)

type Consumable interface {
	Create(ctx context.Context, req dto.CreateConsumableRequest) (dto.ConsumableResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetConsumablesResponse, error)
	GetLowStock(ctx context.Context, ids ...string) ([]dto.ConsumableResponse, error)
	Get(ctx context.Context, id string) (dto.ConsumableResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateConsumableRequest) (dto.ConsumableResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Consumable
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Consumable, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Consumable {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateConsumableRequest) (res dto.ConsumableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	consumable := req.ToModel(shared.Actor(ctx))

	if err = s.repo.Insert(ctx, consumable); err != nil {
		log.Error().Err(err).Msg("failed to create consumable")

		return res, fmt.Errorf("failed to create consumable: %w", err)
	}

	s.invalidate(ctx, consumable.ID)

	res.FromModel(consumable)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetConsumablesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req = req.WithDefaultSort(model.FieldName, gDto.SortDirAsc)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllConsumable, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count consumables")

		return res, fmt.Errorf("failed to count consumables: %w", err)
	}

	consumables, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get consumables")

		return res, fmt.Errorf("failed to get consumables: %w", err)
	}

	res.FromModels(consumables, total, req.Limit)

	s.save(ctx, cacheKey, res)

	return res, nil
}

// GetLowStock lists consumables with stock at or below min_stock, optionally
// restricted to ids. The unrestricted listing is cached.
func (s *serviceImpl) GetLowStock(ctx context.Context, ids ...string) (res []dto.ConsumableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetLowStock")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.NewFilterGroup()
	filter.Add(repository.LowStockFilter())

	if len(ids) > 0 {
		filter.Add(gDto.Filter{
			Field:    model.FieldID,
			Value:    ids,
			Operator: gDto.FilterOperatorIn,
			Table:    model.TableName,
		})
	} else if err = s.cache.Get(ctx, cacheLowStock, &res); err == nil {
		return res, nil
	}

	consumables, err := s.repo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldStock, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get low stock consumables")

		return res, fmt.Errorf("failed to get low stock consumables: %w", err)
	}

	res = make([]dto.ConsumableResponse, len(consumables))
	for i, consumable := range consumables {
		res[i].FromModel(consumable)
	}

	if len(ids) == 0 {
		s.save(ctx, cacheLowStock, res)
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ConsumableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetConsumable, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	consumable, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(consumable)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateConsumableRequest) (res dto.ConsumableResponse, err error) {
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
		log.Error().Err(err).Str("consumableId", id).Msg("failed to update consumable")

		return res, fmt.Errorf("failed to update consumable: %w", err)
	}

	s.invalidate(ctx, id)

	consumable, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(consumable)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.find(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("consumableId", id).Msg("failed to delete consumable")

		return fmt.Errorf("failed to delete consumable: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Consumable, error) {
	consumable, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("consumableId", id).Msg("failed to get consumable")

		return consumable, fmt.Errorf("failed to get consumable: %w", err)
	}

	if consumable.ID == constant.Empty {
		return consumable, failure.NotFound("consumable not found") // nolint:wrapcheck
	}

	return consumable, nil
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	shared.Detach(ctx, func(ctx context.Context) {
		if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save consumable cache")
		}
	})
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	shared.Detach(ctx, func(ctx context.Context) {
		if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetConsumable, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete consumable from cache")
		}

		shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyConsumables)
	})
}
