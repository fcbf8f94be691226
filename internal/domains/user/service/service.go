package service

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/user/model"
	"hotel/internal/domains/user/model/dto"
	"hotel/internal/domains/user/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/password"
	"strings"

	"github.com/rs/zerolog/log"
)

var (
	cacheGetUser    = constant.CacheKeyUsers + ":get"
	cacheGetAllUser = constant.CacheKeyUsers + ":gets"
)

type User interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (dto.UserResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetUsersResponse, error)
	Get(ctx context.Context, id string) (dto.UserResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateUserRequest) (dto.UserResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.User
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.User, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) User {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateUserRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.repo.Exist(ctx, repository.EmailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, failure.Conflict("email already registered") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	user := req.ToModel(shared.Actor(ctx), hashedPassword)

	if err = s.repo.Insert(ctx, user); err != nil {
		log.Error().Err(err).Msg("failed to create user")

		return res, fmt.Errorf("failed to create user: %w", err)
	}

	s.invalidate(ctx, user.ID)

	res.FromModel(user)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetUsersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req = req.WithDefaultSort(model.FieldName, gDto.SortDirAsc)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllUser, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for users")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count users")

		return res, fmt.Errorf("failed to count users: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get users")

		return res, fmt.Errorf("failed to get users: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetUser, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	user, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(user)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateUserRequest) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if _, err = s.find(ctx, id); err != nil {
		return res, err
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = s.repo.Update(ctx, shared.TransformFields(req, shared.Actor(ctx)), filter); err != nil {
		log.Error().Err(err).Str("userId", id).Msg("failed to update user")

		return res, fmt.Errorf("failed to update user: %w", err)
	}

	s.invalidate(ctx, id)

	user, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(user)

	return res, nil
}

// Delete removes a staff account. Nobody can delete their own account.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if id == shared.Actor(ctx) {
		return failure.BadRequestFromString("you cannot delete your own account") // nolint:wrapcheck
	}

	if _, err = s.find(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("userId", id).Msg("failed to delete user")

		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.User, error) {
	user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("userId", id).Msg("failed to get user")

		return user, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return user, failure.NotFound("user not found") // nolint:wrapcheck
	}

	return user, nil
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	shared.Detach(ctx, func(ctx context.Context) {
		if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save user cache")
		}
	})
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	shared.Detach(ctx, func(ctx context.Context) {
		if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetUser, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete user from cache")
		}

		shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyUsers)
	})
}
