package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/s3"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	gRepo "hotel/shared/repository"
	"hotel/shared/timezone"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	imageDirectory = "rooms"
)

var (
	cacheGetRoom    = constant.CacheKeyRooms + ":get"
	cacheGetAllRoom = constant.CacheKeyRooms + ":gets"
	cacheCountRoom  = constant.CacheKeyRooms + ":count"
)

type Room interface {
	Create(ctx context.Context, req dto.CreateRoomRequest) (dto.RoomResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RoomResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateRoomRequest) (dto.RoomResponse, error)
	UpdateStatus(ctx context.Context, id string, status model.Status) error
	UploadImage(ctx context.Context, id string, req dto.UploadImageRequest) (dto.RoomResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo    repository.Room
	storage s3.Storage
	cfg     *config.Config
	cache   cache.RedisCache
	otel    otel.Otel
}

func New(repo repository.Room, storage s3.Storage, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		repo:    repo,
		storage: storage,
		cfg:     cfg,
		cache:   cache,
		otel:    otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRoomRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room := req.ToModel(shared.Actor(ctx))

	if err = s.repo.Insert(ctx, room); err != nil {
		if gRepo.IsUniqueViolation(err) {
			return res, failure.Conflict(fmt.Sprintf("room number %s already exists", req.Number)) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create room")

		return res, fmt.Errorf("failed to create room: %w", err)
	}

	s.invalidate(ctx, room.ID)

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req = req.WithDefaultSort(model.FieldNumber, gDto.SortDirAsc)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRoom, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.Count(ctx, filter)
	if err != nil {
		return res, err
	}

	rooms, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(rooms, total, req.Limit)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRoom, gDto.QueryParams{}, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetRoom, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	room, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(room)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateRoomRequest) (res dto.RoomResponse, err error) {
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
		if gRepo.IsUniqueViolation(err) {
			return res, failure.Conflict("room number already exists") // nolint:wrapcheck
		}

		log.Error().Err(err).Str("roomId", id).Msg("failed to update room")

		return res, fmt.Errorf("failed to update room: %w", err)
	}

	s.invalidate(ctx, id)

	room, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(room)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id string, status model.Status) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !status.IsValid() {
		return failure.BadRequestFromString(fmt.Sprintf("invalid room status %q", status)) // nolint:wrapcheck
	}

	if _, err = s.find(ctx, id); err != nil {
		return err
	}

	update := map[string]any{
		model.FieldStatus:     status,
		model.FieldModifiedAt: timezone.Now(),
		model.FieldModifiedBy: shared.Actor(ctx),
	}

	if err = s.repo.Update(ctx, update, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("roomId", id).Msg("failed to update room status")

		return fmt.Errorf("failed to update room status: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// UploadImage stores the picture in object storage and replaces the room's
// previous image, which is removed best-effort.
func (s *serviceImpl) UploadImage(ctx context.Context, id string, req dto.UploadImageRequest) (res dto.RoomResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !s.cfg.External.S3.Enable {
		return res, failure.Unimplemented("image upload is disabled") // nolint:wrapcheck
	}

	room, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	fileName := uuid.NewString() + strings.ToLower(path.Ext(req.Image.Filename))
	contentType := req.Image.Header.Get(constant.RequestHeaderContentType)

	url, err := s.storage.Upload(ctx, path.Join(imageDirectory, id), fileName, contentType, req.ImageFile, req.Image.Size)
	if err != nil {
		log.Error().Err(err).Str("roomId", id).Msg("failed to upload room image")

		return res, fmt.Errorf("failed to upload room image: %w", err)
	}

	update := map[string]any{
		model.FieldImage:      url,
		model.FieldModifiedAt: timezone.Now(),
		model.FieldModifiedBy: shared.Actor(ctx),
	}

	if err = s.repo.Update(ctx, update, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("roomId", id).Msg("failed to save room image")

		return res, fmt.Errorf("failed to save room image: %w", err)
	}

	if room.Image != nil && *room.Image != "" {
		previous := *room.Image

		shared.Detach(ctx, func(ctx context.Context) {
			if err := s.storage.Delete(ctx, previous); err != nil {
				log.Error().Err(err).Str("url", previous).Msg("failed to delete previous room image")
			}
		})
	}

	s.invalidate(ctx, id)

	room.Image = &url
	res.FromModel(room)

	return res, nil
}

// Delete removes the room only. Bookings and cleaning logs keep its id as
// history.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.find(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("roomId", id).Msg("failed to delete room")

		return fmt.Errorf("failed to delete room: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Room, error) {
	room, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("roomId", id).Msg("failed to get room")

		return room, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.NotFound("room not found") // nolint:wrapcheck
	}

	return room, nil
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	shared.Detach(ctx, func(ctx context.Context) {
		if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save room cache")
		}
	})
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	shared.Detach(ctx, func(ctx context.Context) {
		if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetRoom, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete room from cache")
		}

		shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyRooms, constant.CacheKeyDashboard)
	})
}
