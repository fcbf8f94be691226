package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/cleaning/model"
	"hotel/internal/domains/cleaning/model/dto"
	"hotel/internal/domains/cleaning/repository"
	employeeModel "hotel/internal/domains/employee/model"
	employeeRepo "hotel/internal/domains/employee/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	gRepo "hotel/shared/repository"
	"hotel/shared/timezone"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const errCleaningInProgress = "room already has a cleaning in progress"

var (
	cacheGetByRoom = constant.CacheKeyCleaning + ":room"
	cacheGetActive = constant.CacheKeyCleaning + ":active"
)

type Cleaning interface {
	Start(ctx context.Context, req dto.StartCleaningRequest) (dto.CleaningLogResponse, error)
	Complete(ctx context.Context, id string, req dto.CompleteCleaningRequest) (dto.CleaningLogResponse, error)
	Get(ctx context.Context, id string) (dto.CleaningLogResponse, error)
	GetByRoom(ctx context.Context, roomID string, req gDto.QueryParams) (dto.GetCleaningLogsResponse, error)
	GetActive(ctx context.Context, roomID string) (dto.CleaningLogResponse, error)
}

type serviceImpl struct {
	repo         repository.CleaningLog
	roomRepo     roomRepo.Room
	employeeRepo employeeRepo.Employee
	transactor   postgres.Transactor
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.CleaningLog,
	roomRepo roomRepo.Room,
	employeeRepo employeeRepo.Employee,
	transactor postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Cleaning {
	return &serviceImpl{
		repo:         repo,
		roomRepo:     roomRepo,
		employeeRepo: employeeRepo,
		transactor:   transactor,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Start opens a cleaning log and marks the room as being cleaned. The room
// row is locked before the open-log check, so two concurrent starts on the
// same room cannot both pass it.
func (s *serviceImpl) Start(ctx context.Context, req dto.StartCleaningRequest) (res dto.CleaningLogResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Start")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	employee, err := s.employeeRepo.Get(ctx, shared.FilterByID(req.EmployeeID, employeeModel.FieldID, employeeModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("employeeId", req.EmployeeID).Msg("failed to get employee")

		return res, fmt.Errorf("failed to get employee: %w", err)
	}

	if employee.ID == constant.Empty {
		return res, failure.NotFound("employee not found") // nolint:wrapcheck
	}

	now := timezone.Now()
	cleaningLog := req.ToModel(now)
	cleaningLog.EmployeeName = &employee.Name

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		room, err := s.lockRoom(ctx, tx, req.RoomID)
		if err != nil {
			return err
		}

		open, err := s.repo.GetTx(ctx, tx, repository.OpenFilter(req.RoomID))
		if err != nil {
			log.Error().Err(err).Str("roomId", req.RoomID).Msg("failed to get open cleaning log")

			return fmt.Errorf("failed to get open cleaning log: %w", err)
		}

		if open.ID != constant.Empty {
			return failure.Conflict(errCleaningInProgress) // nolint:wrapcheck
		}

		if err = s.setRoomStatus(ctx, tx, req.RoomID, roomModel.StatusCleaningInProgress, now); err != nil {
			return err
		}

		if err = s.repo.InsertTx(ctx, tx, cleaningLog); err != nil {
			if gRepo.IsUniqueViolation(err) {
				return failure.Conflict(errCleaningInProgress) // nolint:wrapcheck
			}

			log.Error().Err(err).Str("roomId", req.RoomID).Msg("failed to create cleaning log")

			return fmt.Errorf("failed to create cleaning log: %w", err)
		}

		cleaningLog.RoomNumber = &room.Number

		return nil
	})
	if err != nil {
		return res, err
	}

	log.Info().Str("roomId", req.RoomID).Str("employeeId", req.EmployeeID).Msg("cleaning started")

	s.invalidate(ctx)

	res.FromModel(cleaningLog)

	return res, nil
}

// Complete closes an open log and gives the room back as available. The
// room is locked before the log, the same order Start takes.
func (s *serviceImpl) Complete(ctx context.Context, id string, req dto.CompleteCleaningRequest) (res dto.CleaningLogResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Complete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	current, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	if !current.IsOpen() {
		return res, failure.Conflict("cleaning already completed") // nolint:wrapcheck
	}

	var cleaningLog model.CleaningLog

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context, tx *sqlx.Tx) error {
		var err error

		// The room may have been deleted since; its history is still closed.
		if _, err = s.roomRepo.GetForUpdateTx(ctx, tx, shared.FilterByID(current.RoomID, roomModel.FieldID, roomModel.TableName)); err != nil {
			log.Error().Err(err).Str("roomId", current.RoomID).Msg("failed to lock room")

			return fmt.Errorf("failed to lock room: %w", err)
		}

		if cleaningLog, err = s.repo.GetForUpdateTx(ctx, tx, s.byID(id)); err != nil {
			log.Error().Err(err).Str("cleaningLogId", id).Msg("failed to lock cleaning log")

			return fmt.Errorf("failed to lock cleaning log: %w", err)
		}

		if !cleaningLog.IsOpen() {
			return failure.Conflict("cleaning already completed") // nolint:wrapcheck
		}

		now := timezone.Now()
		values := map[string]any{
			model.FieldCompletedAt: now,
			model.FieldNotes:       req.Notes,
		}

		if err = s.repo.UpdateTx(ctx, tx, values, s.byID(id)); err != nil {
			log.Error().Err(err).Str("cleaningLogId", id).Msg("failed to complete cleaning log")

			return fmt.Errorf("failed to complete cleaning log: %w", err)
		}

		if err = s.setRoomStatus(ctx, tx, cleaningLog.RoomID, roomModel.StatusAvailable, now); err != nil {
			return err
		}

		cleaningLog.CompletedAt = &now
		cleaningLog.Notes = req.Notes

		return nil
	})
	if err != nil {
		return res, err
	}

	log.Info().Str("cleaningLogId", id).Str("roomId", cleaningLog.RoomID).Msg("cleaning completed")

	s.invalidate(ctx)

	res.FromModel(cleaningLog)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CleaningLogResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cleaningLog, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(cleaningLog)

	return res, nil
}

// GetByRoom lists the room's cleaning history, newest first.
func (s *serviceImpl) GetByRoom(ctx context.Context, roomID string, req gDto.QueryParams) (res dto.GetCleaningLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByRoom")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.SortBy, req.SortDir = model.FieldStartedAt, gDto.SortDirDesc

	filter := gDto.NewFilterGroup()
	filter.EqIfSet(model.TableName, model.FieldRoomID, roomID)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetByRoom, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("roomId", roomID).Msg("failed to count cleaning logs")

		return res, fmt.Errorf("failed to count cleaning logs: %w", err)
	}

	logs, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Str("roomId", roomID).Msg("failed to get cleaning logs")

		return res, fmt.Errorf("failed to get cleaning logs: %w", err)
	}

	res.FromModels(logs, total, req.Limit)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) GetActive(ctx context.Context, roomID string) (res dto.CleaningLogResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetActive")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetActive, roomID)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	cleaningLog, err := s.repo.Get(ctx, repository.OpenFilter(roomID))
	if err != nil {
		log.Error().Err(err).Str("roomId", roomID).Msg("failed to get active cleaning log")

		return res, fmt.Errorf("failed to get active cleaning log: %w", err)
	}

	if cleaningLog.ID == constant.Empty {
		return res, failure.NotFound("no cleaning in progress for room") // nolint:wrapcheck
	}

	res.FromModel(cleaningLog)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) lockRoom(ctx context.Context, tx *sqlx.Tx, id string) (roomModel.Room, error) {
	room, err := s.roomRepo.GetForUpdateTx(ctx, tx, shared.FilterByID(id, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("roomId", id).Msg("failed to lock room")

		return room, fmt.Errorf("failed to lock room: %w", err)
	}

	if room.ID == constant.Empty {
		return room, failure.NotFound("room not found") // nolint:wrapcheck
	}

	return room, nil
}

func (s *serviceImpl) setRoomStatus(ctx context.Context, tx *sqlx.Tx, roomID string, status roomModel.Status, now time.Time) error {
	values := map[string]any{
		roomModel.FieldStatus:     status,
		roomModel.FieldModifiedAt: now,
		roomModel.FieldModifiedBy: shared.Actor(ctx),
	}

	if err := s.roomRepo.UpdateTx(ctx, tx, values, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName)); err != nil {
		log.Error().Err(err).Str("roomId", roomID).Str("status", string(status)).Msg("failed to update room status")

		return fmt.Errorf("failed to update room status: %w", err)
	}

	return nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.CleaningLog, error) {
	cleaningLog, err := s.repo.Get(ctx, s.byID(id))
	if err != nil {
		log.Error().Err(err).Str("cleaningLogId", id).Msg("failed to get cleaning log")

		return cleaningLog, fmt.Errorf("failed to get cleaning log: %w", err)
	}

	if cleaningLog.ID == constant.Empty {
		return cleaningLog, failure.NotFound("cleaning log not found") // nolint:wrapcheck
	}

	return cleaningLog, nil
}

func (s *serviceImpl) byID(id string) gDto.FilterGroup {
	return shared.FilterByID(id, model.FieldID, model.TableName)
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	shared.Detach(ctx, func(ctx context.Context) {
		if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save cleaning cache")
		}
	})
}

// invalidate drops cleaning listings along with the room and dashboard
// views that show room status.
func (s *serviceImpl) invalidate(ctx context.Context) {
	shared.Detach(ctx, func(ctx context.Context) {
		shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyCleaning, constant.CacheKeyRooms, constant.CacheKeyDashboard)
	})
}
