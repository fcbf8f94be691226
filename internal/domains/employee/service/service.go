package service

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/employee/model"
	"hotel/internal/domains/employee/model/dto"
	"hotel/internal/domains/employee/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/rs/zerolog/log"
)

var (
	cacheGetEmployee    = constant.CacheKeyEmployees + ":get"
	cacheGetAllEmployee = constant.CacheKeyEmployees + ":gets"
)

type Employee interface {
	Create(ctx context.Context, req dto.CreateEmployeeRequest) (dto.EmployeeResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEmployeesResponse, error)
	Get(ctx context.Context, id string) (dto.EmployeeResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateEmployeeRequest) (dto.EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Employee
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Employee, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Employee {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEmployeeRequest) (res dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	employee := req.ToModel(shared.Actor(ctx))

	if err = s.repo.Insert(ctx, employee); err != nil {
		log.Error().Err(err).Msg("failed to create employee")

		return res, fmt.Errorf("failed to create employee: %w", err)
	}

	s.invalidate(ctx, employee.ID)

	res.FromModel(employee)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetEmployeesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req = req.WithDefaultSort(model.FieldName, gDto.SortDirAsc)
	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllEmployee, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count employees")

		return res, fmt.Errorf("failed to count employees: %w", err)
	}

	employees, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get employees")

		return res, fmt.Errorf("failed to get employees: %w", err)
	}

	res.FromModels(employees, total, req.Limit)

	cached := res

	shared.Detach(ctx, func(ctx context.Context) {
		if err := s.cache.Save(ctx, cacheKey, cached, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save employees to cache")
		}
	})

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.EmployeeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetEmployee, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	employee, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(employee)

	cached := res

	shared.Detach(ctx, func(ctx context.Context) {
		if err := s.cache.Save(ctx, cacheKey, cached, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save employee to cache")
		}
	})

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateEmployeeRequest) (res dto.EmployeeResponse, err error) {
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
		log.Error().Err(err).Str("employeeId", id).Msg("failed to update employee")

		return res, fmt.Errorf("failed to update employee: %w", err)
	}

	s.invalidate(ctx, id)

	employee, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(employee)

	return res, nil
}

// Delete leaves cleaning logs untouched; they keep the employee id as history.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.find(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("employeeId", id).Msg("failed to delete employee")

		return fmt.Errorf("failed to delete employee: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Employee, error) {
	employee, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("employeeId", id).Msg("failed to get employee")

		return employee, fmt.Errorf("failed to get employee: %w", err)
	}

	if employee.ID == constant.Empty {
		return employee, failure.NotFound("employee not found") // nolint:wrapcheck
	}

	return employee, nil
}

// invalidate also drops cleaning listings, which embed the employee name.
func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	shared.Detach(ctx, func(ctx context.Context) {
		if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetEmployee, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete employee from cache")
		}

		shared.InvalidateCaches(ctx, s.cache, constant.CacheKeyEmployees, constant.CacheKeyCleaning)
	})
}
