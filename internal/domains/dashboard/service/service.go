package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/dashboard/model"
	"hotel/internal/domains/dashboard/model/dto"
	"hotel/internal/domains/dashboard/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

var (
	cacheMetrics = constant.CacheKeyDashboard + ":metrics"
	cacheRecent  = constant.CacheKeyDashboard + ":recent"
	cacheChart   = constant.CacheKeyDashboard + ":chart"
)

type Dashboard interface {
	Metrics(ctx context.Context, period model.Period) (dto.MetricsResponse, error)
	RecentActivities(ctx context.Context) ([]dto.RecentActivityResponse, error)
	ChartData(ctx context.Context, period model.Period, metric model.Metric) (dto.ChartResponse, error)
}

type serviceImpl struct {
	repo  repository.Dashboard
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Dashboard, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Dashboard {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// Metrics defaults to the current month when no period is given.
func (s *serviceImpl) Metrics(ctx context.Context, period model.Period) (res dto.MetricsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Metrics")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if period == constant.Empty {
		period = model.PeriodMonth
	}

	if !period.IsValid() {
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown period %q", period)) // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheMetrics, string(period))

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	rooms, err := s.repo.RoomOccupancy(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get room occupancy")

		return res, fmt.Errorf("failed to get room occupancy: %w", err)
	}

	current, previous := period.Windows(timezone.Now())

	now, err := s.repo.Activity(ctx, current)
	if err != nil {
		log.Error().Err(err).Str("period", string(period)).Msg("failed to get booking activity")

		return res, fmt.Errorf("failed to get booking activity: %w", err)
	}

	before, err := s.repo.Activity(ctx, previous)
	if err != nil {
		log.Error().Err(err).Str("period", string(period)).Msg("failed to get previous booking activity")

		return res, fmt.Errorf("failed to get previous booking activity: %w", err)
	}

	res.FromModels(period, rooms, now, before)

	s.save(ctx, cacheKey, res)

	return res, nil
}

// RecentActivities lists the latest non-cancelled bookings by last change.
func (s *serviceImpl) RecentActivities(ctx context.Context) (res []dto.RecentActivityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecentActivities")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.cache.Get(ctx, cacheRecent, &res); err == nil {
		return res, nil
	}

	activities, err := s.repo.RecentActivities(ctx, model.RecentActivitiesLimit)
	if err != nil {
		log.Error().Err(err).Msg("failed to get recent activities")

		return res, fmt.Errorf("failed to get recent activities: %w", err)
	}

	res = make([]dto.RecentActivityResponse, len(activities))
	for i, activity := range activities {
		res[i].FromModel(activity)
	}

	s.save(ctx, cacheRecent, res)

	return res, nil
}

// ChartData charts a metric over the period, hour by hour for today and day
// by day otherwise. Period defaults to the current month and metric to
// occupancy.
func (s *serviceImpl) ChartData(ctx context.Context, period model.Period, metric model.Metric) (res dto.ChartResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChartData")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if period == constant.Empty {
		period = model.PeriodMonth
	}

	if metric == constant.Empty {
		metric = model.MetricOccupancy
	}

	if !period.IsValid() {
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown period %q", period)) // nolint:wrapcheck
	}

	if !metric.IsValid() {
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown metric %q", metric)) // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheChart, string(period), string(metric))

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	window, _ := period.Windows(timezone.Now())

	buckets, err := s.repo.Chart(ctx, metric, window, period.Granularity())
	if err != nil {
		log.Error().Err(err).Str("period", string(period)).Str("metric", string(metric)).Msg("failed to get chart data")

		return res, fmt.Errorf("failed to get chart data: %w", err)
	}

	res.FromModels(period, metric, buckets)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	shared.Detach(ctx, func(ctx context.Context) {
		if err := s.cache.Save(ctx, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save dashboard cache")
		}
	})
}
