package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/otel/mocks"
	dashboardMocks "hotel/internal/domains/dashboard/mocks"
	"hotel/internal/domains/dashboard/model"
	"hotel/internal/domains/dashboard/service"
	"hotel/shared"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/failure"
	"hotel/shared/timezone"
)

func setup(t *testing.T) (*dashboardMocks.MockDashboard, *cacheMocks.MockRedisCache, service.Dashboard) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := dashboardMocks.NewMockDashboard(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 300

	return mockRepo, mockCache, service.New(mockRepo, cfg, mockCache, mocks.NewOtel())
}

func TestDashboardService_Metrics(t *testing.T) {
	tests := []struct {
		name     string
		period   model.Period
		current  model.Activity
		previous model.Activity
		want     func(t *testing.T, occupied, total, checkIns, revenueChange, checkInsChange int)
	}{
		{
			name:     "growth against previous period",
			period:   model.PeriodWeek,
			current:  model.Activity{CheckIns: 6, CheckOuts: 2, Revenue: decimal.NewFromInt(1500)},
			previous: model.Activity{CheckIns: 4, CheckOuts: 2, Revenue: decimal.NewFromInt(1000)},
			want: func(t *testing.T, occupied, total, checkIns, revenueChange, checkInsChange int) {
				t.Helper()
				assert.Equal(t, 3, occupied)
				assert.Equal(t, 10, total)
				assert.Equal(t, 6, checkIns)
				assert.Equal(t, 50, revenueChange)
				assert.Equal(t, 50, checkInsChange)
			},
		},
		{
			name:    "empty previous period defaults to month",
			current: model.Activity{CheckIns: 1, Revenue: decimal.Zero},
			want: func(t *testing.T, _, _, _, revenueChange, checkInsChange int) {
				t.Helper()
				assert.Equal(t, 0, revenueChange)
				assert.Equal(t, 100, checkInsChange)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo, mockCache, svc := setup(t)

			mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
			mockRepo.EXPECT().RoomOccupancy(gomock.Any()).Return(model.RoomOccupancy{Occupied: 3, Total: 10, Cleanings: 1}, nil)
			gomock.InOrder(
				mockRepo.EXPECT().Activity(gomock.Any(), gomock.Any()).Return(tt.current, nil),
				mockRepo.EXPECT().Activity(gomock.Any(), gomock.Any()).Return(tt.previous, nil),
			)

			res, err := svc.Metrics(context.Background(), tt.period)

			shared.Drain()

			require.NoError(t, err)
			assert.Equal(t, 1, res.Cleanings)
			assert.Zero(t, res.Changes.Occupied)
			assert.Zero(t, res.Changes.Cleanings)
			tt.want(t, res.Occupied, res.TotalRooms, res.CheckIns, res.Changes.Revenue, res.Changes.CheckIns)

			if tt.period == "" {
				assert.Equal(t, model.PeriodMonth, res.Period)
			}
		})
	}
}

func TestDashboardService_MetricsErrors(t *testing.T) {
	t.Run("unknown period", func(t *testing.T) {
		_, _, svc := setup(t)

		_, err := svc.Metrics(context.Background(), model.Period("year"))

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("cache hit", func(t *testing.T) {
		_, mockCache, svc := setup(t)

		mockCache.EXPECT().Get(gomock.Any(), "dashboard:metrics:today", gomock.Any()).Return(nil)

		_, err := svc.Metrics(context.Background(), model.PeriodToday)

		assert.NoError(t, err)
	})

	t.Run("repository failure", func(t *testing.T) {
		mockRepo, mockCache, svc := setup(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		mockRepo.EXPECT().RoomOccupancy(gomock.Any()).Return(model.RoomOccupancy{}, errors.New("timeout"))

		_, err := svc.Metrics(context.Background(), model.PeriodToday)

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestDashboardService_RecentActivities(t *testing.T) {
	mockRepo, mockCache, svc := setup(t)
	room, guest := "101", "Maria"

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
	mockRepo.EXPECT().RecentActivities(gomock.Any(), model.RecentActivitiesLimit).Return([]model.RecentActivity{
		{ID: "b-1", Status: "checked-in", CheckIn: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), RoomNumber: &room, GuestName: &guest},
		{ID: "b-2", Status: "confirmed"},
	}, nil)

	res, err := svc.RecentActivities(context.Background())

	shared.Drain()

	require.NoError(t, err)
	require.Len(t, res, 2)
	assert.Equal(t, "101", res[0].RoomNumber)
	assert.Equal(t, "Maria", res[0].GuestName)
	assert.Equal(t, "2024-03-10", res[0].CheckIn)
	assert.Empty(t, res[1].GuestName)
}

func TestDashboardService_ChartData(t *testing.T) {
	timezone.Setup("UTC")

	tests := []struct {
		name            string
		period          model.Period
		metric          model.Metric
		wantPeriod      model.Period
		wantMetric      model.Metric
		wantGranularity model.Granularity
		wantSpan        time.Duration
	}{
		{
			name:            "today by the hour",
			period:          model.PeriodToday,
			metric:          model.MetricCheckIns,
			wantPeriod:      model.PeriodToday,
			wantMetric:      model.MetricCheckIns,
			wantGranularity: model.GranularityHour,
			wantSpan:        24 * time.Hour,
		},
		{
			name:            "week by the day",
			period:          model.PeriodWeek,
			metric:          model.MetricRevenue,
			wantPeriod:      model.PeriodWeek,
			wantMetric:      model.MetricRevenue,
			wantGranularity: model.GranularityDay,
			wantSpan:        7 * 24 * time.Hour,
		},
		{
			name:            "defaults to monthly occupancy",
			wantPeriod:      model.PeriodMonth,
			wantMetric:      model.MetricOccupancy,
			wantGranularity: model.GranularityDay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo, mockCache, svc := setup(t)

			mockCache.EXPECT().Get(gomock.Any(), "dashboard:chart:"+string(tt.wantPeriod)+":"+string(tt.wantMetric), gomock.Any()).
				Return(errors.New("miss"))
			mockRepo.EXPECT().Chart(gomock.Any(), tt.wantMetric, gomock.Any(), tt.wantGranularity).
				DoAndReturn(func(_ context.Context, _ model.Metric, window model.Window, _ model.Granularity) ([]model.ChartBucket, error) {
					if tt.wantSpan != 0 {
						assert.Equal(t, tt.wantSpan, window.End.Sub(window.Start))
					}

					assert.True(t, window.Start.Before(window.End))

					return []model.ChartBucket{{Start: window.Start, Value: decimal.NewFromInt(3)}}, nil
				})

			res, err := svc.ChartData(context.Background(), tt.period, tt.metric)

			shared.Drain()

			require.NoError(t, err)
			assert.Equal(t, tt.wantPeriod, res.Period)
			assert.Equal(t, tt.wantMetric, res.Metric)
			require.Len(t, res.Points, 1)
			assert.True(t, decimal.NewFromInt(3).Equal(res.Points[0].Value))

			if tt.wantGranularity == model.GranularityHour {
				require.NotNil(t, res.Points[0].Hour)
				assert.Equal(t, 0, *res.Points[0].Hour)
			} else {
				assert.NotEmpty(t, res.Points[0].Date)
			}
		})
	}
}

func TestDashboardService_ChartDataErrors(t *testing.T) {
	t.Run("unknown period", func(t *testing.T) {
		_, _, svc := setup(t)

		_, err := svc.ChartData(context.Background(), model.Period("year"), model.MetricRevenue)

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("unknown metric", func(t *testing.T) {
		_, _, svc := setup(t)

		_, err := svc.ChartData(context.Background(), model.PeriodWeek, model.Metric("cleanings"))

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("repository failure", func(t *testing.T) {
		mockRepo, mockCache, svc := setup(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		mockRepo.EXPECT().Chart(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := svc.ChartData(context.Background(), model.PeriodToday, model.MetricCheckOuts)

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}
