package dashboard_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/infras/otel/mocks"
	"hotel/internal/domains/dashboard/model"
	"hotel/internal/domains/dashboard/model/dto"
	dashboardMocks "hotel/internal/domains/dashboard/service/mocks"
	"hotel/internal/handlers/dashboard"
	"hotel/shared/failure"
)

func newRouter(t *testing.T) (*dashboardMocks.MockDashboard, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := dashboardMocks.NewMockDashboard(ctrl)

	handler := dashboard.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func TestHandler_GetChartData(t *testing.T) {
	hour := 14

	tests := []struct {
		name      string
		query     string
		setupMock func(svc *dashboardMocks.MockDashboard)
		wantCode  int
	}{
		{
			name:  "hourly chart",
			query: "?period=today&metric=checkIns",
			setupMock: func(svc *dashboardMocks.MockDashboard) {
				svc.EXPECT().ChartData(gomock.Any(), model.PeriodToday, model.MetricCheckIns).Return(dto.ChartResponse{
					Period: model.PeriodToday,
					Metric: model.MetricCheckIns,
					Points: []dto.ChartPoint{{Hour: &hour, Value: decimal.NewFromInt(2)}},
				}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:  "defaults are left to the service",
			query: "",
			setupMock: func(svc *dashboardMocks.MockDashboard) {
				svc.EXPECT().ChartData(gomock.Any(), model.Period(""), model.Metric("")).Return(dto.ChartResponse{Points: []dto.ChartPoint{}}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "unknown period",
			query:    "?period=year",
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown metric",
			query:    "?metric=cleanings",
			wantCode: http.StatusBadRequest,
		},
		{
			name:  "service failure",
			query: "?period=week&metric=revenue",
			setupMock: func(svc *dashboardMocks.MockDashboard) {
				svc.EXPECT().ChartData(gomock.Any(), model.PeriodWeek, model.MetricRevenue).
					Return(dto.ChartResponse{}, failure.BadRequestFromString("unknown metric"))
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)

			if tt.setupMock != nil {
				tt.setupMock(svc)
			}

			req := httptest.NewRequest(http.MethodGet, "/dashboard/chart-data"+tt.query, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_GetChartDataBody(t *testing.T) {
	svc, router := newRouter(t)
	hour := 9

	svc.EXPECT().ChartData(gomock.Any(), model.PeriodToday, model.MetricCheckOuts).Return(dto.ChartResponse{
		Period: model.PeriodToday,
		Metric: model.MetricCheckOuts,
		Points: []dto.ChartPoint{{Hour: &hour, Value: decimal.NewFromInt(1)}},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/chart-data?period=today&metric=checkOuts", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data struct {
			Metric string           `json:"metric"`
			Points []map[string]any `json:"points"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Equal(t, "checkOuts", body.Data.Metric)
	require.Len(t, body.Data.Points, 1)
	assert.InDelta(t, 9, body.Data.Points[0]["hour"], 0)
	assert.NotContains(t, body.Data.Points[0], "date")
}
