package dashboard

import (
	"hotel/infras/otel"
	"hotel/internal/domains/dashboard/model"
	"hotel/internal/domains/dashboard/service"
	"hotel/shared/constant"
	"hotel/shared/validator"
	"hotel/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/dashboard", func(routerGroup chi.Router) {
		routerGroup.Get("/metrics", handler.GetMetrics)
		routerGroup.Get("/recent-activities", handler.GetRecentActivities)
		routerGroup.Get("/chart-data", handler.GetChartData)
	})
}

// GetMetrics returns occupancy and activity figures for a period.
// @Summary Get dashboard metrics
// @Description Occupancy, check-ins, check-outs, revenue and cleanings in progress, with the percentage change against the previous period.
// @Tags Dashboard
// @Produce json
// @Param period query string false "today, week or month (default month)"
// @Success 200 {object} response.Data[dto.MetricsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/dashboard/metrics [get]
// @Security BearerAuth
func (handler *Handler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMetrics")
	defer scope.End()

	period := model.Period(r.URL.Query().Get(constant.RequestParamPeriod))

	metrics, err := handler.service.Metrics(ctx, period)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("period", string(period)).Msg("failed to get dashboard metrics")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, metrics)
}

// GetRecentActivities lists the latest booking movements.
// @Summary Get recent activities
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Data[[]dto.RecentActivityResponse]
// @Failure 500 {object} response.Error
// @Router /v1/dashboard/recent-activities [get]
// @Security BearerAuth
func (handler *Handler) GetRecentActivities(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRecentActivities")
	defer scope.End()

	activities, err := handler.service.RecentActivities(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get recent activities")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, activities)
}

// GetChartData returns a metric as a series over a period.
// @Summary Get dashboard chart data
// @Description Hourly buckets for today, daily buckets for the week or month.
// @Tags Dashboard
// @Produce json
// @Param period query string false "today, week or month (default month)"
// @Param metric query string false "occupancy, checkIns, checkOuts or revenue (default occupancy)"
// @Success 200 {object} response.Data[dto.ChartResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/dashboard/chart-data [get]
// @Security BearerAuth
func (handler *Handler) GetChartData(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetChartData")
	defer scope.End()

	query := r.URL.Query()
	period := model.Period(query.Get(constant.RequestParamPeriod))
	metric := model.Metric(query.Get(constant.RequestParamMetric))

	if err := validator.ValidateVar(period, "omitempty,enum"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	if err := validator.ValidateVar(metric, "omitempty,enum"); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	chart, err := handler.service.ChartData(ctx, period, metric)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("period", string(period)).Str("metric", string(metric)).Msg("failed to get chart data")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, chart)
}
