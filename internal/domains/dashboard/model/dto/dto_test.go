package dto_test

import (
	"hotel/internal/domains/dashboard/model"
	"hotel/internal/domains/dashboard/model/dto"
	"hotel/shared/timezone"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChartResponse_FromModels(t *testing.T) {
	timezone.Setup("America/Sao_Paulo")
	t.Cleanup(func() { timezone.Setup("UTC") })

	loc := timezone.GetLocation()

	t.Run("today is labelled by hour in the app timezone", func(t *testing.T) {
		start := time.Date(2024, 3, 15, 0, 0, 0, 0, loc)

		buckets := make([]model.ChartBucket, 24)
		for i := range buckets {
			// rows come back from the database in UTC
			buckets[i] = model.ChartBucket{Start: start.Add(time.Duration(i) * time.Hour).UTC(), Value: decimal.Zero}
		}
		buckets[9].Value = decimal.NewFromInt(2)

		res := dto.ChartResponse{}
		res.FromModels(model.PeriodToday, model.MetricCheckIns, buckets)

		require.Len(t, res.Points, 24)

		for i, point := range res.Points {
			require.NotNil(t, point.Hour)
			assert.Equal(t, i, *point.Hour)
			assert.Empty(t, point.Date)
		}

		assert.True(t, decimal.NewFromInt(2).Equal(res.Points[9].Value))
		assert.Equal(t, model.MetricCheckIns, res.Metric)
	})

	t.Run("week is labelled by day", func(t *testing.T) {
		start := time.Date(2024, 3, 9, 0, 0, 0, 0, loc)

		buckets := make([]model.ChartBucket, 7)
		for i := range buckets {
			buckets[i] = model.ChartBucket{Start: start.AddDate(0, 0, i).UTC(), Value: decimal.RequireFromString("150.50")}
		}

		res := dto.ChartResponse{}
		res.FromModels(model.PeriodWeek, model.MetricRevenue, buckets)

		require.Len(t, res.Points, 7)
		assert.Equal(t, "2024-03-09", res.Points[0].Date)
		assert.Equal(t, "2024-03-15", res.Points[6].Date)
		assert.Nil(t, res.Points[0].Hour)
		assert.Equal(t, "150.5", res.Points[3].Value.String())
	})

	t.Run("no buckets", func(t *testing.T) {
		res := dto.ChartResponse{}
		res.FromModels(model.PeriodMonth, model.MetricOccupancy, nil)

		assert.NotNil(t, res.Points)
		assert.Empty(t, res.Points)
	})
}
