package model_test

import (
	"hotel/internal/domains/dashboard/model"
	"hotel/shared/timezone"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  int64
		previous int64
		want     int
	}{
		{name: "no history with activity", current: 5, previous: 0, want: 100},
		{name: "no history no activity", current: 0, previous: 0, want: 0},
		{name: "growth", current: 15, previous: 10, want: 50},
		{name: "drop", current: 1, previous: 4, want: -75},
		{name: "rounds", current: 2, previous: 3, want: -33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.PercentChange(decimal.NewFromInt(tt.current), decimal.NewFromInt(tt.previous))

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPeriod_Windows(t *testing.T) {
	timezone.Setup("UTC")

	now := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)
	day := func(m time.Month, d int) time.Time { return time.Date(2024, m, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		period   model.Period
		current  model.Window
		previous model.Window
	}{
		{
			period:   model.PeriodToday,
			current:  model.Window{Start: day(3, 15), End: day(3, 16)},
			previous: model.Window{Start: day(3, 14), End: day(3, 15)},
		},
		{
			period:   model.PeriodWeek,
			current:  model.Window{Start: day(3, 9), End: day(3, 16)},
			previous: model.Window{Start: day(3, 2), End: day(3, 9)},
		},
		{
			period:   model.PeriodMonth,
			current:  model.Window{Start: day(3, 1), End: day(3, 16)},
			previous: model.Window{Start: day(2, 1), End: day(3, 1)},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.period), func(t *testing.T) {
			current, previous := tt.period.Windows(now)

			assert.True(t, tt.current.Start.Equal(current.Start), "current start %s", current.Start)
			assert.True(t, tt.current.End.Equal(current.End), "current end %s", current.End)
			assert.True(t, tt.previous.Start.Equal(previous.Start), "previous start %s", previous.Start)
			assert.True(t, tt.previous.End.Equal(previous.End), "previous end %s", previous.End)
		})
	}

	assert.False(t, model.Period("year").IsValid())
}

func TestPeriod_Granularity(t *testing.T) {
	assert.Equal(t, model.GranularityHour, model.PeriodToday.Granularity())
	assert.Equal(t, model.GranularityDay, model.PeriodWeek.Granularity())
	assert.Equal(t, model.GranularityDay, model.PeriodMonth.Granularity())
}

func TestMetric_IsValid(t *testing.T) {
	for _, metric := range []model.Metric{model.MetricOccupancy, model.MetricCheckIns, model.MetricCheckOuts, model.MetricRevenue} {
		assert.True(t, metric.IsValid(), metric)
	}

	assert.False(t, model.Metric("checkins").IsValid())
	assert.False(t, model.Metric("").IsValid())
}
