package model

import (
	"hotel/shared/timezone"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// RecentActivitiesLimit caps the dashboard activity feed.
const RecentActivitiesLimit = 10

type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

func (p Period) IsValid() bool {
	switch p {
	case PeriodToday, PeriodWeek, PeriodMonth:
		return true
	}

	return false
}

// Window is the half-open range [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Windows returns the period ending today and the one right before it:
// today against yesterday, the last seven days against the seven before,
// this month so far against the whole previous month.
func (p Period) Windows(now time.Time) (current, previous Window) {
	today := timezone.StartOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)

	switch p {
	case PeriodToday:
		return Window{today, tomorrow}, Window{today.AddDate(0, 0, -1), today}
	case PeriodWeek:
		start := today.AddDate(0, 0, -6)

		return Window{start, tomorrow}, Window{start.AddDate(0, 0, -7), start}
	default:
		month := timezone.StartOfMonth(now)

		return Window{month, tomorrow}, Window{month.AddDate(0, -1, 0), month}
	}
}

type Metric string

const (
	MetricOccupancy Metric = "occupancy"
	MetricCheckIns  Metric = "checkIns"
	MetricCheckOuts Metric = "checkOuts"
	MetricRevenue   Metric = "revenue"
)

func (m Metric) IsValid() bool {
	switch m {
	case MetricOccupancy, MetricCheckIns, MetricCheckOuts, MetricRevenue:
		return true
	}

	return false
}

// Granularity is the width of one chart bucket, written as a Postgres interval.
type Granularity string

const (
	GranularityHour Granularity = "1 hour"
	GranularityDay  Granularity = "1 day"
)

// Granularity charts a day by the hour and longer periods by the day.
func (p Period) Granularity() Granularity {
	if p == PeriodToday {
		return GranularityHour
	}

	return GranularityDay
}

// ChartBucket is one slot of a chart series, starting at Start.
type ChartBucket struct {
	Start time.Time       `db:"bucket"`
	Value decimal.Decimal `db:"value"`
}

type RoomOccupancy struct {
	Occupied  int `db:"occupied"`
	Total     int `db:"total"`
	Cleanings int `db:"cleanings"`
}

// Activity aggregates the bookings whose status last moved inside a window.
type Activity struct {
	CheckIns  int             `db:"check_ins"`
	CheckOuts int             `db:"check_outs"`
	Revenue   decimal.Decimal `db:"revenue"`
}

type RecentActivity struct {
	ID         string    `db:"id"`
	CheckIn    time.Time `db:"check_in"`
	CheckOut   time.Time `db:"check_out"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
	ModifiedAt time.Time `db:"modified_at"`
	RoomNumber *string   `db:"room_number"`
	GuestName  *string   `db:"guest_name"`
}

// PercentChange compares two figures as a rounded percentage. With nothing
// to compare against it is 100 when there is activity now and 0 otherwise.
func PercentChange(current, previous decimal.Decimal) int {
	if previous.IsZero() {
		if current.IsPositive() {
			return 100
		}

		return 0
	}

	change, _ := current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Float64()

	return int(math.Round(change))
}
