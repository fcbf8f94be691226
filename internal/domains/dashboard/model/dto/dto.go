package dto

import (
	"hotel/internal/domains/dashboard/model"
	"hotel/shared/constant"
	"hotel/shared/timezone"

	"github.com/shopspring/decimal"
)

type Changes struct {
	Occupied  int `json:"occupied"`
	CheckIns  int `json:"checkIns"`
	CheckOuts int `json:"checkOuts"`
	Revenue   int `json:"revenue"`
	Cleanings int `json:"cleanings"`
}

type MetricsResponse struct {
	Period     model.Period    `json:"period"`
	Occupied   int             `json:"occupied"`
	TotalRooms int             `json:"totalRooms"`
	CheckIns   int             `json:"checkIns"`
	CheckOuts  int             `json:"checkOuts"`
	Revenue    decimal.Decimal `json:"revenue"`
	Cleanings  int             `json:"cleanings"`
	Changes    Changes         `json:"changes"`
}

// FromModels builds the metrics. Occupancy and cleanings are a snapshot of
// the rooms right now, so they carry no change figure.
func (r *MetricsResponse) FromModels(period model.Period, rooms model.RoomOccupancy, current, previous model.Activity) {
	r.Period = period
	r.Occupied = rooms.Occupied
	r.TotalRooms = rooms.Total
	r.Cleanings = rooms.Cleanings
	r.CheckIns = current.CheckIns
	r.CheckOuts = current.CheckOuts
	r.Revenue = current.Revenue
	r.Changes = Changes{
		CheckIns:  model.PercentChange(decimal.NewFromInt(int64(current.CheckIns)), decimal.NewFromInt(int64(previous.CheckIns))),
		CheckOuts: model.PercentChange(decimal.NewFromInt(int64(current.CheckOuts)), decimal.NewFromInt(int64(previous.CheckOuts))),
		Revenue:   model.PercentChange(current.Revenue, previous.Revenue),
	}
}

type RecentActivityResponse struct {
	ID         string `json:"id"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	Status     string `json:"status"`
	RoomNumber string `json:"roomNumber"`
	GuestName  string `json:"guestName"`
	CreatedAt  string `json:"createdAt"`
	ModifiedAt string `json:"modifiedAt"`
}

func (r *RecentActivityResponse) FromModel(m model.RecentActivity) {
	r.ID = m.ID
	r.CheckIn = m.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = m.CheckOut.Format(constant.DateOnlyFormat)
	r.Status = m.Status
	r.CreatedAt = timezone.Format(m.CreatedAt, constant.DateFormat)
	r.ModifiedAt = timezone.Format(m.ModifiedAt, constant.DateFormat)

	if m.RoomNumber != nil {
		r.RoomNumber = *m.RoomNumber
	}

	if m.GuestName != nil {
		r.GuestName = *m.GuestName
	}
}

// ChartPoint is one bucket of a chart. Hourly charts set Hour, daily ones Date.
type ChartPoint struct {
	Hour  *int            `json:"hour,omitempty"`
	Date  string          `json:"date,omitempty"`
	Value decimal.Decimal `json:"value"`
}

type ChartResponse struct {
	Period model.Period `json:"period"`
	Metric model.Metric `json:"metric"`
	Points []ChartPoint `json:"points"`
}

func (r *ChartResponse) FromModels(period model.Period, metric model.Metric, buckets []model.ChartBucket) {
	r.Period = period
	r.Metric = metric
	r.Points = make([]ChartPoint, len(buckets))

	for i, bucket := range buckets {
		start := timezone.ToAppTime(bucket.Start)
		r.Points[i].Value = bucket.Value

		if period.Granularity() == model.GranularityHour {
			hour := start.Hour()
			r.Points[i].Hour = &hour

			continue
		}

		r.Points[i].Date = start.Format(constant.DateOnlyFormat)
	}
}
