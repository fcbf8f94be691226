package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/dashboard/model"
	"hotel/shared/constant"
	"hotel/shared/logger"
)

const (
	queryRoomOccupancy = `SELECT
		COUNT(*) FILTER (WHERE rooms.status = 'occupied') AS occupied,
		COUNT(*) AS total,
		COUNT(*) FILTER (WHERE rooms.status = 'cleaning-in-progress') AS cleanings
	FROM rooms`

	queryActivity = `SELECT
		COUNT(*) FILTER (WHERE bookings.status IN ('checked-in', 'checked-out', 'completed')) AS check_ins,
		COUNT(*) FILTER (WHERE bookings.status IN ('checked-out', 'completed')) AS check_outs,
		COALESCE(SUM(bookings.total_amount) FILTER (WHERE bookings.status IN ('checked-in', 'checked-out', 'completed')), 0) AS revenue
	FROM bookings
	WHERE bookings.modified_at >= :start AND bookings.modified_at < :end`

	queryRecentActivities = `SELECT
		bookings.id, bookings.check_in, bookings.check_out, bookings.status,
		bookings.created_at, bookings.modified_at,
		rooms.number AS room_number, guests.name AS guest_name
	FROM bookings
	LEFT JOIN rooms ON rooms.id = bookings.room_id
	LEFT JOIN guests ON guests.id = bookings.guest_id
	WHERE bookings.status != 'cancelled'
	ORDER BY bookings.modified_at DESC
	LIMIT :limit`

	// queryChart lays one bucket per step over the window and aggregates the
	// bookings whose status last moved inside each bucket.
	queryChart = `WITH buckets AS (
		SELECT generate_series(
			CAST(:start AS timestamptz),
			CAST(:end AS timestamptz) - CAST(:step AS interval),
			CAST(:step AS interval)
		) AS bucket
	)
	SELECT buckets.bucket, %s AS value
	FROM buckets
	LEFT JOIN bookings ON bookings.modified_at >= buckets.bucket
		AND bookings.modified_at < buckets.bucket + CAST(:step AS interval)
		AND bookings.status IN (%s)
	GROUP BY buckets.bucket
	ORDER BY buckets.bucket ASC`

	statusesStayed   = `'checked-in', 'checked-out', 'completed'`
	statusesLeft     = `'checked-out', 'completed'`
	aggregateCount   = `COUNT(bookings.id)`
	aggregateRevenue = `COALESCE(SUM(bookings.total_amount), 0)`
)

// chartQueries holds the series query of every metric. Occupancy counts the
// same movements as check-ins.
var chartQueries = map[model.Metric]string{
	model.MetricOccupancy: fmt.Sprintf(queryChart, aggregateCount, statusesStayed),
	model.MetricCheckIns:  fmt.Sprintf(queryChart, aggregateCount, statusesStayed),
	model.MetricCheckOuts: fmt.Sprintf(queryChart, aggregateCount, statusesLeft),
	model.MetricRevenue:   fmt.Sprintf(queryChart, aggregateRevenue, statusesStayed),
}

// Dashboard runs the aggregate queries behind the dashboard. They span
// several tables, so they are written by hand instead of going through the
// generic table gateway.
type Dashboard interface {
	RoomOccupancy(ctx context.Context) (model.RoomOccupancy, error)
	Activity(ctx context.Context, window model.Window) (model.Activity, error)
	RecentActivities(ctx context.Context, limit int) ([]model.RecentActivity, error)
	Chart(ctx context.Context, metric model.Metric, window model.Window, granularity model.Granularity) ([]model.ChartBucket, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Dashboard {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (r *repositoryImpl) RoomOccupancy(ctx context.Context) (res model.RoomOccupancy, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dashboard.RoomOccupancy")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryRoomOccupancy)

	if err = r.db.Read.GetContext(ctx, &res, queryRoomOccupancy); err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to get room occupancy: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Activity(ctx context.Context, window model.Window) (res model.Activity, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dashboard.Activity")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryActivity)

	stmt, err := r.db.Read.PrepareNamedContext(ctx, queryActivity)
	if err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to prepare statement (dashboard): %w", err)
	}
	defer stmt.Close()

	args := map[string]any{"start": window.Start, "end": window.End}

	if err = stmt.GetContext(ctx, &res, args); err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to get booking activity: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) RecentActivities(ctx context.Context, limit int) (res []model.RecentActivity, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dashboard.RecentActivities")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryRecentActivities)

	stmt, err := r.db.Read.PrepareNamedContext(ctx, queryRecentActivities)
	if err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to prepare statement (dashboard): %w", err)
	}
	defer stmt.Close()

	res = make([]model.RecentActivity, 0, limit)
	if err = stmt.SelectContext(ctx, &res, map[string]any{"limit": limit}); err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to get recent activities: %w", err)
	}

	return res, nil
}

func (r *repositoryImpl) Chart(
	ctx context.Context,
	metric model.Metric,
	window model.Window,
	granularity model.Granularity,
) (res []model.ChartBucket, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dashboard.Chart")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query, ok := chartQueries[metric]
	if !ok {
		return res, fmt.Errorf("unknown chart metric %q", metric)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := r.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to prepare statement (dashboard): %w", err)
	}
	defer stmt.Close()

	args := map[string]any{"start": window.Start, "end": window.End, "step": string(granularity)}

	res = make([]model.ChartBucket, 0)
	if err = stmt.SelectContext(ctx, &res, args); err != nil {
		logger.ErrorWithStack(err)

		return res, fmt.Errorf("failed to get chart data: %w", err)
	}

	return res, nil
}
