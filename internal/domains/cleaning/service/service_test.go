package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	otelMocks "hotel/infras/otel/mocks"
	pgMocks "hotel/infras/postgres/mocks"
	cleaningMocks "hotel/internal/domains/cleaning/mocks"
	"hotel/internal/domains/cleaning/model"
	"hotel/internal/domains/cleaning/model/dto"
	"hotel/internal/domains/cleaning/service"
	employeeMocks "hotel/internal/domains/employee/mocks"
	employeeModel "hotel/internal/domains/employee/model"
	roomMocks "hotel/internal/domains/room/mocks"
	roomModel "hotel/internal/domains/room/model"
	"hotel/shared"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
)

type fixture struct {
	logs      *cleaningMocks.MockCleaningLog
	rooms     *roomMocks.MockRoom
	employees *employeeMocks.MockEmployee
	cache     *cacheMocks.MockRedisCache
	svc       service.Cleaning
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := &fixture{
		logs:      cleaningMocks.NewMockCleaningLog(ctrl),
		rooms:     roomMocks.NewMockRoom(ctrl),
		employees: employeeMocks.NewMockEmployee(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f.svc = service.New(f.logs, f.rooms, f.employees, pgMocks.NewTransactor(), cfg, f.cache, otelMocks.NewOtel())

	return f
}

func expectRoomStatus(t *testing.T, f *fixture, want roomModel.Status) {
	t.Helper()

	f.rooms.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, values map[string]any, filter gDto.FilterGroup) error {
			_, args := filter.GetWhereClause()

			assert.Equal(t, want, values[roomModel.FieldStatus])
			assert.Equal(t, "room-1", args[roomModel.FieldID])

			return nil
		})
}

func TestCleaningService_Start(t *testing.T) {
	req := dto.StartCleaningRequest{RoomID: "room-1", EmployeeID: "emp-1"}
	employee := employeeModel.Employee{ID: "emp-1", Name: "Joana"}
	room := roomModel.Room{ID: "room-1", Number: "204", Status: roomModel.StatusCleaning}

	tests := []struct {
		name     string
		setup    func(t *testing.T, f *fixture)
		wantCode int
	}{
		{
			name: "opens a log and marks the room",
			setup: func(t *testing.T, f *fixture) {
				f.employees.EXPECT().Get(gomock.Any(), gomock.Any()).Return(employee, nil)
				f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room, nil)
				f.logs.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, filter gDto.FilterGroup) (model.CleaningLog, error) {
						where, _ := filter.GetWhereClause()
						assert.Contains(t, where, "room_cleaning_logs.completed_at IS NULL")

						return model.CleaningLog{}, nil
					})
				expectRoomStatus(t, f, roomModel.StatusCleaningInProgress)
				f.logs.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, log model.CleaningLog) error {
						assert.Nil(t, log.CompletedAt)
						assert.False(t, log.StartedAt.IsZero())

						return nil
					})
			},
		},
		{
			name: "rejects a second open log",
			setup: func(_ *testing.T, f *fixture) {
				f.employees.EXPECT().Get(gomock.Any(), gomock.Any()).Return(employee, nil)
				f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room, nil)
				f.logs.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.CleaningLog{ID: "log-0", RoomID: "room-1"}, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "partial unique index violation is a conflict",
			setup: func(t *testing.T, f *fixture) {
				f.employees.EXPECT().Get(gomock.Any(), gomock.Any()).Return(employee, nil)
				f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(room, nil)
				f.logs.EXPECT().GetTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.CleaningLog{}, nil)
				expectRoomStatus(t, f, roomModel.StatusCleaningInProgress)
				f.logs.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: constant.PqErrorCodeUniqueViolation})
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "unknown employee",
			setup: func(_ *testing.T, f *fixture) {
				f.employees.EXPECT().Get(gomock.Any(), gomock.Any()).Return(employeeModel.Employee{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "unknown room",
			setup: func(_ *testing.T, f *fixture) {
				f.employees.EXPECT().Get(gomock.Any(), gomock.Any()).Return(employee, nil)
				f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(t, f)

			res, err := f.svc.Start(context.Background(), req)

			shared.Drain()

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "room-1", res.RoomID)
			assert.Equal(t, "204", res.RoomNumber)
			assert.Equal(t, "Joana", res.EmployeeName)
			assert.Nil(t, res.CompletedAt)
		})
	}
}

func TestCleaningService_Complete(t *testing.T) {
	notes := "troca de toalhas"
	openLog := model.CleaningLog{ID: "log-1", RoomID: "room-1", EmployeeID: "emp-1", StartedAt: time.Now()}
	done := time.Now()
	closedLog := openLog
	closedLog.CompletedAt = &done

	t.Run("closes the log and frees the room", func(t *testing.T) {
		f := newFixture(t)

		gomock.InOrder(
			f.logs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(openLog, nil),
			f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(roomModel.Room{ID: "room-1"}, nil),
			f.logs.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(openLog, nil),
			f.logs.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ *sqlx.Tx, values map[string]any, _ gDto.FilterGroup) error {
					assert.NotNil(t, values[model.FieldCompletedAt])
					assert.Equal(t, &notes, values[model.FieldNotes])

					return nil
				}),
		)
		expectRoomStatus(t, f, roomModel.StatusAvailable)

		res, err := f.svc.Complete(context.Background(), "log-1", dto.CompleteCleaningRequest{Notes: &notes})

		shared.Drain()

		require.NoError(t, err)
		require.NotNil(t, res.CompletedAt)
		assert.Equal(t, &notes, res.Notes)
	})

	t.Run("already completed", func(t *testing.T) {
		f := newFixture(t)

		f.logs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(closedLog, nil)

		_, err := f.svc.Complete(context.Background(), "log-1", dto.CompleteCleaningRequest{})

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("completed concurrently", func(t *testing.T) {
		f := newFixture(t)

		f.logs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(openLog, nil)
		f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(roomModel.Room{ID: "room-1"}, nil)
		f.logs.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(closedLog, nil)

		_, err := f.svc.Complete(context.Background(), "log-1", dto.CompleteCleaningRequest{})

		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("missing log", func(t *testing.T) {
		f := newFixture(t)

		f.logs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.CleaningLog{}, nil)

		_, err := f.svc.Complete(context.Background(), "log-1", dto.CompleteCleaningRequest{})

		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("room update failure", func(t *testing.T) {
		f := newFixture(t)

		f.logs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(openLog, nil)
		f.rooms.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(roomModel.Room{ID: "room-1"}, nil)
		f.logs.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(openLog, nil)
		f.logs.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.rooms.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

		_, err := f.svc.Complete(context.Background(), "log-1", dto.CompleteCleaningRequest{})

		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestCleaningService_GetActive(t *testing.T) {
	t.Run("no open log", func(t *testing.T) {
		f := newFixture(t)

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.logs.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.CleaningLog{}, nil)

		_, err := f.svc.GetActive(context.Background(), "room-1")

		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("open log", func(t *testing.T) {
		f := newFixture(t)
		name := "Joana"

		f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		f.logs.EXPECT().Get(gomock.Any(), gomock.Any()).
			Return(model.CleaningLog{ID: "log-1", RoomID: "room-1", EmployeeName: &name}, nil)

		res, err := f.svc.GetActive(context.Background(), "room-1")

		shared.Drain()

		require.NoError(t, err)
		assert.Equal(t, "log-1", res.ID)
		assert.Equal(t, "Joana", res.EmployeeName)
	})
}

func TestCleaningService_GetByRoom(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
	f.logs.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)
	f.logs.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.CleaningLog, error) {
			_, args := filter.GetWhereClause()

			assert.Equal(t, model.FieldStartedAt, params.SortBy)
			assert.Equal(t, gDto.SortDirDesc, params.SortDir)
			assert.Equal(t, "room-1", args[model.FieldRoomID])

			return []model.CleaningLog{{ID: "log-2"}, {ID: "log-1"}}, nil
		})

	res, err := f.svc.GetByRoom(context.Background(), "room-1", gDto.QueryParams{Page: 1, Limit: 10})

	shared.Drain()

	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, "log-2", res.Logs[0].ID)
}
