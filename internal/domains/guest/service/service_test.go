package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/otel/mocks"
	guestMocks "hotel/internal/domains/guest/mocks"
	"hotel/internal/domains/guest/model"
	"hotel/internal/domains/guest/model/dto"
	"hotel/internal/domains/guest/service"
	"hotel/shared"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
)

func setup(t *testing.T) (*guestMocks.MockGuest, *cacheMocks.MockRedisCache, service.Guest) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return mockRepo, mockCache, service.New(mockRepo, cfg, mockCache, mocks.NewOtel())
}

func TestGuestService_Create(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr bool
	}{
		{name: "successful creation"},
		{name: "repository error", repoErr: errors.New("database error"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo, _, svc := setup(t)

			mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(tt.repoErr)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-1")
			res, err := svc.Create(ctx, dto.CreateGuestRequest{
				Name:        "Maria Souza",
				Email:       "maria@example.com",
				Phone:       "+55 11 99999-0000",
				Document:    "123.456.789-00",
				Nationality: "Brasileira",
			})

			shared.Drain()

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Maria Souza", res.Name)
			assert.Equal(t, "user-1", res.CreatedBy)
		})
	}
}

func TestGuestService_GetAll(t *testing.T) {
	mockRepo, mockCache, svc := setup(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Guest, error) {
			assert.Equal(t, model.FieldName, params.SortBy)
			assert.Equal(t, gDto.SortDirAsc, params.SortDir)

			return []model.Guest{{ID: "guest-1", Name: "Ana"}}, nil
		})

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.NewFilterGroup())

	shared.Drain()

	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, "Ana", res.Guests[0].Name)
}

func TestGuestService_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		mockRepo, mockCache, svc := setup(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{}, nil)

		_, err := svc.Get(context.Background(), "guest-1")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("found", func(t *testing.T) {
		mockRepo, mockCache, svc := setup(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{ID: "guest-1", Name: "Ana"}, nil)

		res, err := svc.Get(context.Background(), "guest-1")

		shared.Drain()

		require.NoError(t, err)
		assert.Equal(t, "guest-1", res.ID)
	})
}

func TestGuestService_Update(t *testing.T) {
	name := "Ana Lima"

	t.Run("empty request", func(t *testing.T) {
		_, _, svc := setup(t)

		_, err := svc.Update(context.Background(), "guest-1", dto.UpdateGuestRequest{})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("updates guest", func(t *testing.T) {
		mockRepo, _, svc := setup(t)

		gomock.InOrder(
			mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{ID: "guest-1", Name: "Ana"}, nil),
			mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, values map[string]any, _ gDto.FilterGroup) error {
					assert.Equal(t, name, values[model.FieldName])

					return nil
				}),
			mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{ID: "guest-1", Name: name}, nil),
		)

		res, err := svc.Update(context.Background(), "guest-1", dto.UpdateGuestRequest{Name: &name})

		shared.Drain()

		require.NoError(t, err)
		assert.Equal(t, name, res.Name)
	})
}

func TestGuestService_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		mockRepo, _, svc := setup(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{}, nil)

		err := svc.Delete(context.Background(), "guest-1")

		assert.True(t, failure.IsNotFound(err))
	})

	t.Run("deleted", func(t *testing.T) {
		mockRepo, _, svc := setup(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Guest{ID: "guest-1"}, nil)
		mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := svc.Delete(context.Background(), "guest-1")

		shared.Drain()

		assert.NoError(t, err)
	})
}
