package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"hotel/config"
	"hotel/infras/otel/mocks"
	consumableMocks "hotel/internal/domains/consumable/mocks"
	"hotel/internal/domains/consumable/model"
	"hotel/internal/domains/consumable/model/dto"
	"hotel/internal/domains/consumable/service"
	"hotel/shared"
	cacheMocks "hotel/shared/cache/mocks"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
)

func setup(t *testing.T) (*consumableMocks.MockConsumable, *cacheMocks.MockRedisCache, service.Consumable) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := consumableMocks.NewMockConsumable(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return mockRepo, mockCache, service.New(mockRepo, cfg, mockCache, mocks.NewOtel())
}

func TestConsumableService_Create(t *testing.T) {
	minStock := 3

	tests := []struct {
		name         string
		req          dto.CreateConsumableRequest
		wantMinStock int
		wantUnit     string
	}{
		{
			name:         "defaults min stock and unit",
			req:          dto.CreateConsumableRequest{Name: "Água mineral", Category: "bebidas", Price: decimal.NewFromInt(5), Stock: 40},
			wantMinStock: model.DefaultMinStock,
			wantUnit:     model.DefaultUnit,
		},
		{
			name:         "keeps explicit values",
			req:          dto.CreateConsumableRequest{Name: "Vinho", Category: "bebidas", Stock: 2, MinStock: &minStock, Unit: "garrafa"},
			wantMinStock: 3,
			wantUnit:     "garrafa",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo, _, svc := setup(t)

			mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

			res, err := svc.Create(context.Background(), tt.req)

			shared.Drain()

			require.NoError(t, err)
			assert.Equal(t, tt.wantMinStock, res.MinStock)
			assert.Equal(t, tt.wantUnit, res.Unit)
			assert.Equal(t, res.Stock <= res.MinStock, res.LowStock)
		})
	}
}

func TestConsumableService_GetLowStock(t *testing.T) {
	t.Run("unrestricted listing uses cache", func(t *testing.T) {
		mockRepo, mockCache, svc := setup(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("miss"))
		mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Consumable, error) {
				where, _ := filter.GetWhereClause()
				assert.Contains(t, where, "consumables.stock <= consumables.min_stock")

				return []model.Consumable{{ID: "c-1", Stock: 2, MinStock: 10}}, nil
			})

		res, err := svc.GetLowStock(context.Background())

		shared.Drain()

		require.NoError(t, err)
		require.Len(t, res, 1)
		assert.True(t, res[0].LowStock)
	})

	t.Run("restricted to ids skips cache", func(t *testing.T) {
		mockRepo, _, svc := setup(t)

		mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Consumable, error) {
				_, args := filter.GetWhereClause()
				assert.Equal(t, "c-1", args["id_0"])
				assert.Equal(t, "c-2", args["id_1"])

				return []model.Consumable{}, nil
			})

		res, err := svc.GetLowStock(context.Background(), "c-1", "c-2")

		require.NoError(t, err)
		assert.Empty(t, res)
	})
}

func TestConsumableService_Update(t *testing.T) {
	stock := 0

	t.Run("zero stock is a real update", func(t *testing.T) {
		mockRepo, _, svc := setup(t)

		gomock.InOrder(
			mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Consumable{ID: "c-1", Stock: 5}, nil),
			mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, values map[string]any, _ gDto.FilterGroup) error {
					assert.Equal(t, 0, values[model.FieldStock])

					return nil
				}),
			mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Consumable{ID: "c-1", Stock: 0, MinStock: 10}, nil),
		)

		res, err := svc.Update(context.Background(), "c-1", dto.UpdateConsumableRequest{Stock: &stock})

		shared.Drain()

		require.NoError(t, err)
		assert.True(t, res.LowStock)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo, _, svc := setup(t)

		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Consumable{}, nil)

		_, err := svc.Update(context.Background(), "c-1", dto.UpdateConsumableRequest{Stock: &stock})

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestConsumableService_Delete(t *testing.T) {
	mockRepo, _, svc := setup(t)

	mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Consumable{ID: "c-1"}, nil)
	mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("boom"))

	err := svc.Delete(context.Background(), "c-1")

	assert.Error(t, err)
}
