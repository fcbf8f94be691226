package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/consumable/model"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Consumable interface {
	Insert(ctx context.Context, model model.Consumable) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Consumable, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) (model.Consumable, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Consumable, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Consumable]
}

func New(db *postgres.Connection, otel otel.Otel) Consumable {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Consumable](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// LowStockFilter matches consumables at or below their reorder point.
func LowStockFilter() gDto.Filter {
	return gDto.Filter{
		Operator: gDto.FilterPlainQuery,
		Value:    model.TableName + "." + model.FieldStock + " <= " + model.TableName + "." + model.FieldMinStock,
	}
}
