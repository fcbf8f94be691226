package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/booking/model"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) (model.Booking, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
