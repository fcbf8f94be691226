package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/cleaning/model"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"

	"github.com/jmoiron/sqlx"
)

type CleaningLog interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.CleaningLog) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.CleaningLog, error)
	GetTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) (model.CleaningLog, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) (model.CleaningLog, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CleaningLog, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.CleaningLog]
}

func New(db *postgres.Connection, otel otel.Otel) CleaningLog {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.CleaningLog](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// OpenFilter matches the log of roomID that has not been completed yet.
func OpenFilter(roomID string) gDto.FilterGroup {
	filter := gDto.NewFilterGroup()
	filter.EqIfSet(model.TableName, model.FieldRoomID, roomID)
	filter.Add(gDto.Filter{
		Field:    model.FieldCompletedAt,
		Operator: gDto.FilterIsNull,
		Table:    model.TableName,
	})

	return filter
}
