package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/guest/model"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
)

type Guest interface {
	Insert(ctx context.Context, model model.Guest) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Guest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Guest, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Guest]
}

func New(db *postgres.Connection, otel otel.Otel) Guest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Guest](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
