package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks -mock_names=Museum=MockMuseumRepository

import (
	"context"
	"darshan/infras/otel"
	"darshan/infras/postgres"
	"darshan/internal/domains/museum/model"
	gDto "darshan/shared/dto"
	gRepo "darshan/shared/repository"
)

type Museum interface {
	Insert(ctx context.Context, model model.Museum) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Museum, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Museum, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Museum]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Museum {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Museum](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
