package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hostly/infras/otel"
	"hostly/infras/postgres"
	"hostly/internal/domains/host/model"
	gDto "hostly/shared/dto"
	gRepo "hostly/shared/repository"
)

// Host is read-only here. Hosts are provisioned by the account service.
type Host interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Host, error)
}

type repositoryImpl struct {
	hosts gRepo.Repository[model.Host]
}

func New(db *postgres.Connection, otel otel.Otel) Host {
	return &repositoryImpl{
		hosts: gRepo.NewRepository[model.Host](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Host, error) {
	return r.hosts.Get(ctx, filter, columns...) //nolint:wrapcheck
}
