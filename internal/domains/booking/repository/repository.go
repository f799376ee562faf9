package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hostly/infras/otel"
	"hostly/infras/postgres"
	"hostly/internal/domains/booking/model"
	gDto "hostly/shared/dto"
	gRepo "hostly/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, booking model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	bookings gRepo.Repository[model.Booking]
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		bookings: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

func (r *repositoryImpl) InsertTx(ctx context.Context, tx *sqlx.Tx, booking model.Booking) error {
	return r.bookings.InsertTx(ctx, tx, booking) //nolint:wrapcheck
}

func (r *repositoryImpl) Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error) {
	return r.bookings.Get(ctx, filter, columns...) //nolint:wrapcheck
}

func (r *repositoryImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error) {
	return r.bookings.GetAll(ctx, params, filter, columns...) //nolint:wrapcheck
}

func (r *repositoryImpl) Count(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return r.bookings.Count(ctx, filter) //nolint:wrapcheck
}
