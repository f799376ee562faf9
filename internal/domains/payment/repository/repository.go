package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hostly/infras/otel"
	"hostly/infras/postgres"
	"hostly/internal/domains/payment/model"
	"hostly/shared/constant"
	gDto "hostly/shared/dto"
	gRepo "hostly/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Payments interface {
	InsertPaymentTx(ctx context.Context, tx *sqlx.Tx, payment model.Payment) error
	InsertInstallmentsTx(ctx context.Context, tx *sqlx.Tx, installments []model.Installment) error
	GetBookingPayments(ctx context.Context, bookingID string) ([]model.Payment, error)
	GetBookingInstallments(ctx context.Context, bookingID string) ([]model.Installment, error)
}

type repositoryImpl struct {
	payments     gRepo.Repository[model.Payment]
	installments gRepo.Repository[model.Installment]
}

func New(db *postgres.Connection, otel otel.Otel) Payments {
	return &repositoryImpl{
		payments:     gRepo.NewRepository[model.Payment](model.EntityName, model.TableName, model.FieldID, db, otel),
		installments: gRepo.NewRepository[model.Installment](model.InstallmentEntityName, model.InstallmentTableName, model.FieldInstallmentID, db, otel),
	}
}

func (r *repositoryImpl) InsertPaymentTx(ctx context.Context, tx *sqlx.Tx, payment model.Payment) error {
	return r.payments.InsertTx(ctx, tx, payment) //nolint:wrapcheck
}

func (r *repositoryImpl) InsertInstallmentsTx(ctx context.Context, tx *sqlx.Tx, installments []model.Installment) error {
	if len(installments) == 0 {
		return nil
	}

	return r.installments.InsertBulkTx(ctx, tx, installments) //nolint:wrapcheck
}

func (r *repositoryImpl) GetBookingPayments(ctx context.Context, bookingID string) ([]model.Payment, error) {
	return r.payments.GetAll(ctx, gDto.QueryParams{ //nolint:wrapcheck
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}, gDto.FilterGroup{Filters: []any{gDto.Eq(model.TableName, model.FieldBookingID, bookingID)}})
}

func (r *repositoryImpl) GetBookingInstallments(ctx context.Context, bookingID string) ([]model.Installment, error) {
	return r.installments.GetAll(ctx, gDto.QueryParams{ //nolint:wrapcheck
		SortBy:  model.FieldInstallmentOrder,
		SortDir: gDto.SortDirAsc,
	}, gDto.FilterGroup{Filters: []any{gDto.Eq(model.InstallmentTableName, model.FieldInstallmentBookingID, bookingID)}})
}
