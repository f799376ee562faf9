package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hostly/infras/otel"
	"hostly/infras/postgres"
	"hostly/internal/domains/billing/model"
	"hostly/shared"
	"hostly/shared/constant"
	gDto "hostly/shared/dto"
	"hostly/shared/logger"
	gRepo "hostly/shared/repository"
	"time"

	"github.com/jmoiron/sqlx"
)

type Billings interface {
	GetHostInvoices(ctx context.Context, hostID string, statuses []string) ([]model.Invoice, error)
	CreateInvoice(ctx context.Context, invoice model.Invoice) error
	GetInvoiceForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (model.Invoice, error)
	UpdateInvoiceTx(ctx context.Context, tx *sqlx.Tx, id string, fields map[string]any) error
	GetExpiredInvoices(ctx context.Context, status string, before time.Time) ([]model.Invoice, error)
	UpdateInvoiceStatus(ctx context.Context, id, fromStatus, toStatus, by string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Invoice]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Billings {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Invoice](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) GetHostInvoices(ctx context.Context, hostID string, statuses []string) ([]model.Invoice, error) {
	filters := []any{gDto.Eq(model.TableName, model.FieldHostID, hostID)}

	if len(statuses) > 0 {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldStatus,
			Value:    statuses,
			Operator: gDto.FilterOperatorIn,
			Table:    model.TableName,
		})
	}

	return r.GetAll(ctx, gDto.QueryParams{ //nolint:wrapcheck
		SortBy:  model.FieldStartBillingDate,
		SortDir: gDto.SortDirDesc,
	}, gDto.And(filters...))
}

// CreateInvoice surfaces unique violations untouched so callers can detect a concurrent winner.
func (r *repositoryImpl) CreateInvoice(ctx context.Context, invoice model.Invoice) error {
	return r.Insert(ctx, invoice) //nolint:wrapcheck
}

// GetInvoiceForUpdateTx locks the invoice row until the transaction ends. A missing row returns a zero Invoice.
func (r *repositoryImpl) GetInvoiceForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (invoice model.Invoice, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".invoice.GetInvoiceForUpdateTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query := fmt.Sprintf("SELECT * FROM %s WHERE %s = $1 FOR UPDATE", model.TableName, model.FieldID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = tx.GetContext(ctx, &invoice, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return invoice, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return invoice, fmt.Errorf("failed to lock invoice: %w", err)
	}

	return invoice, nil
}

func (r *repositoryImpl) UpdateInvoiceTx(ctx context.Context, tx *sqlx.Tx, id string, fields map[string]any) error {
	return r.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetExpiredInvoices(ctx context.Context, status string, before time.Time) ([]model.Invoice, error) {
	return r.GetAll(ctx, gDto.QueryParams{}, gDto.And( //nolint:wrapcheck
		gDto.Eq(model.TableName, model.FieldStatus, status),
		gDto.Filter{
			Field:    model.FieldClosingBillingDate,
			Value:    before,
			Operator: gDto.FilterOperatorLessEq,
			Table:    model.TableName,
		},
	))
}

// UpdateInvoiceStatus only moves invoices still in fromStatus.
func (r *repositoryImpl) UpdateInvoiceStatus(ctx context.Context, id, fromStatus, toStatus, by string) error {
	return r.Update(ctx, map[string]any{ //nolint:wrapcheck
		model.FieldStatus:        toStatus,
		constant.FieldModifiedAt: time.Now().UTC(),
		constant.FieldModifiedBy: by,
	}, gDto.And(
		gDto.Eq(model.TableName, model.FieldID, id),
		gDto.Filter{ArgName: "from_status", Field: model.FieldStatus, Value: fromStatus, Operator: gDto.FilterOperatorEq, Table: model.TableName},
	))
}
