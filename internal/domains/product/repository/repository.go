package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"hostly/infras/otel"
	"hostly/infras/postgres"
	"hostly/internal/domains/product/model"
	"hostly/shared"
	gDto "hostly/shared/dto"
	gRepo "hostly/shared/repository"
)

// Product reads the product catalog. Lookups return zero values when nothing matches.
type Product interface {
	GetProduct(ctx context.Context, id string) (model.Product, error)
	GetPlan(ctx context.Context, productID, planID string) (model.Plan, error)
	GetDate(ctx context.Context, productID, dateID string) (model.Date, error)
}

type repositoryImpl struct {
	products gRepo.Repository[model.Product]
	plans    gRepo.Repository[model.Plan]
	dates    gRepo.Repository[model.Date]
}

func New(db *postgres.Connection, otel otel.Otel) Product {
	return &repositoryImpl{
		products: gRepo.NewRepository[model.Product](model.EntityName, model.TableName, model.FieldID, db, otel),
		plans:    gRepo.NewRepository[model.Plan](model.PlanEntityName, model.PlanTableName, model.FieldPlanID, db, otel),
		dates:    gRepo.NewRepository[model.Date](model.DateEntityName, model.DateTableName, model.FieldDateID, db, otel),
	}
}

func (r *repositoryImpl) GetProduct(ctx context.Context, id string) (model.Product, error) {
	return r.products.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetPlan(ctx context.Context, productID, planID string) (model.Plan, error) {
	return r.plans.Get(ctx, gDto.And( //nolint:wrapcheck
		gDto.Eq(model.PlanTableName, model.FieldPlanID, planID),
		gDto.Eq(model.PlanTableName, model.FieldPlanProductID, productID),
	))
}

func (r *repositoryImpl) GetDate(ctx context.Context, productID, dateID string) (model.Date, error) {
	return r.dates.Get(ctx, gDto.And( //nolint:wrapcheck
		gDto.Eq(model.DateTableName, model.FieldDateID, dateID),
		gDto.Eq(model.DateTableName, model.FieldDateProductID, productID),
	))
}
