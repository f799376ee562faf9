package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"hostly/infras/otel"
	"hostly/infras/postgres"
	"hostly/internal/domains/user/model"
	"hostly/shared"
	"hostly/shared/constant"
	gDto "hostly/shared/dto"
	gRepo "hostly/shared/repository"
)

type Users interface {
	GetUserID(ctx context.Context, email, recordType string) (string, error)
	GetUser(ctx context.Context, id string) (model.User, error)
	InsertUser(ctx context.Context, user model.User) error
	UpdateUser(ctx context.Context, id string, patch map[string]any) error
	GetCustomerByEmail(ctx context.Context, hostID, email string, activeOnly bool) (model.Customer, error)
	InsertCustomer(ctx context.Context, customer model.Customer) error
}

type repositoryImpl struct {
	users     gRepo.Repository[model.User]
	customers gRepo.Repository[model.Customer]
	otel      otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Users {
	return &repositoryImpl{
		users:     gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
		customers: gRepo.NewRepository[model.Customer](model.CustomerEntityName, model.CustomerTableName, model.FieldCustomerID, db, otel),
		otel:      otel,
	}
}

// GetUserID returns an empty id when no user matches.
func (r *repositoryImpl) GetUserID(ctx context.Context, email, recordType string) (string, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetUserID")
	defer scope.End()

	user, err := r.users.Get(ctx, gDto.And(
		gDto.Eq(model.TableName, model.FieldEmail, email),
		gDto.Eq(model.TableName, model.FieldRecordType, recordType),
	), model.FieldID)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to get user id: %w", err)
	}

	return user.ID, nil
}

func (r *repositoryImpl) GetUser(ctx context.Context, id string) (model.User, error) {
	return r.users.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) InsertUser(ctx context.Context, user model.User) error {
	return r.users.Insert(ctx, user) //nolint:wrapcheck
}

func (r *repositoryImpl) UpdateUser(ctx context.Context, id string, patch map[string]any) error {
	return r.users.Update(ctx, patch, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

// GetCustomerByEmail returns a zero Customer when the host has none for email.
func (r *repositoryImpl) GetCustomerByEmail(ctx context.Context, hostID, email string, activeOnly bool) (model.Customer, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetCustomerByEmail")
	defer scope.End()

	filters := []any{
		gDto.Eq(model.CustomerTableName, model.FieldCustomerHostID, hostID),
		gDto.Eq(model.CustomerTableName, model.FieldCustomerEmail, email),
	}

	if activeOnly {
		filters = append(filters, gDto.Eq(model.CustomerTableName, model.FieldCustomerStatus, model.StatusActive))
	}

	return r.customers.Get(ctx, gDto.And(filters...)) //nolint:wrapcheck
}

func (r *repositoryImpl) InsertCustomer(ctx context.Context, customer model.Customer) error {
	return r.customers.Insert(ctx, customer) //nolint:wrapcheck
}
