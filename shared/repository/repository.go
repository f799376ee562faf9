package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hostly/infras/otel"
	"hostly/infras/postgres"
	"hostly/shared/constant"
	"hostly/shared/dto"
	"hostly/shared/logger"
	"maps"
	"reflect"
	"regexp"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"
)

const setArgPrefix = "set_"

var (
	errRequiredFilter = errors.New("required filter")

	// sort columns are interpolated, so only bare or table-qualified identifiers pass
	sortColumnPattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*(\.[a-z_][a-z0-9_]*)?$`)
)

type execer interface {
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

// Repository is a table gateway for one row type. Columns are the db tags of T, embedded structs included.
type Repository[T any] struct {
	db          *postgres.Connection
	otel        otel.Otel
	table       string
	entity      string
	primary     string
	columns     []string
	insertQuery string
}

// NewRepository derives the column list from T's db tags.
func NewRepository[T any](entityName, tableName, primaryColumn string, db *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns := dbColumns(reflect.TypeOf(zero))

	placeholders := make([]string, len(columns))
	for i, col := range columns {
		placeholders[i] = ":" + col
	}

	return Repository[T]{
		db:          db,
		otel:        otl,
		table:       tableName,
		entity:      entityName,
		primary:     primaryColumn,
		columns:     columns,
		insertQuery: fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", tableName, strings.Join(columns, ", "), strings.Join(placeholders, ", ")),
	}
}

// Insert writes one row outside a transaction.
func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	return repo.exec(ctx, "Insert", repo.db.Write, repo.insertQuery, model)
}

func (repo *Repository[T]) InsertTx(ctx context.Context, tx *sqlx.Tx, model T) error {
	return repo.exec(ctx, "InsertTx", tx, repo.insertQuery, model)
}

// InsertBulkTx writes every row with a single multi-row statement.
func (repo *Repository[T]) InsertBulkTx(ctx context.Context, tx *sqlx.Tx, models []T) error {
	if len(models) == 0 {
		return nil
	}

	return repo.exec(ctx, "InsertBulkTx", tx, repo.insertQuery, models)
}

// Get returns the zero T when nothing matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (model T, err error) {
	ctx, scope := repo.scope(ctx, "Get")
	defer scope.End()

	where, args := whereClause(filter)
	query := fmt.Sprintf("SELECT %s FROM %s%s", repo.selectColumns(columns), repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return model, repo.fail(scope, "prepare get", err)
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &model, args)
	if errors.Is(err, sql.ErrNoRows) {
		return model, nil
	}

	if err != nil {
		return model, repo.fail(scope, "get", err)
	}

	return model, nil
}

// GetAll returns a page of rows ordered by a whitelisted sort column.
func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	ctx, scope := repo.scope(ctx, "GetAll")
	defer scope.End()

	where, args := whereClause(filter)

	var clauses strings.Builder

	clauses.WriteString(where)

	if sortColumnPattern.MatchString(params.SortBy) && (params.SortDir == dto.SortDirAsc || params.SortDir == dto.SortDirDesc) {
		fmt.Fprintf(&clauses, " ORDER BY %s %s", params.SortBy, params.SortDir)
	}

	if params.Limit > 0 {
		args["limit"] = params.Limit
		clauses.WriteString(" LIMIT :limit")

		if params.Page > 0 {
			args["offset"] = (params.Page - 1) * params.Limit
			clauses.WriteString(" OFFSET :offset")
		}
	}

	query := fmt.Sprintf("SELECT %s FROM %s%s", repo.selectColumns(columns), repo.table, clauses.String())
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	models := []T{}

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return models, repo.fail(scope, "prepare list", err)
	}
	defer stmt.Close()

	if err = stmt.SelectContext(ctx, &models, args); err != nil {
		return models, repo.fail(scope, "list", err)
	}

	return models, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	ctx, scope := repo.scope(ctx, "Count")
	defer scope.End()

	where, args := whereClause(filter)
	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s%s", repo.table, repo.primary, repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return 0, repo.fail(scope, "prepare count", err)
	}
	defer stmt.Close()

	var count int
	if err = stmt.GetContext(ctx, &count, args); err != nil {
		return 0, repo.fail(scope, "count", err)
	}

	return count, nil
}

// Update sets fields on every row matching filter.
func (repo *Repository[T]) Update(ctx context.Context, fields map[string]any, filter dto.FilterGroup) error {
	return repo.update(ctx, "Update", repo.db.Write, fields, filter)
}

func (repo *Repository[T]) UpdateTx(ctx context.Context, tx *sqlx.Tx, fields map[string]any, filter dto.FilterGroup) error {
	return repo.update(ctx, "UpdateTx", tx, fields, filter)
}

// update refuses to run without a filter. SET values are bound under a prefix so they never shadow filter args.
func (repo *Repository[T]) update(ctx context.Context, op string, exec execer, fields map[string]any, filter dto.FilterGroup) error {
	where, args := whereClause(filter)
	if where == "" {
		return fmt.Errorf("failed to update %s: %w", repo.entity, errRequiredFilter)
	}

	assignments := make([]string, 0, len(fields))

	for _, col := range slices.Sorted(maps.Keys(fields)) {
		assignments = append(assignments, fmt.Sprintf("%s = :%s%s", col, setArgPrefix, col))
		args[setArgPrefix+col] = fields[col]
	}

	query := fmt.Sprintf("UPDATE %s SET %s%s", repo.table, strings.Join(assignments, ", "), where)

	return repo.exec(ctx, op, exec, query, args)
}

func (repo *Repository[T]) exec(ctx context.Context, op string, exec execer, query string, arg any) error {
	ctx, scope := repo.scope(ctx, op)
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := exec.NamedExecContext(ctx, query, arg); err != nil {
		return repo.fail(scope, strings.ToLower(op), err)
	}

	return nil
}

func (repo *Repository[T]) scope(ctx context.Context, op string) (context.Context, otel.Scope) {
	return repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+repo.entity+"."+op)
}

func (repo *Repository[T]) fail(scope otel.Scope, action string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("failed to %s %s: %w", action, repo.entity, err)
}

// selectColumns qualifies every column with the table, optionally narrowed to only.
func (repo *Repository[T]) selectColumns(only []string) string {
	selected := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		if len(only) > 0 && !slices.Contains(only, col) {
			continue
		}

		selected = append(selected, repo.table+"."+col)
	}

	return strings.Join(selected, ", ")
}

func whereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return "", map[string]any{}
	}

	return " WHERE " + where, args
}

func dbColumns(typ reflect.Type) []string {
	columns := []string{}

	for i := range typ.NumField() {
		field := typ.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, dbColumns(field.Type)...)

			continue
		}

		if tag := field.Tag.Get("db"); tag != "" && tag != "-" {
			columns = append(columns, tag)
		}
	}

	return columns
}
