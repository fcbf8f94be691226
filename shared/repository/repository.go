package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/shared/constant"
	"hotel/shared/dto"
	"hotel/shared/logger"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	errRequiredFilter = errors.New("required filter")
)

type column struct {
	name  string
	table string
	alias string
}

// key is the name the column is addressed by in scans and sort params.
func (c column) key() string {
	if c.alias != "" {
		return c.alias
	}

	return c.name
}

func (c column) qualified() string {
	return fmt.Sprintf("%s.%s", c.table, c.name)
}

type execer interface {
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
}

// queryer is satisfied by both *sqlx.DB and *sqlx.Tx.
type queryer interface {
	PrepareNamedContext(ctx context.Context, query string) (*sqlx.NamedStmt, error)
}

// Repository is a table gateway built from the db/table/column tags of T.
// Fields tagged `table:"x" column:"y"` are read from joined tables, whose
// JOIN clause comes from T's GetJoinQuery method.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entity        string
	primaryColumn string
	columns       []column
	join          string
	InsertColumns []string
}

type joiner interface {
	GetJoinQuery() string
}

func NewRepository[T any](entityName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := getColumns(tableName, reflect.TypeOf(zero))

	join := ""
	if j, ok := any(zero).(joiner); ok {
		join = j.GetJoinQuery()
	}

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entity:        entityName,
		primaryColumn: primaryColumn,
		columns:       columns,
		join:          join,
		InsertColumns: insertColumns,
	}
}

func (repo *Repository[T]) spanName(op string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, op)
}

func (repo *Repository[T]) insert(ctx context.Context, exec execer, model any) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("insert"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	placeholders := make([]string, 0, len(repo.InsertColumns))
	for _, col := range repo.InsertColumns {
		placeholders = append(placeholders, ":"+col)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.InsertColumns, ", "), strings.Join(placeholders, ", "))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = exec.NamedExecContext(ctx, query, model); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to insert data (%s): %w", repo.entity, err)
	}

	return nil
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	return repo.insert(ctx, repo.db.Write, model)
}

func (repo *Repository[T]) InsertTx(ctx context.Context, sqltx *sqlx.Tx, model T) error {
	return repo.insert(ctx, sqltx, model)
}

func (repo *Repository[T]) InsertBulk(ctx context.Context, models []T) error {
	if len(models) == 0 {
		return nil
	}

	return repo.insert(ctx, repo.db.Write, models)
}

func (repo *Repository[T]) InsertBulkTx(ctx context.Context, sqltx *sqlx.Tx, models []T) error {
	if len(models) == 0 {
		return nil
	}

	return repo.insert(ctx, sqltx, models)
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (exist bool, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Exist"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return false, errRequiredFilter
	}

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s %s)", repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", repo.entity, err)
	}
	defer stmt.Close()

	if err = stmt.GetContext(ctx, &exist, args); err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", repo.entity, err)
	}

	return exist, nil
}

// get returns the zero T when no row matches.
func (repo *Repository[T]) get(ctx context.Context, q queryer, filter dto.FilterGroup, lock bool, columns ...string) (model T, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("get"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	where, args := repo.BuildWhereClause(filter)

	query := fmt.Sprintf("SELECT %s FROM %s %s %s", repo.selectClause(columns...), repo.table, repo.join, where)
	if lock {
		// OF restricts the lock to the base table; the joined side may be NULL.
		query += " FOR UPDATE OF " + repo.table
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := q.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return model, fmt.Errorf("failed to prepare statement (%s): %w", repo.entity, err)
	}
	defer stmt.Close()

	err = stmt.GetContext(ctx, &model, args)
	if errors.Is(err, sql.ErrNoRows) {
		return model, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)

		return model, fmt.Errorf("failed to get data (%s): %w", repo.entity, err)
	}

	return model, nil
}

func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	return repo.get(ctx, repo.db.Read, filter, false, columns...)
}

// GetTx reads through the transaction so uncommitted writes are visible.
func (repo *Repository[T]) GetTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup) (T, error) {
	return repo.get(ctx, sqltx, filter, false)
}

// GetForUpdateTx reads and row-locks the match until the transaction ends.
func (repo *Repository[T]) GetForUpdateTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup) (T, error) {
	return repo.get(ctx, sqltx, filter, true)
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) (models []T, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("GetAll"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	where, args := repo.BuildWhereClause(filter)

	var pagination string

	switch {
	case params.Page > 0 && params.Limit > 0:
		args["limit"] = params.Limit
		args["offset"] = (params.Page - 1) * params.Limit
		pagination = "LIMIT :limit OFFSET :offset"
	case params.Limit > 0:
		args["limit"] = params.Limit
		pagination = "LIMIT :limit"
	}

	query := fmt.Sprintf("SELECT %s FROM %s %s %s %s %s",
		repo.selectClause(columns...), repo.table, repo.join, where, repo.OrderClause(params), pagination)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return models, fmt.Errorf("failed to prepare statement (%s): %w", repo.entity, err)
	}
	defer stmt.Close()

	models = make([]T, 0)
	if err = stmt.SelectContext(ctx, &models, args); err != nil {
		logger.ErrorWithStack(err)

		return models, fmt.Errorf("failed to get all data (%s): %w", repo.entity, err)
	}

	return models, nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (count int, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Count"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	where, args := repo.BuildWhereClause(filter)

	query := fmt.Sprintf("SELECT COUNT(%s.%s) FROM %s %s %s", repo.table, repo.primaryColumn, repo.table, repo.join, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to prepare statement (%s): %w", repo.entity, err)
	}
	defer stmt.Close()

	if err = stmt.GetContext(ctx, &count, args); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to count data (%s): %w", repo.entity, err)
	}

	return count, nil
}

func (repo *Repository[T]) delete(ctx context.Context, exec execer, filter dto.FilterGroup) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("delete"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return errRequiredFilter
	}

	query := fmt.Sprintf("DELETE FROM %s %s", repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = exec.NamedExecContext(ctx, query, args); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to delete data (%s): %w", repo.entity, err)
	}

	return nil
}

func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) error {
	return repo.delete(ctx, repo.db.Write, filter)
}

func (repo *Repository[T]) DeleteTx(ctx context.Context, sqltx *sqlx.Tx, filter dto.FilterGroup) error {
	return repo.delete(ctx, sqltx, filter)
}

func (repo *Repository[T]) update(ctx context.Context, exec execer, mod map[string]any, filter dto.FilterGroup) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("update"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return errRequiredFilter
	}

	// Sorted so the statement text is stable across calls.
	keys := slices.Sorted(maps.Keys(mod))
	assignments := make([]string, 0, len(keys))

	for _, col := range keys {
		assignments = append(assignments, fmt.Sprintf("%s = :%s", col, col))
	}

	query := fmt.Sprintf("UPDATE %s SET %s %s", repo.table, strings.Join(assignments, ", "), where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	maps.Copy(args, mod)

	if _, err = exec.NamedExecContext(ctx, query, args); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to update data (%s): %w", repo.entity, err)
	}

	return nil
}

func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error {
	return repo.update(ctx, repo.db.Write, mod, filter)
}

func (repo *Repository[T]) UpdateTx(ctx context.Context, sqltx *sqlx.Tx, mod map[string]any, filter dto.FilterGroup) error {
	return repo.update(ctx, sqltx, mod, filter)
}

func (repo *Repository[T]) selectClause(only ...string) string {
	selected := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		if len(only) > 0 && !slices.Contains(only, col.key()) {
			continue
		}

		if col.alias != "" {
			selected = append(selected, fmt.Sprintf("%s AS %s", col.qualified(), col.alias))
		} else {
			selected = append(selected, col.qualified())
		}
	}

	return strings.Join(selected, ", ")
}

// OrderClause only sorts by known columns; anything else is ignored, never
// interpolated.
func (repo *Repository[T]) OrderClause(params dto.QueryParams) string {
	if params.SortBy == "" {
		return ""
	}

	dir := dto.SortDirAsc
	if strings.EqualFold(params.SortDir, dto.SortDirDesc) {
		dir = dto.SortDirDesc
	}

	for _, col := range repo.columns {
		if col.key() == params.SortBy {
			return fmt.Sprintf("ORDER BY %s %s", col.qualified(), dir)
		}
	}

	return ""
}

func (repo *Repository[T]) BuildWhereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return "", map[string]any{}
	}

	return fmt.Sprintf(" WHERE %s ", where), args
}

func getColumns(table string, reflectType reflect.Type) (columns []column, insertColumns []string) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			col, insertCol := getColumns(table, field.Type)
			columns = append(columns, col...)
			insertColumns = append(insertColumns, insertCol...)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" || dbTag == "-" {
			continue
		}

		tableTag := field.Tag.Get("table")
		if tableTag == "" {
			tableTag = table
		}

		if tableTag == table {
			insertColumns = append(insertColumns, dbTag)
		}

		if colTag := field.Tag.Get("column"); colTag != "" {
			columns = append(columns, column{name: colTag, table: tableTag, alias: dbTag})
		} else {
			columns = append(columns, column{name: dbTag, table: tableTag})
		}
	}

	return columns, insertColumns
}

// IsUniqueViolation reports whether err came from a unique constraint.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
}
