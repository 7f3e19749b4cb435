package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"maps"
	"reflect"
	"salon/infras/otel"
	"salon/infras/postgres"
	"salon/shared/constant"
	"salon/shared/dto"
	"salon/shared/logger"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"
)

var (
	errRequiredFilter = errors.New("required filter")
	errRequiredColumn = errors.New("required conflict column")
)

type column struct {
	name  string
	table string
	alias string
}

// Repository is a generic sqlx backed table gateway. Columns come from the `db` tags of T,
// embedded structs included. A `table` tag marks a joined column that is selected but
// never inserted, `column` renames it.
type Repository[T any] struct {
	db            *postgres.Connection
	otel          otel.Otel
	table         string
	entity        string
	primaryColumn string
	columns       []column
	InsertColumns []string
}

func NewRepository[T any](entityName, tableName, primaryColumn string, dbConnection *postgres.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns, insertColumns := getColumns(tableName, reflect.TypeOf(zero))

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entity:        entityName,
		primaryColumn: primaryColumn,
		columns:       columns,
		InsertColumns: insertColumns,
	}
}

func (repo *Repository[T]) scope(ctx context.Context, op, query string) (context.Context, otel.Scope) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName,
		fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, op))
	if query != "" {
		scope.SetAttribute(constant.OtelQueryAttributeKey, query)
	}

	return ctx, scope
}

// fail logs and traces err, then wraps it with the action and entity name.
func (repo *Repository[T]) fail(scope otel.Scope, action string, err error) error {
	logger.ErrorWithStack(err)
	scope.TraceError(err)

	return fmt.Errorf("failed to %s (%s): %w", action, repo.entity, err)
}

func (repo *Repository[T]) insertQuery() string {
	placeholders := make([]string, len(repo.InsertColumns))

	for i, col := range repo.InsertColumns {
		placeholders[i] = ":" + col
	}

	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.InsertColumns, ", "), strings.Join(placeholders, ", "))
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	query := repo.insertQuery()

	ctx, scope := repo.scope(ctx, "Insert", query)
	defer scope.End()

	if _, err := repo.db.Write.NamedExecContext(ctx, query, model); err != nil {
		return repo.fail(scope, "insert data", err)
	}

	return nil
}

// Assignment is one SET clause of an upsert conflict action.
type Assignment struct {
	Column string
	// KeepExisting leaves the stored value when the incoming one is NULL.
	KeepExisting bool
}

func assignments(keepExisting bool, columns []string) []Assignment {
	res := make([]Assignment, len(columns))

	for i, col := range columns {
		res[i] = Assignment{Column: col, KeepExisting: keepExisting}
	}

	return res
}

func Overwrite(columns ...string) []Assignment {
	return assignments(false, columns)
}

func OverwriteIfSet(columns ...string) []Assignment {
	return assignments(true, columns)
}

func (repo *Repository[T]) conflictAction(sets []Assignment) string {
	if len(sets) == 0 {
		return "DO NOTHING"
	}

	clauses := make([]string, len(sets))

	for i, set := range sets {
		if set.KeepExisting {
			clauses[i] = fmt.Sprintf("%[1]s = COALESCE(EXCLUDED.%[1]s, %[2]s.%[1]s)", set.Column, repo.table)
		} else {
			clauses[i] = fmt.Sprintf("%[1]s = EXCLUDED.%[1]s", set.Column)
		}
	}

	return "DO UPDATE SET " + strings.Join(clauses, ", ")
}

// Upsert inserts model or, when a row with the same conflict columns exists, applies the
// assignments to it. It returns the primary key of the inserted or updated row.
// With no assignments an existing row is left alone and sql.ErrNoRows is returned.
func (repo *Repository[T]) Upsert(ctx context.Context, model T, conflict []string, sets ...Assignment) (string, error) {
	if len(conflict) == 0 {
		return "", errRequiredColumn
	}

	query := fmt.Sprintf("%s ON CONFLICT (%s) %s RETURNING %s", repo.insertQuery(), strings.Join(conflict, ", "), repo.conflictAction(sets), repo.primaryColumn)

	ctx, scope := repo.scope(ctx, "Upsert", query)
	defer scope.End()

	var id string

	if err := getNamed(ctx, repo.db.Write, query, &id, model); err != nil {
		return "", repo.fail(scope, "upsert data", err)
	}

	return id, nil
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return false, errRequiredFilter
	}

	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s %s)", repo.table, where)

	ctx, scope := repo.scope(ctx, "Exist", query)
	defer scope.End()

	var exist bool

	if err := getNamed(ctx, repo.db.Read, query, &exist, args); err != nil {
		return false, repo.fail(scope, "check exist data", err)
	}

	return exist, nil
}

// Get returns the first matching row, or the zero T when nothing matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup, columns ...string) (T, error) {
	where, args := repo.BuildWhereClause(filter)
	query := fmt.Sprintf("SELECT %s FROM %s %s LIMIT 1", repo.getSelectQuery(columns...), repo.table, where)

	ctx, scope := repo.scope(ctx, "Get", query)
	defer scope.End()

	var model T

	err := getNamed(ctx, repo.db.Read, query, &model, args)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return model, repo.fail(scope, "get data", err)
	}

	return model, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup, columns ...string) ([]T, error) {
	where, args := repo.BuildWhereClause(filter)
	query := fmt.Sprintf("SELECT %s FROM %s %s %s %s", repo.getSelectQuery(columns...), repo.table, where, params.OrderBy(), paginate(params, args))

	ctx, scope := repo.scope(ctx, "GetAll", query)
	defer scope.End()

	models := []T{}

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		return models, repo.fail(scope, "prepare statement", err)
	}
	defer stmt.Close()

	if err = stmt.SelectContext(ctx, &models, args); err != nil {
		return models, repo.fail(scope, "get all data", err)
	}

	return models, nil
}

func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) error {
	where, args := repo.BuildWhereClause(filter)
	if where == "" {
		return errRequiredFilter
	}

	sets := make([]string, 0, len(mod))

	for _, col := range slices.Sorted(maps.Keys(mod)) {
		sets = append(sets, fmt.Sprintf("%[1]s = :%[1]s", col))
	}

	query := fmt.Sprintf("UPDATE %s SET %s %s", repo.table, strings.Join(sets, ", "), where)

	ctx, scope := repo.scope(ctx, "Update", query)
	defer scope.End()

	maps.Copy(args, mod)

	if _, err := repo.db.Write.NamedExecContext(ctx, query, args); err != nil {
		return repo.fail(scope, "update data", err)
	}

	return nil
}

func (repo *Repository[T]) getSelectQuery(only ...string) string {
	selected := make([]string, 0, len(repo.columns))

	for _, col := range repo.columns {
		if len(only) > 0 && !slices.Contains(only, col.name) {
			continue
		}

		selected = append(selected, col.selectExpr())
	}

	return strings.Join(selected, ", ")
}

func (c column) selectExpr() string {
	switch {
	case c.table == "":
		return c.name
	case c.alias != "":
		return fmt.Sprintf("%s.%s AS %s", c.table, c.name, c.alias)
	default:
		return c.table + "." + c.name
	}
}

func (repo *Repository[T]) BuildWhereClause(filter dto.FilterGroup) (string, map[string]any) {
	where, args := filter.GetWhereClause()
	if where == "" {
		return where, map[string]any{}
	}

	return fmt.Sprintf(" WHERE %s ", where), args
}

// paginate adds limit and offset arguments and returns the matching clause.
func paginate(params dto.QueryParams, args map[string]any) string {
	if params.Limit <= 0 {
		return ""
	}

	args["limit"] = params.Limit

	if params.Page <= 0 {
		return "LIMIT :limit"
	}

	args["offset"] = (params.Page - 1) * params.Limit

	return "LIMIT :limit OFFSET :offset"
}

func getNamed(ctx context.Context, db *sqlx.DB, query string, dest, arg any) error {
	stmt, err := db.PrepareNamedContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	defer stmt.Close()

	return stmt.GetContext(ctx, dest, arg) //nolint:wrapcheck
}

func getColumns(table string, reflectType reflect.Type) (columns []column, insertColumns []string) {
	for field := range fields(reflectType) {
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			embedded, embeddedInsert := getColumns(table, field.Type)
			columns = append(columns, embedded...)
			insertColumns = append(insertColumns, embeddedInsert...)

			continue
		}

		name := field.Tag.Get("db")
		if name == "" || name == "-" {
			continue
		}

		owner := field.Tag.Get("table")
		if owner == "" {
			owner = table
			insertColumns = append(insertColumns, name)
		}

		if renamed := field.Tag.Get("column"); renamed != "" {
			columns = append(columns, column{name: renamed, table: owner, alias: name})
		} else {
			columns = append(columns, column{name: name, table: owner})
		}
	}

	return columns, insertColumns
}

func fields(t reflect.Type) func(yield func(reflect.StructField) bool) {
	return func(yield func(reflect.StructField) bool) {
		for i := range t.NumField() {
			if !yield(t.Field(i)) {
				return
			}
		}
	}
}
