package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorIn        = "in"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLess      = "less"
	FilterOperatorGreater   = "greater"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterIsNotNull         = "is_not_null"
	FilterIsNull            = "is_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

var comparisons = map[string]string{
	FilterOperatorEq:        "=",
	FilterOperatorNotEq:     "!=",
	FilterOperatorLess:      "<",
	FilterOperatorGreater:   ">",
	FilterOperatorLessEq:    "<=",
	FilterOperatorGreaterEq: ">=",
}

// Clause renders a named-parameter SQL predicate. An empty string means no predicate.
type Clause interface {
	GetWhereClause() (string, map[string]any)
}

// Filter is a single predicate. ArgName defaults to Field and must be unique inside one
// FilterGroup when the same column is compared twice.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string
	Table    string
}

func (f Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

func (f Filter) argName() string {
	if f.ArgName == "" {
		return f.Field
	}

	return f.ArgName
}

func (f Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	name := f.argName()

	if symbol, ok := comparisons[f.Operator]; ok {
		args[name] = f.Value

		return fmt.Sprintf("%s %s :%s", f.column(), symbol, name), args
	}

	switch f.Operator {
	case FilterOperatorIn:
		return f.column() + " IN (" + f.expandIn(name, args) + ")", args
	case FilterIsNotNull:
		return f.column() + " IS NOT NULL", args
	case FilterIsNull:
		return f.column() + " IS NULL", args
	default:
		return "", args
	}
}

// expandIn binds every element of a slice value as its own parameter.
func (f Filter) expandIn(name string, args map[string]any) string {
	val := reflect.ValueOf(f.Value)
	if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
		args[name] = f.Value

		return ":" + name
	}

	placeholders := make([]string, val.Len())

	for i := range val.Len() {
		key := fmt.Sprintf("%s_%d", name, i)
		args[key] = val.Index(i).Interface()
		placeholders[i] = ":" + key
	}

	return strings.Join(placeholders, ", ")
}

// FilterGroup joins Filters, each a Filter or a nested FilterGroup, with Operator (AND by default).
type FilterGroup struct {
	Filters  []any
	Operator string
}

func (f FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	parts := make([]string, 0, len(f.Filters))

	for _, item := range f.Filters {
		clause, ok := item.(Clause)
		if !ok {
			continue
		}

		where, arg := clause.GetWhereClause()
		if where == "" {
			continue
		}

		parts = append(parts, where)
		maps.Copy(args, arg)
	}

	if len(parts) == 0 {
		return "", args
	}

	operator := f.Operator
	if operator == "" {
		operator = FilterGroupOperatorAnd
	}

	return "(" + strings.Join(parts, " "+operator+" ") + ")", args
}
