package dto

import (
	"fmt"
	"maps"
	"reflect"
	"strings"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorIn        = "in"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterOperatorIsNull    = "is_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

var comparisons = map[string]string{
	FilterOperatorEq:        "=",
	FilterOperatorNotEq:     "!=",
	FilterOperatorLessEq:    "<=",
	FilterOperatorGreaterEq: ">=",
}

// Filter is a single predicate. ArgName overrides the bind name when one field is filtered twice.
type Filter struct {
	ArgName  string
	Field    string
	Value    any
	Operator string
	Table    string
}

func (f *Filter) column() string {
	if f.Table == "" {
		return f.Field
	}

	return f.Table + "." + f.Field
}

func (f *Filter) bindName() string {
	if f.ArgName != "" {
		return f.ArgName
	}

	return f.Field
}

// GetWhereClause renders the predicate with named binds. Unknown operators render nothing.
func (f *Filter) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	name := f.bindName()

	if op, ok := comparisons[f.Operator]; ok {
		args[name] = f.Value

		return fmt.Sprintf("%s %s :%s", f.column(), op, name), args
	}

	switch f.Operator {
	case FilterOperatorIn:
		values := reflect.ValueOf(f.Value)
		if values.Kind() != reflect.Slice && values.Kind() != reflect.Array {
			args[name] = f.Value

			return fmt.Sprintf("%s IN (:%s)", f.column(), name), args
		}

		if values.Len() == 0 {
			return "FALSE", args
		}

		binds := make([]string, values.Len())

		for i := range values.Len() {
			key := fmt.Sprintf("%s_%d", name, i)
			args[key] = values.Index(i).Interface()
			binds[i] = ":" + key
		}

		return fmt.Sprintf("%s IN (%s)", f.column(), strings.Join(binds, ", ")), args
	case FilterOperatorIsNull:
		return f.column() + " IS NULL", args
	}

	return "", args
}

// FilterGroup joins Filter and nested FilterGroup values with Operator.
type FilterGroup struct {
	Filters  []any
	Operator string
}

// GetWhereClause renders the group in parentheses and merges the bound args.
func (g *FilterGroup) GetWhereClause() (string, map[string]any) {
	args := map[string]any{}
	parts := make([]string, 0, len(g.Filters))

	for _, item := range g.Filters {
		var (
			where string
			arg   map[string]any
		)

		switch typed := item.(type) {
		case Filter:
			where, arg = typed.GetWhereClause()
		case FilterGroup:
			where, arg = typed.GetWhereClause()
		default:
			continue
		}

		if where == "" {
			continue
		}

		parts = append(parts, where)
		maps.Copy(args, arg)
	}

	if len(parts) == 0 {
		return "", args
	}

	return "(" + strings.Join(parts, " "+g.Operator+" ") + ")", args
}

// And groups filters or nested groups with AND.
func And(filters ...any) FilterGroup {
	return FilterGroup{
		Filters:  filters,
		Operator: FilterGroupOperatorAnd,
	}
}

// Eq builds an equality filter on table.field.
func Eq(table, field string, value any) Filter {
	return Filter{
		Field:    field,
		Value:    value,
		Operator: FilterOperatorEq,
		Table:    table,
	}
}
