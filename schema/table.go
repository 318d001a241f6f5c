// Package schema provides the table facade and schema-level grouping on top
// of the query builder: tables expose their declared columns as validated
// expression accessors and forward fluent calls into a fresh query scoped
// to the table.
package schema

import (
	"slices"

	"github.com/danielenricocahall/sqlscribe"
	"github.com/danielenricocahall/sqlscribe/dialect"
	"github.com/danielenricocahall/sqlscribe/dialect/sql"
)

// Table is a facade over one database table: a name, an optional schema
// qualifier, and the active set of declared fields. Accessing a field
// outside the active set fails with an unknown-field error.
type Table struct {
	dialectName string
	rules       dialect.Rules
	name        string
	schema      string
	fields      []string
	index       map[string]struct{}
}

// NewTable returns a table facade bound to the given dialect. The dialect
// is resolved eagerly: an unknown identifier fails here, not at build time.
func NewTable(dialectName, name string, fields ...string) (*Table, error) {
	rules, err := dialect.Lookup(dialectName)
	if err != nil {
		return nil, err
	}
	ref := sql.Table(name)
	if err := ref.Err(); err != nil {
		return nil, err
	}
	t := &Table{dialectName: dialectName, rules: rules, name: name}
	if err := t.SetFields(fields...); err != nil {
		return nil, err
	}
	return t, nil
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// Schema returns the schema qualifier, or the empty string.
func (t *Table) Schema() string { return t.schema }

// Dialect returns the dialect identifier the table was built for.
func (t *Table) Dialect() string { return t.dialectName }

// Fields returns a copy of the active field set, in declaration order.
func (t *Table) Fields() []string {
	return slices.Clone(t.fields)
}

// SetFields destructively replaces the active field set. Accessors for the
// previous names become invalid and accessors for the new names become
// valid: this is a rename, not a union.
func (t *Table) SetFields(fields ...string) error {
	index := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		if err := sql.Column(f).Err(); err != nil {
			return err
		}
		index[f] = struct{}{}
	}
	t.fields = slices.Clone(fields)
	t.index = index
	return nil
}

// Column returns the column expression for a declared field. The reference
// is unqualified; use C for a table-qualified reference in join conditions.
func (t *Table) Column(name string) (sql.ColumnExpr, error) {
	if _, ok := t.index[name]; !ok {
		return sql.ColumnExpr{}, sqlscribe.NewUnknownFieldError(t.name, name)
	}
	return sql.Column(name), nil
}

// C returns the column expression for a declared field qualified by the
// table name, rendered as "table.column".
func (t *Table) C(name string) (sql.ColumnExpr, error) {
	col, err := t.Column(name)
	if err != nil {
		return sql.ColumnExpr{}, err
	}
	return col.Table(t.name), nil
}

// Ref returns the table reference used as a query source. The FROM clause
// carries the schema qualifier when one is set.
func (t *Table) Ref() sql.TableRef {
	if t.schema != "" {
		return sql.SchemaTable(t.schema, t.name)
	}
	return sql.Table(t.name)
}

// Select returns a fresh query scoped to this table with the given columns
// selected.
func (t *Table) Select(columns ...any) *sql.Selector {
	return sql.WithRules(t.rules).Select(columns...).From(t.Ref())
}

// Where returns a fresh query scoped to this table with the given
// predicate.
func (t *Table) Where(cond *sql.Condition) *sql.Selector {
	return t.Select().Where(cond)
}

// Join returns a fresh query scoped to this table joined against another
// table.
func (t *Table) Join(other *Table, kind sql.JoinType, on *sql.Condition) *sql.Selector {
	return t.Select().Join(other.Ref(), kind, on)
}

// GroupBy returns a fresh query scoped to this table with the given
// grouping expressions.
func (t *Table) GroupBy(columns ...any) *sql.Selector {
	return t.Select().GroupBy(columns...)
}

// As returns a fresh query scoped to this table under the given alias.
func (t *Table) As(alias string) *sql.Selector {
	return t.Select().As(alias)
}
