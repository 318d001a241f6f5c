package sql

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/danielenricocahall/sqlscribe"
	"github.com/danielenricocahall/sqlscribe/dialect"
)

// JoinType is one of the enumerated join kinds. Values outside the set are
// rejected with an invalid-join-type error.
type JoinType string

// The enumerated join kinds.
const (
	InnerJoin JoinType = "INNER"
	LeftJoin  JoinType = "LEFT"
	RightJoin JoinType = "RIGHT"
	FullJoin  JoinType = "FULL"
)

// TableRef identifies a source table, optionally qualified by a schema.
// It renders as schema.name with each identifier quoted independently.
type TableRef struct {
	schema string
	name   string
	err    error
}

// Table returns a reference to the given table.
func Table(name string) TableRef {
	t := TableRef{name: name}
	if !isValidIdentifier(name) {
		t.err = sqlscribe.NewInvalidIdentifierError(name)
	}
	return t
}

// SchemaTable returns a reference to a table qualified by a schema name.
func SchemaTable(schema, name string) TableRef {
	t := Table(name)
	if t.err == nil && !isValidIdentifier(schema) {
		t.err = sqlscribe.NewInvalidIdentifierError(schema)
	}
	t.schema = schema
	return t
}

// Name returns the table name without the schema qualifier.
func (t TableRef) Name() string { return t.name }

// Schema returns the schema qualifier, or the empty string.
func (t TableRef) Schema() string { return t.schema }

// Err reports a construction error recorded on the reference, if any.
func (t TableRef) Err() error { return t.err }

// C returns a column reference qualified by this table's name. The FROM
// clause carries the schema qualifier; column references do not.
func (t TableRef) C(column string) ColumnExpr {
	return C(t.name, column)
}

func (t TableRef) ident(quote string) string {
	s := quoteIdent(quote, t.name)
	if t.schema != "" {
		s = quoteIdent(quote, t.schema) + "." + s
	}
	return s
}

// DialectBuilder seeds query builders with the rendering rules of one
// dialect.
type DialectBuilder struct {
	rules dialect.Rules
}

// Dialect looks up the given dialect identifier in the registry and returns
// a builder carrying its rules. Unknown identifiers fail with the
// unsupported-dialect error; a partially-built renderer is never returned.
func Dialect(name string) (*DialectBuilder, error) {
	rules, err := dialect.Lookup(name)
	if err != nil {
		return nil, err
	}
	return &DialectBuilder{rules: rules}, nil
}

// WithRules returns a builder carrying the given rules directly, bypassing
// the registry. Used by collaborators that resolved the dialect themselves.
func WithRules(rules dialect.Rules) *DialectBuilder {
	return &DialectBuilder{rules: rules}
}

// Rules returns the dialect rules carried by the builder.
func (d *DialectBuilder) Rules() dialect.Rules { return d.rules }

// Select returns a new Selector with the given columns. Zero columns
// renders as SELECT *.
func (d *DialectBuilder) Select(columns ...any) *Selector {
	s := &Selector{rules: d.rules}
	return s.Select(columns...)
}

// Selector builds a SELECT statement: selected expressions, a source table,
// join clauses, a predicate tree, grouping and pagination. All fluent
// methods return the same Selector for chaining; Build renders the
// accumulated state.
//
// Contract violations (invalid identifiers, unknown join types, gated
// capabilities) are recorded at the offending call and reported by Build;
// the first recorded error wins.
type Selector struct {
	rules     dialect.Rules
	columns   []Expression
	source    TableRef
	hasSource bool
	alias     string
	joins     []join
	where     *Condition
	groupBy   []Expression
	limit     int
	hasLimit  bool
	offset    int
	hasOffset bool
	err       error
}

type join struct {
	kind  JoinType
	table TableRef
	on    *Condition
}

func (s *Selector) record(err error) {
	if s.err == nil && err != nil {
		s.err = err
	}
}

// Select appends columns to the select list, preserving order. Columns
// accept expressions or bare names; bare names are normalized to column
// references once, here.
func (s *Selector) Select(columns ...any) *Selector {
	for _, col := range columns {
		expr, err := toExpr(col)
		s.record(err)
		if expr != nil {
			s.columns = append(s.columns, expr)
		}
	}
	return s
}

// From sets the source table, accepting a TableRef or a bare table name.
// Calling From twice overwrites the previous source; the last write wins.
func (s *Selector) From(table any) *Selector {
	switch t := table.(type) {
	case TableRef:
		s.record(t.err)
		s.source = t
	case string:
		ref := Table(t)
		s.record(ref.err)
		s.source = ref
	default:
		s.record(fmt.Errorf("sqlscribe: cannot use %T as a source table", table))
		return s
	}
	s.hasSource = true
	return s
}

// Join appends a join clause against the given table. The join type is
// validated against the enumerated set; unrecognized types record an
// invalid-join-type error.
func (s *Selector) Join(table any, kind JoinType, on *Condition) *Selector {
	switch kind {
	case InnerJoin, LeftJoin, RightJoin, FullJoin:
	default:
		s.record(sqlscribe.NewInvalidJoinTypeError(string(kind)))
		return s
	}
	var ref TableRef
	switch t := table.(type) {
	case TableRef:
		ref = t
	case string:
		ref = Table(t)
	default:
		s.record(fmt.Errorf("sqlscribe: cannot join %T", table))
		return s
	}
	s.record(ref.err)
	if on == nil {
		s.record(errNilCondition)
		return s
	}
	s.record(on.Err())
	s.joins = append(s.joins, join{kind: kind, table: ref, on: on})
	return s
}

// Where sets the predicate. Calling Where again replaces the previous
// predicate rather than combining; callers combine conditions explicitly
// with And/Or before passing them.
func (s *Selector) Where(cond *Condition) *Selector {
	if cond == nil {
		s.record(errNilCondition)
		return s
	}
	s.record(cond.Err())
	s.where = cond
	return s
}

// GroupBy appends grouping expressions, preserving call order. Duplicates
// are kept as given.
func (s *Selector) GroupBy(columns ...any) *Selector {
	for _, col := range columns {
		expr, err := toExpr(col)
		s.record(err)
		if expr != nil {
			s.groupBy = append(s.groupBy, expr)
		}
	}
	return s
}

// As sets the selector's own alias, rendered after the source table.
func (s *Selector) As(alias string) *Selector {
	if !isValidIdentifier(alias) {
		s.record(sqlscribe.NewInvalidIdentifierError(alias))
		return s
	}
	s.alias = alias
	return s
}

// Limit sets the maximum number of rows to return.
func (s *Selector) Limit(n int) *Selector {
	s.limit = n
	s.hasLimit = true
	return s
}

// Offset sets the number of rows to skip. Dialects without OFFSET support
// record an unsupported-capability error instead of emitting invalid SQL.
func (s *Selector) Offset(n int) *Selector {
	if !s.rules.SupportsOffset {
		s.record(sqlscribe.NewUnsupportedCapabilityError(s.rules.Name, "OFFSET"))
		return s
	}
	s.offset = n
	s.hasOffset = true
	return s
}

// Err reports the first contract violation recorded on the selector, if
// any, without building.
func (s *Selector) Err() error { return s.err }

// Build renders the query as a single-line SQL string. It fails when no
// source table is set or when an earlier fluent call recorded an error.
// Build is idempotent and does not invalidate the selector: without
// intervening mutation, repeated calls return byte-identical strings.
func (s *Selector) Build() (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if !s.hasSource {
		return "", sqlscribe.ErrNoSource
	}
	return render(s), nil
}

// render maps the completed query model and its dialect rules to SQL text.
// It is pure and deterministic: the same model and rules always produce the
// same string.
func render(s *Selector) string {
	quote := s.rules.Quote
	var b strings.Builder
	b.WriteString("SELECT ")
	if len(s.columns) == 0 {
		b.WriteString("*")
	} else {
		for i, col := range s.columns {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(col.ident(quote))
		}
	}
	b.WriteString(" FROM ")
	b.WriteString(s.source.ident(quote))
	if s.alias != "" {
		b.WriteString(" AS ")
		b.WriteString(quoteIdent(quote, s.alias))
	}
	for _, j := range s.joins {
		keyword := s.rules.Joins[string(j.kind)]
		if keyword == "" {
			// Dialects registered without a spelling table fall back to
			// the standard spelling.
			keyword = string(j.kind) + " JOIN"
		}
		b.WriteString(" ")
		b.WriteString(keyword)
		b.WriteString(" ")
		b.WriteString(j.table.ident(quote))
		b.WriteString(" ON ")
		b.WriteString(j.on.raw())
	}
	if s.where != nil {
		b.WriteString(" WHERE ")
		b.WriteString(s.where.raw())
	}
	if len(s.groupBy) > 0 {
		b.WriteString(" GROUP BY ")
		for i, col := range s.groupBy {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(col.ident(quote))
		}
	}
	if s.hasLimit {
		b.WriteString(" LIMIT ")
		b.WriteString(strconv.Itoa(s.limit))
	}
	if s.hasOffset {
		b.WriteString(" OFFSET ")
		b.WriteString(strconv.Itoa(s.offset))
	}
	return b.String()
}
