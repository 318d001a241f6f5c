package sql

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/danielenricocahall/sqlscribe"
)

// validIdentifierRe validates bare SQL identifiers (column and table names).
var validIdentifierRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// callFragmentRe matches pre-rendered function-call fragments such as
// "MAX(salary)", which pass through select and group-by lists unquoted.
var callFragmentRe = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*\([^()]*\)$`)

// isValidIdentifier checks if the string is a valid SQL identifier.
func isValidIdentifier(s string) bool {
	return s != "" && len(s) <= 128 && validIdentifierRe.MatchString(s)
}

// escapeStringValue escapes a string value for use in a SQL string literal.
// It escapes both single quotes (by doubling) and backslashes (for MySQL
// compatibility).
func escapeStringValue(s string) string {
	if !strings.ContainsAny(s, `'\`) {
		return s
	}
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "'", "''")
	return s
}

// quoteIdent wraps a bare identifier in the dialect's quote character.
func quoteIdent(quote, name string) string {
	return quote + name + quote
}

// Expression is a composable query fragment: a column reference, literal,
// function call, or raw fragment. An Expression renders to exactly one SQL
// fragment, independent of dialect except for identifier quoting.
//
// Expressions render in two forms. The bare form is used inside predicates
// and function arguments; the identifier form, used in SELECT, FROM and
// GROUP BY lists, additionally quotes bare identifiers with the dialect's
// quote character.
type Expression interface {
	// Err reports a construction error recorded on the expression, if any.
	Err() error

	raw() string
	ident(quote string) string
}

// ColumnExpr is a reference to a column, optionally qualified by a table
// name and optionally aliased.
type ColumnExpr struct {
	qualifier string
	name      string
	alias     string
	err       error
}

// Column returns a column reference for the given name. Invalid identifiers
// record an error that surfaces when the expression is used in a query.
func Column(name string) ColumnExpr {
	c := ColumnExpr{name: name}
	if !isValidIdentifier(name) {
		c.err = sqlscribe.NewInvalidIdentifierError(name)
	}
	return c
}

// C returns a column reference qualified by a table name, rendered as
// "qualifier.name".
func C(qualifier, name string) ColumnExpr {
	return Column(name).Table(qualifier)
}

// Table returns a copy of the column reference qualified by the given table
// name.
func (c ColumnExpr) Table(qualifier string) ColumnExpr {
	if c.err == nil && !isValidIdentifier(qualifier) {
		c.err = sqlscribe.NewInvalidIdentifierError(qualifier)
	}
	c.qualifier = qualifier
	return c
}

// As returns a copy of the column reference with the given alias. The
// receiver is not mutated.
func (c ColumnExpr) As(alias string) ColumnExpr {
	if c.err == nil && !isValidIdentifier(alias) {
		c.err = sqlscribe.NewInvalidIdentifierError(alias)
	}
	c.alias = alias
	return c
}

// Name returns the column name without qualifier or alias.
func (c ColumnExpr) Name() string { return c.name }

// Err reports a construction error recorded on the expression, if any.
func (c ColumnExpr) Err() error { return c.err }

func (c ColumnExpr) raw() string {
	if c.qualifier != "" {
		return c.qualifier + "." + c.name
	}
	return c.name
}

func (c ColumnExpr) ident(quote string) string {
	s := quoteIdent(quote, c.name)
	if c.qualifier != "" {
		s = quoteIdent(quote, c.qualifier) + "." + s
	}
	if c.alias != "" {
		s += " AS " + quoteIdent(quote, c.alias)
	}
	return s
}

// EQ returns the condition c = v.
func (c ColumnExpr) EQ(v any) *Condition { return EQ(c, v) }

// NEQ returns the condition c <> v.
func (c ColumnExpr) NEQ(v any) *Condition { return NEQ(c, v) }

// GT returns the condition c > v.
func (c ColumnExpr) GT(v any) *Condition { return GT(c, v) }

// GTE returns the condition c >= v.
func (c ColumnExpr) GTE(v any) *Condition { return GTE(c, v) }

// LT returns the condition c < v.
func (c ColumnExpr) LT(v any) *Condition { return LT(c, v) }

// LTE returns the condition c <= v.
func (c ColumnExpr) LTE(v any) *Condition { return LTE(c, v) }

// LiteralExpr is a literal value rendered inline: strings are single-quoted
// with escaping, numbers render as-is.
type LiteralExpr struct {
	value any
	err   error
}

// Literal returns a literal expression for the given value. Supported types
// are strings, the common numeric types, bool, time.Time, uuid.UUID and
// decimal.Decimal; nil renders as NULL.
func Literal(value any) LiteralExpr {
	switch value.(type) {
	case nil, string, int, int32, int64, uint, uint64, float32, float64, bool,
		time.Time, uuid.UUID, decimal.Decimal:
		return LiteralExpr{value: value}
	default:
		return LiteralExpr{
			value: value,
			err:   fmt.Errorf("sqlscribe: cannot create a literal from %T", value),
		}
	}
}

// Err reports a construction error recorded on the expression, if any.
func (l LiteralExpr) Err() error { return l.err }

func (l LiteralExpr) raw() string {
	switch v := l.value.(type) {
	case nil:
		return "NULL"
	case string:
		return "'" + escapeStringValue(v) + "'"
	case int:
		return strconv.Itoa(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint:
		return strconv.FormatUint(uint64(v), 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "TRUE"
		}
		return "FALSE"
	case time.Time:
		return "'" + v.Format("2006-01-02 15:04:05") + "'"
	case uuid.UUID:
		return "'" + v.String() + "'"
	case decimal.Decimal:
		return v.String()
	default:
		return ""
	}
}

// Literals are never identifiers, so quoting does not apply.
func (l LiteralExpr) ident(string) string { return l.raw() }

// FuncExpr is a function call wrapping one or more argument expressions,
// rendered dialect-independently as NAME(args).
type FuncExpr struct {
	name  string
	args  []Expression
	alias string
	err   error
}

// Call returns a function-call expression for the given function name. The
// name is uppercased; arguments accept expressions or bare column names.
func Call(name string, args ...any) FuncExpr {
	f := FuncExpr{name: strings.ToUpper(name)}
	if !isValidIdentifier(name) {
		f.err = sqlscribe.NewInvalidIdentifierError(name)
	}
	for _, arg := range args {
		expr, err := toExpr(arg)
		if f.err == nil && err != nil {
			f.err = err
		}
		f.args = append(f.args, expr)
	}
	return f
}

// As returns a copy of the function call with the given alias. The receiver
// is not mutated.
func (f FuncExpr) As(alias string) FuncExpr {
	if f.err == nil && !isValidIdentifier(alias) {
		f.err = sqlscribe.NewInvalidIdentifierError(alias)
	}
	f.alias = alias
	return f
}

// Name returns the uppercased function name.
func (f FuncExpr) Name() string { return f.name }

// Err reports a construction error recorded on the expression, if any.
func (f FuncExpr) Err() error { return f.err }

func (f FuncExpr) raw() string {
	args := make([]string, len(f.args))
	for i, a := range f.args {
		args[i] = a.raw()
	}
	return f.name + "(" + strings.Join(args, ",") + ")"
}

// Function calls are never quoted; only an alias is.
func (f FuncExpr) ident(quote string) string {
	s := f.raw()
	if f.alias != "" {
		s += " AS " + quoteIdent(quote, f.alias)
	}
	return s
}

// RawExpr is a fragment rendered verbatim in every position, with no
// quoting. It covers "*" and pre-rendered fragments passed as strings.
type RawExpr struct {
	fragment string
}

// Raw returns an expression rendered exactly as given.
func Raw(fragment string) RawExpr {
	return RawExpr{fragment: fragment}
}

// Err reports a construction error recorded on the expression, if any.
func (r RawExpr) Err() error { return nil }

func (r RawExpr) raw() string         { return r.fragment }
func (r RawExpr) ident(string) string { return r.fragment }

// Equal reports whether two expressions are structurally equal. Equality is
// structural, not identity-based: two independently constructed references
// to the same column compare equal.
func Equal(a, b Expression) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.raw() == b.raw() && a.ident(`"`) == b.ident(`"`)
}

// toExpr normalizes a value in expression position. Expressions pass
// through; a bare string becomes a column reference (or a raw fragment for
// "*" and function-call spellings). Normalization happens exactly once, at
// the API boundary; the algebra itself never duck-types.
func toExpr(v any) (Expression, error) {
	switch v := v.(type) {
	case Expression:
		return v, v.Err()
	case string:
		switch {
		case v == "*":
			return Raw(v), nil
		case callFragmentRe.MatchString(v):
			return Raw(v), nil
		case strings.Contains(v, "."):
			qualifier, name, _ := strings.Cut(v, ".")
			c := C(qualifier, name)
			return c, c.Err()
		default:
			c := Column(v)
			return c, c.Err()
		}
	default:
		return nil, sqlscribe.NewInvalidIdentifierError(fmt.Sprint(v))
	}
}

// toOperand normalizes a value on the right-hand side of a comparison.
// Expressions pass through; anything else becomes a literal, so a bare
// string here is a string value, not a column name.
func toOperand(v any) (Expression, error) {
	if expr, ok := v.(Expression); ok {
		return expr, expr.Err()
	}
	l := Literal(v)
	return l, l.Err()
}
