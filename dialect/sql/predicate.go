package sql

import "errors"

// errNilCondition is recorded when a nil condition is combined with And/Or.
var errNilCondition = errors.New("sqlscribe: cannot combine a nil condition")

// Comparison and boolean operators recognized by the condition tree.
const (
	opEQ  = "="
	opNEQ = "<>"
	opGT  = ">"
	opGTE = ">="
	opLT  = "<"
	opLTE = "<="
	opAnd = "AND"
	opOr  = "OR"
)

// Condition is a node in a predicate tree: either a leaf comparison between
// two expressions, or a boolean combination of two sub-conditions.
//
// Conditions are immutable once constructed. Combining conditions with And
// or Or always produces a new node and never mutates the operands. The tree
// renders with strict left-to-right nesting as constructed; parentheses are
// added only where a combination nests inside a combination of a different
// operator, since AND binds tighter than OR in standard SQL.
type Condition struct {
	op          string
	left, right Expression // comparison operands
	lhs, rhs    *Condition // combination operands
	err         error
}

func compare(left any, op string, right any) *Condition {
	c := &Condition{op: op}
	c.left, c.err = toExpr(left)
	var err error
	c.right, err = toOperand(right)
	if c.err == nil {
		c.err = err
	}
	return c
}

// EQ returns the condition left = right. The left side accepts an
// expression or a bare column name; the right side accepts an expression or
// a literal value.
func EQ(left, right any) *Condition { return compare(left, opEQ, right) }

// NEQ returns the condition left <> right.
func NEQ(left, right any) *Condition { return compare(left, opNEQ, right) }

// GT returns the condition left > right.
func GT(left, right any) *Condition { return compare(left, opGT, right) }

// GTE returns the condition left >= right.
func GTE(left, right any) *Condition { return compare(left, opGTE, right) }

// LT returns the condition left < right.
func LT(left, right any) *Condition { return compare(left, opLT, right) }

// LTE returns the condition left <= right.
func LTE(left, right any) *Condition { return compare(left, opLTE, right) }

// And returns a new condition combining a and b with AND.
func And(a, b *Condition) *Condition {
	return combine(a, opAnd, b)
}

// Or returns a new condition combining a and b with OR.
func Or(a, b *Condition) *Condition {
	return combine(a, opOr, b)
}

// And returns a new condition combining c and other with AND. Neither
// operand is mutated.
func (c *Condition) And(other *Condition) *Condition {
	return And(c, other)
}

// Or returns a new condition combining c and other with OR. Neither operand
// is mutated.
func (c *Condition) Or(other *Condition) *Condition {
	return Or(c, other)
}

func combine(a *Condition, op string, b *Condition) *Condition {
	c := &Condition{op: op, lhs: a, rhs: b}
	switch {
	case a == nil || b == nil:
		c.err = errNilCondition
	case a.err != nil:
		c.err = a.err
	case b.err != nil:
		c.err = b.err
	}
	return c
}

// Err reports a construction error recorded anywhere in the tree, if any.
func (c *Condition) Err() error { return c.err }

func (c *Condition) isCombination() bool {
	return c.op == opAnd || c.op == opOr
}

// raw renders the condition tree without identifier quoting. A combination
// child is parenthesized only when its operator differs from its parent's.
func (c *Condition) raw() string {
	if !c.isCombination() {
		return c.left.raw() + " " + c.op + " " + c.right.raw()
	}
	return c.child(c.lhs) + " " + c.op + " " + c.child(c.rhs)
}

func (c *Condition) child(sub *Condition) string {
	s := sub.raw()
	if sub.isCombination() && sub.op != c.op {
		return "(" + s + ")"
	}
	return s
}
