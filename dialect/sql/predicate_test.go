package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielenricocahall/sqlscribe"
)

func TestComparisons(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		cond *Condition
		want string
	}{
		{EQ("dept", "engineering"), "dept = 'engineering'"},
		{NEQ("dept", "sales"), "dept <> 'sales'"},
		{GT("salary", 1000), "salary > 1000"},
		{GTE("salary", 1000), "salary >= 1000"},
		{LT("age", 65), "age < 65"},
		{LTE("age", 65), "age <= 65"},
		{EQ(C("payroll", "id"), C("employee", "payroll_id")), "payroll.id = employee.payroll_id"},
		{GT(Column("salary"), Column("bonus")), "salary > bonus"},
	} {
		require.NoError(t, tt.cond.Err())
		assert.Equal(t, tt.want, tt.cond.raw())
	}
}

func TestColumnComparisonMethods(t *testing.T) {
	t.Parallel()

	salary := Column("salary")
	assert.Equal(t, "salary > 1000", salary.GT(1000).raw())
	assert.Equal(t, "salary = 1000", salary.EQ(1000).raw())
	assert.Equal(t, "salary <> 1000", salary.NEQ(1000).raw())
	assert.Equal(t, "salary >= 1000", salary.GTE(1000).raw())
	assert.Equal(t, "salary < 1000", salary.LT(1000).raw())
	assert.Equal(t, "salary <= 1000", salary.LTE(1000).raw())
}

func TestBooleanCombination(t *testing.T) {
	t.Parallel()

	a := EQ("a", 1)
	b := EQ("b", 2)
	c := EQ("c", 3)

	t.Run("And", func(t *testing.T) {
		assert.Equal(t, "a = 1 AND b = 2", And(a, b).raw())
	})

	t.Run("Or", func(t *testing.T) {
		assert.Equal(t, "a = 1 OR b = 2", Or(a, b).raw())
	})

	t.Run("Methods", func(t *testing.T) {
		assert.Equal(t, "a = 1 AND b = 2", a.And(b).raw())
		assert.Equal(t, "a = 1 OR b = 2", a.Or(b).raw())
	})

	t.Run("SameOperatorFlat", func(t *testing.T) {
		// AND under AND and OR under OR need no parentheses.
		assert.Equal(t, "a = 1 AND b = 2 AND c = 3", And(And(a, b), c).raw())
		assert.Equal(t, "a = 1 OR b = 2 OR c = 3", Or(Or(a, b), c).raw())
	})

	t.Run("MixedOperatorParenthesized", func(t *testing.T) {
		// OR under AND is ambiguous without parentheses.
		assert.Equal(t, "(a = 1 OR b = 2) AND c = 3", And(Or(a, b), c).raw())
		assert.Equal(t, "a = 1 AND (b = 2 OR c = 3)", And(a, Or(b, c)).raw())
		assert.Equal(t, "(a = 1 AND b = 2) OR c = 3", Or(And(a, b), c).raw())
	})

	t.Run("Immutable", func(t *testing.T) {
		// Combining produces new nodes; the operands are untouched.
		left := EQ("x", 1)
		right := EQ("y", 2)
		combined := left.And(right)
		assert.Equal(t, "x = 1", left.raw())
		assert.Equal(t, "y = 2", right.raw())
		assert.Equal(t, "x = 1 AND y = 2", combined.raw())
	})

	t.Run("DistinctTreesRenderDistinct", func(t *testing.T) {
		// Trees differing in operator or nesting never collide.
		trees := []*Condition{
			And(a, And(b, c)),
			And(Or(a, b), c),
			And(a, Or(b, c)),
			Or(And(a, b), c),
			Or(a, And(b, c)),
			Or(a, Or(b, c)),
		}
		seen := make(map[string]bool)
		for _, tree := range trees {
			s := tree.raw()
			assert.False(t, seen[s], s)
			seen[s] = true
		}
	})
}

func TestConditionErrors(t *testing.T) {
	t.Parallel()

	t.Run("InvalidLeft", func(t *testing.T) {
		err := EQ("no spaces", 1).Err()
		assert.True(t, sqlscribe.IsInvalidIdentifier(err))
	})

	t.Run("UnsupportedRight", func(t *testing.T) {
		assert.Error(t, EQ("a", struct{}{}).Err())
	})

	t.Run("NilOperand", func(t *testing.T) {
		assert.Error(t, And(EQ("a", 1), nil).Err())
	})

	t.Run("Propagated", func(t *testing.T) {
		bad := EQ("no spaces", 1)
		assert.Error(t, And(bad, EQ("b", 2)).Err())
		assert.Error(t, Or(EQ("b", 2), bad).Err())
	})
}
