// Package sql provides the SQL SELECT construction primitives: the
// expression model, the condition algebra, the function catalog, and the
// dialect-aware query builder.
//
// # Building queries
//
// A builder is obtained from a registered dialect and drives a fluent
// Selector:
//
//	b, err := sql.Dialect(dialect.MySQL)
//	// ...
//	query, err := b.Select("c1", "c2").From("t").Build()
//	// SELECT `c1`,`c2` FROM `t`
//
// # Expressions
//
// Columns, literals and function calls compose freely:
//
//	sql.Column("salary")                // salary
//	sql.C("employee", "payroll_id")     // employee.payroll_id
//	sql.Literal("engineering")          // 'engineering'
//	sql.Upper("store_location")         // UPPER(store_location)
//	sql.Max("salary").As("top_salary")  // MAX(salary) AS `top_salary`
//
// Anywhere an expression is expected, a bare string is accepted and
// normalized to a column reference once, at the boundary.
//
// # Conditions
//
// Comparisons are built with explicit constructors (Go has no operator
// overloading) and combined with And/Or; the combination never mutates its
// operands:
//
//	sql.GT("salary", 1000)
//	sql.Column("salary").GT(1000)
//	sql.EQ("dept", "eng").And(sql.LT("age", 65))
//
// Parentheses appear on render only where a combination nests inside a
// combination of the other operator:
//
//	sql.And(sql.Or(a, b), c)  // (a OR b) AND c
//	sql.And(sql.And(a, b), c) // a AND b AND c
//
// # Joins and grouping
//
//	employee := sql.Table("employee")
//	payroll := sql.Table("payroll")
//	b.Select("*").
//	    From(employee).
//	    Join(payroll, sql.InnerJoin, sql.EQ(payroll.C("id"), employee.C("payroll_id"))).
//	    GroupBy("department").
//	    Build()
//
// # Errors
//
// Contract violations are recorded at the offending fluent call and
// reported by Build; Build itself fails only for a missing source table.
// The library renders text deterministically and never executes it.
package sql
