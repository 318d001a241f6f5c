// Package sqlscribe provides a fluent, composable builder for SQL SELECT
// statements with per-dialect rendering.
//
// The library is a pure transformation from a method-call sequence to a SQL
// string: it never parses, plans, or executes SQL. Queries are assembled
// from an expression model (columns, literals, function calls), a condition
// algebra (comparisons combined with AND/OR), and a fluent query builder,
// then rendered with the identifier-quoting and join-spelling rules of a
// registered dialect.
//
// # Packages
//
//   - dialect: dialect identifiers, capability rules, and the registry
//   - dialect/sql: expression model, condition algebra, and query builder
//   - schema: table facade and schema-level table grouping
//
// # Example
//
//	b, err := sql.Dialect(dialect.MySQL)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	query, err := b.Select("c1", "c2").From("t").Build()
//	// SELECT `c1`,`c2` FROM `t`
//
// This root package holds the error taxonomy shared by all sub-packages.
// Every error is a construction-time error: operations are pure and
// deterministic, so there is no notion of retry or partial success.
package sqlscribe
