package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielenricocahall/sqlscribe"
	"github.com/danielenricocahall/sqlscribe/dialect"
	"github.com/danielenricocahall/sqlscribe/dialect/sql"
	"github.com/danielenricocahall/sqlscribe/schema"
)

func TestNewTable(t *testing.T) {
	t.Parallel()

	t.Run("UnknownDialect", func(t *testing.T) {
		_, err := schema.NewTable("sybase", "employee", "salary")
		assert.True(t, sqlscribe.IsUnsupportedDialect(err))
	})

	t.Run("InvalidTableName", func(t *testing.T) {
		_, err := schema.NewTable(dialect.Postgres, "no spaces", "salary")
		assert.True(t, sqlscribe.IsInvalidIdentifier(err))
	})

	t.Run("InvalidFieldName", func(t *testing.T) {
		_, err := schema.NewTable(dialect.Postgres, "employee", "no spaces")
		assert.True(t, sqlscribe.IsInvalidIdentifier(err))
	})

	t.Run("Accessors", func(t *testing.T) {
		table, err := schema.NewTable(dialect.Postgres, "employee", "name", "salary")
		require.NoError(t, err)
		assert.Equal(t, "employee", table.Name())
		assert.Equal(t, dialect.Postgres, table.Dialect())
		assert.Equal(t, []string{"name", "salary"}, table.Fields())
	})
}

func TestTableColumn(t *testing.T) {
	t.Parallel()

	table, err := schema.NewTable(dialect.Postgres, "employee", "name", "salary")
	require.NoError(t, err)

	t.Run("Declared", func(t *testing.T) {
		salary, err := table.Column("salary")
		require.NoError(t, err)
		assert.Equal(t, "salary", salary.Name())
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := table.Column("bonus")
		assert.True(t, sqlscribe.IsUnknownField(err))
	})

	t.Run("Qualified", func(t *testing.T) {
		id, err := schema.NewTable(dialect.Postgres, "payroll", "id")
		require.NoError(t, err)
		col, err := id.C("id")
		require.NoError(t, err)
		cond := sql.EQ(col, sql.C("employee", "payroll_id"))
		require.NoError(t, cond.Err())
	})
}

func TestSetFields(t *testing.T) {
	t.Parallel()

	table, err := schema.NewTable(dialect.Postgres, "employee", "name", "salary")
	require.NoError(t, err)

	// Replacing the field set is a rename, not a union.
	require.NoError(t, table.SetFields("first_name", "last_name"))

	_, err = table.Column("salary")
	assert.True(t, sqlscribe.IsUnknownField(err))

	_, err = table.Column("first_name")
	assert.NoError(t, err)
	assert.Equal(t, []string{"first_name", "last_name"}, table.Fields())

	t.Run("InvalidKeepsOldSet", func(t *testing.T) {
		require.Error(t, table.SetFields("ok", "not ok"))
		_, err := table.Column("first_name")
		assert.NoError(t, err)
	})
}

func TestTableQueries(t *testing.T) {
	t.Parallel()

	t.Run("SelectWhere", func(t *testing.T) {
		table, err := schema.NewTable(dialect.Postgres, "employee", "salary")
		require.NoError(t, err)
		salary, err := table.Column("salary")
		require.NoError(t, err)

		query, err := table.Select("salary").Where(salary.GT(1000)).Build()
		require.NoError(t, err)
		assert.Equal(t, `SELECT "salary" FROM "employee" WHERE salary > 1000`, query)
	})

	t.Run("FreshSelectorPerCall", func(t *testing.T) {
		table, err := schema.NewTable(dialect.MySQL, "employee", "name", "salary")
		require.NoError(t, err)

		first, err := table.Select("name").Build()
		require.NoError(t, err)
		second, err := table.Select("salary").Build()
		require.NoError(t, err)
		assert.Equal(t, "SELECT `name` FROM `employee`", first)
		assert.Equal(t, "SELECT `salary` FROM `employee`", second)
	})

	t.Run("Join", func(t *testing.T) {
		employee, err := schema.NewTable(dialect.Postgres, "employee", "name", "payroll_id")
		require.NoError(t, err)
		payroll, err := schema.NewTable(dialect.Postgres, "payroll", "id")
		require.NoError(t, err)

		id, err := payroll.C("id")
		require.NoError(t, err)
		payrollID, err := employee.C("payroll_id")
		require.NoError(t, err)

		query, err := employee.Join(payroll, sql.InnerJoin, sql.EQ(id, payrollID)).Build()
		require.NoError(t, err)
		assert.Equal(t,
			`SELECT * FROM "employee" INNER JOIN "payroll" ON payroll.id = employee.payroll_id`,
			query)
	})

	t.Run("GroupByWithFunctions", func(t *testing.T) {
		table, err := schema.NewTable(dialect.Postgres, "employee", "store_location", "salary")
		require.NoError(t, err)
		loc, err := table.Column("store_location")
		require.NoError(t, err)
		salary, err := table.Column("salary")
		require.NoError(t, err)

		query, err := table.Select(sql.Upper(loc), sql.Max(salary)).
			GroupBy(loc).
			Build()
		require.NoError(t, err)
		assert.Equal(t,
			`SELECT UPPER(store_location),MAX(salary) FROM "employee" GROUP BY "store_location"`,
			query)
	})

	t.Run("Alias", func(t *testing.T) {
		table, err := schema.NewTable(dialect.Postgres, "employee", "name")
		require.NoError(t, err)
		query, err := table.As("e").Build()
		require.NoError(t, err)
		assert.Equal(t, `SELECT * FROM "employee" AS "e"`, query)
	})
}
