package schema

import (
	"fmt"
	"maps"
	"slices"

	"github.com/danielenricocahall/sqlscribe/dialect"
	"github.com/danielenricocahall/sqlscribe/dialect/sql"
)

// Schema groups several tables under one namespace. Tables added to a
// schema are schema-qualified in their FROM clause and looked up by name.
type Schema struct {
	name        string
	dialectName string
	tables      map[string]*Table
}

// Option configures a Schema.
type Option func(*Schema)

// WithDialect sets the dialect used for tables the schema creates. Without
// it, the SQLSCRIBE_DIALECT environment variable is consulted.
func WithDialect(name string) Option {
	return func(s *Schema) {
		s.dialectName = name
	}
}

// New returns a schema namespace with the given name. The dialect comes
// from WithDialect or, failing that, from the environment; an unknown or
// missing dialect fails here.
func New(name string, opts ...Option) (*Schema, error) {
	ref := sql.Table(name)
	if err := ref.Err(); err != nil {
		return nil, err
	}
	s := &Schema{name: name, tables: make(map[string]*Table)}
	for _, opt := range opts {
		opt(s)
	}
	if s.dialectName == "" {
		s.dialectName = dialect.FromEnv()
	}
	if _, err := dialect.Lookup(s.dialectName); err != nil {
		return nil, err
	}
	return s, nil
}

// Name returns the schema name.
func (s *Schema) Name() string { return s.name }

// Dialect returns the dialect identifier used for the schema's tables.
func (s *Schema) Dialect() string { return s.dialectName }

// NewTable creates a table in the schema's dialect, qualifies it with the
// schema name, and registers it in the namespace.
func (s *Schema) NewTable(name string, fields ...string) (*Table, error) {
	t, err := NewTable(s.dialectName, name, fields...)
	if err != nil {
		return nil, err
	}
	t.schema = s.name
	s.tables[name] = t
	return t, nil
}

// Add registers an existing table in the namespace, qualifying it with the
// schema name. The table keeps its own dialect.
func (s *Schema) Add(t *Table) {
	t.schema = s.name
	s.tables[t.name] = t
}

// Table returns the registered table with the given name.
func (s *Schema) Table(name string) (*Table, error) {
	t, ok := s.tables[name]
	if !ok {
		return nil, fmt.Errorf("sqlscribe: unknown table %q in schema %q", name, s.name)
	}
	return t, nil
}

// Tables returns the registered table names in sorted order.
func (s *Schema) Tables() []string {
	return slices.Sorted(maps.Keys(s.tables))
}
