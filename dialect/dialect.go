// Package dialect provides database dialect identifiers, per-dialect
// rendering rules, and the process-wide dialect registry.
//
// Each dialect is identified by a constant string:
//
//	dialect.MySQL    = "mysql"
//	dialect.Postgres = "postgres"
//	dialect.SQLite   = "sqlite"
//	dialect.Oracle   = "oracle"
//
// A dialect contributes a Rules record: the identifier quote character, the
// join-keyword spelling table, and capability flags. The renderer in
// dialect/sql consumes only the Rules record, never a concrete dialect
// type, so new dialects are added by registration alone:
//
//	dialect.Register(dialect.Rules{
//	    Name:           "mariadb",
//	    Quote:          "`",
//	    Joins:          dialect.StandardJoins(),
//	    SupportsOffset: true,
//	})
//
// The registry is initialize-once, read-many: register dialects during
// process startup, before concurrent readers exist.
package dialect

import (
	"maps"
	"os"
	"slices"
	"sync"

	"github.com/danielenricocahall/sqlscribe"
)

// Supported dialect identifiers. MySQL quotes identifiers with backticks;
// the others use double quotes.
const (
	MySQL    = "mysql"
	Postgres = "postgres"
	SQLite   = "sqlite"
	Oracle   = "oracle"
)

// EnvDialect is the environment variable consulted for the default dialect
// when none is given explicitly.
const EnvDialect = "SQLSCRIBE_DIALECT"

// Rules is the capability record for a dialect. It is consulted only by the
// renderer; sqlscribe itself carries no per-dialect branching beyond it.
type Rules struct {
	// Name is the dialect identifier used for registration and lookup.
	Name string

	// Quote is the identifier quote character, applied to each bare
	// identifier (table, schema, column) independently.
	Quote string

	// Joins maps a join type (e.g. "INNER") to its keyword spelling
	// (e.g. "INNER JOIN"). No current dialect diverges from the standard
	// spelling, but the mapping allows it.
	Joins map[string]string

	// SupportsOffset reports whether the dialect can express an OFFSET
	// clause. Requesting an offset on a dialect without support fails with
	// a capability error instead of emitting invalid SQL.
	SupportsOffset bool
}

// StandardJoins returns the standard join-keyword spelling table.
func StandardJoins() map[string]string {
	return map[string]string{
		"INNER": "INNER JOIN",
		"LEFT":  "LEFT JOIN",
		"RIGHT": "RIGHT JOIN",
		"FULL":  "FULL JOIN",
	}
}

var (
	mu       sync.RWMutex
	registry = make(map[string]Rules)
)

// Register adds a dialect to the registry. Registering a name twice
// overwrites the previous entry; registration is expected to happen during
// initialization, before concurrent readers exist.
func Register(r Rules) {
	mu.Lock()
	defer mu.Unlock()
	registry[r.Name] = r
}

// Lookup returns the rules registered for the given dialect identifier.
// Unknown identifiers fail with sqlscribe.UnsupportedDialectError; there is
// no silent default.
func Lookup(name string) (Rules, error) {
	mu.RLock()
	defer mu.RUnlock()
	r, ok := registry[name]
	if !ok {
		return Rules{}, sqlscribe.NewUnsupportedDialectError(name)
	}
	r.Joins = maps.Clone(r.Joins)
	return r, nil
}

// List returns the registered dialect identifiers in sorted order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	return slices.Sorted(maps.Keys(registry))
}

// FromEnv returns the dialect identifier configured through the
// SQLSCRIBE_DIALECT environment variable, or the empty string when unset.
func FromEnv() string {
	return os.Getenv(EnvDialect)
}

func init() {
	Register(Rules{Name: MySQL, Quote: "`", Joins: StandardJoins(), SupportsOffset: true})
	Register(Rules{Name: Postgres, Quote: `"`, Joins: StandardJoins(), SupportsOffset: true})
	Register(Rules{Name: SQLite, Quote: `"`, Joins: StandardJoins(), SupportsOffset: true})
	// Classic Oracle has no OFFSET clause.
	Register(Rules{Name: Oracle, Quote: `"`, Joins: StandardJoins(), SupportsOffset: false})
}
