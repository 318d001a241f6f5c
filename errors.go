package sqlscribe

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for query construction.
var (
	// ErrUnsupportedDialect is returned when a dialect identifier is not
	// present in the registry.
	ErrUnsupportedDialect = errors.New("sqlscribe: unsupported dialect")

	// ErrNoSource is returned when a query is built without a source table.
	ErrNoSource = errors.New("sqlscribe: query has no source table")

	// ErrUnknownField is returned when a table accessor is requested for a
	// field outside the table's active field set.
	ErrUnknownField = errors.New("sqlscribe: unknown field")

	// ErrUnsupportedCapability is returned when a requested clause is not
	// supported by the target dialect.
	ErrUnsupportedCapability = errors.New("sqlscribe: unsupported capability")

	// ErrInvalidJoinType is returned when a join type is outside the
	// enumerated set.
	ErrInvalidJoinType = errors.New("sqlscribe: invalid join type")

	// ErrInvalidIdentifier is returned when a column or table name does not
	// form a valid SQL identifier.
	ErrInvalidIdentifier = errors.New("sqlscribe: invalid identifier")
)

// UnsupportedDialectError represents a registry lookup for a dialect
// identifier that was never registered.
type UnsupportedDialectError struct {
	name string
}

// Error returns the error string.
func (e *UnsupportedDialectError) Error() string {
	return fmt.Sprintf("sqlscribe: unsupported dialect %q", e.name)
}

// Is reports whether the target error matches UnsupportedDialectError.
// This allows errors.Is(err, ErrUnsupportedDialect) to return true.
func (e *UnsupportedDialectError) Is(err error) bool {
	return err == ErrUnsupportedDialect
}

// Name returns the dialect identifier that was looked up.
func (e *UnsupportedDialectError) Name() string {
	return e.name
}

// NewUnsupportedDialectError returns a new UnsupportedDialectError for the
// given dialect identifier.
func NewUnsupportedDialectError(name string) *UnsupportedDialectError {
	return &UnsupportedDialectError{name: name}
}

// IsUnsupportedDialect returns true if the error is an UnsupportedDialectError.
func IsUnsupportedDialect(err error) bool {
	if err == nil {
		return false
	}
	var e *UnsupportedDialectError
	return errors.As(err, &e) || errors.Is(err, ErrUnsupportedDialect)
}

// UnknownFieldError represents an access to a table field that is not part
// of the table's active field set.
type UnknownFieldError struct {
	table string
	field string
}

// Error returns the error string.
func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("sqlscribe: unknown field %q on table %q", e.field, e.table)
}

// Is reports whether the target error matches UnknownFieldError.
func (e *UnknownFieldError) Is(err error) bool {
	return err == ErrUnknownField
}

// Table returns the table name.
func (e *UnknownFieldError) Table() string {
	return e.table
}

// Field returns the field name that was accessed.
func (e *UnknownFieldError) Field() string {
	return e.field
}

// NewUnknownFieldError returns a new UnknownFieldError for the given table
// and field names.
func NewUnknownFieldError(table, field string) *UnknownFieldError {
	return &UnknownFieldError{table: table, field: field}
}

// IsUnknownField returns true if the error is an UnknownFieldError.
func IsUnknownField(err error) bool {
	if err == nil {
		return false
	}
	var e *UnknownFieldError
	return errors.As(err, &e) || errors.Is(err, ErrUnknownField)
}

// UnsupportedCapabilityError represents a clause request that the target
// dialect cannot express.
type UnsupportedCapabilityError struct {
	dialect    string
	capability string
}

// Error returns the error string.
func (e *UnsupportedCapabilityError) Error() string {
	return fmt.Sprintf("sqlscribe: dialect %q does not support %s", e.dialect, e.capability)
}

// Is reports whether the target error matches UnsupportedCapabilityError.
func (e *UnsupportedCapabilityError) Is(err error) bool {
	return err == ErrUnsupportedCapability
}

// Dialect returns the dialect identifier.
func (e *UnsupportedCapabilityError) Dialect() string {
	return e.dialect
}

// Capability returns the name of the unsupported capability.
func (e *UnsupportedCapabilityError) Capability() string {
	return e.capability
}

// NewUnsupportedCapabilityError returns a new UnsupportedCapabilityError for
// the given dialect and capability.
func NewUnsupportedCapabilityError(dialect, capability string) *UnsupportedCapabilityError {
	return &UnsupportedCapabilityError{dialect: dialect, capability: capability}
}

// IsUnsupportedCapability returns true if the error is an UnsupportedCapabilityError.
func IsUnsupportedCapability(err error) bool {
	if err == nil {
		return false
	}
	var e *UnsupportedCapabilityError
	return errors.As(err, &e) || errors.Is(err, ErrUnsupportedCapability)
}

// InvalidJoinTypeError represents a join request with a type outside the
// enumerated set (INNER, LEFT, RIGHT, FULL).
type InvalidJoinTypeError struct {
	kind string
}

// Error returns the error string.
func (e *InvalidJoinTypeError) Error() string {
	return fmt.Sprintf("sqlscribe: invalid join type %q", e.kind)
}

// Is reports whether the target error matches InvalidJoinTypeError.
func (e *InvalidJoinTypeError) Is(err error) bool {
	return err == ErrInvalidJoinType
}

// Kind returns the rejected join type.
func (e *InvalidJoinTypeError) Kind() string {
	return e.kind
}

// NewInvalidJoinTypeError returns a new InvalidJoinTypeError for the given
// join type.
func NewInvalidJoinTypeError(kind string) *InvalidJoinTypeError {
	return &InvalidJoinTypeError{kind: kind}
}

// IsInvalidJoinType returns true if the error is an InvalidJoinTypeError.
func IsInvalidJoinType(err error) bool {
	if err == nil {
		return false
	}
	var e *InvalidJoinTypeError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidJoinType)
}

// InvalidIdentifierError represents a column or table name that does not
// form a valid SQL identifier.
type InvalidIdentifierError struct {
	name string
}

// Error returns the error string.
func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("sqlscribe: invalid identifier %q", e.name)
}

// Is reports whether the target error matches InvalidIdentifierError.
func (e *InvalidIdentifierError) Is(err error) bool {
	return err == ErrInvalidIdentifier
}

// Name returns the rejected identifier.
func (e *InvalidIdentifierError) Name() string {
	return e.name
}

// NewInvalidIdentifierError returns a new InvalidIdentifierError for the
// given name.
func NewInvalidIdentifierError(name string) *InvalidIdentifierError {
	return &InvalidIdentifierError{name: name}
}

// IsInvalidIdentifier returns true if the error is an InvalidIdentifierError.
func IsInvalidIdentifier(err error) bool {
	if err == nil {
		return false
	}
	var e *InvalidIdentifierError
	return errors.As(err, &e) || errors.Is(err, ErrInvalidIdentifier)
}
