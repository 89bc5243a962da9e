// Package models holds the data types shared by the generation pipeline.
package models

// NativeType is the normalized database type of a column.
type NativeType string

const (
	NativeBoolean   NativeType = "boolean"
	NativeJSON      NativeType = "json"
	NativeArray     NativeType = "array"
	NativeObject    NativeType = "object"
	NativeString    NativeType = "string"
	NativeInteger   NativeType = "integer"
	NativeBigint    NativeType = "bigint"
	NativeSmallint  NativeType = "smallint"
	NativeTimestamp NativeType = "timestamp"
	NativeDecimal   NativeType = "decimal"
	NativeFloat     NativeType = "float"
	NativeReal      NativeType = "real"
	NativeDatetime  NativeType = "datetime"
	NativeDate      NativeType = "date"
	NativeTime      NativeType = "time"
	NativeText      NativeType = "text"
	NativeBlob      NativeType = "blob"
	NativeOther     NativeType = "other"
)

// ColumnDescriptor describes one table column as reported by introspection.
// Descriptors are produced once per run and never modified.
type ColumnDescriptor struct {
	Name       string
	NativeType NativeType
	RawType    string  // Type name as reported by the driver, e.g. "VARCHAR(255)"
	Nullable   bool
	Default    *string // nil when the column has no default
}

// HasDefault reports whether the column declares a default value.
func (c ColumnDescriptor) HasDefault() bool {
	return c.Default != nil
}

// DefaultValue returns the declared default or "" when there is none.
func (c ColumnDescriptor) DefaultValue() string {
	if c.Default == nil {
		return ""
	}
	return *c.Default
}

// ConnectionParams are the parameters needed to reach a data store.
type ConnectionParams struct {
	Driver   string
	Host     string
	Port     int
	User     string
	Password string
	Database string
	Prefix   string // Table prefix prepended to every table name
	SSLMode  string
}
