// Package schema implements table introspection on top of gorm's migrator.
package schema

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/example/crudgen/internal/core/naming"
	"github.com/example/crudgen/internal/db"
	"github.com/example/crudgen/internal/models"
	"github.com/example/crudgen/internal/ports/secondary"
)

// Introspector implements secondary.SchemaIntrospector using gorm.
// Each call opens its own connection and closes it before returning.
type Introspector struct {
	logger *zap.Logger
}

// NewIntrospector creates a new gorm-backed introspector.
func NewIntrospector(logger *zap.Logger) *Introspector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Introspector{logger: logger}
}

// ListColumns returns the columns of table in ordinal order.
func (i *Introspector) ListColumns(ctx context.Context, table string, conn models.ConnectionParams) ([]models.ColumnDescriptor, error) {
	conn, table = qualify(conn, table)

	gdb, err := db.Open(ctx, conn)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := db.Close(gdb); err != nil {
			i.logger.Warn("failed to close connection", zap.Error(err))
		}
	}()

	migrator := gdb.Migrator()
	if !migrator.HasTable(table) {
		return nil, fmt.Errorf("%w: %s", models.ErrTableNotFound, table)
	}

	columnTypes, err := migrator.ColumnTypes(table)
	if err != nil {
		return nil, fmt.Errorf("failed to read columns of %s: %w", table, err)
	}

	columns := make([]models.ColumnDescriptor, 0, len(columnTypes))
	for _, ct := range columnTypes {
		columns = append(columns, describe(ct))
	}

	i.logger.Debug("table introspected",
		zap.String("driver", conn.Driver),
		zap.String("table", table),
		zap.Int("columns", len(columns)),
	)
	return columns, nil
}

// Ping verifies that the data store described by conn answers.
func (i *Introspector) Ping(ctx context.Context, conn models.ConnectionParams) error {
	gdb, err := db.Open(ctx, conn)
	if err != nil {
		return err
	}
	return db.Close(gdb)
}

// qualify applies the table prefix and splits a "schema.table" identifier.
// For mysql the schema selects the database; postgres keeps the qualified
// name so the migrator resolves it against that schema; sqlite ignores it.
func qualify(conn models.ConnectionParams, identifier string) (models.ConnectionParams, string) {
	schemaName, table := naming.SplitTableIdentifier(identifier)
	table = conn.Prefix + table

	if schemaName == "" {
		return conn, table
	}

	switch strings.ToLower(conn.Driver) {
	case db.DriverMySQL, db.DriverMariaDB:
		conn.Database = schemaName
		return conn, table
	case db.DriverPostgres, db.DriverPgsql:
		return conn, schemaName + "." + table
	default:
		return conn, table
	}
}

// describe converts a gorm column type into a ColumnDescriptor.
func describe(ct gorm.ColumnType) models.ColumnDescriptor {
	raw := ct.DatabaseTypeName()
	if full, ok := ct.ColumnType(); ok && full != "" {
		raw = full
	}

	col := models.ColumnDescriptor{
		Name:       ct.Name(),
		NativeType: NativeTypeOf(raw),
		RawType:    raw,
		Nullable:   true,
	}
	if nullable, ok := ct.Nullable(); ok {
		col.Nullable = nullable
	}
	if def, ok := ct.DefaultValue(); ok {
		col.Default = NormalizeDefault(def)
	}

	return col
}

// Ensure Introspector implements the interface
var _ secondary.SchemaIntrospector = (*Introspector)(nil)
