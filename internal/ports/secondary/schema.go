// Package secondary defines the secondary ports (driven adapters) for the application.
package secondary

import (
	"context"

	"github.com/example/crudgen/internal/models"
)

// SchemaIntrospector defines the secondary port for reading table structure.
type SchemaIntrospector interface {
	// ListColumns returns the columns of table ordered by ordinal position.
	// A "schema.table" identifier overrides the connection's database.
	ListColumns(ctx context.Context, table string, conn models.ConnectionParams) ([]models.ColumnDescriptor, error)

	// Ping opens a connection and verifies the data store answers.
	Ping(ctx context.Context, conn models.ConnectionParams) error
}
