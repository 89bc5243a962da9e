// Package catalog provides the registry of data models that can be scaffolded.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/crudgen/internal/config"
	"github.com/example/crudgen/internal/core/naming"
	"github.com/example/crudgen/internal/models"
	"github.com/example/crudgen/internal/ports/secondary"
)

// Catalog implements secondary.ModelCatalog over configured model entries.
type Catalog struct {
	models map[string]models.ModelDescriptor // Keyed by normalized identifier
}

// New builds a catalog, filling conventional defaults for blank fields.
func New(entries []config.ModelConfig) (*Catalog, error) {
	c := &Catalog{models: make(map[string]models.ModelDescriptor, len(entries))}
	for _, entry := range entries {
		d := Describe(entry)
		key := lookupKey(d.Identifier)
		if _, dup := c.models[key]; dup {
			return nil, fmt.Errorf("model %s registered twice", d.Identifier)
		}
		c.models[key] = d
	}
	return c, nil
}

// Describe converts a config entry into a ModelDescriptor.
func Describe(entry config.ModelConfig) models.ModelDescriptor {
	id := naming.NormalizeIdentifier(entry.Identifier)
	short := naming.ShortName(id)

	d := models.ModelDescriptor{
		Identifier:       id,
		ShortName:        short,
		Table:            entry.Table,
		PrimaryKey:       entry.PrimaryKey,
		SoftDeleteColumn: entry.SoftDelete,
		Connection:       strings.ToLower(entry.Connection),
	}
	if d.Table == "" {
		d.Table = naming.DefaultTableName(short)
	}
	if d.PrimaryKey == "" {
		d.PrimaryKey = models.DefaultPrimaryKey
	}
	if d.SoftDeleteColumn == "" {
		d.SoftDeleteColumn = models.DefaultSoftDeleteColumn
	}

	if entry.Timestamps == nil || *entry.Timestamps {
		d.CreatedAtColumn = entry.CreatedAt
		if d.CreatedAtColumn == "" {
			d.CreatedAtColumn = models.DefaultCreatedAtColumn
		}
		d.UpdatedAtColumn = entry.UpdatedAt
		if d.UpdatedAtColumn == "" {
			d.UpdatedAtColumn = models.DefaultUpdatedAtColumn
		}
	}
	return d
}

// Lookup resolves an identifier, tolerating leading and doubled backslashes.
func (c *Catalog) Lookup(identifier string) (*models.ModelDescriptor, error) {
	d, ok := c.models[lookupKey(identifier)]
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a registered model", models.ErrInvalidModel, naming.NormalizeIdentifier(identifier))
	}
	return &d, nil
}

// List returns every registered model sorted by identifier.
func (c *Catalog) List() []models.ModelDescriptor {
	list := make([]models.ModelDescriptor, 0, len(c.models))
	for _, d := range c.models {
		list = append(list, d)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Identifier < list[j].Identifier })
	return list
}

// lookupKey normalizes an identifier; namespaces are case insensitive.
func lookupKey(identifier string) string {
	return strings.ToLower(naming.NormalizeIdentifier(identifier))
}

// Ensure Catalog implements the interface
var _ secondary.ModelCatalog = (*Catalog)(nil)
