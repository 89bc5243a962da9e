package secondary

import "github.com/example/crudgen/internal/models"

// ModelCatalog defines the secondary port for the registry of known data models.
type ModelCatalog interface {
	// Lookup resolves a model identifier. Unknown identifiers return models.ErrInvalidModel.
	Lookup(identifier string) (*models.ModelDescriptor, error)

	// List returns every registered model, sorted by identifier.
	List() []models.ModelDescriptor
}
