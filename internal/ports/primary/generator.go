// Package primary defines the primary ports (driving adapters) for the application.
package primary

import (
	"context"

	"github.com/example/crudgen/internal/core/emit"
	"github.com/example/crudgen/internal/core/render"
	"github.com/example/crudgen/internal/models"
)

// GeneratorService defines the primary port for CRUD scaffolding.
type GeneratorService interface {
	// Generate runs the pipeline for one model: introspect, classify,
	// render and emit the controller, translations and client pages.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// GenerateRequest contains parameters for a generation run.
type GenerateRequest struct {
	Model     string // Model identifier; empty renders the blank controller
	Title     string // Optional title override
	Name      string // Optional controller name override, required without a model
	StubPath  string // Optional controller stub override
	Namespace string // Optional controller namespace override
	DryRun    bool   // Return the blocks without writing anything
}

// GenerateResponse contains the result of a generation run.
type GenerateResponse struct {
	RunID     string
	Resource  models.ResourceDescriptor
	Fields    []models.FieldSpec
	Blocks    render.Blocks  // Unindented grid, show and form blocks
	Outcomes  []emit.Outcome // Empty on dry run
	RouteHint string         // e.g. $router->resource('users', UserController::class);
	DryRun    bool
}

// Created returns the outcomes that produced a new file.
func (r *GenerateResponse) Created() []emit.Outcome {
	var created []emit.Outcome
	for _, o := range r.Outcomes {
		if o.Status == emit.StatusCreated {
			created = append(created, o)
		}
	}
	return created
}
