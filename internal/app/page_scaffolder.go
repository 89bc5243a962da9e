package app

import (
	"context"
	"path/filepath"

	"github.com/example/crudgen/internal/core/emit"
	"github.com/example/crudgen/internal/core/render"
)

// PageScaffolder writes the index, show, create and edit client pages of a resource.
type PageScaffolder struct {
	emitter    *Emitter
	clientPath string
}

// NewPageScaffolder creates a PageScaffolder rooted at the client project path.
func NewPageScaffolder(emitter *Emitter, clientPath string) *PageScaffolder {
	return &PageScaffolder{emitter: emitter, clientPath: clientPath}
}

// ResourceDir returns the pages directory of a resource.
func (p *PageScaffolder) ResourceDir(resourcePath string) string {
	return filepath.Join(p.clientPath, "pages", resourcePath)
}

// Scaffold ensures the resource and record directories exist, then emits each
// page that is not already present.
func (p *PageScaffolder) Scaffold(ctx context.Context, stubs map[render.PageRole]string, resourcePath, routePrefix string) ([]emit.Outcome, error) {
	base := p.ResourceDir(resourcePath)
	dirs := []string{base, filepath.Join(base, render.IDSegment)}

	pages := render.ClientPages(stubs, resourcePath, render.StripAPISegment(routePrefix))
	artifacts := make([]emit.Artifact, 0, len(pages))
	for _, page := range pages {
		artifacts = append(artifacts, emit.Artifact{
			Role:    "page:" + string(page.Role),
			Path:    filepath.Join(base, filepath.FromSlash(page.RelPath)),
			Content: page.Content,
		})
	}

	return p.emitter.Emit(ctx, dirs, artifacts)
}
