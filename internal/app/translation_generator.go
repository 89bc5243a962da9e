package app

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/example/crudgen/internal/core/emit"
	"github.com/example/crudgen/internal/core/render"
	"github.com/example/crudgen/internal/models"
	"github.com/example/crudgen/internal/ports/secondary"
)

// TranslationGenerator writes one label file per locale directory.
type TranslationGenerator struct {
	store    secondary.ArtifactStore
	emitter  *Emitter
	langPath string
	logger   *zap.Logger
}

// NewTranslationGenerator creates a TranslationGenerator rooted at langPath.
func NewTranslationGenerator(store secondary.ArtifactStore, emitter *Emitter, langPath string, logger *zap.Logger) *TranslationGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TranslationGenerator{store: store, emitter: emitter, langPath: langPath, logger: logger}
}

// Generate renders the label file for res into every locale under the language path.
// A missing language path means there are no locales and nothing is written.
func (g *TranslationGenerator) Generate(ctx context.Context, stub string, res models.ResourceDescriptor, fields []models.FieldSpec) ([]emit.Outcome, error) {
	exists, err := g.store.Exists(ctx, g.langPath)
	if err != nil {
		return nil, fmt.Errorf("failed to check language path: %w", err)
	}
	if !exists {
		g.logger.Warn("language path not found, no translations written", zap.String("path", g.langPath))
		return nil, nil
	}

	locales, err := g.store.ListDirectories(ctx, g.langPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list locales: %w", err)
	}

	content := render.LabelFile(stub, res, fields)
	artifacts := make([]emit.Artifact, 0, len(locales))
	for _, locale := range locales {
		artifacts = append(artifacts, emit.Artifact{
			Role:    "translation:" + locale,
			Path:    filepath.Join(g.langPath, locale, res.ResourceName+".php"),
			Content: content,
		})
	}

	return g.emitter.Emit(ctx, nil, artifacts)
}
