package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/crudgen/internal/core/classify"
	"github.com/example/crudgen/internal/core/emit"
	"github.com/example/crudgen/internal/core/naming"
	"github.com/example/crudgen/internal/core/render"
	"github.com/example/crudgen/internal/ctxutil"
	"github.com/example/crudgen/internal/models"
	"github.com/example/crudgen/internal/ports/primary"
	"github.com/example/crudgen/internal/ports/secondary"
)

// Stubs holds the template texts used by a generation run.
type Stubs struct {
	Controller   string
	Blank        string
	Translations string
	Pages        map[render.PageRole]string

	// Placeholders a --stub override is expected to carry; missing ones are warned about.
	ControllerTokens []string
	BlankTokens      []string
}

// GeneratorConfig holds the resolved settings of a generation run.
// Paths are expected to be resolved against the output root already.
type GeneratorConfig struct {
	AppRootNamespace string // e.g. `App`
	AppPath          string // Directory of the root namespace
	AdminNamespace   string // Default controller namespace
	RoutePrefix      string // Admin route prefix, e.g. "api/admin"
	Connection       models.ConnectionParams
	Connections      map[string]models.ConnectionParams // Named connections
}

// GeneratorServiceImpl implements the GeneratorService interface.
type GeneratorServiceImpl struct {
	catalog      secondary.ModelCatalog
	introspector secondary.SchemaIntrospector
	store        secondary.ArtifactStore
	emitter      *Emitter
	translations *TranslationGenerator
	pages        *PageScaffolder
	stubs        Stubs
	cfg          GeneratorConfig
	logger       *zap.Logger
}

// NewGeneratorService creates a new GeneratorService with injected dependencies.
func NewGeneratorService(
	catalog secondary.ModelCatalog,
	introspector secondary.SchemaIntrospector,
	store secondary.ArtifactStore,
	emitter *Emitter,
	translations *TranslationGenerator,
	pages *PageScaffolder,
	stubs Stubs,
	cfg GeneratorConfig,
	logger *zap.Logger,
) *GeneratorServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GeneratorServiceImpl{
		catalog:      catalog,
		introspector: introspector,
		store:        store,
		emitter:      emitter,
		translations: translations,
		pages:        pages,
		stubs:        stubs,
		cfg:          cfg,
		logger:       logger,
	}
}

// Generate runs the full pipeline for one model.
func (s *GeneratorServiceImpl) Generate(ctx context.Context, req primary.GenerateRequest) (*primary.GenerateResponse, error) {
	runID := uuid.NewString()
	ctx = ctxutil.WithRunID(ctx, runID)
	log := s.logger.With(zap.String("run_id", runID))

	namespace := req.Namespace
	if namespace == "" {
		namespace = s.cfg.AdminNamespace
	}
	namespace = naming.NormalizeIdentifier(namespace)

	if strings.TrimSpace(req.Model) == "" {
		return s.generateBlank(ctx, log, runID, namespace, req)
	}

	// 1. Resolve the model before any I/O
	model, err := s.catalog.Lookup(req.Model)
	if err != nil {
		return nil, &models.GenerationError{Op: "lookup", Identifier: req.Model, Err: err}
	}

	// 2. Stub override must exist before anything is rendered
	stub, err := s.controllerStub(ctx, req.StubPath, s.stubs.Controller, s.stubs.ControllerTokens)
	if err != nil {
		return nil, err
	}

	// 3. Names
	res := naming.ResolveResource(*model, naming.ResourceOptions{
		Title:          req.Title,
		ControllerName: req.Name,
		Namespace:      namespace,
	})
	log = log.With(zap.String("model", model.Identifier), zap.String("table", model.Table))

	// 4. Introspect, classify, build blocks
	conn := s.connectionFor(*model)
	columns, err := s.introspector.ListColumns(ctx, model.Table, conn)
	if err != nil {
		return nil, &models.GenerationError{Op: "introspect", Identifier: model.Table, Err: err}
	}
	log.Debug("columns introspected", zap.Int("count", len(columns)))

	fields := classify.ClassifyAll(res.ResourceName, columns)
	eol := render.DetectEOL(stub)
	blocks := render.BuildBlocks(fields, model.ReservedColumns(), eol)

	resp := &primary.GenerateResponse{
		RunID:     runID,
		Resource:  res,
		Fields:    fields,
		Blocks:    blocks,
		RouteHint: RouteHint(res.ResourcePath, res.ControllerName),
		DryRun:    req.DryRun,
	}

	// 5. Dry run stops before any write
	if req.DryRun {
		log.Info("dry run, nothing written")
		return resp, nil
	}

	// 6. Controller, translations, client pages
	controller := emit.Artifact{
		Role:    "controller",
		Path:    s.ControllerPath(res.Namespace, res.ControllerName),
		Content: render.Render(stub, render.ControllerContext(res, blocks, eol)),
	}
	outcomes, err := s.emitter.Emit(ctx, []string{filepath.Dir(controller.Path)}, []emit.Artifact{controller})
	resp.Outcomes = append(resp.Outcomes, outcomes...)
	if err != nil {
		return resp, err
	}

	outcomes, err = s.translations.Generate(ctx, s.stubs.Translations, res, fields)
	resp.Outcomes = append(resp.Outcomes, outcomes...)
	if err != nil {
		return resp, &models.GenerationError{Op: "translations", Identifier: res.ResourceName, Err: err}
	}

	outcomes, err = s.pages.Scaffold(ctx, s.stubs.Pages, res.ResourcePath, s.cfg.RoutePrefix)
	resp.Outcomes = append(resp.Outcomes, outcomes...)
	if err != nil {
		return resp, &models.GenerationError{Op: "pages", Identifier: res.ResourcePath, Err: err}
	}

	log.Info("generation complete",
		zap.Int("created", len(resp.Created())),
		zap.Int("artifacts", len(resp.Outcomes)),
	)
	return resp, nil
}

// generateBlank renders the model-less controller stub under the given name.
func (s *GeneratorServiceImpl) generateBlank(ctx context.Context, log *zap.Logger, runID, namespace string, req primary.GenerateRequest) (*primary.GenerateResponse, error) {
	if req.Name == "" {
		return nil, &models.GenerationError{Op: "lookup", Err: fmt.Errorf("%w: a model or a controller name is required", models.ErrInvalidModel)}
	}

	stub, err := s.controllerStub(ctx, req.StubPath, s.stubs.Blank, s.stubs.BlankTokens)
	if err != nil {
		return nil, err
	}

	title := req.Title
	if title == "" {
		title = strings.TrimSuffix(req.Name, "Controller")
	}

	res := models.ResourceDescriptor{
		Title:          title,
		SnakeTitle:     naming.ToSnakeCase(title),
		ControllerName: req.Name,
		Namespace:      namespace,
	}
	resp := &primary.GenerateResponse{RunID: runID, Resource: res, DryRun: req.DryRun}
	if req.DryRun {
		return resp, nil
	}

	controller := emit.Artifact{
		Role:    "controller",
		Path:    s.ControllerPath(namespace, req.Name),
		Content: render.Render(stub, render.BlankContext(namespace, req.Name, title)),
	}
	outcomes, err := s.emitter.Emit(ctx, []string{filepath.Dir(controller.Path)}, []emit.Artifact{controller})
	resp.Outcomes = outcomes
	if err != nil {
		return resp, err
	}

	log.Info("blank controller generated", zap.String("controller", req.Name))
	return resp, nil
}

// controllerStub returns the override stub when one is given, otherwise fallback.
func (s *GeneratorServiceImpl) controllerStub(ctx context.Context, override, fallback string, tokens []string) (string, error) {
	if override == "" {
		return fallback, nil
	}

	exists, err := s.store.Exists(ctx, override)
	if err != nil {
		return "", &models.GenerationError{Op: "stub", Path: override, Err: err}
	}
	if !exists {
		return "", &models.GenerationError{Op: "stub", Path: override, Err: models.ErrInvalidStub}
	}

	content, err := s.store.ReadFile(ctx, override)
	if err != nil {
		return "", &models.GenerationError{Op: "stub", Path: override, Err: err}
	}

	stub := string(content)
	if len(tokens) == 0 {
		tokens = []string{render.TokenNamespace, render.TokenClass}
	}
	if missing := render.Missing(stub, tokens); len(missing) > 0 {
		s.logger.Warn("stub override lacks placeholders", zap.String("path", override), zap.Strings("missing", missing))
	}
	return stub, nil
}

// connectionFor returns the named connection of a model, or the default one.
func (s *GeneratorServiceImpl) connectionFor(model models.ModelDescriptor) models.ConnectionParams {
	if model.Connection != "" {
		if conn, ok := s.cfg.Connections[model.Connection]; ok {
			return conn
		}
		s.logger.Warn("unknown connection, using default", zap.String("connection", model.Connection))
	}
	return s.cfg.Connection
}

// ControllerPath returns the file path of a controller class in namespace.
func (s *GeneratorServiceImpl) ControllerPath(namespace, controller string) string {
	dir := naming.NamespacePath(namespace, s.cfg.AppRootNamespace, filepath.ToSlash(s.cfg.AppPath))
	return filepath.Join(filepath.FromSlash(dir), controller+".php")
}

// RouteHint returns the route registration line for a generated controller.
func RouteHint(resourcePath, controller string) string {
	return fmt.Sprintf("$router->resource('%s', %s::class);", resourcePath, controller)
}

// Ensure GeneratorServiceImpl implements the interface
var _ primary.GeneratorService = (*GeneratorServiceImpl)(nil)
