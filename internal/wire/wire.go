// Package wire provides dependency injection for the crudgen application.
// It creates singleton services with lazy initialization.
package wire

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"

	"github.com/example/crudgen/internal/adapters/catalog"
	cliadapter "github.com/example/crudgen/internal/adapters/cli"
	"github.com/example/crudgen/internal/adapters/filesystem"
	"github.com/example/crudgen/internal/adapters/schema"
	"github.com/example/crudgen/internal/app"
	"github.com/example/crudgen/internal/config"
	"github.com/example/crudgen/internal/db"
	"github.com/example/crudgen/internal/logging"
	"github.com/example/crudgen/internal/models"
	"github.com/example/crudgen/internal/ports/primary"
	"github.com/example/crudgen/internal/ports/secondary"
	"github.com/example/crudgen/internal/templates/stubs"
)

// Options are the global command line settings that shape the services.
type Options struct {
	ConfigFile string
	OutputRoot string
	Verbose    bool
}

var (
	opts             Options
	cfg              *config.Config
	logger           = zap.NewNop()
	introspector     secondary.SchemaIntrospector
	modelCatalog     secondary.ModelCatalog
	generatorService primary.GeneratorService
	initErr          error
	once             sync.Once
)

// Configure sets the options used on first initialization.
// It has no effect once a service has been requested.
func Configure(o Options) {
	opts = o
}

// GeneratorService returns the singleton GeneratorService instance.
func GeneratorService() (primary.GeneratorService, error) {
	once.Do(initServices)
	return generatorService, initErr
}

// Config returns the loaded configuration.
func Config() (*config.Config, error) {
	once.Do(initServices)
	return cfg, initErr
}

// Introspector returns the singleton schema introspector.
func Introspector() (secondary.SchemaIntrospector, error) {
	once.Do(initServices)
	return introspector, initErr
}

// Catalog returns the registry of configured models.
func Catalog() (secondary.ModelCatalog, error) {
	once.Do(initServices)
	return modelCatalog, initErr
}

// Logger returns the application logger, a no-op logger before initialization.
func Logger() *zap.Logger {
	return logger
}

// Sync flushes buffered log entries.
func Sync() {
	_ = logger.Sync()
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	loaded, err := config.Load(config.LoadOptions{ConfigFile: opts.ConfigFile})
	if err != nil {
		initErr = err
		return
	}
	if opts.OutputRoot != "" {
		loaded.OutputRoot = opts.OutputRoot
	}
	cfg = loaded

	log, err := logging.New(logging.Options{Config: cfg.Log, Verbose: opts.Verbose})
	if err != nil {
		initErr = err
		return
	}
	logger = log

	stubSet, err := LoadStubs()
	if err != nil {
		initErr = fmt.Errorf("failed to load stubs: %w", err)
		return
	}

	registry, err := catalog.New(cfg.Models)
	if err != nil {
		initErr = err
		return
	}
	modelCatalog = registry

	// Secondary adapters
	store := filesystem.NewArtifactStore()
	introspector = schema.NewIntrospector(logger)

	// Application services
	executor := app.NewEffectExecutor(store, logger)
	emitter := app.NewEmitter(store, executor, logger)
	translations := app.NewTranslationGenerator(store, emitter, cfg.ResolvePath(cfg.Admin.LangPath), logger)
	pages := app.NewPageScaffolder(emitter, cfg.ResolvePath(cfg.Admin.ClientPath))

	generatorService = app.NewGeneratorService(
		registry,
		introspector,
		store,
		emitter,
		translations,
		pages,
		stubSet,
		GeneratorConfig(cfg),
		logger,
	)
}

// LoadStubs validates and reads every embedded stub.
func LoadStubs() (app.Stubs, error) {
	var set app.Stubs
	var err error

	if err = stubs.Validate(); err != nil {
		return set, err
	}

	if set.Controller, err = stubs.GetController(); err != nil {
		return set, err
	}
	if set.Blank, err = stubs.GetBlank(); err != nil {
		return set, err
	}
	if set.Translations, err = stubs.GetTranslations(); err != nil {
		return set, err
	}
	if set.Pages, err = stubs.GetPages(); err != nil {
		return set, err
	}
	set.ControllerTokens = stubs.Required(stubs.NameController)
	set.BlankTokens = stubs.Required(stubs.NameBlank)
	return set, nil
}

// GeneratorConfig derives the generator settings from the loaded configuration.
func GeneratorConfig(c *config.Config) app.GeneratorConfig {
	conns := c.ConnectionParams()
	for name, conn := range conns {
		conns[name] = ResolveConnection(c, conn)
	}

	return app.GeneratorConfig{
		AppRootNamespace: c.App.RootNamespace,
		AppPath:          c.ResolvePath(c.App.Path),
		AdminNamespace:   c.Admin.Namespace,
		RoutePrefix:      c.Admin.RoutePrefix,
		Connection:       ResolveConnection(c, c.Database.Params()),
		Connections:      conns,
	}
}

// ResolveConnection anchors a relative sqlite database file at the output root.
func ResolveConnection(c *config.Config, conn models.ConnectionParams) models.ConnectionParams {
	if db.IsSQLite(conn.Driver) {
		conn.Database = c.ResolvePath(conn.Database)
	}
	return conn
}

// GeneratorAdapter returns a new GeneratorAdapter writing to stdout.
// Each call creates a new adapter (adapters are stateless translators).
func GeneratorAdapter() (*cliadapter.GeneratorAdapter, error) {
	return GeneratorAdapterWithOutput(os.Stdout)
}

// GeneratorAdapterWithOutput returns a new GeneratorAdapter writing to the given output.
// This variant allows testing or alternate output destinations.
func GeneratorAdapterWithOutput(out io.Writer) (*cliadapter.GeneratorAdapter, error) {
	once.Do(initServices)
	if initErr != nil {
		return nil, initErr
	}
	return cliadapter.NewGeneratorAdapter(generatorService, out, cfg.OutputRoot), nil
}
