package app

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/example/crudgen/internal/core/render"
	"github.com/example/crudgen/internal/models"
	"github.com/example/crudgen/internal/ports/secondary"
)

// Ensure mocks implement the interfaces
var (
	_ secondary.ArtifactStore      = (*mockArtifactStore)(nil)
	_ secondary.ModelCatalog       = (*mockModelCatalog)(nil)
	_ secondary.SchemaIntrospector = (*mockIntrospector)(nil)
)

// mockArtifactStore implements secondary.ArtifactStore in memory.
type mockArtifactStore struct {
	files   map[string]string
	dirs    map[string]bool
	writes  []string
	mkdirs  []string
	readErr error
}

func newMockArtifactStore() *mockArtifactStore {
	return &mockArtifactStore{
		files: make(map[string]string),
		dirs:  make(map[string]bool),
	}
}

// seedDir marks path and its parents as existing without recording a mkdir.
func (m *mockArtifactStore) seedDir(path string) {
	for p := path; p != "." && p != "/" && p != ""; p = filepath.Dir(p) {
		m.dirs[p] = true
	}
}

func (m *mockArtifactStore) Exists(ctx context.Context, path string) (bool, error) {
	_, isFile := m.files[path]
	return isFile || m.dirs[path], nil
}

func (m *mockArtifactStore) EnsureDir(ctx context.Context, path string, mode uint32) error {
	m.seedDir(path)
	m.mkdirs = append(m.mkdirs, path)
	return nil
}

func (m *mockArtifactStore) CreateFile(ctx context.Context, path string, content []byte, mode uint32) error {
	if _, ok := m.files[path]; ok {
		return fmt.Errorf("create %s: %w", path, fs.ErrExist)
	}
	m.files[path] = string(content)
	m.writes = append(m.writes, path)
	return nil
}

func (m *mockArtifactStore) ListDirectories(ctx context.Context, path string) ([]string, error) {
	var names []string
	for dir := range m.dirs {
		if filepath.Dir(dir) == path {
			names = append(names, filepath.Base(dir))
		}
	}
	sort.Strings(names)
	return names, nil
}

func (m *mockArtifactStore) ReadFile(ctx context.Context, path string) ([]byte, error) {
	if m.readErr != nil {
		return nil, m.readErr
	}
	content, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return []byte(content), nil
}

// mockModelCatalog implements secondary.ModelCatalog for testing.
type mockModelCatalog struct {
	models map[string]models.ModelDescriptor
}

func newMockModelCatalog(descriptors ...models.ModelDescriptor) *mockModelCatalog {
	m := &mockModelCatalog{models: make(map[string]models.ModelDescriptor)}
	for _, d := range descriptors {
		m.models[d.Identifier] = d
	}
	return m
}

func (m *mockModelCatalog) Lookup(identifier string) (*models.ModelDescriptor, error) {
	d, ok := m.models[identifier]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidModel, identifier)
	}
	return &d, nil
}

func (m *mockModelCatalog) List() []models.ModelDescriptor {
	var list []models.ModelDescriptor
	for _, d := range m.models {
		list = append(list, d)
	}
	return list
}

// mockIntrospector implements secondary.SchemaIntrospector for testing.
type mockIntrospector struct {
	columns  map[string][]models.ColumnDescriptor
	err      error
	calls    int
	lastConn models.ConnectionParams
}

func (m *mockIntrospector) ListColumns(ctx context.Context, table string, conn models.ConnectionParams) ([]models.ColumnDescriptor, error) {
	m.calls++
	m.lastConn = conn
	if m.err != nil {
		return nil, m.err
	}
	cols, ok := m.columns[table]
	if !ok {
		return nil, models.ErrTableNotFound
	}
	return cols, nil
}

func (m *mockIntrospector) Ping(ctx context.Context, conn models.ConnectionParams) error {
	return m.err
}

func strPtr(s string) *string { return &s }

// userModel is the registry entry used across generator tests.
var userModel = models.ModelDescriptor{
	Identifier:       `App\Models\User`,
	ShortName:        "User",
	Table:            "users",
	PrimaryKey:       "id",
	CreatedAtColumn:  "created_at",
	UpdatedAtColumn:  "updated_at",
	SoftDeleteColumn: "deleted_at",
}

// userColumns mirrors a typical users table.
var userColumns = []models.ColumnDescriptor{
	{Name: "id", NativeType: models.NativeBigint},
	{Name: "name", NativeType: models.NativeString},
	{Name: "user_email", NativeType: models.NativeString},
	{Name: "is_active", NativeType: models.NativeBoolean, Default: strPtr("true")},
	{Name: "bio", NativeType: models.NativeText, Nullable: true},
	{Name: "created_at", NativeType: models.NativeDatetime, Nullable: true},
	{Name: "updated_at", NativeType: models.NativeDatetime, Nullable: true},
}

// testStubs are minimal stubs carrying every placeholder.
func testStubs() Stubs {
	return Stubs{
		Controller:   "<?php\nnamespace DummyNamespace;\nclass DummyClass {\n    protected $title = 'DummyTitle';\n    // DummyModelNamespace DummyModel DummyName\n    grid:\nDummyGrid\n    show:\nDummyShow\n    form:\nDummyForm\n}\n",
		Blank:        "<?php\nnamespace DummyNamespace;\nclass DummyClass { // DummyTitle\n}\n",
		Translations: "<?php\nreturn [\n    'title' => 'DummyTitle', // DummyLowerTitles\n    'labels' => [\nDummyLabels\n    ],\n];\n",
		Pages: map[render.PageRole]string{
			render.PageIndex:  "index DummyResourceName DummyPrefix",
			render.PageShow:   "show DummyResourceName DummyPrefix",
			render.PageCreate: "create DummyResourceName DummyPrefix",
			render.PageEdit:   "edit DummyResourceName DummyPrefix",
		},
		ControllerTokens: []string{render.TokenNamespace, render.TokenClass, render.TokenGrid, render.TokenShow, render.TokenForm},
		BlankTokens:      []string{render.TokenNamespace, render.TokenClass},
	}
}

// newTestGenerator wires a generator over the given store rooted at root.
func newTestGenerator(store secondary.ArtifactStore, root string, catalog secondary.ModelCatalog, introspector secondary.SchemaIntrospector) *GeneratorServiceImpl {
	emitter := NewEmitter(store, NewEffectExecutor(store, nil), nil)
	return NewGeneratorService(
		catalog,
		introspector,
		store,
		emitter,
		NewTranslationGenerator(store, emitter, filepath.Join(root, "lang"), nil),
		NewPageScaffolder(emitter, filepath.Join(root, "client")),
		testStubs(),
		GeneratorConfig{
			AppRootNamespace: "App",
			AppPath:          filepath.Join(root, "app"),
			AdminNamespace:   `App\Admin\Controllers`,
			RoutePrefix:      "api/admin",
			Connection:       models.ConnectionParams{Driver: "sqlite", Database: "default.db"},
			Connections: map[string]models.ConnectionParams{
				"reporting": {Driver: "postgres", Database: "reports"},
			},
		},
		nil,
	)
}

func hasLine(content, line string) bool {
	for _, l := range strings.Split(content, "\n") {
		if strings.TrimSpace(l) == line {
			return true
		}
	}
	return false
}
