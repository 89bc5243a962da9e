package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/example/crudgen/internal/config"
	"github.com/example/crudgen/internal/models"
)

// mockPinger fails for the listed databases.
type mockPinger struct {
	failing map[string]error
	pinged  []string
}

func (m *mockPinger) Ping(ctx context.Context, conn models.ConnectionParams) error {
	m.pinged = append(m.pinged, conn.Database)
	return m.failing[conn.Database]
}

// mockRegistry lists a fixed set of models.
type mockRegistry []models.ModelDescriptor

func (m mockRegistry) List() []models.ModelDescriptor { return m }

var userRegistry = mockRegistry{{Identifier: `App\Models\User`, Table: "users"}}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	for _, dir := range []string{"app", filepath.Join("lang", "en"), "client"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			t.Fatalf("failed to create %s: %v", dir, err)
		}
	}

	return &config.Config{
		OutputRoot: root,
		Database:   config.DatabaseConfig{Driver: "sqlite", Name: "app.db"},
		Connections: map[string]config.DatabaseConfig{
			"reporting": {Driver: "mysql", Name: "reports"},
		},
		App:    config.AppConfig{RootNamespace: "App", Path: "app"},
		Admin:  config.AdminConfig{Namespace: `App\Admin\Controllers`, LangPath: "lang", ClientPath: "client"},
		Models: []config.ModelConfig{{Identifier: `App\Models\User`}},
	}
}

func statusOf(results []CheckResult, name string) string {
	for _, r := range results {
		if r.Name == name {
			return r.Status
		}
	}
	return ""
}

func TestRunChecks_Healthy(t *testing.T) {
	cfg := testConfig(t)
	p := &mockPinger{}

	results := RunChecks(context.Background(), cfg, p, userRegistry)

	for _, r := range results {
		if r.Status != StatusOK {
			t.Errorf("check %s = %s (%s), want ok", r.Name, r.Status, r.Details)
		}
	}
	want := []string{filepath.Join(cfg.OutputRoot, "app.db"), "reports"}
	if fmt.Sprint(p.pinged) != fmt.Sprint(want) {
		t.Errorf("pinged = %v, want %v", p.pinged, want)
	}
}

func TestRunChecks_Problems(t *testing.T) {
	cfg := testConfig(t)
	cfg.Models = nil
	cfg.Admin.ClientPath = "missing-client"
	if err := os.RemoveAll(filepath.Join(cfg.OutputRoot, "lang", "en")); err != nil {
		t.Fatal(err)
	}
	p := &mockPinger{failing: map[string]error{
		"reports": fmt.Errorf("%w: connection refused", models.ErrConnection),
	}}

	results := RunChecks(context.Background(), cfg, p, mockRegistry{})

	tests := []struct {
		name string
		want string
	}{
		{"Config", StatusOK},
		{"Stubs", StatusOK},
		{"Database", StatusOK},
		{"Database (reporting)", StatusFail},
		{"Models", StatusWarn},
		{"Lang path", StatusWarn},
		{"Client path", StatusWarn},
	}
	for _, tt := range tests {
		if got := statusOf(results, tt.name); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestCheckConnection_UnsupportedDriverListsDrivers(t *testing.T) {
	unavailable := &models.GenerationError{Op: "introspect", Err: fmt.Errorf("%w: driver \"sqlsrv\"", models.ErrIntrospectionUnavailable)}
	p := &mockPinger{failing: map[string]error{
		"x": fmt.Errorf("ping: %w", unavailable),
		"y": errors.New("refused: " + models.ErrIntrospectionUnavailable.Error()),
	}}

	r := checkConnection(context.Background(), "Database", models.ConnectionParams{Driver: "sqlsrv", Database: "x"}, p)
	if r.Status != StatusFail || !strings.Contains(r.Details, "Supported drivers") {
		t.Errorf("unexpected result: %+v", r)
	}

	r = checkConnection(context.Background(), "Database", models.ConnectionParams{Driver: "mysql", Database: "y"}, p)
	if r.Status != StatusFail || strings.Contains(r.Details, "Supported drivers") {
		t.Errorf("driver list shown for an unrelated error: %+v", r)
	}
}

func TestCheckModels(t *testing.T) {
	tests := []struct {
		name     string
		registry modelLister
		want     string
	}{
		{"registered", userRegistry, StatusOK},
		{"empty", mockRegistry{}, StatusWarn},
		{"unavailable", nil, StatusWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := checkModels(tt.registry).Status; got != tt.want {
				t.Errorf("checkModels() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrintResults(t *testing.T) {
	color.NoColor = true
	var out bytes.Buffer

	PrintResults(&out, []CheckResult{
		{Name: "Config", Status: StatusOK},
		{Name: "Database", Status: StatusFail, Details: "  " + errors.New("refused").Error()},
	}, true)

	s := out.String()
	if !strings.Contains(s, "Database               ✗") {
		t.Errorf("missing status row:\n%s", s)
	}
	if !strings.Contains(s, "Details:") || !strings.Contains(s, "refused") {
		t.Errorf("missing details:\n%s", s)
	}
	if !strings.Contains(s, "Issues found") {
		t.Errorf("missing summary:\n%s", s)
	}
}
