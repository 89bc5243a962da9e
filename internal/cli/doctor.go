package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/crudgen/internal/config"
	"github.com/example/crudgen/internal/db"
	"github.com/example/crudgen/internal/models"
	"github.com/example/crudgen/internal/templates/stubs"
	"github.com/example/crudgen/internal/wire"
)

// Check statuses
const (
	StatusOK   = "✓"
	StatusWarn = "⚠"
	StatusFail = "✗"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // StatusOK, StatusWarn or StatusFail
	Details string // Only shown if Status != StatusOK
}

// pinger is the part of the introspector the doctor needs.
type pinger interface {
	Ping(ctx context.Context, conn models.ConnectionParams) error
}

// modelLister is the part of the model registry the doctor needs.
type modelLister interface {
	List() []models.ModelDescriptor
}

// DoctorCmd returns the doctor command for environment validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate crudgen configuration and project layout",
		Long: `Environment health check for crudgen.

Validates:
- Configuration file and environment
- Embedded stubs
- Database reachability (default and named connections)
- Registered models
- Application, language and client directories

Examples:
  crudgen doctor              # Run full health check
  crudgen doctor --quiet      # Exit code only (0=healthy, 1=issues)`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var results []CheckResult

			cfg, err := wire.Config()
			if err != nil {
				results = append(results, CheckResult{Name: "Config", Status: StatusFail, Details: "  " + err.Error()})
			} else {
				introspector, _ := wire.Introspector()
				registry, _ := wire.Catalog()
				results = RunChecks(cmd.Context(), cfg, introspector, registry)
			}

			hasErrors := false
			for _, r := range results {
				if r.Status == StatusFail {
					hasErrors = true
					break
				}
			}

			if !quiet {
				PrintResults(cmd.OutOrStdout(), results, hasErrors)
			}

			if hasErrors {
				return fmt.Errorf("environment validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

// RunChecks runs every check against a loaded configuration.
func RunChecks(ctx context.Context, cfg *config.Config, p pinger, registry modelLister) []CheckResult {
	results := []CheckResult{{Name: "Config", Status: StatusOK}}
	results = append(results, checkStubs())
	results = append(results, checkConnections(ctx, cfg, p)...)
	results = append(results, checkModels(registry))
	results = append(results, checkDirectory("App path", cfg.ResolvePath(cfg.App.Path), StatusWarn))
	results = append(results, checkLocales(cfg.ResolvePath(cfg.Admin.LangPath)))
	results = append(results, checkDirectory("Client path", cfg.ResolvePath(cfg.Admin.ClientPath), StatusWarn))
	return results
}

// PrintResults prints a compact table followed by details of non-passing checks.
func PrintResults(out io.Writer, results []CheckResult, hasErrors bool) {
	colors := map[string]*color.Color{
		StatusOK:   color.New(color.FgGreen),
		StatusWarn: color.New(color.FgYellow),
		StatusFail: color.New(color.FgRed),
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Check                  Status")
	fmt.Fprintln(out, "─────────────────────────────")
	for _, r := range results {
		fmt.Fprintf(out, "%-22s %s\n", r.Name, colors[r.Status].Sprint(r.Status))
	}
	fmt.Fprintln(out)

	hasDetails := false
	for _, r := range results {
		if r.Status != StatusOK && r.Details != "" {
			if !hasDetails {
				fmt.Fprintln(out, "Details:")
				hasDetails = true
			}
			fmt.Fprintf(out, "\n%s:\n%s\n", r.Name, r.Details)
		}
	}

	if hasErrors {
		fmt.Fprintln(out, "\n⚠ Issues found.")
	} else {
		fmt.Fprintln(out, "All checks passed.")
	}
}

// checkStubs validates the embedded templates
func checkStubs() CheckResult {
	if err := stubs.Validate(); err != nil {
		return CheckResult{Name: "Stubs", Status: StatusFail, Details: "  " + err.Error()}
	}
	return CheckResult{Name: "Stubs", Status: StatusOK}
}

// checkConnections pings the default connection and every named one
func checkConnections(ctx context.Context, cfg *config.Config, p pinger) []CheckResult {
	results := []CheckResult{checkConnection(ctx, "Database", wire.ResolveConnection(cfg, cfg.Database.Params()), p)}

	conns := cfg.ConnectionParams()
	names := make([]string, 0, len(conns))
	for name := range conns {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		results = append(results, checkConnection(ctx, "Database ("+name+")", wire.ResolveConnection(cfg, conns[name]), p))
	}
	return results
}

func checkConnection(ctx context.Context, label string, conn models.ConnectionParams, p pinger) CheckResult {
	if p == nil {
		return CheckResult{Name: label, Status: StatusWarn, Details: "  Introspector unavailable"}
	}
	if err := p.Ping(ctx, conn); err != nil {
		details := "  " + err.Error()
		if errors.Is(err, models.ErrIntrospectionUnavailable) {
			details += "\n  Supported drivers: " + strings.Join(db.SupportedDrivers(), ", ")
		}
		return CheckResult{Name: label, Status: StatusFail, Details: details}
	}
	return CheckResult{Name: label, Status: StatusOK}
}

// checkModels reports whether any model is registered
func checkModels(registry modelLister) CheckResult {
	if registry == nil {
		return CheckResult{Name: "Models", Status: StatusWarn, Details: "  Model registry unavailable"}
	}
	if len(registry.List()) == 0 {
		return CheckResult{
			Name:    "Models",
			Status:  StatusWarn,
			Details: "  No models registered; add entries under 'models' in crudgen.yaml",
		}
	}
	return CheckResult{Name: "Models", Status: StatusOK}
}

// checkDirectory validates that path is an existing directory
func checkDirectory(name, path, missingStatus string) CheckResult {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return CheckResult{Name: name, Status: missingStatus, Details: "  Missing: " + path}
	}
	if err != nil {
		return CheckResult{Name: name, Status: StatusFail, Details: "  " + err.Error()}
	}
	if !info.IsDir() {
		return CheckResult{Name: name, Status: StatusFail, Details: "  Not a directory: " + path}
	}
	return CheckResult{Name: name, Status: StatusOK}
}

// checkLocales validates the language directory holds at least one locale
func checkLocales(path string) CheckResult {
	result := checkDirectory("Lang path", path, StatusWarn)
	if result.Status != StatusOK {
		result.Details += "\n  No translation files will be generated"
		return result
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return CheckResult{Name: "Lang path", Status: StatusFail, Details: "  " + err.Error()}
	}
	for _, e := range entries {
		if e.IsDir() {
			return result
		}
	}
	return CheckResult{Name: "Lang path", Status: StatusWarn, Details: "  No locale directories in " + path}
}
