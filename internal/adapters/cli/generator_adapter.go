// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle argument parsing, output formatting,
// but delegate business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/example/crudgen/internal/core/emit"
	"github.com/example/crudgen/internal/ports/primary"
)

// GeneratorAdapter is a thin adapter that translates CLI operations to GeneratorService calls.
// It depends only on the GeneratorService interface, enabling easy testing with mocks.
type GeneratorAdapter struct {
	service primary.GeneratorService
	out     io.Writer
	root    string // Paths are printed relative to this directory
}

// NewGeneratorAdapter creates a new GeneratorAdapter with the given service.
func NewGeneratorAdapter(service primary.GeneratorService, out io.Writer, root string) *GeneratorAdapter {
	return &GeneratorAdapter{
		service: service,
		out:     out,
		root:    root,
	}
}

// Make runs a generation and reports what was written.
func (a *GeneratorAdapter) Make(ctx context.Context, req primary.GenerateRequest) error {
	resp, err := a.service.Generate(ctx, req)
	if resp != nil && !resp.DryRun {
		a.printOutcomes(resp.Outcomes)
	}
	if err != nil {
		return err
	}

	if resp.DryRun {
		a.printBlocks(resp)
		return nil
	}

	if resp.RouteHint != "" {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Add the following route to your admin routes file:")
		fmt.Fprintf(a.out, "    %s\n", color.New(color.FgCyan).Sprint(resp.RouteHint))
	}
	return nil
}

func (a *GeneratorAdapter) printOutcomes(outcomes []emit.Outcome) {
	created := color.New(color.FgGreen).SprintFunc()
	skipped := color.New(color.FgYellow).SprintFunc()

	for _, o := range outcomes {
		switch o.Status {
		case emit.StatusCreated:
			fmt.Fprintf(a.out, "%s %-18s %s\n", created("✓ created"), o.Role, a.rel(o.Path))
		case emit.StatusSkipped:
			fmt.Fprintf(a.out, "%s %-18s %s (already exists)\n", skipped("- skipped"), o.Role, a.rel(o.Path))
		}
	}
}

// printBlocks shows the generated field blocks without writing anything.
func (a *GeneratorAdapter) printBlocks(resp *primary.GenerateResponse) {
	header := color.New(color.FgCyan, color.Bold).SprintFunc()

	fmt.Fprintf(a.out, "%s\n", header(fmt.Sprintf("%s code (dry run, nothing written)", resp.Resource.ControllerName)))
	if resp.Resource.ModelIdentifier == "" {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Blank controller, no field blocks.")
		return
	}
	for _, section := range []struct {
		name  string
		block string
	}{
		{"grid", resp.Blocks.Grid},
		{"show", resp.Blocks.Show},
		{"form", resp.Blocks.Form},
	} {
		fmt.Fprintln(a.out)
		fmt.Fprintf(a.out, "// %s\n", section.name)
		fmt.Fprint(a.out, strings.TrimRight(section.block, "\r\n"))
		fmt.Fprintln(a.out)
	}
}

func (a *GeneratorAdapter) rel(path string) string {
	if a.root == "" {
		return path
	}
	if rel, err := filepath.Rel(a.root, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}
