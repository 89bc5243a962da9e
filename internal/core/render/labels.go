package render

import (
	"fmt"
	"strings"

	"github.com/example/crudgen/internal/core/naming"
	"github.com/example/crudgen/internal/models"
)

// Translation stub tokens.
const (
	TokenLowerTitles = "DummyLowerTitles"
	TokenLabels      = "DummyLabels"
)

const labelIndent = 4

// LabelLines renders an aligned `'column' => 'Label',` line per column,
// reserved columns included.
func LabelLines(columns []string, eol string) string {
	width := 0
	for _, col := range columns {
		width = max(width, len(col)+2)
	}

	var b strings.Builder
	for _, col := range columns {
		label := naming.Headline(naming.ToSnakeCase(col))
		fmt.Fprintf(&b, "%-*s => '%s',%s", width, "'"+col+"'", strings.ReplaceAll(label, "'", `\'`), eol)
	}
	return b.String()
}

// TranslationContext returns the placeholder values for the translation stub.
func TranslationContext(res models.ResourceDescriptor, fields []models.FieldSpec, eol string) Context {
	columns := make([]string, 0, len(fields))
	for _, f := range fields {
		columns = append(columns, f.Column)
	}

	return Context{
		TokenTitle:       res.TranslationTitle,
		TokenLowerTitles: res.PluralTitleLower,
		TokenLabels:      Indent(LabelLines(columns, eol), labelIndent, eol),
	}
}

// LabelFile renders the translation file for a resource.
func LabelFile(stub string, res models.ResourceDescriptor, fields []models.FieldSpec) string {
	return Render(stub, TranslationContext(res, fields, DetectEOL(stub)))
}
