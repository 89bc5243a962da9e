package render

import (
	"fmt"
	"strings"

	"github.com/example/crudgen/internal/models"
)

const (
	formFieldFormat  = "$form->%s('%s', trans('%s'))"
	showFieldFormat  = "$show->field('%s', trans('%s'))"
	gridColumnFormat = "$grid->column('%s', trans('%s'))"
)

// Controller body indentation.
const blockIndent = 8

// Controller stub tokens.
const (
	TokenNamespace      = "DummyNamespace"
	TokenClass          = "DummyClass"
	TokenName           = "DummyName"
	TokenModelNamespace = "DummyModelNamespace"
	TokenTitle          = "DummyTitle"
	TokenModel          = "DummyModel"
	TokenGrid           = "DummyGrid"
	TokenShow           = "DummyShow"
	TokenForm           = "DummyForm"
)

// Blocks holds the three generated field blocks, unindented.
type Blocks struct {
	Grid string
	Show string
	Form string
}

// BuildBlocks renders the grid, show and form blocks for every non-reserved field.
func BuildBlocks(fields []models.FieldSpec, reserved map[string]bool, eol string) Blocks {
	return Blocks{
		Grid: GridBlock(fields, reserved, eol),
		Show: ShowBlock(fields, reserved, eol),
		Form: FormBlock(fields, reserved, eol),
	}
}

// FormBlock renders one form field statement per non-reserved field.
func FormBlock(fields []models.FieldSpec, reserved map[string]bool, eol string) string {
	var b strings.Builder
	for _, f := range fields {
		if reserved[f.Column] {
			continue
		}
		fmt.Fprintf(&b, formFieldFormat, f.Kind, f.Column, f.LabelKey)
		if emitsDefault(f.DefaultLiteral) {
			fmt.Fprintf(&b, "->default(%s)", f.DefaultLiteral)
		}
		b.WriteString(";" + eol)
	}
	return b.String()
}

// ShowBlock renders one show field statement per non-reserved field.
func ShowBlock(fields []models.FieldSpec, reserved map[string]bool, eol string) string {
	var b strings.Builder
	for _, f := range fields {
		if reserved[f.Column] {
			continue
		}
		fmt.Fprintf(&b, showFieldFormat, f.Column, f.LabelKey)
		b.WriteString(";" + eol)
	}
	return b.String()
}

// GridBlock renders one grid column statement per non-reserved field.
func GridBlock(fields []models.FieldSpec, reserved map[string]bool, eol string) string {
	var b strings.Builder
	for _, f := range fields {
		if reserved[f.Column] {
			continue
		}
		fmt.Fprintf(&b, gridColumnFormat, f.Column, f.LabelKey)
		b.WriteString(";" + eol)
	}
	return b.String()
}

// emitsDefault reports whether a literal is non-empty once quotes are stripped.
func emitsDefault(literal string) bool {
	return strings.Trim(literal, `'"`) != ""
}

// ControllerContext returns the placeholder values for the controller stub.
func ControllerContext(res models.ResourceDescriptor, blocks Blocks, eol string) Context {
	return Context{
		TokenNamespace:      res.Namespace,
		TokenClass:          res.ControllerName,
		TokenName:           res.SnakeTitle,
		TokenModelNamespace: res.ModelIdentifier,
		TokenTitle:          res.Title,
		TokenModel:          res.ShortName,
		TokenGrid:           Indent(blocks.Grid, blockIndent, eol),
		TokenShow:           Indent(blocks.Show, blockIndent, eol),
		TokenForm:           Indent(blocks.Form, blockIndent, eol),
	}
}

// BlankContext returns the placeholder values for the model-less controller stub.
func BlankContext(namespace, controller, title string) Context {
	return Context{
		TokenNamespace: namespace,
		TokenClass:     controller,
		TokenTitle:     title,
	}
}
