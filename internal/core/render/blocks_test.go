package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/example/crudgen/internal/core/classify"
	"github.com/example/crudgen/internal/models"
)

func sampleFields() []models.FieldSpec {
	return []models.FieldSpec{
		{Column: "id", Kind: models.FieldNumber, LabelKey: "user.id"},
		{Column: "name", Kind: models.FieldText, DefaultLiteral: "'guest'", LabelKey: "user.name"},
		{Column: "is_active", Kind: models.FieldSwitch, DefaultLiteral: "true", LabelKey: "user.is_active"},
		{Column: "created_at", Kind: models.FieldDatetime, DefaultLiteral: "date('Y-m-d H:i:s')", LabelKey: "user.created_at"},
		{Column: "updated_at", Kind: models.FieldDatetime, LabelKey: "user.updated_at"},
		{Column: "deleted_at", Kind: models.FieldDatetime, LabelKey: "user.deleted_at"},
	}
}

func sampleReserved() map[string]bool {
	return models.ModelDescriptor{
		PrimaryKey:       "id",
		CreatedAtColumn:  "created_at",
		UpdatedAtColumn:  "updated_at",
		SoftDeleteColumn: "deleted_at",
	}.ReservedColumns()
}

func TestFormBlock(t *testing.T) {
	got := FormBlock(sampleFields(), sampleReserved(), "\n")
	want := "$form->text('name', trans('user.name'))->default('guest');\n" +
		"$form->switch('is_active', trans('user.is_active'))->default(true);\n"

	if got != want {
		t.Errorf("FormBlock() =\n%s\nwant\n%s", got, want)
	}
}

func TestShowAndGridBlocks(t *testing.T) {
	show := ShowBlock(sampleFields(), sampleReserved(), "\r\n")
	wantShow := "$show->field('name', trans('user.name'));\r\n" +
		"$show->field('is_active', trans('user.is_active'));\r\n"
	if show != wantShow {
		t.Errorf("ShowBlock() = %q, want %q", show, wantShow)
	}

	grid := GridBlock(sampleFields(), sampleReserved(), "\n")
	wantGrid := "$grid->column('name', trans('user.name'));\n" +
		"$grid->column('is_active', trans('user.is_active'));\n"
	if grid != wantGrid {
		t.Errorf("GridBlock() = %q, want %q", grid, wantGrid)
	}
}

func TestFormBlockSkipsEmptyQuotedDefault(t *testing.T) {
	fields := []models.FieldSpec{{Column: "note", Kind: models.FieldText, DefaultLiteral: "''", LabelKey: "user.note"}}

	got := FormBlock(fields, nil, "\n")

	if strings.Contains(got, "->default") {
		t.Errorf("FormBlock() = %q, want no default", got)
	}
}

func TestReservedColumnsNeverRendered(t *testing.T) {
	reservedNames := []string{"id", "created_at", "updated_at", "deleted_at"}
	reserved := sampleReserved()

	// Interleave reserved and regular columns in every rotation.
	for shift := 0; shift < 8; shift++ {
		var fields []models.FieldSpec
		for i := 0; i < 8; i++ {
			n := (i + shift) % 8
			col := fmt.Sprintf("col_%d", n)
			if n < len(reservedNames) {
				col = reservedNames[n]
			}
			fields = append(fields, models.FieldSpec{Column: col, Kind: models.FieldText, LabelKey: "t." + col})
		}

		blocks := BuildBlocks(fields, reserved, "\n")
		for _, out := range []string{blocks.Grid, blocks.Show, blocks.Form} {
			for _, name := range reservedNames {
				if strings.Contains(out, "'"+name+"'") {
					t.Fatalf("shift %d: reserved column %q rendered in %q", shift, name, out)
				}
			}
			if strings.Count(out, ";\n") != 4 {
				t.Fatalf("shift %d: want 4 statements, got %q", shift, out)
			}
		}
	}
}

func TestControllerContext(t *testing.T) {
	res := models.ResourceDescriptor{
		ModelIdentifier: `App\Models\User`,
		ShortName:       "User",
		Title:           "User",
		SnakeTitle:      "user",
		ControllerName:  "UserController",
		Namespace:       `App\Admin\Controllers`,
	}
	stub := "namespace DummyNamespace;\n" +
		"use DummyModelNamespace;\n" +
		"class DummyClass {\n" +
		"    protected function grid() {\n" +
		"DummyGrid\n" +
		"    }\n" +
		"}\n"
	blocks := BuildBlocks(sampleFields(), sampleReserved(), DetectEOL(stub))

	got := Render(stub, ControllerContext(res, blocks, DetectEOL(stub)))
	want := "namespace App\\Admin\\Controllers;\n" +
		"use App\\Models\\User;\n" +
		"class UserController {\n" +
		"    protected function grid() {\n" +
		"        $grid->column('name', trans('user.name'));\n" +
		"        $grid->column('is_active', trans('user.is_active'));\n" +
		"    }\n" +
		"}\n"

	if got != want {
		t.Errorf("rendered controller =\n%s\nwant\n%s", got, want)
	}
}

func TestControllerContext_MultiLineDefaultStaysOnOneLine(t *testing.T) {
	def := "line1\nline2"
	fields := classify.ClassifyAll("note", []models.ColumnDescriptor{
		{Name: "title", NativeType: models.NativeString, Default: &def},
	})

	for _, eol := range []string{"\n", "\r\n"} {
		blocks := BuildBlocks(fields, map[string]bool{}, eol)
		ctx := ControllerContext(models.ResourceDescriptor{ControllerName: "NoteController"}, blocks, eol)

		want := `        $form->text('title', trans('note.title'))->default("line1\nline2");`
		if got := ctx[TokenForm]; got != want {
			t.Errorf("eol %q: form = %q, want %q", eol, got, want)
		}
	}
}
