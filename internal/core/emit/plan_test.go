package emit

import (
	"testing"

	"github.com/example/crudgen/internal/core/effects"
)

func TestGeneratePlan(t *testing.T) {
	tests := []struct {
		name        string
		input       PlanInput
		wantEffects []string // "op path"
		wantStatus  []Status
	}{
		{
			name: "nothing exists",
			input: PlanInput{
				Dirs:      []string{"pages/users", "pages/users/[id]"},
				Artifacts: []Artifact{{Path: "pages/users/index.vue"}, {Path: "pages/users/[id]/edit.vue"}},
			},
			wantEffects: []string{
				"mkdir pages/users",
				"mkdir pages/users/[id]",
				"create pages/users/index.vue",
				"create pages/users/[id]/edit.vue",
			},
			wantStatus: []Status{StatusPending, StatusPending},
		},
		{
			name: "everything exists",
			input: PlanInput{
				Dirs:       []string{"pages/users"},
				Artifacts:  []Artifact{{Path: "pages/users/index.vue"}},
				ExistsDirs: map[string]bool{"pages/users": true},
				Exists:     map[string]bool{"pages/users/index.vue": true},
			},
			wantEffects: []string{"log pages/users/index.vue"},
			wantStatus:  []Status{StatusSkipped},
		},
		{
			name: "only one file missing",
			input: PlanInput{
				Dirs: []string{"pages/users", "pages/users/[id]"},
				Artifacts: []Artifact{
					{Path: "pages/users/index.vue"},
					{Path: "pages/users/[id]/index.vue"},
					{Path: "pages/users/create.vue"},
					{Path: "pages/users/[id]/edit.vue"},
				},
				ExistsDirs: map[string]bool{"pages/users": true, "pages/users/[id]": true},
				Exists: map[string]bool{
					"pages/users/index.vue":      true,
					"pages/users/[id]/index.vue": true,
					"pages/users/create.vue":     true,
				},
			},
			wantEffects: []string{
				"log pages/users/index.vue",
				"log pages/users/[id]/index.vue",
				"log pages/users/create.vue",
				"create pages/users/[id]/edit.vue",
			},
			wantStatus:  []Status{StatusSkipped, StatusSkipped, StatusSkipped, StatusPending},
		},
		{
			name: "duplicate targets are written once",
			input: PlanInput{
				Artifacts: []Artifact{{Path: "a.php", Content: "first"}, {Path: "a.php", Content: "second"}},
			},
			wantEffects: []string{"create a.php", "log a.php"},
			wantStatus:  []Status{StatusPending, StatusSkipped},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := GeneratePlan(tt.input)

			var got []string
			for _, eff := range plan.Effects {
				switch e := eff.(type) {
				case effects.FileEffect:
					got = append(got, e.Operation+" "+e.Path)
				case effects.LogEffect:
					got = append(got, "log "+e.Fields["path"].(string))
				default:
					t.Fatalf("unexpected effect type %T", eff)
				}
			}
			if len(got) != len(tt.wantEffects) {
				t.Fatalf("effects = %v, want %v", got, tt.wantEffects)
			}
			for i := range got {
				if got[i] != tt.wantEffects[i] {
					t.Errorf("effects[%d] = %q, want %q", i, got[i], tt.wantEffects[i])
				}
			}

			if len(plan.Outcomes) != len(tt.wantStatus) {
				t.Fatalf("len(outcomes) = %d, want %d", len(plan.Outcomes), len(tt.wantStatus))
			}
			for i, o := range plan.Outcomes {
				if o.Status != tt.wantStatus[i] {
					t.Errorf("outcomes[%d].Status = %q, want %q", i, o.Status, tt.wantStatus[i])
				}
			}
		})
	}
}

func TestSkipLog(t *testing.T) {
	eff := SkipLog(Artifact{Role: "page:edit", Path: "pages/users/[id]/edit.vue"})

	if eff.Level != "info" || eff.Message != "artifact exists, skipped" {
		t.Errorf("SkipLog() = %+v", eff)
	}
	if eff.Fields["role"] != "page:edit" || eff.Fields["path"] != "pages/users/[id]/edit.vue" {
		t.Errorf("SkipLog() fields = %v", eff.Fields)
	}
}

func TestCreateEffectCarriesContent(t *testing.T) {
	plan := GeneratePlan(PlanInput{Artifacts: []Artifact{{Path: "a.php", Content: "<?php"}}})

	fe := plan.Effects[0].(effects.FileEffect)
	if string(fe.Content) != "<?php" || fe.Mode != effects.FileMode {
		t.Errorf("create effect = %+v", fe)
	}
}
