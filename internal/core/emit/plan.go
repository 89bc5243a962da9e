// Package emit plans the create-if-absent emission of generated artifacts.
// This is part of the Functional Core - all existence checks are pre-fetched
// by the caller and passed in.
package emit

import (
	"github.com/example/crudgen/internal/core/effects"
)

// Status is the outcome of emitting one artifact.
type Status string

const (
	StatusCreated Status = "created"
	StatusSkipped Status = "skipped" // Target already existed
	StatusPending Status = "pending" // Planned, not yet written
)

// Artifact is a generated file identified by its target path.
type Artifact struct {
	Role    string // "controller", "translation:en", "page:index", ...
	Path    string
	Content string
}

// Outcome pairs an artifact with what happened to it.
type Outcome struct {
	Artifact
	Status Status
}

// PlanInput contains pre-fetched data for emission planning.
type PlanInput struct {
	Dirs       []string        // Directories that must exist before writing
	Artifacts  []Artifact      // In emission order
	ExistsDirs map[string]bool // Directory path -> exists
	Exists     map[string]bool // Artifact path -> exists
}

// Plan describes the effects needed to emit artifacts without overwriting.
type Plan struct {
	Effects  []effects.Effect // mkdir effects first, then a create or a skip log per artifact
	Outcomes []Outcome        // One per artifact, in input order
}

// GeneratePlan creates an emission plan.
// This is a pure function - all input data must be pre-fetched.
func GeneratePlan(input PlanInput) Plan {
	var plan Plan

	for _, dir := range input.Dirs {
		if !input.ExistsDirs[dir] {
			plan.Effects = append(plan.Effects, effects.Mkdir(dir))
		}
	}

	seen := make(map[string]bool, len(input.Artifacts))
	for _, a := range input.Artifacts {
		if input.Exists[a.Path] || seen[a.Path] {
			plan.Effects = append(plan.Effects, SkipLog(a))
			plan.Outcomes = append(plan.Outcomes, Outcome{Artifact: a, Status: StatusSkipped})
			continue
		}
		seen[a.Path] = true
		plan.Effects = append(plan.Effects, effects.Create(a.Path, []byte(a.Content)))
		plan.Outcomes = append(plan.Outcomes, Outcome{Artifact: a, Status: StatusPending})
	}

	return plan
}

// SkipLog returns the effect reporting that a is left untouched.
func SkipLog(a Artifact) effects.LogEffect {
	return effects.LogEffect{
		Level:   "info",
		Message: "artifact exists, skipped",
		Fields:  map[string]any{"role": a.Role, "path": a.Path},
	}
}
