package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"go.uber.org/zap"

	"github.com/example/crudgen/internal/core/effects"
	"github.com/example/crudgen/internal/core/emit"
	"github.com/example/crudgen/internal/ctxutil"
	"github.com/example/crudgen/internal/models"
	"github.com/example/crudgen/internal/ports/secondary"
)

// Emitter writes generated artifacts without ever overwriting existing files.
type Emitter struct {
	store    secondary.ArtifactStore
	executor EffectExecutor
	logger   *zap.Logger
}

// NewEmitter creates a new Emitter.
func NewEmitter(store secondary.ArtifactStore, executor EffectExecutor, logger *zap.Logger) *Emitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Emitter{store: store, executor: executor, logger: logger}
}

// Emit ensures dirs exist, then creates each artifact that is not already present.
// A file that appears between the existence check and the write is reported as skipped.
func (e *Emitter) Emit(ctx context.Context, dirs []string, artifacts []emit.Artifact) ([]emit.Outcome, error) {
	input, err := e.fetchPlanInput(ctx, dirs, artifacts)
	if err != nil {
		return nil, err
	}

	plan := emit.GeneratePlan(input)
	log := e.logger
	if runID := ctxutil.RunIDFromContext(ctx); runID != "" {
		log = log.With(zap.String("run_id", runID))
	}

	pending := make(map[string]int, len(plan.Outcomes))
	for i, o := range plan.Outcomes {
		if o.Status == emit.StatusPending {
			pending[o.Path] = i
		}
	}

	for _, eff := range plan.Effects {
		fe, ok := eff.(effects.FileEffect)
		if !ok || fe.Operation != effects.OpCreate {
			if err := e.executor.Execute(ctx, []effects.Effect{eff}); err != nil {
				return plan.Outcomes, &models.GenerationError{Op: "mkdir", Path: pathOf(eff), Err: err}
			}
			continue
		}

		i := pending[fe.Path]
		err := e.executor.Execute(ctx, []effects.Effect{fe})
		switch {
		case err == nil:
			plan.Outcomes[i].Status = emit.StatusCreated
			log.Debug("artifact created", zap.String("role", plan.Outcomes[i].Role), zap.String("path", fe.Path))
		case errors.Is(err, fs.ErrExist):
			plan.Outcomes[i].Status = emit.StatusSkipped
			_ = e.executor.Execute(ctx, []effects.Effect{emit.SkipLog(plan.Outcomes[i].Artifact)})
		default:
			return plan.Outcomes[:i], &models.GenerationError{Op: "write", Path: fe.Path, Err: err}
		}
	}

	return plan.Outcomes, nil
}

func (e *Emitter) fetchPlanInput(ctx context.Context, dirs []string, artifacts []emit.Artifact) (emit.PlanInput, error) {
	input := emit.PlanInput{
		Dirs:       dirs,
		Artifacts:  artifacts,
		ExistsDirs: make(map[string]bool, len(dirs)),
		Exists:     make(map[string]bool, len(artifacts)),
	}

	for _, dir := range dirs {
		exists, err := e.store.Exists(ctx, dir)
		if err != nil {
			return input, fmt.Errorf("failed to check directory %s: %w", dir, err)
		}
		input.ExistsDirs[dir] = exists
	}
	for _, a := range artifacts {
		exists, err := e.store.Exists(ctx, a.Path)
		if err != nil {
			return input, fmt.Errorf("failed to check %s: %w", a.Path, err)
		}
		input.Exists[a.Path] = exists
	}

	return input, nil
}

func pathOf(eff effects.Effect) string {
	if fe, ok := eff.(effects.FileEffect); ok {
		return fe.Path
	}
	return ""
}
