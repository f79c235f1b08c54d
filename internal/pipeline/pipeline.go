// Package pipeline provides the sequential stage pipeline the build is
// composed of.
package pipeline

import (
	"context"
	"fmt"
)

// Stage is one external-tool step of the build.
type Stage interface {
	Name() string
	Execute(ctx context.Context, bc *BuildContext) error
}

// Pipeline runs stages strictly in order.
type Pipeline struct {
	stages []Stage
}

// New creates a Pipeline from the given stages.
func New(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

// Run executes each stage sequentially, stopping at the first failure. No
// stage is attempted once an earlier one fails; partial outputs already
// written by a failed stage are left on disk.
func (p *Pipeline) Run(ctx context.Context, bc *BuildContext) error {
	for _, s := range p.stages {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("build cancelled before stage %s: %w", s.Name(), err)
		}
		bc.Log.Debug("running stage", map[string]any{"stage": s.Name()})
		if err := s.Execute(ctx, bc); err != nil {
			return fmt.Errorf("stage %s: %w", s.Name(), err)
		}
	}
	return nil
}
