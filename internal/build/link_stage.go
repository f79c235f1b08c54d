package build

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/Daru13/reactrust/internal/pipeline"
	"github.com/Daru13/reactrust/internal/runner"
)

// LinkStage compiles the intermediate source and links it against the
// runtime support archives, producing the final executable.
type LinkStage struct{}

func (s *LinkStage) Name() string { return StageLink }

func (s *LinkStage) Execute(ctx context.Context, bc *pipeline.BuildContext) error {
	// Library order is link order; pass it through exactly as configured.
	args := []string{"-o", bc.Output, "-I", bc.ToolchainPath}
	args = append(args, bc.Config.Libraries...)
	args = append(args, bc.Intermediate)

	bc.Log.Debug("invoking linker", map[string]any{
		"linker": bc.Config.Linker,
		"args":   args,
	})

	res, err := runner.Run(ctx, bc.Config.Linker, args, bc.WorkDir)
	if err != nil {
		return fmt.Errorf("invoking %s: %w", bc.Config.Linker, err)
	}
	if !res.Success() {
		return &CompileError{
			Stage:       StageLink,
			ExitCode:    res.ExitCode,
			Diagnostics: res.Diagnostics(),
		}
	}

	bc.Executable = filepath.Join(bc.WorkDir, bc.Output)
	bc.AddFile(bc.Executable)
	return nil
}
