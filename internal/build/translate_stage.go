package build

import (
	"context"
	"fmt"
	"strings"

	"github.com/Daru13/reactrust/internal/pipeline"
	"github.com/Daru13/reactrust/internal/runner"
)

// IntermediateExt is the extension of the general-purpose source the
// reactive compiler lowers to.
const IntermediateExt = ".ml"

// TranslateStage runs the reactive compiler on the source file, producing
// the intermediate source plus the compiler's auxiliary interface files.
type TranslateStage struct{}

func (s *TranslateStage) Name() string { return StageTranslate }

func (s *TranslateStage) Execute(ctx context.Context, bc *pipeline.BuildContext) error {
	bc.Log.Debug("invoking reactive compiler", map[string]any{
		"compiler": bc.Config.Compiler,
		"source":   bc.Source,
	})

	res, err := runner.Run(ctx, bc.Config.Compiler, []string{bc.Source}, bc.WorkDir)
	if err != nil {
		return fmt.Errorf("invoking %s: %w", bc.Config.Compiler, err)
	}
	if !res.Success() {
		return &CompileError{
			Stage:       StageTranslate,
			ExitCode:    res.ExitCode,
			Diagnostics: res.Diagnostics(),
		}
	}

	bc.Intermediate = strings.TrimSuffix(bc.Source, SourceExt) + IntermediateExt
	bc.AddFile(bc.Intermediate)
	return nil
}
