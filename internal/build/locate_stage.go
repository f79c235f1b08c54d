package build

import (
	"context"

	"github.com/Daru13/reactrust/internal/pipeline"
	"github.com/Daru13/reactrust/internal/toolchain"
)

// LocateStage resolves the toolchain library search path consumed by the
// link stage. It runs only after translation has succeeded, so a missing
// toolchain is never reported for a source that would not compile anyway.
type LocateStage struct {
	Locator *toolchain.Locator
}

func (s *LocateStage) Name() string { return StageLocate }

func (s *LocateStage) Execute(ctx context.Context, bc *pipeline.BuildContext) error {
	path, err := s.Locator.Locate(ctx)
	if err != nil {
		return err
	}
	bc.ToolchainPath = path
	bc.Log.Debug("toolchain located", map[string]any{"path": path})
	return nil
}
