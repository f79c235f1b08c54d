package pipeline

import (
	"github.com/Daru13/reactrust/internal/config"
	"github.com/Daru13/reactrust/internal/logging"
)

// BuildContext carries one build's state through the pipeline. Everything a
// stage needs comes in here; nothing is read from the ambient working
// directory.
type BuildContext struct {
	// Source is the reactive source file being built.
	Source string
	// Output is the name of the executable to produce.
	Output string
	// WorkDir is the directory subprocesses run in and artifacts land in.
	WorkDir string

	Config *config.Config
	Log    logging.Logger

	// ToolchainPath is the library search path, set by the locate stage.
	ToolchainPath string
	// Intermediate is the stage-1 generated source file.
	Intermediate string
	// Executable is the final artifact, set by the link stage.
	Executable string

	// GeneratedFiles records artifacts written during this build.
	GeneratedFiles []string
}

// NewBuildContext creates a BuildContext with a no-op logger; callers
// replace Log when they want build progress surfaced.
func NewBuildContext(source, output, workDir string, cfg *config.Config) *BuildContext {
	return &BuildContext{
		Source:  source,
		Output:  output,
		WorkDir: workDir,
		Config:  cfg,
		Log:     logging.Discard(),
	}
}

// AddFile records an artifact generated during this build.
func (bc *BuildContext) AddFile(path string) {
	bc.GeneratedFiles = append(bc.GeneratedFiles, path)
}
