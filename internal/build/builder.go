// Package build orchestrates the two-stage reactive build pipeline:
// translate the source with the reactive compiler, locate the toolchain's
// runtime libraries, then compile and link the intermediate source into an
// executable.
package build

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Daru13/reactrust/internal/config"
	"github.com/Daru13/reactrust/internal/logging"
	"github.com/Daru13/reactrust/internal/pipeline"
	"github.com/Daru13/reactrust/internal/toolchain"
)

// SourceExt is the reactive-language source extension.
const SourceExt = ".rml"

// Target identifies one build: the source file and the executable name.
// A Target is immutable for the duration of a build.
type Target struct {
	Source string
	Output string
}

// NewTarget creates a Target for source, naming the executable after the
// source file's base name.
func NewTarget(source string) Target {
	base := filepath.Base(source)
	return Target{
		Source: source,
		Output: strings.TrimSuffix(base, filepath.Ext(base)),
	}
}

// Builder runs the build pipeline for targets.
type Builder struct {
	Config *config.Config
	// WorkDir is where subprocesses run and the executable lands; empty
	// means the process working directory.
	WorkDir string
	Log     logging.Logger
}

// New creates a Builder using cfg. A nil logger discards build progress.
func New(cfg *config.Config, log logging.Logger) *Builder {
	if log == nil {
		log = logging.Discard()
	}
	return &Builder{Config: cfg, Log: log}
}

// Build runs the full pipeline for target and returns the path of the
// produced executable. Stages are strictly sequential and fail-fast: a
// stage failure aborts the build, and partial artifacts already written by
// the failing tool are left on disk for inspection (cleanup is a separate,
// explicit operation).
//
// The working directory's generated files are owned by the running build.
// Concurrent builds in the same directory are unsupported and may corrupt
// each other's intermediate artifacts.
func (b *Builder) Build(ctx context.Context, target Target) (string, error) {
	info, err := os.Stat(target.Source)
	if err != nil || info.IsDir() {
		return "", &SourceNotFoundError{Path: target.Source}
	}
	if target.Output == "" {
		return "", fmt.Errorf("build target has no output name")
	}

	bc := pipeline.NewBuildContext(target.Source, target.Output, b.WorkDir, b.Config)
	bc.Log = b.Log

	p := pipeline.New(
		&TranslateStage{},
		&LocateStage{Locator: &toolchain.Locator{
			Command: b.Config.Compiler,
			Flag:    b.Config.WhereFlag,
		}},
		&LinkStage{},
	)

	if err := p.Run(ctx, bc); err != nil {
		return "", err
	}

	b.Log.Info("build complete", map[string]any{"executable": bc.Executable})
	return bc.Executable, nil
}
