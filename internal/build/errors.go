package build

import "fmt"

// Stage names as they appear in failure reports.
const (
	StageTranslate = "translate"
	StageLocate    = "locate"
	StageLink      = "link"
)

// SourceNotFoundError reports a build precondition violation: the source
// file does not exist or is not a regular file. No subprocess has been
// launched when this is returned.
type SourceNotFoundError struct {
	Path string
}

func (e *SourceNotFoundError) Error() string {
	return fmt.Sprintf("source file not found: %s", e.Path)
}

// CompileError reports that a compilation stage exited non-zero. The
// diagnostics are the raw error-stream output of the failing tool; nothing
// here interprets them.
type CompileError struct {
	Stage       string
	ExitCode    int
	Diagnostics string
}

func (e *CompileError) Error() string {
	if e.Diagnostics == "" {
		return fmt.Sprintf("exit status %d", e.ExitCode)
	}
	return fmt.Sprintf("exit status %d: %s", e.ExitCode, e.Diagnostics)
}
