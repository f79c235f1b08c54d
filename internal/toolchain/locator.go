// Package toolchain discovers where the reactive compiler's runtime support
// libraries are installed.
package toolchain

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Daru13/reactrust/internal/runner"
)

// UnavailableError reports that the toolchain install root could not be
// discovered. Toolchain absence is not transient, so it is never retried.
type UnavailableError struct {
	Command string
	Detail  string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("toolchain unavailable: %s: %s", e.Command, e.Detail)
}

// Locator resolves the library search path for the second compilation stage
// by asking the reactive compiler for its own install root.
//
// The result is cached after the first call, so one Locator must not outlive
// a single build invocation.
type Locator struct {
	// Command is the reactive compiler, e.g. "rmlc".
	Command string
	// Flag makes Command print its install root on stdout and exit,
	// e.g. "-where".
	Flag string

	once sync.Once
	path string
	err  error
}

// Locate runs the query subprocess and returns its trimmed stdout. The
// subprocess runs at most once; later calls return the cached result.
func (l *Locator) Locate(ctx context.Context) (string, error) {
	l.once.Do(func() {
		res, err := runner.Run(ctx, l.Command, []string{l.Flag}, "")
		if err != nil {
			l.err = &UnavailableError{Command: l.Command, Detail: err.Error()}
			return
		}
		if !res.Success() {
			l.err = &UnavailableError{
				Command: l.Command,
				Detail:  fmt.Sprintf("%s exited with status %d: %s", l.Flag, res.ExitCode, res.Diagnostics()),
			}
			return
		}
		path := strings.TrimSpace(res.Stdout)
		if path == "" {
			l.err = &UnavailableError{Command: l.Command, Detail: l.Flag + " printed no install root"}
			return
		}
		l.path = path
	})
	return l.path, l.err
}
