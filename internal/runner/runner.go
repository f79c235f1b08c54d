// Package runner executes a single external toolchain step and classifies
// its outcome.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Result is the classified outcome of one subprocess invocation.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the program exited with status zero.
func (r Result) Success() bool { return r.ExitCode == 0 }

// Diagnostics returns the program's error-stream output, trimmed, falling
// back to its stdout when the error stream is empty.
func (r Result) Diagnostics() string {
	if s := strings.TrimSpace(r.Stderr); s != "" {
		return s
	}
	return strings.TrimSpace(r.Stdout)
}

// Run spawns program with args in dir and blocks until it exits, capturing
// both output streams. A non-zero exit status is reported through
// Result.ExitCode with a nil error; a non-nil error means the program could
// not be run at all (not found, not executable, context cancelled).
//
// No timeout is imposed here: a hung subprocess blocks the caller until the
// context is cancelled. Callers wanting time-bounded runs pass a deadline
// context.
func Run(ctx context.Context, program string, args []string, dir string) (Result, error) {
	cmd := exec.CommandContext(ctx, program, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}

	if err == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}

	res.ExitCode = -1
	return res, fmt.Errorf("running %s: %w", program, err)
}
