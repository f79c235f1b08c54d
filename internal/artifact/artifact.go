// Package artifact removes the transient files a build leaves behind.
package artifact

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Manager sweeps generated build files from a directory. Removal is keyed
// off the reactive sources actually present: only files sharing a source's
// base name and carrying a recognized transient extension (or naming the
// built executable) are ever touched. An allow-list, not a deny-list —
// unrelated user files are never removed.
type Manager struct {
	// SourceExt identifies the source files the sweep is keyed off.
	SourceExt string
	// Extensions are the transient-byproduct extensions removed per source.
	Extensions []string
}

// New creates a Manager recognizing the given source extension and
// transient extensions.
func New(sourceExt string, extensions []string) *Manager {
	return &Manager{SourceExt: sourceExt, Extensions: extensions}
}

// Clean removes every transient artifact and built executable in dir and
// returns the number of files removed. Missing files are not an error;
// running Clean twice is safe and the second run removes nothing.
func (m *Manager) Clean(dir string) (int, error) {
	sources, err := filepath.Glob(filepath.Join(dir, "*"+m.SourceExt))
	if err != nil {
		return 0, fmt.Errorf("listing sources in %s: %w", dir, err)
	}

	removed := 0
	var errs []error
	for _, src := range sources {
		base := strings.TrimSuffix(src, m.SourceExt)

		candidates := make([]string, 0, len(m.Extensions)+1)
		for _, ext := range m.Extensions {
			candidates = append(candidates, base+ext)
		}
		// The executable named after the source is a build product too.
		candidates = append(candidates, base)

		for _, path := range candidates {
			info, err := os.Stat(path)
			if err != nil || info.IsDir() {
				continue
			}
			if err := os.Remove(path); err != nil {
				errs = append(errs, err)
				continue
			}
			removed++
		}
	}
	return removed, errors.Join(errs...)
}
