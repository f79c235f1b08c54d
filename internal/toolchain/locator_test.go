package toolchain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755); err != nil {
		t.Fatalf("writing script: %v", err)
	}
	return path
}

func TestLocate_TrimsOutput(t *testing.T) {
	dir := t.TempDir()
	prog := writeScript(t, dir, "rmlc", `echo "/opt/rml/lib"`)

	loc := &Locator{Command: prog, Flag: "-where"}
	path, err := loc.Locate(context.Background())
	if err != nil {
		t.Fatalf("Locate() error: %v", err)
	}
	if path != "/opt/rml/lib" {
		t.Errorf("path: got %q, want %q", path, "/opt/rml/lib")
	}
}

func TestLocate_RunsQueryOnce(t *testing.T) {
	dir := t.TempDir()
	counter := filepath.Join(dir, "calls")
	prog := writeScript(t, dir, "rmlc", `echo x >> `+counter+`
echo "/opt/rml/lib"`)

	loc := &Locator{Command: prog, Flag: "-where"}
	for i := 0; i < 3; i++ {
		if _, err := loc.Locate(context.Background()); err != nil {
			t.Fatalf("Locate() call %d error: %v", i, err)
		}
	}

	data, err := os.ReadFile(counter)
	if err != nil {
		t.Fatalf("reading counter: %v", err)
	}
	if n := strings.Count(string(data), "x"); n != 1 {
		t.Errorf("query subprocess ran %d times, want 1", n)
	}
}

func TestLocate_NonZeroExit(t *testing.T) {
	dir := t.TempDir()
	prog := writeScript(t, dir, "rmlc", `echo "not installed" >&2; exit 2`)

	loc := &Locator{Command: prog, Flag: "-where"}
	_, err := loc.Locate(context.Background())

	var unavailable *UnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected UnavailableError, got %v", err)
	}
	if !strings.Contains(unavailable.Detail, "not installed") {
		t.Errorf("detail should carry diagnostics, got %q", unavailable.Detail)
	}
}

func TestLocate_EmptyOutput(t *testing.T) {
	dir := t.TempDir()
	prog := writeScript(t, dir, "rmlc", `exit 0`)

	loc := &Locator{Command: prog, Flag: "-where"}
	_, err := loc.Locate(context.Background())

	var unavailable *UnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected UnavailableError, got %v", err)
	}
}

func TestLocate_MissingCompiler(t *testing.T) {
	dir := t.TempDir()

	loc := &Locator{Command: filepath.Join(dir, "no-such-rmlc"), Flag: "-where"}
	_, err := loc.Locate(context.Background())

	var unavailable *UnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected UnavailableError, got %v", err)
	}
}
