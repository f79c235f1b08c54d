package cmd

import (
	"os"
	"testing"

	"github.com/Daru13/reactrust/internal/config"
)

func TestRunInit_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	oldDefaults := initDefaults
	initDefaults = true
	defer func() { initDefaults = oldDefaults }()

	if err := runInit(initCmd, nil); err != nil {
		t.Fatalf("runInit() error: %v", err)
	}

	cfg, err := config.Load(config.DefaultFileName)
	if err != nil {
		t.Fatalf("written config does not load: %v", err)
	}
	if cfg.Compiler != "rmlc" {
		t.Errorf("compiler: got %q, want %q", cfg.Compiler, "rmlc")
	}
}

func TestRunInit_RefusesOverwrite(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := os.WriteFile(config.DefaultFileName, []byte("compiler: rmlc\n"), 0644); err != nil {
		t.Fatalf("writing existing config: %v", err)
	}

	oldDefaults, oldForce := initDefaults, initForce
	initDefaults, initForce = true, false
	defer func() { initDefaults, initForce = oldDefaults, oldForce }()

	if err := runInit(initCmd, nil); err == nil {
		t.Fatal("expected error when config already exists")
	}
}

func TestRunInit_ForceOverwrites(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := os.WriteFile(config.DefaultFileName, []byte("compiler: old\n"), 0644); err != nil {
		t.Fatalf("writing existing config: %v", err)
	}

	oldDefaults, oldForce := initDefaults, initForce
	initDefaults, initForce = true, true
	defer func() { initDefaults, initForce = oldDefaults, oldForce }()

	if err := runInit(initCmd, nil); err != nil {
		t.Fatalf("runInit() error: %v", err)
	}

	cfg, err := config.Load(config.DefaultFileName)
	if err != nil {
		t.Fatalf("written config does not load: %v", err)
	}
	if cfg.Compiler != "rmlc" {
		t.Errorf("compiler: got %q, want %q", cfg.Compiler, "rmlc")
	}
}
