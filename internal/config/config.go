// Package config loads and validates the reactrust.yaml build configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = "reactrust.yaml"

// Config describes the two-stage toolchain the build pipeline drives.
//
// The downstream toolchain's output naming is an external, possibly-versioned
// contract, so the transient-artifact extensions are configuration rather
// than constants.
type Config struct {
	// Compiler is the reactive-language compiler command (stage 1).
	Compiler string `yaml:"compiler" json:"compiler"`
	// WhereFlag makes Compiler print its install root and exit.
	WhereFlag string `yaml:"where_flag" json:"where_flag"`
	// Linker is the general-purpose compiler/linker command (stage 2).
	Linker string `yaml:"linker" json:"linker"`
	// Libraries is the ordered list of runtime archives passed to the
	// linker. Link order matters; it is never reordered or deduplicated.
	Libraries []string `yaml:"libraries" json:"libraries"`

	Clean CleanConfig `yaml:"clean" json:"clean"`
}

// CleanConfig lists the per-source file extensions treated as transient
// build byproducts.
type CleanConfig struct {
	Extensions []string `yaml:"extensions" json:"extensions"`
}

// Default returns the configuration for a stock ReactiveML toolchain.
func Default() *Config {
	return &Config{
		Compiler:  "rmlc",
		WhereFlag: "-where",
		Linker:    "ocamlc",
		Libraries: []string{"unix.cma", "rmllib.cma"},
		Clean: CleanConfig{
			Extensions: []string{".ml", ".rzi", ".cmi", ".cmo", ".annot"},
		},
	}
}

// Load reads a YAML config from path, applying defaults for absent fields.
// A missing file is not an error: the defaults are returned as-is.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML config bytes over the defaults and validates the
// result against the config schema. Unknown keys are rejected: a misspelled
// key silently falling back to a default would be miserable to debug.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if errs, err := validate(cfg); err != nil {
		return nil, err
	} else if len(errs) > 0 {
		return nil, fmt.Errorf("invalid config: %s", errs[0])
	}
	return cfg, nil
}
