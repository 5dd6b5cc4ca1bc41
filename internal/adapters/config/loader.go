// Package config provides the configuration loader for prebuild.
package config

import (
	"os"
	"runtime"

	"go.trai.ch/prebuild/internal/core/domain"
	"go.trai.ch/prebuild/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Environment variable names, as set by the host build system.
const (
	EnvOutDir   = "OUT_DIR"
	EnvTarget   = "TARGET"
	EnvCompiler = "CC"
)

// DefaultCompiler is used when no compiler override is present.
const DefaultCompiler = "gcc"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader. It reads the environment exactly
// once through an injected lookup function and optionally merges a yaml
// library descriptor, producing the immutable snapshot every other
// component is handed. Nothing else in the program reads ambient state.
type Loader struct {
	// Lookup resolves an environment variable. Defaults to os.LookupEnv.
	Lookup func(key string) (string, bool)
	// Filename is the optional library descriptor. Defaults to prebuild.yaml
	// in the current directory; a missing file is not an error.
	Filename string
	// HostOS identifies the host. Defaults to runtime.GOOS.
	HostOS string
}

// NewLoader creates a Loader bound to the real process environment.
func NewLoader() *Loader {
	return &Loader{
		Lookup:   os.LookupEnv,
		Filename: "prebuild.yaml",
		HostOS:   runtime.GOOS,
	}
}

// Load constructs the build environment snapshot.
func (l *Loader) Load() (*domain.BuildEnvironment, error) {
	root, ok := l.Lookup(EnvOutDir)
	if !ok || root == "" {
		return nil, zerr.With(domain.ErrMissingEnvironment, "variable", EnvOutDir)
	}

	target, ok := l.Lookup(EnvTarget)
	if !ok || target == "" {
		return nil, zerr.With(domain.ErrMissingEnvironment, "variable", EnvTarget)
	}

	compiler, ok := l.Lookup(EnvCompiler)
	if !ok || compiler == "" {
		compiler = DefaultCompiler
	}

	lib, err := l.loadLibrary()
	if err != nil {
		return nil, err
	}

	return &domain.BuildEnvironment{
		Root:     root,
		Target:   target,
		HostOS:   l.HostOS,
		Compiler: compiler,
		Library:  lib,
	}, nil
}

// loadLibrary merges the optional yaml descriptor over the built-in
// defaults.
func (l *Loader) loadLibrary() (domain.Library, error) {
	lib := domain.DefaultLibrary()

	data, err := os.ReadFile(l.Filename) //nolint:gosec // path is configuration
	if err != nil {
		if os.IsNotExist(err) {
			return lib, nil
		}
		return lib, zerr.With(zerr.Wrap(domain.ErrIO, "failed to read config file"), "path", l.Filename)
	}

	var desc Descriptor
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return lib, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", l.Filename)
	}

	applyOverrides(&lib, desc.Library)
	return lib, nil
}

func applyOverrides(lib *domain.Library, dto LibraryDTO) {
	if dto.Name != "" {
		lib.Name = dto.Name
	}
	if dto.Version != "" {
		lib.Version = dto.Version
	}
	if dto.URL != "" {
		lib.URL = dto.URL
	}
	if dto.LibFile != "" {
		lib.LibFile = dto.LibFile
	}
	if dto.GlueSource != "" {
		lib.GlueSource = dto.GlueSource
	}
	if dto.GlueOutput != "" {
		lib.GlueOutput = dto.GlueOutput
	}
}
