package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/prebuild/internal/adapters/config"
	"go.trai.ch/prebuild/internal/core/domain"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func newLoader(env map[string]string) *config.Loader {
	return &config.Loader{
		Lookup:   lookupFrom(env),
		Filename: filepath.Join(os.TempDir(), "does-not-exist.yaml"),
		HostOS:   "linux",
	}
}

func TestLoader_Load(t *testing.T) {
	loader := newLoader(map[string]string{
		"OUT_DIR": "/build/out",
		"TARGET":  "x86_64-unknown-linux-gnu",
		"CC":      "clang",
	})

	env, err := loader.Load()
	require.NoError(t, err)
	require.Equal(t, "/build/out", env.Root)
	require.Equal(t, "x86_64-unknown-linux-gnu", env.Target)
	require.Equal(t, "linux", env.HostOS)
	require.Equal(t, "clang", env.Compiler)
	require.Equal(t, domain.DefaultLibrary(), env.Library)
}

func TestLoader_CompilerDefaulted(t *testing.T) {
	loader := newLoader(map[string]string{
		"OUT_DIR": "/build/out",
		"TARGET":  "x86_64-unknown-linux-gnu",
	})

	env, err := loader.Load()
	require.NoError(t, err)
	require.Equal(t, "gcc", env.Compiler)
}

func TestLoader_MissingRequired(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"no OUT_DIR", map[string]string{"TARGET": "x86_64-unknown-linux-gnu"}},
		{"no TARGET", map[string]string{"OUT_DIR": "/build/out"}},
		{"empty OUT_DIR", map[string]string{"OUT_DIR": "", "TARGET": "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newLoader(tt.env).Load()
			require.Error(t, err)
			require.True(t, errors.Is(err, domain.ErrMissingEnvironment))
		})
	}
}

func TestLoader_DescriptorOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prebuild.yaml")
	descriptor := `
library:
  name: lua
  version: 5.4.6
  url: https://www.lua.org/ftp/lua-5.4.6.tar.gz
`
	require.NoError(t, os.WriteFile(path, []byte(descriptor), 0o644))

	loader := newLoader(map[string]string{
		"OUT_DIR": "/build/out",
		"TARGET":  "x86_64-unknown-linux-gnu",
	})
	loader.Filename = path

	env, err := loader.Load()
	require.NoError(t, err)
	require.Equal(t, "5.4.6", env.Library.Version)
	require.Equal(t, "lua-5.4.6.tar.gz", env.Library.ArchiveName())
	require.Equal(t, "lua-5.4.6", env.Library.SourceDirName())
	// Unset fields keep their defaults.
	require.Equal(t, "src/liblua.a", env.Library.LibFile)
	require.Equal(t, "glue.rs", env.Library.GlueOutput)
}

func TestLoader_MalformedDescriptor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prebuild.yaml")
	require.NoError(t, os.WriteFile(path, []byte("library: [not: a: mapping"), 0o644))

	loader := newLoader(map[string]string{
		"OUT_DIR": "/build/out",
		"TARGET":  "x86_64-unknown-linux-gnu",
	})
	loader.Filename = path

	_, err := loader.Load()
	require.Error(t, err)
}
