package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/prebuild/internal/core/domain"
)

func TestCommandSpec_String(t *testing.T) {
	spec := domain.NewCommand("make", "linux", "MYCFLAGS=-fPIC")
	require.Equal(t, "make linux MYCFLAGS=-fPIC", spec.String())

	bare := domain.NewCommand("make")
	require.Equal(t, "make", bare.String())
}

func TestCommandSpec_InDir(t *testing.T) {
	spec := domain.NewCommand("make", "clean")
	inDir := spec.InDir("/tmp/build")

	require.Equal(t, "/tmp/build", inDir.Dir)
	// The original spec is a value and stays untouched.
	require.Empty(t, spec.Dir)
}

func TestDefaultLibrary(t *testing.T) {
	lib := domain.DefaultLibrary()

	require.Equal(t, "lua", lib.Name)
	require.Equal(t, "5.3.0", lib.Version)
	require.Equal(t, "lua-5.3.0.tar.gz", lib.ArchiveName())
	require.Equal(t, "lua-5.3.0", lib.SourceDirName())
}
