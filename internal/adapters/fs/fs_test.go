package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/prebuild/internal/adapters/fs"
	"go.trai.ch/prebuild/internal/core/domain"
)

func seedFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))
}

func TestCache_Has(t *testing.T) {
	root := t.TempDir()
	layout := domain.NewLayout(root, domain.DefaultLibrary())
	cache := fs.NewCache(layout)

	for _, kind := range []domain.ArtifactKind{
		domain.ArtifactArchive,
		domain.ArtifactStaticLib,
		domain.ArtifactGlueSource,
	} {
		ok, err := cache.Has(kind)
		require.NoError(t, err)
		require.False(t, ok, "empty root should have no %s", kind)
	}

	seedFile(t, layout.ArchivePath())
	seedFile(t, layout.StaticLibPath())
	seedFile(t, layout.GlueOutputPath())

	for _, kind := range []domain.ArtifactKind{
		domain.ArtifactArchive,
		domain.ArtifactStaticLib,
		domain.ArtifactGlueSource,
	} {
		ok, err := cache.Has(kind)
		require.NoError(t, err)
		require.True(t, ok, "%s should be present", kind)
	}
}

func TestCache_TrustsPresenceOnly(t *testing.T) {
	// An empty file is indistinguishable from a valid artifact.
	root := t.TempDir()
	layout := domain.NewLayout(root, domain.DefaultLibrary())
	cache := fs.NewCache(layout)

	require.NoError(t, os.MkdirAll(filepath.Dir(layout.StaticLibPath()), 0o750))
	require.NoError(t, os.WriteFile(layout.StaticLibPath(), nil, 0o644))

	ok, err := cache.Has(domain.ArtifactStaticLib)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestHasher_FileDigest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "archive.tar.gz")
	require.NoError(t, os.WriteFile(path, []byte("payload"), 0o644))

	hasher := fs.NewHasher()

	first, err := hasher.FileDigest(path)
	require.NoError(t, err)
	require.Len(t, first, 16)

	second, err := hasher.FileDigest(path)
	require.NoError(t, err)
	require.Equal(t, first, second)

	require.NoError(t, os.WriteFile(path, []byte("different"), 0o644))
	third, err := hasher.FileDigest(path)
	require.NoError(t, err)
	require.NotEqual(t, first, third)
}

func TestHasher_FileDigest_Missing(t *testing.T) {
	hasher := fs.NewHasher()
	_, err := hasher.FileDigest(filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, domain.ErrIO)
}
