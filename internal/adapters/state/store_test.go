package state_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/prebuild/internal/adapters/state"
	"go.trai.ch/prebuild/internal/core/domain"
)

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prebuild-state.json")

	s, err := state.NewStore(path)
	require.NoError(t, err)

	missing, err := s.Get("x86_64-unknown-linux-gnu")
	require.NoError(t, err)
	require.Nil(t, missing)

	info := domain.RunInfo{
		Target:         "x86_64-unknown-linux-gnu",
		HostPlatform:   "linux",
		TargetPlatform: "linux",
		Compiler:       "gcc",
		ArchiveDigest:  "00000000deadbeef",
		CompletedAt:    time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, s.Put(info))

	got, err := s.Get("x86_64-unknown-linux-gnu")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, info, *got)
}

func TestStore_SurvivesReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prebuild-state.json")

	first, err := state.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Put(domain.RunInfo{
		Target:   "x86_64-pc-windows-gnu",
		Compiler: "x86_64-w64-mingw32-gcc",
	}))

	second, err := state.NewStore(path)
	require.NoError(t, err)

	got, err := second.Get("x86_64-pc-windows-gnu")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "x86_64-w64-mingw32-gcc", got.Compiler)
}

func TestStore_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "prebuild-state.json")

	s, err := state.NewStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Put(domain.RunInfo{Target: "t"}))

	reloaded, err := state.NewStore(path)
	require.NoError(t, err)
	got, err := reloaded.Get("t")
	require.NoError(t, err)
	require.NotNil(t, got)
}
