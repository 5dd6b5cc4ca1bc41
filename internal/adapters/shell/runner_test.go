package shell_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/prebuild/internal/adapters/shell"
	"go.trai.ch/prebuild/internal/core/domain"
	"go.trai.ch/prebuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newRunner(t *testing.T) (*shell.Runner, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	var out bytes.Buffer
	return shell.NewRunner(mockLogger).WithStreams(&out, &out), &out
}

func TestRunner_Run_Success(t *testing.T) {
	runner, _ := newRunner(t)

	err := runner.Run(context.Background(), domain.NewCommand("sh", "-c", "exit 0"))
	require.NoError(t, err)
}

func TestRunner_Run_NonZeroExit(t *testing.T) {
	runner, _ := newRunner(t)

	spec := domain.NewCommand("sh", "-c", "exit 3")
	err := runner.Run(context.Background(), spec)

	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrCommandFailed))
	// The error carries the full invocation text.
	require.True(t, strings.Contains(err.Error(), spec.String()),
		"error %q should contain %q", err.Error(), spec.String())
}

func TestRunner_Run_MissingBinary(t *testing.T) {
	runner, _ := newRunner(t)

	err := runner.Run(context.Background(), domain.NewCommand("definitely-not-a-real-binary"))

	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrIO))
	require.False(t, errors.Is(err, domain.ErrCommandFailed))
}

func TestRunner_Run_WorkingDirectory(t *testing.T) {
	runner, _ := newRunner(t)

	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "marker"), []byte("x"), 0o644))

	spec := domain.NewCommand("sh", "-c", "test -f marker").InDir(tmpDir)
	require.NoError(t, runner.Run(context.Background(), spec))
}

func TestRunner_Run_StreamsPassThrough(t *testing.T) {
	runner, out := newRunner(t)

	spec := domain.NewCommand("sh", "-c", "echo hello")
	require.NoError(t, runner.Run(context.Background(), spec))
	require.Contains(t, out.String(), "hello")
}
