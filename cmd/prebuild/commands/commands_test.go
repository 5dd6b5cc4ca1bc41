package commands_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/prebuild/cmd/prebuild/commands"
	"go.trai.ch/prebuild/internal/adapters/telemetry"
	"go.trai.ch/prebuild/internal/app"
	"go.trai.ch/prebuild/internal/build"
	"go.trai.ch/prebuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newCLI(t *testing.T, loader *mocks.MockConfigLoader) (*commands.CLI, *bytes.Buffer) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any()).AnyTimes()

	if loader == nil {
		loader = mocks.NewMockConfigLoader(ctrl)
	}

	a := app.New(loader, mocks.NewMockRunner(ctrl), logger, mocks.NewMockHasher(ctrl), telemetry.NewNoop())

	cli := commands.New(a)
	var out bytes.Buffer
	cli.SetOutput(&out, &out)
	return cli, &out
}

func TestVersionCommand(t *testing.T) {
	cli, out := newCLI(t, nil)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	require.Equal(t, build.Version, strings.TrimSpace(out.String()))
}

func TestRunCommand_PropagatesFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loadErr := errors.New("OUT_DIR unset")
	loader.EXPECT().Load().Return(nil, loadErr)

	cli, _ := newCLI(t, loader)
	cli.SetArgs([]string{"run"})

	err := cli.Execute(context.Background())
	require.ErrorIs(t, err, loadErr)
}

func TestRunCommand_RejectsArguments(t *testing.T) {
	cli, _ := newCLI(t, nil)
	cli.SetArgs([]string{"run", "extra"})

	require.Error(t, cli.Execute(context.Background()))
}
