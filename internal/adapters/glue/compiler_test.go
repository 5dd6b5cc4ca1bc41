package glue_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/prebuild/internal/adapters/glue"
	"go.trai.ch/prebuild/internal/core/domain"
	"go.trai.ch/prebuild/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestCompiler_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRunner := mocks.NewMockRunner(ctrl)

	layout := domain.NewLayout("/out", domain.DefaultLibrary())

	compile := domain.NewCommand("gcc",
		"-I", filepath.Join("/out", "lua-5.3.0", "src"),
		"src/glue/glue.c",
		"-o", filepath.Join("/out", "glue"),
	)
	run := domain.NewCommand(filepath.Join("/out", "glue"), filepath.Join("/out", "glue.rs"))

	gomock.InOrder(
		mockRunner.EXPECT().Run(gomock.Any(), compile).Return(nil),
		mockRunner.EXPECT().Run(gomock.Any(), run).Return(nil),
	)

	c := glue.NewCompiler(mockRunner, layout, "src/glue/glue.c")
	require.NoError(t, c.Generate(context.Background()))
}

func TestCompiler_CompileFailureSkipsRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRunner := mocks.NewMockRunner(ctrl)

	layout := domain.NewLayout("/out", domain.DefaultLibrary())

	// Only the compile step may run; a second Run call would fail the test.
	mockRunner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(domain.ErrCommandFailed).Times(1)

	c := glue.NewCompiler(mockRunner, layout, "src/glue/glue.c")
	err := c.Generate(context.Background())
	require.ErrorIs(t, err, domain.ErrCommandFailed)
}
