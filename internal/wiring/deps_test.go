package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/prebuild/internal/app"
	_ "go.trai.ch/prebuild/internal/wiring"
)

// The dependency graph must resolve without touching the environment:
// configuration is only read when the app runs.
func TestGraphResolves(t *testing.T) {
	application, _, err := graft.ExecuteFor[*app.App](context.Background())
	require.NoError(t, err)
	require.NotNil(t, application)
}
