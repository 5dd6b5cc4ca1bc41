package telemetry

import (
	"context"

	"go.trai.ch/prebuild/internal/core/ports"
)

var _ ports.Telemetry = (*Noop)(nil)

// Noop is a telemetry implementation that records nothing. Used in tests
// and wherever stage progress reporting is unwanted.
type Noop struct{}

// NewNoop creates a Noop telemetry.
func NewNoop() *Noop {
	return &Noop{}
}

// Record returns a vertex that ignores all updates.
func (n *Noop) Record(_ context.Context, _ string) ports.Vertex {
	return noopVertex{}
}

// Close is a no-op.
func (n *Noop) Close() error {
	return nil
}

type noopVertex struct{}

func (noopVertex) Complete(error) {}
func (noopVertex) Cached()        {}
