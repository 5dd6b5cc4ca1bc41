// Package telemetry provides the Progrock implementation of the stage
// telemetry adapter.
package telemetry

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/prebuild/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry using progrock vertices, one per
// pipeline stage.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts recording a stage vertex.
func (r *Recorder) Record(_ context.Context, name string) ports.Vertex {
	d := digest.FromString(name)
	return &Vertex{vertex: r.rec.Vertex(d, name)}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
