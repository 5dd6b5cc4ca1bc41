package ports

import "context"

// Telemetry records pipeline stage progress.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts recording a stage and returns its vertex.
	Record(ctx context.Context, name string) Vertex

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is a single recorded stage.
type Vertex interface {
	// Complete marks the stage as finished, successfully or with an error.
	Complete(err error)

	// Cached marks the stage as skipped because its artifact already exists.
	Cached()
}
