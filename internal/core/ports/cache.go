package ports

import "go.trai.ch/prebuild/internal/core/domain"

// ArtifactCache reports whether a pipeline stage's output already exists.
// Presence is decided by filesystem metadata alone: a truncated artifact
// from an aborted run is indistinguishable from a valid one and will be
// trusted. Callers needing stronger guarantees delete the build root
// out-of-band.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type ArtifactCache interface {
	// Has reports whether the marker for kind exists.
	Has(kind domain.ArtifactKind) (bool, error)
}
