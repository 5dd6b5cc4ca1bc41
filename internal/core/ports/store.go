package ports

import "go.trai.ch/prebuild/internal/core/domain"

// RunStore persists run metadata across pipeline invocations.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RunStore interface {
	// Get retrieves the recorded info for a target. Returns nil, nil if not
	// found.
	Get(target string) (*domain.RunInfo, error)

	// Put stores the run info.
	Put(info domain.RunInfo) error
}
