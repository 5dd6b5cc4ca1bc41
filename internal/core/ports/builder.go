package ports

import (
	"context"

	"go.trai.ch/prebuild/internal/core/domain"
)

// NativeBuilder drives the fetched library's own build system. The build
// system is opaque: it is invoked as a black box with platform- and
// toolchain-specific parameters.
//
//go:generate go run go.uber.org/mock/mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type NativeBuilder interface {
	// Clean removes prior build state from the source tree.
	Clean(ctx context.Context) error

	// Build compiles the static archive for the given platform. On PIC
	// platforms the invocation overrides the compiler flags to request
	// position-independent code; elsewhere it forwards the configured
	// toolchain compiler.
	Build(ctx context.Context, platform domain.Platform) error
}
