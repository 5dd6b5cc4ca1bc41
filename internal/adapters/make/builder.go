// Package make drives the fetched library's own make-based build system.
package make

import (
	"context"

	"go.trai.ch/prebuild/internal/core/domain"
	"go.trai.ch/prebuild/internal/core/ports"
)

var _ ports.NativeBuilder = (*Builder)(nil)

// Builder implements ports.NativeBuilder by invoking make in the extracted
// source tree. The Makefile's internals are opaque: the platform tag is the
// make target, and the only parameters passed are the PIC flag override or
// the toolchain compiler.
type Builder struct {
	runner   ports.Runner
	layout   domain.Layout
	compiler string
}

// NewBuilder creates a Builder for the source tree described by layout,
// forwarding compiler on non-PIC platforms.
func NewBuilder(runner ports.Runner, layout domain.Layout, compiler string) *Builder {
	return &Builder{runner: runner, layout: layout, compiler: compiler}
}

// Clean runs "make clean" in the source tree.
func (b *Builder) Clean(ctx context.Context) error {
	spec := domain.NewCommand("make", "clean").InDir(b.layout.SourceDir())
	return b.runner.Run(ctx, spec)
}

// Build runs "make <platform>" in the source tree. PIC platforms get
// MYCFLAGS=-fPIC because the static archive is later linked into a
// dynamically loaded artifact; the others get CC=<compiler>.
func (b *Builder) Build(ctx context.Context, platform domain.Platform) error {
	var spec domain.CommandSpec
	if platform.NeedsPIC() {
		spec = domain.NewCommand("make", platform.String(), "MYCFLAGS=-fPIC")
	} else {
		spec = domain.NewCommand("make", platform.String(), "CC="+b.compiler)
	}
	return b.runner.Run(ctx, spec.InDir(b.layout.SourceDir()))
}
