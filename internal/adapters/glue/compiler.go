// Package glue generates the binding source from the library's headers.
package glue

import (
	"context"

	"go.trai.ch/prebuild/internal/core/domain"
	"go.trai.ch/prebuild/internal/core/ports"
)

var _ ports.GlueCompiler = (*Compiler)(nil)

// Compiler implements ports.GlueCompiler. It compiles the glue helper
// against the extracted library's headers with the host gcc, then runs the
// helper to write the generated source. The helper executes on the host
// during the build, so it is compiled against the native build's headers
// regardless of the cross-compilation target.
type Compiler struct {
	runner ports.Runner
	layout domain.Layout
	source string
}

// NewCompiler creates a Compiler reading the helper source from the
// consuming project at source.
func NewCompiler(runner ports.Runner, layout domain.Layout, source string) *Compiler {
	return &Compiler{runner: runner, layout: layout, source: source}
}

// Generate compiles the helper, then runs it with the output path.
func (c *Compiler) Generate(ctx context.Context) error {
	compile := domain.NewCommand("gcc",
		"-I", c.layout.IncludeDir(),
		c.source,
		"-o", c.layout.HelperPath(),
	)
	if err := c.runner.Run(ctx, compile); err != nil {
		return err
	}

	run := domain.NewCommand(c.layout.HelperPath(), c.layout.GlueOutputPath())
	return c.runner.Run(ctx, run)
}
