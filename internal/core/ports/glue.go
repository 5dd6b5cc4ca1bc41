package ports

import "context"

// GlueCompiler produces the generated binding source. It compiles a small
// helper program against the fetched library's headers, then executes the
// helper to emit source text reflecting constants from those headers. The
// helper runs on the host, so this stage depends on the native build, not
// the target build.
//
//go:generate go run go.uber.org/mock/mockgen -source=glue.go -destination=mocks/mock_glue.go -package=mocks
type GlueCompiler interface {
	// Generate compiles and runs the helper, writing the binding source to
	// the build root.
	Generate(ctx context.Context) error
}
