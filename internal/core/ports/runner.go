// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/prebuild/internal/core/domain"
)

// Runner executes external programs. It is the single point through which
// every external tool invocation passes.
//
//go:generate go run go.uber.org/mock/mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run executes the spec synchronously, blocking until the child process
	// exits. A non-zero exit status is reported as a command failure
	// carrying the full invocation text and the exit status; inability to
	// start the process at all is reported as an IO failure. The underlying
	// exit code is never swallowed or reformatted.
	Run(ctx context.Context, spec domain.CommandSpec) error
}
