// Package shell provides the command runner adapter over os/exec.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"go.trai.ch/prebuild/internal/core/domain"
	"go.trai.ch/prebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Runner = (*Runner)(nil)

// Runner implements ports.Runner using os/exec. Child standard streams are
// passed through to the configured writers; nothing is captured or
// reformatted. Diagnostic output from child tools is routed to stderr so
// stdout stays reserved for the link-directive protocol.
type Runner struct {
	logger ports.Logger
	stdout io.Writer
	stderr io.Writer
}

// NewRunner creates a Runner whose children write to the parent's stderr.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
		stdout: os.Stderr,
		stderr: os.Stderr,
	}
}

// WithStreams overrides the child process output writers. Used by tests.
func (r *Runner) WithStreams(stdout, stderr io.Writer) *Runner {
	r.stdout = stdout
	r.stderr = stderr
	return r
}

// Run executes the spec, blocking until the child exits.
func (r *Runner) Run(ctx context.Context, spec domain.CommandSpec) error {
	r.logger.Info("running: " + spec.String())

	cmd := exec.CommandContext(ctx, spec.Program, spec.Args...) //nolint:gosec // invocation built from configuration
	if spec.Dir != "" {
		cmd.Dir = spec.Dir
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return zerr.With(zerr.Wrap(domain.ErrCommandFailed, spec.String()), "exit_code", exitErr.ExitCode())
	}
	return zerr.With(zerr.Wrap(domain.ErrIO, "failed to start "+spec.String()), "cause", err.Error())
}
