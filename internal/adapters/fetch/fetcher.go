// Package fetch provides the archive download adapter.
package fetch

import (
	"context"

	"go.trai.ch/prebuild/internal/core/domain"
	"go.trai.ch/prebuild/internal/core/ports"
)

var _ ports.Fetcher = (*Fetcher)(nil)

// Fetcher downloads archives with whichever transfer tool the host
// provides: wget on Linux and Windows, fetch on the BSDs, curl on macOS.
// The dispatch is static per host; it is unrelated to the target triple.
// No retry, checksum, or resumption logic exists here.
type Fetcher struct {
	runner ports.Runner
	host   domain.Platform
}

// NewFetcher creates a Fetcher for the given host platform.
func NewFetcher(runner ports.Runner, host domain.Platform) *Fetcher {
	return &Fetcher{runner: runner, host: host}
}

// Fetch downloads url into dir.
func (f *Fetcher) Fetch(ctx context.Context, url, dir string) error {
	var spec domain.CommandSpec
	switch f.host {
	case domain.PlatformFreeBSD, domain.PlatformBSD:
		spec = domain.NewCommand("fetch", url)
	case domain.PlatformMacOSX:
		spec = domain.NewCommand("curl", "-O", url)
	default:
		spec = domain.NewCommand("wget", url)
	}
	return f.runner.Run(ctx, spec.InDir(dir))
}
