// Package pipeline implements the staged provisioning state machine.
package pipeline

import (
	"context"
	"os"
	"time"

	"go.trai.ch/prebuild/internal/core/domain"
	"go.trai.ch/prebuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Stage names, recorded as telemetry vertices.
const (
	StageFetch       = "fetch"
	StageExtract     = "extract"
	StageNativeBuild = "build-native"
	StageGlue        = "generate-glue"
	StageTargetBuild = "build-target"
	StageEmit        = "emit-link-metadata"
)

// Pipeline sequences the provisioning stages:
//
//	CheckNativeLib -> {Fetch -> Extract -> BuildNative}? ->
//	CheckGlue -> {Glue}? -> BuildTarget -> EmitLinkMetadata
//
// Expensive stages are gated by the artifact cache; the target build and the
// link-metadata emission run on every invocation. Execution is strictly
// sequential with no backward transition: the first stage failure aborts the
// run and propagates to the caller. Completed artifacts stay on disk for the
// next invocation.
type Pipeline struct {
	env    *domain.BuildEnvironment
	layout domain.Layout
	deps   Deps
}

// Deps collects the collaborators a Pipeline orchestrates.
type Deps struct {
	Cache     ports.ArtifactCache
	Fetcher   ports.Fetcher
	Runner    ports.Runner
	Builder   ports.NativeBuilder
	Glue      ports.GlueCompiler
	Emitter   ports.LinkEmitter
	Hasher    ports.Hasher
	Store     ports.RunStore
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

// New creates a Pipeline for the given environment snapshot.
func New(env *domain.BuildEnvironment, deps Deps) *Pipeline {
	return &Pipeline{
		env:    env,
		layout: domain.NewLayout(env.Root, env.Library),
		deps:   deps,
	}
}

// Run executes the pipeline. Both platform resolutions happen up front so
// an unsupported host or target fails before any subprocess is spawned.
func (p *Pipeline) Run(ctx context.Context) error {
	host, err := domain.FromHostOS(p.env.HostOS)
	if err != nil {
		return err
	}

	target, err := domain.FromTargetTriple(p.env.Target)
	if err != nil {
		return err
	}

	defer func() {
		_ = p.deps.Telemetry.Close()
	}()

	if err := p.ensureNativeLib(ctx, host); err != nil {
		return err
	}

	if err := p.ensureGlue(ctx); err != nil {
		return err
	}

	// The target archive is cheap and toolchain-sensitive, so it is rebuilt
	// on every run.
	if err := p.stage(ctx, StageTargetBuild, func() error {
		if err := p.deps.Builder.Clean(ctx); err != nil {
			return err
		}
		return p.deps.Builder.Build(ctx, target)
	}); err != nil {
		return err
	}

	if err := p.stage(ctx, StageEmit, func() error {
		return p.deps.Emitter.Emit(p.env.Library.Name, p.layout.SearchDir())
	}); err != nil {
		return err
	}

	return p.record(host, target)
}

// ensureNativeLib produces the host-native static archive. The native build
// exists solely so the glue helper can be compiled and run on the host,
// free of cross-compilation concerns.
func (p *Pipeline) ensureNativeLib(ctx context.Context, host domain.Platform) error {
	ok, err := p.deps.Cache.Has(domain.ArtifactStaticLib)
	if err != nil {
		return err
	}
	if ok {
		p.deps.Telemetry.Record(ctx, StageNativeBuild).Cached()
		p.deps.Logger.Info("static library present, skipping native build")
		return nil
	}

	if err := os.MkdirAll(p.layout.Root(), 0o750); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrIO, "failed to create build root"), "path", p.layout.Root())
	}

	if err := p.ensureArchive(ctx); err != nil {
		return err
	}

	return p.stage(ctx, StageNativeBuild, func() error {
		if err := p.deps.Builder.Clean(ctx); err != nil {
			return err
		}
		return p.deps.Builder.Build(ctx, host)
	})
}

// ensureArchive downloads and extracts the source archive. An archive
// already on disk is assumed extracted: extraction only happens on the
// download path.
func (p *Pipeline) ensureArchive(ctx context.Context) error {
	ok, err := p.deps.Cache.Has(domain.ArtifactArchive)
	if err != nil {
		return err
	}
	if ok {
		p.deps.Telemetry.Record(ctx, StageFetch).Cached()
		return nil
	}

	if err := p.stage(ctx, StageFetch, func() error {
		return p.deps.Fetcher.Fetch(ctx, p.env.Library.URL, p.layout.Root())
	}); err != nil {
		return err
	}

	return p.stage(ctx, StageExtract, func() error {
		spec := domain.NewCommand("tar", "xzf", p.env.Library.ArchiveName()).InDir(p.layout.Root())
		return p.deps.Runner.Run(ctx, spec)
	})
}

func (p *Pipeline) ensureGlue(ctx context.Context) error {
	ok, err := p.deps.Cache.Has(domain.ArtifactGlueSource)
	if err != nil {
		return err
	}
	if ok {
		p.deps.Telemetry.Record(ctx, StageGlue).Cached()
		p.deps.Logger.Info("glue source present, skipping generation")
		return nil
	}

	return p.stage(ctx, StageGlue, func() error {
		return p.deps.Glue.Generate(ctx)
	})
}

// record persists the run metadata. The archive digest is best effort: a
// missing or unreadable archive never fails a run that already succeeded.
func (p *Pipeline) record(host, target domain.Platform) error {
	info := domain.RunInfo{
		Target:         p.env.Target,
		HostPlatform:   host.String(),
		TargetPlatform: target.String(),
		Compiler:       p.env.Compiler,
		CompletedAt:    time.Now().UTC(),
	}

	if ok, err := p.deps.Cache.Has(domain.ArtifactArchive); err == nil && ok {
		digest, err := p.deps.Hasher.FileDigest(p.layout.ArchivePath())
		if err != nil {
			p.deps.Logger.Warn("failed to digest archive: " + err.Error())
		} else {
			info.ArchiveDigest = digest
		}
	}

	return p.deps.Store.Put(info)
}

func (p *Pipeline) stage(ctx context.Context, name string, fn func() error) error {
	v := p.deps.Telemetry.Record(ctx, name)
	err := fn()
	v.Complete(err)
	return err
}
