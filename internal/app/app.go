// Package app implements the application layer for prebuild.
package app

import (
	"context"
	"io"
	"os"

	"go.trai.ch/prebuild/internal/adapters/cargo"
	"go.trai.ch/prebuild/internal/adapters/fetch"
	"go.trai.ch/prebuild/internal/adapters/fs"
	"go.trai.ch/prebuild/internal/adapters/glue"
	makeadapter "go.trai.ch/prebuild/internal/adapters/make"
	"go.trai.ch/prebuild/internal/adapters/state"
	"go.trai.ch/prebuild/internal/core/domain"
	"go.trai.ch/prebuild/internal/core/ports"
	"go.trai.ch/prebuild/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App represents the main application logic. The layout-bound collaborators
// (cache, fetcher, builder, glue compiler, emitter, run store) cannot exist
// before the configuration snapshot, so Run constructs them; everything
// configuration-independent is injected.
type App struct {
	configLoader ports.ConfigLoader
	runner       ports.Runner
	logger       ports.Logger
	hasher       ports.Hasher
	telemetry    ports.Telemetry
	out          io.Writer
}

// New creates a new App instance emitting link directives to stdout.
func New(
	loader ports.ConfigLoader,
	runner ports.Runner,
	log ports.Logger,
	hasher ports.Hasher,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		runner:       runner,
		logger:       log,
		hasher:       hasher,
		telemetry:    telemetry,
		out:          os.Stdout,
	}
}

// WithOutput redirects the link-directive output. Used by tests.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// Run loads the configuration, assembles the pipeline, and executes it.
func (a *App) Run(ctx context.Context) error {
	env, err := a.configLoader.Load()
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	host, err := domain.FromHostOS(env.HostOS)
	if err != nil {
		return err
	}

	layout := domain.NewLayout(env.Root, env.Library)

	store, err := state.NewStore(layout.StatePath())
	if err != nil {
		return err
	}

	pipe := pipeline.New(env, pipeline.Deps{
		Cache:     fs.NewCache(layout),
		Fetcher:   fetch.NewFetcher(a.runner, host),
		Runner:    a.runner,
		Builder:   makeadapter.NewBuilder(a.runner, layout, env.Compiler),
		Glue:      glue.NewCompiler(a.runner, layout, env.Library.GlueSource),
		Emitter:   cargo.NewEmitter(a.out),
		Hasher:    a.hasher,
		Store:     store,
		Logger:    a.logger,
		Telemetry: a.telemetry,
	})

	if err := pipe.Run(ctx); err != nil {
		return zerr.Wrap(err, "provisioning failed")
	}

	return nil
}
