// Package app implements the application layer for probe.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/probe/internal/core/domain"
	"go.trai.ch/probe/internal/core/ports"
	"go.trai.ch/probe/internal/engine/exenv"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	env       *exenv.Environment
	capturer  ports.Capturer
	telemetry ports.Telemetry
	logger    ports.Logger
	jobs      int
}

// New creates a new App instance. jobs bounds concurrent capture processes.
func New(
	env *exenv.Environment,
	capturer ports.Capturer,
	telemetry ports.Telemetry,
	log ports.Logger,
	jobs int,
) *App {
	if jobs < 1 {
		jobs = 1
	}
	return &App{
		env:       env,
		capturer:  capturer,
		telemetry: telemetry,
		logger:    log,
		jobs:      jobs,
	}
}

// Locate returns the source file defining name.
func (a *App) Locate(ctx context.Context, name domain.ProcName) (domain.SourceFile, error) {
	source, ok := a.env.SourceFileOf(ctx, name)
	if !ok {
		return domain.SourceFile{}, notFound(name)
	}
	return source, nil
}

// TypeEnv returns the type environment visible to name.
// A missing type environment terminates the process through the fatal sink.
func (a *App) TypeEnv(ctx context.Context, name domain.ProcName) *domain.TypeEnvironment {
	return a.env.TypeEnvironmentFor(ctx, name)
}

// CFG returns the control-flow graph of the source file defining name.
func (a *App) CFG(ctx context.Context, name domain.ProcName) (*domain.ControlFlowGraph, error) {
	if _, err := a.Locate(ctx, name); err != nil {
		return nil, err
	}
	cfg := a.env.ControlFlowGraphFor(ctx, name)
	if cfg == nil {
		return nil, errors.Join(domain.ErrNoControlFlowGraph,
			zerr.With(zerr.New("no graph for procedure"), "procedure", name.String()))
	}
	return cfg, nil
}

// Body returns the compiled body of name.
func (a *App) Body(ctx context.Context, name domain.ProcName) (*domain.ProcedureBody, error) {
	cfg, err := a.CFG(ctx, name)
	if err != nil {
		return nil, err
	}
	body := a.env.CompiledBodyFor(ctx, name)
	if body == nil {
		cause := zerr.With(zerr.New("procedure is only declared"), "procedure", name.String())
		return nil, errors.Join(domain.ErrNoCompiledBody, zerr.With(cause, "source", cfg.Source.Path()))
	}
	return body, nil
}

// Procedures calls visit for every procedure compiled from the primary source file.
func (a *App) Procedures(visit func(*domain.ProcedureBody)) error {
	primary := a.env.Primary()
	if primary.IsZero() {
		return domain.ErrNoPrimarySource
	}
	if !a.env.ForEachCompiledProcedure(visit) {
		return errors.Join(domain.ErrNoControlFlowGraph,
			zerr.With(zerr.New("no graph for primary source"), "source", primary.Path()))
	}
	return nil
}

// Capture captures the given source files, running up to jobs capture
// processes at once. The first failure cancels the remaining captures.
func (a *App) Capture(ctx context.Context, sources []domain.SourceFile) error {
	if len(sources) == 0 {
		return domain.ErrNoSourcesSpecified
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.jobs)
	for _, source := range sources {
		g.Go(func() error {
			return a.capturer.CaptureSource(ctx, source)
		})
	}
	if err := g.Wait(); err != nil {
		return zerr.Wrap(err, "capture failed")
	}

	a.logger.Info(fmt.Sprintf("captured %d source file(s)", len(sources)))
	return nil
}

// Stats reports the contents of the artifact cache.
func (a *App) Stats() exenv.Stats {
	return a.env.Stats()
}

// Close flushes telemetry.
func (a *App) Close() error {
	return a.telemetry.Close()
}

func notFound(name domain.ProcName) error {
	return errors.Join(domain.ErrProcedureNotFound,
		zerr.With(zerr.New("procedure could not be resolved"), "procedure", name.String()))
}
