package exenv

import (
	"context"
	"errors"

	"go.trai.ch/probe/internal/core/domain"
	"go.trai.ch/zerr"
)

// GlobalTypeEnv returns the global type environment. A load failure is fatal.
func (e *Environment) GlobalTypeEnv() *domain.TypeEnvironment {
	tenv, err := e.global.Get()
	if err != nil {
		e.fatal(err)
	}
	return tenv
}

// TypeEnvironmentFor returns the type environment visible to name.
//
// Procedures of a global-namespace language are served from the global type
// environment without touching the index. For all others, failing to resolve
// the procedure or to load its type environment is fatal: the analysis cannot
// make sound type assumptions without it.
func (e *Environment) TypeEnvironmentFor(ctx context.Context, name domain.ProcName) *domain.TypeEnvironment {
	if name.UsesGlobalTypeEnvironment() {
		return e.GlobalTypeEnv()
	}

	fa := e.Resolve(ctx, name)
	if fa == nil {
		cause := zerr.With(zerr.New("procedure could not be resolved to a source file"), "procedure", name.String())
		e.fatal(errors.Join(domain.ErrTypeEnvironmentMissing, cause))
		return nil
	}

	tenv := fa.TypeEnv(e.loadTypeEnv, e.logger)
	if tenv == nil {
		var cause error = zerr.New("type environment blob could not be loaded")
		cause = zerr.With(cause, "procedure", name.String())
		cause = zerr.With(cause, "source", fa.Source().Path())
		cause = zerr.With(cause, "path", fa.TypeEnvPath())
		e.fatal(errors.Join(domain.ErrTypeEnvironmentMissing, cause))
		return nil
	}
	return tenv
}

// ControlFlowGraphFor returns the control-flow graph of the source file
// defining name, or nil if it cannot be resolved or loaded.
func (e *Environment) ControlFlowGraphFor(ctx context.Context, name domain.ProcName) *domain.ControlFlowGraph {
	fa := e.Resolve(ctx, name)
	if fa == nil {
		return nil
	}
	return fa.CFG(e.cfgs, e.logger)
}

// CompiledBodyFor returns the compiled body of name, or nil when the graph is
// unavailable or the procedure is only declared in it.
func (e *Environment) CompiledBodyFor(ctx context.Context, name domain.ProcName) *domain.ProcedureBody {
	cfg := e.ControlFlowGraphFor(ctx, name)
	if cfg == nil {
		return nil
	}
	body, ok := cfg.Lookup(name)
	if !ok {
		e.logger.Debug("procedure has no compiled body", "procedure", name.String(), "source", cfg.Source.Path())
		return nil
	}
	return body
}

// ForEachCompiledProcedure calls visit once for every procedure compiled from
// the primary source file. The graph is loaded afresh and is not memoized.
// It reports whether a graph was available.
func (e *Environment) ForEachCompiledProcedure(visit func(*domain.ProcedureBody)) bool {
	if e.primary.IsZero() {
		e.logger.Debug("no primary source file set")
		return false
	}

	cfg, err := e.cfgs.Load(e.primary)
	if err != nil {
		e.logger.Debug("failed to load control-flow graph", "source", e.primary.Path(), "error", err)
		return false
	}
	if cfg == nil {
		return false
	}

	for body := range cfg.Procedures() {
		visit(body)
	}
	return true
}
