package exenv

import (
	"context"

	"go.trai.ch/probe/internal/core/domain"
)

// Resolve returns the artifacts of the source file defining name, or nil when
// the owning source file cannot be determined.
//
// A successful resolution is memoized: later calls for the same procedure
// neither consult the attribute store nor trigger capture again.
func (e *Environment) Resolve(ctx context.Context, name domain.ProcName) *FileArtifacts {
	if fa, ok := e.index.Procedure(name); ok {
		return fa
	}

	source, ok := e.sourceOf(ctx, name)
	if !ok {
		return nil
	}

	return e.index.bind(name, source, func() *FileArtifacts {
		return newFileArtifacts(source, e.layout, e.tenvs)
	})
}

// SourceFileOf returns the source file defining name.
func (e *Environment) SourceFileOf(ctx context.Context, name domain.ProcName) (domain.SourceFile, bool) {
	fa := e.Resolve(ctx, name)
	if fa == nil {
		return domain.SourceFile{}, false
	}
	return fa.Source(), true
}

// sourceOf consults the attribute store and, when enabled, on-demand capture.
func (e *Environment) sourceOf(ctx context.Context, name domain.ProcName) (domain.SourceFile, bool) {
	attrs, err := e.attrs.Lookup(name)
	if err != nil {
		e.logger.Debug("attribute lookup failed", "procedure", name.String(), "error", err)
		return domain.SourceFile{}, false
	}
	if attrs == nil {
		e.logger.Debug("procedure not found in attribute store", "procedure", name.String())
		return domain.SourceFile{}, false
	}

	if !e.reactiveCapture {
		if attrs.Source.IsZero() {
			e.logger.Debug("procedure has no recorded source file", "procedure", name.String())
			return domain.SourceFile{}, false
		}
		return attrs.Source, true
	}

	// Capture may relocate the artifacts; trust its answer over the recorded one.
	source, err := e.capturer.Capture(ctx, attrs)
	if err != nil {
		e.logger.Debug("on-demand capture failed",
			"procedure", name.String(), "source", attrs.Source.Path(), "error", err)
		return domain.SourceFile{}, false
	}
	if source.IsZero() {
		e.logger.Debug("capture reported no source file", "procedure", name.String())
		return domain.SourceFile{}, false
	}
	return source, true
}
