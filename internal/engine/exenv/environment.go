// Package exenv resolves procedures to their on-disk artifacts and memoizes
// the loaded type environments and control-flow graphs.
//
// An Environment belongs to exactly one worker process and is used from a
// single goroutine; nothing in this package takes a lock. Artifacts are loaded
// on first access only, so a forked worker pays for what it touches and
// nothing else. Loaded artifacts are never evicted.
package exenv

import (
	"go.trai.ch/probe/internal/core/domain"
	"go.trai.ch/probe/internal/core/ports"
)

// Environment is the execution environment of one worker process.
type Environment struct {
	index           *Index
	primary         domain.SourceFile
	reactiveCapture bool

	attrs    ports.AttributeStore
	capturer ports.Capturer
	tenvs    ports.TypeEnvLoader
	cfgs     ports.CFGLoader
	layout   ports.PathLayout
	logger   ports.Logger

	global *GlobalTypeEnv
}

// Settings holds the per-process options of an Environment.
type Settings struct {
	// Primary is the source file the current analysis pass iterates over.
	Primary domain.SourceFile
	// ReactiveCapture enables on-demand capture during resolution.
	ReactiveCapture bool
}

// New creates an Environment. The capturer is only used when
// settings.ReactiveCapture is set and may be nil otherwise.
func New(
	settings Settings,
	attrs ports.AttributeStore,
	capturer ports.Capturer,
	tenvs ports.TypeEnvLoader,
	cfgs ports.CFGLoader,
	layout ports.PathLayout,
	logger ports.Logger,
) *Environment {
	return &Environment{
		index:           NewIndex(),
		primary:         settings.Primary,
		reactiveCapture: settings.ReactiveCapture && capturer != nil,
		attrs:           attrs,
		capturer:        capturer,
		tenvs:           tenvs,
		cfgs:            cfgs,
		layout:          layout,
		logger:          logger,
		global:          NewGlobalTypeEnv(tenvs, layout.GlobalTypeEnvPath()),
	}
}

// Primary returns the primary source file of the current analysis pass.
func (e *Environment) Primary() domain.SourceFile {
	return e.primary
}

// Index exposes the memoization maps.
func (e *Environment) Index() *Index {
	return e.index
}

// Stats summarizes the cache contents.
type Stats struct {
	Procedures int
	Sources    int
}

// Stats returns the number of bound procedures and source file entries.
func (e *Environment) Stats() Stats {
	return Stats{
		Procedures: e.index.Procedures(),
		Sources:    e.index.Sources(),
	}
}

// fatal hands err to the fatal sink. The sink terminates the process; the
// panic only guards against a sink that returns.
func (e *Environment) fatal(err error) {
	e.logger.Fatal(err)
	panic(err)
}

// loadTypeEnv loads a type environment blob, serving the global blob from the
// global cell so that files falling back to it share one instance.
func (e *Environment) loadTypeEnv(path string) (*domain.TypeEnvironment, error) {
	if path == e.global.Path() {
		return e.global.Get()
	}
	return e.tenvs.Load(path)
}
