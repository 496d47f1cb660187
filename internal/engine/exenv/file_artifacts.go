package exenv

import (
	"go.trai.ch/probe/internal/core/domain"
	"go.trai.ch/probe/internal/core/ports"
)

// FileArtifacts holds the lazily loaded artifacts of one source file.
//
// Each slot is loaded at most once. A failed load is remembered as absent and
// is not retried for the lifetime of the process.
type FileArtifacts struct {
	source      domain.SourceFile
	typeEnvPath string

	tenv       *domain.TypeEnvironment
	tenvLoaded bool
	cfg        *domain.ControlFlowGraph
	cfgLoaded  bool
}

// newFileArtifacts resolves the type environment location of source: the
// per-file blob when it exists, the global blob otherwise.
func newFileArtifacts(source domain.SourceFile, layout ports.PathLayout, tenvs ports.TypeEnvLoader) *FileArtifacts {
	path := layout.TypeEnvPath(source)
	if !tenvs.Exists(path) {
		path = layout.GlobalTypeEnvPath()
	}
	return &FileArtifacts{
		source:      source,
		typeEnvPath: path,
	}
}

// Source returns the source file the artifacts belong to.
func (f *FileArtifacts) Source() domain.SourceFile {
	return f.source
}

// TypeEnvPath returns the resolved location of the type environment blob.
func (f *FileArtifacts) TypeEnvPath() string {
	return f.typeEnvPath
}

// TypeEnv returns the type environment, calling load on first use only.
func (f *FileArtifacts) TypeEnv(load TypeEnvLoadFunc, log ports.Logger) *domain.TypeEnvironment {
	if f.tenvLoaded {
		return f.tenv
	}
	f.tenvLoaded = true

	tenv, err := load(f.typeEnvPath)
	if err != nil {
		log.Debug("failed to load type environment",
			"source", f.source.Path(), "path", f.typeEnvPath, "error", err)
		return nil
	}
	f.tenv = tenv
	return f.tenv
}

// CFG returns the control-flow graph, calling the loader on first use only.
func (f *FileArtifacts) CFG(loader ports.CFGLoader, log ports.Logger) *domain.ControlFlowGraph {
	if f.cfgLoaded {
		return f.cfg
	}
	f.cfgLoaded = true

	cfg, err := loader.Load(f.source)
	if err != nil {
		log.Debug("failed to load control-flow graph", "source", f.source.Path(), "error", err)
		return nil
	}
	f.cfg = cfg
	return f.cfg
}

// TypeEnvLoadFunc loads the type environment blob stored at path.
type TypeEnvLoadFunc func(path string) (*domain.TypeEnvironment, error)
