package blob

import (
	"errors"

	"go.trai.ch/probe/internal/core/domain"
	"go.trai.ch/probe/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.TypeEnvLoader = (*TypeEnvStore)(nil)
	_ ports.CFGLoader     = (*CFGStore)(nil)
)

// TypeEnvStore reads and writes type environment blobs.
type TypeEnvStore struct{}

// NewTypeEnvStore creates a TypeEnvStore.
func NewTypeEnvStore() *TypeEnvStore {
	return &TypeEnvStore{}
}

// Load deserializes the type environment stored at path.
func (s *TypeEnvStore) Load(path string) (*domain.TypeEnvironment, error) {
	var dto typeEnvDTO
	if err := readBlob(path, kindTypeEnv, &dto); err != nil {
		return nil, err
	}
	return typeEnvFromDTO(&dto), nil
}

// Exists reports whether a type environment blob is present at path.
func (s *TypeEnvStore) Exists(path string) bool {
	return exists(path)
}

// Save writes tenv to path.
func (s *TypeEnvStore) Save(path string, tenv *domain.TypeEnvironment) error {
	return writeBlob(path, kindTypeEnv, typeEnvToDTO(tenv))
}

// CFGPather locates control-flow graph blobs.
type CFGPather interface {
	CFGPath(source domain.SourceFile) string
}

// CFGStore reads and writes control-flow graph blobs.
type CFGStore struct {
	layout CFGPather
}

// NewCFGStore creates a CFGStore storing blobs where layout says.
func NewCFGStore(layout CFGPather) *CFGStore {
	return &CFGStore{layout: layout}
}

// Load deserializes the control-flow graph captured for source.
func (s *CFGStore) Load(source domain.SourceFile) (*domain.ControlFlowGraph, error) {
	path := s.layout.CFGPath(source)

	var dto cfgDTO
	if err := readBlob(path, kindCFG, &dto); err != nil {
		return nil, err
	}
	if dto.Source != source.Path() {
		cause := zerr.With(zerr.New("blob belongs to another source file"), "source", source.Path())
		return nil, errors.Join(domain.ErrBlobCorrupt, zerr.With(cause, "recorded_source", dto.Source))
	}
	cfg, err := cfgFromDTO(&dto)
	if err != nil {
		return nil, errors.Join(domain.ErrBlobCorrupt, zerr.With(err, "path", path))
	}
	return cfg, nil
}

// Save writes cfg to the location of its source file.
func (s *CFGStore) Save(cfg *domain.ControlFlowGraph) error {
	dto, err := cfgToDTO(cfg)
	if err != nil {
		return zerr.With(err, "source", cfg.Source.Path())
	}
	return writeBlob(s.layout.CFGPath(cfg.Source), kindCFG, dto)
}
