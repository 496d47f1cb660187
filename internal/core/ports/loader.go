package ports

import "go.trai.ch/probe/internal/core/domain"

// TypeEnvLoader reads type environment blobs.
//
//go:generate go run go.uber.org/mock/mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks
type TypeEnvLoader interface {
	// Load deserializes the type environment stored at path.
	Load(path string) (*domain.TypeEnvironment, error)
	// Exists reports whether a blob is present at path.
	Exists(path string) bool
}

// CFGLoader reads control-flow graph blobs.
type CFGLoader interface {
	// Load deserializes the control-flow graph captured for source.
	Load(source domain.SourceFile) (*domain.ControlFlowGraph, error)
}
