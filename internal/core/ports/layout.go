package ports

import "go.trai.ch/probe/internal/core/domain"

// PathLayout knows the well-known locations of artifact blobs.
//
//go:generate go run go.uber.org/mock/mockgen -source=layout.go -destination=mocks/mock_layout.go -package=mocks
type PathLayout interface {
	// GlobalTypeEnvPath returns the location of the shared global type environment blob.
	GlobalTypeEnvPath() string
	// TypeEnvPath returns the location of the per-file type environment blob of source.
	TypeEnvPath(source domain.SourceFile) string
}
