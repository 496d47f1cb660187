package ports

import (
	"context"

	"go.trai.ch/probe/internal/core/domain"
)

// Capturer (re)compiles the source file owning a procedure into fresh artifacts.
//
//go:generate go run go.uber.org/mock/mockgen -source=capture.go -destination=mocks/mock_capture.go -package=mocks
type Capturer interface {
	// Capture captures the source file recorded in attrs and returns the source
	// file identity the fresh artifacts were stored under. That identity may
	// differ from attrs.Source when capture relocates the artifacts.
	//
	// Returns an error if capture fails or produced no artifacts for the procedure.
	Capture(ctx context.Context, attrs *domain.ProcedureAttributes) (domain.SourceFile, error)

	// CaptureSource captures a single source file without a triggering procedure.
	CaptureSource(ctx context.Context, source domain.SourceFile) error
}
