// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/probe/internal/core/domain"

// AttributeStore maps procedures to their persisted attributes.
//
//go:generate go run go.uber.org/mock/mockgen -source=attributes.go -destination=mocks/mock_attributes.go -package=mocks
type AttributeStore interface {
	// Lookup retrieves the attributes of a procedure.
	// Returns nil, nil if the procedure is unknown.
	Lookup(name domain.ProcName) (*domain.ProcedureAttributes, error)

	// Refresh re-reads the store from its backing storage, picking up
	// attributes written by another process (e.g. a capture run).
	Refresh() error
}
