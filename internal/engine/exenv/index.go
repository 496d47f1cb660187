package exenv

import "go.trai.ch/probe/internal/core/domain"

// Index memoizes resolution. Both maps point at the same *FileArtifacts, so
// loading one procedure's file serves every sibling procedure of that file.
type Index struct {
	byProc   map[domain.ProcName]*FileArtifacts
	bySource map[domain.SourceFile]*FileArtifacts
}

// NewIndex creates an empty Index.
func NewIndex() *Index {
	return &Index{
		byProc:   make(map[domain.ProcName]*FileArtifacts),
		bySource: make(map[domain.SourceFile]*FileArtifacts),
	}
}

// Procedure returns the artifacts a procedure was bound to, if any.
func (ix *Index) Procedure(name domain.ProcName) (*FileArtifacts, bool) {
	fa, ok := ix.byProc[name]
	return fa, ok
}

// Source returns the artifacts of a source file, if any.
func (ix *Index) Source(source domain.SourceFile) (*FileArtifacts, bool) {
	fa, ok := ix.bySource[source]
	return fa, ok
}

// bind returns the entry of source, creating it with create on first use, and
// registers it under name.
func (ix *Index) bind(name domain.ProcName, source domain.SourceFile, create func() *FileArtifacts) *FileArtifacts {
	fa, ok := ix.bySource[source]
	if !ok {
		fa = create()
		ix.bySource[source] = fa
	}
	ix.byProc[name] = fa
	return fa
}

// Procedures returns the number of bound procedures.
func (ix *Index) Procedures() int {
	return len(ix.byProc)
}

// Sources returns the number of source files with an entry.
func (ix *Index) Sources() int {
	return len(ix.bySource)
}
