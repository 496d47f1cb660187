package domain

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// TypeKind classifies a type declaration.
type TypeKind uint8

const (
	// KindStruct is a C-style struct or record.
	KindStruct TypeKind = iota
	// KindClass is a class with methods and supertypes.
	KindClass
	// KindInterface is an interface or protocol.
	KindInterface
)

// Field is a named, typed member of a type declaration.
type Field struct {
	Name string
	Type string
}

// TypeDecl is one struct, class or interface definition.
type TypeDecl struct {
	Name    string
	Kind    TypeKind
	Fields  []Field
	Supers  []string
	Methods []string
}

// TypeEnvironment holds the type declarations visible to a set of procedures.
type TypeEnvironment struct {
	types map[string]*TypeDecl
}

// NewTypeEnvironment creates an empty TypeEnvironment.
func NewTypeEnvironment() *TypeEnvironment {
	return &TypeEnvironment{types: make(map[string]*TypeDecl)}
}

// Add registers a declaration, replacing any previous one with the same name.
func (t *TypeEnvironment) Add(decl *TypeDecl) {
	t.types[decl.Name] = decl
}

// Lookup returns the declaration for name, if any.
func (t *TypeEnvironment) Lookup(name string) (*TypeDecl, bool) {
	decl, ok := t.types[name]
	return decl, ok
}

// Len returns the number of declarations.
func (t *TypeEnvironment) Len() int {
	return len(t.types)
}

// Decls yields every declaration in name order.
func (t *TypeEnvironment) Decls() iter.Seq[*TypeDecl] {
	return func(yield func(*TypeDecl) bool) {
		for _, name := range slices.Sorted(maps.Keys(t.types)) {
			if !yield(t.types[name]) {
				return
			}
		}
	}
}

// Node is a single node of a procedure's control-flow graph.
type Node struct {
	ID     int
	Kind   string
	Instrs []string
	Succs  []int
}

// ProcedureBody is the compiled intermediate representation of one procedure.
type ProcedureBody struct {
	Name       ProcName
	Formals    []Field
	ReturnType string
	Nodes      []Node
}

// ControlFlowGraph holds the compiled procedures of one source file.
type ControlFlowGraph struct {
	Source SourceFile
	procs  map[ProcName]*ProcedureBody
}

// NewControlFlowGraph creates an empty graph for the given source file.
func NewControlFlowGraph(source SourceFile) *ControlFlowGraph {
	return &ControlFlowGraph{
		Source: source,
		procs:  make(map[ProcName]*ProcedureBody),
	}
}

// Add registers a compiled procedure.
func (g *ControlFlowGraph) Add(body *ProcedureBody) {
	g.procs[body.Name] = body
}

// Lookup returns the compiled body of name, if the file defines it.
func (g *ControlFlowGraph) Lookup(name ProcName) (*ProcedureBody, bool) {
	body, ok := g.procs[name]
	return body, ok
}

// Len returns the number of compiled procedures.
func (g *ControlFlowGraph) Len() int {
	return len(g.procs)
}

// Procedures yields every compiled procedure exactly once, ordered by name.
func (g *ControlFlowGraph) Procedures() iter.Seq[*ProcedureBody] {
	return func(yield func(*ProcedureBody) bool) {
		bodies := slices.Collect(maps.Values(g.procs))
		slices.SortFunc(bodies, func(a, b *ProcedureBody) int {
			return cmp.Compare(a.Name.String(), b.Name.String())
		})
		for _, body := range bodies {
			if !yield(body) {
				return
			}
		}
	}
}

// ProcedureAttributes is the persisted metadata of a procedure.
type ProcedureAttributes struct {
	Name      ProcName
	Source    SourceFile
	IsDefined bool
	Access    string
	Line      int
}
