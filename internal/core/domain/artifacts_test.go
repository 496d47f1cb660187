package domain_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/probe/internal/core/domain"
)

func TestControlFlowGraph_Lookup(t *testing.T) {
	src := domain.NewSourceFile("a.c")
	foo := domain.NewProcName(domain.LanguageClang, "foo")
	bar := domain.NewProcName(domain.LanguageClang, "bar")

	g := domain.NewControlFlowGraph(src)
	g.Add(&domain.ProcedureBody{Name: foo})

	body, ok := g.Lookup(foo)
	assert.True(t, ok)
	assert.Equal(t, foo, body.Name)

	_, ok = g.Lookup(bar)
	assert.False(t, ok, "declared-only procedures have no body")
}

func TestControlFlowGraph_ProceduresVisitsEachOnce(t *testing.T) {
	g := domain.NewControlFlowGraph(domain.NewSourceFile("a.c"))
	for _, name := range []string{"c", "a", "b"} {
		g.Add(&domain.ProcedureBody{Name: domain.NewProcName(domain.LanguageClang, name)})
	}

	var names []string
	for body := range g.Procedures() {
		names = append(names, body.Name.Name())
	}

	assert.Equal(t, []string{"a", "b", "c"}, names)
	assert.Equal(t, 3, g.Len())
}

func TestTypeEnvironment_Decls(t *testing.T) {
	tenv := domain.NewTypeEnvironment()
	tenv.Add(&domain.TypeDecl{Name: "struct point", Kind: domain.KindStruct})
	tenv.Add(&domain.TypeDecl{Name: "class Shape", Kind: domain.KindClass})

	decl, ok := tenv.Lookup("struct point")
	assert.True(t, ok)
	assert.Equal(t, domain.KindStruct, decl.Kind)

	var names []string
	for d := range tenv.Decls() {
		names = append(names, d.Name)
	}
	assert.True(t, slices.IsSorted(names))
	assert.Equal(t, 2, tenv.Len())
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.LogLevel
		hasError bool
	}{
		{"debug", domain.LogLevelDebug, false},
		{"", domain.LogLevelInfo, false},
		{"WARN", domain.LogLevelWarn, false},
		{"error", domain.LogLevelError, false},
		{"verbose", domain.LogLevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.ParseLogLevel(tt.input)
			if tt.hasError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}
