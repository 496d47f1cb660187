package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/probe/internal/adapters/blob"
	"go.trai.ch/probe/internal/adapters/layout"
	"go.trai.ch/probe/internal/core/domain"
)

func TestRun(t *testing.T) {
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	tmpDir := t.TempDir()
	configContent := "primary_source: src/main.c\nlog_level: error\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, domain.YAMLConfigFileName), []byte(configContent), 0o600))

	source := domain.NewSourceFile("src/main.c")
	cfg := domain.NewControlFlowGraph(source)
	cfg.Add(&domain.ProcedureBody{Name: domain.NewProcName(domain.LanguageClang, "main")})
	l := layout.New(filepath.Join(tmpDir, domain.DefaultResultsDir))
	require.NoError(t, blob.NewCFGStore(l).Save(cfg))

	// Change to tmpDir for configuration discovery
	t.Chdir(tmpDir)

	os.Args = []string{"probe", "procs"}
	assert.Equal(t, 0, run())
}
