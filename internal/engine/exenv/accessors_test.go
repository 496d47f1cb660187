package exenv_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/probe/internal/core/domain"
	"go.trai.ch/probe/internal/engine/exenv"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestTypeEnvironmentFor_GlobalLanguageBypassesIndex(t *testing.T) {
	f := newFixture(t)
	global := domain.NewTypeEnvironment()
	f.tenvs.EXPECT().Load(f.layout.GlobalTypeEnvPath()).Return(global, nil).Times(1)
	env := f.env(exenv.Settings{})
	ctx := context.Background()

	assert.Same(t, global, env.TypeEnvironmentFor(ctx, javaMain))
	assert.Same(t, global, env.TypeEnvironmentFor(ctx, javaMain))
	assert.Same(t, global, env.GlobalTypeEnv())
	assert.Equal(t, exenv.Stats{}, env.Stats())
}

func TestTypeEnvironmentFor_PrefersPerFileBlob(t *testing.T) {
	f := newFixture(t)
	f.record(foo, fileA)
	path := f.layout.TypeEnvPath(fileA)
	tenv := domain.NewTypeEnvironment()
	f.tenvs.EXPECT().Exists(path).Return(true)
	f.tenvs.EXPECT().Load(path).Return(tenv, nil).Times(1)
	env := f.env(exenv.Settings{})

	assert.Same(t, tenv, env.TypeEnvironmentFor(context.Background(), foo))
}

func TestTypeEnvironmentFor_FallbackSharesGlobalInstance(t *testing.T) {
	f := newFixture(t)
	f.record(foo, fileA)
	global := domain.NewTypeEnvironment()
	f.tenvs.EXPECT().Exists(f.layout.TypeEnvPath(fileA)).Return(false)
	f.tenvs.EXPECT().Load(f.layout.GlobalTypeEnvPath()).Return(global, nil).Times(1)
	env := f.env(exenv.Settings{})
	ctx := context.Background()

	fa := env.Resolve(ctx, foo)
	require.NotNil(t, fa)
	assert.Equal(t, f.layout.GlobalTypeEnvPath(), fa.TypeEnvPath())

	assert.Same(t, global, env.TypeEnvironmentFor(ctx, foo))
	assert.Same(t, global, env.TypeEnvironmentFor(ctx, javaMain))
}

func TestGlobalTypeEnv_LoadFailureIsFatal(t *testing.T) {
	f := newFixture(t)
	f.tenvs.EXPECT().Load(f.layout.GlobalTypeEnvPath()).
		Return(nil, domain.ErrBlobCorrupt).Times(1)
	env := f.env(exenv.Settings{})

	assert.Panics(t, func() { env.GlobalTypeEnv() })
	assert.Panics(t, func() { env.TypeEnvironmentFor(context.Background(), javaMain) })

	require.Len(t, f.log.fatal, 2)
	assert.ErrorIs(t, f.log.fatal[0], domain.ErrGlobalTypeEnvironmentMissing)
	assert.ErrorIs(t, f.log.fatal[1], domain.ErrGlobalTypeEnvironmentMissing)
}

func TestTypeEnvironmentFor_UnresolvedIsFatal(t *testing.T) {
	f := newFixture(t)
	f.attrs.EXPECT().Lookup(baz).Return(nil, nil)
	env := f.env(exenv.Settings{})

	assert.Panics(t, func() { env.TypeEnvironmentFor(context.Background(), baz) })
	require.Len(t, f.log.fatal, 1)
	assert.ErrorIs(t, f.log.fatal[0], domain.ErrTypeEnvironmentMissing)
}

func TestFileArtifacts_FailedLoadIsFrozen(t *testing.T) {
	f := newFixture(t)
	f.record(foo, fileA)
	f.tenvs.EXPECT().Exists(gomock.Any()).Return(true)
	f.cfgs.EXPECT().Load(fileA).Return(nil, zerr.New("i/o error")).Times(1)
	env := f.env(exenv.Settings{})
	ctx := context.Background()

	assert.Nil(t, env.ControlFlowGraphFor(ctx, foo))
	assert.Nil(t, env.ControlFlowGraphFor(ctx, foo))

	fa := env.Resolve(ctx, foo)
	calls := 0
	load := func(string) (*domain.TypeEnvironment, error) {
		calls++
		return nil, zerr.New("i/o error")
	}
	assert.Nil(t, fa.TypeEnv(load, f.log))
	assert.Nil(t, fa.TypeEnv(load, f.log))
	assert.Equal(t, 1, calls)
}

func TestCompiledBodyFor(t *testing.T) {
	f := newFixture(t)
	f.record(foo, fileA)
	f.record(bar, fileA)
	f.tenvs.EXPECT().Exists(gomock.Any()).Return(true)
	cfg := cfgWith(fileA, foo)
	f.cfgs.EXPECT().Load(fileA).Return(cfg, nil).Times(1)
	env := f.env(exenv.Settings{})
	ctx := context.Background()

	body := env.CompiledBodyFor(ctx, foo)
	require.NotNil(t, body)
	assert.Equal(t, foo, body.Name)

	// bar is declared in the file but has no body.
	assert.Nil(t, env.CompiledBodyFor(ctx, bar))
	assert.Contains(t, f.log.debug, "procedure has no compiled body")
	assert.Same(t, cfg, env.ControlFlowGraphFor(ctx, bar))
}

func TestCompiledBodyFor_Unresolved(t *testing.T) {
	f := newFixture(t)
	f.attrs.EXPECT().Lookup(foo).Return(nil, nil)
	env := f.env(exenv.Settings{})

	assert.Nil(t, env.CompiledBodyFor(context.Background(), foo))
	assert.Empty(t, f.log.fatal)
}

func TestForEachCompiledProcedure_LoadsFreshEachCall(t *testing.T) {
	f := newFixture(t)
	f.cfgs.EXPECT().Load(fileA).DoAndReturn(func(domain.SourceFile) (*domain.ControlFlowGraph, error) {
		return cfgWith(fileA, foo, bar), nil
	}).Times(2)
	env := f.env(exenv.Settings{Primary: fileA})

	for range 2 {
		var visited []domain.ProcName
		ok := env.ForEachCompiledProcedure(func(body *domain.ProcedureBody) {
			visited = append(visited, body.Name)
		})
		require.True(t, ok)
		assert.Equal(t, []domain.ProcName{bar, foo}, visited)
	}
	assert.Equal(t, exenv.Stats{}, env.Stats())
}

func TestForEachCompiledProcedure_Unavailable(t *testing.T) {
	t.Run("no primary source", func(t *testing.T) {
		f := newFixture(t)
		env := f.env(exenv.Settings{})

		called := false
		assert.False(t, env.ForEachCompiledProcedure(func(*domain.ProcedureBody) { called = true }))
		assert.False(t, called)
	})

	t.Run("load failure", func(t *testing.T) {
		f := newFixture(t)
		f.cfgs.EXPECT().Load(fileA).Return(nil, zerr.New("missing"))
		env := f.env(exenv.Settings{Primary: fileA})

		assert.False(t, env.ForEachCompiledProcedure(func(*domain.ProcedureBody) {}))
	})
}
