package commands_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/probe/cmd/probe/commands"
	"go.trai.ch/probe/internal/adapters/attrstore"
	"go.trai.ch/probe/internal/adapters/blob"
	"go.trai.ch/probe/internal/adapters/layout"
	"go.trai.ch/probe/internal/adapters/logger"
	"go.trai.ch/probe/internal/adapters/telemetry/progrock"
	"go.trai.ch/probe/internal/app"
	"go.trai.ch/probe/internal/build"
	"go.trai.ch/probe/internal/core/domain"
	"go.trai.ch/probe/internal/core/ports/mocks"
	"go.trai.ch/probe/internal/engine/exenv"
	"go.uber.org/mock/gomock"
)

var (
	mainC = domain.NewSourceFile("src/main.c")
	foo   = domain.NewProcName(domain.LanguageClang, "foo")
	bar   = domain.NewProcName(domain.LanguageClang, "bar")
)

// newCLI builds a CLI over a results directory holding one captured file.
func newCLI(t *testing.T) (*commands.CLI, *bytes.Buffer) {
	t.Helper()
	l := layout.New(t.TempDir())

	tenvs := blob.NewTypeEnvStore()
	tenv := domain.NewTypeEnvironment()
	tenv.Add(&domain.TypeDecl{
		Name:   "point",
		Kind:   domain.KindStruct,
		Fields: []domain.Field{{Name: "x", Type: "int"}},
	})
	require.NoError(t, tenvs.Save(l.TypeEnvPath(mainC), tenv))

	cfgs := blob.NewCFGStore(l)
	cfg := domain.NewControlFlowGraph(mainC)
	cfg.Add(&domain.ProcedureBody{
		Name:       foo,
		Formals:    []domain.Field{{Name: "p", Type: "point*"}},
		ReturnType: "int",
		Nodes: []domain.Node{
			{ID: 0, Kind: "start", Succs: []int{1}},
			{ID: 1, Kind: "exit", Instrs: []string{"return *&p.x"}},
		},
	})
	require.NoError(t, cfgs.Save(cfg))

	attrs, err := attrstore.NewStore(l.AttributesPath())
	require.NoError(t, err)
	require.NoError(t, attrs.Put(domain.ProcedureAttributes{Name: foo, Source: mainC, IsDefined: true}))
	require.NoError(t, attrs.Put(domain.ProcedureAttributes{Name: bar, Source: mainC}))

	log := logger.New()
	log.SetOutput(io.Discard)

	ctrl := gomock.NewController(t)
	capturer := mocks.NewMockCapturer(ctrl)
	capturer.EXPECT().CaptureSource(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	env := exenv.New(exenv.Settings{Primary: mainC}, attrs, capturer, tenvs, cfgs, l, log)
	a := app.New(env, capturer, progrock.New(), log, 2)

	var out bytes.Buffer
	cli := commands.New(a)
	cli.SetOutput(&out)
	return cli, &out
}

func TestCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "where", args: []string{"where", "foo"}, want: []string{"src/main.c"}},
		{name: "where with language", args: []string{"where", "clang:foo"}, want: []string{"src/main.c"}},
		{name: "tenv", args: []string{"tenv", "foo"}, want: []string{"struct", "point", "x int"}},
		{name: "cfg", args: []string{"cfg", "bar"}, want: []string{"src/main.c", "clang:foo(p point*) int"}},
		{name: "body", args: []string{"body", "foo"}, want: []string{"#0 start", "#1", "return *&p.x"}},
		{name: "procs", args: []string{"procs"}, want: []string{"clang:foo"}},
		{name: "version", args: []string{"version"}, want: []string{"probe version " + build.Version}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, out := newCLI(t)
			cli.SetArgs(tt.args)

			require.NoError(t, cli.Execute(context.Background()))
			for _, want := range tt.want {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestCommands_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "unknown procedure", args: []string{"cfg", "nope"}, wantErr: domain.ErrProcedureNotFound},
		{name: "declared only", args: []string{"body", "bar"}, wantErr: domain.ErrNoCompiledBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, _ := newCLI(t)
			cli.SetArgs(tt.args)

			err := cli.Execute(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCommands_MissingArgument(t *testing.T) {
	cli, _ := newCLI(t)
	cli.SetArgs([]string{"tenv"})

	assert.Error(t, cli.Execute(context.Background()))
}

func TestCommands_Capture(t *testing.T) {
	cli, out := newCLI(t)

	cli.SetArgs([]string{"capture"})
	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "Usage:")

	cli.SetArgs([]string{"capture", "src/a.c", "src/b.c"})
	require.NoError(t, cli.Execute(context.Background()))
}
