package exenv_test

import (
	"testing"

	"go.trai.ch/probe/internal/adapters/layout"
	"go.trai.ch/probe/internal/core/domain"
	"go.trai.ch/probe/internal/core/ports/mocks"
	"go.trai.ch/probe/internal/engine/exenv"
	"go.uber.org/mock/gomock"
)

// fakeLogger records diagnostics. Fatal returns, leaving termination to the caller.
type fakeLogger struct {
	debug []string
	fatal []error
}

func (l *fakeLogger) Debug(msg string, _ ...any) { l.debug = append(l.debug, msg) }
func (l *fakeLogger) Info(string) {}
func (l *fakeLogger) Warn(string) {}
func (l *fakeLogger) Error(error) {}
func (l *fakeLogger) Fatal(err error) { l.fatal = append(l.fatal, err) }

type fixture struct {
	attrs    *mocks.MockAttributeStore
	capturer *mocks.MockCapturer
	tenvs    *mocks.MockTypeEnvLoader
	cfgs     *mocks.MockCFGLoader
	layout   *layout.Layout
	log      *fakeLogger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	return &fixture{
		attrs:    mocks.NewMockAttributeStore(ctrl),
		capturer: mocks.NewMockCapturer(ctrl),
		tenvs:    mocks.NewMockTypeEnvLoader(ctrl),
		cfgs:     mocks.NewMockCFGLoader(ctrl),
		layout:   layout.New("/results"),
		log:      &fakeLogger{},
	}
}

func (f *fixture) env(settings exenv.Settings) *exenv.Environment {
	return exenv.New(settings, f.attrs, f.capturer, f.tenvs, f.cfgs, f.layout, f.log)
}

// record makes the attribute store answer name with source.
func (f *fixture) record(name domain.ProcName, source domain.SourceFile) *domain.ProcedureAttributes {
	attrs := &domain.ProcedureAttributes{Name: name, Source: source, IsDefined: true}
	f.attrs.EXPECT().Lookup(name).Return(attrs, nil).Times(1)
	return attrs
}

var (
	fileA = domain.NewSourceFile("src/a.c")
	fileB = domain.NewSourceFile("src/b.c")

	foo = domain.NewProcName(domain.LanguageClang, "foo")
	bar = domain.NewProcName(domain.LanguageClang, "bar")
	baz = domain.NewProcName(domain.LanguageClang, "baz")

	javaMain = domain.NewProcName(domain.LanguageJava, "com.example.Main.main")
)

func cfgWith(source domain.SourceFile, names ...domain.ProcName) *domain.ControlFlowGraph {
	cfg := domain.NewControlFlowGraph(source)
	for _, name := range names {
		cfg.Add(&domain.ProcedureBody{Name: name})
	}
	return cfg
}
