// Package capture runs the external capture command that (re)compiles a source
// file into fresh artifacts.
package capture

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/probe/internal/core/domain"
	"go.trai.ch/probe/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Variables exported to the capture command.
const (
	EnvResultsDir = "PROBE_RESULTS_DIR"
	EnvSource     = "PROBE_SOURCE"
)

var _ ports.Capturer = (*Capturer)(nil)

// Capturer implements ports.Capturer using os/exec.
//
// The command is run with the source path appended to its arguments. It is
// expected to write the artifacts below the results directory and to record
// the attributes of every captured procedure in the attribute store.
type Capturer struct {
	command    []string
	env        map[string]string
	resultsDir string

	attrs     ports.AttributeStore
	telemetry ports.Telemetry
	logger    ports.Logger

	inflight singleflight.Group
}

// NewCapturer creates a Capturer for the given capture configuration.
func NewCapturer(
	cfg domain.CaptureConfig,
	resultsDir string,
	attrs ports.AttributeStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Capturer {
	return &Capturer{
		command:    cfg.Command,
		env:        cfg.Environment,
		resultsDir: resultsDir,
		attrs:      attrs,
		telemetry:  telemetry,
		logger:     logger,
	}
}

// Capture captures the source file recorded for a procedure and reports the
// source file its fresh attributes point at.
func (c *Capturer) Capture(ctx context.Context, attrs *domain.ProcedureAttributes) (domain.SourceFile, error) {
	if err := c.CaptureSource(ctx, attrs.Source); err != nil {
		return domain.SourceFile{}, err
	}

	if err := c.attrs.Refresh(); err != nil {
		return domain.SourceFile{}, zerr.Wrap(err, "failed to refresh attribute store")
	}
	fresh, err := c.attrs.Lookup(attrs.Name)
	if err != nil {
		return domain.SourceFile{}, err
	}
	if fresh == nil || fresh.Source.IsZero() {
		cause := zerr.With(zerr.New("procedure missing from attribute store after capture"),
			"procedure", attrs.Name.String())
		return domain.SourceFile{}, errors.Join(domain.ErrCaptureFailed, cause)
	}
	return fresh.Source, nil
}

// CaptureSource runs the capture command for source. Concurrent requests for
// the same source share one run.
func (c *Capturer) CaptureSource(ctx context.Context, source domain.SourceFile) error {
	_, err, _ := c.inflight.Do(source.Path(), func() (any, error) {
		return nil, c.run(ctx, source)
	})
	return err
}

func (c *Capturer) run(ctx context.Context, source domain.SourceFile) error {
	if len(c.command) == 0 {
		return domain.ErrCaptureNotConfigured
	}

	vertex := c.telemetry.Record("capture " + source.Path())

	name := c.command[0]
	args := append(append([]string{}, c.command[1:]...), source.Path())

	cmdEnv := resolveEnvironment(os.Environ(), c.env, map[string]string{
		EnvResultsDir: c.resultsDir,
		EnvSource:     source.Path(),
	})

	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // user configured command
	// exec.CommandContext sets Args[0] to the executable path; keep the configured name.
	cmd.Args[0] = name
	cmd.Env = cmdEnv

	stdout := &logWriter{logger: c.logger, source: source.Path(), stream: "stdout"}
	stderr := &logWriter{logger: c.logger, source: source.Path(), stream: "stderr"}
	cmd.Stdout = io.MultiWriter(vertex.Stdout(), stdout)
	cmd.Stderr = io.MultiWriter(vertex.Stderr(), stderr)

	c.logger.Debug("capturing source file", "source", source.Path(), "command", strings.Join(c.command, " "))
	vertex.Log(domain.LogLevelInfo, "$ "+strings.Join(cmd.Args, " "))
	err := cmd.Run()
	stdout.Flush()
	stderr.Flush()

	if err != nil {
		exitCode := -1 // Unknown or signal
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		cause := zerr.With(zerr.With(zerr.Wrap(err, "capture command failed"), "source", source.Path()), "exit_code", exitCode)
		vertex.Complete(cause)
		return errors.Join(domain.ErrCaptureFailed, cause)
	}

	vertex.Complete(nil)
	return nil
}
