// Package config provides the configuration loader for probe.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
	"go.trai.ch/probe/internal/core/domain"
	"go.trai.ch/probe/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a probe.yaml or probe.toml file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load discovers the configuration file starting at cwd and walking up to the
// filesystem root. Without a configuration file the defaults apply, rooted at cwd.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	configPath, found, err := findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	var probefile Probefile
	root := cwd
	if found {
		if err := decode(configPath, &probefile); err != nil {
			return nil, err
		}
		root = filepath.Dir(configPath)
		l.Logger.Debug("loaded configuration", "path", configPath)
	} else {
		l.Logger.Debug("no configuration file found, using defaults", "cwd", cwd)
	}

	return build(root, &probefile)
}

func findConfiguration(cwd string) (string, bool, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", false, zerr.With(zerr.Wrap(err, "failed to resolve working directory"), "cwd", cwd)
	}

	for {
		for _, name := range []string{domain.YAMLConfigFileName, domain.TOMLConfigFileName} {
			candidate := filepath.Join(currentDir, name)
			_, err := os.Stat(candidate)
			if err == nil {
				return candidate, true, nil
			}
			if !errors.Is(err, os.ErrNotExist) {
				return "", false, zerr.With(zerr.Wrap(err, "failed to stat config file"), "path", candidate)
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			return "", false, nil
		}
		currentDir = parentDir
	}
}

func decode(configPath string, target *Probefile) error {
	// #nosec G304 -- configPath is discovered by findConfiguration
	data, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Join(domain.ErrConfigReadFailed, zerr.With(zerr.Wrap(err, "read"), "path", configPath))
	}

	if filepath.Ext(configPath) == ".toml" {
		if _, err := toml.Decode(string(data), target); err != nil {
			return errors.Join(domain.ErrConfigParseFailed, zerr.With(zerr.Wrap(err, "toml"), "path", configPath))
		}
		return nil
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return errors.Join(domain.ErrConfigParseFailed, zerr.With(zerr.Wrap(err, "yaml"), "path", configPath))
	}
	return nil
}

// build converts the decoded file into a domain.Config, applying defaults.
func build(root string, p *Probefile) (*domain.Config, error) {
	level, err := domain.ParseLogLevel(p.LogLevel)
	if err != nil {
		return nil, errors.Join(domain.ErrInvalidConfig, err)
	}

	if p.ReactiveCapture && len(p.Capture.Cmd) == 0 {
		cause := zerr.With(zerr.New("reactive_capture requires capture.cmd"), "key", "capture.cmd")
		return nil, errors.Join(domain.ErrInvalidConfig, cause)
	}
	if p.Capture.Jobs < 0 {
		cause := zerr.With(zerr.New("capture.jobs must not be negative"), "jobs", p.Capture.Jobs)
		return nil, errors.Join(domain.ErrInvalidConfig, cause)
	}

	resultsDir := p.ResultsDir
	if resultsDir == "" {
		resultsDir = domain.DefaultResultsDir
	}
	if !filepath.IsAbs(resultsDir) {
		resultsDir = filepath.Join(root, resultsDir)
	}

	jobs := p.Capture.Jobs
	if jobs == 0 {
		jobs = runtime.NumCPU()
	}

	cfg := &domain.Config{
		ResultsDir:      filepath.Clean(resultsDir),
		ReactiveCapture: p.ReactiveCapture,
		LogLevel:        level,
		Capture: domain.CaptureConfig{
			Command:     p.Capture.Cmd,
			Environment: p.Capture.Environment,
			Jobs:        jobs,
		},
	}
	if p.PrimarySource != "" {
		cfg.PrimarySource = domain.NewSourceFile(p.PrimarySource)
	}
	return cfg, nil
}
