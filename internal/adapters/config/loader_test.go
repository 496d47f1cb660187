package config_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/probe/internal/adapters/config"
	"go.trai.ch/probe/internal/core/domain"
	"go.trai.ch/probe/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoader_Load_YAML(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, domain.YAMLConfigFileName), `
results_dir: out
reactive_capture: true
primary_source: src/main.c
log_level: debug
capture:
  cmd: ["clang-capture", "--fast"]
  env:
    CC: clang
  jobs: 3
`)

	cfg, err := newLoader(t).Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tmpDir, "out"), cfg.ResultsDir)
	assert.True(t, cfg.ReactiveCapture)
	assert.Equal(t, domain.NewSourceFile("src/main.c"), cfg.PrimarySource)
	assert.Equal(t, domain.LogLevelDebug, cfg.LogLevel)
	assert.Equal(t, []string{"clang-capture", "--fast"}, cfg.Capture.Command)
	assert.Equal(t, map[string]string{"CC": "clang"}, cfg.Capture.Environment)
	assert.Equal(t, 3, cfg.Capture.Jobs)
}

func TestLoader_Load_TOML(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, domain.TOMLConfigFileName), `
results_dir = "/var/probe"
log_level = "warn"

[capture]
cmd = ["javac-capture"]
`)

	cfg, err := newLoader(t).Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "/var/probe", cfg.ResultsDir)
	assert.False(t, cfg.ReactiveCapture)
	assert.True(t, cfg.PrimarySource.IsZero())
	assert.Equal(t, domain.LogLevelWarn, cfg.LogLevel)
	assert.Equal(t, []string{"javac-capture"}, cfg.Capture.Command)
}

func TestLoader_Load_Defaults(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := newLoader(t).Load(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tmpDir, domain.DefaultResultsDir), cfg.ResultsDir)
	assert.False(t, cfg.ReactiveCapture)
	assert.Equal(t, domain.LogLevelInfo, cfg.LogLevel)
	assert.Empty(t, cfg.Capture.Command)
	assert.Equal(t, runtime.NumCPU(), cfg.Capture.Jobs)
}

func TestLoader_Load_DiscoversParentDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, domain.YAMLConfigFileName), "results_dir: results\n")
	nested := filepath.Join(tmpDir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	cfg, err := newLoader(t).Load(nested)
	require.NoError(t, err)

	// Relative results directories resolve against the config file, not cwd.
	assert.Equal(t, filepath.Join(tmpDir, "results"), cfg.ResultsDir)
}

func TestLoader_Load_YAMLWinsOverTOML(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, domain.YAMLConfigFileName), "results_dir: from-yaml\n")
	writeFile(t, filepath.Join(tmpDir, domain.TOMLConfigFileName), "results_dir = \"from-toml\"\n")

	cfg, err := newLoader(t).Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmpDir, "from-yaml"), cfg.ResultsDir)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{
			name:    "reactive capture without command",
			file:    domain.YAMLConfigFileName,
			content: "reactive_capture: true\n",
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name:    "unknown log level",
			file:    domain.YAMLConfigFileName,
			content: "log_level: chatty\n",
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name:    "negative jobs",
			file:    domain.TOMLConfigFileName,
			content: "[capture]\njobs = -1\n",
			wantErr: domain.ErrInvalidConfig,
		},
		{
			name:    "malformed yaml",
			file:    domain.YAMLConfigFileName,
			content: "capture: [unterminated\n",
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "malformed toml",
			file:    domain.TOMLConfigFileName,
			content: "results_dir = \n",
			wantErr: domain.ErrConfigParseFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			writeFile(t, filepath.Join(tmpDir, tt.file), tt.content)

			_, err := newLoader(t).Load(tmpDir)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
