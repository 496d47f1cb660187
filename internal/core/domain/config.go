package domain

const (
	// DefaultResultsDir is the results directory used when none is configured.
	DefaultResultsDir = "probe-out"
	// YAMLConfigFileName is the name of the YAML configuration file.
	YAMLConfigFileName = "probe.yaml"
	// TOMLConfigFileName is the name of the TOML configuration file.
	TOMLConfigFileName = "probe.toml"
)

// Config is the resolved configuration of one probe process.
type Config struct {
	// ResultsDir is the root directory holding all captured artifacts.
	ResultsDir string
	// ReactiveCapture enables on-demand capture when a procedure is resolved.
	ReactiveCapture bool
	// PrimarySource is the source file the current analysis pass iterates over.
	PrimarySource SourceFile
	// LogLevel is the minimum level that gets logged.
	LogLevel LogLevel
	// Capture configures the external capture command.
	Capture CaptureConfig
}

// CaptureConfig describes how to invoke the external capture command.
type CaptureConfig struct {
	// Command is the argv of the capture command; the source path is appended.
	Command []string
	// Environment holds extra variables for the capture command.
	Environment map[string]string
	// Jobs bounds the number of concurrent capture processes.
	Jobs int
}
