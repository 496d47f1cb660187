package domain

import "go.trai.ch/zerr"

var (
	// ErrUnknownLanguage is returned when a language tag cannot be parsed.
	ErrUnknownLanguage = zerr.New("unknown language")

	// ErrGlobalTypeEnvironmentMissing is raised when the global type environment cannot be loaded.
	ErrGlobalTypeEnvironmentMissing = zerr.New("global type environment could not be loaded")

	// ErrTypeEnvironmentMissing is raised when no type environment can be found for a procedure.
	ErrTypeEnvironmentMissing = zerr.New("type environment not found")

	// ErrBlobCorrupt is returned when a blob fails its integrity check.
	ErrBlobCorrupt = zerr.New("corrupt artifact blob")

	// ErrSchemaMismatch is returned when a blob was written with a different schema version.
	ErrSchemaMismatch = zerr.New("artifact schema mismatch")

	// ErrCaptureFailed is returned when on-demand capture produced no usable artifacts.
	ErrCaptureFailed = zerr.New("capture failed")

	// ErrCaptureNotConfigured is returned when capture is requested without a capture command.
	ErrCaptureNotConfigured = zerr.New("capture command not configured")

	// ErrNoPrimarySource is returned when an operation needs the primary source file but none is set.
	ErrNoPrimarySource = zerr.New("no primary source file configured")

	// ErrProcedureNotFound is returned when a procedure cannot be resolved to a source file.
	ErrProcedureNotFound = zerr.New("procedure not found")

	// ErrNoControlFlowGraph is returned when the control-flow graph of a source file is unavailable.
	ErrNoControlFlowGraph = zerr.New("control-flow graph not available")

	// ErrNoCompiledBody is returned when a procedure has no compiled body.
	ErrNoCompiledBody = zerr.New("procedure has no compiled body")

	// ErrConfigReadFailed is returned when the configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the configuration file cannot be decoded.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when a decoded configuration is inconsistent.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrNoSourcesSpecified is returned when capture is invoked without source files.
	ErrNoSourcesSpecified = zerr.New("no source files specified")
)
