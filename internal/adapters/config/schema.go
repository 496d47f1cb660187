package config

// Probefile represents the structure of probe.yaml and probe.toml.
type Probefile struct {
	ResultsDir      string     `yaml:"results_dir" toml:"results_dir"`
	ReactiveCapture bool       `yaml:"reactive_capture" toml:"reactive_capture"`
	PrimarySource   string     `yaml:"primary_source" toml:"primary_source"`
	LogLevel        string     `yaml:"log_level" toml:"log_level"`
	Capture         CaptureDTO `yaml:"capture" toml:"capture"`
}

// CaptureDTO represents the capture section of the configuration.
type CaptureDTO struct {
	Cmd         []string          `yaml:"cmd" toml:"cmd"`
	Environment map[string]string `yaml:"env" toml:"env"`
	Jobs        int               `yaml:"jobs" toml:"jobs"`
}
