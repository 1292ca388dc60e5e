package config

// Config represents the complete funcscan configuration.
// It can be loaded from .funcscan/config.yml with environment variable
// overrides.
type Config struct {
	Input      InputConfig      `yaml:"input" mapstructure:"input"`
	Output     OutputConfig     `yaml:"output" mapstructure:"output"`
	Processing ProcessingConfig `yaml:"processing" mapstructure:"processing"`
	Logging    LoggingConfig    `yaml:"logging" mapstructure:"logging"`
}

// InputConfig defines where source files come from.
type InputConfig struct {
	SourceDir  string   `yaml:"source_dir" mapstructure:"source_dir"`   // root directory to scan
	IgnoreFile string   `yaml:"ignore_file" mapstructure:"ignore_file"` // exclusion pattern file in the root
	Ignore     []string `yaml:"ignore" mapstructure:"ignore"`           // extra glob patterns to exclude
}

// OutputConfig defines where extracted records go.
type OutputConfig struct {
	Path string `yaml:"path" mapstructure:"path"` // JSONL output file; empty means stdout
}

// ProcessingConfig controls parallelism and language filtering.
type ProcessingConfig struct {
	ParallelWorkers int      `yaml:"parallel_workers" mapstructure:"parallel_workers"` // 0 means GOMAXPROCS
	Languages       []string `yaml:"languages" mapstructure:"languages"`               // empty means all supported
}

// LoggingConfig controls the log output.
type LoggingConfig struct {
	Level string `yaml:"level" mapstructure:"level"` // debug, info, warn, error
	File  string `yaml:"file" mapstructure:"file"`   // optional log file path
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			SourceDir:  ".",
			IgnoreFile: ".ragignore",
			Ignore: []string{
				"node_modules/**",
				"vendor/**",
				".git/**",
				"dist/**",
				"build/**",
				"target/**",
				"__pycache__/**",
			},
		},
		Output: OutputConfig{
			Path: "",
		},
		Processing: ProcessingConfig{
			ParallelWorkers: 0,
			Languages:       nil,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}
