// Package config provides configuration management for the leapcalc CLI.
//
// Configuration is layered with koanf: built-in defaults, an optional
// leapcalc.yaml, LEAPCALC_ environment variables and finally any flag the
// user explicitly set.
package config

// REPLConfig holds configuration for the interactive REPL.
type REPLConfig struct {
	Prompt      string `koanf:"prompt"`
	HistoryFile string `koanf:"history_file"`
}

// Config holds all CLI configuration options.
type Config struct {
	OutputFormat string     `koanf:"output"`
	Verbose      bool       `koanf:"verbose"`
	LogLevel     string     `koanf:"log_level"`
	LogFormat    string     `koanf:"log_format"`
	MaxBound     int        `koanf:"max_bound"`
	REPL         REPLConfig `koanf:"repl"`
}

// Default configuration values.
const (
	DefaultOutput     = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultLogLevel   = "warn"
	DefaultLogFormat  = "text"
	DefaultMaxBound   = 10_000_000
	DefaultREPLPrompt = "leapcalc> "
)

// ConfigFileName is the name of the config file.
const ConfigFileName = "leapcalc.yaml"

// ConfigFileNameAlt is the alternate name of the config file.
const ConfigFileNameAlt = "leapcalc.yml"

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		OutputFormat: DefaultOutput,
		LogLevel:     DefaultLogLevel,
		LogFormat:    DefaultLogFormat,
		MaxBound:     DefaultMaxBound,
		REPL: REPLConfig{
			Prompt: DefaultREPLPrompt,
		},
	}
}
