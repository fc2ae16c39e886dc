package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidOutputFormats lists the accepted values for the output key.
var ValidOutputFormats = []string{"auto", "text", "markdown", "json", "yaml"}

// ValidLogLevels lists the accepted values for the log_level key.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ValidLogFormats lists the accepted values for the log_format key.
var ValidLogFormats = []string{"text", "json"}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !slices.Contains(ValidOutputFormats, strings.ToLower(c.OutputFormat)) {
		return fmt.Errorf("unknown output format %q (available: %s)",
			c.OutputFormat, strings.Join(ValidOutputFormats, ", "))
	}
	if !slices.Contains(ValidLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("unknown log level %q (available: %s)",
			c.LogLevel, strings.Join(ValidLogLevels, ", "))
	}
	if !slices.Contains(ValidLogFormats, strings.ToLower(c.LogFormat)) {
		return fmt.Errorf("unknown log format %q (available: %s)",
			c.LogFormat, strings.Join(ValidLogFormats, ", "))
	}
	if c.MaxBound < 2 {
		return fmt.Errorf("max_bound must be at least 2, got %d", c.MaxBound)
	}
	return nil
}
