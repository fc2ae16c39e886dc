package config

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testdataDir = "../testdata"

// newFlagSet mirrors the persistent flags registered on the root command.
func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "config file")
	fs.StringP("output", "o", "", "output format")
	fs.BoolP("verbose", "v", false, "verbose")
	fs.String("log-level", "", "log level")
	fs.String("log-format", "", "log format")
	fs.Int("max-bound", 0, "max bound")
	return fs
}

// TestConfig_Validate tests the Validate method of Config.
func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantErr   bool
		errSubstr string
	}{
		{
			name:   "defaults",
			mutate: func(_ *Config) {},
		},
		{
			name:   "uppercase output",
			mutate: func(c *Config) { c.OutputFormat = "JSON" },
		},
		{
			name:      "unknown output",
			mutate:    func(c *Config) { c.OutputFormat = "xml" },
			wantErr:   true,
			errSubstr: "unknown output format",
		},
		{
			name:      "unknown log level",
			mutate:    func(c *Config) { c.LogLevel = "trace" },
			wantErr:   true,
			errSubstr: "unknown log level",
		},
		{
			name:      "unknown log format",
			mutate:    func(c *Config) { c.LogFormat = "logfmt" },
			wantErr:   true,
			errSubstr: "unknown log format",
		},
		{
			name:      "bound too small",
			mutate:    func(c *Config) { c.MaxBound = 1 },
			wantErr:   true,
			errSubstr: "max_bound must be at least 2",
		},
		{
			name:   "smallest bound",
			mutate: func(c *Config) { c.MaxBound = 2 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errSubstr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfig()
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
	assert.Equal(t, DefaultMaxBound, cfg.MaxBound)
	assert.Equal(t, DefaultREPLPrompt, cfg.REPL.Prompt)
	assert.Empty(t, cfg.REPL.HistoryFile)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, GetConfigFileUsed())
	assert.Same(t, cfg, GetCurrentConfig())
}

func TestLoadConfig_Fixtures(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		ResetConfig()
		cfgPath := filepath.Join(testdataDir, "valid.yaml")
		cfg, err := LoadConfig(cfgPath, nil)
		require.NoError(t, err)

		assert.Equal(t, "json", cfg.OutputFormat)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, 5000, cfg.MaxBound)
		assert.Equal(t, "calc> ", cfg.REPL.Prompt)
		assert.Equal(t, cfgPath, GetConfigFileUsed())
	})

	t.Run("invalid output", func(t *testing.T) {
		ResetConfig()
		_, err := LoadConfig(filepath.Join(testdataDir, "invalid_output.yaml"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
		assert.Contains(t, err.Error(), "xml")
	})

	t.Run("invalid bound", func(t *testing.T) {
		ResetConfig()
		_, err := LoadConfig(filepath.Join(testdataDir, "invalid_bound.yaml"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_bound")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		ResetConfig()
		_, err := LoadConfig(filepath.Join(testdataDir, "malformed.yaml"), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config file")
	})

	t.Run("missing file", func(t *testing.T) {
		ResetConfig()
		_, err := LoadConfig(filepath.Join(testdataDir, "does_not_exist.yaml"), nil)
		require.Error(t, err)
	})
}

func TestLoadConfig_DiscoversFileInWorkingDir(t *testing.T) {
	ResetConfig()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileNameAlt), []byte("output: yaml\n"), 0600))
	t.Chdir(dir)

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "yaml", cfg.OutputFormat)
	assert.Contains(t, GetConfigFileUsed(), ConfigFileNameAlt)
}

// TestLoadConfig_EnvPrecedenceOverFile verifies env vars override config file values.
func TestLoadConfig_EnvPrecedenceOverFile(t *testing.T) {
	ResetConfig()
	t.Setenv("LEAPCALC_MAX_BOUND", "777")
	t.Setenv("LEAPCALC_REPL__PROMPT", "env> ")

	cfg, err := LoadConfig(filepath.Join(testdataDir, "valid.yaml"), nil)
	require.NoError(t, err)

	assert.Equal(t, 777, cfg.MaxBound)
	assert.Equal(t, "env> ", cfg.REPL.Prompt)
	assert.Equal(t, "json", cfg.OutputFormat, "file value kept when env is unset")
}

// TestLoadConfig_FlagPrecedence verifies flags override env vars and config file.
func TestLoadConfig_FlagPrecedence(t *testing.T) {
	ResetConfig()
	t.Setenv("LEAPCALC_OUTPUT", "markdown")

	fs := newFlagSet()
	require.NoError(t, fs.Parse([]string{"--output", "text", "--max-bound", "42"}))

	cfg, err := LoadConfig(filepath.Join(testdataDir, "valid.yaml"), fs)
	require.NoError(t, err)

	assert.Equal(t, "text", cfg.OutputFormat)
	assert.Equal(t, 42, cfg.MaxBound)
}

// TestLoadConfig_FlagNotSetUsesEnv verifies unset flags do not clobber env values.
func TestLoadConfig_FlagNotSetUsesEnv(t *testing.T) {
	ResetConfig()
	t.Chdir(t.TempDir())
	t.Setenv("LEAPCALC_OUTPUT", "markdown")

	fs := newFlagSet()
	require.NoError(t, fs.Parse([]string{"--config", "ignored.yaml"}))

	cfg, err := LoadConfig("", fs)
	require.NoError(t, err)

	assert.Equal(t, "markdown", cfg.OutputFormat)
}

func TestLoadConfig_VerboseForcesDebug(t *testing.T) {
	ResetConfig()
	t.Chdir(t.TempDir())

	fs := newFlagSet()
	require.NoError(t, fs.Parse([]string{"-v", "--log-level", "error"}))

	cfg, err := LoadConfig("", fs)
	require.NoError(t, err)

	assert.True(t, cfg.Verbose)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".leapcalc_history"), expandHome("~/.leapcalc_history"))
	assert.Equal(t, "/tmp/history", expandHome("/tmp/history"))
	assert.Empty(t, expandHome(""))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelWarn},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), "ParseLevel(%q)", tt.in)
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("text handler filters by level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf, "warn", "text")
		logger.Info("hidden")
		logger.Warn("shown", "n", 17)

		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "msg=shown")
		assert.Contains(t, out, "n=17")
	})

	t.Run("json handler", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf, "debug", "json")
		logger.Debug("evaluated", "op", "add")

		assert.Contains(t, buf.String(), `"msg":"evaluated"`)
		assert.Contains(t, buf.String(), `"op":"add"`)
	})
}

func TestGetLogger(t *testing.T) {
	assert.NotNil(t, GetLogger(context.Background()), "fallback logger should not be nil")

	var buf bytes.Buffer
	logger := NewLogger(&buf, "info", "text")
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, GetLogger(ctx))
	assert.Equal(t, ctx.Value(LoggerKey()), logger)
}
