package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leofalp/agentplan/core/plan"
)

// noEnvFile points Load at a dotenv file that does not exist.
func noEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "missing.env")
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(Options{EnvFile: noEnvFile(t)})
	require.NoError(t, err)

	assert.Equal(t, &Config{
		Keyword:  "Unit",
		Sentinel: plan.DefaultSentinel,
		Output:   OutputJSON,
		Log:      Log{Level: "info", Format: "text", Backend: BackendSlog},
	}, cfg)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := writeFile(t, "agentplan.yaml", `
keyword: Agent
sentinel: END OF LIST
output: YAML
log:
  level: debug
  backend: zap
`)

	cfg, err := Load(Options{ConfigFile: path, EnvFile: noEnvFile(t)})
	require.NoError(t, err)

	assert.Equal(t, "Agent", cfg.Keyword)
	assert.Equal(t, "END OF LIST", cfg.Sentinel)
	assert.Equal(t, OutputYAML, cfg.Output)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, BackendZap, cfg.Log.Backend)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "agentplan.yaml", "keyword: Agent\nlog:\n  level: debug\n")
	t.Setenv("AGENTPLAN_KEYWORD", "Workflow")
	t.Setenv("AGENTPLAN_LOG_LEVEL", "warn")

	cfg, err := Load(Options{ConfigFile: path, EnvFile: noEnvFile(t)})
	require.NoError(t, err)

	assert.Equal(t, "Workflow", cfg.Keyword)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("AGENTPLAN_OUTPUT", "yaml")
	t.Setenv("AGENTPLAN_KEYWORD", "Workflow")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "", "")
	flags.String("keyword", "", "")
	require.NoError(t, flags.Parse([]string{"--output", "json"}))

	cfg, err := Load(Options{Flags: flags, EnvFile: noEnvFile(t)})
	require.NoError(t, err)

	assert.Equal(t, OutputJSON, cfg.Output)
	// Unchanged flags do not mask the environment.
	assert.Equal(t, "Workflow", cfg.Keyword)
}

func TestLoad_EnvFile(t *testing.T) {
	path := writeFile(t, "test.env", "AGENTPLAN_LOG_FORMAT=json\n")
	t.Cleanup(func() { os.Unsetenv("AGENTPLAN_LOG_FORMAT") })

	cfg, err := Load(Options{EnvFile: path})
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"output", "output: xml\n", "output must be"},
		{"backend", "log:\n  backend: logrus\n", "log backend must be"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "agentplan.yaml", tt.content)
			_, err := Load(Options{ConfigFile: path, EnvFile: noEnvFile(t)})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(Options{ConfigFile: filepath.Join(t.TempDir(), "nope.yaml"), EnvFile: noEnvFile(t)})
	assert.Error(t, err)
}

func TestLoad_BlankKeywordFallsBack(t *testing.T) {
	path := writeFile(t, "agentplan.yaml", "keyword: \"  \"\n")

	cfg, err := Load(Options{ConfigFile: path, EnvFile: noEnvFile(t)})
	require.NoError(t, err)
	assert.Equal(t, "Unit", cfg.Keyword)
}
