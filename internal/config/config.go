// Package config loads CLI settings from flags, environment variables, an
// optional YAML file and a local .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/leofalp/agentplan/core/generate"
	"github.com/leofalp/agentplan/core/plan"
)

// EnvPrefix namespaces environment overrides: AGENTPLAN_KEYWORD,
// AGENTPLAN_LOG_LEVEL and so on.
const EnvPrefix = "AGENTPLAN"

// Output formats.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Log backends.
const (
	BackendSlog = "slog"
	BackendZap  = "zap"
)

// Keys, in viper's dotted form.
const (
	KeyKeyword    = "keyword"
	KeySentinel   = "sentinel"
	KeyOutput     = "output"
	KeyLogLevel   = "log.level"
	KeyLogFormat  = "log.format"
	KeyLogBackend = "log.backend"
)

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"keyword":     KeyKeyword,
	"sentinel":    KeySentinel,
	"output":      KeyOutput,
	"log-level":   KeyLogLevel,
	"log-format":  KeyLogFormat,
	"log-backend": KeyLogBackend,
}

// Config is the resolved CLI configuration.
type Config struct {
	Keyword  string `mapstructure:"keyword" yaml:"keyword"`
	Sentinel string `mapstructure:"sentinel" yaml:"sentinel"`
	Output   string `mapstructure:"output" yaml:"output"`
	Log      Log    `mapstructure:"log" yaml:"log"`
}

// Log selects the observability backend.
type Log struct {
	Level   string `mapstructure:"level" yaml:"level"`
	Format  string `mapstructure:"format" yaml:"format"`
	Backend string `mapstructure:"backend" yaml:"backend"`
}

// Options control where Load looks for settings.
type Options struct {
	// ConfigFile is a YAML file to read. Empty skips the file.
	ConfigFile string
	// EnvFile is a dotenv file loaded before the environment is read. A
	// missing file is not an error. Defaults to ".env".
	EnvFile string
	// Flags are bound for the keys in flagKeys that they define. Only flags
	// the user changed override lower layers.
	Flags *pflag.FlagSet
}

// Load resolves the configuration. Precedence, highest first: changed flags,
// environment, config file, defaults.
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", opts.ConfigFile, err)
		}
	}

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyKeyword, generate.DefaultKeyword)
	v.SetDefault(KeySentinel, plan.DefaultSentinel)
	v.SetDefault(KeyOutput, OutputJSON)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyLogBackend, BackendSlog)
}

func (c *Config) normalize() {
	c.Keyword = strings.TrimSpace(c.Keyword)
	if c.Keyword == "" {
		c.Keyword = generate.DefaultKeyword
	}
	c.Output = strings.ToLower(strings.TrimSpace(c.Output))
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
	c.Log.Backend = strings.ToLower(strings.TrimSpace(c.Log.Backend))
}

// Validate rejects unknown output formats and log backends.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("output must be %q or %q, got %q", OutputJSON, OutputYAML, c.Output)
	}
	switch c.Log.Backend {
	case BackendSlog, BackendZap:
	default:
		return fmt.Errorf("log backend must be %q or %q, got %q", BackendSlog, BackendZap, c.Log.Backend)
	}
	return nil
}
