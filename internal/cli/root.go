// Package cli implements the agentplan command tree.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/leofalp/agentplan/internal/config"
	"github.com/leofalp/agentplan/providers/observability"
	"github.com/leofalp/agentplan/providers/observability/slogobs"
	"github.com/leofalp/agentplan/providers/observability/zapobs"
)

// app carries what every subcommand needs once the root has loaded its
// configuration.
type app struct {
	cfg      *config.Config
	observer observability.Provider
	sync     func() error
}

// NewRootCmd builds the agentplan command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	var configFile string

	root := &cobra.Command{
		Use:   "agentplan",
		Short: "Parse and validate language-model plan and generation responses",
		Long: `agentplan turns free-form model output into structured records.

"plan" extracts numbered unit proposals, "units" extracts generated unit
definitions and validates them, "check-docs" guards supporting documents
against leftover placeholder text and "script" renders a demo script.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(config.Options{ConfigFile: configFile, Flags: cmd.Flags()})
			if err != nil {
				return err
			}
			observer, sync, err := newObserver(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			a.cfg, a.observer, a.sync = cfg, observer, sync
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if a.sync != nil {
				return a.sync()
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "YAML config file")
	flags.String("keyword", "", `word naming a unit in headings and markers (default "Unit")`)
	flags.StringP("output", "o", "", `output format: json or yaml (default "json")`)
	flags.String("log-level", "", "log level: trace, debug, info, warn, error")
	flags.String("log-format", "", "log format: text or json")
	flags.String("log-backend", "", "log backend: slog or zap")

	root.AddCommand(
		newPlanCmd(a),
		newUnitsCmd(a),
		newCheckDocsCmd(a),
		newScriptCmd(a),
	)
	return root
}

// Execute runs the command tree against os.Args.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// newObserver builds the provider selected by cfg. The returned func flushes
// buffered log output.
func newObserver(cfg config.Log, stderr io.Writer) (observability.Provider, func() error, error) {
	switch cfg.Backend {
	case config.BackendZap:
		obs, err := zapobs.NewFromLevel(cfg.Level, cfg.Format)
		if err != nil {
			return nil, nil, fmt.Errorf("create zap observer: %w", err)
		}
		return obs, func() error {
			// Syncing stderr fails on some terminals; nothing useful to report.
			_ = obs.Sync()
			return nil
		}, nil
	default:
		obs := slogobs.New(
			slogobs.WithLevel(slogobs.ParseLogLevel(cfg.Level)),
			slogobs.WithFormat(slogobs.ParseFormat(cfg.Format)),
			slogobs.WithOutput(stderr),
		)
		return obs, nil, nil
	}
}
