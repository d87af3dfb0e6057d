package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leofalp/agentplan/core/generate"
	"github.com/leofalp/agentplan/core/validate"
)

// unitsReport is the output of the units command.
type unitsReport struct {
	Units      []generate.Unit `json:"units" yaml:"units"`
	Validation validate.Result `json:"validation" yaml:"validation"`
}

func newUnitsCmd(a *app) *cobra.Command {
	var unwrap bool

	cmd := &cobra.Command{
		Use:   "units [file]",
		Short: "Extract and validate generated unit definitions",
		Long: `Reads a generation response from file (or stdin), prints the units it contains
together with the validation result, and exits non-zero when validation fails.
Warnings never fail the command.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args, unwrap)
			if err != nil {
				return err
			}

			parser := generate.NewParser(
				generate.WithKeyword(a.cfg.Keyword),
				generate.WithObserver(a.observer),
			)
			units := parser.Parse(cmd.Context(), text)
			result := validate.Response(text, units)

			if err := writeOutput(cmd.OutOrStdout(), a.cfg.Output, unitsReport{Units: units, Validation: result}); err != nil {
				return err
			}
			if !result.Valid {
				return fmt.Errorf("validation failed: %s", strings.Join(result.Errors, "; "))
			}
			return nil
		},
	}
	addEnvelopeFlag(cmd, &unwrap)
	return cmd
}
