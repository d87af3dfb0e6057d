package cli

import (
	"github.com/spf13/cobra"

	"github.com/leofalp/agentplan/core/plan"
)

func newPlanCmd(a *app) *cobra.Command {
	var unwrap bool

	cmd := &cobra.Command{
		Use:   "plan [file]",
		Short: "Extract numbered unit proposals from a plan response",
		Long: `Reads a plan response from file (or stdin) and prints the proposals found,
with the name of the parsing stage that produced them. Text nothing understands
yields an empty list, not an error.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args, unwrap)
			if err != nil {
				return err
			}

			parser := plan.NewParser(
				plan.WithKeyword(a.cfg.Keyword),
				plan.WithSentinel(a.cfg.Sentinel),
				plan.WithObserver(a.observer),
			)
			return writeOutput(cmd.OutOrStdout(), a.cfg.Output, parser.Parse(cmd.Context(), text))
		},
	}
	cmd.Flags().String("sentinel", "", "phrase ending the proposal list; empty disables truncation")
	addEnvelopeFlag(cmd, &unwrap)
	return cmd
}
