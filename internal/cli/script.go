package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leofalp/agentplan/core/generate"
	"github.com/leofalp/agentplan/core/script"
)

func newScriptCmd(a *app) *cobra.Command {
	var (
		unwrap   bool
		markdown bool
		demo     script.Context
	)

	cmd := &cobra.Command{
		Use:   "script [file]",
		Short: "Render a demo script from a generation response",
		Long: `Parses the units in a generation response from file (or stdin) and builds a
presenter script: an opening, one section and business-value callout per unit,
and a closing. --markdown prints the rendered document instead of the sections.`,
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
			demo.Keyword = a.cfg.Keyword
			s := script.Generate(parser.Parse(cmd.Context(), text), demo)

			if markdown {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), s.Markdown)
				return err
			}
			return writeOutput(cmd.OutOrStdout(), a.cfg.Output, s)
		},
	}
	cmd.Flags().StringVar(&demo.CompanyContext, "company", "", "company background quoted in the opening")
	cmd.Flags().StringVar(&demo.DemoObjectives, "objectives", "", "demo objectives quoted in the opening")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "print the rendered markdown")
	addEnvelopeFlag(cmd, &unwrap)
	return cmd
}
