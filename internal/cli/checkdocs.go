package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leofalp/agentplan/core/document"
	"github.com/leofalp/agentplan/core/validate"
	"github.com/leofalp/agentplan/providers/observability"
)

func newCheckDocsCmd(a *app) *cobra.Command {
	var library, reference []string

	cmd := &cobra.Command{
		Use:   "check-docs",
		Short: "Reject supporting documents that still contain placeholder text",
		Long: `Loads library and reference documents (HTML files are converted to markdown)
and checks them for placeholder phrases. Exits non-zero naming the first
offending document: library documents are checked before reference files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			libDocs, err := document.LoadFiles(document.KindLibrary, library...)
			if err != nil {
				return err
			}
			refDocs, err := document.LoadFiles(document.KindReference, reference...)
			if err != nil {
				return err
			}

			result := validate.NoPlaceholders(append(libDocs, refDocs...))
			if !result.Valid {
				a.observer.Warn(cmd.Context(), "placeholder content found",
					observability.String(observability.AttrDocumentName, result.DocumentName))
			}

			if err := writeOutput(cmd.OutOrStdout(), a.cfg.Output, result); err != nil {
				return err
			}
			if !result.Valid {
				return fmt.Errorf("document %q contains placeholder content", result.DocumentName)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&library, "library", nil, "library document to check (repeatable)")
	cmd.Flags().StringSliceVar(&reference, "reference", nil, "reference file to check (repeatable)")
	return cmd
}
