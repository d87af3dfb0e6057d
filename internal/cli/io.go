package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/leofalp/agentplan/core/envelope"
	"github.com/leofalp/agentplan/internal/config"
)

// readInput returns the model text from the file named in args, or from stdin
// when args is empty or "-". With unwrap set the input is a raw chat
// completion body and its message content is returned instead.
func readInput(cmd *cobra.Command, args []string, unwrap bool) (string, error) {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
	}

	if !unwrap {
		return string(data), nil
	}
	content, err := envelope.Content(data)
	if err != nil {
		return "", fmt.Errorf("unwrap envelope: %w", err)
	}
	return content, nil
}

// writeOutput encodes v to w in the configured format.
func writeOutput(w io.Writer, format string, v any) error {
	switch format {
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	}
}

func addEnvelopeFlag(cmd *cobra.Command, target *bool) {
	cmd.Flags().BoolVar(target, "envelope", false, "input is a raw chat-completion response body")
}
