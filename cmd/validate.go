package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/xkilldash9x/skelgen-cli/api/schemas"
	"github.com/xkilldash9x/skelgen-cli/internal/assembler"
)

// newValidateCmd creates the `validate` command: checks a precomputed spec
// before it is handed to a renderer. Every violation is reported, not just
// the first.
func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [spec.json]",
		Short: "Validates a skeleton spec file (use - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader
			if args[0] == "-" {
				r = cmd.InOrStdin()
			} else {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening spec file: %w", err)
				}
				defer f.Close()
				r = f
			}

			spec, err := schemas.DecodeSpec(r)
			if err != nil {
				return err
			}

			result := assembler.Validate(spec)
			if result.IsValid {
				fmt.Fprintf(cmd.OutOrStdout(), "valid: %d primitives\n", len(spec.Children))
				return nil
			}
			for _, msg := range result.Errors {
				fmt.Fprintln(cmd.OutOrStdout(), "invalid:", msg)
			}
			return fmt.Errorf("spec failed validation with %d error(s)", len(result.Errors))
		},
	}
}
