package commands

import (
	"fmt"
	"io"

	"github.com/leapstack-labs/leapcalc/internal/cli/output"
	"github.com/leapstack-labs/leapcalc/pkg/numeric"
	"github.com/spf13/cobra"
)

// SkipConfigAnnotation marks commands that run without loading configuration.
const SkipConfigAnnotation = "leapcalc/skip-config"

// WriteDemo prints the fixed demonstration lines.
func WriteDemo(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "2 + 3 = %d\n", numeric.Add(2, 3)); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Is 17 prime? %s\n", output.YesNo(numeric.IsPrime(17)))
	return err
}

// NewDemoCommand creates the demo command.
func NewDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print the demonstration output",
		Long: `Print a sum and a primality check with fixed inputs.

The output is always plain text and ignores --output. Running leapcalc
without a subcommand does the same thing.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{SkipConfigAnnotation: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return WriteDemo(cmd.OutOrStdout())
		},
	}
}
