package commands

import (
	"github.com/spf13/cobra"
)

// NewPrimesCommand creates the primes command.
func NewPrimesCommand() *cobra.Command {
	opts := &PrimesOptions{}
	cmd := &cobra.Command{
		Use:   "primes <n>",
		Short: "List every prime up to n",
		Long: `List every prime p with 2 <= p <= n in ascending order.

The bound is limited by max_bound (default 10,000,000) so a typo cannot
start an enumeration that runs for hours.

Output adapts to environment:
  - Terminal: Styled header and list
  - Piped/Scripted: Markdown format (agent-friendly)

Use --output to override: auto, text, markdown, json, yaml`,
		Example: `  # List primes up to 10
  leapcalc primes 10

  # Count primes up to one million
  leapcalc primes 1000000 --count

  # Numbered table
  leapcalc primes 50 --table`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return evalPrimes(NewCommandContext(cmd), args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Count, "count", "c", false, "Print only the number of primes")
	cmd.Flags().BoolVar(&opts.Table, "table", false, "Render primes as a numbered table")
	cmd.MarkFlagsMutuallyExclusive("count", "table")

	return cmd
}
