package commands

import (
	"github.com/spf13/cobra"
)

// NewPrimeCommand creates the prime command.
func NewPrimeCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "prime <n>",
		Aliases: []string{"is-prime"},
		Short:   "Check whether an integer is prime",
		Long: `Check whether an integer is prime using trial division.

Every integer below 2, including all negatives, is reported as not prime.`,
		Example: `  # Check a prime
  leapcalc prime 17

  # Check a composite as YAML
  leapcalc prime 100 -o yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return evalPrime(NewCommandContext(cmd), args[0])
		},
	}
}
