package commands

import (
	"github.com/spf13/cobra"
)

// NewAddCommand creates the add command.
func NewAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add <a> <b>",
		Short: "Add two integers",
		Long: `Add two integers and print the sum.

Overflow wraps around; keep operands within the platform int range.`,
		Example: `  # Add two numbers
  leapcalc add 2 3

  # Negative operands go after --
  leapcalc add -- -1 1

  # Machine-readable output
  leapcalc add 2 3 --output json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return evalAdd(NewCommandContext(cmd), args[0], args[1])
		},
	}
}
