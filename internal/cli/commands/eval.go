package commands

import (
	"github.com/leapstack-labs/leapcalc/internal/cli/output"
	"github.com/leapstack-labs/leapcalc/pkg/numeric"
)

// evalAdd parses both operands and renders their sum.
func evalAdd(cc *CommandContext, aArg, bArg string) error {
	a, err := parseIntArg("operand", aArg)
	if err != nil {
		return err
	}
	b, err := parseIntArg("operand", bArg)
	if err != nil {
		return err
	}

	sum := numeric.Add(a, b)
	cc.Logger.Debug("evaluated add", "a", a, "b", b, "sum", sum)
	return cc.Renderer.Sum(output.SumResult{A: a, B: b, Sum: sum})
}

// evalPrime parses n and renders whether it is prime.
func evalPrime(cc *CommandContext, nArg string) error {
	n, err := parseIntArg("number", nArg)
	if err != nil {
		return err
	}

	prime := numeric.IsPrime(n)
	cc.Logger.Debug("evaluated prime", "n", n, "prime", prime)
	return cc.Renderer.Prime(output.PrimeResult{N: n, Prime: prime})
}

// PrimesOptions holds options for the primes command.
type PrimesOptions struct {
	Count bool // Print only the number of primes
	Table bool // Render a numbered table
}

// evalPrimes parses the bound, enforces max_bound and renders the enumeration.
func evalPrimes(cc *CommandContext, nArg string, opts *PrimesOptions) error {
	n, err := parseIntArg("bound", nArg)
	if err != nil {
		return err
	}
	if n > cc.Cfg.MaxBound {
		return &BoundError{N: n, Max: cc.Cfg.MaxBound}
	}

	primes := numeric.PrimesUpTo(n)
	cc.Logger.Debug("enumerated primes", "n", n, "count", len(primes))

	if opts.Count {
		return cc.Renderer.PrimeCount(output.PrimeCountResult{N: n, Count: len(primes)})
	}
	return cc.Renderer.Primes(
		output.PrimesResult{N: n, Count: len(primes), Primes: primes},
		output.PrimesOptions{Table: opts.Table},
	)
}
