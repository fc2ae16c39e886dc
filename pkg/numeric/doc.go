// Package numeric is the arithmetic core of leapcalc.
//
// This package contains:
//   - Add: integer sum
//   - IsPrime: deterministic primality by bounded trial division
//   - PrimesUpTo: ascending enumeration of primes in [2, n]
//
// Every function is pure and stateless. The package imports only the
// standard library; the CLI depends on it, never the reverse.
package numeric
