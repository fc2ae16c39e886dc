package numeric

import "math"

// Add returns a + b. Overflow wraps; callers stay within range.
func Add(a, b int) int {
	return a + b
}

// IsPrime reports whether n is prime. It is false for every n < 2.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	// d <= n/d is floor(sqrt(n)) without floats and without d*d overflow.
	for d := 3; d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// PrimesUpTo returns every prime p with 2 <= p <= n in ascending order.
// The result is never nil; it is empty when n < 2.
func PrimesUpTo(n int) []int {
	out := []int{}
	for i := 2; i <= n; i++ {
		if IsPrime(i) {
			out = append(out, i)
		}
		if i == math.MaxInt {
			break
		}
	}
	return out
}
