package output

// SumResult is the result of the add operation.
type SumResult struct {
	A   int `json:"a" yaml:"a"`
	B   int `json:"b" yaml:"b"`
	Sum int `json:"sum" yaml:"sum"`
}

// PrimeResult is the result of a primality test.
type PrimeResult struct {
	N     int  `json:"n" yaml:"n"`
	Prime bool `json:"prime" yaml:"prime"`
}

// PrimesResult is the result of enumerating primes up to N.
type PrimesResult struct {
	N      int   `json:"n" yaml:"n"`
	Count  int   `json:"count" yaml:"count"`
	Primes []int `json:"primes" yaml:"primes"`
}

// PrimeCountResult is the result of counting primes up to N.
type PrimeCountResult struct {
	N     int `json:"n" yaml:"n"`
	Count int `json:"count" yaml:"count"`
}

// YesNo renders a boolean the way the CLI prints answers.
func YesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
