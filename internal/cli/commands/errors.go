package commands

import (
	"fmt"
	"strconv"
)

// ArgumentError is returned when a positional argument is not a valid integer.
type ArgumentError struct {
	Name  string
	Value string
	Err   error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid %s %q: expected an integer", e.Name, e.Value)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}

// BoundError is returned when an enumeration bound exceeds the configured max_bound.
type BoundError struct {
	N   int
	Max int
}

func (e *BoundError) Error() string {
	return fmt.Sprintf("bound %d exceeds max_bound %d\nHint: raise max_bound in leapcalc.yaml or pass --max-bound", e.N, e.Max)
}

// parseIntArg parses a base-10 integer argument.
func parseIntArg(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &ArgumentError{Name: name, Value: value, Err: err}
	}
	return n, nil
}
