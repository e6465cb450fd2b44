package ecc

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCurve         = errors.New("invalid curve parameters")
	ErrNotOnCurve           = errors.New("point is not on the curve")
	ErrNoGenerator          = errors.New("no full-order generator found")
	ErrNoCubeRoot           = errors.New("p is not 1 mod 3, no primitive cube root of unity")
	ErrNoLambda             = errors.New("x^2+x+1 has no root mod n")
	ErrEndomorphismMismatch = errors.New("no root lambda of x^2+x+1 satisfies phi(G) = [lambda]G")

	ErrSearchExhausted = errors.New("search exhausted without a match")
	ErrOrbitMismatch   = errors.New("point is not in the automorphism orbit")
)

// ConfigError reports curve or order parameters that cannot support the
// requested operation.
type ConfigError struct {
	Op  string
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("ecc: %s: %v", e.Op, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// SearchError reports a solver loop that ended without recovering k, along
// with the loop index it had reached.
type SearchError struct {
	Solver string
	Index  uint64
	Err    error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("ecc: %s: %v (index %d)", e.Solver, e.Err, e.Index)
}

func (e *SearchError) Unwrap() error { return e.Err }
