package ecc

import "fmt"

// Curves y² = x³ + b over F_p with p ≡ 1 mod 3 carry the order-3
// automorphism φ(x, y) = (βx, y), where β is a primitive cube root of unity
// in F_p. Together with negation it generates an automorphism group of
// order 6. On the cyclic group ⟨G⟩ φ acts as multiplication by a scalar λ
// with λ² + λ + 1 ≡ 0 mod n.

// FindBeta returns a primitive cube root of unity modulo p.
func FindBeta(p uint64) (uint64, error) {
	if p <= 3 || p%3 != 1 {
		return 0, &ConfigError{Op: "find beta", Err: fmt.Errorf("%w: p=%d", ErrNoCubeRoot, p)}
	}
	e := (p - 1) / 3
	for g := uint64(2); g < p; g++ {
		if beta := Pow(g, e, p); beta != 1 {
			return beta, nil
		}
	}
	return 0, &ConfigError{Op: "find beta", Err: fmt.Errorf("%w: p=%d", ErrNoCubeRoot, p)}
}

// FindLambda returns the smallest x in [2, n) with x² + x + 1 ≡ 0 mod n.
func FindLambda(n uint64) (uint64, error) {
	roots := lambdaRoots(n, 1)
	if len(roots) == 0 {
		return 0, &ConfigError{Op: "find lambda", Err: fmt.Errorf("%w: n=%d", ErrNoLambda, n)}
	}
	return roots[0], nil
}

// lambdaRoots returns up to limit roots of x² + x + 1 in [2, n), smallest
// first. limit <= 0 means all of them.
func lambdaRoots(n uint64, limit int) []uint64 {
	var roots []uint64
	for x := uint64(2); x < n; x++ {
		if Add(Add(Mul(x, x, n), x, n), 1%n, n) == 0 {
			roots = append(roots, x)
			if limit > 0 && len(roots) == limit {
				break
			}
		}
	}
	return roots
}

// ApplyEndo returns φ(pt) = (βx, y).
func ApplyEndo(pt Point, beta, p uint64) Point {
	if pt.Inf {
		return pt
	}
	return NewPoint(Mul(beta, pt.X, p), pt.Y)
}

// AutomorphismOrbit returns {P, φ(P), φ²(P), -P, -φ(P), -φ²(P)} in that
// order, or {O} for the point at infinity.
func AutomorphismOrbit(pt Point, beta, p uint64) []Point {
	if pt.Inf {
		return []Point{pt}
	}
	beta2 := Mul(beta, beta, p)
	p1 := NewPoint(Mul(beta, pt.X, p), pt.Y)
	p2 := NewPoint(Mul(beta2, pt.X, p), pt.Y)
	ny := Sub(0, pt.Y, p)
	return []Point{
		pt, p1, p2,
		NewPoint(pt.X, ny), NewPoint(p1.X, ny), NewPoint(p2.X, ny),
	}
}

// CanonicalRep returns the lexicographically smallest member of pt's
// automorphism orbit.
func CanonicalRep(pt Point, beta, p uint64) Point {
	orbit := AutomorphismOrbit(pt, beta, p)
	return orbit[smallest(orbit)]
}

func smallest(orbit []Point) int {
	idx := 0
	for i := 1; i < len(orbit); i++ {
		if orbit[i].less(orbit[idx]) {
			idx = i
		}
	}
	return idx
}

// Endomorphism pairs β with the scalar λ that satisfies φ(G) = [λ]G on a
// given curve.
type Endomorphism struct {
	Beta, Beta2     uint64 // cube roots of unity mod P
	Lambda, Lambda2 uint64 // eigenvalues of φ and φ² mod N

	p, n uint64
}

// NewEndomorphism computes β and the root λ of x² + x + 1 mod N that agrees
// with it. x² + x + 1 has two roots mod a prime N; which one φ realises
// depends on the choice of β, so each root is checked against G.
func NewEndomorphism(c *Curve) (*Endomorphism, error) {
	beta, err := FindBeta(c.P)
	if err != nil {
		return nil, err
	}
	roots := lambdaRoots(c.N, 0)
	if len(roots) == 0 {
		return nil, &ConfigError{Op: "new endomorphism", Err: fmt.Errorf("%w: n=%d", ErrNoLambda, c.N)}
	}

	phiG := ApplyEndo(c.G, beta, c.P)
	for _, lambda := range roots {
		if c.ScalarMult(c.G, lambda).Equal(phiG) {
			c.debugf("endomorphism: beta=%d lambda=%d (%d candidate roots)", beta, lambda, len(roots))
			return &Endomorphism{
				Beta:    beta,
				Beta2:   Mul(beta, beta, c.P),
				Lambda:  lambda,
				Lambda2: Mul(lambda, lambda, c.N),
				p:       c.P,
				n:       c.N,
			}, nil
		}
	}
	return nil, &ConfigError{
		Op:  "new endomorphism",
		Err: fmt.Errorf("%w: beta=%d roots=%v", ErrEndomorphismMismatch, beta, roots),
	}
}

// Scalars returns the multipliers {1, λ, λ², n-1, n-λ, n-λ²} matching the
// members of Orbit position by position.
func (e *Endomorphism) Scalars() [6]uint64 {
	n := e.n
	return [6]uint64{
		1 % n, e.Lambda, e.Lambda2,
		Sub(0, 1%n, n), Sub(0, e.Lambda, n), Sub(0, e.Lambda2, n),
	}
}

// Orbit returns the automorphism orbit of pt.
func (e *Endomorphism) Orbit(pt Point) []Point {
	return AutomorphismOrbit(pt, e.Beta, e.p)
}

// Canonical returns the canonical representative of pt and the scalar s
// with [s]pt equal to it. Points fixed by an automorphism appear more than
// once in their orbit; the first position wins, and every matching scalar
// yields the same point.
func (e *Endomorphism) Canonical(pt Point) (Point, uint64) {
	if pt.Inf {
		return pt, 1 % e.n
	}
	orbit := e.Orbit(pt)
	idx := smallest(orbit)
	return orbit[idx], e.Scalars()[idx]
}

// Relate returns the scalar s with [s]from = to, provided to lies in the
// orbit of from.
func (e *Endomorphism) Relate(from, to Point) (uint64, error) {
	scalars := e.Scalars()
	for i, pt := range e.Orbit(from) {
		if pt.Equal(to) {
			return scalars[i], nil
		}
	}
	return 0, fmt.Errorf("%w: %v is not an image of %v", ErrOrbitMismatch, to, from)
}
