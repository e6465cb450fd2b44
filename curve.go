package ecc

import (
	"fmt"
	"math"

	"gopkg.in/op/go-logging.v1"
)

// The curves handled here are y² = x³ + b over F_p with p a prime that fits
// in 64 bits. All arithmetic stays in affine coordinates: the fields are
// toy-sized, and the solvers compare and hash affine points anyway.

// Point is an affine point, or the point at infinity when Inf is set.
type Point struct {
	X, Y uint64
	Inf  bool
}

// Infinity returns the group identity.
func Infinity() Point {
	return Point{Inf: true}
}

// NewPoint returns the affine point (x, y).
func NewPoint(x, y uint64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	if pt.Inf {
		return "O"
	}
	return fmt.Sprintf("(%d, %d)", pt.X, pt.Y)
}

// Equal reports whether pt and q are the same point.
func (pt Point) Equal(q Point) bool {
	if pt.Inf || q.Inf {
		return pt.Inf == q.Inf
	}
	return pt.X == q.X && pt.Y == q.Y
}

// less orders affine points by x, then y.
func (pt Point) less(q Point) bool {
	return pt.X < q.X || (pt.X == q.X && pt.Y < q.Y)
}

// pointKey is the lookup-table encoding of a point. Infinity maps to a
// sentinel no affine point can take, since both coordinates are below p.
type pointKey struct {
	x, y uint64
}

var infinityKey = pointKey{math.MaxUint64, math.MaxUint64}

func (pt Point) key() pointKey {
	if pt.Inf {
		return infinityKey
	}
	return pointKey{pt.X, pt.Y}
}

// Curve represents y² = x³ + b over F_P together with a generator G of
// order N.
type Curve struct {
	P    uint64 // the order of the underlying field
	B    uint64 // the constant of the curve equation
	N    uint64 // the order of G
	G    Point  // the base point
	Name string // optional label

	// Log receives solver diagnostics. A nil Log keeps the solvers quiet.
	Log *logging.Logger
}

// NewCurve counts the points of y² = x³ + b over F_p and finds a generator
// of the whole group. It is brute force and only meant for toy fields.
func NewCurve(p, b uint64) (*Curve, error) {
	if p <= 3 || !isPrime(p) {
		return nil, &ConfigError{Op: "new curve", Err: fmt.Errorf("%w: p=%d is not a prime > 3", ErrInvalidCurve, p)}
	}
	b %= p
	if b == 0 {
		return nil, &ConfigError{Op: "new curve", Err: fmt.Errorf("%w: b ≡ 0 mod p gives a singular curve", ErrInvalidCurve)}
	}

	n := CountPoints(b, p)
	g, err := FindGenerator(b, p, n)
	if err != nil {
		return nil, err
	}
	return &Curve{P: p, B: b, N: n, G: g}, nil
}

// rhs returns x³ + b.
func (c *Curve) rhs(x uint64) uint64 {
	return Add(Pow(x, 3, c.P), c.B, c.P)
}

// IsOnCurve reports whether pt lies on the curve. Infinity is on every curve.
func (c *Curve) IsOnCurve(pt Point) bool {
	if pt.Inf {
		return true
	}
	if pt.X >= c.P || pt.Y >= c.P {
		return false
	}
	return Mul(pt.Y, pt.Y, c.P) == c.rhs(pt.X)
}

// Neg returns -pt = (x, p-y).
func (c *Curve) Neg(pt Point) Point {
	if pt.Inf {
		return pt
	}
	return NewPoint(pt.X, Sub(0, pt.Y, c.P))
}

// Add returns p1 + p2.
func (c *Curve) Add(p1, p2 Point) Point {
	if p1.Inf {
		return p2
	}
	if p2.Inf {
		return p1
	}
	P := c.P
	if p1.X == p2.X {
		if p1.Y == p2.Y && p1.Y != 0 {
			return c.Double(p1)
		}
		// p1 = -p2, or both are the same 2-torsion point
		return Infinity()
	}

	dy := Sub(p2.Y, p1.Y, P)
	dx := Sub(p2.X, p1.X, P)
	slope := Mul(dy, Inv(dx, P), P)

	x3 := Sub(Sub(Mul(slope, slope, P), p1.X, P), p2.X, P)
	y3 := Sub(Mul(slope, Sub(p1.X, x3, P), P), p1.Y, P)
	return NewPoint(x3, y3)
}

// Double returns 2*pt. The curve has a = 0, so the tangent slope is
// 3x²/2y.
func (c *Curve) Double(pt Point) Point {
	if pt.Inf || pt.Y == 0 {
		return Infinity()
	}
	P := c.P
	num := Mul(3, Mul(pt.X, pt.X, P), P)
	den := Mul(2, pt.Y, P)
	slope := Mul(num, Inv(den, P), P)

	x3 := Sub(Mul(slope, slope, P), Mul(2, pt.X, P), P)
	y3 := Sub(Mul(slope, Sub(pt.X, x3, P), P), pt.Y, P)
	return NewPoint(x3, y3)
}

// ScalarMult returns k*pt.
func (c *Curve) ScalarMult(pt Point, k uint64) Point {
	result := Infinity()
	if k == 0 || pt.Inf {
		return result
	}
	base := pt
	for k > 0 {
		if k&1 == 1 {
			result = c.Add(result, base)
		}
		base = c.Double(base)
		k >>= 1
	}
	return result
}

// ScalarBaseMult returns k*G.
func (c *Curve) ScalarBaseMult(k uint64) Point {
	return c.ScalarMult(c.G, k)
}

// CountPoints returns #E(F_p) for y² = x³ + b, the point at infinity
// included, by scanning every x.
func CountPoints(b, p uint64) uint64 {
	count := uint64(1)
	for x := uint64(0); x < p; x++ {
		rhs := Add(Pow(x, 3, p), b%p, p)
		switch {
		case rhs == 0:
			count++
		case Legendre(rhs, p) == 1:
			count += 2
		}
	}
	return count
}

// FindGenerator returns the first point, scanning x upwards, whose order is
// exactly n.
func FindGenerator(b, p, n uint64) (Point, error) {
	c := &Curve{P: p, B: b % p}
	primes := primeFactors(n)
	for x := uint64(1); x < p; x++ {
		y, ok := Sqrt(c.rhs(x), p)
		if !ok || y == 0 {
			continue
		}
		pt := NewPoint(x, y)
		if !c.ScalarMult(pt, n).Inf {
			continue
		}
		full := true
		for _, f := range primes {
			if c.ScalarMult(pt, n/f).Inf {
				full = false
				break
			}
		}
		if full {
			return pt, nil
		}
	}
	return Point{}, &ConfigError{
		Op:  "find generator",
		Err: fmt.Errorf("%w: y^2 = x^3 + %d over F_%d with order %d", ErrNoGenerator, b, p, n),
	}
}

// HasOrder reports whether pt has order exactly n.
func (c *Curve) HasOrder(pt Point, n uint64) bool {
	if n == 0 || !c.ScalarMult(pt, n).Inf {
		return false
	}
	for _, f := range primeFactors(n) {
		if c.ScalarMult(pt, n/f).Inf {
			return false
		}
	}
	return true
}

func (c *Curve) debugf(format string, args ...interface{}) {
	if c.Log != nil {
		c.Log.Debugf(format, args...)
	}
}
