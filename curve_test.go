package ecc

import (
	"errors"
	"testing"
)

func sampleCurves() map[string]*Curve {
	curves := make(map[string]*Curve)

	// p ≡ 1 mod 4, prime order
	curves["D3-10477"] = &Curve{
		P: 10477,
		B: 7,
		N: 10639,
		G: NewPoint(3, 731),
	}

	// composite orders with points on x = 0, where φ fixes the point
	curves["D3-43"] = &Curve{
		P: 43,
		B: 9,
		N: 57,
		G: NewPoint(1, 15),
	}

	curves["D3-31"] = &Curve{
		P: 31,
		B: 5,
		N: 39,
		G: NewPoint(3, 1),
	}

	curves["D3-67"] = &Curve{
		P: 67,
		B: 4,
		N: 57,
		G: NewPoint(5, 14),
	}

	// the class of G doubles into itself
	curves["D3-13"] = &Curve{
		P: 13,
		B: 7,
		N: 7,
		G: NewPoint(7, 8),
	}

	// doubling swaps the classes of G and [2]G
	curves["D3-19"] = &Curve{
		P: 19,
		B: 4,
		N: 21,
		G: NewPoint(4, 7),
	}

	curves["D3-397"] = &Curve{
		P: 397,
		B: 3,
		N: 399,
		G: NewPoint(1, 395),
	}
	return curves
}

func testAllCurves(t *testing.T, f func(*testing.T, *Curve)) {
	for name, c := range sampleCurves() {
		c := c
		c.Name = name
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			f(t, c)
		})
	}
}

// multiples returns up to limit points [k]G, k = 0, 1, 2, ...
func multiples(c *Curve, limit uint64) []Point {
	if limit > c.N {
		limit = c.N
	}
	pts := make([]Point, 0, limit)
	pt := Infinity()
	for k := uint64(0); k < limit; k++ {
		pts = append(pts, pt)
		pt = c.Add(pt, c.G)
	}
	return pts
}

func TestOnCurve(t *testing.T) {
	testAllCurves(t, func(t *testing.T, curve *Curve) {
		if !curve.IsOnCurve(curve.G) {
			t.Error("base Point is not on the curve")
		}
		if !curve.IsOnCurve(Infinity()) {
			t.Error("∞ is not on the curve")
		}
	})
}

func TestOffCurve(t *testing.T) {
	testAllCurves(t, func(t *testing.T, curve *Curve) {
		if curve.IsOnCurve(NewPoint(1, 1)) {
			t.Errorf("Point off curve is claimed to be on the curve")
		}
		if curve.IsOnCurve(NewPoint(curve.G.X+curve.P, curve.G.Y)) {
			t.Errorf("unreduced coordinates are claimed to be on the curve")
		}
	})
}

func TestInfinity(t *testing.T) {
	testAllCurves(t, func(t *testing.T, curve *Curve) {
		if pt := curve.ScalarMult(curve.G, curve.N); !pt.Inf {
			t.Errorf("[n]G = %v != ∞", pt)
		}
		if pt := curve.ScalarBaseMult(0); !pt.Inf {
			t.Errorf("[0]G = %v != ∞", pt)
		}
		if pt := curve.ScalarMult(Infinity(), 12345); !pt.Inf {
			t.Errorf("[k]∞ = %v != ∞", pt)
		}
		if pt := curve.Double(Infinity()); !pt.Inf {
			t.Errorf("2∞ = %v != ∞", pt)
		}
		if pt := curve.Add(curve.G, Infinity()); pt != curve.G {
			t.Errorf("G + ∞ = %v != G", pt)
		}
		if pt := curve.Add(Infinity(), curve.G); pt != curve.G {
			t.Errorf("∞ + G = %v != G", pt)
		}
	})
}

func TestGroupLaw(t *testing.T) {
	testAllCurves(t, func(t *testing.T, curve *Curve) {
		pts := multiples(curve, 60)
		for i, p1 := range pts {
			if sum := curve.Add(p1, curve.Neg(p1)); !sum.Inf {
				t.Errorf("[%d]G - [%d]G = %v != ∞", i, i, sum)
			}
			if !p1.Inf && curve.Double(p1) != curve.Add(p1, p1) {
				t.Errorf("2*[%d]G differs from [%d]G + [%d]G", i, i, i)
			}
			for j, p2 := range pts {
				sum := curve.Add(p1, p2)
				if !curve.IsOnCurve(sum) {
					t.Fatalf("[%d]G + [%d]G = %v is not on the curve", i, j, sum)
				}
				if sum != curve.Add(p2, p1) {
					t.Fatalf("[%d]G + [%d]G is not commutative", i, j)
				}
				if want := curve.ScalarBaseMult(uint64(i + j)); !sum.Equal(want) {
					t.Fatalf("[%d]G + [%d]G want: %v, got: %v", i, j, want, sum)
				}
			}
		}
	})
}

func TestOrder(t *testing.T) {
	testAllCurves(t, func(t *testing.T, curve *Curve) {
		if !curve.HasOrder(curve.G, curve.N) {
			t.Errorf("G does not have order %d", curve.N)
		}
		for d := uint64(1); d < curve.N; d++ {
			if curve.N%d == 0 && curve.ScalarBaseMult(d).Inf {
				t.Errorf("[%d]G = ∞ for a proper divisor of %d", d, curve.N)
			}
		}
	})
}

func TestNewCurve(t *testing.T) {
	testAllCurves(t, func(t *testing.T, want *Curve) {
		got, err := NewCurve(want.P, want.B)
		if err != nil {
			t.Fatal(err)
		}
		if got.N != want.N || got.G != want.G {
			t.Errorf("want: n=%d G=%v, got: n=%d G=%v", want.N, want.G, got.N, got.G)
		}
		if n := CountPoints(want.B, want.P); n != want.N {
			t.Errorf("[CountPoints] want: %d, got: %d", want.N, n)
		}
	})
}

func TestNewCurveInvalid(t *testing.T) {
	cases := []struct {
		p, b uint64
	}{
		{3, 1},
		{15, 7},
		{10477, 0},
		{43, 43},
	}
	for _, c := range cases {
		_, err := NewCurve(c.p, c.b)
		if !errors.Is(err, ErrInvalidCurve) {
			t.Errorf("NewCurve(%d, %d) want: %v, got: %v", c.p, c.b, ErrInvalidCurve, err)
		}
		var cfgErr *ConfigError
		if !errors.As(err, &cfgErr) {
			t.Errorf("NewCurve(%d, %d) error %T is not a *ConfigError", c.p, c.b, err)
		}
	}
}

func TestFindGeneratorWrongOrder(t *testing.T) {
	_, err := FindGenerator(9, 43, 58)
	if !errors.Is(err, ErrNoGenerator) {
		t.Errorf("want: %v, got: %v", ErrNoGenerator, err)
	}
}

func TestPointKey(t *testing.T) {
	if Infinity().key() != infinityKey {
		t.Error("∞ does not map to the sentinel key")
	}
	if NewPoint(0, 0).key() == Infinity().key() {
		t.Error("(0, 0) collides with ∞")
	}
	if NewPoint(3, 731).key() != (pointKey{3, 731}) {
		t.Error("affine key does not carry the coordinates")
	}
}
