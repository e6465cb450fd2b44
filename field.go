package ecc

import (
	"math"
	"math/bits"
)

// Modular arithmetic over a modulus that fits in 64 bits. Products go
// through a 128-bit intermediate, so any m < 2^64 is safe.

// Add returns a+b mod m. a and b must already be reduced.
func Add(a, b, m uint64) uint64 {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 || s >= m {
		s -= m
	}
	return s
}

// Sub returns a-b mod m. a and b must already be reduced.
func Sub(a, b, m uint64) uint64 {
	if a >= b {
		return a - b
	}
	return a + (m - b)
}

// Mul returns a*b mod m.
func Mul(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, r := bits.Div64(hi%m, lo, m)
	return r
}

// Pow returns base^exp mod m.
func Pow(base, exp, m uint64) uint64 {
	if m == 1 {
		return 0
	}
	result := uint64(1)
	b := base % m
	for exp > 0 {
		if exp&1 == 1 {
			result = Mul(result, b, m)
		}
		b = Mul(b, b, m)
		exp >>= 1
	}
	return result
}

// invert computes the inverse of a modulo m with the extended Euclidean
// algorithm. The Bezout coefficient is tracked modulo m, so m does not
// need to be prime. ok is false when gcd(a, m) != 1.
func invert(a, m uint64) (inv uint64, ok bool) {
	if m <= 1 {
		return 0, false
	}
	oldR, r := a%m, m
	oldS, s := uint64(1), uint64(0)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, Sub(oldS, Mul(q%m, s, m), m)
	}
	if oldR != 1 {
		return 0, false
	}
	return oldS, true
}

// Inv returns the inverse of a modulo m. The group law never calls it with
// a non-invertible value; doing so is a programming error and panics.
func Inv(a, m uint64) uint64 {
	inv, ok := invert(a, m)
	if !ok {
		panic("ecc: attempted inversion of a non-invertible element")
	}
	return inv
}

// Legendre returns the Legendre symbol (a|p) as 1, p-1 or 0.
func Legendre(a, p uint64) uint64 {
	return Pow(a%p, (p-1)/2, p)
}

// Sqrt returns a square root of a modulo the odd prime p, or false when a
// is a non-residue.
func Sqrt(a, p uint64) (uint64, bool) {
	a %= p
	if a == 0 {
		return 0, true
	}
	if Legendre(a, p) != 1 {
		return 0, false
	}

	// p ≡ 3 mod 4 shortcut
	if p%4 == 3 {
		return Pow(a, (p+1)/4, p), true
	}

	// Tonelli–Shanks: p-1 = q*2^s with q odd
	q, s := p-1, 0
	for q&1 == 0 {
		q >>= 1
		s++
	}
	z := uint64(2)
	for Legendre(z, p) != p-1 {
		z++
	}

	m := s
	c := Pow(z, q, p)
	t := Pow(a, q, p)
	r := Pow(a, (q+1)/2, p)
	for t != 1 {
		// least i with t^(2^i) = 1
		i := 1
		t2 := Mul(t, t, p)
		for t2 != 1 {
			t2 = Mul(t2, t2, p)
			i++
			if i == m {
				return 0, false
			}
		}
		b := Pow(c, uint64(1)<<uint(m-i-1), p)
		m = i
		c = Mul(b, b, p)
		t = Mul(t, c, p)
		r = Mul(r, b, p)
	}
	return r, true
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// isqrt returns floor(sqrt(n)).
func isqrt(n uint64) uint64 {
	r := uint64(math.Sqrt(float64(n)))
	for r > 0 && overflowsSquare(r, n) {
		r--
	}
	for !overflowsSquare(r+1, n) {
		r++
	}
	return r
}

// overflowsSquare reports whether r*r > n.
func overflowsSquare(r, n uint64) bool {
	hi, lo := bits.Mul64(r, r)
	return hi != 0 || lo > n
}

// ceilSqrt returns the smallest m with m*m >= n.
func ceilSqrt(n uint64) uint64 {
	r := isqrt(n)
	if r*r < n {
		r++
	}
	return r
}
