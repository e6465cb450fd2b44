package verify

import (
	"github.com/holiman/uint256"
)

// Affine group law for y² = x³ + b over a 256-bit prime field. Only what
// the endomorphism check needs: it is slow and not constant time.

type point struct {
	x, y *uint256.Int
	inf  bool
}

func (pt point) equal(q point) bool {
	if pt.inf || q.inf {
		return pt.inf == q.inf
	}
	return pt.x.Eq(q.x) && pt.y.Eq(q.y)
}

func (pt point) String() string {
	if pt.inf {
		return "O"
	}
	return pt.x.Hex()
}

type curve struct {
	p, b *uint256.Int
}

func (c *curve) sub(x, y *uint256.Int) *uint256.Int {
	neg := new(uint256.Int).Sub(c.p, y)
	return neg.AddMod(x, neg, c.p)
}

func (c *curve) mul(x, y *uint256.Int) *uint256.Int {
	return new(uint256.Int).MulMod(x, y, c.p)
}

// inv computes x^(p-2) mod p.
func (c *curve) inv(x *uint256.Int) *uint256.Int {
	e := new(uint256.Int).Sub(c.p, uint256.NewInt(2))
	result := uint256.NewInt(1)
	base := new(uint256.Int).Mod(x, c.p)
	for !e.IsZero() {
		if e.Uint64()&1 == 1 {
			result.MulMod(result, base, c.p)
		}
		base.MulMod(base, base, c.p)
		e.Rsh(e, 1)
	}
	return result
}

func (c *curve) isOnCurve(pt point) bool {
	if pt.inf {
		return true
	}
	if !pt.x.Lt(c.p) || !pt.y.Lt(c.p) {
		return false
	}
	rhs := c.mul(c.mul(pt.x, pt.x), pt.x)
	rhs.AddMod(rhs, c.b, c.p)
	return c.mul(pt.y, pt.y).Eq(rhs)
}

func (c *curve) add(p1, p2 point) point {
	if p1.inf {
		return p2
	}
	if p2.inf {
		return p1
	}
	var slope *uint256.Int
	if p1.x.Eq(p2.x) {
		if !p1.y.Eq(p2.y) || p1.y.IsZero() {
			return point{inf: true}
		}
		num := c.mul(uint256.NewInt(3), c.mul(p1.x, p1.x))
		den := c.mul(uint256.NewInt(2), p1.y)
		slope = c.mul(num, c.inv(den))
	} else {
		slope = c.mul(c.sub(p2.y, p1.y), c.inv(c.sub(p2.x, p1.x)))
	}
	x3 := c.sub(c.sub(c.mul(slope, slope), p1.x), p2.x)
	y3 := c.sub(c.mul(slope, c.sub(p1.x, x3)), p1.y)
	return point{x: x3, y: y3}
}

func (c *curve) scalarMult(pt point, k *uint256.Int) point {
	result := point{inf: true}
	e := k.Clone()
	for !e.IsZero() {
		if e.Uint64()&1 == 1 {
			result = c.add(result, pt)
		}
		pt = c.add(pt, pt)
		e.Rsh(e, 1)
	}
	return result
}
