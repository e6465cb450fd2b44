package ecc

import (
	"math"
)

// walkState is a point of the rho walk with R = aG + bQ.
type walkState struct {
	r    Point
	a, b uint64
}

// rhoWalk is the iteration function of Pollard's rho. The walk partitions
// points by (x + shift) mod 3 (infinity in zone 0):
//
//	zone 0: R += [u]Q, b += u
//	zone 1: R = 2R,    a, b doubled
//	zone 2: R += [v]G, a += v
//
// u, v start at 1 and shift at 0. All three change only when the walk is
// re-keyed after a degenerate collision.
type rhoWalk struct {
	c   *Curve
	cls classifier
	q   Point

	u, v   uint64
	mq, mg Point
	shift  uint64

	perturbations int
}

func (c *Curve) newRhoWalk(q Point, cls classifier) *rhoWalk {
	w := &rhoWalk{c: c, cls: cls, q: q}
	w.setKey(1, 1)
	return w
}

func (w *rhoWalk) setKey(u, v uint64) {
	n := w.c.N
	w.u, w.v = u%n, v%n
	w.mq = w.c.ScalarMult(w.q, w.u)
	w.mg = w.c.ScalarMult(w.c.G, w.v)
}

func (w *rhoWalk) zone(pt Point) uint64 {
	if pt.Inf {
		return 0
	}
	return (pt.X%3 + w.shift) % 3
}

// start returns G's class representative with a pre-scaled to match.
func (w *rhoWalk) start() walkState {
	rep, s := w.cls.canonical(w.c.G)
	return walkState{r: rep, a: s % w.c.N}
}

func (w *rhoWalk) step(s walkState) walkState {
	c, n := w.c, w.c.N
	switch w.zone(s.r) {
	case 0:
		s.r = c.Add(s.r, w.mq)
		s.b = Add(s.b, w.u, n)
	case 1:
		s.r = c.Double(s.r)
		s.a = Add(s.a, s.a, n)
		s.b = Add(s.b, s.b, n)
	default:
		s.r = c.Add(s.r, w.mg)
		s.a = Add(s.a, w.v, n)
	}

	rep, k := w.cls.canonical(s.r)
	s.r = rep
	s.a = Mul(s.a, k, n)
	s.b = Mul(s.b, k, n)
	return s
}

// resolve turns a collision aG + bQ = a'G + b'Q into k. With
// d = gcd(b'-b, n) the relation pins k down modulo n/d, leaving d
// candidates that are checked against Q. ok is false for a degenerate
// collision: d = n, d does not divide a-a', or no candidate matches.
func (w *rhoWalk) resolve(t, h walkState) (k uint64, ok bool) {
	c, n := w.c, w.c.N
	da := Sub(t.a, h.a, n)
	db := Sub(h.b, t.b, n)
	d := gcd(db, n)
	if d == n || da%d != 0 {
		return 0, false
	}
	nd := n / d
	inv, ok := invert(db/d, nd)
	if !ok {
		return 0, false
	}
	k0 := Mul((da/d)%nd, inv, nd)
	for i := uint64(0); i < d; i++ {
		k = k0 + i*nd
		if c.ScalarMult(c.G, k).Equal(w.q) {
			return k, true
		}
	}
	return 0, false
}

// perturb re-keys the walk and steps once under the new key. The
// additive steps change with u and v, and the partition rotates so that a
// class which doubles into itself, or a cycle made only of doublings, is
// left through an addition.
func (w *rhoWalk) perturb(t walkState) walkState {
	w.perturbations++
	w.setKey(w.u+1, w.v+2)
	w.shift = uint64(w.perturbations) % 3
	return w.step(t)
}

func (w *rhoWalk) run(name string, t, h walkState) (Result, error) {
	n := w.c.N
	limit := uint64(math.MaxUint64)
	if n < math.MaxUint64/8 {
		limit = 8 * n
	}

	var round uint64
	for round < limit {
		t = w.step(t)
		h = w.step(w.step(h))
		round++
		if !t.r.Equal(h.r) {
			continue
		}
		if k, ok := w.resolve(t, h); ok {
			w.c.debugf("%s: k=%d after %d rounds, %d perturbations", name, k, round, w.perturbations)
			return Result{K: k, Work: round + uint64(w.perturbations), Perturbations: w.perturbations}, nil
		}
		w.c.debugf("%s: degenerate collision at round %d (a=%d b=%d, a'=%d b'=%d), re-keying", name, round, t.a, t.b, h.a, h.b)
		t = w.perturb(t)
		h = t
	}
	return Result{Work: round + uint64(w.perturbations), Perturbations: w.perturbations}, &SearchError{Solver: name, Index: round, Err: ErrSearchExhausted}
}

// PollardRho solves Q = [k]G with Pollard's rho and Floyd cycle detection.
func (c *Curve) PollardRho(q Point) (Result, error) {
	const name = "pollard-rho"
	if err := c.checkTarget(name, q); err != nil {
		return Result{}, err
	}
	w := c.newRhoWalk(q, identityClass{c.N})
	s := w.start()
	return w.run(name, s, s)
}

// PollardRhoGLV runs the rho walk on automorphism classes: after every
// step the point is replaced by its canonical representative and (a, b)
// are scaled by the matching automorphism scalar.
func (c *Curve) PollardRhoGLV(q Point, e *Endomorphism) (Result, error) {
	const name = "pollard-rho-glv"
	if err := c.checkTarget(name, q); err != nil {
		return Result{}, err
	}
	if err := c.checkEndomorphism(name, e); err != nil {
		return Result{}, err
	}
	w := c.newRhoWalk(q, e)
	s := w.start()
	return w.run(name, s, s)
}
