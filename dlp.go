package ecc

import (
	"fmt"
)

// Result is the outcome of a discrete-log solve.
type Result struct {
	K uint64 // recovered scalar, [K]G = Q

	// Work is the number of group additions for BSGS. For Pollard's rho
	// it is the number of rounds (one tortoise step, two hare steps) plus
	// one step per perturbation.
	Work uint64

	// Perturbations counts degenerate rho collisions the walk recovered
	// from.
	Perturbations int
}

func (c *Curve) checkTarget(op string, q Point) error {
	if c.N == 0 || !c.IsOnCurve(c.G) {
		return &ConfigError{Op: op, Err: fmt.Errorf("%w: generator %v of order %d", ErrInvalidCurve, c.G, c.N)}
	}
	if !c.IsOnCurve(q) {
		return &ConfigError{Op: op, Err: fmt.Errorf("%w: %v", ErrNotOnCurve, q)}
	}
	return nil
}

func (c *Curve) checkEndomorphism(op string, e *Endomorphism) error {
	if e == nil || e.p != c.P || e.n != c.N {
		return &ConfigError{Op: op, Err: fmt.Errorf("%w: endomorphism was built for another curve", ErrEndomorphismMismatch)}
	}
	return nil
}

// BSGS solves Q = [k]G with Shanks' baby-step giant-step algorithm.
func (c *Curve) BSGS(q Point) (Result, error) {
	const name = "bsgs"
	if err := c.checkTarget(name, q); err != nil {
		return Result{}, err
	}
	m := ceilSqrt(c.N)
	return c.bsgs(name, q, m, m+1, identityClass{c.N})
}

// BSGSGLV solves Q = [k]G with a baby-step table keyed by automorphism
// class. Each table entry stands for six points, so the table shrinks to
// ⌈√(n/6)⌉ entries.
func (c *Curve) BSGSGLV(q Point, e *Endomorphism) (Result, error) {
	const name = "bsgs-glv"
	if err := c.checkTarget(name, q); err != nil {
		return Result{}, err
	}
	if err := c.checkEndomorphism(name, e); err != nil {
		return Result{}, err
	}

	// smallest m with 6m² >= n
	m := ceilSqrt((c.N + 5) / 6)
	if m == 0 {
		m = 1
	}
	giants := (c.N+m-1)/m + 2
	return c.bsgs(name, q, m, giants, e)
}

// bsgs stores [j]G for j in [0, m) under its class key, then walks
// γ = Q - [i·m]G for i in [0, giants). On a hit the class only says that γ
// is some image of [j]G, so the scalar relating them is recovered from the
// orbit of [j]G.
func (c *Curve) bsgs(name string, q Point, m, giants uint64, cls classifier) (Result, error) {
	n := c.N
	var ops uint64

	table := make(map[pointKey]uint64, m)
	baby := Infinity()
	for j := uint64(0); j < m; j++ {
		rep, _ := cls.canonical(baby)
		if _, ok := table[rep.key()]; !ok {
			table[rep.key()] = j
		}
		// the last addition is never read but still counted, so a full
		// table costs m additions
		baby = c.Add(baby, c.G)
		ops++
	}

	factor := c.Neg(c.ScalarMult(c.G, m))
	gamma := q
	for i := uint64(0); i < giants; i++ {
		rep, _ := cls.canonical(gamma)
		if j, ok := table[rep.key()]; ok {
			s, err := cls.relate(c.ScalarMult(c.G, j), gamma)
			if err != nil {
				return Result{Work: ops}, &SearchError{Solver: name, Index: i, Err: err}
			}
			k := Add(Mul(i%n, m%n, n), Mul(s, j%n, n), n)
			c.debugf("%s: hit at giant step %d, baby step %d, scalar %d", name, i, j, s)
			return Result{K: k, Work: ops}, nil
		}
		gamma = c.Add(gamma, factor)
		ops++
	}
	return Result{Work: ops}, &SearchError{Solver: name, Index: giants, Err: ErrSearchExhausted}
}

// PohligHellman solves Q = [k]G by solving in every prime-power subgroup
// of ⟨G⟩ with BSGS and combining the results by CRT.
func (c *Curve) PohligHellman(q Point) (Result, error) {
	const name = "pohlig-hellman"
	if err := c.checkTarget(name, q); err != nil {
		return Result{}, err
	}

	var res Result
	var dLogs, moduli []uint64
	for _, pe := range primePowers(factorize(c.N)) {
		t := c.N / pe
		sub := &Curve{P: c.P, B: c.B, N: pe, G: c.ScalarMult(c.G, t), Name: c.Name, Log: c.Log}
		r, err := sub.BSGS(c.ScalarMult(q, t))
		res.Work += r.Work
		if err != nil {
			return res, fmt.Errorf("ecc: %s: subgroup of order %d: %w", name, pe, err)
		}
		dLogs = append(dLogs, r.K)
		moduli = append(moduli, pe)
	}

	k, ok := crt(dLogs, moduli)
	if !ok || !c.ScalarMult(c.G, k).Equal(q) {
		return res, &SearchError{Solver: name, Index: uint64(len(moduli)), Err: ErrSearchExhausted}
	}
	res.K = k
	return res, nil
}
