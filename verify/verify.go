// Package verify re-checks the algebraic identities behind the GLV
// endomorphism on a production-size D = -3 curve. The toy solvers never
// touch these constants; the checks confirm that the structure they exploit
// is present on secp256k1 as published.
package verify

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Check is the outcome of a single identity check.
type Check struct {
	Name   string
	Passed bool
	Detail string
}

// Params are the constants of a curve y² = x³ + B over F_P with a generator
// (Gx, Gy) of prime order N, together with the claimed GLV pair (β, λ).
type Params struct {
	Name   string
	P, N   *uint256.Int
	B      *uint256.Int
	Gx, Gy *uint256.Int
	Beta   *uint256.Int
	Lambda *uint256.Int
}

// Secp256k1 returns the secp256k1 constants.
func Secp256k1() *Params {
	return &Params{
		Name:   "secp256k1",
		P:      uint256.MustFromDecimal("115792089237316195423570985008687907853269984665640564039457584007908834671663"),
		N:      uint256.MustFromDecimal("115792089237316195423570985008687907852837564279074904382605163141518161494337"),
		B:      uint256.NewInt(7),
		Gx:     uint256.MustFromDecimal("55066263022277343669578718895168534326250603453777594175500187360389116729240"),
		Gy:     uint256.MustFromDecimal("32670510020758816978083085130507043184471273380659243275938904335757337482424"),
		Beta:   uint256.MustFromDecimal("55594575648329892869085402983802832744385952214688224221778511981742606582254"),
		Lambda: uint256.MustFromDecimal("37718080363155996902926221483475020450927657555482586988616620542887997980018"),
	}
}

// Run checks the secp256k1 constants.
func Run() []Check {
	return RunParams(Secp256k1())
}

// RunParams checks prm and returns one record per identity.
func RunParams(prm *Params) []Check {
	return []Check{
		lambdaRoot(prm),
		lambdaNontrivial(prm),
		betaCubeRoot(prm),
		pModThree(prm),
		discriminant(prm),
		endomorphism(prm),
	}
}

// Passed reports whether every check passed.
func Passed(checks []Check) bool {
	for _, c := range checks {
		if !c.Passed {
			return false
		}
	}
	return true
}

func lambdaRoot(prm *Params) Check {
	n, l := prm.N, prm.Lambda
	one := uint256.NewInt(1)

	v := new(uint256.Int).MulMod(l, l, n)
	v.AddMod(v, l, n)
	v.AddMod(v, one, n)
	return Check{
		Name:   "λ² + λ + 1 ≡ 0 (mod n)",
		Passed: v.IsZero(),
		Detail: fmt.Sprintf("λ² + λ + 1 mod n = %s", v.Dec()),
	}
}

func lambdaNontrivial(prm *Params) Check {
	n, l := prm.N, prm.Lambda
	one := uint256.NewInt(1)
	return Check{
		Name:   "1 < λ < n",
		Passed: l.Gt(one) && l.Lt(n),
		Detail: fmt.Sprintf("λ = %s", l.Hex()),
	}
}

func betaCubeRoot(prm *Params) Check {
	p, beta := prm.P, prm.Beta
	one := uint256.NewInt(1)

	cube := new(uint256.Int).MulMod(beta, beta, p)
	cube.MulMod(cube, beta, p)
	return Check{
		Name:   "β³ ≡ 1 (mod p), β ≠ 1",
		Passed: cube.Eq(one) && !beta.Eq(one) && beta.Lt(p),
		Detail: fmt.Sprintf("β = %s, β³ mod p = %s", beta.Hex(), cube.Dec()),
	}
}

func pModThree(prm *Params) Check {
	r := new(uint256.Int).Mod(prm.P, uint256.NewInt(3))
	return Check{
		Name:   "p ≡ 1 (mod 3)",
		Passed: r.Eq(uint256.NewInt(1)),
		Detail: fmt.Sprintf("p mod 3 = %s", r.Dec()),
	}
}

func discriminant(prm *Params) Check {
	p := prm.P
	d := new(uint256.Int).MulMod(prm.B, prm.B, p)
	d.MulMod(d, uint256.NewInt(27), p)
	return Check{
		Name:   "27b² ≢ 0 (mod p)",
		Passed: !d.IsZero(),
		Detail: fmt.Sprintf("27b² mod p = %s", d.Dec()),
	}
}

func endomorphism(prm *Params) Check {
	c := &curve{p: prm.P, b: prm.B}
	g := point{x: prm.Gx, y: prm.Gy}
	if !c.isOnCurve(g) {
		return Check{
			Name:   "φ(G) = [λ]G",
			Detail: "G is not on the curve",
		}
	}

	phi := point{x: new(uint256.Int).MulMod(prm.Beta, g.x, prm.P), y: g.y}
	lg := c.scalarMult(g, prm.Lambda)
	return Check{
		Name:   "φ(G) = [λ]G",
		Passed: lg.equal(phi),
		Detail: fmt.Sprintf("[λ]G.x = %s, βGx = %s", lg, phi),
	}
}
