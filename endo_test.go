package ecc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindBeta(t *testing.T) {
	beta, err := FindBeta(10477)
	require.NoError(t, err)
	require.Equal(t, uint64(716), beta)
	require.Equal(t, uint64(1), Pow(beta, 3, 10477))

	for _, p := range []uint64{43, 31, 67, 7681} {
		beta, err := FindBeta(p)
		require.NoError(t, err)
		require.NotEqual(t, uint64(1), beta)
		require.Equal(t, uint64(1), Pow(beta, 3, p))
	}

	_, err = FindBeta(10007)
	require.ErrorIs(t, err, ErrNoCubeRoot)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, "find beta", cfgErr.Op)
}

func TestFindLambda(t *testing.T) {
	lambda, err := FindLambda(10639)
	require.NoError(t, err)
	require.Equal(t, uint64(1893), lambda)

	lambda, err = FindLambda(57)
	require.NoError(t, err)
	require.Equal(t, uint64(7), lambda)

	_, err = FindLambda(10)
	require.ErrorIs(t, err, ErrNoLambda)
}

func TestNewEndomorphism(t *testing.T) {
	want := map[string]struct {
		beta, lambda uint64
	}{
		"D3-10477": {716, 1893},
		"D3-43":    {36, 49}, // the smaller root 7 belongs to the other β
		"D3-31":    {25, 16},
		"D3-67":    {37, 7},
		"D3-13":    {3, 2},
		"D3-19":    {7, 16},
		"D3-397":   {34, 277},
	}
	testAllCurves(t, func(t *testing.T, curve *Curve) {
		e, err := NewEndomorphism(curve)
		require.NoError(t, err)
		require.Equal(t, want[curve.Name].beta, e.Beta)
		require.Equal(t, want[curve.Name].lambda, e.Lambda)
		require.Equal(t, Mul(e.Beta, e.Beta, curve.P), e.Beta2)
		require.Equal(t, Mul(e.Lambda, e.Lambda, curve.N), e.Lambda2)

		l := e.Lambda
		require.Zero(t, Add(Add(Mul(l, l, curve.N), l, curve.N), 1, curve.N))
		require.Equal(t, curve.ScalarBaseMult(e.Lambda), ApplyEndo(curve.G, e.Beta, curve.P))
		require.Equal(t, curve.ScalarBaseMult(e.Lambda2), ApplyEndo(curve.G, e.Beta2, curve.P))
	})
}

func TestNewEndomorphismErrors(t *testing.T) {
	_, err := NewEndomorphism(&Curve{P: 11, B: 3, N: 12, G: NewPoint(0, 5)})
	require.ErrorIs(t, err, ErrNoCubeRoot)

	c := *sampleCurves()["D3-10477"]
	c.N = 10
	_, err = NewEndomorphism(&c)
	require.ErrorIs(t, err, ErrNoLambda)

	// 2 and 4 solve x² + x + 1 mod 7, but φ(G) = [1893]G
	c.N = 7
	_, err = NewEndomorphism(&c)
	require.ErrorIs(t, err, ErrEndomorphismMismatch)
}

func TestOrbit(t *testing.T) {
	testAllCurves(t, func(t *testing.T, curve *Curve) {
		e, err := NewEndomorphism(curve)
		require.NoError(t, err)
		scalars := e.Scalars()

		for k, pt := range multiples(curve, 300) {
			orbit := e.Orbit(pt)
			if pt.Inf {
				require.Equal(t, []Point{Infinity()}, orbit)
				continue
			}
			require.Len(t, orbit, 6)
			for i, member := range orbit {
				require.True(t, curve.IsOnCurve(member))
				require.Equal(t, curve.ScalarMult(pt, scalars[i]), member, "k=%d i=%d", k, i)
			}
		}
	})
}

func TestCanonicalRep(t *testing.T) {
	testAllCurves(t, func(t *testing.T, curve *Curve) {
		e, err := NewEndomorphism(curve)
		require.NoError(t, err)

		for _, pt := range multiples(curve, 300) {
			rep := CanonicalRep(pt, e.Beta, curve.P)
			require.Equal(t, rep, CanonicalRep(rep, e.Beta, curve.P))
			for _, member := range e.Orbit(pt) {
				require.Equal(t, rep, CanonicalRep(member, e.Beta, curve.P))
				require.False(t, member.less(rep))
			}

			got, s := e.Canonical(pt)
			require.Equal(t, rep, got)
			require.Equal(t, rep, curve.ScalarMult(pt, s))
		}
	})
}

func TestDegenerateOrbit(t *testing.T) {
	curve := sampleCurves()["D3-43"]
	e, err := NewEndomorphism(curve)
	require.NoError(t, err)

	// φ fixes points with x = 0, so the orbit holds two distinct points
	pt := NewPoint(0, 40)
	require.True(t, curve.IsOnCurve(pt))
	require.Equal(t, pt, ApplyEndo(pt, e.Beta, curve.P))

	rep, s := e.Canonical(pt)
	require.Equal(t, NewPoint(0, 3), rep)
	require.Equal(t, curve.N-1, s)
	require.Equal(t, rep, curve.ScalarMult(pt, s))

	s, err = e.Relate(pt, pt)
	require.NoError(t, err)
	require.Equal(t, uint64(1), s)
}

func TestRelate(t *testing.T) {
	curve := sampleCurves()["D3-10477"]
	e, err := NewEndomorphism(curve)
	require.NoError(t, err)

	p1 := curve.ScalarBaseMult(7777)
	for i, member := range e.Orbit(p1) {
		s, err := e.Relate(p1, member)
		require.NoError(t, err)
		require.Equal(t, e.Scalars()[i], s)
	}

	_, err = e.Relate(p1, curve.Double(p1))
	require.ErrorIs(t, err, ErrOrbitMismatch)

	s, err := e.Relate(Infinity(), Infinity())
	require.NoError(t, err)
	require.Equal(t, uint64(1), s)
}
