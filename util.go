package ecc

import (
	"math/big"
)

func isPrime(n uint64) bool {
	return new(big.Int).SetUint64(n).ProbablyPrime(20)
}

// factorize returns the prime factors of n in ascending order, with
// multiplicity.
func factorize(n uint64) []uint64 {
	var factors []uint64
	for n%2 == 0 && n > 0 {
		factors = append(factors, 2)
		n >>= 1
	}
	for d := uint64(3); n > 1 && !overflowsSquare(d, n); d += 2 {
		for n%d == 0 {
			factors = append(factors, d)
			n /= d
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}

// primeFactors returns the distinct prime factors of n.
func primeFactors(n uint64) []uint64 {
	var primes []uint64
	for _, f := range factorize(n) {
		if len(primes) == 0 || primes[len(primes)-1] != f {
			primes = append(primes, f)
		}
	}
	return primes
}

// primePowers groups sorted factors into prime powers: [2 2 3] -> [4 3].
func primePowers(factors []uint64) []uint64 {
	var res []uint64
	for i, j := 0, 0; i < len(factors); i = j {
		pe := factors[i]
		for j = i + 1; j < len(factors) && factors[j] == factors[i]; j++ {
			pe *= factors[i]
		}
		res = append(res, pe)
	}
	return res
}

// Chinese remainder theorem for pairwise coprime moduli whose product fits
// in 64 bits.
func crt(a, n []uint64) (uint64, bool) {
	if len(a) != len(n) {
		return 0, false
	}
	x, m := uint64(0), uint64(1)
	for i, ni := range n {
		if ni == 1 {
			continue
		}
		inv, ok := invert(m%ni, ni)
		if !ok {
			return 0, false
		}
		t := Mul(Sub(a[i]%ni, x%ni, ni), inv, ni)
		x += m * t
		m *= ni
	}
	return x, true
}
