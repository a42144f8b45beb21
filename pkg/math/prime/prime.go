// Package prime implements primality testing, factorization and primitive root
// search for 64-bit unsigned integers.
package prime

import (
	"github.com/taurusgroup/elgamal64/internal/params"
	"github.com/taurusgroup/elgamal64/pkg/math/arith"
)

// IsPrime reports whether x is prime, using trial division up to ⌊√x⌋.
//
// This takes O(√x) divisions, and is only meant for small values, or as a reference
// to check IsProbablePrime against.
func IsPrime(x uint64) bool {
	if x == 2 {
		return true
	}
	if x&1 == 0 || x == 1 {
		return false
	}
	limit := arith.Sqrt(x)
	for i := uint64(3); i <= limit; i += 2 {
		if x%i == 0 {
			return false
		}
	}
	return true
}

// Decompose returns d, r such that x = 2ʳ⋅d with d odd.
//
// x must be non zero.
func Decompose(x uint64) (d uint64, r int) {
	d = x
	for d&1 == 0 {
		d >>= 1
		r++
	}
	return d, r
}

// StrongProbablePrime runs a single Miller-Rabin round on the odd number n, using
// the given witness, where n - 1 = 2ʳ⋅d.
//
// It returns false if the witness proves that n is composite.
func StrongProbablePrime(n, witness, d uint64, r int) bool {
	m := arith.NewModulus(n)
	nMinus1 := n - 1
	x := m.Exp(witness, d)
	if x == 1 || x == nMinus1 {
		return true
	}
	for i := 1; i < r; i++ {
		x = m.Mul(x, x)
		if x == nMinus1 {
			return true
		}
	}
	return false
}

// IsProbablePrime reports whether x is prime, using the Miller-Rabin test.
//
// The fixed set of witnesses in params.MillerRabinWitnesses makes the result exact
// for every 64-bit input.
func IsProbablePrime(x uint64) bool {
	if x == 2 {
		return true
	}
	if x&1 == 0 || x == 1 {
		return false
	}

	for _, p := range params.TrialPrimes {
		if x == p {
			return true
		}
		if x%p == 0 {
			return false
		}
	}
	// x has no prime factor up to the largest trial prime
	if last := params.TrialPrimes[len(params.TrialPrimes)-1]; x < last*last {
		return true
	}

	d, r := Decompose(x - 1)
	for _, a := range params.MillerRabinWitnesses {
		a %= x
		if a == 0 {
			continue
		}
		if !StrongProbablePrime(x, a, d, r) {
			return false
		}
	}
	return true
}
