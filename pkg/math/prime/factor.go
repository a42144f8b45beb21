package prime

import (
	"errors"

	"github.com/taurusgroup/elgamal64/pkg/math/arith"
)

// ErrCapacityExceeded is returned by FactorBounded when x has more distinct prime
// factors below its square root than the caller allowed.
var ErrCapacityExceeded = errors.New("prime: factorization capacity exceeded")

// Factorization holds the distinct prime factors of an integer x.
//
// Bases contains the primes found by trial division up to ⌊√x⌋, each listed once.
// Cofactor is the part of x left once every base and its powers are divided out:
// it is 1 if x was fully factored, and otherwise the single prime factor of x
// above ⌊√x⌋.
type Factorization struct {
	Bases    []uint32
	Cofactor uint64
}

// Complete returns true if no factor remains beyond Bases.
func (f Factorization) Complete() bool {
	return f.Cofactor == 1
}

// Primes returns every distinct prime factor, including the Cofactor if present.
func (f Factorization) Primes() []uint64 {
	out := make([]uint64, 0, len(f.Bases)+1)
	for _, q := range f.Bases {
		out = append(out, uint64(q))
	}
	if f.Cofactor > 1 {
		out = append(out, f.Cofactor)
	}
	return out
}

// Factor splits x into its distinct prime factors.
//
// For x < 2, there are no bases, and the Cofactor is x itself.
func Factor(x uint64) Factorization {
	f, _ := factor(x, -1)
	return f
}

// FactorBounded is like Factor, but fails with ErrCapacityExceeded if there are
// more than capacity bases.
//
// Finding zero bases is not an error.
func FactorBounded(x uint64, capacity int) (Factorization, error) {
	if capacity < 0 {
		return Factorization{}, ErrCapacityExceeded
	}
	return factor(x, capacity)
}

// factor performs trial division up to ⌊√x⌋, with capacity < 0 meaning unbounded.
func factor(x uint64, capacity int) (Factorization, error) {
	limit := arith.Sqrt(x)
	var bases []uint32
	add := func(q uint64) error {
		if capacity >= 0 && len(bases) >= capacity {
			return ErrCapacityExceeded
		}
		bases = append(bases, uint32(q))
		return nil
	}

	rem := x
	if rem > 1 && limit >= 2 && rem%2 == 0 {
		if err := add(2); err != nil {
			return Factorization{}, err
		}
		for rem%2 == 0 {
			rem /= 2
		}
	}

	// Once rem is prime, trial division would only record it as a base if it
	// lies below the limit, otherwise it is left over as the cofactor.
	remIsPrime := rem > 1 && IsProbablePrime(rem)
	for i := uint64(3); !remIsPrime && rem > 1 && i <= limit; i += 2 {
		if rem%i != 0 {
			continue
		}
		if err := add(i); err != nil {
			return Factorization{}, err
		}
		for rem%i == 0 {
			rem /= i
		}
		remIsPrime = rem > 1 && IsProbablePrime(rem)
	}
	if remIsPrime && rem <= limit {
		if err := add(rem); err != nil {
			return Factorization{}, err
		}
		rem = 1
	}

	return Factorization{
		Bases:    bases,
		Cofactor: rem,
	}, nil
}
