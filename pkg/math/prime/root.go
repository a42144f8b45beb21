package prime

import (
	"errors"

	"github.com/taurusgroup/elgamal64/pkg/math/arith"
)

// ErrNoPrimitiveRoot is returned when a search range contains no primitive root.
//
// This is also what happens when the modulus is not actually prime, as the two
// cases cannot be told apart.
var ErrNoPrimitiveRoot = errors.New("prime: no primitive root found in range")

// RootFinder searches for primitive roots modulo a prime.
type RootFinder struct {
	// Mod is assumed to be prime, this is not checked.
	Mod uint64
	// Totient is the factorization of ϕ(Mod) = Mod - 1.
	Totient Factorization

	m arith.Modulus
	// exponents contains ϕ/q for every prime factor q of ϕ
	exponents []uint64
}

// NewRootFinder factors ϕ(mod) = mod - 1, so that candidates can be tested.
//
// mod must be at least 2.
func NewRootFinder(mod uint64) *RootFinder {
	phi := mod - 1
	totient := Factor(phi)
	qs := totient.Primes()
	exponents := make([]uint64, len(qs))
	for i, q := range qs {
		exponents[i] = phi / q
	}
	return &RootFinder{
		Mod:       mod,
		Totient:   totient,
		m:         arith.NewModulus(mod),
		exponents: exponents,
	}
}

// IsPrimitiveRoot returns true if g generates the multiplicative group mod Mod.
//
// This is the case when g^(ϕ/q) ≠ 1 (mod Mod) for every prime factor q of ϕ.
func (rf *RootFinder) IsPrimitiveRoot(g uint64) bool {
	if rf.Mod == 2 {
		return g&1 == 1
	}
	if g%rf.Mod == 0 {
		return false
	}
	for _, e := range rf.exponents {
		if rf.m.Exp(g, e) == 1 {
			return false
		}
	}
	return true
}

// Find returns the smallest primitive root g with min ≤ g ≤ max.
//
// Candidates are not reduced, so g may exceed Mod when the range does.
func (rf *RootFinder) Find(min, max uint64) (uint64, error) {
	if rf.Mod == 2 {
		return 1, nil
	}
	for g := min; g <= max; g++ {
		// 4 is a square, and never generates the whole group
		if g != 4 && rf.IsPrimitiveRoot(g) {
			return g, nil
		}
		if g == max {
			break
		}
	}
	return 0, ErrNoPrimitiveRoot
}

// PrimitiveRoot returns the smallest primitive root modulo mod in [min, max].
//
// mod is assumed to be prime.
func PrimitiveRoot(mod, min, max uint64) (uint64, error) {
	if mod < 2 {
		return 0, ErrNoPrimitiveRoot
	}
	if mod == 2 {
		return 1, nil
	}
	return NewRootFinder(mod).Find(min, max)
}
