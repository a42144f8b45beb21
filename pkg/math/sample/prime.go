package sample

import (
	"github.com/taurusgroup/elgamal64/internal/params"
	"github.com/taurusgroup/elgamal64/pkg/math/prime"
	"github.com/taurusgroup/elgamal64/pkg/pool"
)

// primeMask returns the bits forced to 1 in every candidate:
// the top higherBits bits, and the lowest bit to keep candidates odd.
func primeMask(higherBits int) uint64 {
	if higherBits > params.MaxHigherBits {
		higherBits = params.MaxHigherBits
	}
	if higherBits < 0 {
		higherBits = 0
	}
	return ^uint64(0)<<(64-higherBits) | 1
}

// RandomPrime returns a prime number whose top higherBits bits are set to 1.
//
// higherBits is clamped to params.MaxHigherBits.
// A single value is drawn from src, and the candidate is then increased by 2 until it is prime.
// If the top of the range is reached, the candidate wraps around and the mask is applied again.
// There is no bound on the number of candidates tried, but primes are dense enough
// for the search to end quickly.
func RandomPrime(src Source, higherBits int) uint64 {
	mask := primeMask(higherBits)
	p := src.Uint64() | mask
	for !prime.IsProbablePrime(p) {
		p = (p + 1) | mask
	}
	return p
}

// Primes returns count primes generated as with RandomPrime, one per worker task on pl.
//
// src is only ever accessed through a LockedSource.
func Primes(pl *pool.Pool, src Source, count, higherBits int) []uint64 {
	locked := NewLockedSource(src)
	return pool.Parallelize(pl, count, func(int) uint64 {
		return RandomPrime(locked, higherBits)
	})
}
