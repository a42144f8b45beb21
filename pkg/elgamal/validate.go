package elgamal

import (
	"errors"
	"fmt"

	"github.com/taurusgroup/elgamal64/internal/params"
	"github.com/taurusgroup/elgamal64/pkg/math/arith"
	"github.com/taurusgroup/elgamal64/pkg/math/prime"
)

var (
	ErrModulusTooSmall   = errors.New("elgamal: modulus too small")
	ErrNotPrime          = errors.New("elgamal: modulus is not prime")
	ErrNotGenerator      = errors.New("elgamal: generator is not a primitive root")
	ErrPrivateKeyRange   = errors.New("elgamal: private exponent not in (1, p-1)")
	ErrPublicKeyMismatch = errors.New("elgamal: public value does not match private exponent")
)

// Validate checks that P is prime, and that G generates the whole group.
//
// None of the other functions in this package perform this check, it is up to
// the caller to validate a group received from elsewhere.
func (g Group) Validate() error {
	if g.P < params.MinGroupModulus {
		return fmt.Errorf("have %d, need at least %d: %w", g.P, params.MinGroupModulus, ErrModulusTooSmall)
	}
	if !prime.IsProbablePrime(g.P) {
		return ErrNotPrime
	}
	if !prime.NewRootFinder(g.P).IsPrimitiveRoot(g.G) {
		return fmt.Errorf("g = %d: %w", g.G, ErrNotGenerator)
	}
	return nil
}

// Validate checks the group of the key pair, and that Y = Gˣ (mod P) with 1 < X < P-1.
func (k *KeyPair) Validate() error {
	if err := k.Group().Validate(); err != nil {
		return err
	}
	if k.X <= 1 || k.X >= k.P-1 {
		return ErrPrivateKeyRange
	}
	if arith.PowerMod(k.G, k.X, k.P) != k.Y {
		return ErrPublicKeyMismatch
	}
	return nil
}
