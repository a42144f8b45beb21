// Package elgamal implements ElGamal encryption over the multiplicative group
// of integers modulo a 64-bit prime.
package elgamal

import (
	"github.com/taurusgroup/elgamal64/pkg/math/arith"
	"github.com/taurusgroup/elgamal64/pkg/math/sample"
)

// Group describes the multiplicative group modulo P, generated by G.
type Group struct {
	// P is prime
	P uint64
	// G is a primitive root modulo P
	G uint64
}

// PublicKey is the part of a KeyPair needed to encrypt.
type PublicKey struct {
	P, G uint64
	// Y = Gˣ (mod P)
	Y uint64
}

// KeyPair holds an ElGamal private exponent, along with its group and public value.
type KeyPair struct {
	P, G uint64
	// X is the private exponent, 1 < X < P-1
	X uint64
	// Y = Gˣ (mod P)
	Y uint64
}

// Ciphertext is an encrypted message.
type Ciphertext struct {
	// A = Gᵏ (mod P)
	A uint64
	// B = message⋅Yᵏ (mod P)
	B uint64
}

// Group returns the group the key pair lives in.
func (k *KeyPair) Group() Group {
	return Group{P: k.P, G: k.G}
}

// PublicKey returns the public part of the key pair.
func (k *KeyPair) PublicKey() PublicKey {
	return PublicKey{P: k.P, G: k.G, Y: k.Y}
}

// Decrypt returns the message encrypted in ct under this key pair.
func (k *KeyPair) Decrypt(ct Ciphertext) uint64 {
	return Decrypt(k.P, k.X, ct)
}

// Encrypt encrypts message under this public key, drawing the nonce from src.
func (pk PublicKey) Encrypt(message uint64, src sample.Source) Ciphertext {
	return Encrypt(pk.P, pk.G, pk.Y, message, src)
}

// KeyGen generates a key pair in this group, drawing a single value from src.
func (g Group) KeyGen(src sample.Source) *KeyPair {
	keys := &KeyPair{P: g.P, G: g.G}
	KeyGen(keys, 0, src)
	return keys
}

// NewGroup generates a prime p with its top higherBits bits set, along with
// a primitive root modulo p.
//
// Candidates are drawn until one admits a primitive root below 2³².
func NewGroup(src sample.Source, higherBits int) Group {
	return newDefaultGenerator(src).NewGroup(higherBits)
}

// KeyGen fills keys with a fresh private exponent X and the matching public value Y.
//
// If higherBits is not zero, a new group is generated first, with NewGroup.
// Otherwise, the group already contained in keys is reused.
func KeyGen(keys *KeyPair, higherBits int, src sample.Source) {
	newDefaultGenerator(src).KeyGen(keys, higherBits)
}

// Encrypt encrypts message using the public key (p, g, y).
//
// A single value is drawn from src for the nonce k, so encrypting the same message
// twice gives different ciphertexts.
// The message must be smaller than p, this is not checked.
//
// (a, b) = (gᵏ, message⋅yᵏ) (mod p).
func Encrypt(p, g, y, message uint64, src sample.Source) Ciphertext {
	k := sample.Exponent(src, p)
	m := arith.NewModulus(p)
	return Ciphertext{
		A: m.Exp(g, k),
		B: m.Mul(message, m.Exp(y, k)),
	}
}

// Decrypt returns the message contained in ct, using the private exponent x.
//
// Since p is prime, aᵖ⁻¹⁻ˣ = a⁻ˣ (mod p), which removes the shared secret aˣ from b.
func Decrypt(p, x uint64, ct Ciphertext) uint64 {
	m := arith.NewModulus(p)
	t := m.Exp(ct.A, p-1-x)
	return m.Mul(ct.B, t)
}
