package arith

// Modulus represents a 64-bit modulus n, along with 2⁶⁴ mod n.
//
// Caching the wrap-around constant lets repeated multiplications, as done
// during an exponentiation, compensate for native overflow without recomputing it.
type Modulus struct {
	// n is the modulus, n > 0
	n uint64
	// wrap = 2⁶⁴ (mod n)
	wrap uint64
}

// NewModulus creates the cached values for multiplying mod n.
//
// n = 0 is a contract violation, and panics with a division by zero.
func NewModulus(n uint64) Modulus {
	return Modulus{
		n:    n,
		wrap: (0 - n) % n,
	}
}

// Mul returns a⋅b (mod n).
//
// The product is computed by binary long multiplication over the bits of the
// smaller operand, so that no intermediate value exceeds 64 bits.
// Whenever an addition or a doubling wraps around, the lost 2⁶⁴ is added back as wrap.
func (m Modulus) Mul(a, b uint64) uint64 {
	if b < a {
		a, b = b, a
	}
	b %= m.n

	var result uint64
	for a != 0 {
		if a&1 == 1 {
			sum := result + b
			if sum < result {
				// result, b < n, so the wrapped sum is below n and sum + wrap cannot wrap again.
				sum = sum%m.n + m.wrap
			}
			result = sum % m.n
		}
		a >>= 1
		if a == 0 {
			break
		}
		doubled := b << 1
		if b&(1<<63) != 0 {
			doubled = doubled%m.n + m.wrap
		}
		b = doubled % m.n
	}
	return result
}

// Exp returns xᵉ (mod n), using square-and-multiply.
//
// x⁰ = 1 for every x, even when n = 1.
func (m Modulus) Exp(x, e uint64) uint64 {
	result := uint64(1)
	for e != 0 {
		if e&1 == 1 {
			result = m.Mul(result, x)
		}
		e >>= 1
		if e == 0 {
			break
		}
		x = m.Mul(x, x)
	}
	return result
}

// MulMod returns a⋅b (mod mod), even when a⋅b does not fit in 64 bits.
func MulMod(a, b, mod uint64) uint64 {
	return NewModulus(mod).Mul(a, b)
}

// PowerMod returns baseᵉˣᵖ (mod mod).
func PowerMod(base, exp, mod uint64) uint64 {
	return NewModulus(mod).Exp(base, exp)
}
