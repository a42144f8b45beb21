package prime

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taurusgroup/elgamal64/pkg/math/arith"
)

// order returns the multiplicative order of g mod p, by brute force.
func order(g, p uint64) uint64 {
	x := g % p
	for k := uint64(1); k < p; k++ {
		if x == 1 {
			return k
		}
		x = x * g % p
	}
	return 0
}

// checkPrimitiveRoot verifies the group order test for g mod p.
func checkPrimitiveRoot(t *testing.T, g, p uint64) {
	t.Helper()
	require.Equal(t, uint64(1), arith.PowerMod(g, p-1, p))
	f := Factor(p - 1)
	for _, q := range f.Primes() {
		require.NotEqual(t, uint64(1), arith.PowerMod(g, (p-1)/q, p), "g = %d, p = %d, q = %d", g, p, q)
	}
}

func TestPrimitiveRoot_157(t *testing.T) {
	g, err := PrimitiveRoot(157, 2, 157)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), g)
	checkPrimitiveRoot(t, g, 157)
	assert.Equal(t, uint64(156), order(g, 157))
}

func TestPrimitiveRoot_Smallest(t *testing.T) {
	expected := map[uint64]uint64{
		3: 2, 5: 2, 7: 3, 11: 2, 13: 2, 17: 3, 19: 2, 23: 5,
		41: 6, 71: 7, 191: 19, 409: 21,
	}
	for p, want := range expected {
		g, err := PrimitiveRoot(p, 2, p)
		require.NoError(t, err)
		assert.Equal(t, want, g, "smallest primitive root of %d", p)
	}
}

func TestPrimitiveRoot_SmallPrimes(t *testing.T) {
	for p := uint64(3); p < 2000; p += 2 {
		if !IsPrime(p) {
			continue
		}
		rf := NewRootFinder(p)
		g, err := rf.Find(2, p)
		require.NoError(t, err, "p = %d", p)
		require.Equal(t, p-1, order(g, p), "p = %d", p)
		// every value below g is rejected
		for h := uint64(2); h < g; h++ {
			require.NotEqual(t, p-1, order(h, p), "p = %d, h = %d", p, h)
		}
		for h := uint64(1); h < p; h += 7 {
			require.Equal(t, order(h, p) == p-1, rf.IsPrimitiveRoot(h), "p = %d, h = %d", p, h)
		}
	}
}

func TestPrimitiveRoot_32Bit(t *testing.T) {
	expected := map[uint64]uint64{
		2147483647: 7,
		3221225473: 5,
		4294967279: 7,
		4294967291: 2,
	}
	for p, want := range expected {
		g, err := PrimitiveRoot(p, 2, p)
		require.NoError(t, err)
		assert.Equal(t, want, g, "p = %d", p)
		checkPrimitiveRoot(t, g, p)
	}
}

func TestPrimitiveRoot_64Bit(t *testing.T) {
	for _, p := range []uint64{9223372036854775783, 18446744073709551557} {
		rf := NewRootFinder(p)
		g, err := rf.Find(2, 1<<32-1)
		require.NoError(t, err)
		checkPrimitiveRoot(t, g, p)
	}
}

func TestPrimitiveRoot_Edges(t *testing.T) {
	g, err := PrimitiveRoot(2, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), g)

	_, err = PrimitiveRoot(0, 2, 10)
	assert.ErrorIs(t, err, ErrNoPrimitiveRoot)
	_, err = PrimitiveRoot(1, 2, 10)
	assert.ErrorIs(t, err, ErrNoPrimitiveRoot)

	// 2 and 3 are not primitive roots of 157, and 4 never is
	_, err = PrimitiveRoot(157, 2, 4)
	assert.ErrorIs(t, err, ErrNoPrimitiveRoot)

	// empty range
	_, err = PrimitiveRoot(157, 10, 9)
	assert.ErrorIs(t, err, ErrNoPrimitiveRoot)

	// candidates above the modulus are scanned as given, 5 ≡ 0 and 6 ≡ 1 are rejected
	g, err = PrimitiveRoot(5, 4, 1000)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), g)

	g, err = NewRootFinder(157).Find(160, 170)
	require.NoError(t, err)
	assert.Equal(t, uint64(157+5), g)

	// 2⁶⁴ - 3 ≡ 3 (mod 5) is a root, 2⁶⁴ - 2 ≡ 4 and 2⁶⁴ - 1 ≡ 0 are not
	g, err = NewRootFinder(5).Find(math.MaxUint64-2, math.MaxUint64)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64-2), g)

	// the scan stops at the top of the range without wrapping around
	_, err = NewRootFinder(5).Find(math.MaxUint64-1, math.MaxUint64)
	assert.ErrorIs(t, err, ErrNoPrimitiveRoot)

	rf := NewRootFinder(157)
	assert.False(t, rf.IsPrimitiveRoot(0))
	assert.False(t, rf.IsPrimitiveRoot(157))
	assert.True(t, rf.IsPrimitiveRoot(157+5))
	assert.Equal(t, []uint32{2, 3}, rf.Totient.Bases)
	assert.Equal(t, uint64(13), rf.Totient.Cofactor)
}
