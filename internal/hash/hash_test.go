package hash

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func read(t *testing.T, h *Hash, n int) []byte {
	out := make([]byte, n)
	_, err := io.ReadFull(h.Digest(), out)
	require.NoError(t, err)
	return out
}

func TestHash_WriteAny(t *testing.T) {
	testFunc := func(vs ...interface{}) error {
		h := New("test")
		for _, v := range vs {
			if err := h.WriteAny(v); err != nil {
				return err
			}
		}
		return nil
	}

	assert.NoError(t, testFunc([]byte{1, 4, 6}))
	assert.NoError(t, testFunc("seed", uint64(35)))
	assert.Error(t, testFunc(35))
}

func TestHash_Deterministic(t *testing.T) {
	h1 := New("test")
	h2 := New("test")
	require.NoError(t, h1.WriteAny([]byte("seed"), uint64(7)))
	require.NoError(t, h2.WriteAny([]byte("seed"), uint64(7)))
	assert.Equal(t, read(t, h1, 64), read(t, h2, 64))
}

func TestHash_DomainSeparation(t *testing.T) {
	h1 := New("a")
	h2 := New("b")
	assert.False(t, bytes.Equal(read(t, h1, 32), read(t, h2, 32)), "different domains must give different streams")

	// "ab" + "c" must not collide with "a" + "bc"
	h3 := New("test")
	h4 := New("test")
	require.NoError(t, h3.WriteAny([]byte("ab"), []byte("c")))
	require.NoError(t, h4.WriteAny([]byte("a"), []byte("bc")))
	assert.False(t, bytes.Equal(read(t, h3, 32), read(t, h4, 32)))

	// a string and the same bytes are written with different domains
	h5 := New("test")
	h6 := New("test")
	require.NoError(t, h5.WriteAny("seed"))
	require.NoError(t, h6.WriteAny([]byte("seed")))
	assert.False(t, bytes.Equal(read(t, h5, 32), read(t, h6, 32)))
}

func TestHash_LengthPrefix(t *testing.T) {
	// without the length, the closing and opening of two pieces could be forged in one
	h1 := New("test")
	h2 := New("test")
	require.NoError(t, h1.WriteAny([]byte("a"), []byte("b")))
	require.NoError(t, h2.WriteAny([]byte("a)([]byteb")))
	assert.False(t, bytes.Equal(read(t, h1, 32), read(t, h2, 32)))

	h3 := New("test")
	h4 := New("test)(string")
	require.NoError(t, h3.WriteAny(""))
	assert.False(t, bytes.Equal(read(t, h3, 32), read(t, h4, 32)))
}
