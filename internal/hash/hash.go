package hash

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/zeebo/blake3"
)

// Hash is the hash function used to derive deterministic randomness from a seed.
//
// Internally, this is a wrapper around blake3.Hasher, whose extendable output
// lets a single seed expand into an arbitrarily long stream.
type Hash struct {
	h *blake3.Hasher
}

// New creates a Hash struct where the internal hash function is initialized with
// the given domain.
func New(domain string) *Hash {
	hash := &Hash{h: blake3.New()}
	_ = hash.WriteAny(domain)
	return hash
}

// Digest returns a reader for the current output of the function.
//
// This finalizes the current state of the hash, and returns what's
// essentially a stream of random bytes.
func (hash *Hash) Digest() io.Reader {
	return hash.h.Digest()
}

// writeWithDomain writes out `(<domain><len(data)><data>)`, so that each piece of data
// is distinguished from the others, and from data of other types.
// The length is written as 8 big-endian bytes.
func (hash *Hash) writeWithDomain(domain string, data []byte) error {
	var size [8]byte
	binary.BigEndian.PutUint64(size[:], uint64(len(data)))
	for _, b := range [][]byte{[]byte("("), []byte(domain), size[:], data, []byte(")")} {
		if _, err := hash.h.Write(b); err != nil {
			return err
		}
	}
	return nil
}

// WriteAny takes many different data types and writes them to the hash state.
//
// Currently supported types:
//
//   - []byte
//   - string
//   - uint64
func (hash *Hash) WriteAny(data ...interface{}) error {
	for _, d := range data {
		var err error
		switch t := d.(type) {
		case []byte:
			err = hash.writeWithDomain("[]byte", t)
		case string:
			err = hash.writeWithDomain("string", []byte(t))
		case uint64:
			var buf [8]byte
			binary.BigEndian.PutUint64(buf[:], t)
			err = hash.writeWithDomain("uint64", buf[:])
		default:
			return fmt.Errorf("hash.Hash: unsupported type %T", d)
		}
		if err != nil {
			return fmt.Errorf("hash.Hash: write %T: %w", d, err)
		}
	}
	return nil
}
