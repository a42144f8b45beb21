package sample

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"github.com/taurusgroup/elgamal64/internal/hash"
	"github.com/taurusgroup/elgamal64/internal/params"
)

const maxIterations = 255

var ErrMaxIterations = fmt.Errorf("sample: failed to read randomness after %d iterations", maxIterations)

// Source produces uniformly distributed 64-bit values on demand.
//
// Each random quantity used by this module is obtained through exactly one call to Uint64.
// The quality of the values is the caller's responsibility.
// *math/rand.Rand implements this interface.
type Source interface {
	Uint64() uint64
}

func mustReadBits(rand io.Reader, buf []byte) {
	for i := 0; i < maxIterations; i++ {
		if _, err := io.ReadFull(rand, buf); err == nil {
			return
		}
	}
	panic(ErrMaxIterations)
}

// readerSource draws values from an io.Reader, such as crypto/rand.Reader.
type readerSource struct {
	r io.Reader
}

// NewReaderSource creates a Source reading 8 bytes from r for every value.
//
// Uint64 panics if r keeps failing to produce bytes.
func NewReaderSource(r io.Reader) Source {
	return &readerSource{r: r}
}

func (s *readerSource) Uint64() uint64 {
	var buf [params.SourceBytes]byte
	mustReadBits(s.r, buf[:])
	return binary.BigEndian.Uint64(buf[:])
}

// NewHashSource creates a deterministic Source, which expands the seed into a stream
// of values using the extendable output of the hash function.
//
// The same seed always produces the same sequence, which makes it suitable for
// reproducible tests, but not for generating real keys.
func NewHashSource(seed ...[]byte) Source {
	h := hash.New("elgamal64 hash source")
	_ = h.WriteAny(uint64(len(seed)))
	for _, s := range seed {
		// []byte is always supported by WriteAny
		_ = h.WriteAny(s)
	}
	return &readerSource{r: h.Digest()}
}

// LockedSource wraps a Source to be safe for concurrent use.
//
// Naturally, when calling Uint64 concurrently, which caller gets which value
// is raced, but no value is handed out twice.
type LockedSource struct {
	src Source
	m   sync.Mutex
}

// NewLockedSource creates a LockedSource by wrapping an underlying value.
func NewLockedSource(src Source) *LockedSource {
	if l, ok := src.(*LockedSource); ok {
		return l
	}
	return &LockedSource{src: src}
}

// Uint64 implements Source.
func (s *LockedSource) Uint64() uint64 {
	s.m.Lock()
	defer s.m.Unlock()
	return s.src.Uint64()
}
