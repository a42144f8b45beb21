package elgamal

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

type ciphertextMarshal struct {
	_    struct{} `cbor:",toarray"`
	A, B uint64
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (c Ciphertext) MarshalBinary() ([]byte, error) {
	return cbor.Marshal(&ciphertextMarshal{A: c.A, B: c.B})
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
//
// The decoded values are not checked against any modulus, use Valid for this.
func (c *Ciphertext) UnmarshalBinary(data []byte) error {
	var cm ciphertextMarshal
	if err := cbor.Unmarshal(data, &cm); err != nil {
		return fmt.Errorf("elgamal: ciphertext: %w", err)
	}
	c.A, c.B = cm.A, cm.B
	return nil
}

// Valid returns true if c could have been produced by Encrypt modulo p.
func (c Ciphertext) Valid(p uint64) bool {
	return c.A != 0 && c.A < p && c.B < p
}
