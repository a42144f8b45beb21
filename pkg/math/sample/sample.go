package sample

import (
	"fmt"

	"github.com/taurusgroup/elgamal64/internal/params"
)

// ErrModulusTooSmall is the panic value of Exponent, when there is no value to sample.
var ErrModulusTooSmall = fmt.Errorf("sample: modulus must be at least %d", params.MinGroupModulus)

// Exponent samples an element of the open interval (1, p-1), using a single value from src.
//
// The value is reduced modulo p-3, so the bias is negligible for large p.
// It panics if p < params.MinGroupModulus, as the interval would be empty.
func Exponent(src Source, p uint64) uint64 {
	if p < params.MinGroupModulus {
		panic(ErrModulusTooSmall)
	}
	return src.Uint64()%(p-3) + 2
}
