package arith

import "math"

// maxRoot is ⌊√(2⁶⁴-1)⌋
const maxRoot = 1<<32 - 1

// Sqrt returns ⌊√x⌋.
//
// A float64 only holds 53 bits of mantissa, so the estimate obtained through
// math.Sqrt can be off by one near the top of the range. It is corrected here
// using integer arithmetic only.
func Sqrt(x uint64) uint64 {
	r := uint64(math.Sqrt(float64(x)))
	if r > maxRoot {
		r = maxRoot
	}
	for r*r > x {
		r--
	}
	for r < maxRoot && (r+1)*(r+1) <= x {
		r++
	}
	return r
}
