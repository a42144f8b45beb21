package params

const (
	// MaxHigherBits is the largest number of top bits a generated prime may
	// have forced to 1.
	//
	// The remaining 8 bits leave room for the random part of the candidate.
	MaxHigherBits = 56

	// RootSearchMin is the first candidate tried when searching for a primitive root.
	RootSearchMin = 2
	// RootSearchMax bounds the primitive root search during key generation,
	// so that the generator always fits in 32 bits.
	RootSearchMax = 1<<32 - 1

	// MinGroupModulus is the smallest prime for which the interval (1, p-1)
	// of private exponents is not empty.
	MinGroupModulus = 5

	// SourceBytes is the number of bytes consumed from a reader per random draw.
	SourceBytes = 8
)

// MillerRabinWitnesses is a set of bases for which no composite number below 2⁶⁴
// is a strong probable prime to every base.
//
// See https://miller-rabin.appspot.com (Jim Sinclair, 2011).
var MillerRabinWitnesses = [...]uint64{2, 325, 9375, 28178, 450775, 9780504, 1795265022}

// TrialPrimes contains the odd primes used to reject candidates before running
// the more expensive Miller-Rabin rounds.
var TrialPrimes = [...]uint64{
	3, 5, 7, 11, 13, 17, 19, 23,
	29, 31, 37, 41, 43, 47, 53,
}
