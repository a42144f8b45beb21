package elgamal

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/taurusgroup/elgamal64/internal/params"
	"github.com/taurusgroup/elgamal64/pkg/math/arith"
	"github.com/taurusgroup/elgamal64/pkg/math/prime"
	"github.com/taurusgroup/elgamal64/pkg/math/sample"
	"github.com/taurusgroup/elgamal64/pkg/pool"
)

// Generator creates groups and key pairs.
//
// The zero value is not usable, a Source must be set.
type Generator struct {
	// Source provides every random value.
	Source sample.Source
	// Pool is used to test several group candidates in parallel, when non nil.
	Pool *pool.Pool

	Log zerolog.Logger
}

// NewGenerator creates a Generator, logging to stderr at Info level.
//
// Per-candidate details of the group search are logged at Debug level.
func NewGenerator(src sample.Source, pl *pool.Pool) *Generator {
	return &Generator{
		Source: src,
		Pool:   pl,
		Log: zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = os.Stderr
		})).Level(zerolog.InfoLevel).With().
			Timestamp().
			Str("component", "elgamal").
			Logger(),
	}
}

func newDefaultGenerator(src sample.Source) *Generator {
	return &Generator{
		Source: src,
		Log:    zerolog.Nop(),
	}
}

// NewGroup generates a prime p with its top higherBits bits set, and the smallest
// primitive root of p.
//
// A prime without any primitive root below 2³² is discarded, and the whole draw
// is started over.
func (gen *Generator) NewGroup(higherBits int) Group {
	src := gen.Source
	if gen.Pool != nil {
		src = sample.NewLockedSource(src)
	}
	group := pool.Search(gen.Pool, 1, func() (Group, bool) {
		return gen.tryGroup(src, higherBits)
	})[0]
	gen.Log.Debug().Uint64("p", group.P).Uint64("g", group.G).Msg("generated group")
	return group
}

// tryGroup draws a single prime, and looks for one of its primitive roots.
func (gen *Generator) tryGroup(src sample.Source, higherBits int) (Group, bool) {
	p := sample.RandomPrime(src, higherBits)
	if p < params.MinGroupModulus {
		gen.Log.Debug().Uint64("p", p).Msg("prime too small")
		return Group{}, false
	}

	rf := prime.NewRootFinder(p)
	gen.Log.Debug().
		Uint64("p", p).
		Uints32("factors", rf.Totient.Bases).
		Uint64("cofactor", rf.Totient.Cofactor).
		Msg("factored totient")

	g, err := rf.Find(params.RootSearchMin, params.RootSearchMax)
	if err != nil {
		gen.Log.Debug().Err(err).Uint64("p", p).Msg("discarding prime")
		return Group{}, false
	}
	return Group{P: p, G: g}, true
}

// KeyGen fills keys with a fresh private exponent X and the matching public value Y.
//
// If higherBits is not zero, a new group is generated first.
// Otherwise, the group already contained in keys is reused.
func (gen *Generator) KeyGen(keys *KeyPair, higherBits int) {
	if higherBits != 0 {
		group := gen.NewGroup(higherBits)
		keys.P, keys.G = group.P, group.G
	}
	keys.X = sample.Exponent(gen.Source, keys.P)
	keys.Y = arith.PowerMod(keys.G, keys.X, keys.P)
}
