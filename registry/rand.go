package registry

import "github.com/go-leo/gox/mathx/randx"

// Rand picks an index in [0, n). *math/rand.Rand satisfies it.
// Map.RandomCreature rejects indexes outside that range with ErrRandOutOfRange.
type Rand interface {
	Intn(n int) int
}

// The RandFunc type is an adapter to allow the use of ordinary functions as Rand.
type RandFunc func(n int) int

// Intn calls f(n).
func (f RandFunc) Intn(n int) int {
	return f(n)
}

// globalRand draws from the process-wide source.
var globalRand = RandFunc(func(n int) int {
	return int(randx.Int63n(int64(n)))
})
