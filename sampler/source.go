package sampler

import (
	"math/rand/v2"
	"sync"
)

// IntNSource is the minimal interface Fast needs from a PRNG.
//
// IntN must return a non-negative pseudo-random number in [0, n),
// and must be safe for concurrent use if the caller shares it.
type IntNSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// Global is the IntNSource backed by the top level math/rand/v2 functions.
//
// It's properly seeded by the runtime and safe for concurrent use.
var Global IntNSource = globalSource{}

var _ IntNSource = (*LockedSource)(nil)

// LockedSource is a thread-safe, seeded IntNSource.
//
// It's useful when you need reproducible output, for example in tests.
// Otherwise Global should be preferred as it doesn't need a lock.
type LockedSource struct {
	r    *rand.Rand
	lock sync.Mutex
}

// NewLockedSource creates a *LockedSource from a PCG seeded with seed.
func NewLockedSource(seed uint64) *LockedSource {
	return &LockedSource{
		r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// NewRandomLockedSource creates a *LockedSource seeded by GetSeed.
func NewRandomLockedSource() *LockedSource {
	return NewLockedSource(uint64(GetSeed()))
}

// IntN implements IntNSource.
//
// It calls underlying rand.Rand's IntN with lock.
func (ls *LockedSource) IntN(n int) (i int) {
	ls.lock.Lock()
	i = ls.r.IntN(n)
	ls.lock.Unlock()
	return
}
