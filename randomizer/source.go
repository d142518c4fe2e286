package randomizer

import (
	"math/rand/v2"
	"sync"
)

// Source provides uniform draws in [0, 1).
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 {
	return rand.Float64()
}

// GlobalSource draws from the process-wide generator. Safe for concurrent use.
func GlobalSource() Source {
	return globalSource{}
}

// NewSeededSource returns a deterministic PCG-backed source.
// It is not safe for concurrent use; wrap it with NewLockedSource when shared.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type lockedSource struct {
	mu  sync.Mutex
	src Source
}

// NewLockedSource serializes access to src
func NewLockedSource(src Source) Source {
	return &lockedSource{src: src}
}

func (l *lockedSource) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.Float64()
}
