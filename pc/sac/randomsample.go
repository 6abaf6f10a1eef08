package sac

import (
	"math/rand"
)

// NewRandomSampler returns a Sampler drawing uniformly from [0, n) using the
// shared math/rand source. It is safe for concurrent use.
func NewRandomSampler(n int) Sampler {
	if n < 0x8000000 {
		return &randomSampler31{int32(n)}
	}
	return &randomSampler63{int64(n)}
}

type randomSampler31 struct {
	n int32
}

func (s *randomSampler31) Sample() int {
	return int(rand.Int31n(s.n))
}

type randomSampler63 struct {
	n int64
}

func (s *randomSampler63) Sample() int {
	return int(rand.Int63n(s.n))
}

// NewSeededSampler returns a deterministic Sampler drawing uniformly from
// [0, n). It is not safe for concurrent use.
func NewSeededSampler(n int, seed int64) Sampler {
	return &seededSampler{n: n, rnd: rand.New(rand.NewSource(seed))}
}

type seededSampler struct {
	n   int
	rnd *rand.Rand
}

func (s *seededSampler) Sample() int {
	return s.rnd.Intn(s.n)
}
