package chip8

import (
	"math/rand/v2"
	"time"
)

// RandomSource provides the random bytes for the Cxkk instruction.
type RandomSource interface {
	Byte() uint8
}

type pcgSource struct {
	rng *rand.Rand
}

// NewRandomSource returns a deterministic random source for the given seed.
// A zero seed selects a time based seed.
func NewRandomSource(seed uint64) RandomSource {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &pcgSource{
		rng: rand.New(rand.NewPCG(seed, seed>>32|seed<<32)),
	}
}

func (s *pcgSource) Byte() uint8 {
	return uint8(s.rng.UintN(256))
}
