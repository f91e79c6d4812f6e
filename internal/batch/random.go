package batch

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"time"
)

// RandSource hands out the generator used for the next image.
type RandSource interface {
	Next() *rand.Rand
}

type entropySource struct{}

// EntropySource reseeds from system entropy for every image.
func EntropySource() RandSource {
	return entropySource{}
}

func (entropySource) Next() *rand.Rand {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(b[:]))))
}

type seededSource struct {
	rng *rand.Rand
}

// SeededSource seeds one generator and shares it across the whole run, so
// the same seed over the same directory reproduces the same output.
func SeededSource(seed int64) RandSource {
	return &seededSource{rng: rand.New(rand.NewSource(seed))}
}

func (s *seededSource) Next() *rand.Rand {
	return s.rng
}
