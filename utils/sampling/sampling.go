// Package sampling implements sampling of bytes and floating point values
// from secure or deterministic sources.
package sampling

import (
	"encoding/binary"
	"fmt"
)

// UniformFloat64 returns a float uniformly distributed in [min, max) read from prng.
func UniformFloat64(prng PRNG, min, max float64) (f float64, err error) {
	var b [8]byte
	if _, err = prng.Read(b[:]); err != nil {
		return 0, fmt.Errorf("prng.Read: %w", err)
	}
	// 53 random bits mapped on [0, 1)
	u := float64(binary.LittleEndian.Uint64(b[:])>>11) / (1 << 53)
	return min + u*(max-min), nil
}

// UniformFloat64Slice fills s with floats uniformly distributed in [min, max).
func UniformFloat64Slice(prng PRNG, min, max float64, s []float64) (err error) {
	for i := range s {
		if s[i], err = UniformFloat64(prng, min, max); err != nil {
			return
		}
	}
	return
}

// RandFloat64 returns a random float between min and max from a secure source.
func RandFloat64(min, max float64) float64 {
	prng, _ := NewPRNG()
	f, err := UniformFloat64(prng, min, max)
	if err != nil {
		panic(err)
	}
	return f
}
