package polynomial

import (
	"fmt"

	"github.com/tuneinsight/berry/utils/sampling"
)

// NewRandomPower returns a new polynomial in the power basis whose coefficients
// are sampled uniformly in [lo, hi) from prng.
func NewRandomPower(dim, degree int, prng sampling.PRNG, lo, hi float64) (*Polynomial[Power], error) {
	p := NewPower(dim, degree)
	if err := sampling.UniformFloat64Slice(prng, lo, hi, p.coeffs); err != nil {
		return nil, fmt.Errorf("sampling.UniformFloat64Slice: %w", err)
	}
	return p, nil
}
