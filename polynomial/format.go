package polynomial

import (
	"math"
	"strconv"
	"strings"
)

// DisplayThreshold is the magnitude below which coefficients are hidden by [Polynomial.String].
const DisplayThreshold = 1e-12

// Format returns a human readable representation of p in which terms whose
// coefficient has a magnitude smaller than threshold are omitted.
func (p *Polynomial[B]) Format(threshold float64) string {

	var sb strings.Builder
	var basis B

	for i, c := range p.coeffs {

		if math.Abs(c) < threshold {
			continue
		}

		if sb.Len() != 0 {
			if c < 0 {
				sb.WriteString(" - ")
			} else {
				sb.WriteString(" + ")
			}
			c = math.Abs(c)
		}

		sb.WriteString(strconv.FormatFloat(c, 'g', -1, 64))
		sb.WriteString(basis.term(p.Unwrap(i)))
	}

	if sb.Len() == 0 {
		return "0"
	}

	return sb.String()
}

// String returns the representation of p given by Format(DisplayThreshold).
func (p *Polynomial[B]) String() string {
	return p.Format(DisplayThreshold)
}
