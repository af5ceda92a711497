// Package bound computes guaranteed bounds of polynomials on the unit box from
// their Bernstein coefficients.
//
// The coefficients of a polynomial in the Bernstein basis of the unit box enclose
// its range: the minimum coefficient is a lower bound and the maximum coefficient
// an upper bound. A bound is exact when it is attained at a corner of the box
// (the vertex condition), in which case the corner is a minimizer (maximizer).
package bound

import (
	"fmt"
	"math"

	"github.com/tuneinsight/berry/multiindex"
	"github.com/tuneinsight/berry/polynomial"
	"github.com/tuneinsight/berry/utils"
)

// InfimumBound returns the minimum Bernstein coefficient of b, which is a lower
// bound of the polynomial on the unit box, and whether it is attained at a corner.
func InfimumBound(b *polynomial.Polynomial[polynomial.Bernstein]) (inf float64, vertex bool) {
	inf, vertex, _ = InfimumBoundIndex(b)
	return
}

// InfimumBoundIndex is the same as [InfimumBound] but also returns the multi-index
// of the coefficient attaining the bound: the first such corner if the vertex
// condition holds, else the first minimum in flat order.
func InfimumBoundIndex(b *polynomial.Polynomial[polynomial.Bernstein]) (inf float64, vertex bool, idx []int) {
	inf, pos := utils.MinSlice(b.Coefficients())
	return extremum(b, inf, pos)
}

// SupremumBound returns the maximum Bernstein coefficient of b, which is an upper
// bound of the polynomial on the unit box, and whether it is attained at a corner.
func SupremumBound(b *polynomial.Polynomial[polynomial.Bernstein]) (sup float64, vertex bool) {
	sup, vertex, _ = SupremumBoundIndex(b)
	return
}

// SupremumBoundIndex is the same as [SupremumBound] but also returns the multi-index
// of the coefficient attaining the bound.
func SupremumBoundIndex(b *polynomial.Polynomial[polynomial.Bernstein]) (sup float64, vertex bool, idx []int) {
	sup, pos := utils.MaxSlice(b.Coefficients())
	return extremum(b, sup, pos)
}

func extremum(b *polynomial.Polynomial[polynomial.Bernstein], val float64, pos int) (float64, bool, []int) {

	degree := b.Degree()
	corner := make([]int, b.Dim())

	for m := multiindex.NewExhaustive(b.Dim(), 2, true); !m.Last(); m.Next() {

		for d, v := range m.Values() {
			corner[d] = v * degree
		}

		if b.Coeff(corner...) == val {
			return val, true, corner
		}
	}

	return val, false, b.Unwrap(pos)
}

// InfimumBoundGap returns an upper estimate of the distance between the infimum
// bound of the Bernstein coefficients of degree p.Degree()+degreeIncrease of p and
// the true minimum of p on the unit box. It is zero when the vertex condition holds.
//
// The estimate is sum_m w(m) |c_m| (r-1)/r^2 with w(m) = sum_{m_d != 0} (m_d-1)^2,
// c_m the power-basis coefficients of p and r = p.Degree() + degreeIncrease.
func InfimumBoundGap(p *polynomial.Polynomial[polynomial.Power], vertexConditionMet bool, degreeIncrease int) float64 {

	if vertexConditionMet {
		return 0
	}

	if degreeIncrease < 0 {
		panic(fmt.Errorf("cannot InfimumBoundGap: degreeIncrease must be non-negative but is %d", degreeIncrease))
	}

	r := float64(p.Degree() + degreeIncrease)

	if r == 0 {
		return 0
	}

	var eps float64
	for m := multiindex.NewExhaustiveWrap(p.Dim(), p.Degree()+1, true); !m.Last(); m.Next() {

		var w int
		for _, md := range m.Values() {
			if md != 0 {
				w += (md - 1) * (md - 1)
			}
		}

		eps += float64(w) * math.Abs(p.CoeffAt(m.FlatIndex()))
	}

	return eps * (r - 1) / (r * r)
}

// CtrlPointOnUnitBox returns the location on the unit box of the control point of
// the Bernstein coefficient of multi-index idx, that is idx/degree.
// All components are zero if degree is zero.
func CtrlPointOnUnitBox(idx []int, degree int) (x []float64) {

	x = make([]float64, len(idx))

	if degree == 0 {
		return
	}

	for d, id := range idx {
		x[d] = float64(id) / float64(degree)
	}

	return
}
