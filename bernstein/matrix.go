// Package bernstein implements the change of basis between the power basis and the
// tensor Bernstein basis on the unit box, with degree elevation.
package bernstein

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/tuneinsight/berry/multiindex"
	"github.com/tuneinsight/berry/polynomial"
	"github.com/tuneinsight/berry/utils"
)

// PowerToBernsteinMatrix returns the matrix mapping the flattened power-basis
// coefficients of a polynomial of the given dimension and degree to its flattened
// Bernstein coefficients of degree degree+increase.
//
// The entry of row i and column l is prod_d binom(i_d, l_d) / binom(degree+increase, l_d).
// The method panics if dim < 1, degree < 0 or increase < 0.
func PowerToBernsteinMatrix(dim, degree, increase int) *mat.Dense {

	if increase < 0 {
		panic(fmt.Errorf("cannot PowerToBernsteinMatrix: increase must be non-negative but is %d", increase))
	}

	to := degree + increase

	// binom(to, .) is shared by every entry
	denom := utils.PascalRow(to)

	return buildMatrix(dim, to, degree, func(i, l []int) (c float64) {
		c = 1
		for d := range i {
			c *= utils.Binomial(i[d], l[d]) / denom[l[d]]
		}
		return
	})
}

// BernsteinToPowerMatrix returns the matrix mapping the flattened Bernstein
// coefficients of a polynomial of the given dimension and degree to its flattened
// power-basis coefficients.
//
// The entry of row i and column l is
// (-1)^(sum_d i_d-l_d) prod_d binom(degree-l_d, degree-i_d) * binom(degree, l_d).
// The method panics if dim < 1 or degree < 0.
func BernsteinToPowerMatrix(dim, degree int) *mat.Dense {
	return buildMatrix(dim, degree, degree, func(i, l []int) (c float64) {
		c = 1
		neg := false
		for d := range i {
			c *= utils.Binomial(degree-l[d], degree-i[d]) * utils.Binomial(degree, l[d])
			if (i[d]-l[d])&1 == 1 {
				neg = !neg
			}
		}
		if neg {
			return -c
		}
		return
	})
}

// buildMatrix allocates a (to+1)^dim x (from+1)^dim matrix and sets the entries
// of row i and column l with l_d <= min(i_d, from) to coeff(i, l). Every other
// entry is zero.
func buildMatrix(dim, to, from int, coeff func(i, l []int) float64) *mat.Dense {

	if dim < 1 {
		panic(fmt.Errorf("cannot buildMatrix: dim must be at least 1 but is %d", dim))
	}

	if from < 0 || to < from {
		panic(fmt.Errorf("cannot buildMatrix: invalid degrees from=%d to=%d", from, to))
	}

	rows := utils.IntPow(to+1, dim)
	cols := utils.IntPow(from+1, dim)

	m := mat.NewDense(rows, cols, nil)

	iBuf := make([]int, dim)
	lBuf := make([]int, dim)
	bounds := make([]int, dim)

	lInc := multiindex.NewBoundedWrapIncrementer(bounds, from+1)

	for i := multiindex.NewBorrowed(iBuf, true, &multiindex.ExhaustiveWrap{N: to + 1}); !i.Last(); i.Next() {

		// the row exponent bounds the column exponents
		for d, id := range iBuf {
			bounds[d] = utils.Min(id+1, from+1)
		}

		lInc.Reset(bounds)

		for l := multiindex.NewBorrowed(lBuf, true, lInc); !l.Last(); l.Next() {
			m.Set(i.FlatIndex(), l.FlatIndex(), coeff(iBuf, lBuf))
		}
	}

	return m
}

// Transform applies the change-of-basis matrix m to p.
// See [polynomial.Transform].
func Transform[F, T polynomial.Basis](p *polynomial.Polynomial[F], m mat.Matrix) (*polynomial.Polynomial[T], error) {
	return polynomial.Transform[F, T](p, m)
}

// ToBernstein returns the Bernstein coefficients of degree p.Degree()+increase of p.
func ToBernstein(p *polynomial.Polynomial[polynomial.Power], increase int) (*polynomial.Polynomial[polynomial.Bernstein], error) {
	return Transform[polynomial.Power, polynomial.Bernstein](p, PowerToBernsteinMatrix(p.Dim(), p.Degree(), increase))
}

// ToPower returns the power-basis coefficients of the Bernstein-basis polynomial b.
func ToPower(b *polynomial.Polynomial[polynomial.Bernstein]) (*polynomial.Polynomial[polynomial.Power], error) {
	return Transform[polynomial.Bernstein, polynomial.Power](b, BernsteinToPowerMatrix(b.Dim(), b.Degree()))
}
