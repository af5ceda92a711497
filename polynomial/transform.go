package polynomial

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Transform applies the linear map m to the flattened coefficients of p and
// reshapes the result into a polynomial of basis T with the same dimension.
// The degree of the result is deduced from the number of rows of m.
// An error wrapping [ErrDimensionMismatch] is returned if the number of columns of m
// is not p.Len() or if its number of rows is not a p.Dim()-th power.
func Transform[F, T Basis](p *Polynomial[F], m mat.Matrix) (*Polynomial[T], error) {

	rows, cols := m.Dims()

	if cols != p.Len() {
		return nil, fmt.Errorf("cannot Transform: matrix has %d columns but polynomial has %d coefficients: %w", cols, p.Len(), ErrDimensionMismatch)
	}

	size, ok := intRoot(rows, p.dim)
	if !ok {
		return nil, fmt.Errorf("cannot Transform: %d rows is not a %d-th power: %w", rows, p.dim, ErrDimensionMismatch)
	}

	r := New[T](p.dim, size-1)

	src := mat.NewVecDense(cols, p.coeffs)
	dst := mat.NewVecDense(rows, r.coeffs)

	dst.MulVec(m, src)

	return r, nil
}
