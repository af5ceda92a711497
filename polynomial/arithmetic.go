package polynomial

import (
	"fmt"

	"github.com/tuneinsight/berry/multiindex"
	"github.com/tuneinsight/berry/utils"
)

// Add returns a + b. The operand of lower degree is zero padded.
// The method panics if the operands do not have the same dimension.
func Add(a, b *Polynomial[Power]) *Polynomial[Power] {
	return combine("Add", a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns a - b. The operand of lower degree is zero padded.
// The method panics if the operands do not have the same dimension.
func Sub(a, b *Polynomial[Power]) *Polynomial[Power] {
	return combine("Sub", a, b, func(x, y float64) float64 { return x - y })
}

func combine(op string, a, b *Polynomial[Power], f func(x, y float64) float64) *Polynomial[Power] {

	a.checkDim(op, b.dim)

	degree := utils.Max(a.Degree(), b.Degree())

	// LiftDegree cannot fail on the maximum degree
	al, _ := LiftDegree(a, degree)
	bl, _ := LiftDegree(b, degree)

	for i := range al.coeffs {
		al.coeffs[i] = f(al.coeffs[i], bl.coeffs[i])
	}

	return al
}

// Neg returns -p.
func Neg(p *Polynomial[Power]) *Polynomial[Power] {
	return MulScalar(p, -1)
}

// AddScalar returns p + c.
func AddScalar(p *Polynomial[Power], c float64) *Polynomial[Power] {
	r := p.CopyNew()
	r.coeffs[0] += c
	return r
}

// MulScalar returns c * p.
func MulScalar(p *Polynomial[Power], c float64) *Polynomial[Power] {
	r := p.CopyNew()
	for i := range r.coeffs {
		r.coeffs[i] *= c
	}
	return r
}

// LiftDegree returns a copy of p zero padded to the given degree.
// An error wrapping [ErrDegreeTooSmall] is returned if degree < p.Degree().
func LiftDegree(p *Polynomial[Power], degree int) (*Polynomial[Power], error) {

	if degree < p.Degree() {
		return nil, fmt.Errorf("cannot LiftDegree from %d to %d: %w", p.Degree(), degree, ErrDegreeTooSmall)
	}

	if degree == p.Degree() {
		return p.CopyNew(), nil
	}

	r := NewPower(p.dim, degree)

	// source is visited in flat order, destination through its embedding in the larger grid
	i := 0
	for m := multiindex.NewBoundedWrap(uniform(p.dim, p.size), r.size, true); !m.Last(); m.Next() {
		r.coeffs[m.FlatIndex()] = p.coeffs[i]
		i++
	}

	return r, nil
}

// Prune returns a copy of p from which every coefficient with an exponent greater
// than degree along any axis has been dropped.
// An error wrapping [ErrDegreeTooLarge] is returned if degree > p.Degree().
func Prune(p *Polynomial[Power], degree int) (*Polynomial[Power], error) {

	if degree > p.Degree() {
		return nil, fmt.Errorf("cannot Prune from %d to %d: %w", p.Degree(), degree, ErrDegreeTooLarge)
	}

	if degree < 0 {
		panic(fmt.Errorf("cannot Prune: degree must be non-negative but is %d", degree))
	}

	r := NewPower(p.dim, degree)

	i := 0
	for m := multiindex.NewBoundedWrap(uniform(p.dim, r.size), p.size, true); !m.Last(); m.Next() {
		r.coeffs[i] = p.coeffs[m.FlatIndex()]
		i++
	}

	return r, nil
}

// Derivative returns the partial derivative of p with respect to the given axis.
// The result has the same degree as p, its highest coefficients along axis being zero.
func Derivative(p *Polynomial[Power], axis int) *Polynomial[Power] {

	if axis < 0 || axis >= p.dim {
		panic(fmt.Errorf("cannot Derivative: axis %d is not in [0, %d)", axis, p.dim))
	}

	r := NewPower(p.dim, p.Degree())

	stride := utils.IntPow(p.size, axis)

	for m := multiindex.NewExhaustiveWrap(p.dim, p.size, true); !m.Last(); m.Next() {
		if e := m.At(axis); e > 0 {
			flat := m.FlatIndex()
			r.coeffs[flat-stride] = float64(e) * p.coeffs[flat]
		}
	}

	return r
}

func uniform(dim, n int) (bounds []int) {
	bounds = make([]int, dim)
	utils.Fill(bounds, n)
	return
}
