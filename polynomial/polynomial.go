// Package polynomial implements dense multivariate polynomials of uniform degree
// stored as flat coefficient tensors, along with their arithmetic in the power basis.
//
// The coefficient of the monomial x0^e0 * x1^e1 * ... * x{dim-1}^e{dim-1} is stored at
// the flat index e0 + e1*n + ... + e{dim-1}*n^(dim-1), where n = degree + 1.
package polynomial

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/go-cmp/cmp"
	"github.com/zeebo/blake3"

	"github.com/tuneinsight/berry/utils"
	"github.com/tuneinsight/berry/utils/structs"
)

var (
	// ErrDimensionMismatch is returned when a vector or a matrix does not have the
	// number of entries required by the tensor it is applied to.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrDegreeTooSmall is returned when lifting a polynomial to a degree lower than its own.
	ErrDegreeTooSmall = errors.New("target degree smaller than polynomial degree")

	// ErrDegreeTooLarge is returned when pruning a polynomial to a degree larger than its own.
	ErrDegreeTooLarge = errors.New("target degree larger than polynomial degree")

	// ErrBasisMismatch is returned when decoding a polynomial serialized in another basis.
	ErrBasisMismatch = errors.New("basis mismatch")
)

// Polynomial is a dense multivariate polynomial of dimension dim where every variable
// has the same maximum degree. The basis of the coefficients is fixed by the type parameter.
type Polynomial[B Basis] struct {
	dim    int
	size   int
	coeffs structs.Vector[float64]
}

// New allocates a new zero polynomial of the given dimension and degree.
// The method panics if dim < 1 or degree < 0.
func New[B Basis](dim, degree int) *Polynomial[B] {

	if dim < 1 {
		panic(fmt.Errorf("cannot New: dim must be at least 1 but is %d", dim))
	}

	if degree < 0 {
		panic(fmt.Errorf("cannot New: degree must be non-negative but is %d", degree))
	}

	return &Polynomial[B]{
		dim:    dim,
		size:   degree + 1,
		coeffs: make(structs.Vector[float64], utils.IntPow(degree+1, dim)),
	}
}

// NewPower allocates a new zero polynomial in the power basis.
func NewPower(dim, degree int) *Polynomial[Power] {
	return New[Power](dim, degree)
}

// NewBernstein allocates a new zero polynomial in the Bernstein basis.
func NewBernstein(dim, degree int) *Polynomial[Bernstein] {
	return New[Bernstein](dim, degree)
}

// NewFromVector creates a new polynomial of dimension dim from its flattened
// coefficients. The values are copied. An error wrapping [ErrDimensionMismatch]
// is returned if len(v) is not the dim-th power of an integer.
func NewFromVector[B Basis](dim int, v []float64) (*Polynomial[B], error) {

	if dim < 1 {
		panic(fmt.Errorf("cannot NewFromVector: dim must be at least 1 but is %d", dim))
	}

	size, ok := intRoot(len(v), dim)
	if !ok {
		return nil, fmt.Errorf("cannot NewFromVector: %d coefficients is not a %d-th power: %w", len(v), dim, ErrDimensionMismatch)
	}

	p := New[B](dim, size-1)
	copy(p.coeffs, v)

	return p, nil
}

// intRoot returns r such that r^k = n, if it exists and is positive.
func intRoot(n, k int) (r int, ok bool) {

	if n < 1 {
		return 0, false
	}

	r = int(math.Round(math.Pow(float64(n), 1/float64(k))))

	for _, c := range []int{r - 1, r, r + 1} {
		if c >= 1 && utils.IntPow(c, k) == n {
			return c, true
		}
	}

	return 0, false
}

// Dim returns the number of variables.
func (p *Polynomial[B]) Dim() int {
	return p.dim
}

// Degree returns the maximum degree of each variable.
func (p *Polynomial[B]) Degree() int {
	return p.size - 1
}

// Len returns the number of coefficients, (degree+1)^dim.
func (p *Polynomial[B]) Len() int {
	return len(p.coeffs)
}

// Basis returns the basis tag of the polynomial.
func (p *Polynomial[B]) Basis() B {
	var b B
	return b
}

// Coefficients returns the flattened coefficients.
// The returned slice aliases the polynomial.
func (p *Polynomial[B]) Coefficients() []float64 {
	return p.coeffs
}

// Index returns the flat index of the coefficient of exponent e.
// The method panics if len(e) != dim or if a component is out of range.
func (p *Polynomial[B]) Index(e []int) (flat int) {

	if len(e) != p.dim {
		panic(fmt.Errorf("cannot Index: len(e)=%d != dim=%d", len(e), p.dim))
	}

	stride := 1
	for d, ed := range e {
		if ed < 0 || ed >= p.size {
			panic(fmt.Errorf("cannot Index: exponent %d of axis %d is not in [0, %d]", ed, d, p.size-1))
		}
		flat += ed * stride
		stride *= p.size
	}

	return
}

// Unwrap returns the exponent of the coefficient stored at the given flat index.
func (p *Polynomial[B]) Unwrap(flat int) (e []int) {

	if flat < 0 || flat >= len(p.coeffs) {
		panic(fmt.Errorf("cannot Unwrap: flat index %d is not in [0, %d)", flat, len(p.coeffs)))
	}

	e = make([]int, p.dim)
	for d := range e {
		e[d] = flat % p.size
		flat /= p.size
	}

	return
}

// Coeff returns the coefficient of exponent e.
func (p *Polynomial[B]) Coeff(e ...int) float64 {
	return p.coeffs[p.Index(e)]
}

// SetCoeff sets the coefficient of exponent e to v.
func (p *Polynomial[B]) SetCoeff(v float64, e ...int) {
	p.coeffs[p.Index(e)] = v
}

// CoeffAt returns the coefficient stored at the given flat index.
func (p *Polynomial[B]) CoeffAt(flat int) float64 {
	return p.coeffs[flat]
}

// SetCoeffAt sets the coefficient stored at the given flat index to v.
func (p *Polynomial[B]) SetCoeffAt(flat int, v float64) {
	p.coeffs[flat] = v
}

// CopyNew returns a deep copy of the polynomial.
func (p *Polynomial[B]) CopyNew() *Polynomial[B] {
	return &Polynomial[B]{
		dim:    p.dim,
		size:   p.size,
		coeffs: p.coeffs.CopyNew(),
	}
}

// Equal performs a deep equality check.
func (p *Polynomial[B]) Equal(other *Polynomial[B]) bool {
	return p.dim == other.dim && p.size == other.size && cmp.Equal(p.coeffs, other.coeffs)
}

// Digest returns the blake3 hash of the binary encoding of the polynomial.
func (p *Polynomial[B]) Digest() (digest [32]byte) {
	data, err := p.MarshalBinary()
	if err != nil {
		// Encoding into a buffer of exactly BinarySize() bytes does not fail.
		panic(err)
	}
	return blake3.Sum256(data)
}

func (p *Polynomial[B]) checkDim(op string, other int) {
	if p.dim != other {
		panic(fmt.Errorf("cannot %s: dimension mismatch %d != %d", op, p.dim, other))
	}
}
