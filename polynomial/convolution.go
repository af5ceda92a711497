package polynomial

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/tuneinsight/berry/multiindex"
	"github.com/tuneinsight/berry/utils"
	"github.com/tuneinsight/berry/utils/structs"
)

// DirectConvolutionThreshold is the number of coefficient products above which
// [Mul] and [Pow] switch from the direct convolution to the FFT.
const DirectConvolutionThreshold = 1 << 14

// MulMethod selects the algorithm used to compute a product of polynomials.
type MulMethod int

const (
	// Auto selects Direct or FFT depending on DirectConvolutionThreshold.
	Auto = MulMethod(iota)
	// Direct is the schoolbook convolution, exact up to float64 round-off of each product.
	Direct
	// FFT is the convolution through a multidimensional complex FFT.
	FFT
)

// String returns the name of the method.
func (m MulMethod) String() string {
	switch m {
	case Auto:
		return "auto"
	case Direct:
		return "direct"
	case FFT:
		return "fft"
	default:
		return fmt.Sprintf("MulMethod(%d)", int(m))
	}
}

var complexPool = structs.NewSlicePool[complex128]()

// Mul returns a * b.
// The method panics if the operands do not have the same dimension.
func Mul(a, b *Polynomial[Power]) *Polynomial[Power] {
	return MulWithMethod(a, b, Auto)
}

// MulWithMethod returns a * b computed with the given method.
// The degree of the result is a.Degree() + b.Degree().
func MulWithMethod(a, b *Polynomial[Power], method MulMethod) *Polynomial[Power] {

	a.checkDim("Mul", b.dim)

	if method == Auto {
		method = selectMethod(a.Len(), b.Len())
	}

	switch method {
	case Direct:
		return mulDirect(a, b)
	case FFT:
		return mulFFT(a, b)
	default:
		panic(fmt.Errorf("cannot MulWithMethod: invalid method %s", method))
	}
}

// Pow returns p^n. Pow(p, 0) is the constant polynomial 1 of degree 0.
// The method panics if n is negative.
func Pow(p *Polynomial[Power], n int) *Polynomial[Power] {

	if n < 0 {
		panic(fmt.Errorf("cannot Pow: exponent must be non-negative but is %d", n))
	}

	if n == 0 {
		r := NewPower(p.dim, 0)
		r.coeffs[0] = 1
		return r
	}

	if n == 1 {
		return p.CopyNew()
	}

	if selectMethod(p.Len(), utils.IntPow((n-1)*p.Degree()+1, p.dim)) == FFT {
		return powFFT(p, n)
	}

	// square and multiply
	var acc *Polynomial[Power]
	base := p
	for k := n; k > 0; k >>= 1 {
		if k&1 == 1 {
			if acc == nil {
				acc = base.CopyNew()
			} else {
				acc = Mul(acc, base)
			}
		}
		if k > 1 {
			base = Mul(base, base)
		}
	}

	return acc
}

func selectMethod(lenA, lenB int) MulMethod {
	if lenA*lenB <= DirectConvolutionThreshold {
		return Direct
	}
	return FFT
}

// embedding returns, for each coefficient of p in flat order, its flat index
// in a uniform grid of the given extent.
func embedding(p *Polynomial[Power], extent int) (idx []int) {
	idx = make([]int, 0, p.Len())
	for m := multiindex.NewBoundedWrap(uniform(p.dim, p.size), extent, true); !m.Last(); m.Next() {
		idx = append(idx, m.FlatIndex())
	}
	return
}

func mulDirect(a, b *Polynomial[Power]) *Polynomial[Power] {

	r := NewPower(a.dim, a.Degree()+b.Degree())

	// exponents add, and so do their flat indices in the grid of the result
	ea := embedding(a, r.size)
	eb := embedding(b, r.size)

	for i, ca := range a.coeffs {
		if ca == 0 {
			continue
		}
		for j, cb := range b.coeffs {
			r.coeffs[ea[i]+eb[j]] += ca * cb
		}
	}

	return r
}

func mulFFT(a, b *Polynomial[Power]) *Polynomial[Power] {

	r := NewPower(a.dim, a.Degree()+b.Degree())

	fa := complexPool.Get(r.Len())
	fb := complexPool.Get(r.Len())
	defer complexPool.Put(fa)
	defer complexPool.Put(fb)

	scatter(a, r.size, *fa)
	scatter(b, r.size, *fb)

	t := newTensorFFT(r.dim, r.size)

	t.forward(*fa)
	t.forward(*fb)

	for i := range *fa {
		(*fa)[i] *= (*fb)[i]
	}

	t.backward(*fa)

	gather(*fa, r.coeffs)

	return r
}

func powFFT(p *Polynomial[Power], n int) *Polynomial[Power] {

	r := NewPower(p.dim, n*p.Degree())

	fp := complexPool.Get(r.Len())
	defer complexPool.Put(fp)

	scatter(p, r.size, *fp)

	t := newTensorFFT(r.dim, r.size)

	t.forward(*fp)

	for i, c := range *fp {
		(*fp)[i] = powComplex(c, n)
	}

	t.backward(*fp)

	gather(*fp, r.coeffs)

	return r
}

// powComplex returns c^n by binary exponentiation.
func powComplex(c complex128, n int) (r complex128) {
	r = 1
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			r *= c
		}
		c *= c
	}
	return
}

func scatter(p *Polynomial[Power], extent int, grid []complex128) {
	for i, j := range embedding(p, extent) {
		grid[j] = complex(p.coeffs[i], 0)
	}
}

func gather(grid []complex128, coeffs []float64) {
	for i := range coeffs {
		coeffs[i] = real(grid[i])
	}
}

// tensorFFT applies a one dimensional FFT of length n along every axis
// of a flattened tensor of dim axes.
type tensorFFT struct {
	dim  int
	n    int
	fft  *fourier.CmplxFFT
	line []complex128
	out  []complex128
}

func newTensorFFT(dim, n int) *tensorFFT {
	return &tensorFFT{
		dim:  dim,
		n:    n,
		fft:  fourier.NewCmplxFFT(n),
		line: make([]complex128, n),
		out:  make([]complex128, n),
	}
}

func (t *tensorFFT) forward(grid []complex128) {
	t.apply(grid, t.fft.Coefficients)
}

// backward is the normalized inverse of forward.
func (t *tensorFFT) backward(grid []complex128) {

	t.apply(grid, t.fft.Sequence)

	scale := complex(1/float64(len(grid)), 0)
	for i := range grid {
		grid[i] *= scale
	}
}

func (t *tensorFFT) apply(grid []complex128, transform func(dst, src []complex128) []complex128) {

	n := t.n
	stride := 1

	for d := 0; d < t.dim; d++ {

		span := stride * n

		for outer := 0; outer < len(grid); outer += span {
			for inner := 0; inner < stride; inner++ {

				base := outer + inner

				for k := 0; k < n; k++ {
					t.line[k] = grid[base+k*stride]
				}

				transform(t.out, t.line)

				for k := 0; k < n; k++ {
					grid[base+k*stride] = t.out[k]
				}
			}
		}

		stride = span
	}
}
