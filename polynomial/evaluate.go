package polynomial

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/berry/multiindex"
	"github.com/tuneinsight/berry/utils"
	"github.com/tuneinsight/berry/utils/bignum"
)

// Evaluate evaluates p at x with a nested Horner scheme: the outermost loop
// runs over the last axis, whose coefficient blocks are contiguous.
// The method panics if len(x) != p.Dim().
func Evaluate(p *Polynomial[Power], x ...float64) float64 {
	p.checkDim("Evaluate", len(x))
	return horner(p.coeffs, p.size, x)
}

func horner(coeffs []float64, size int, x []float64) (y float64) {

	k := len(x)

	if k == 0 {
		return coeffs[0]
	}

	block := utils.IntPow(size, k-1)

	for j := size - 1; j >= 0; j-- {
		y = y*x[k-1] + horner(coeffs[j*block:(j+1)*block], size, x[:k-1])
	}

	return
}

// EvaluateBig evaluates p at x term by term with prec bits of precision.
// It is a slow reference used to measure the round-off of [Evaluate].
func EvaluateBig(p *Polynomial[Power], prec uint, x ...float64) (y *big.Float) {

	p.checkDim("EvaluateBig", len(x))

	xBig := make([]*big.Float, len(x))
	for i := range x {
		xBig[i] = bignum.NewFloat(x[i], prec)
	}

	y = bignum.NewFloat(0, prec)
	term := bignum.NewFloat(0, prec)

	for m := multiindex.NewExhaustiveWrap(p.dim, p.size, true); !m.Last(); m.Next() {

		c := p.coeffs[m.FlatIndex()]

		if c == 0 {
			continue
		}

		term.SetFloat64(c)

		for d, ed := range m.Values() {
			term.Mul(term, bignum.Pow(xBig[d], bignum.NewFloat(ed, prec)))
		}

		y.Add(y, term)
	}

	return
}

// EvaluateBernstein evaluates the Bernstein-basis polynomial b at x with
// the de Casteljau algorithm applied axis by axis.
// The method panics if len(x) != b.Dim().
func EvaluateBernstein(b *Polynomial[Bernstein], x ...float64) float64 {
	if len(x) != b.dim {
		panic(fmt.Errorf("cannot EvaluateBernstein: dimension mismatch %d != %d", b.dim, len(x)))
	}
	return deCasteljau(b.coeffs, b.size, x, make([]float64, b.size*len(x)))
}

func deCasteljau(coeffs []float64, size int, x, buff []float64) float64 {

	k := len(x)

	if k == 0 {
		return coeffs[0]
	}

	block := utils.IntPow(size, k-1)

	// each recursion level uses its own scratch row
	row, rest := buff[:size], buff[size:]

	for j := 0; j < size; j++ {
		row[j] = deCasteljau(coeffs[j*block:(j+1)*block], size, x[:k-1], rest)
	}

	t := x[k-1]
	for r := 1; r < size; r++ {
		for j := 0; j < size-r; j++ {
			row[j] = (1-t)*row[j] + t*row[j+1]
		}
	}

	return row[0]
}
