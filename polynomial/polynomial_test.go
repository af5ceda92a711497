package polynomial

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/tuneinsight/berry/utils"
	"github.com/tuneinsight/berry/utils/sampling"
)

func testString(opname string, dim, degree int) string {
	return fmt.Sprintf("%s/dim=%d/degree=%d", opname, dim, degree)
}

var testParams = []struct{ dim, degree int }{
	{1, 3},
	{2, 2},
	{3, 3},
}

func newTestPRNG(t *testing.T) sampling.PRNG {
	prng, err := sampling.NewKeyedPRNG([]byte{'b', 'e', 'r', 'r', 'y'})
	require.NoError(t, err)
	return prng
}

func newRandom(t *testing.T, prng sampling.PRNG, dim, degree int) *Polynomial[Power] {
	p, err := NewRandomPower(dim, degree, prng, -1, 1)
	require.NoError(t, err)
	return p
}

func randomPoint(t *testing.T, prng sampling.PRNG, dim int) []float64 {
	x := make([]float64, dim)
	require.NoError(t, sampling.UniformFloat64Slice(prng, 0, 1, x))
	return x
}

func requireCoeffsInDelta(t *testing.T, want, have []float64, delta float64) {
	require.Len(t, have, len(want))
	for i := range want {
		require.InDelta(t, want[i], have[i], delta, "coefficient %d", i)
	}
}

func TestPolynomial(t *testing.T) {

	prng := newTestPRNG(t)

	t.Run("Evaluate/Univariate", func(t *testing.T) {
		p, err := NewFromVector[Power](1, []float64{1, 2, 3, 4})
		require.NoError(t, err)
		require.Equal(t, 3, p.Degree())
		require.Equal(t, 1.0+2*2+3*4+4*8, Evaluate(p, 2))
	})

	t.Run("Evaluate/Bivariate", func(t *testing.T) {
		// 1 + 2*x0 + 3*x1 + 4*x0*x1
		p, err := NewFromVector[Power](2, []float64{1, 2, 3, 4})
		require.NoError(t, err)
		require.Equal(t, 3.0, p.Coeff(0, 1))
		require.Equal(t, 1.0+2*2+3*5+4*2*5, Evaluate(p, 2, 5))
	})

	t.Run("NewFromVector/NotAPower", func(t *testing.T) {
		_, err := NewFromVector[Power](2, []float64{1, 2, 3})
		require.True(t, errors.Is(err, ErrDimensionMismatch))

		_, err = NewFromVector[Power](1, nil)
		require.True(t, errors.Is(err, ErrDimensionMismatch))
	})

	t.Run("New/Invalid", func(t *testing.T) {
		require.Panics(t, func() { NewPower(0, 2) })
		require.Panics(t, func() { NewPower(2, -1) })
	})

	t.Run("Index", func(t *testing.T) {
		p := NewPower(3, 2)
		for flat := 0; flat < p.Len(); flat++ {
			require.Equal(t, flat, p.Index(p.Unwrap(flat)))
		}
		require.Panics(t, func() { p.Coeff(0, 3, 0) })
		require.Panics(t, func() { p.Coeff(0, 0) })
		p.SetCoeff(7, 1, 0, 2)
		require.Equal(t, 7.0, p.CoeffAt(1+2*9))
	})

	t.Run("Mul/Square", func(t *testing.T) {
		p, err := NewFromVector[Power](1, []float64{1, 1})
		require.NoError(t, err)
		for _, method := range []MulMethod{Direct, FFT} {
			requireCoeffsInDelta(t, []float64{1, 2, 1}, MulWithMethod(p, p, method).Coefficients(), 1e-12)
		}
	})

	t.Run("Pow/Zero", func(t *testing.T) {
		p := newRandom(t, prng, 2, 3)
		r := Pow(p, 0)
		require.Equal(t, 0, r.Degree())
		require.Equal(t, 2, r.Dim())
		require.Equal(t, []float64{1}, r.Coefficients())
	})

	t.Run("Pow/Binomial", func(t *testing.T) {
		p, err := NewFromVector[Power](1, []float64{1, 1})
		require.NoError(t, err)
		requireCoeffsInDelta(t, utils.PascalRow(6), Pow(p, 6).Coefficients(), 1e-9)
	})

	t.Run("Pow/Multinomial", func(t *testing.T) {
		// (1 + x0 + x1)^4
		p := NewPower(2, 1)
		p.SetCoeff(1, 0, 0)
		p.SetCoeff(1, 1, 0)
		p.SetCoeff(1, 0, 1)

		r := Pow(p, 4)
		require.Equal(t, 4, r.Degree())

		for flat := 0; flat < r.Len(); flat++ {
			e := r.Unwrap(flat)
			var want float64
			if e[0]+e[1] <= 4 {
				want = utils.Multinomial([]int{e[0], e[1], 4 - e[0] - e[1]})
			}
			require.InDelta(t, want, r.CoeffAt(flat), 1e-9, "exponents %v", e)
		}
	})

	for _, tp := range testParams {

		t.Run(testString("Evaluate/Big", tp.dim, tp.degree), func(t *testing.T) {
			p := newRandom(t, prng, tp.dim, tp.degree)
			x := randomPoint(t, prng, tp.dim)
			want, _ := EvaluateBig(p, 256, x...).Float64()
			require.InDelta(t, want, Evaluate(p, x...), 1e-12)
		})

		t.Run(testString("Add/Additivity", tp.dim, tp.degree), func(t *testing.T) {
			a := newRandom(t, prng, tp.dim, tp.degree)
			b := newRandom(t, prng, tp.dim, tp.degree+1)
			x := randomPoint(t, prng, tp.dim)

			require.InDelta(t, Evaluate(a, x...)+Evaluate(b, x...), Evaluate(Add(a, b), x...), 1e-12)
			require.InDelta(t, Evaluate(a, x...)-Evaluate(b, x...), Evaluate(Sub(a, b), x...), 1e-12)
			require.InDelta(t, -Evaluate(a, x...), Evaluate(Neg(a), x...), 1e-12)
			require.InDelta(t, Evaluate(a, x...)+3, Evaluate(AddScalar(a, 3), x...), 1e-12)
			require.InDelta(t, 2.5*Evaluate(a, x...), Evaluate(MulScalar(a, 2.5), x...), 1e-12)
			require.Equal(t, tp.degree+1, Add(a, b).Degree())
		})

		t.Run(testString("Add/OperandsUnchanged", tp.dim, tp.degree), func(t *testing.T) {
			a := newRandom(t, prng, tp.dim, tp.degree)
			b := newRandom(t, prng, tp.dim, tp.degree)
			aCpy, bCpy := a.CopyNew(), b.CopyNew()
			Add(a, b)
			Mul(a, b)
			require.True(t, a.Equal(aCpy))
			require.True(t, b.Equal(bCpy))
		})

		t.Run(testString("LiftDegree&Prune", tp.dim, tp.degree), func(t *testing.T) {
			p := newRandom(t, prng, tp.dim, tp.degree)
			x := randomPoint(t, prng, tp.dim)

			l, err := LiftDegree(p, tp.degree+2)
			require.NoError(t, err)
			require.Equal(t, tp.degree+2, l.Degree())
			require.InDelta(t, Evaluate(p, x...), Evaluate(l, x...), 1e-12)

			r, err := Prune(l, tp.degree)
			require.NoError(t, err)
			require.True(t, p.Equal(r))

			_, err = LiftDegree(p, tp.degree-1)
			require.True(t, errors.Is(err, ErrDegreeTooSmall))

			_, err = Prune(p, tp.degree+1)
			require.True(t, errors.Is(err, ErrDegreeTooLarge))
		})

		t.Run(testString("Mul/FFTvsDirect", tp.dim, tp.degree), func(t *testing.T) {
			a := newRandom(t, prng, tp.dim, tp.degree)
			b := newRandom(t, prng, tp.dim, tp.degree+1)
			x := randomPoint(t, prng, tp.dim)

			direct := MulWithMethod(a, b, Direct)
			fft := MulWithMethod(a, b, FFT)

			require.Equal(t, 2*tp.degree+1, direct.Degree())
			requireCoeffsInDelta(t, direct.Coefficients(), fft.Coefficients(), 1e-9)
			require.InDelta(t, Evaluate(a, x...)*Evaluate(b, x...), Evaluate(direct, x...), 1e-10)
		})

		t.Run(testString("Pow", tp.dim, tp.degree), func(t *testing.T) {
			p := newRandom(t, prng, tp.dim, tp.degree)
			x := randomPoint(t, prng, tp.dim)

			want := Mul(Mul(p, p), p)
			have := Pow(p, 3)

			require.Equal(t, 3*tp.degree, have.Degree())
			requireCoeffsInDelta(t, want.Coefficients(), have.Coefficients(), 1e-9)
			require.InDelta(t, math.Pow(Evaluate(p, x...), 3), Evaluate(have, x...), 1e-9)
			requireCoeffsInDelta(t, want.Coefficients(), powFFT(p, 3).Coefficients(), 1e-9)
		})

		t.Run(testString("Derivative", tp.dim, tp.degree), func(t *testing.T) {
			p := newRandom(t, prng, tp.dim, tp.degree)
			x := randomPoint(t, prng, tp.dim)

			// central finite difference along the last axis
			h := 1e-5
			xp := append([]float64{}, x...)
			xm := append([]float64{}, x...)
			xp[tp.dim-1] += h
			xm[tp.dim-1] -= h
			fd := (Evaluate(p, xp...) - Evaluate(p, xm...)) / (2 * h)

			require.InDelta(t, fd, Evaluate(Derivative(p, tp.dim-1), x...), 1e-6)
		})

		t.Run(testString("Transform/Identity", tp.dim, tp.degree), func(t *testing.T) {
			p := newRandom(t, prng, tp.dim, tp.degree)

			n := p.Len()
			id := mat.NewDiagDense(n, nil)
			for i := 0; i < n; i++ {
				id.SetDiag(i, 1)
			}

			b, err := Transform[Power, Bernstein](p, id)
			require.NoError(t, err)
			require.Equal(t, p.Coefficients(), b.Coefficients())

			_, err = Transform[Power, Bernstein](p, mat.NewDense(2, n+1, nil))
			require.True(t, errors.Is(err, ErrDimensionMismatch))

			if tp.dim > 1 {
				_, err = Transform[Power, Bernstein](p, mat.NewDense(2, n, nil))
				require.True(t, errors.Is(err, ErrDimensionMismatch))
			}
		})

		t.Run(testString("Serialization", tp.dim, tp.degree), func(t *testing.T) {
			p := newRandom(t, prng, tp.dim, tp.degree)

			data, err := p.MarshalBinary()
			require.NoError(t, err)
			require.Len(t, data, p.BinarySize())

			q := new(Polynomial[Power])
			require.NoError(t, q.UnmarshalBinary(data))
			require.True(t, p.Equal(q))
			require.Equal(t, p.Digest(), q.Digest())

			var bb bytes.Buffer
			n, err := p.WriteTo(&bb)
			require.NoError(t, err)
			require.Equal(t, int64(p.BinarySize()), n)

			b := new(Polynomial[Bernstein])
			_, err = b.ReadFrom(&bb)
			require.True(t, errors.Is(err, ErrBasisMismatch))
		})
	}

	t.Run("Serialization/Malformed", func(t *testing.T) {
		data, err := NewPower(1, 2).MarshalBinary()
		require.NoError(t, err)

		// dim=2 with 3 coefficients is not a valid shape
		data[1] = 2

		q := NewPower(2, 1)
		q.SetCoeff(5, 1, 1)
		want := q.CopyNew()

		require.True(t, errors.Is(q.UnmarshalBinary(data), ErrDimensionMismatch))
		require.Equal(t, 2, q.Dim())
		require.Equal(t, 1, q.Degree())
		require.Equal(t, 4, q.Len())
		require.True(t, want.Equal(q))
		require.Equal(t, 5.0, q.Coeff(1, 1))

		require.Error(t, q.UnmarshalBinary(data[:10]))
		require.True(t, want.Equal(q))
	})

	t.Run("EvaluateBernstein/PartitionOfUnity", func(t *testing.T) {
		b := NewBernstein(2, 4)
		for i := range b.Coefficients() {
			b.SetCoeffAt(i, 1)
		}
		require.InDelta(t, 1.0, EvaluateBernstein(b, 0.3, 0.8), 1e-14)
	})

	t.Run("EvaluateBernstein/Corners", func(t *testing.T) {
		b := NewBernstein(2, 2)
		b.SetCoeff(5, 2, 0)
		b.SetCoeff(-3, 0, 2)
		require.Equal(t, 5.0, EvaluateBernstein(b, 1, 0))
		require.Equal(t, -3.0, EvaluateBernstein(b, 0, 1))
		require.Equal(t, 0.0, EvaluateBernstein(b, 0, 0))
	})

	t.Run("Digest", func(t *testing.T) {
		p := newRandom(t, prng, 2, 2)
		q := p.CopyNew()
		require.Equal(t, p.Digest(), q.Digest())
		q.SetCoeffAt(0, q.CoeffAt(0)+1)
		require.NotEqual(t, p.Digest(), q.Digest())
	})

	t.Run("String", func(t *testing.T) {
		p := NewPower(2, 2)
		p.SetCoeff(1, 0, 0)
		p.SetCoeff(-2, 1, 0)
		p.SetCoeff(0.5, 2, 1)
		p.SetCoeff(1e-15, 1, 1)
		require.Equal(t, "1 - 2*x0 + 0.5*x0^2*x1", p.String())
		require.Equal(t, "0", NewPower(1, 2).String())

		b := NewBernstein(1, 1)
		b.SetCoeff(3, 1)
		require.Equal(t, "3*B(1)", b.String())
	})
}
