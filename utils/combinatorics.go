package utils

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Factorial returns n! as a float64.
func Factorial(n int) (val float64) {
	if n < 0 {
		panic(fmt.Errorf("cannot Factorial: n=%d is negative", n))
	}
	val = 1
	for i := 2; i <= n; i++ {
		val *= float64(i)
	}
	return
}

// Binomial returns the binomial coefficient (n k) as a float64.
// The value is accumulated as (n k) = (n k-1) * (n-k+1) / k, each step being
// an exact integer as long as the intermediate product fits on 53 bits.
func Binomial(n, k int) (val float64) {
	if k < 0 || k > n {
		panic(fmt.Errorf("cannot Binomial: k=%d must be in [0, n=%d]", k, n))
	}

	if k > n-k {
		k = n - k
	}

	val = 1
	for i := 1; i <= k; i++ {
		val = val * float64(n+1-i) / float64(i)
	}
	return
}

// IntPow returns base^exponent for a non-negative exponent.
func IntPow[T constraints.Integer](base, exponent T) (r T) {
	if exponent < 0 {
		panic(fmt.Errorf("cannot IntPow: exponent=%d is negative", exponent))
	}
	r = 1
	for exponent > 0 {
		if exponent&1 == 1 {
			r *= base
		}
		base *= base
		exponent >>= 1
	}
	return
}

// PascalRow returns the n-th row of Pascal's triangle, i.e. the binomial
// coefficients (n 0), (n 1), ..., (n n).
func PascalRow(n int) (row []float64) {
	if n < 0 {
		panic(fmt.Errorf("cannot PascalRow: n=%d is negative", n))
	}
	row = make([]float64, n+1)
	row[0] = 1
	for i := 1; i <= n; i++ {
		for j := i; j > 0; j-- {
			row[j] += row[j-1]
		}
	}
	return
}

// Multinomial returns the multinomial coefficient (k_0 + ... + k_{n-1})! / (k_0! ... k_{n-1}!)
// computed as a product of binomial coefficients over the partial sums of k.
func Multinomial(k []int) (val float64) {
	val = 1
	var partial int
	for _, ki := range k {
		if ki < 0 {
			panic(fmt.Errorf("cannot Multinomial: negative component %d", ki))
		}
		partial += ki
		val *= Binomial(partial, ki)
	}
	return
}
