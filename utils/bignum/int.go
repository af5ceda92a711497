package bignum

import (
	"fmt"
	"math/big"
)

// BinomialInt returns the exact binomial coefficient (n k).
func BinomialInt(n, k int) *big.Int {
	if k < 0 || k > n {
		panic(fmt.Errorf("cannot BinomialInt: k=%d must be in [0, n=%d]", k, n))
	}
	return new(big.Int).Binomial(int64(n), int64(k))
}

// Binomial returns the binomial coefficient (n k) as a big.Float with prec bits of precision.
func Binomial(n, k int, prec uint) *big.Float {
	return NewFloat(BinomialInt(n, k), prec)
}

// Factorial returns the exact value of n!.
func Factorial(n int) *big.Int {
	if n < 0 {
		panic(fmt.Errorf("cannot Factorial: n=%d is negative", n))
	}
	return new(big.Int).MulRange(1, int64(n))
}
