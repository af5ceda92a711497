// Package bignum implements arbitrary precision arithmetic helpers used as
// a reference for the float64 computations of the library.
package bignum

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// NewFloat creates a new big.Float element with "prec" bits of precision.
// Valide types for x are: int, int64, uint, uint64, float64, *big.Int or *big.Float.
func NewFloat(x interface{}, prec uint) (y *big.Float) {

	y = new(big.Float)
	y.SetPrec(prec) // decimal precision

	if x == nil {
		return
	}

	switch x := x.(type) {
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case float64:
		y.SetFloat64(x)
	case *big.Int:
		y.SetInt(x)
	case *big.Float:
		y.Set(x)
	default:
		panic(fmt.Errorf("invalid x.(type): valide types are int, int64, uint, uint64, float64, *big.Int or *big.Float but is %T", x))
	}

	return
}

// Log return ln(x) with the precision of x.
func Log(x *big.Float) (ln *big.Float) {
	return bigfloat.Log(x)
}

// Exp returns exp(x) with the precision of x.
func Exp(x *big.Float) (exp *big.Float) {
	return bigfloat.Exp(x)
}

// Pow returns x^y with the precision of x.
// Negative bases are accepted when y is an integer.
func Pow(x, y *big.Float) (pow *big.Float) {

	prec := x.Prec()

	if y.Sign() == 0 {
		return NewFloat(1, prec)
	}

	if x.Sign() == 0 {
		if y.Sign() < 0 {
			panic(fmt.Errorf("cannot Pow: division by zero"))
		}
		return NewFloat(0, prec)
	}

	if x.Sign() > 0 {
		return bigfloat.Pow(x, y)
	}

	if !y.IsInt() {
		panic(fmt.Errorf("cannot Pow: negative base with non-integer exponent"))
	}

	pow = bigfloat.Pow(new(big.Float).Neg(x), y)

	// (-|x|)^y = -(|x|^y) for odd y
	yInt, _ := y.Int(nil)
	if yInt.Bit(0) == 1 {
		pow.Neg(pow)
	}

	return
}
