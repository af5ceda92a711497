// Package utils implements various helper functions.
package utils

import (
	"golang.org/x/exp/constraints"
)

// Number is the set of integer and floating point types.
type Number interface {
	constraints.Integer | constraints.Float
}

// Min returns the minimum of a and b.
func Min[V constraints.Ordered](a, b V) (r V) {
	if a <= b {
		return a
	}
	return b
}

// Max returns the maximum of a and b.
func Max[V constraints.Ordered](a, b V) (r V) {
	if a >= b {
		return a
	}
	return b
}

// MinSlice returns the minimum value of the input slice and its position.
// Ties are resolved in favor of the smallest position.
func MinSlice[V constraints.Ordered](slice []V) (min V, pos int) {
	if len(slice) == 0 {
		panic("cannot MinSlice: slice is empty")
	}
	min = slice[0]
	for i := range slice[1:] {
		if slice[i+1] < min {
			min, pos = slice[i+1], i+1
		}
	}
	return
}

// MaxSlice returns the maximum value of the input slice and its position.
// Ties are resolved in favor of the smallest position.
func MaxSlice[V constraints.Ordered](slice []V) (max V, pos int) {
	if len(slice) == 0 {
		panic("cannot MaxSlice: slice is empty")
	}
	max = slice[0]
	for i := range slice[1:] {
		if slice[i+1] > max {
			max, pos = slice[i+1], i+1
		}
	}
	return
}

// Sum returns the sum of the elements of the slice.
func Sum[V Number](slice []V) (sum V) {
	for _, v := range slice {
		sum += v
	}
	return
}

// Product returns the product of the elements of the slice.
// The product of an empty slice is 1.
func Product[V Number](slice []V) (prod V) {
	prod = 1
	for _, v := range slice {
		prod *= v
	}
	return
}
