package multiindex

import (
	"fmt"

	"github.com/tuneinsight/berry/utils"
)

// Incrementer is an enumeration strategy over tuples of non-negative integers.
// It owns the traversal state, while the tuple itself is stored by the [MultiIndex].
type Incrementer interface {
	// Init sets idx to the first (or last) tuple of the enumeration and resets
	// the internal state accordingly. It returns false if the enumeration is empty.
	Init(idx []int, first bool) (nonEmpty bool)

	// Increment moves idx to the next tuple. If idx is already the last tuple,
	// idx is left unchanged and false is returned.
	Increment(idx []int) bool

	// Decrement moves idx to the previous tuple. If idx is already the first tuple,
	// idx is left unchanged and false is returned.
	Decrement(idx []int) bool

	// Bound returns the exclusive upper bound of the d-th component.
	Bound(d int) int

	// Clone returns a deep copy of the incrementer.
	Clone() Incrementer
}

// Wrapper is implemented by incrementers that keep track of the flattened
// index (axis 0 varies fastest) of the current tuple.
type Wrapper interface {
	FlatIndex() int
}

// Exhaustive enumerates every tuple whose components are all smaller than N
// (L-infinity ball), in odometer order.
type Exhaustive struct {
	N int
}

// Init implements [Incrementer].
func (inc *Exhaustive) Init(idx []int, first bool) bool {
	if inc.N <= 0 {
		utils.Fill(idx, 0)
		return false
	}
	if first {
		utils.Fill(idx, 0)
	} else {
		utils.Fill(idx, inc.N-1)
	}
	return true
}

// Increment implements [Incrementer].
func (inc *Exhaustive) Increment(idx []int) bool {
	return odometerIncrement(idx, inc.Bound) >= 0
}

// Decrement implements [Incrementer].
func (inc *Exhaustive) Decrement(idx []int) bool {
	return odometerDecrement(idx, inc.Bound) >= 0
}

// Bound implements [Incrementer].
func (inc *Exhaustive) Bound(d int) int {
	return inc.N
}

// Clone implements [Incrementer].
func (inc *Exhaustive) Clone() Incrementer {
	return &Exhaustive{N: inc.N}
}

// ExhaustiveWrap is an [Exhaustive] incrementer that also keeps track of the flattened
// index of the current tuple in O(1) per step.
type ExhaustiveWrap struct {
	N    int
	flat int
	size int
}

// Init implements [Incrementer].
func (inc *ExhaustiveWrap) Init(idx []int, first bool) bool {
	inc.size = len(idx)
	inc.flat = 0
	if inc.N <= 0 {
		utils.Fill(idx, 0)
		return false
	}
	if first {
		utils.Fill(idx, 0)
	} else {
		utils.Fill(idx, inc.N-1)
		inc.flat = utils.IntPow(inc.N, inc.size) - 1
	}
	return true
}

// Increment implements [Incrementer].
func (inc *ExhaustiveWrap) Increment(idx []int) bool {
	if odometerIncrement(idx, inc.Bound) < 0 {
		return false
	}
	inc.flat++
	return true
}

// Decrement implements [Incrementer].
func (inc *ExhaustiveWrap) Decrement(idx []int) bool {
	if odometerDecrement(idx, inc.Bound) < 0 {
		return false
	}
	inc.flat--
	return true
}

// Bound implements [Incrementer].
func (inc *ExhaustiveWrap) Bound(d int) int {
	return inc.N
}

// FlatIndex implements [Wrapper].
func (inc *ExhaustiveWrap) FlatIndex() int {
	return inc.flat
}

// Clone implements [Incrementer].
func (inc *ExhaustiveWrap) Clone() Incrementer {
	c := *inc
	return &c
}

// BoundedWrap enumerates every tuple whose d-th component is smaller than Bounds[d],
// in odometer order. The flattened index is the one of the tuple inside the enclosing
// uniform grid of extent Extent along every axis (Bounds[d] <= Extent), so that the
// enumerated sub-grid can address cells of a larger tensor directly.
type BoundedWrap struct {
	Bounds []int
	Extent int

	// carry[i] is the change of the flattened index when component i
	// overflows into component i+1: Extent^i * (Extent - Bounds[i]).
	carry []int
	flat  int
}

// NewBoundedWrapIncrementer returns a [BoundedWrap] incrementer over the given bounds,
// embedded in a uniform grid of the given extent.
func NewBoundedWrapIncrementer(bounds []int, extent int) *BoundedWrap {
	inc := &BoundedWrap{Extent: extent}
	inc.Reset(bounds)
	return inc
}

// Reset re-targets the incrementer on new bounds without reallocating.
// The bounds are copied.
func (inc *BoundedWrap) Reset(bounds []int) {

	if cap(inc.Bounds) < len(bounds) {
		inc.Bounds = make([]int, len(bounds))
		inc.carry = make([]int, len(bounds))
	}

	inc.Bounds = inc.Bounds[:len(bounds)]
	inc.carry = inc.carry[:len(bounds)]

	stride := 1
	for i, b := range bounds {
		if b > inc.Extent {
			panic(fmt.Errorf("cannot Reset: bound %d of axis %d is larger than the extent %d", b, i, inc.Extent))
		}
		inc.Bounds[i] = b
		inc.carry[i] = stride * (inc.Extent - b)
		stride *= inc.Extent
	}
}

// Init implements [Incrementer].
func (inc *BoundedWrap) Init(idx []int, first bool) bool {

	if len(idx) != len(inc.Bounds) {
		panic(fmt.Errorf("cannot Init: tuple size %d does not match the number of bounds %d", len(idx), len(inc.Bounds)))
	}

	inc.flat = 0

	for _, b := range inc.Bounds {
		if b <= 0 {
			utils.Fill(idx, 0)
			return false
		}
	}

	if first {
		utils.Fill(idx, 0)
		return true
	}

	stride := 1
	for i, b := range inc.Bounds {
		idx[i] = b - 1
		inc.flat += stride * (b - 1)
		stride *= inc.Extent
	}

	return true
}

// Increment implements [Incrementer].
func (inc *BoundedWrap) Increment(idx []int) bool {
	d := odometerIncrement(idx, inc.Bound)
	if d < 0 {
		return false
	}
	// Components below d wrapped around to zero, component d was incremented.
	inc.flat++
	for i := 0; i < d; i++ {
		inc.flat += inc.carry[i]
	}
	return true
}

// Decrement implements [Incrementer].
func (inc *BoundedWrap) Decrement(idx []int) bool {
	d := odometerDecrement(idx, inc.Bound)
	if d < 0 {
		return false
	}
	inc.flat--
	for i := 0; i < d; i++ {
		inc.flat -= inc.carry[i]
	}
	return true
}

// Bound implements [Incrementer].
func (inc *BoundedWrap) Bound(d int) int {
	return inc.Bounds[d]
}

// FlatIndex implements [Wrapper].
func (inc *BoundedWrap) FlatIndex() int {
	return inc.flat
}

// Clone implements [Incrementer].
func (inc *BoundedWrap) Clone() Incrementer {
	c := &BoundedWrap{
		Bounds: make([]int, len(inc.Bounds)),
		Extent: inc.Extent,
		carry:  make([]int, len(inc.carry)),
		flat:   inc.flat,
	}
	copy(c.Bounds, inc.Bounds)
	copy(c.carry, inc.carry)
	return c
}

// odometerIncrement adds one to idx in mixed radix (axis 0 least significant).
// It returns the axis that received the carry, or -1 if idx was the last tuple,
// in which case idx is left unchanged.
func odometerIncrement(idx []int, bound func(d int) int) int {
	for d := range idx {
		if idx[d]+1 < bound(d) {
			idx[d]++
			for i := 0; i < d; i++ {
				idx[i] = 0
			}
			return d
		}
	}
	return -1
}

// odometerDecrement subtracts one from idx in mixed radix (axis 0 least significant).
// It returns the axis that was borrowed from, or -1 if idx was the first tuple,
// in which case idx is left unchanged.
func odometerDecrement(idx []int, bound func(d int) int) int {
	for d := range idx {
		if idx[d] > 0 {
			idx[d]--
			for i := 0; i < d; i++ {
				idx[i] = bound(i) - 1
			}
			return d
		}
	}
	return -1
}
