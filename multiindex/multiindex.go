// Package multiindex implements enumerators over fixed-size tuples of non-negative
// integers. The traversal strategy is pluggable through the [Incrementer] interface
// and the storage of the tuple is either owned by the [MultiIndex] or borrowed from
// a caller-supplied buffer, as decided at compile time by its type parameter.
package multiindex

import (
	"fmt"
)

// Owned tags a [MultiIndex] that allocated its own tuple.
type Owned struct{}

// Borrowed tags a [MultiIndex] that writes into a caller-supplied buffer.
type Borrowed struct{}

// Storage is the type set of the ownership tags.
type Storage interface {
	Owned | Borrowed
}

// MultiIndex is a tuple of non-negative integers that can be stepped forward and
// backward through the enumeration defined by its [Incrementer].
//
// The canonical traversal is
//
//	for m := multiindex.NewExhaustive(size, n, true); !m.Last(); m.Next() {
//		...
//	}
type MultiIndex[S Storage] struct {
	idx   []int
	inc   Incrementer
	first bool
	last  bool
}

// New allocates a new [MultiIndex] of the given size, positioned on the first
// (or last) tuple of the enumeration of inc.
// The method panics if size is zero.
func New(size int, first bool, inc Incrementer) *MultiIndex[Owned] {
	if size <= 0 {
		panic(fmt.Errorf("cannot New: size must be greater than zero but is %d", size))
	}
	m := &MultiIndex[Owned]{idx: make([]int, size), inc: inc}
	m.init(first)
	return m
}

// NewBorrowed returns a new [MultiIndex] whose tuple is stored in buf, positioned on
// the first (or last) tuple of the enumeration of inc. The size of the tuple is len(buf)
// and buf is never reallocated.
// The method panics if buf is empty.
func NewBorrowed(buf []int, first bool, inc Incrementer) *MultiIndex[Borrowed] {
	if len(buf) == 0 {
		panic(fmt.Errorf("cannot NewBorrowed: buffer must not be empty"))
	}
	m := &MultiIndex[Borrowed]{idx: buf, inc: inc}
	m.init(first)
	return m
}

// NewExhaustive returns a [MultiIndex] of the given size enumerating every tuple
// with components smaller than n.
func NewExhaustive(size, n int, first bool) *MultiIndex[Owned] {
	return New(size, first, &Exhaustive{N: n})
}

// NewExhaustiveWrap returns a [MultiIndex] of the given size enumerating every tuple
// with components smaller than n and tracking its flattened index.
func NewExhaustiveWrap(size, n int, first bool) *MultiIndex[Owned] {
	return New(size, first, &ExhaustiveWrap{N: n})
}

// NewFixedNorm returns a [MultiIndex] of the given size enumerating every tuple
// whose components sum to norm.
func NewFixedNorm(size, norm int, first bool) *MultiIndex[Owned] {
	return New(size, first, &FixedNorm{N: norm})
}

// NewBoundedWrap returns a [MultiIndex] enumerating every tuple whose d-th component
// is smaller than bounds[d], tracking its flattened index inside a uniform grid of
// the given extent.
func NewBoundedWrap(bounds []int, extent int, first bool) *MultiIndex[Owned] {
	return New(len(bounds), first, NewBoundedWrapIncrementer(bounds, extent))
}

func (m *MultiIndex[S]) init(first bool) {
	if !m.inc.Init(m.idx, first) {
		m.first, m.last = true, true
		return
	}
	m.first, m.last = first, !first
}

// Reset re-positions the receiver on the first (or last) tuple of its enumeration.
func (m *MultiIndex[S]) Reset(first bool) {
	m.init(first)
}

// Size returns the number of components of the tuple.
func (m *MultiIndex[S]) Size() int {
	return len(m.idx)
}

// Incrementer returns the enumeration strategy of the receiver.
func (m *MultiIndex[S]) Incrementer() Incrementer {
	return m.inc
}

// Next moves to the next tuple and returns true if it exists.
// Otherwise the tuple is left unchanged, [MultiIndex.Last] becomes true
// and false is returned.
func (m *MultiIndex[S]) Next() bool {

	if m.last {
		return false
	}

	if m.inc.Increment(m.idx) {
		m.first = false
		return true
	}

	m.last = true
	return false
}

// Prev moves to the previous tuple and returns true if it exists.
// Otherwise the tuple is left unchanged, [MultiIndex.First] becomes true
// and false is returned.
func (m *MultiIndex[S]) Prev() bool {

	if m.first {
		return false
	}

	if m.inc.Decrement(m.idx) {
		m.last = false
		return true
	}

	m.first = true
	return false
}

// First returns true if the enumeration has been exhausted backward.
func (m *MultiIndex[S]) First() bool {
	return m.first
}

// Last returns true if the enumeration has been exhausted forward.
func (m *MultiIndex[S]) Last() bool {
	return m.last
}

// At returns the d-th component of the tuple.
func (m *MultiIndex[S]) At(d int) int {
	return m.idx[d]
}

// Values returns the tuple. The returned slice aliases the internal storage
// and is modified by subsequent calls to Next and Prev.
func (m *MultiIndex[S]) Values() []int {
	return m.idx
}

// FlatIndex returns the flattened index of the tuple (axis 0 varies fastest).
// If the incrementer does not implement [Wrapper], the index is computed in the
// mixed radix given by the bounds of the incrementer.
func (m *MultiIndex[S]) FlatIndex() int {

	if w, ok := m.inc.(Wrapper); ok {
		return w.FlatIndex()
	}

	flat, stride := 0, 1
	for d, e := range m.idx {
		flat += e * stride
		stride *= m.inc.Bound(d)
	}
	return flat
}

// Copy returns a deep copy of the receiver that owns its tuple.
func (m *MultiIndex[S]) Copy() *MultiIndex[Owned] {
	idx := make([]int, len(m.idx))
	copy(idx, m.idx)
	return &MultiIndex[Owned]{
		idx:   idx,
		inc:   m.inc.Clone(),
		first: m.first,
		last:  m.last,
	}
}

// String returns the tuple formatted as [e0 e1 ...].
func (m *MultiIndex[S]) String() string {
	return fmt.Sprint(m.idx)
}
