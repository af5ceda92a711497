package structs

import "sync"

// BufferPool is an interface for all pools of buffers.
type BufferPool[T any] interface {
	Get() T
	Put(T)
}

// SyncPool is a wrapper around [sync.Pool] (it avoids doing type conversion after Get()).
type SyncPool[T any] struct {
	pool *sync.Pool
}

// NewSyncPool creates a new SyncPool.
// The input function f is the function that is used to create new objects if none is available in the pool.
func NewSyncPool[T any](f func() T) *SyncPool[T] {
	pool := &sync.Pool{
		New: func() any {
			return f()
		},
	}
	return &SyncPool[T]{pool: pool}
}

// Get returns a new object of type T from the pool.
func (spool *SyncPool[T]) Get() T {
	return spool.pool.Get().(T)
}

// Put returns the buff to the pool.
func (spool *SyncPool[T]) Put(buff T) {
	spool.pool.Put(buff)
}

// SlicePool is a pool of scratch slices of variable length.
// It implements the [BufferPool] interface on *[]T so that
// recycling a slice does not allocate.
type SlicePool[T any] struct {
	pool *SyncPool[*[]T]
}

// NewSlicePool returns a new empty SlicePool.
func NewSlicePool[T any]() *SlicePool[T] {
	return &SlicePool[T]{
		pool: NewSyncPool(func() *[]T {
			s := make([]T, 0)
			return &s
		}),
	}
}

// Get returns a zeroed slice of length n.
// The slice must be returned with Put once it is no longer used.
func (sp *SlicePool[T]) Get(n int) *[]T {
	s := sp.pool.Get()
	if cap(*s) < n {
		*s = make([]T, n)
	} else {
		*s = (*s)[:n]
		var zero T
		for i := range *s {
			(*s)[i] = zero
		}
	}
	return s
}

// Put returns s to the pool.
func (sp *SlicePool[T]) Put(s *[]T) {
	sp.pool.Put(s)
}
