package structs

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/tuneinsight/berry/utils/buffer"
)

// Vector is a struct wrapping a slice of 8-byte numeric components.
type Vector[T Word] []T

// CopyNew returns a deep copy of the object.
func (v Vector[T]) CopyNew() (vcpy Vector[T]) {
	vcpy = make(Vector[T], len(v))
	copy(vcpy, v)
	return
}

// BinarySize returns the serialized size of the object in bytes.
func (v Vector[T]) BinarySize() (size int) {
	return 8 + len(v)<<3
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
//
// Unless w implements the buffer.Writer interface (see berry/utils/buffer/buffer.go),
// it will be wrapped into a bufio.Writer. Since this requires allocations, it
// is preferable to pass a buffer.Writer directly.
func (v Vector[T]) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = buffer.WriteInt(w, len(v)); err != nil {
			return inc, fmt.Errorf("buffer.WriteInt: %w", err)
		}

		n += inc

		words := make([]uint64, len(v))
		for i := range v {
			words[i] = toWord(v[i])
		}

		if inc, err = buffer.WriteUint64Slice(w, words); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteUint64Slice: %w", err)
		}

		n += inc

		return n, w.Flush()

	default:
		return v.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface.
//
// Unless r implements the buffer.Reader interface (see berry/utils/buffer/buffer.go),
// it will be wrapped into a bufio.Reader.
func (v *Vector[T]) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var inc int64
		var size int

		if inc, err = buffer.ReadInt(r, &size); err != nil {
			return inc, fmt.Errorf("buffer.ReadInt: %w", err)
		}

		n += inc

		words := make([]uint64, size)

		if inc, err = buffer.ReadUint64Slice(r, words); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadUint64Slice: %w", err)
		}

		n += inc

		if cap(*v) < size {
			*v = make(Vector[T], size)
		}

		*v = (*v)[:size]

		for i := range words {
			(*v)[i] = fromWord[T](words[i])
		}

		return n, nil

	default:
		return v.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (v Vector[T]) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(v.BinarySize())
	_, err = v.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (v *Vector[T]) UnmarshalBinary(p []byte) (err error) {
	_, err = v.ReadFrom(buffer.NewBuffer(p))
	return
}

// Equal performs a deep equal on the binary representation of the components,
// so that two NaN with the same payload are equal.
func (v Vector[T]) Equal(other Vector[T]) (isEqual bool) {
	if len(v) != len(other) {
		return false
	}
	for i := range v {
		if toWord(v[i]) != toWord(other[i]) {
			return false
		}
	}
	return true
}

func toWord[T Word](c T) uint64 {
	switch c := any(c).(type) {
	case float64:
		return math.Float64bits(c)
	default:
		return uint64(int64FromAny(c))
	}
}

func fromWord[T Word](w uint64) (c T) {
	switch any(c).(type) {
	case float64:
		return any(math.Float64frombits(w)).(T)
	case uint64:
		return any(w).(T)
	case int64:
		return any(int64(w)).(T)
	case int:
		return any(int(int64(w))).(T)
	default:
		panic(fmt.Errorf("cannot fromWord: unsupported type %T", c))
	}
}

func int64FromAny(c any) int64 {
	switch c := c.(type) {
	case uint64:
		return int64(c)
	case int64:
		return c
	case int:
		return int64(c)
	default:
		panic(fmt.Errorf("cannot toWord: unsupported type %T", c))
	}
}
