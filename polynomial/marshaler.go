package polynomial

import (
	"bufio"
	"fmt"
	"io"

	"github.com/tuneinsight/berry/utils"
	"github.com/tuneinsight/berry/utils/buffer"
	"github.com/tuneinsight/berry/utils/structs"
)

// BinarySize returns the serialized size of the object in bytes.
func (p *Polynomial[B]) BinarySize() int {
	return 1 + 8 + 8 + p.coeffs.BinarySize()
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
//
// Unless w implements the buffer.Writer interface (see berry/utils/buffer/buffer.go),
// it will be wrapped into a bufio.Writer. Since this requires allocations, it
// is preferable to pass a buffer.Writer directly.
func (p *Polynomial[B]) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64

		if inc, err = buffer.WriteUint8(w, p.Basis().tag()); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteUint8: %w", err)
		}

		n += inc

		if inc, err = buffer.WriteInt(w, p.dim); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteInt: %w", err)
		}

		n += inc

		if inc, err = buffer.WriteInt(w, p.size); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteInt: %w", err)
		}

		n += inc

		if inc, err = p.coeffs.WriteTo(w); err != nil {
			return n + inc, fmt.Errorf("structs.Vector[float64].WriteTo: %w", err)
		}

		n += inc

		return n, w.Flush()

	default:
		return p.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface.
//
// Unless r implements the buffer.Reader interface (see berry/utils/buffer/buffer.go),
// it will be wrapped into a bufio.Reader. Since this requires allocation, it
// is preferable to pass a buffer.Reader directly.
func (p *Polynomial[B]) ReadFrom(r io.Reader) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var inc int64

		var tag uint8
		if inc, err = buffer.ReadUint8(r, &tag); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadUint8: %w", err)
		}

		n += inc

		if basis := p.Basis(); tag != basis.tag() {
			return n, fmt.Errorf("cannot ReadFrom: encoded basis tag %d is not %s: %w", tag, basis, ErrBasisMismatch)
		}

		var dim, size int

		if inc, err = buffer.ReadInt(r, &dim); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadInt: %w", err)
		}

		n += inc

		if inc, err = buffer.ReadInt(r, &size); err != nil {
			return n + inc, fmt.Errorf("buffer.ReadInt: %w", err)
		}

		n += inc

		var coeffs structs.Vector[float64]
		if inc, err = coeffs.ReadFrom(r); err != nil {
			return n + inc, fmt.Errorf("structs.Vector[float64].ReadFrom: %w", err)
		}

		n += inc

		// p is left untouched unless the encoding is consistent
		if dim < 1 || size < 1 || len(coeffs) != utils.IntPow(size, dim) {
			return n, fmt.Errorf("cannot ReadFrom: %d coefficients for dim=%d and degree=%d: %w", len(coeffs), dim, size-1, ErrDimensionMismatch)
		}

		p.dim = dim
		p.size = size
		p.coeffs = coeffs

		return n, nil

	default:
		return p.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (p *Polynomial[B]) MarshalBinary() (data []byte, err error) {
	buf := buffer.NewBufferSize(p.BinarySize())
	_, err = p.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (p *Polynomial[B]) UnmarshalBinary(data []byte) (err error) {
	_, err = p.ReadFrom(buffer.NewBuffer(data))
	return
}
