package buffer

import (
	"encoding/binary"
	"fmt"
	"math"
)

// WriteUint8 writes a byte c to w.
func WriteUint8(w Writer, c uint8) (n int64, err error) {

	if w.Available() == 0 {
		if err = w.Flush(); err != nil {
			return
		}

		if w.Available() == 0 {
			return 0, fmt.Errorf("cannot WriteUint8: available buffer is zero even after flush")
		}
	}

	nint, err := w.Write(append(w.AvailableBuffer(), c))

	return int64(nint), err
}

// WriteUint64 writes a uint64 c into w.
func WriteUint64(w Writer, c uint64) (n int64, err error) {

	if w.Available()>>3 == 0 {
		if err = w.Flush(); err != nil {
			return
		}

		if w.Available()>>3 == 0 {
			return 0, fmt.Errorf("cannot WriteUint64: available buffer/8 is zero even after flush")
		}
	}

	buf := w.AvailableBuffer()[:8]

	binary.LittleEndian.PutUint64(buf, c)

	nint, err := w.Write(buf)

	return int64(nint), err
}

// WriteInt writes an int c into w as a uint64.
func WriteInt(w Writer, c int) (n int64, err error) {
	if c < 0 {
		return 0, fmt.Errorf("cannot WriteInt: negative value %d", c)
	}
	return WriteUint64(w, uint64(c))
}

// WriteUint64Slice writes a slice of uint64 into w.
func WriteUint64Slice(w Writer, c []uint64) (n int64, err error) {
	return writeSlice8(w, len(c), func(i int) uint64 { return c[i] })
}

// WriteFloat64Slice writes a slice of float64 into w, each value
// encoded as its IEEE 754 binary representation.
func WriteFloat64Slice(w Writer, c []float64) (n int64, err error) {
	return writeSlice8(w, len(c), func(i int) uint64 { return math.Float64bits(c[i]) })
}

// writeSlice8 writes N 8-byte words given by get into w, filling the
// available buffer and flushing as many times as needed.
func writeSlice8(w Writer, N int, get func(i int) uint64) (n int64, err error) {

	for start := 0; start < N; {

		// Remaining available space in the internal buffer
		available := w.Available() >> 3

		if available == 0 {
			if err = w.Flush(); err != nil {
				return
			}

			if available = w.Available() >> 3; available == 0 {
				return n, fmt.Errorf("cannot writeSlice8: available buffer/8 is zero even after flush")
			}
		}

		end := start + available
		if end > N {
			end = N
		}

		buf := w.AvailableBuffer()[:(end-start)<<3]
		for i, j := start, 0; i < end; i, j = i+1, j+8 {
			binary.LittleEndian.PutUint64(buf[j:], get(i))
		}

		var inc int
		if inc, err = w.Write(buf); err != nil {
			return n + int64(inc), err
		}

		n += int64(inc)
		start = end
	}

	return
}
