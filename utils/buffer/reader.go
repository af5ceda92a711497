package buffer

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// ReadUint8 reads a byte from r and stores the result into *c.
func ReadUint8(r Reader, c *uint8) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint8: c is nil")
	}

	var bb = [1]byte{}

	nint, err := io.ReadFull(r, bb[:])
	if err != nil {
		return int64(nint), err
	}

	*c = bb[0]

	return int64(nint), nil
}

// ReadUint64 reads a uint64 from r and stores the result into *c.
func ReadUint64(r Reader, c *uint64) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb = [8]byte{}

	nint, err := io.ReadFull(r, bb[:])
	if err != nil {
		return int64(nint), err
	}

	*c = binary.LittleEndian.Uint64(bb[:])

	return int64(nint), nil
}

// ReadInt reads an int written by WriteInt and stores the result into *c.
func ReadInt(r Reader, c *int) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadInt: c is nil")
	}

	var v uint64
	if n, err = ReadUint64(r, &v); err != nil {
		return
	}

	if v > math.MaxInt {
		return n, fmt.Errorf("cannot ReadInt: value %d overflows int", v)
	}

	*c = int(v)

	return
}

// ReadUint64Slice reads a slice of uint64 from r and stores the result into c.
func ReadUint64Slice(r Reader, c []uint64) (n int64, err error) {
	return readSlice8(r, len(c), func(i int, v uint64) { c[i] = v })
}

// ReadFloat64Slice reads a slice of float64 written by WriteFloat64Slice
// from r and stores the result into c.
func ReadFloat64Slice(r Reader, c []float64) (n int64, err error) {
	return readSlice8(r, len(c), func(i int, v uint64) { c[i] = math.Float64frombits(v) })
}

// readSlice8 reads N 8-byte words from r, peeking at the internal buffer
// of r and discarding what was decoded.
func readSlice8(r Reader, N int, set func(i int, v uint64)) (n int64, err error) {

	for start := 0; start < N; {

		size := (N - start) << 3
		if s := r.Size(); s < size {
			size = s
		}

		// Only decode full words
		size &^= 7

		if size == 0 {
			// Less than one word is buffered, falls back on a plain read.
			var v uint64
			var inc int64
			if inc, err = ReadUint64(r, &v); err != nil {
				return n + inc, err
			}
			set(start, v)
			n += inc
			start++
			continue
		}

		var slice []byte
		if slice, err = r.Peek(size); err != nil {
			return
		}

		words := len(slice) >> 3
		for i, j := 0, 0; i < words; i, j = i+1, j+8 {
			set(start+i, binary.LittleEndian.Uint64(slice[j:]))
		}

		var inc int
		if inc, err = r.Discard(words << 3); err != nil {
			return n + int64(inc), err
		}

		n += int64(inc)
		start += words
	}

	return
}
