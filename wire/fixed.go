package wire

import (
	"encoding/binary"
	"fmt"
	"math"
)

// PutUint8 writes v as a single byte to dst.
func PutUint8(dst []byte, v uint8) (int, error) {
	if len(dst) < 1 {
		return -1, ErrShortBuffer
	}
	dst[0] = v
	return 1, nil
}

// Uint8 reads a single byte from src.
func Uint8(src []byte) (uint8, int, error) {
	if len(src) < 1 {
		return 0, 0, fmt.Errorf("%w: uint8", ErrTruncated)
	}
	return src[0], 1, nil
}

// PutUint16 writes v to dst, little-endian.
func PutUint16(dst []byte, v uint16) (int, error) {
	if len(dst) < 2 {
		return -1, ErrShortBuffer
	}
	binary.LittleEndian.PutUint16(dst, v)
	return 2, nil
}

// Uint16 reads a little-endian uint16 from src.
func Uint16(src []byte) (uint16, int, error) {
	if len(src) < 2 {
		return 0, 0, fmt.Errorf("%w: uint16", ErrTruncated)
	}
	return binary.LittleEndian.Uint16(src), 2, nil
}

// PutUint32 writes v to dst, little-endian.
func PutUint32(dst []byte, v uint32) (int, error) {
	if len(dst) < 4 {
		return -1, ErrShortBuffer
	}
	binary.LittleEndian.PutUint32(dst, v)
	return 4, nil
}

// Uint32 reads a little-endian uint32 from src.
func Uint32(src []byte) (uint32, int, error) {
	if len(src) < 4 {
		return 0, 0, fmt.Errorf("%w: uint32", ErrTruncated)
	}
	return binary.LittleEndian.Uint32(src), 4, nil
}

// PutUint64 writes v to dst, little-endian.
func PutUint64(dst []byte, v uint64) (int, error) {
	if len(dst) < 8 {
		return -1, ErrShortBuffer
	}
	binary.LittleEndian.PutUint64(dst, v)
	return 8, nil
}

// Uint64 reads a little-endian uint64 from src.
func Uint64(src []byte) (uint64, int, error) {
	if len(src) < 8 {
		return 0, 0, fmt.Errorf("%w: uint64", ErrTruncated)
	}
	return binary.LittleEndian.Uint64(src), 8, nil
}

// PutFloat32 writes the raw IEEE-754 bit pattern of v to dst, little-endian.
func PutFloat32(dst []byte, v float32) (int, error) {
	return PutUint32(dst, math.Float32bits(v))
}

// Float32 reads a little-endian IEEE-754 float32 from src.
func Float32(src []byte) (float32, int, error) {
	bits, n, err := Uint32(src)
	if err != nil {
		return 0, 0, err
	}
	return math.Float32frombits(bits), n, nil
}

// PutFloat64 writes the raw IEEE-754 bit pattern of v to dst, little-endian.
func PutFloat64(dst []byte, v float64) (int, error) {
	return PutUint64(dst, math.Float64bits(v))
}

// Float64 reads a little-endian IEEE-754 float64 from src.
func Float64(src []byte) (float64, int, error) {
	bits, n, err := Uint64(src)
	if err != nil {
		return 0, 0, err
	}
	return math.Float64frombits(bits), n, nil
}

// PutRaw copies the fixed-width blob v into dst verbatim (no length
// prefix), used for opaque hash/key/signature primitives.
func PutRaw(dst []byte, v []byte) (int, error) {
	if len(dst) < len(v) {
		return -1, ErrShortBuffer
	}
	copy(dst, v)
	return len(v), nil
}

// Raw reads n raw bytes from src, returning a copy so the result does not
// alias the caller's buffer.
func Raw(src []byte, n int) ([]byte, int, error) {
	if len(src) < n {
		return nil, 0, fmt.Errorf("%w: raw[%d]", ErrTruncated, n)
	}
	out := make([]byte, n)
	copy(out, src[:n])
	return out, n, nil
}
