package wire

import "fmt"

// maxUvarintBytes bounds unsigned varint decoding at 10 bytes, the widest
// LEB128 encoding of a 64-bit accumulator (10 groups of 7 bits = 70 bits
// of headroom for a 64-bit value).
const maxUvarintBytes = 10

// maxVarint32Bytes bounds signed 32-bit varint decoding at 5 bytes, the
// natural width of a sign-extended 32-bit value. The reference decoder
// this format was ported from accepts arbitrarily long encodings as long
// as each successive byte is zero (or 0x7f, for a negative value); this
// implementation instead rejects encodings wider than 5 bytes, per the
// recommendation for a from-scratch implementation to be strict here.
const maxVarint32Bytes = 5

// PutUvarint encodes v as an unsigned LEB128 varint into dst, low group
// first, each byte carrying 7 value bits with the continuation bit (0x80)
// set on every byte but the last. It returns the number of bytes written,
// or -1 with [ErrShortBuffer] if dst is too small.
//
// The wire format only ever carries 32-bit counts and discriminants, but
// the LEB128 routine itself is width-agnostic; [PutUvarint32] is the
// 32-bit-domain entry point callers outside this package should use.
func PutUvarint(dst []byte, v uint64) (int, error) {
	x := v
	n := 0
	for x >= 0x80 {
		if n >= len(dst) {
			return -1, ErrShortBuffer
		}
		dst[n] = byte(x) | 0x80
		x >>= 7
		n++
	}
	if n >= len(dst) {
		return -1, ErrShortBuffer
	}
	dst[n] = byte(x)
	return n + 1, nil
}

// SizeUvarint returns the number of bytes [PutUvarint] would write for v.
func SizeUvarint(v uint64) int {
	n := 1
	for x := v; x >= 0x80; x >>= 7 {
		n++
	}
	return n
}

// Uvarint decodes an unsigned LEB128 varint from the start of src. It
// returns the decoded value and the number of bytes consumed. Decoding
// accepts at most [maxUvarintBytes] bytes; a value that does not fit in
// 64 bits, or a buffer that runs out before a terminating byte, is an error.
func Uvarint(src []byte) (uint64, int, error) {
	var result uint64
	var shift uint
	for i := 0; i < maxUvarintBytes; i++ {
		if i >= len(src) {
			return 0, 0, fmt.Errorf("%w: uvarint", ErrTruncated)
		}
		b := src[i]
		if i == maxUvarintBytes-1 && b > 1 {
			return 0, 0, fmt.Errorf("%w: uvarint exceeds 64 bits", ErrVarintOverflow)
		}
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, i + 1, nil
		}
		shift += 7
	}
	return 0, 0, fmt.Errorf("%w: uvarint exceeds %d bytes", ErrVarintOverflow, maxUvarintBytes)
}

// PutUvarint32 encodes v, the 32-bit element count or variant discriminant
// form used on the wire, as an unsigned LEB128 varint.
func PutUvarint32(dst []byte, v uint32) (int, error) {
	return PutUvarint(dst, uint64(v))
}

// SizeUvarint32 returns the number of bytes [PutUvarint32] would write for v.
func SizeUvarint32(v uint32) int {
	return SizeUvarint(uint64(v))
}

// Uvarint32 decodes an unsigned LEB128 varint and truncates it to 32 bits.
// Values are only ever encoded in the 32-bit domain by this codec, so
// truncation is lossless for any buffer this package itself produced.
func Uvarint32(src []byte) (uint32, int, error) {
	v, n, err := Uvarint(src)
	if err != nil {
		return 0, 0, err
	}
	return uint32(v), n, nil
}

// PutVarint32 encodes v as a signed LEB128 varint into dst, sign-extending
// through the unused high bits of the final group so that decode can
// recover the sign from bit 6 of the terminal byte.
func PutVarint32(dst []byte, v int32) (int, error) {
	x := int64(v)
	n := 0
	for {
		b := byte(x & 0x7f)
		x >>= 7
		// Done once the remaining bits are a sign-extension of bit 6 of b.
		done := (x == 0 && b&0x40 == 0) || (x == -1 && b&0x40 != 0)
		if n >= len(dst) {
			return -1, ErrShortBuffer
		}
		if !done {
			dst[n] = b | 0x80
			n++
			continue
		}
		dst[n] = b
		return n + 1, nil
	}
}

// SizeVarint32 returns the number of bytes [PutVarint32] would write for v.
func SizeVarint32(v int32) int {
	x := int64(v)
	n := 0
	for {
		b := byte(x & 0x7f)
		x >>= 7
		n++
		if (x == 0 && b&0x40 == 0) || (x == -1 && b&0x40 != 0) {
			return n
		}
	}
}

// Varint32 decodes a signed LEB128 varint from the start of src, sign
// extended from bit 6 of the terminal byte. It rejects encodings longer
// than [maxVarint32Bytes] bytes, the natural width for a 32-bit value.
func Varint32(src []byte) (int32, int, error) {
	var result int64
	var shift uint
	for i := 0; i < maxVarint32Bytes; i++ {
		if i >= len(src) {
			return 0, 0, fmt.Errorf("%w: varint", ErrTruncated)
		}
		b := src[i]
		result |= int64(b&0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			if shift < 64 && b&0x40 != 0 {
				result |= -1 << shift
			}
			return int32(result), i + 1, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: varint32 exceeds %d bytes", ErrVarintOverflow, maxVarint32Bytes)
}
