package wire

import (
	"fmt"
	"unicode/utf8"
)

// PutBytes writes the unsigned varint32 length of v followed by v itself.
func PutBytes(dst []byte, v []byte) (int, error) {
	n, err := PutUvarint32(dst, uint32(len(v)))
	if err != nil {
		return -1, err
	}
	if len(dst)-n < len(v) {
		return -1, ErrShortBuffer
	}
	copy(dst[n:], v)
	return n + len(v), nil
}

// Bytes reads a length-prefixed byte string from src.
func Bytes(src []byte) ([]byte, int, error) {
	length, n, err := Uvarint32(src)
	if err != nil {
		return nil, 0, err
	}
	end := n + int(length)
	if end < n || end > len(src) {
		return nil, 0, fmt.Errorf("%w: bytes length %d exceeds remaining buffer", ErrTruncated, length)
	}
	out := make([]byte, length)
	copy(out, src[n:end])
	return out, end, nil
}

// PutString writes the unsigned varint32 length of v (in bytes) followed
// by its UTF-8 encoding.
func PutString(dst []byte, v string) (int, error) {
	return PutBytes(dst, []byte(v))
}

// String reads a length-prefixed UTF-8 string from src, rejecting invalid
// encodings.
func String(src []byte) (string, int, error) {
	b, n, err := Bytes(src)
	if err != nil {
		return "", 0, err
	}
	if !utf8.Valid(b) {
		return "", 0, ErrInvalidUTF8
	}
	return string(b), n, nil
}
