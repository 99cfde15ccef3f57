// Package wire implements the binary wire format shared by every emitted
// pack/unpack routine: little-endian fixed-width integers and floats,
// unsigned and signed LEB128 varints, 128-bit integers split into two
// 64-bit halves, and length-prefixed bytes and strings.
//
// Every exported error is a distinct sentinel (wrapped with [fmt.Errorf]
// for context) so callers — in particular the boundary wrapper that
// grows an output buffer on [ErrShortBuffer] — can distinguish failure
// kinds with [errors.Is] rather than matching error strings.
package wire

import "errors"

// ErrTruncated indicates the input buffer ended before a complete value
// (a length prefix, a fixed-width field, or a varint continuation byte)
// could be read.
var ErrTruncated = errors.New("wire: truncated buffer")

// ErrVarintOverflow indicates a varint decoded more bits than fit the
// target width, or did not terminate within the maximum byte count.
var ErrVarintOverflow = errors.New("wire: varint overflow")

// ErrInvalidUTF8 indicates a length-prefixed string was not valid UTF-8.
var ErrInvalidUTF8 = errors.New("wire: invalid UTF-8")

// ErrValueOutOfRange indicates a value being packed does not fit the
// declared width of its wire representation.
var ErrValueOutOfRange = errors.New("wire: value out of range")

// ErrShortBuffer indicates a pack routine ran out of destination
// capacity. It is distinguished from other encoding errors so the
// boundary wrapper (see [Grow]) can grow the buffer and retry instead of
// aborting.
var ErrShortBuffer = errors.New("wire: output buffer too small")
