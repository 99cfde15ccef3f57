package wire

import (
	"errors"
)

// InitialCapacity is the starting destination buffer size [Grow] allocates
// before its first pack attempt.
const InitialCapacity = 256

// MaxGrowAttempts bounds the number of pack attempts [Grow] makes; the
// buffer doubles after each attempt that fails with [ErrShortBuffer].
const MaxGrowAttempts = 5

// ErrMaxGrowAttempts is returned once [Grow] has made [MaxGrowAttempts]
// pack attempts and every one failed with [ErrShortBuffer].
var ErrMaxGrowAttempts = errors.New("wire: exceeded maximum resize attempts")

// Grow repeatedly calls pack with a caller-owned destination buffer,
// doubling its capacity each time pack fails with [ErrShortBuffer], and
// returns the slice actually written on success. Any other error from
// pack aborts immediately. This is the boundary wrapper described for
// pack routines that size their own output: callers that already know
// the exact encoded size should call a routine's pack function directly
// with a tightly sized buffer instead.
func Grow(pack func(dst []byte) (int, error)) ([]byte, error) {
	cap := InitialCapacity
	for attempt := 0; attempt < MaxGrowAttempts; attempt++ {
		dst := make([]byte, cap)
		n, err := pack(dst)
		switch {
		case err == nil:
			return dst[:n], nil
		case errors.Is(err, ErrShortBuffer):
			cap *= 2
			continue
		default:
			return nil, err
		}
	}
	return nil, ErrMaxGrowAttempts
}
