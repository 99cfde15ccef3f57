package wire

import (
	"fmt"
	"math/big"
)

// PutUint128 writes v, which must be non-negative and fit in 128 bits, as
// two little-endian 64-bit halves, low half first.
func PutUint128(dst []byte, v *big.Int) (int, error) {
	if len(dst) < 16 {
		return -1, ErrShortBuffer
	}
	if v.Sign() < 0 || v.BitLen() > 128 {
		return -1, fmt.Errorf("%w: uint128 value %s", ErrValueOutOfRange, v.String())
	}
	lo, hi := splitUint128(v)
	binaryPutUint64(dst[0:8], lo)
	binaryPutUint64(dst[8:16], hi)
	return 16, nil
}

// Uint128 reads an unsigned 128-bit integer from two little-endian
// 64-bit halves, low half first.
func Uint128(src []byte) (*big.Int, int, error) {
	if len(src) < 16 {
		return nil, 0, fmt.Errorf("%w: uint128", ErrTruncated)
	}
	lo := binaryUint64(src[0:8])
	hi := binaryUint64(src[8:16])
	return joinUint128(lo, hi), 16, nil
}

// PutInt128 writes v, the two's-complement interpretation of 128 bits, as
// two little-endian 64-bit halves, low half first.
func PutInt128(dst []byte, v *big.Int) (int, error) {
	if len(dst) < 16 {
		return -1, ErrShortBuffer
	}
	min := new(big.Int).Lsh(big.NewInt(-1), 127)
	max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	if v.Cmp(min) < 0 || v.Cmp(max) > 0 {
		return -1, fmt.Errorf("%w: int128 value %s", ErrValueOutOfRange, v.String())
	}
	u := v
	if v.Sign() < 0 {
		u = new(big.Int).Add(v, new(big.Int).Lsh(big.NewInt(1), 128))
	}
	lo, hi := splitUint128(u)
	binaryPutUint64(dst[0:8], lo)
	binaryPutUint64(dst[8:16], hi)
	return 16, nil
}

// Int128 reads a signed 128-bit integer (two's complement) from two
// little-endian 64-bit halves, low half first.
func Int128(src []byte) (*big.Int, int, error) {
	if len(src) < 16 {
		return nil, 0, fmt.Errorf("%w: int128", ErrTruncated)
	}
	lo := binaryUint64(src[0:8])
	hi := binaryUint64(src[8:16])
	u := joinUint128(lo, hi)
	if hi&(1<<63) != 0 {
		// Negative: u - 2^128.
		u.Sub(u, new(big.Int).Lsh(big.NewInt(1), 128))
	}
	return u, 16, nil
}

func splitUint128(v *big.Int) (lo, hi uint64) {
	mask64 := new(big.Int).SetUint64(^uint64(0))
	loBig := new(big.Int).And(v, mask64)
	hiBig := new(big.Int).Rsh(v, 64)
	return loBig.Uint64(), hiBig.Uint64()
}

func joinUint128(lo, hi uint64) *big.Int {
	out := new(big.Int).SetUint64(hi)
	out.Lsh(out, 64)
	out.Or(out, new(big.Int).SetUint64(lo))
	return out
}

func binaryPutUint64(dst []byte, v uint64) {
	_, _ = PutUint64(dst, v)
}

func binaryUint64(src []byte) uint64 {
	v, _, _ := Uint64(src)
	return v
}
