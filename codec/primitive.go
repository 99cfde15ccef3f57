package codec

import (
	"math/big"

	"github.com/openrepublic/go-jitabi/ir"
	"github.com/openrepublic/go-jitabi/value"
	"github.com/openrepublic/go-jitabi/wire"
)

// packPrimitive encodes v according to p's wire kind. Buffer-too-small
// failures from the wire package are returned unwrapped so callers using
// [wire.Grow] can detect them with errors.Is.
func packPrimitive(p *ir.Primitive, v value.Value, dst []byte) (int, error) {
	switch p.Wire {
	case ir.WireBool:
		if v.Kind() != value.KindBool {
			return -1, encErr("%s: expected bool, got %s", p.Name, v.Kind())
		}
		b := byte(0)
		if v.Bool() {
			b = 1
		}
		return wire.PutUint8(dst, b)

	case ir.WireUint:
		if v.Kind() != value.KindInt {
			return -1, encErr("%s: expected int, got %s", p.Name, v.Kind())
		}
		return packUint(p, v.Int(), dst)

	case ir.WireInt:
		if v.Kind() != value.KindInt {
			return -1, encErr("%s: expected int, got %s", p.Name, v.Kind())
		}
		return packInt(p, v.Int(), dst)

	case ir.WireFloat:
		if v.Kind() != value.KindFloat {
			return -1, encErr("%s: expected float, got %s", p.Name, v.Kind())
		}
		if p.Bits == 32 {
			return wire.PutFloat32(dst, float32(v.Float()))
		}
		return wire.PutFloat64(dst, v.Float())

	case ir.WireFloat128:
		if v.Kind() != value.KindBytes || len(v.Bytes()) != 16 {
			return -1, encErr("%s: expected 16 raw bytes", p.Name)
		}
		return wire.PutRaw(dst, v.Bytes())

	case ir.WireVarUint32:
		if v.Kind() != value.KindInt {
			return -1, encErr("%s: expected int, got %s", p.Name, v.Kind())
		}
		if !v.Int().IsUint64() || v.Int().Uint64() > uint64(^uint32(0)) {
			return -1, encErr("%s: value %s out of range for varuint32", p.Name, v.Int())
		}
		return wire.PutUvarint32(dst, uint32(v.Int().Uint64()))

	case ir.WireVarInt32:
		if v.Kind() != value.KindInt {
			return -1, encErr("%s: expected int, got %s", p.Name, v.Kind())
		}
		if !v.Int().IsInt64() || v.Int().Int64() > int64(int32(1<<31-1)) || v.Int().Int64() < int64(int32(-1<<31)) {
			return -1, encErr("%s: value %s out of range for varint32", p.Name, v.Int())
		}
		return wire.PutVarint32(dst, int32(v.Int().Int64()))

	case ir.WireBytes:
		if v.Kind() != value.KindBytes {
			return -1, encErr("%s: expected bytes, got %s", p.Name, v.Kind())
		}
		return wire.PutBytes(dst, v.Bytes())

	case ir.WireString:
		if v.Kind() != value.KindString {
			return -1, encErr("%s: expected string, got %s", p.Name, v.Kind())
		}
		return wire.PutString(dst, v.String())

	case ir.WireRaw:
		if v.Kind() != value.KindBytes || len(v.Bytes()) != p.RawLen {
			return -1, encErr("%s: expected %d raw bytes", p.Name, p.RawLen)
		}
		return wire.PutRaw(dst, v.Bytes())

	default:
		return -1, encErr("%s: unhandled primitive wire kind", p.Name)
	}
}

func unpackPrimitive(p *ir.Primitive, src []byte) (value.Value, int, error) {
	switch p.Wire {
	case ir.WireBool:
		b, n, err := wire.Uint8(src)
		if err != nil {
			return value.Absent, 0, err
		}
		return value.Bool(b != 0), n, nil

	case ir.WireUint:
		return unpackUint(p, src)

	case ir.WireInt:
		return unpackInt(p, src)

	case ir.WireFloat:
		if p.Bits == 32 {
			f, n, err := wire.Float32(src)
			if err != nil {
				return value.Absent, 0, err
			}
			return value.Float(float64(f)), n, nil
		}
		f, n, err := wire.Float64(src)
		if err != nil {
			return value.Absent, 0, err
		}
		return value.Float(f), n, nil

	case ir.WireFloat128:
		b, n, err := wire.Raw(src, 16)
		if err != nil {
			return value.Absent, 0, err
		}
		return value.Bytes(b), n, nil

	case ir.WireVarUint32:
		u, n, err := wire.Uvarint32(src)
		if err != nil {
			return value.Absent, 0, err
		}
		return value.IntFromUint64(uint64(u)), n, nil

	case ir.WireVarInt32:
		i, n, err := wire.Varint32(src)
		if err != nil {
			return value.Absent, 0, err
		}
		return value.IntFromInt64(int64(i)), n, nil

	case ir.WireBytes:
		b, n, err := wire.Bytes(src)
		if err != nil {
			return value.Absent, 0, err
		}
		return value.Bytes(b), n, nil

	case ir.WireString:
		s, n, err := wire.String(src)
		if err != nil {
			return value.Absent, 0, err
		}
		return value.String(s), n, nil

	case ir.WireRaw:
		b, n, err := wire.Raw(src, p.RawLen)
		if err != nil {
			return value.Absent, 0, err
		}
		return value.Bytes(b), n, nil

	default:
		return value.Absent, 0, decErr("%s: unhandled primitive wire kind", p.Name)
	}
}

func packUint(p *ir.Primitive, v *big.Int, dst []byte) (int, error) {
	if v.Sign() < 0 {
		return -1, encErr("%s: negative value %s for unsigned field", p.Name, v)
	}
	switch p.Bits {
	case 8:
		if !v.IsUint64() || v.Uint64() > 0xff {
			return -1, encErr("%s: value %s out of range", p.Name, v)
		}
		return wire.PutUint8(dst, byte(v.Uint64()))
	case 16:
		if !v.IsUint64() || v.Uint64() > 0xffff {
			return -1, encErr("%s: value %s out of range", p.Name, v)
		}
		return wire.PutUint16(dst, uint16(v.Uint64()))
	case 32:
		if !v.IsUint64() || v.Uint64() > 0xffffffff {
			return -1, encErr("%s: value %s out of range", p.Name, v)
		}
		return wire.PutUint32(dst, uint32(v.Uint64()))
	case 64:
		if !v.IsUint64() {
			return -1, encErr("%s: value %s out of range", p.Name, v)
		}
		return wire.PutUint64(dst, v.Uint64())
	case 128:
		return wire.PutUint128(dst, v)
	default:
		return -1, encErr("%s: unsupported unsigned width %d", p.Name, p.Bits)
	}
}

func unpackUint(p *ir.Primitive, src []byte) (value.Value, int, error) {
	switch p.Bits {
	case 8:
		u, n, err := wire.Uint8(src)
		return wrapUint(uint64(u), n, err)
	case 16:
		u, n, err := wire.Uint16(src)
		return wrapUint(uint64(u), n, err)
	case 32:
		u, n, err := wire.Uint32(src)
		return wrapUint(uint64(u), n, err)
	case 64:
		u, n, err := wire.Uint64(src)
		return wrapUint(u, n, err)
	case 128:
		u, n, err := wire.Uint128(src)
		if err != nil {
			return value.Absent, 0, err
		}
		return value.Int(u), n, nil
	default:
		return value.Absent, 0, decErr("%s: unsupported unsigned width %d", p.Name, p.Bits)
	}
}

func wrapUint(u uint64, n int, err error) (value.Value, int, error) {
	if err != nil {
		return value.Absent, 0, err
	}
	return value.IntFromUint64(u), n, nil
}

func packInt(p *ir.Primitive, v *big.Int, dst []byte) (int, error) {
	switch p.Bits {
	case 8:
		if !v.IsInt64() || v.Int64() < -0x80 || v.Int64() > 0x7f {
			return -1, encErr("%s: value %s out of range", p.Name, v)
		}
		return wire.PutUint8(dst, byte(int8(v.Int64())))
	case 16:
		if !v.IsInt64() || v.Int64() < -0x8000 || v.Int64() > 0x7fff {
			return -1, encErr("%s: value %s out of range", p.Name, v)
		}
		return wire.PutUint16(dst, uint16(int16(v.Int64())))
	case 32:
		if !v.IsInt64() || v.Int64() < -0x80000000 || v.Int64() > 0x7fffffff {
			return -1, encErr("%s: value %s out of range", p.Name, v)
		}
		return wire.PutUint32(dst, uint32(int32(v.Int64())))
	case 64:
		if !v.IsInt64() {
			return -1, encErr("%s: value %s out of range", p.Name, v)
		}
		return wire.PutUint64(dst, uint64(v.Int64()))
	case 128:
		return wire.PutInt128(dst, v)
	default:
		return -1, encErr("%s: unsupported signed width %d", p.Name, p.Bits)
	}
}

func unpackInt(p *ir.Primitive, src []byte) (value.Value, int, error) {
	switch p.Bits {
	case 8:
		u, n, err := wire.Uint8(src)
		if err != nil {
			return value.Absent, 0, err
		}
		return value.IntFromInt64(int64(int8(u))), n, nil
	case 16:
		u, n, err := wire.Uint16(src)
		if err != nil {
			return value.Absent, 0, err
		}
		return value.IntFromInt64(int64(int16(u))), n, nil
	case 32:
		u, n, err := wire.Uint32(src)
		if err != nil {
			return value.Absent, 0, err
		}
		return value.IntFromInt64(int64(int32(u))), n, nil
	case 64:
		u, n, err := wire.Uint64(src)
		if err != nil {
			return value.Absent, 0, err
		}
		return value.IntFromInt64(int64(u)), n, nil
	case 128:
		i, n, err := wire.Int128(src)
		if err != nil {
			return value.Absent, 0, err
		}
		return value.Int(i), n, nil
	default:
		return value.Absent, 0, decErr("%s: unsupported signed width %d", p.Name, p.Bits)
	}
}
