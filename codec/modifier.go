package codec

import (
	"github.com/openrepublic/go-jitabi/ir"
	"github.com/openrepublic/go-jitabi/value"
	"github.com/openrepublic/go-jitabi/wire"
)

// PackValue encodes v as rt into dst, recursing down rt's modifier chain
// outermost-first before delegating to the stem type. Each modifier
// wraps the code path produced for the remaining chain, so nested chains
// like "T?[]" and "T[]?" compose without special-casing.
func PackValue(prog *ir.Program, rt *ir.ResolvedType, v value.Value, dst []byte) (int, error) {
	if len(rt.Modifiers) == 0 {
		return packStem(prog, rt.Stem, v, dst)
	}
	inner := rt.Inner()
	switch rt.Modifiers[0] {
	case ir.ModOptional:
		if v.IsAbsent() {
			return wire.PutUint8(dst, 0)
		}
		n1, err := wire.PutUint8(dst, 1)
		if err != nil {
			return -1, err
		}
		n2, err := PackValue(prog, inner, v, dst[n1:])
		if err != nil {
			return -1, err
		}
		return n1 + n2, nil

	case ir.ModExtension:
		if v.IsAbsent() {
			return 0, nil
		}
		return PackValue(prog, inner, v, dst)

	case ir.ModArray:
		if v.Kind() != value.KindList {
			return -1, encErr("expected list for %s, got %s", rt, v.Kind())
		}
		items := v.List()
		n1, err := wire.PutUvarint32(dst, uint32(len(items)))
		if err != nil {
			return -1, err
		}
		offset := n1
		for _, item := range items {
			// Element errors propagate unwrapped so a short destination
			// buffer stays recognizable to [wire.Grow]'s retry loop.
			n2, err := PackValue(prog, inner, item, dst[offset:])
			if err != nil {
				return -1, err
			}
			offset += n2
		}
		return offset, nil

	default:
		return -1, encErr("unhandled modifier %s", rt.Modifiers[0])
	}
}

// UnpackValue is the inverse of [PackValue].
func UnpackValue(prog *ir.Program, rt *ir.ResolvedType, src []byte) (value.Value, int, error) {
	if len(rt.Modifiers) == 0 {
		return unpackStem(prog, rt.Stem, src)
	}
	inner := rt.Inner()
	switch rt.Modifiers[0] {
	case ir.ModOptional:
		flag, n1, err := wire.Uint8(src)
		if err != nil {
			return value.Absent, 0, err
		}
		if flag == 0 {
			return value.Absent, n1, nil
		}
		v, n2, err := UnpackValue(prog, inner, src[n1:])
		if err != nil {
			return value.Absent, 0, err
		}
		return v, n1 + n2, nil

	case ir.ModExtension:
		if len(src) == 0 {
			return value.Absent, 0, nil
		}
		return UnpackValue(prog, inner, src)

	case ir.ModArray:
		count, n1, err := wire.Uvarint32(src)
		if err != nil {
			return value.Absent, 0, err
		}
		items := make([]value.Value, 0, count)
		offset := n1
		for i := 0; i < int(count); i++ {
			v, n2, err := UnpackValue(prog, inner, src[offset:])
			if err != nil {
				return value.Absent, 0, decErr("array element %d: %v", i, err)
			}
			items = append(items, v)
			offset += n2
		}
		return value.List(items), offset, nil

	default:
		return value.Absent, 0, decErr("unhandled modifier %s", rt.Modifiers[0])
	}
}

func packStem(prog *ir.Program, decl ir.TypeDecl, v value.Value, dst []byte) (int, error) {
	switch t := decl.(type) {
	case *ir.Primitive:
		return packPrimitive(t, v, dst)
	case *ir.Struct:
		return packStruct(prog, t, v, dst)
	case *ir.Variant:
		return packVariant(prog, t, v, dst)
	case *ir.Alias:
		return PackValue(prog, t.Target, v, dst)
	default:
		return -1, encErr("unhandled type declaration %T", decl)
	}
}

func unpackStem(prog *ir.Program, decl ir.TypeDecl, src []byte) (value.Value, int, error) {
	switch t := decl.(type) {
	case *ir.Primitive:
		return unpackPrimitive(t, src)
	case *ir.Struct:
		return unpackStruct(prog, t, src)
	case *ir.Variant:
		return unpackVariant(prog, t, src)
	case *ir.Alias:
		return UnpackValue(prog, t.Target, src)
	default:
		return value.Absent, 0, decErr("unhandled type declaration %T", decl)
	}
}
