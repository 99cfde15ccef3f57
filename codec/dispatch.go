package codec

import (
	"strings"

	"github.com/openrepublic/go-jitabi/ir"
	"github.com/openrepublic/go-jitabi/value"
	"github.com/openrepublic/go-jitabi/wire"
)

// Pack encodes v as the named type into dst, recognizing a trailing "[]"
// on typeName as a top-level array of that type. This is the generic
// entry point the dispatch table exposes alongside the emitted
// Pack<Name> wrappers for every struct, variant, and alias.
func Pack(prog *ir.Program, typeName string, v value.Value, dst []byte) (int, error) {
	rt, err := lookupDispatchType(prog, typeName)
	if err != nil {
		return -1, err
	}
	return PackValue(prog, rt, v, dst)
}

// Unpack is the inverse of [Pack].
func Unpack(prog *ir.Program, typeName string, src []byte) (value.Value, int, error) {
	rt, err := lookupDispatchType(prog, typeName)
	if err != nil {
		return value.Absent, 0, err
	}
	return UnpackValue(prog, rt, src)
}

// PackAlloc encodes v as the named type using [wire.Grow] so callers
// without a pre-sized buffer don't have to guess a capacity.
func PackAlloc(prog *ir.Program, typeName string, v value.Value) ([]byte, error) {
	return wire.Grow(func(dst []byte) (int, error) {
		return Pack(prog, typeName, v, dst)
	})
}

func lookupDispatchType(prog *ir.Program, typeName string) (*ir.ResolvedType, error) {
	stem := typeName
	array := false
	if strings.HasSuffix(typeName, "[]") {
		array = true
		stem = strings.TrimSuffix(typeName, "[]")
	}
	decl, ok := prog.Lookup(stem)
	if !ok {
		return nil, boundaryErr("unknown type %q", typeName)
	}
	if array {
		return &ir.ResolvedType{Stem: decl, Modifiers: []ir.Modifier{ir.ModArray}}, nil
	}
	return &ir.ResolvedType{Stem: decl}, nil
}
