package codec

import (
	"github.com/openrepublic/go-jitabi/ir"
	"github.com/openrepublic/go-jitabi/value"
	"github.com/openrepublic/go-jitabi/wire"
)

// packVariant classifies v to select a case index, then encodes the
// discriminant followed by the selected case's payload. A record
// carrying a string "type" field is matched against case names in
// declaration order; otherwise the case is chosen by the host runtime
// kind of v itself (see [selectVariantCase]).
func packVariant(prog *ir.Program, variant *ir.Variant, v value.Value, dst []byte) (int, error) {
	idx, payload, err := selectVariantCase(variant, v)
	if err != nil {
		return -1, err
	}
	n1, err := wire.PutUvarint32(dst, uint32(idx))
	if err != nil {
		return -1, err
	}
	n2, err := PackValue(prog, variant.Cases[idx], payload, dst[n1:])
	if err != nil {
		return -1, err
	}
	return n1 + n2, nil
}

func selectVariantCase(variant *ir.Variant, v value.Value) (int, value.Value, error) {
	if v.Kind() == value.KindRecord && v.Record().Has("type") {
		tag := v.Record().Get("type")
		if tag.Kind() != value.KindString {
			return 0, value.Absent, encErr("%s: \"type\" field must be a string", variant.Name)
		}
		name := tag.String()
		for i, c := range variant.Cases {
			if c.String() == name {
				return i, v.Record().Get("value"), nil
			}
		}
		return 0, value.Absent, encErr("%s: unknown variant case %q", variant.Name, name)
	}

	// Host-type classification: the first case whose primitive category
	// matches the bare payload's runtime kind wins. This preserves a
	// historical ambiguity when more than one case shares a category —
	// reimplementations should keep this behavior rather than "fix" it,
	// and callers that need a specific case should use the {type, value}
	// record form instead.
	for i, c := range variant.Cases {
		if category, ok := primitiveCategory(c); ok && category == v.Kind() {
			return i, v, nil
		}
	}
	return 0, value.Absent, encErr("%s: no case matches host type %s", variant.Name, v.Kind())
}

// primitiveCategory reports the broad [value.Kind] a case's wire
// primitive classifies as, following alias targets transparently.
// Structs and variants are not classifiable this way; selecting them
// requires the explicit {type, value} record form.
func primitiveCategory(rt *ir.ResolvedType) (value.Kind, bool) {
	if len(rt.Modifiers) != 0 {
		return 0, false
	}
	switch t := rt.Stem.(type) {
	case *ir.Primitive:
		switch t.Wire {
		case ir.WireBool:
			return value.KindBool, true
		case ir.WireUint, ir.WireInt, ir.WireVarUint32, ir.WireVarInt32:
			return value.KindInt, true
		case ir.WireFloat, ir.WireFloat128:
			return value.KindFloat, true
		case ir.WireBytes, ir.WireRaw:
			return value.KindBytes, true
		case ir.WireString:
			return value.KindString, true
		default:
			return 0, false
		}
	case *ir.Alias:
		return primitiveCategory(t.Target)
	default:
		return 0, false
	}
}

// unpackVariant decodes an unsigned varint32 discriminant and dispatches
// to the indicated case's unpack routine, returning the payload wrapped
// in a {type, value} record naming the case.
func unpackVariant(prog *ir.Program, variant *ir.Variant, src []byte) (value.Value, int, error) {
	idx, n1, err := wire.Uvarint32(src)
	if err != nil {
		return value.Absent, 0, err
	}
	if int(idx) >= len(variant.Cases) {
		return value.Absent, 0, decErr("%s: unknown variant index %d", variant.Name, idx)
	}
	payload, n2, err := UnpackValue(prog, variant.Cases[idx], src[n1:])
	if err != nil {
		return value.Absent, 0, decErr("%s: case %d: %v", variant.Name, idx, err)
	}
	rec := value.NewRecord()
	rec.Set("type", value.String(variant.Cases[idx].String()))
	rec.Set("value", payload)
	return value.RecordValue(rec), n1 + n2, nil
}
