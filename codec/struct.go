package codec

import (
	"github.com/openrepublic/go-jitabi/ir"
	"github.com/openrepublic/go-jitabi/value"
)

// packStruct encodes a struct value field by field in wire order (base
// fields first, from [ir.Struct.AllFields]), looking each field up by
// name in the input record. A field absent from the record is an error
// unless its outermost modifier is extension, in which case it is
// treated as an absent value.
func packStruct(prog *ir.Program, s *ir.Struct, v value.Value, dst []byte) (int, error) {
	if v.Kind() != value.KindRecord {
		return -1, encErr("%s: expected record, got %s", s.Name, v.Kind())
	}
	rec := v.Record()
	offset := 0
	for _, f := range s.AllFields() {
		fv := rec.Get(f.Name)
		if !rec.Has(f.Name) {
			if !f.Type.IsExtension() {
				return -1, encErr("%s: missing required field %q", s.Name, f.Name)
			}
			fv = value.Absent
		}
		n, err := PackValue(prog, f.Type, fv, dst[offset:])
		if err != nil {
			return -1, err
		}
		offset += n
	}
	return offset, nil
}

// unpackStruct is the inverse of packStruct. Each field is decoded
// against the bytes remaining after the previous one, so that an
// exhausted buffer correctly yields absent for any trailing extension
// fields without a dedicated end-of-struct marker.
func unpackStruct(prog *ir.Program, s *ir.Struct, src []byte) (value.Value, int, error) {
	rec := value.NewRecord()
	offset := 0
	for _, f := range s.AllFields() {
		v, n, err := UnpackValue(prog, f.Type, src[offset:])
		if err != nil {
			return value.Absent, 0, decErr("%s.%s: %v", s.Name, f.Name, err)
		}
		rec.Set(f.Name, v)
		offset += n
	}
	return value.RecordValue(rec), offset, nil
}
