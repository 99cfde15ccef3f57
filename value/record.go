package value

import (
	"github.com/openrepublic/go-jitabi/internal/iterate"
	"github.com/openrepublic/go-jitabi/internal/ordered"
)

// Record is an ordered, name-keyed mapping representing a decoded struct
// value. Iteration order is insertion order, so a decoded record iterates
// in declaration order, base fields first. Encoding looks fields up by
// name, so the order of a record's fields does not change its bytes.
type Record struct {
	fields ordered.Map[string, Value]
}

// NewRecord returns an empty record ready for field insertion in
// declaration order.
func NewRecord() *Record {
	return &Record{}
}

// Set inserts or overwrites the value of a named field.
func (r *Record) Set(name string, v Value) {
	r.fields.Set(name, v)
}

// Get returns the value of a named field, or [Absent] if it is not
// present.
func (r *Record) Get(name string) Value {
	v, ok := r.fields.GetOK(name)
	if !ok {
		return Absent
	}
	return v
}

// Has reports whether a field with the given name was set.
func (r *Record) Has(name string) bool {
	_, ok := r.fields.GetOK(name)
	return ok
}

// Fields iterates over the record's fields in declaration order.
func (r *Record) Fields() iterate.Seq2[string, Value] {
	return r.fields.All()
}

// Len returns the number of fields set on the record.
func (r *Record) Len() int {
	return r.fields.Len()
}
