// Package value implements the tagged-sum runtime representation that
// flows across the pack/unpack boundary: the host supplies and receives
// [Value]s rather than raw Go types, so that a single emitted routine can
// be driven uniformly regardless of the static shape of the caller's data.
package value

import "math/big"

// Kind discriminates the case held by a [Value].
type Kind int

const (
	KindAbsent Kind = iota
	KindBool
	KindInt
	KindFloat
	KindBytes
	KindString
	KindRecord
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindRecord:
		return "record"
	case KindList:
		return "list"
	default:
		return "unknown"
	}
}

// Absent is the sentinel value carried by an optional or extension field
// that was not present on the wire. It is distinct from every primitive
// value, including the zero values of bool, int, and string.
var Absent = Value{kind: KindAbsent}

// Value is the sum type exchanged with generated pack/unpack routines. The
// zero Value is [Absent].
type Value struct {
	kind   Kind
	b      bool
	i      *big.Int
	f      float64
	bytes  []byte
	str    string
	record *Record
	list   []Value
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsAbsent() bool { return v.kind == KindAbsent }

func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

func (v Value) Bool() bool { return v.b }

// Int wraps an arbitrary-precision integer. Values of width 64 bits or
// narrower are still carried as *big.Int for uniformity; the codec
// narrows them to a machine integer when encoding a fixed-width field.
func Int(i *big.Int) Value { return Value{kind: KindInt, i: i} }

// IntFromInt64 is a convenience constructor for machine-sized integers.
func IntFromInt64(i int64) Value { return Value{kind: KindInt, i: big.NewInt(i)} }

// IntFromUint64 is a convenience constructor for machine-sized unsigned
// integers.
func IntFromUint64(u uint64) Value { return Value{kind: KindInt, i: new(big.Int).SetUint64(u)} }

func (v Value) Int() *big.Int { return v.i }

func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

func (v Value) Float() float64 { return v.f }

func Bytes(b []byte) Value { return Value{kind: KindBytes, bytes: b} }

func (v Value) Bytes() []byte { return v.bytes }

func String(s string) Value { return Value{kind: KindString, str: s} }

func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindAbsent:
		return "<absent>"
	default:
		return v.kind.String()
	}
}

func RecordValue(r *Record) Value { return Value{kind: KindRecord, record: r} }

func (v Value) Record() *Record { return v.record }

func List(items []Value) Value { return Value{kind: KindList, list: items} }

func (v Value) List() []Value { return v.list }
