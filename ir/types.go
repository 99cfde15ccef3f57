// Package ir is the resolved intermediate representation of an ABI: a
// directed graph of named type declarations (primitives, structs,
// variants, aliases) plus the modifier chains attached to every field and
// variant case. The emitter walks this graph; nothing downstream of
// resolution ever looks at a type-expression string again.
package ir

import (
	"fmt"
	"strings"
)

// WireKind classifies how a [Primitive] is laid out on the wire.
type WireKind int

const (
	WireBool WireKind = iota
	WireUint
	WireInt
	WireFloat
	WireFloat128
	WireVarUint32
	WireVarInt32
	WireBytes
	WireString
	WireRaw
)

// TypeDecl is any named node in the resolved graph: a [Primitive],
// [Struct], [Variant], or [Alias].
type TypeDecl interface {
	TypeName() string
	isTypeDecl()
}

// Primitive is one of the fixed closed set of built-in wire types.
type Primitive struct {
	Name string
	Wire WireKind

	// Bits is the width in bits for WireUint, WireInt, and WireFloat.
	Bits int

	// RawLen is the blob length in bytes for WireRaw and WireFloat128.
	RawLen int
}

func (p *Primitive) TypeName() string { return p.Name }
func (*Primitive) isTypeDecl()        {}

// Field is one named, typed member of a [Struct].
type Field struct {
	Name string
	Type *ResolvedType
}

// Struct is an ordered sequence of fields with an optional base struct
// whose fields are logically prepended to its own.
type Struct struct {
	Name   string
	Base   *Struct
	Fields []Field
}

func (s *Struct) TypeName() string { return s.Name }
func (*Struct) isTypeDecl()        {}

// AllFields returns the struct's fields in wire order: base fields (its
// own base chain, recursively, outermost ancestor first) followed by the
// struct's own declared fields.
func (s *Struct) AllFields() []Field {
	var chain []*Struct
	for b := s; b != nil; b = b.Base {
		chain = append(chain, b)
	}
	var out []Field
	for i := len(chain) - 1; i >= 0; i-- {
		out = append(out, chain[i].Fields...)
	}
	return out
}

// Variant is an ordered sequence of case types. The wire form of a value
// is a 0-based case index followed by the payload of that case.
type Variant struct {
	Name  string
	Cases []*ResolvedType
}

func (v *Variant) TypeName() string { return v.Name }
func (*Variant) isTypeDecl()        {}

// Alias binds a name to another resolved type. Aliases are transparent:
// the emitted routine for an alias delegates to its target's routine.
type Alias struct {
	Name   string
	Target *ResolvedType
}

func (a *Alias) TypeName() string { return a.Name }
func (*Alias) isTypeDecl()        {}

// Modifier is one wrapper in a field or case's modifier chain.
type Modifier int

const (
	ModOptional Modifier = iota
	ModExtension
	ModArray
)

func (m Modifier) String() string {
	switch m {
	case ModOptional:
		return "optional"
	case ModExtension:
		return "extension"
	case ModArray:
		return "array"
	default:
		return fmt.Sprintf("modifier(%d)", int(m))
	}
}

// ResolvedType is a base type declaration plus the ordered modifier chain
// applied to it, outermost-first. An empty chain means the field is the
// stem type unmodified.
type ResolvedType struct {
	Stem      TypeDecl
	Modifiers []Modifier
}

// IsExtension reports whether the outermost modifier is extension, which
// only the trailing run of a struct's fields may carry.
func (r *ResolvedType) IsExtension() bool {
	return len(r.Modifiers) > 0 && r.Modifiers[0] == ModExtension
}

// Inner returns the type one modifier layer down: the same stem with the
// outermost modifier stripped.
func (r *ResolvedType) Inner() *ResolvedType {
	if len(r.Modifiers) == 0 {
		return r
	}
	return &ResolvedType{Stem: r.Stem, Modifiers: r.Modifiers[1:]}
}

// String reconstructs the type-expression text this type was resolved
// from: the stem name followed by its modifier suffixes, innermost
// first, the inverse of modifier-chain parsing.
func (r *ResolvedType) String() string {
	var b strings.Builder
	b.WriteString(r.Stem.TypeName())
	for i := len(r.Modifiers) - 1; i >= 0; i-- {
		switch r.Modifiers[i] {
		case ModArray:
			b.WriteString("[]")
		case ModOptional:
			b.WriteString("?")
		case ModExtension:
			b.WriteString("$")
		}
	}
	return b.String()
}
