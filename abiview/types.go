// Package abiview defines the narrow contract the resolver consumes from
// an ABI front end: structs, variants, and aliases expressed as bare
// name/type-expression strings. A full front end — JSON parsing, schema
// validation, richer ABI content such as actions, tables, and ricardian
// clauses — is a separate concern and lives outside this package; [View]
// models only what the resolver reads.
package abiview

// FieldView is one field of a [StructView]: a name and an unresolved
// type-expression string, e.g. "uint64", "asset?", "checksum256[]".
type FieldView struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// StructView is one named struct declaration as seen by the resolver.
type StructView struct {
	Name   string      `json:"name"`
	Base   string      `json:"base,omitempty"`
	Fields []FieldView `json:"fields"`
}

// VariantView is one named variant declaration: an ordered list of case
// type expressions. The case at index i carries wire discriminant i.
type VariantView struct {
	Name  string   `json:"name"`
	Types []string `json:"types"`
}

// AliasView binds a new type name to a target type expression.
type AliasView struct {
	NewTypeName string `json:"new_type_name"`
	Type        string `json:"type"`
}

// View is the full set of declarations the resolver walks. Order within
// each slice does not affect resolution, but the emitter reproduces it
// in the declaration order of the source ABI where it influences
// generated output (dispatch table ordering).
//
// Version is the ABI's own declared version string (Antelope ABIs carry
// one, e.g. "eosio::abi/1.2"); it has no effect on resolution, and the
// emitter does not read it. The describe command prints it above the
// resolved types.
type View struct {
	Version  string
	Structs  []StructView
	Variants []VariantView
	Aliases  []AliasView
}
