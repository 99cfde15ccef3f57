package abiview

import "encoding/json"

// abiJSON mirrors the subset of an Antelope ABI JSON document this
// package understands: struct, variant, and type-alias declarations.
// Actions, tables, and ricardian clauses are accepted and ignored.
type abiJSON struct {
	Version  string        `json:"version"`
	Structs  []StructView  `json:"structs"`
	Types    []AliasView   `json:"types"`
	Variants []VariantView `json:"variants"`
}

// DecodeJSON reads the struct/variant/alias declarations out of an
// Antelope-style ABI JSON document. This is a convenience loader for
// tests and small tools; it is not a validating front end and performs
// no checks beyond what [json.Unmarshal] does.
func DecodeJSON(data []byte) (*View, error) {
	var doc abiJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &View{
		Version:  doc.Version,
		Structs:  doc.Structs,
		Variants: doc.Variants,
		Aliases:  doc.Types,
	}, nil
}
