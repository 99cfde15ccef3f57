package ir

// builtinPrimitives seeds the resolver's name table with the fixed closed
// set of wire primitives every ABI can reference directly.
func builtinPrimitives() []*Primitive {
	return []*Primitive{
		{Name: "bool", Wire: WireBool},

		{Name: "uint8", Wire: WireUint, Bits: 8},
		{Name: "uint16", Wire: WireUint, Bits: 16},
		{Name: "uint32", Wire: WireUint, Bits: 32},
		{Name: "uint64", Wire: WireUint, Bits: 64},
		{Name: "uint128", Wire: WireUint, Bits: 128},

		{Name: "int8", Wire: WireInt, Bits: 8},
		{Name: "int16", Wire: WireInt, Bits: 16},
		{Name: "int32", Wire: WireInt, Bits: 32},
		{Name: "int64", Wire: WireInt, Bits: 64},
		{Name: "int128", Wire: WireInt, Bits: 128},

		{Name: "float32", Wire: WireFloat, Bits: 32},
		{Name: "float64", Wire: WireFloat, Bits: 64},
		{Name: "float128", Wire: WireFloat128, RawLen: 16},

		{Name: "varuint32", Wire: WireVarUint32},
		{Name: "varint32", Wire: WireVarInt32},

		{Name: "bytes", Wire: WireBytes},
		{Name: "string", Wire: WireString},

		// Fixed-width opaque blobs used for hashes, keys, and signatures.
		{Name: "checksum160", Wire: WireRaw, RawLen: 20},
		{Name: "checksum256", Wire: WireRaw, RawLen: 32},
		{Name: "checksum512", Wire: WireRaw, RawLen: 64},
		{Name: "public_key", Wire: WireRaw, RawLen: 34},
		{Name: "signature", Wire: WireRaw, RawLen: 66},
		{Name: "block_id_type", Wire: WireRaw, RawLen: 32},
	}
}

// builtinAlias is one domain name that decays to an underlying primitive
// without being declared by the ABI itself.
type builtinAlias struct {
	Name   string
	Target string
}

// builtinAliases seeds the resolver with the domain names that decay to
// an underlying primitive without being declared by the ABI itself, in a
// fixed order: emission order must not depend on Go's randomized map
// iteration, or repeated runs over the same ABI would disagree on
// dispatch-table ordering.
func builtinAliases() []builtinAlias {
	return []builtinAlias{
		{"name", "uint64"},
		{"account_name", "uint64"},
		{"permission_name", "uint64"},
		{"action_name", "uint64"},
		{"table_name", "uint64"},
		{"scope_name", "uint64"},
		{"symbol_code", "uint64"},
		{"symbol", "uint64"},
		{"extended_asset_quant", "uint64"},
		{"time_point", "uint64"},
		{"time_point_sec", "uint32"},
		{"block_timestamp_type", "uint32"},
	}
}
