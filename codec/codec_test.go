package codec

import (
	"bytes"
	"errors"
	"math/big"
	"testing"

	"github.com/openrepublic/go-jitabi/abiview"
	"github.com/openrepublic/go-jitabi/ir"
	"github.com/openrepublic/go-jitabi/value"
)

func mustResolve(t *testing.T, view *abiview.View) *ir.Program {
	t.Helper()
	prog, err := ir.Resolve(view)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	return prog
}

func TestPrimitiveScenarioUint32(t *testing.T) {
	prog := mustResolve(t, &abiview.View{})
	dst := make([]byte, 4)
	n, err := Pack(prog, "uint32", value.IntFromUint64(305419896), dst)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x78, 0x56, 0x34, 0x12}
	if n != 4 || !bytes.Equal(dst, want) {
		t.Fatalf("pack_uint32 = % x, want % x", dst, want)
	}
	got, n2, err := Unpack(prog, "uint32", dst)
	if err != nil || n2 != 4 || got.Int().Uint64() != 305419896 {
		t.Fatalf("unpack_uint32: got (%v, %d, %v)", got, n2, err)
	}
}

func TestPrimitiveScenarioString(t *testing.T) {
	prog := mustResolve(t, &abiview.View{})
	dst := make([]byte, 8)
	n, err := Pack(prog, "string", value.String("hi"), dst)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x02, 'h', 'i'}
	if n != 3 || !bytes.Equal(dst[:n], want) {
		t.Fatalf("pack_string = % x, want % x", dst[:n], want)
	}
	got, _, err := Unpack(prog, "string", dst[:n])
	if err != nil || got.String() != "hi" {
		t.Fatalf("unpack_string: got (%v, %v)", got, err)
	}
}

func transactionHeaderView() abiview.StructView {
	return abiview.StructView{
		Name: "transaction_header",
		Fields: []abiview.FieldView{
			{Name: "expiration", Type: "time_point_sec"},
			{Name: "ref_block_num", Type: "uint16"},
			{Name: "ref_block_prefix", Type: "uint32"},
			{Name: "max_net_usage_words", Type: "varuint32"},
			{Name: "max_cpu_usage_ms", Type: "uint8"},
			{Name: "delay_sec", Type: "varuint32"},
		},
	}
}

func TestTransactionScenarioSixteenZeroBytes(t *testing.T) {
	prog := mustResolve(t, &abiview.View{
		Structs: []abiview.StructView{
			transactionHeaderView(),
			{
				Name: "transaction",
				Base: "transaction_header",
				Fields: []abiview.FieldView{
					{Name: "context_free_actions", Type: "bytes[]"},
					{Name: "actions", Type: "bytes[]"},
					{Name: "transaction_extensions", Type: "uint16[]"},
				},
			},
		},
	})

	rec := value.NewRecord()
	rec.Set("expiration", value.IntFromUint64(0))
	rec.Set("ref_block_num", value.IntFromUint64(0))
	rec.Set("ref_block_prefix", value.IntFromUint64(0))
	rec.Set("max_net_usage_words", value.IntFromUint64(0))
	rec.Set("max_cpu_usage_ms", value.IntFromUint64(0))
	rec.Set("delay_sec", value.IntFromUint64(0))
	rec.Set("context_free_actions", value.List(nil))
	rec.Set("actions", value.List(nil))
	rec.Set("transaction_extensions", value.List(nil))

	out, err := PackAlloc(prog, "transaction", value.RecordValue(rec))
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 16 {
		t.Fatalf("expected 16 bytes, got %d: % x", len(out), out)
	}
	for _, b := range out {
		if b != 0 {
			t.Fatalf("expected all-zero bytes, got % x", out)
		}
	}

	decoded, n, err := Unpack(prog, "transaction", out)
	if err != nil {
		t.Fatal(err)
	}
	if n != 16 {
		t.Fatalf("expected 16 bytes consumed, got %d", n)
	}
	if decoded.Record().Get("ref_block_num").Int().Sign() != 0 {
		t.Fatalf("expected zero ref_block_num")
	}
}

func optionalFieldProgram(t *testing.T) *ir.Program {
	return mustResolve(t, &abiview.View{
		Structs: []abiview.StructView{
			{Name: "t", Fields: []abiview.FieldView{{Name: "x", Type: "uint8?"}}},
		},
	})
}

func TestOptionalPresent(t *testing.T) {
	prog := optionalFieldProgram(t)
	rec := value.NewRecord()
	rec.Set("x", value.IntFromUint64(7))
	out, err := PackAlloc(prog, "t", value.RecordValue(rec))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, []byte{0x01, 0x07}) {
		t.Fatalf("got % x, want 01 07", out)
	}
	decoded, _, err := Unpack(prog, "t", out)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Record().Get("x").Int().Uint64() != 7 {
		t.Fatalf("expected x=7, got %v", decoded.Record().Get("x"))
	}
}

func TestOptionalAbsent(t *testing.T) {
	prog := optionalFieldProgram(t)
	rec := value.NewRecord()
	rec.Set("x", value.Absent)
	out, err := PackAlloc(prog, "t", value.RecordValue(rec))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, []byte{0x00}) {
		t.Fatalf("got % x, want 00", out)
	}
	decoded, _, err := Unpack(prog, "t", out)
	if err != nil {
		t.Fatal(err)
	}
	if !decoded.Record().Get("x").IsAbsent() {
		t.Fatalf("expected x absent, got %v", decoded.Record().Get("x"))
	}
}

func extensionTailProgram(t *testing.T) *ir.Program {
	return mustResolve(t, &abiview.View{
		Structs: []abiview.StructView{
			{Name: "t", Fields: []abiview.FieldView{
				{Name: "a", Type: "uint8"},
				{Name: "b", Type: "uint8$"},
			}},
		},
	})
}

func TestExtensionTailAbsent(t *testing.T) {
	prog := extensionTailProgram(t)
	rec := value.NewRecord()
	rec.Set("a", value.IntFromUint64(1))
	out, err := PackAlloc(prog, "t", value.RecordValue(rec))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, []byte{0x01}) {
		t.Fatalf("got % x, want 01", out)
	}
	decoded, n, err := Unpack(prog, "t", out)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("expected to consume 1 byte, got %d", n)
	}
	if !decoded.Record().Get("b").IsAbsent() {
		t.Fatalf("expected b absent, got %v", decoded.Record().Get("b"))
	}
}

func TestExtensionTailPresent(t *testing.T) {
	prog := extensionTailProgram(t)
	rec := value.NewRecord()
	rec.Set("a", value.IntFromUint64(1))
	rec.Set("b", value.IntFromUint64(2))
	out, err := PackAlloc(prog, "t", value.RecordValue(rec))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, []byte{0x01, 0x02}) {
		t.Fatalf("got % x, want 01 02", out)
	}
	decoded, _, err := Unpack(prog, "t", out)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Record().Get("b").Int().Uint64() != 2 {
		t.Fatalf("expected b=2, got %v", decoded.Record().Get("b"))
	}
}

func TestVariantByIndex(t *testing.T) {
	prog := mustResolve(t, &abiview.View{
		Variants: []abiview.VariantView{
			{Name: "v", Types: []string{"uint32", "string"}},
		},
	})
	rec := value.NewRecord()
	rec.Set("type", value.String("string"))
	rec.Set("value", value.String("hi"))
	out, err := PackAlloc(prog, "v", value.RecordValue(rec))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, []byte{0x01, 0x02, 'h', 'i'}) {
		t.Fatalf("got % x, want 01 02 68 69", out)
	}
	decoded, _, err := Unpack(prog, "v", out)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Record().Get("type").String() != "string" || decoded.Record().Get("value").String() != "hi" {
		t.Fatalf("unexpected decode: %+v", decoded)
	}
}

func TestVariantHostTypeClassification(t *testing.T) {
	prog := mustResolve(t, &abiview.View{
		Variants: []abiview.VariantView{
			{Name: "v", Types: []string{"uint32", "int32", "string"}},
		},
	})
	out, err := PackAlloc(prog, "v", value.IntFromInt64(42))
	if err != nil {
		t.Fatal(err)
	}
	// First matching integer case wins: uint32 at index 0, not int32.
	if out[0] != 0x00 {
		t.Fatalf("expected discriminant 0, got % x", out)
	}
}

func TestArrayComposition(t *testing.T) {
	prog := mustResolve(t, &abiview.View{})
	items := []value.Value{value.IntFromUint64(1), value.IntFromUint64(2), value.IntFromUint64(3)}
	out, err := PackAlloc(prog, "uint8[]", value.List(items))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, []byte{0x03, 0x01, 0x02, 0x03}) {
		t.Fatalf("got % x", out)
	}
	decoded, _, err := Unpack(prog, "uint8[]", out)
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded.List()) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(decoded.List()))
	}
}

func TestZeroLengthArrayEncodesToSingleZeroByte(t *testing.T) {
	prog := mustResolve(t, &abiview.View{})
	out, err := PackAlloc(prog, "uint8[]", value.List(nil))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, []byte{0x00}) {
		t.Fatalf("got % x, want 00", out)
	}
}

func TestArrayOfOptionals(t *testing.T) {
	prog := mustResolve(t, &abiview.View{
		Structs: []abiview.StructView{
			{Name: "t", Fields: []abiview.FieldView{{Name: "xs", Type: "uint8?[]"}}},
		},
	})
	rec := value.NewRecord()
	rec.Set("xs", value.List([]value.Value{
		value.IntFromUint64(1),
		value.Absent,
		value.IntFromUint64(3),
	}))
	out, err := PackAlloc(prog, "t", value.RecordValue(rec))
	if err != nil {
		t.Fatal(err)
	}
	// Count 3, then each element carries its own presence byte.
	want := []byte{0x03, 0x01, 0x01, 0x00, 0x01, 0x03}
	if !bytes.Equal(out, want) {
		t.Fatalf("got % x, want % x", out, want)
	}
	decoded, _, err := Unpack(prog, "t", out)
	if err != nil {
		t.Fatal(err)
	}
	xs := decoded.Record().Get("xs").List()
	if len(xs) != 3 || !xs[1].IsAbsent() || xs[2].Int().Uint64() != 3 {
		t.Fatalf("unexpected decode: %+v", xs)
	}
}

func TestOptionalArray(t *testing.T) {
	prog := mustResolve(t, &abiview.View{
		Structs: []abiview.StructView{
			{Name: "t", Fields: []abiview.FieldView{{Name: "xs", Type: "uint8[]?"}}},
		},
	})

	rec := value.NewRecord()
	rec.Set("xs", value.List([]value.Value{value.IntFromUint64(1), value.IntFromUint64(2)}))
	out, err := PackAlloc(prog, "t", value.RecordValue(rec))
	if err != nil {
		t.Fatal(err)
	}
	// One presence byte, then a length-prefixed list.
	if !bytes.Equal(out, []byte{0x01, 0x02, 0x01, 0x02}) {
		t.Fatalf("got % x, want 01 02 01 02", out)
	}

	rec = value.NewRecord()
	rec.Set("xs", value.Absent)
	out, err = PackAlloc(prog, "t", value.RecordValue(rec))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(out, []byte{0x00}) {
		t.Fatalf("got % x, want 00", out)
	}
	decoded, _, err := Unpack(prog, "t", out)
	if err != nil {
		t.Fatal(err)
	}
	if !decoded.Record().Get("xs").IsAbsent() {
		t.Fatalf("expected xs absent, got %v", decoded.Record().Get("xs"))
	}
}

func TestConsumedExact(t *testing.T) {
	prog := mustResolve(t, &abiview.View{
		Structs: []abiview.StructView{
			{Name: "pair", Fields: []abiview.FieldView{
				{Name: "a", Type: "uint32"},
				{Name: "b", Type: "string"},
			}},
		},
	})
	rec := value.NewRecord()
	rec.Set("a", value.IntFromUint64(7))
	rec.Set("b", value.String("hello"))
	packed, err := PackAlloc(prog, "pair", value.RecordValue(rec))
	if err != nil {
		t.Fatal(err)
	}
	decoded, consumed, err := Unpack(prog, "pair", packed)
	if err != nil {
		t.Fatal(err)
	}
	reencoded, err := PackAlloc(prog, "pair", decoded)
	if err != nil {
		t.Fatal(err)
	}
	if consumed != len(reencoded) {
		t.Fatalf("consumed %d != len(re-encoded) %d", consumed, len(reencoded))
	}
}

func TestDeterministicEncoding(t *testing.T) {
	prog := mustResolve(t, &abiview.View{})
	v := value.String("deterministic")
	a, err := PackAlloc(prog, "string", v)
	if err != nil {
		t.Fatal(err)
	}
	b, err := PackAlloc(prog, "string", v)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("two packs of the same value produced different bytes: % x vs % x", a, b)
	}
}

func TestInt128MinimumRoundTripsThroughCodec(t *testing.T) {
	prog := mustResolve(t, &abiview.View{})
	min := new(big.Int).Lsh(big.NewInt(-1), 127)
	out, err := PackAlloc(prog, "int128", value.Int(min))
	if err != nil {
		t.Fatal(err)
	}
	got, _, err := Unpack(prog, "int128", out)
	if err != nil {
		t.Fatal(err)
	}
	if got.Int().Cmp(min) != 0 {
		t.Fatalf("got %v, want %v", got.Int(), min)
	}
}

func TestUnsignedOverflowRejected(t *testing.T) {
	prog := mustResolve(t, &abiview.View{})
	dst := make([]byte, 1)
	_, err := Pack(prog, "uint8", value.IntFromUint64(256), dst)
	if err == nil {
		t.Fatal("expected an out-of-range error packing 256 into uint8")
	}
}

func TestMissingRequiredFieldRejected(t *testing.T) {
	prog := mustResolve(t, &abiview.View{
		Structs: []abiview.StructView{
			{Name: "t", Fields: []abiview.FieldView{{Name: "a", Type: "uint8"}}},
		},
	})
	_, err := PackAlloc(prog, "t", value.RecordValue(value.NewRecord()))
	if err == nil {
		t.Fatal("expected a missing-field error")
	}
}

func TestUnknownTypeNameIsBoundaryError(t *testing.T) {
	prog := mustResolve(t, &abiview.View{})
	_, err := Pack(prog, "not_a_type", value.Absent, make([]byte, 4))
	var cerr *Error
	if !errors.As(err, &cerr) || cerr.Kind != KindBoundary {
		t.Fatalf("expected a boundary error, got %v", err)
	}
}

func TestTruncatedBufferIsDecodingFailure(t *testing.T) {
	prog := mustResolve(t, &abiview.View{})
	// Length prefix of 5 with only two payload bytes behind it.
	_, _, err := Unpack(prog, "string", []byte{0x05, 'h', 'i'})
	if err == nil {
		t.Fatal("expected a truncation error")
	}
}
