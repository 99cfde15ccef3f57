package codegen

import (
	"strings"
	"testing"

	"github.com/k0kubun/pp/v3"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/openrepublic/go-jitabi/abiview"
	"github.com/openrepublic/go-jitabi/ir"
)

func testProgram(t *testing.T) *ir.Program {
	t.Helper()
	prog, err := ir.Resolve(&abiview.View{
		Structs: []abiview.StructView{
			{Name: "transfer", Fields: []abiview.FieldView{
				{Name: "from", Type: "name"},
				{Name: "to", Type: "name"},
				{Name: "quantity", Type: "uint64"},
				{Name: "memo", Type: "string"},
			}},
		},
		Variants: []abiview.VariantView{
			{Name: "action_data", Types: []string{"transfer", "bytes"}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return prog
}

func TestEmitProducesFormattableSource(t *testing.T) {
	prog := testProgram(t)
	pkg, err := Emit(prog, "github.com/example/generated", DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	f := pkg.Files["codec.gen.go"]
	src, err := f.Bytes()
	if err != nil {
		t.Fatalf("generated source did not gofmt cleanly: %v\n%s", err, src)
	}
	for _, want := range []string{"func PackTransfer(", "func UnpackTransfer(", "func PackActionData(", "var Dispatch ="} {
		if !strings.Contains(string(src), want) {
			t.Errorf("generated source missing %q", want)
		}
	}
}

func TestEmitDeterministic(t *testing.T) {
	prog := testProgram(t)
	pkgA, err := Emit(prog, "github.com/example/generated", DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	pkgB, err := Emit(prog, "github.com/example/generated", DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	a, err := pkgA.Files["codec.gen.go"].Bytes()
	if err != nil {
		t.Fatal(err)
	}
	b, err := pkgB.Files["codec.gen.go"].Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(string(a), string(b), false)
		t.Errorf("two Emit calls over the same IR produced different source:\n%s", dmp.DiffPrettyText(diffs))
	}
}

func TestEmitEncodeOnly(t *testing.T) {
	prog := testProgram(t)
	pkg, err := Emit(prog, "github.com/example/generated", Options{EmitPack: true, EmitUnpack: false, ProgramVar: "Program"})
	if err != nil {
		t.Fatal(err)
	}
	src, err := pkg.Files["codec.gen.go"].Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(src), "func UnpackTransfer(") {
		t.Errorf("encode-only emission should not produce unpack routines")
	}
}

func TestEmitDisambiguatesCollidingGoNames(t *testing.T) {
	prog, err := ir.Resolve(&abiview.View{
		Structs: []abiview.StructView{
			{Name: "foo_bar", Fields: []abiview.FieldView{{Name: "x", Type: "uint8"}}},
			{Name: "fooBar", Fields: []abiview.FieldView{{Name: "x", Type: "uint8"}}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	pkg, err := Emit(prog, "github.com/example/generated", DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	src, err := pkg.Files["codec.gen.go"].Bytes()
	if err != nil {
		t.Fatalf("generated source did not gofmt cleanly: %v\n%s", err, src)
	}
	// Both ABI names map to the segment "FooBar"; the second gets an
	// underscore suffix so the file still compiles.
	for _, want := range []string{"func PackFooBar(", "func PackFooBar_("} {
		if !strings.Contains(string(src), want) {
			t.Errorf("generated source missing %q", want)
		}
	}
}

func TestEmitEmbeddedSourceResolvesAtInit(t *testing.T) {
	prog := testProgram(t)
	opts := DefaultOptions()
	opts.Source = []byte(`{"structs":[]}`)
	pkg, err := Emit(prog, "github.com/example/generated", opts)
	if err != nil {
		t.Fatal(err)
	}
	src, err := pkg.Files["codec.gen.go"].Bytes()
	if err != nil {
		t.Fatalf("generated source did not gofmt cleanly: %v\n%s", err, src)
	}
	for _, want := range []string{"var abiSource = []byte(", "var Program = mustResolve(abiSource)", "func mustResolve("} {
		if !strings.Contains(string(src), want) {
			t.Errorf("generated source missing %q", want)
		}
	}
}

func TestDebugPrintResolvedProgram(t *testing.T) {
	prog := testProgram(t)
	p := pp.New()
	p.SetExportedOnly(true)
	p.SetColoringEnabled(false)
	out := p.Sprint(prog.Structs.Get("transfer"))
	if out == "" {
		t.Fatal("expected a non-empty pretty-printed representation")
	}
}
