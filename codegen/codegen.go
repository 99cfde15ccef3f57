// Package codegen is the emitter: it walks a resolved [ir.Program] and
// writes a Go source package exposing Pack<Name>/Unpack<Name> for every
// struct, variant, and alias, plus a dispatch table. The wire-format and
// modifier-chain semantics themselves live in [codec], which every
// emitted function calls into; the emitter's job is producing stable,
// gofmt'd, deterministically-ordered Go source that binds a name to that
// shared runtime, not re-deriving the format per type.
package codegen

import (
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/openrepublic/go-jitabi/internal/buildinfo"
	"github.com/openrepublic/go-jitabi/internal/gen"
	"github.com/openrepublic/go-jitabi/internal/logging"
	"github.com/openrepublic/go-jitabi/internal/stringio"
	"github.com/openrepublic/go-jitabi/ir"
)

// Options controls which directions of code the emitter produces, per
// the host boundary's independent encode/decode build flags.
type Options struct {
	EmitPack   bool
	EmitUnpack bool

	// ProgramVar is the name of the generated package-level variable
	// holding the *ir.Program the per-name routines dispatch through.
	ProgramVar string

	// Source is the ABI document the program was resolved from. When
	// non-empty it is embedded in the generated file and re-resolved at
	// package init time, making the generated package self-contained.
	// When empty the generated file declares ProgramVar unassigned and
	// the importing host must populate it before calling any routine.
	Source []byte

	// Logger receives per-type emission progress. Nil discards it.
	Logger *slog.Logger
}

// DefaultOptions emits both directions.
func DefaultOptions() Options {
	return Options{EmitPack: true, EmitUnpack: true, ProgramVar: "Program"}
}

// Emit generates a single Go package from prog: one file declaring the
// resolved dispatch program, one function pair per named type, and a
// dispatch table tying names to functions. Emission order follows
// [ir.Program.AllTypes], which is itself insertion-ordered, so repeated
// calls over the same IR produce byte-identical output.
func Emit(prog *ir.Program, pkgPath string, opts Options) (*gen.Package, error) {
	log := opts.Logger
	if log == nil {
		log = logging.DiscardLogger()
	}
	pkg := gen.NewPackage(pkgPath)
	f := pkg.File("codec.gen.go")
	f.Header = fmt.Sprintf("// Code generated by jitabi %s. DO NOT EDIT.\n\n", buildinfo.Version)

	codecPkg := f.Import("github.com/openrepublic/go-jitabi/codec")
	irPkg := f.Import("github.com/openrepublic/go-jitabi/ir")
	valuePkg := f.Import("github.com/openrepublic/go-jitabi/value")

	if len(opts.Source) > 0 {
		abiviewPkg := f.Import("github.com/openrepublic/go-jitabi/abiview")
		emitf(f, "// abiSource is the ABI document this package was generated from.\n")
		emitf(f, "var abiSource = []byte(%q)\n\n", opts.Source)
		emitf(f, "var %s = mustResolve(abiSource)\n\n", opts.ProgramVar)
		emitf(f, "func mustResolve(src []byte) *%s.Program {\n", irPkg)
		emitf(f, "\tview, err := %s.DecodeJSON(src)\n", abiviewPkg)
		emitf(f, "\tif err != nil {\n\t\tpanic(\"decoding embedded ABI: \" + err.Error())\n\t}\n")
		emitf(f, "\tprog, err := %s.Resolve(view)\n", irPkg)
		emitf(f, "\tif err != nil {\n\t\tpanic(\"resolving embedded ABI: \" + err.Error())\n\t}\n")
		emitf(f, "\treturn prog\n}\n\n")
	} else {
		emitf(f, "// %s must be assigned by the importing host before any routine in\n", opts.ProgramVar)
		emitf(f, "// this package is called.\n")
		emitf(f, "var %s *%s.Program\n\n", opts.ProgramVar, irPkg)
	}

	var decls []ir.TypeDecl
	var names []string
	for decl := range prog.AllTypes() {
		decls = append(decls, decl)
		names = append(names, decl.TypeName())
	}

	// Distinct ABI names can map to the same Go identifier segment
	// ("foo_bar" and "fooBar" both become "FooBar"), so each segment is
	// made unique up front, in declaration order, before any function
	// using it is rendered.
	used := make(map[string]bool, len(names))
	fns := make([]string, len(names))
	for i, name := range names {
		fn := gen.UniqueName(goFuncName(name), func(s string) bool { return used[s] })
		used[fn] = true
		fns[i] = fn
	}

	// Rendering each type's wrapper functions is independent of every
	// other type, so it happens concurrently; only the final append to
	// f is sequential, which is what keeps output byte-identical across
	// runs regardless of goroutine scheduling order.
	bodies := make([]string, len(names))
	var g errgroup.Group
	for i, decl := range decls {
		i, decl := i, decl
		g.Go(func() error {
			bodies[i] = renderType(decl, fns[i], codecPkg, valuePkg, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for i, body := range bodies {
		f.WriteString(body)
		log.Info("emitted routines", "type", names[i])
	}

	writeDispatchTable(f, names, fns, codecPkg, valuePkg, opts)

	return pkg, nil
}

// renderType produces the Pack<Name>/Unpack<Name> wrapper source for one
// declared type, independent of any [gen.File] so it can be computed
// concurrently with its siblings.
func renderType(decl ir.TypeDecl, fn, codecPkg, valuePkg string, opts Options) string {
	name := decl.TypeName()
	var out string
	if opts.EmitPack {
		out += gen.FormatDocComment(fmt.Sprintf("Pack%s encodes a %s value of %s.", fn, declKind(decl), name))
		out += fmt.Sprintf("func Pack%s(v %s.Value) ([]byte, error) {\n", fn, valuePkg)
		out += fmt.Sprintf("\treturn %s.PackAlloc(%s, %q, v)\n}\n\n", codecPkg, opts.ProgramVar, name)
	}
	if opts.EmitUnpack {
		out += gen.FormatDocComment(fmt.Sprintf("Unpack%s decodes a %s value of %s.", fn, declKind(decl), name))
		out += fmt.Sprintf("func Unpack%s(buf []byte) (%s.Value, int, error) {\n", fn, valuePkg)
		out += fmt.Sprintf("\treturn %s.Unpack(%s, %q, buf)\n}\n\n", codecPkg, opts.ProgramVar, name)
	}
	return out
}

// declKind names the broad category of decl for the doc comments above
// its generated Pack/Unpack wrappers.
func declKind(decl ir.TypeDecl) string {
	switch decl.(type) {
	case *ir.Struct:
		return "struct"
	case *ir.Variant:
		return "variant"
	case *ir.Alias:
		return "type alias"
	default:
		return "type"
	}
}

// emitf is fmt.Fprintf for a [gen.File], which implements [stringio.Writer]
// (WriteString) rather than io.Writer.
func emitf(f *gen.File, format string, args ...any) {
	f.WriteString(fmt.Sprintf(format, args...))
}

func writeDispatchTable(f *gen.File, names, fns []string, codecPkg, valuePkg string, opts Options) {
	stringio.Write(f,
		"// Dispatch maps every declared type name to its generated functions.\n",
		"var Dispatch = map[string]struct {\n",
	)
	if opts.EmitPack {
		emitf(f, "\tPack func(%s.Value) ([]byte, error)\n", valuePkg)
	}
	if opts.EmitUnpack {
		emitf(f, "\tUnpack func([]byte) (%s.Value, int, error)\n", valuePkg)
	}
	f.WriteString("}{\n")
	for i, name := range names {
		fn := fns[i]
		emitf(f, "\t%q: {", name)
		if opts.EmitPack {
			emitf(f, "Pack: Pack%s, ", fn)
		}
		if opts.EmitUnpack {
			emitf(f, "Unpack: Unpack%s, ", fn)
		}
		f.WriteString("},\n")
	}
	f.WriteString("}\n\n")

	if opts.EmitPack {
		f.WriteString("// Pack encodes v as the named type, recognizing a trailing \"[]\" on\n// typeName as a top-level array.\n")
		emitf(f, "func Pack(typeName string, v %s.Value) ([]byte, error) {\n", valuePkg)
		emitf(f, "\treturn %s.PackAlloc(%s, typeName, v)\n}\n\n", codecPkg, opts.ProgramVar)
	}
	if opts.EmitUnpack {
		f.WriteString("// Unpack decodes buf as the named type, recognizing a trailing \"[]\" on\n// typeName as a top-level array.\n")
		emitf(f, "func Unpack(typeName string, buf []byte) (%s.Value, int, error) {\n", valuePkg)
		emitf(f, "\treturn %s.Unpack(%s, typeName, buf)\n}\n\n", codecPkg, opts.ProgramVar)
	}
}
