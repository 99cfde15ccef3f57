// Package gen provides a small Go source-writing toolkit used by the
// emitter: packages and files that track their own imports, doc-comment
// wrapping, and name scoping so that generated identifiers never collide.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
)

// Package represents a Go package containing zero or more generated files.
type Package struct {
	// Path is the full Go package path, e.g. "github.com/org/repo/gen".
	Path string

	// Name is the short package name, e.g. "gen".
	Name string

	// Files is the set of source files in this package, keyed by file name.
	Files map[string]*File
}

// NewPackage returns a new [Package] for path, deriving the short name
// from the final path segment unless overridden by a "#name" suffix.
func NewPackage(path string) *Package {
	p := &Package{Files: make(map[string]*File)}
	p.Path, p.Name = ParseSelector(path)
	return p
}

// File returns the named [File] in pkg, creating it if necessary.
func (pkg *Package) File(name string) *File {
	if f, ok := pkg.Files[name]; ok {
		return f
	}
	f := &File{
		Name:    name,
		Package: pkg,
		Imports: make(map[string]string),
		Scope:   NewScope(nil),
	}
	pkg.Files[name] = f
	return f
}

// File represents a single generated Go source file.
type File struct {
	Name    string
	Package *Package
	Header  string // leading comment, e.g. a license header, emitted verbatim
	Imports map[string]string
	Scope   Scope
	buf     bytes.Buffer
}

// WriteString appends s to the body of f, implementing [stringio.Writer].
func (f *File) WriteString(s string) (int, error) {
	return f.buf.WriteString(s)
}

// Import registers an import path, optionally under a local name, and
// returns the identifier to use when referencing it in generated code.
func (f *File) Import(path string) string {
	path, name := ParseSelector(path)
	if existing, ok := f.Imports[path]; ok {
		return existing
	}
	local := f.Scope.UniqueName(name)
	f.Imports[path] = local
	return local
}

// HasContent reports whether f has a non-empty body.
func (f *File) HasContent() bool {
	return f.buf.Len() > 0
}

// Bytes returns the gofmt-formatted contents of f: package clause,
// import block, then body. It returns the unformatted source alongside
// a non-nil error if formatting fails, so callers can inspect the cause.
func (f *File) Bytes() ([]byte, error) {
	var out bytes.Buffer
	if f.Header != "" {
		out.WriteString(f.Header)
	}
	fmt.Fprintf(&out, "package %s\n\n", f.Package.Name)
	if len(f.Imports) > 0 {
		out.WriteString("import (\n")
		paths := make([]string, 0, len(f.Imports))
		for path := range f.Imports {
			paths = append(paths, path)
		}
		sort.Strings(paths)
		for _, path := range paths {
			local := f.Imports[path]
			_, name := ParseSelector(path)
			if local == name {
				fmt.Fprintf(&out, "\t%q\n", path)
			} else {
				fmt.Fprintf(&out, "\t%s %q\n", local, path)
			}
		}
		out.WriteString(")\n\n")
	}
	out.Write(f.buf.Bytes())

	formatted, err := format.Source(out.Bytes())
	if err != nil {
		return out.Bytes(), fmt.Errorf("gen: formatting %s: %w", f.Name, err)
	}
	return formatted, nil
}
