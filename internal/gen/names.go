package gen

// UniqueName appends underscores to name until none of filters match it.
func UniqueName(name string, filters ...func(string) bool) string {
	matches := func(name string) bool {
		for _, f := range filters {
			if f(name) {
				return true
			}
		}
		return false
	}
	for matches(name) {
		name += "_"
	}
	return name
}

// Scope represents a Go identifier namespace, such as a file, struct, or
// function body. Nested scopes defer to their parent to avoid shadowing.
type Scope interface {
	// HasName reports whether name is declared in this scope or a parent.
	HasName(name string) bool

	// UniqueName declares name in this scope, appending underscores if
	// necessary to avoid a collision, and returns the name actually used.
	UniqueName(name string) string
}

type scope struct {
	parent Scope
	names  map[string]bool
}

// NewScope returns a [Scope] nested under parent. If parent is nil, the
// scope is nested under [Reserved].
func NewScope(parent Scope) Scope {
	if parent == nil {
		parent = Reserved()
	}
	return &scope{parent: parent, names: make(map[string]bool)}
}

func (s *scope) HasName(name string) bool {
	return s.names[name] || s.parent.HasName(name)
}

func (s *scope) UniqueName(name string) string {
	name = UniqueName(name, s.HasName)
	s.names[name] = true
	return name
}

type reservedScope struct{}

// Reserved returns the root [Scope] containing Go keywords and
// predeclared identifiers. Its UniqueName method panics; it exists only
// as an immutable parent for [NewScope].
func Reserved() Scope {
	return reservedScope{}
}

func (reservedScope) HasName(name string) bool {
	return keywords[name] || predeclared[name]
}

func (reservedScope) UniqueName(string) string {
	panic("gen: cannot declare a name in the reserved scope")
}

var keywords = map[string]bool{
	"break": true, "default": true, "func": true, "interface": true, "select": true,
	"case": true, "defer": true, "go": true, "map": true, "struct": true,
	"chan": true, "else": true, "goto": true, "package": true, "switch": true,
	"const": true, "fallthrough": true, "if": true, "range": true, "type": true,
	"continue": true, "for": true, "import": true, "return": true, "var": true,
}

var predeclared = map[string]bool{
	"any": true, "bool": true, "byte": true, "comparable": true, "complex64": true, "complex128": true,
	"error": true, "float32": true, "float64": true, "int": true, "int8": true, "int16": true,
	"int32": true, "int64": true, "rune": true, "string": true, "uint": true, "uint8": true,
	"uint16": true, "uint32": true, "uint64": true, "uintptr": true, "true": true, "false": true,
	"iota": true, "nil": true, "append": true, "cap": true, "close": true, "complex": true,
	"copy": true, "delete": true, "imag": true, "len": true, "make": true, "new": true,
	"panic": true, "print": true, "println": true, "real": true, "recover": true,
}
