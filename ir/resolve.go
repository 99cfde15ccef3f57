package ir

import (
	"github.com/openrepublic/go-jitabi/abiview"
	"github.com/openrepublic/go-jitabi/internal/iterate"
	"github.com/openrepublic/go-jitabi/internal/ordered"
	"github.com/openrepublic/go-jitabi/internal/visitor"
)

// Program is the resolved IR for one ABI: every declared struct, variant,
// and alias, plus the built-in primitives they were resolved against.
// It is read-only once returned by [Resolve].
type Program struct {
	Primitives *ordered.Map[string, *Primitive]
	Structs    *ordered.Map[string, *Struct]
	Variants   *ordered.Map[string, *Variant]
	Aliases    *ordered.Map[string, *Alias]
}

// Lookup resolves name to its declaration, searching primitives, structs,
// variants, and aliases in that order.
func (p *Program) Lookup(name string) (TypeDecl, bool) {
	if prim, ok := p.Primitives.GetOK(name); ok {
		return prim, true
	}
	if s, ok := p.Structs.GetOK(name); ok {
		return s, true
	}
	if v, ok := p.Variants.GetOK(name); ok {
		return v, true
	}
	if a, ok := p.Aliases.GetOK(name); ok {
		return a, true
	}
	return nil, false
}

// AllTypes returns a [sequence] that yields every named declaration in
// the program, in the order used to seed the dispatch table: structs,
// then variants, then aliases, each in their declaration order. The
// sequence stops if yield returns false.
//
// [sequence]: https://github.com/golang/go/issues/61897
func (p *Program) AllTypes() iterate.Seq[TypeDecl] {
	return func(yield func(TypeDecl) bool) {
		var done bool
		yield = iterate.Done(iterate.Once(yield), func() { done = true })
		keys := p.Structs.Keys()
		for i := 0; i < len(keys) && !done; i++ {
			yield(p.Structs.Get(keys[i]))
		}
		keys = p.Variants.Keys()
		for i := 0; i < len(keys) && !done; i++ {
			yield(p.Variants.Get(keys[i]))
		}
		keys = p.Aliases.Keys()
		for i := 0; i < len(keys) && !done; i++ {
			yield(p.Aliases.Get(keys[i]))
		}
	}
}

type resolver struct {
	primitives *ordered.Map[string, *Primitive]
	structs    *ordered.Map[string, *Struct]
	variants   *ordered.Map[string, *Variant]
	aliases    *ordered.Map[string, *Alias]

	// names tracks every declared name, across all four tables, to
	// reject duplicates and to resolve bare stems during field parsing.
	names map[string]TypeDecl

	aliasExprs map[string]string // alias name -> unresolved target expression
}

// Resolve walks an [abiview.View] into a [Program]: every primitive and
// domain alias is registered first, then every user struct, variant, and
// alias name, then field types, base structs, and alias targets are
// resolved against the full name table. Resolution fails fast on the
// first schema error.
func Resolve(view *abiview.View) (*Program, error) {
	r := &resolver{
		primitives: &ordered.Map[string, *Primitive]{},
		structs:    &ordered.Map[string, *Struct]{},
		variants:   &ordered.Map[string, *Variant]{},
		aliases:    &ordered.Map[string, *Alias]{},
		names:      make(map[string]TypeDecl),
		aliasExprs: make(map[string]string),
	}

	for _, p := range builtinPrimitives() {
		r.declare(p.Name, p)
		r.primitives.Set(p.Name, p)
	}

	// Built-in domain aliases decay to an underlying primitive and are
	// resolved immediately since their target is always a primitive name.
	for _, ba := range builtinAliases() {
		stem, ok := r.names[ba.Target]
		if !ok {
			return nil, errUnknownName(ba.Target)
		}
		a := &Alias{Name: ba.Name, Target: &ResolvedType{Stem: stem}}
		r.declare(ba.Name, a)
		r.aliases.Set(ba.Name, a)
	}

	for _, sv := range view.Structs {
		if _, dup := r.names[sv.Name]; dup {
			return nil, errDuplicateName(sv.Name)
		}
		s := &Struct{Name: sv.Name}
		r.declare(sv.Name, s)
		r.structs.Set(sv.Name, s)
	}
	for _, vv := range view.Variants {
		if _, dup := r.names[vv.Name]; dup {
			return nil, errDuplicateName(vv.Name)
		}
		if len(vv.Types) == 0 {
			return nil, errZeroCaseVariant(vv.Name)
		}
		v := &Variant{Name: vv.Name}
		r.declare(vv.Name, v)
		r.variants.Set(vv.Name, v)
	}
	for _, av := range view.Aliases {
		if _, dup := r.names[av.NewTypeName]; dup {
			return nil, errDuplicateName(av.NewTypeName)
		}
		a := &Alias{Name: av.NewTypeName}
		r.declare(av.NewTypeName, a)
		r.aliases.Set(av.NewTypeName, a)
		r.aliasExprs[av.NewTypeName] = av.Type
	}

	for _, av := range view.Aliases {
		target, err := r.resolveAliasTarget(av.NewTypeName, nil)
		if err != nil {
			return nil, err
		}
		r.aliases.Get(av.NewTypeName).Target = target
	}

	for _, sv := range view.Structs {
		s := r.structs.Get(sv.Name)
		if sv.Base != "" {
			baseDecl, ok := r.names[sv.Base]
			if !ok {
				return nil, errUnknownName(sv.Base)
			}
			base, ok := baseDecl.(*Struct)
			if !ok {
				return nil, errBaseNotStruct(sv.Name, sv.Base)
			}
			s.Base = base
		}
		fields := make([]Field, 0, len(sv.Fields))
		for _, fv := range sv.Fields {
			rt, err := r.resolveExpr(fv.Type)
			if err != nil {
				return nil, err
			}
			fields = append(fields, Field{Name: fv.Name, Type: rt})
		}
		s.Fields = fields
		if err := validateExtensionTail(s); err != nil {
			return nil, err
		}
	}

	for _, vv := range view.Variants {
		v := r.variants.Get(vv.Name)
		cases := make([]*ResolvedType, 0, len(vv.Types))
		for _, expr := range vv.Types {
			rt, err := r.resolveExpr(expr)
			if err != nil {
				return nil, errUnresolvedVariantCase(vv.Name, expr, err)
			}
			cases = append(cases, rt)
		}
		v.Cases = cases
	}

	if err := checkInheritanceCycles(r.structs); err != nil {
		return nil, err
	}

	return &Program{
		Primitives: r.primitives,
		Structs:    r.structs,
		Variants:   r.variants,
		Aliases:    r.aliases,
	}, nil
}

func (r *resolver) declare(name string, decl TypeDecl) {
	r.names[name] = decl
}

// resolveExpr parses a type expression's modifier suffix and resolves
// the remaining stem against the name table.
func (r *resolver) resolveExpr(expr string) (*ResolvedType, error) {
	stem, mods := parseModifierChain(expr)
	decl, ok := r.names[stem]
	if !ok {
		return nil, errUnknownName(stem)
	}
	return &ResolvedType{Stem: decl, Modifiers: mods}, nil
}

// resolveAliasTarget resolves the target expression of the alias named
// name, recursively following alias chains. v tracks every alias name
// already on the current chain; a name reached twice on one chain is a
// cycle.
func (r *resolver) resolveAliasTarget(name string, path []string) (*ResolvedType, error) {
	v := r.aliasVisitor(path)
	if v.Visited(name) {
		return nil, errCyclicAlias(append(append([]string{}, path...), name))
	}
	expr, ok := r.aliasExprs[name]
	if !ok {
		// Not a user alias (a built-in domain alias, already resolved,
		// or a direct stem); resolve it as an ordinary expression.
		return r.resolveExpr(name)
	}
	stem, mods := parseModifierChain(expr)
	if stem == name {
		return nil, errCyclicAlias(append(path, name))
	}
	if _, isAlias := r.aliasExprs[stem]; isAlias {
		inner, err := r.resolveAliasTarget(stem, append(path, name))
		if err != nil {
			return nil, err
		}
		return &ResolvedType{Stem: inner.Stem, Modifiers: append(append([]Modifier{}, mods...), inner.Modifiers...)}, nil
	}
	decl, ok := r.names[stem]
	if !ok {
		return nil, errUnknownName(stem)
	}
	return &ResolvedType{Stem: decl, Modifiers: mods}, nil
}

// aliasVisitor returns a [visitor.Visitor] with every name in path
// already marked visited (grey), so a fresh v.Visited(name) call detects
// a name reached a second time on the same chain.
func (r *resolver) aliasVisitor(path []string) visitor.Visitor[string] {
	v := visitor.New[string](func(string) bool { return true })
	for _, p := range path {
		v.Yield(p)
	}
	return v
}

// validateExtensionTail enforces that only the trailing contiguous run
// of a struct's own fields may carry an outermost extension modifier.
func validateExtensionTail(s *Struct) error {
	seenExtension := false
	for _, f := range s.Fields {
		if f.Type.IsExtension() {
			seenExtension = true
			continue
		}
		if seenExtension {
			return errExtensionTail(s.Name, f.Name)
		}
	}
	return nil
}

// checkInheritanceCycles walks every struct's base chain using
// [visitor.New] to detect a base chain that returns to a node already on
// the current path.
func checkInheritanceCycles(structs *ordered.Map[string, *Struct]) error {
	for _, name := range structs.Keys() {
		path := []string{name}
		v := visitor.New[string](func(string) bool { return true })
		v.Yield(name)
		s := structs.Get(name)
		for s.Base != nil {
			if v.Visited(s.Base.Name) {
				return errCyclicInheritance(append(path, s.Base.Name))
			}
			v.Yield(s.Base.Name)
			path = append(path, s.Base.Name)
			s = s.Base
		}
	}
	return nil
}
