package ir

import "fmt"

// ResolveError is a schema error raised while building the IR from an
// ABI view. The whole ABI is rejected when any is returned.
type ResolveError struct {
	Kind string
	Msg  string
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("ir: %s: %s", e.Kind, e.Msg)
}

func errUnknownName(name string) error {
	return &ResolveError{Kind: "unknown-name", Msg: fmt.Sprintf("unresolved type name %q", name)}
}

func errCyclicAlias(path []string) error {
	return &ResolveError{Kind: "cyclic-alias", Msg: fmt.Sprintf("alias cycle: %v", path)}
}

func errCyclicInheritance(path []string) error {
	return &ResolveError{Kind: "cyclic-inheritance", Msg: fmt.Sprintf("inheritance cycle: %v", path)}
}

func errBaseNotStruct(structName, baseName string) error {
	return &ResolveError{Kind: "base-not-struct", Msg: fmt.Sprintf("%s declares base %q, which is not a struct", structName, baseName)}
}

func errUnresolvedVariantCase(variantName, caseExpr string, cause error) error {
	return &ResolveError{Kind: "unresolved-variant-case", Msg: fmt.Sprintf("%s case %q: %v", variantName, caseExpr, cause)}
}

func errZeroCaseVariant(name string) error {
	return &ResolveError{Kind: "zero-case-variant", Msg: fmt.Sprintf("variant %q declares no cases", name)}
}

func errExtensionTail(structName, fieldName string) error {
	return &ResolveError{Kind: "extension-tail", Msg: fmt.Sprintf("%s.%s: extension field followed by a non-extension field", structName, fieldName)}
}

func errDuplicateName(name string) error {
	return &ResolveError{Kind: "duplicate-name", Msg: fmt.Sprintf("name %q declared more than once", name)}
}
