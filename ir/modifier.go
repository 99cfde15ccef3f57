package ir

import "strings"

// parseModifierChain splits a type-expression string such as "uint8[]?"
// into its stem name and modifier chain. Suffixes are peeled from the
// right, and each one found is the next-outermost wrapper still to be
// applied, so appending them in discovery order yields an outermost-first
// chain: "T[]?" peels "?" first (the field is an optional array) then
// "[]" (array of T), giving [optional, array]. "T?[]" peels "[]" first
// (an array of optionals) then "?", giving [array, optional].
func parseModifierChain(expr string) (stem string, mods []Modifier) {
	for {
		switch {
		case strings.HasSuffix(expr, "[]"):
			mods = append(mods, ModArray)
			expr = strings.TrimSuffix(expr, "[]")
		case strings.HasSuffix(expr, "?"):
			mods = append(mods, ModOptional)
			expr = strings.TrimSuffix(expr, "?")
		case strings.HasSuffix(expr, "$"):
			mods = append(mods, ModExtension)
			expr = strings.TrimSuffix(expr, "$")
		default:
			return expr, mods
		}
	}
}
