package gen

import "strings"

// DocCommentPrefix is the prefix applied to every line of a formatted
// doc comment.
const DocCommentPrefix = "//"

// LineLength is the target maximum line length for wrapped doc comments.
const LineLength = 77

// FormatDocComment wraps docs into one or more "//"-prefixed lines no
// longer than [LineLength], suitable for emission directly above a Go
// declaration.
func FormatDocComment(docs string) string {
	if docs == "" {
		return ""
	}
	var b strings.Builder
	lineLen := 0
	for _, word := range strings.Fields(docs) {
		if lineLen == 0 {
			b.WriteString(DocCommentPrefix)
			lineLen = len(DocCommentPrefix)
		} else if lineLen+1+len(word) > LineLength {
			b.WriteByte('\n')
			b.WriteString(DocCommentPrefix)
			lineLen = len(DocCommentPrefix)
		}
		b.WriteByte(' ')
		b.WriteString(word)
		lineLen += len(word) + 1
	}
	b.WriteByte('\n')
	return b.String()
}
