package gen

import "strings"

// ParseSelector parses string s into a package path and short local name.
// A trailing "#Name" selects an explicit local name; otherwise the last
// path segment is used. Examples:
//
//	"io" -> "io", "io"
//	"encoding/json" -> "encoding/json", "json"
//	"encoding/json#dec" -> "encoding/json", "dec"
func ParseSelector(s string) (path, name string) {
	path, name, hasName := strings.Cut(s, "#")
	if !hasName || name == "" {
		if i := strings.LastIndex(path, "/"); i >= 0 && i < len(path)-1 {
			name = path[i+1:]
		} else {
			name = path
		}
	}
	return path, name
}
