// Package naming derives component identifiers from source file names.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Separator splits a file stem into the segments of a component name.
const Separator = "-"

// Stem returns the part of filename before its first dot.
func Stem(filename string) string {
	stem, _, _ := strings.Cut(filename, ".")
	return stem
}

// ComponentName turns a file stem such as "arrow-left" into "ArrowLeft".
// Spaces are dropped, each segment gets an upper-cased first character and
// the rest of the segment is left untouched.
func ComponentName(stem string) string {
	sanitized := strings.ReplaceAll(stem, " ", "")

	var b strings.Builder
	for _, segment := range strings.Split(sanitized, Separator) {
		b.WriteString(capitalize(segment))
	}
	return b.String()
}

func capitalize(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(first)) + s[size:]
}
