// Package rewrite turns raw SVG markup into JSX-compatible attribute syntax.
//
// The rules run in a fixed order over the whole text. There is no escaping:
// matching text inside comments, attribute values or path data is rewritten
// as well. In particular the dashed-word fold also hits numeric tokens such
// as "10-5" in path data.
package rewrite

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const currentColor = "currentColor"

// Rule is one named text transform in the rewrite pipeline.
type Rule struct {
	Name  string
	Apply func(string) string
}

var (
	dashedWordRegex = regexp.MustCompile(`(\w+)-(\w+)`)
	fillRegex       = regexp.MustCompile(`fill="([^"\s]+)"`)
	strokeHexRegex  = regexp.MustCompile(`stroke="#([^"\s]+)"`)
	strokeRegex     = regexp.MustCompile(`stroke="([^"\s]+)"`)
)

// attributeRenames maps SVG attribute spellings to their JSX names.
var attributeRenames = []struct{ from, to string }{
	{"class=", "className="},
	{"clip-rule=", "clipRule="},
	{"fill-rule=", "fillRule="},
	{"stroke-linecap=", "strokeLinecap="},
	{"stroke-linejoin=", "strokeLinejoin="},
	{"stroke-width=", "strokeWidth="},
}

// Rules is the ordered rewrite pipeline applied by Apply.
var Rules = []Rule{
	{Name: "fold dashed words", Apply: foldDashedWords},
	{Name: "normalize fill", Apply: normalizeFill},
	{Name: "normalize stroke hex", Apply: normalizeStrokeHex},
	{Name: "normalize stroke", Apply: normalizeStroke},
	{Name: "rename attributes", Apply: renameAttributes},
}

// Apply runs every rule in Rules over markup.
func Apply(markup string) string {
	for _, rule := range Rules {
		markup = rule.Apply(markup)
	}
	return markup
}

func foldDashedWords(s string) string {
	return dashedWordRegex.ReplaceAllStringFunc(s, func(match string) string {
		groups := dashedWordRegex.FindStringSubmatch(match)
		return groups[1] + upperFirst(groups[2])
	})
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func normalizeFill(s string) string {
	return fillRegex.ReplaceAllStringFunc(s, func(match string) string {
		if fillRegex.FindStringSubmatch(match)[1] == "none" {
			return match
		}
		return `fill="` + currentColor + `"`
	})
}

func normalizeStrokeHex(s string) string {
	return strokeHexRegex.ReplaceAllString(s, `stroke="`+currentColor+`"`)
}

func normalizeStroke(s string) string {
	return strokeRegex.ReplaceAllString(s, `stroke="`+currentColor+`"`)
}

func renameAttributes(s string) string {
	for _, rename := range attributeRenames {
		s = strings.ReplaceAll(s, rename.from, rename.to)
	}
	return s
}
