// Package markup normalizes whitespace and rebuilds indentation for the
// generated component source.
//
// Indentation is a line-based heuristic over tag openers and closers. It is
// not a parser and can misindent irregular markup.
package markup

import (
	"regexp"
	"strings"
	"unicode"
)

// PropsSpread is the JSX marker that forwards caller props to the root <svg>.
const PropsSpread = "{...props}"

const indentUnit = "  "

var (
	spaceRunRegex   = regexp.MustCompile(` {2,}`)
	semicolonRegex  = regexp.MustCompile(`;+\n`)
	newlineRunRegex = regexp.MustCompile(`\n{2,}`)
	svgOpenRegex    = regexp.MustCompile(`<svg([^>]*?)(/?)>`)
)

// Format returns content with blank lines dropped, whitespace collapsed, the
// props spread injected into the first <svg> tag when missing, and
// indentation rebuilt from tag nesting. The result ends with one newline.
// Format is idempotent.
func Format(content string) string {
	hasProps := strings.Contains(content, PropsSpread)

	text := strings.ReplaceAll(content, "\r\n", "\n")
	text = dropBlankLines(text)
	text = strings.ReplaceAll(text, "\t", indentUnit)
	text = spaceRunRegex.ReplaceAllString(text, indentUnit)
	text = semicolonRegex.ReplaceAllString(text, ";\n")
	text = newlineRunRegex.ReplaceAllString(text, "\n\n")

	if !hasProps {
		text = injectProps(text)
	}

	return strings.TrimSpace(indent(text)) + "\n"
}

func dropBlankLines(text string) string {
	var kept []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		kept = append(kept, strings.TrimRightFunc(line, unicode.IsSpace))
	}
	return strings.Join(kept, "\n")
}

// injectProps adds the props spread to the first <svg> opening tag, keeping
// a self-closing slash in place.
func injectProps(text string) string {
	loc := svgOpenRegex.FindStringSubmatchIndex(text)
	if loc == nil {
		return text
	}
	attrs := strings.TrimRight(text[loc[2]:loc[3]], " ")
	slash := text[loc[4]:loc[5]]
	return text[:loc[0]] + "<svg" + attrs + " " + PropsSpread + slash + ">" + text[loc[1]:]
}

func indent(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	level := 0

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "</") && level > 0 {
			level--
		}

		out = append(out, strings.Repeat(indentUnit, level)+trimmed)

		if opensTag(trimmed) {
			level++
		}
	}

	return strings.Join(out, "\n")
}

func opensTag(line string) bool {
	if !strings.HasPrefix(line, "<") || strings.HasPrefix(line, "</") {
		return false
	}
	return !strings.Contains(line, "/>") && !strings.HasSuffix(line, "?>")
}
