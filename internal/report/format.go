// Package report turns problems into text lines.
package report

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	m "github.com/mouse-blink/solint/internal/model"
)

const (
	// DefaultTemplate is the line template used when none is configured.
	DefaultTemplate = "%{KIND}: %{message} on line %{line}"
	// PathPrefix is prepended to the default template for several files.
	PathPrefix = "%{path} - "

	deprecatedLineNumber = "%{linenumber}"
)

var (
	placeholderPattern = regexp.MustCompile(`%\{(\w+)\}`)
	upper              = cases.Upper(language.Und)
)

// UsesDeprecatedPlaceholder reports whether template contains %{linenumber}.
func UsesDeprecatedPlaceholder(template string) bool {
	return strings.Contains(template, deprecatedLineNumber)
}

// LocateToken returns the 1-based position of the first occurrence of token
// in raw. Columns count characters.
func LocateToken(raw, token string) (line, column int, ok bool) {
	if token == "" {
		return 0, 0, false
	}

	for i, text := range m.SplitLines(raw) {
		if idx := strings.Index(text, token); idx >= 0 {
			return i + 1, utf8.RuneCountInString(text[:idx]) + 1, true
		}
	}

	return 0, 0, false
}

// ResolveLocation fills in an unknown line and column from the problem token.
// Located problems and unresolvable tokens are returned unchanged.
func ResolveLocation(p m.Problem, raw string) m.Problem {
	if p.Located() {
		return p
	}

	if line, column, ok := LocateToken(raw, p.Token); ok {
		p.Line = line
		p.Column = column
	}

	return p
}

// Format renders p with template. Unknown placeholders are left as written.
func Format(p m.Problem, template string) string {
	return format(p, template, nil)
}

func format(p m.Problem, template string, decorate func(m.Kind, string) string) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(ph string) string {
		name := ph[2 : len(ph)-1]

		switch name {
		case "filename":
			return p.FileName
		case "path":
			return string(p.Path)
		case "fullpath":
			return string(p.FullPath)
		case "line", "linenumber":
			return strconv.Itoa(p.Line)
		case "column":
			return strconv.Itoa(p.Column)
		case "kind":
			return string(p.Kind)
		case "KIND":
			kind := upper.String(string(p.Kind))
			if decorate != nil {
				return decorate(p.Kind, kind)
			}

			return kind
		case "check":
			return string(p.Check)
		case "message":
			return p.Message
		case "reason":
			return p.Reason
		default:
			return ph
		}
	})
}
