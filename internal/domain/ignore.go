package domain

import (
	"strings"
	"unicode"

	m "github.com/mouse-blink/solint/internal/model"
	"github.com/mouse-blink/solint/internal/report"
)

const (
	ignoreDirective     = "solint:ignore"
	ignoreFileDirective = "solint:ignore-file"
	reasonSeparator     = "--"
)

type ignoreRule struct {
	all    bool
	names  map[string]struct{}
	reason string
}

func (r ignoreRule) ignores(check m.CheckName) bool {
	if r.all {
		return true
	}

	if len(r.names) == 0 {
		return false
	}

	_, ok := r.names[strings.ToLower(string(check))]

	return ok
}

func (r ignoreRule) empty() bool {
	return !r.all && len(r.names) == 0
}

func mergeIgnoreRule(dst *ignoreRule, src ignoreRule) {
	if dst.reason == "" {
		dst.reason = src.reason
	}

	if src.all {
		dst.all = true
		dst.names = nil

		return
	}

	if dst.all || len(src.names) == 0 {
		return
	}

	if dst.names == nil {
		dst.names = make(map[string]struct{}, len(src.names))
	}

	for name := range src.names {
		dst.names[name] = struct{}{}
	}
}

// parseIgnoreDirective reads a comment body (the text after '#'). It reports
// whether the comment is a directive and whether it covers the whole file.
func parseIgnoreDirective(commentText string) (rule ignoreRule, fileScope bool, ok bool) {
	s := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(commentText), "#"))

	var rest string

	switch {
	case hasDirective(s, ignoreFileDirective):
		rest = strings.TrimPrefix(s, ignoreFileDirective)
		fileScope = true
	case hasDirective(s, ignoreDirective):
		rest = strings.TrimPrefix(s, ignoreDirective)
	default:
		return ignoreRule{}, false, false
	}

	names := rest
	if i := strings.Index(rest, reasonSeparator); i >= 0 {
		names = rest[:i]
		rule.reason = strings.TrimSpace(rest[i+len(reasonSeparator):])
	}

	parts := strings.Split(names, ",")
	rule.names = make(map[string]struct{}, len(parts))

	for _, part := range parts {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}

		rule.names[name] = struct{}{}
	}

	if len(rule.names) == 0 {
		rule.all = true
		rule.names = nil
	}

	return rule, fileScope, true
}

func hasDirective(s, directive string) bool {
	if !strings.HasPrefix(s, directive) {
		return false
	}

	rest := s[len(directive):]

	return rest == "" || rest[0] == ' ' || rest[0] == '\t'
}

type ignoreIndex struct {
	file ignoreRule
	line map[int]ignoreRule
}

func buildIgnoreIndex(raw string) ignoreIndex {
	idx := ignoreIndex{line: make(map[int]ignoreRule)}

	for i, text := range m.SplitLines(raw) {
		offset, found := m.CommentOffset(text)
		if !found {
			continue
		}

		rule, fileScope, ok := parseIgnoreDirective(text[offset:])
		if !ok {
			continue
		}

		if fileScope {
			mergeIgnoreRule(&idx.file, rule)

			continue
		}

		targetLine := i + 1
		if isLeadingComment(text, offset) {
			targetLine++
		}

		current := idx.line[targetLine]
		mergeIgnoreRule(&current, rule)
		idx.line[targetLine] = current
	}

	return idx
}

// apply relabels problems covered by a directive. Problems located only by
// token are matched on the token's first occurrence.
func (idx ignoreIndex) apply(problems []m.Problem, raw string) {
	if idx.file.empty() && len(idx.line) == 0 {
		return
	}

	for i := range problems {
		p := &problems[i]
		if p.Kind == m.KindFixed || p.Kind == m.KindIgnored {
			continue
		}

		rule := idx.file
		if rule.ignores(p.Check) {
			markIgnored(p, rule)

			continue
		}

		line := p.Line
		if !p.Located() {
			if l, _, ok := report.LocateToken(raw, p.Token); ok {
				line = l
			}
		}

		if lineRule, ok := idx.line[line]; ok && lineRule.ignores(p.Check) {
			markIgnored(p, lineRule)
		}
	}
}

func markIgnored(p *m.Problem, rule ignoreRule) {
	p.Kind = m.KindIgnored
	p.Reason = rule.reason
}

func isLeadingComment(line string, offset int) bool {
	for _, r := range line[:offset] {
		if !unicode.IsSpace(r) {
			return false
		}
	}

	return true
}
