package adapter

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// SyntaxError is a parse failure with the position reported by the parser.
// yaml.v3 only reports lines; Column is 1 when no column was given.
type SyntaxError struct {
	Line    int
	Column  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Message)
}

// YAMLAdapter encapsulates YAML parsing so the domain layer works on an
// already-parsed structure and a normalised syntax error.
type YAMLAdapter interface {
	// Parse returns the document node and its decoded generic value. A parse
	// failure is always returned as *SyntaxError.
	Parse(raw string) (*yaml.Node, any, error)
}

// LocalYAMLAdapter provides a concrete YAMLAdapter backed by yaml.v3.
type LocalYAMLAdapter struct{}

// NewLocalYAMLAdapter constructs a LocalYAMLAdapter.
func NewLocalYAMLAdapter() *LocalYAMLAdapter {
	return &LocalYAMLAdapter{}
}

// Parse decodes the first YAML document found in raw.
func (a *LocalYAMLAdapter) Parse(raw string) (*yaml.Node, any, error) {
	var node yaml.Node
	if err := yaml.Unmarshal([]byte(raw), &node); err != nil {
		return nil, nil, toSyntaxError(err)
	}

	if node.Kind == 0 {
		return &node, nil, nil
	}

	// Decoding into a generic value is what rejects duplicate keys.
	var value any
	if err := node.Decode(&value); err != nil {
		return nil, nil, toSyntaxError(err)
	}

	return &node, value, nil
}

var (
	linePattern   = regexp.MustCompile(`line (\d+)`)
	columnPattern = regexp.MustCompile(`column (\d+)`)
	prefixPattern = regexp.MustCompile(`^(yaml: )?(line \d+: )?`)
)

func toSyntaxError(err error) *SyntaxError {
	msg := err.Error()

	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) && len(typeErr.Errors) > 0 {
		msg = typeErr.Errors[0]
	}

	syntaxErr := &SyntaxError{Line: 1, Column: 1, Message: strings.TrimSpace(prefixPattern.ReplaceAllString(msg, ""))}

	if m := linePattern.FindStringSubmatch(msg); m != nil {
		if n, convErr := strconv.Atoi(m[1]); convErr == nil && n > 0 {
			syntaxErr.Line = n
		}
	}

	if m := columnPattern.FindStringSubmatch(msg); m != nil {
		if n, convErr := strconv.Atoi(m[1]); convErr == nil && n > 0 {
			syntaxErr.Column = n
		}
	}

	if syntaxErr.Message == "" {
		syntaxErr.Message = msg
	}

	return syntaxErr
}
