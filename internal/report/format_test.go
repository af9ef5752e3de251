package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/solint/internal/model"
)

func sampleProblem() m.Problem {
	return m.Problem{
		Check:    "variables",
		Kind:     m.KindError,
		Message:  "missing key",
		Line:     3,
		Column:   5,
		Path:     "manifests/fail.yaml",
		FullPath: "/repo/manifests/fail.yaml",
		FileName: "fail.yaml",
		Reason:   "legacy",
	}
}

func TestFormat_DefaultTemplate(t *testing.T) {
	assert.Equal(t, "ERROR: missing key on line 3", Format(sampleProblem(), DefaultTemplate))
}

func TestFormat_Placeholders(t *testing.T) {
	p := sampleProblem()

	tests := []struct {
		template string
		want     string
	}{
		{"%{filename}", "fail.yaml"},
		{"%{path}", "manifests/fail.yaml"},
		{"%{fullpath}", "/repo/manifests/fail.yaml"},
		{"%{line}", "3"},
		{"%{linenumber}", "3"},
		{"%{column}", "5"},
		{"%{kind}", "error"},
		{"%{KIND}", "ERROR"},
		{"%{check}", "variables"},
		{"%{message}", "missing key"},
		{"%{reason}", "legacy"},
		{"%{bogus} %{line}", "%{bogus} 3"},
		{PathPrefix + DefaultTemplate, "manifests/fail.yaml - ERROR: missing key on line 3"},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(p, tt.template))
		})
	}
}

func TestUsesDeprecatedPlaceholder(t *testing.T) {
	assert.True(t, UsesDeprecatedPlaceholder("%{path}:%{linenumber}"))
	assert.False(t, UsesDeprecatedPlaceholder(DefaultTemplate))
}

func TestLocateToken_FirstMatch(t *testing.T) {
	raw := "a: 1\nfoo:\n  classes: x\nbar:\n  classes: y\n"

	line, column, ok := LocateToken(raw, "classes")
	require.True(t, ok)
	assert.Equal(t, 3, line)
	assert.Equal(t, 3, column)
}

func TestLocateToken_CountsCharacters(t *testing.T) {
	line, column, ok := LocateToken("é: token\n", "token")
	require.True(t, ok)
	assert.Equal(t, 1, line)
	assert.Equal(t, 4, column)
}

func TestLocateToken_Missing(t *testing.T) {
	_, _, ok := LocateToken("a: 1\n", "zzz")
	assert.False(t, ok)

	_, _, ok = LocateToken("a: 1\n", "")
	assert.False(t, ok)
}

func TestResolveLocation(t *testing.T) {
	raw := "foo:\n  bar: 1\n"

	t.Run("unknown position resolved from token", func(t *testing.T) {
		p := m.Problem{Line: m.UnknownPosition, Column: m.UnknownPosition, Token: "bar"}
		got := ResolveLocation(p, raw)
		assert.Equal(t, 2, got.Line)
		assert.Equal(t, 3, got.Column)
	})

	t.Run("known position kept", func(t *testing.T) {
		p := m.Problem{Line: 1, Column: 1, Token: "bar"}
		assert.Equal(t, p, ResolveLocation(p, raw))
	})

	t.Run("unresolvable token kept", func(t *testing.T) {
		p := m.Problem{Line: m.UnknownPosition, Column: m.UnknownPosition, Token: "classes"}
		assert.Equal(t, p, ResolveLocation(p, raw))
	})
}
