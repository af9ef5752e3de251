package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lintExample(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	out := &bytes.Buffer{}
	cmd := newTestRoot(out, &bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestExamples(t *testing.T) {
	t.Run("basic is clean", func(t *testing.T) {
		out, err := lintExample(t, "../examples/basic")
		require.NoError(t, err)
		assert.Empty(t, out)
	})

	t.Run("nested variables", func(t *testing.T) {
		out, err := lintExample(t, "../examples/nested/solution.yaml")
		require.ErrorIs(t, err, errProblemsFound)
		assert.Contains(t, out, `ERROR: missing "variables" key at root on line 3`)
		assert.Contains(t, out, `WARNING: found "variables" key at "settings", should be in root on line 2`)
	})

	t.Run("broken document", func(t *testing.T) {
		out, err := lintExample(t, "--with-context", "../examples/broken/solution.yaml")
		require.ErrorIs(t, err, errProblemsFound)
		assert.Contains(t, out, "ERROR: Syntax error (solution.yaml)")
	})

	t.Run("ignore directives", func(t *testing.T) {
		out, err := lintExample(t, "../examples/ignore")
		require.NoError(t, err)
		assert.Empty(t, out)

		out, err = lintExample(t, "--show-ignored", "../examples/ignore")
		require.NoError(t, err)
		assert.Contains(t, out, "trailing whitespace found on line 4")
		assert.Contains(t, out, "generated manifest")
	})

	t.Run("fixable", func(t *testing.T) {
		original, err := os.ReadFile("../examples/fixable/solution.yaml")
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "solution.yaml")
		require.NoError(t, os.WriteFile(path, original, 0o600))

		out, err := lintExample(t, "fix", path)
		require.NoError(t, err)
		assert.Contains(t, out, "FIXED: trailing whitespace found on line 1")
		assert.Contains(t, out, "FIXED: tab character found on line 3")

		fixed, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t,
			"description: Needs fixing\nvariables:\n  region: eu-west-1  # tabbed comment\nenvironment: {}\nclasses: []\n",
			string(fixed))
	})
}
