package adapter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/solint/internal/model"
)

func TestLocalDocumentFSAdapter_ReadFile(t *testing.T) {
	adapter := NewLocalDocumentFSAdapter()
	ctx := context.Background()

	root := t.TempDir()
	path := filepath.Join(root, "site.yaml")
	writeTestFile(t, path, "classes: []\n")

	content, err := adapter.ReadFile(ctx, m.Path(path))
	require.NoError(t, err)
	assert.Equal(t, "classes: []\n", string(content))

	_, err = adapter.ReadFile(ctx, m.Path(filepath.Join(root, "missing.yaml")))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestLocalDocumentFSAdapter_Exists(t *testing.T) {
	adapter := NewLocalDocumentFSAdapter()
	ctx := context.Background()

	root := t.TempDir()
	path := filepath.Join(root, "site.yaml")
	writeTestFile(t, path, "a: 1\n")

	ok, err := adapter.Exists(ctx, m.Path(path))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = adapter.Exists(ctx, m.Path(filepath.Join(root, "nope.yaml")))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLocalDocumentFSAdapter_WriteFile(t *testing.T) {
	adapter := NewLocalDocumentFSAdapter()
	ctx := context.Background()

	root := t.TempDir()
	path := filepath.Join(root, "site.yaml")
	writeTestFile(t, path, "a: 1   \n")

	require.NoError(t, adapter.WriteFile(ctx, m.Path(path), []byte("a: 1\n"), 0o644))

	assert.Equal(t, "a: 1\n", string(readFileBytes(t, path)))
}

func TestLocalDocumentFSAdapter_Collect(t *testing.T) {
	t.Run("directory is searched recursively for manifests", func(t *testing.T) {
		adapter := NewLocalDocumentFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "a.yaml"), "a: 1\n")
		writeTestFile(t, filepath.Join(root, "notes.txt"), "skip me\n")

		nested := filepath.Join(root, "nested")
		mustMkdir(t, nested)
		writeTestFile(t, filepath.Join(nested, "b.yml"), "b: 2\n")

		sources, err := adapter.Collect(context.Background(), []m.Path{m.Path(root)})
		require.NoError(t, err)
		require.Len(t, sources, 2)

		assert.Equal(t, m.Path(filepath.Join(root, "a.yaml")), sources[0].FullPath)
		assert.Equal(t, "a.yaml", sources[0].FileName)
		assert.Equal(t, "a: 1\n", sources[0].Raw)
		assert.Equal(t, m.Path(filepath.Join(nested, "b.yml")), sources[1].FullPath)
	})

	t.Run("explicit files keep the given path and drop duplicates", func(t *testing.T) {
		adapter := NewLocalDocumentFSAdapter()

		root := t.TempDir()
		path := filepath.Join(root, "manifest.txt")
		writeTestFile(t, path, "a: 1\n")

		sources, err := adapter.Collect(context.Background(), []m.Path{m.Path(path), m.Path(path)})
		require.NoError(t, err)
		require.Len(t, sources, 1)
		assert.Equal(t, m.Path(path), sources[0].Path)
	})

	t.Run("missing root reports not found", func(t *testing.T) {
		adapter := NewLocalDocumentFSAdapter()

		_, err := adapter.Collect(context.Background(), []m.Path{m.Path(filepath.Join(t.TempDir(), "missing"))})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("no roots", func(t *testing.T) {
		adapter := NewLocalDocumentFSAdapter()

		sources, err := adapter.Collect(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, sources)
	})
}

func TestNormalizeRootPath(t *testing.T) {
	display, abs, err := normalizeRootPath("configs/...")
	require.NoError(t, err)
	assert.Equal(t, "configs", display)
	assert.True(t, filepath.IsAbs(abs))

	display, _, err = normalizeRootPath("")
	require.NoError(t, err)
	assert.Equal(t, ".", display)
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}

func readFileBytes(t *testing.T, path string) []byte {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)

	return content
}
