// Package adapter contains parsing, storage and filesystem adapters for the
// solint CLI.
package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/afs"

	m "github.com/mouse-blink/solint/internal/model"
)

// ErrNotFound is returned when a requested document path does not exist.
var ErrNotFound = errors.New("path does not exist")

var manifestExts = map[string]struct{}{
	".yaml": {},
	".yml":  {},
}

// DocumentFSAdapter abstracts the filesystem operations the domain layer
// relies on to load manifests and write fixed ones back. It hides direct
// storage access so the workflow can be tested without touching the disk.
type DocumentFSAdapter interface {
	// Exists reports whether a file or directory exists at path.
	Exists(ctx context.Context, path m.Path) (bool, error)

	// ReadFile loads a file and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// WriteFile replaces the file contents.
	WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error

	// Collect expands the provided roots into manifest sources. Directories
	// are searched recursively for *.yaml and *.yml files; plain files are
	// taken as given regardless of extension.
	Collect(ctx context.Context, roots []m.Path) ([]m.Source, error)
}

// LocalDocumentFSAdapter is the afs-backed DocumentFSAdapter.
type LocalDocumentFSAdapter struct {
	fs afs.Service
}

// NewLocalDocumentFSAdapter constructs a LocalDocumentFSAdapter instance ready
// to be wired into the workflow.
func NewLocalDocumentFSAdapter() *LocalDocumentFSAdapter {
	return &LocalDocumentFSAdapter{fs: afs.New()}
}

// Exists reports whether path exists.
func (a *LocalDocumentFSAdapter) Exists(ctx context.Context, path m.Path) (bool, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return false, err
	}

	return a.fs.Exists(ctx, abs)
}

// ReadFile loads the file at path.
func (a *LocalDocumentFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	ok, err := a.Exists(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
	}

	abs, err := filepath.Abs(string(path))
	if err != nil {
		return nil, err
	}

	return a.fs.DownloadWithURL(ctx, abs)
}

// WriteFile uploads content to path, replacing what was there.
func (a *LocalDocumentFSAdapter) WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return err
	}

	if err := a.fs.Upload(ctx, abs, perm, bytes.NewReader(content)); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// Collect expands roots into sources, dropping duplicates by absolute path.
func (a *LocalDocumentFSAdapter) Collect(ctx context.Context, roots []m.Path) ([]m.Source, error) {
	if len(roots) == 0 {
		return []m.Source{}, nil
	}

	seen := make(map[string]struct{})

	var sources []m.Source

	for _, root := range roots {
		display, abs, err := normalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		ok, err := a.Exists(ctx, m.Path(abs))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !ok {
			return nil, fmt.Errorf("%s: %w", root, ErrNotFound)
		}

		object, err := a.fs.Object(ctx, abs)
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		files := []string{display}
		if object.IsDir() {
			files, err = findManifests(display)
			if err != nil {
				return nil, err
			}
		}

		for _, file := range files {
			source, err := a.load(ctx, file)
			if err != nil {
				return nil, err
			}

			if _, exists := seen[string(source.FullPath)]; exists {
				continue
			}

			seen[string(source.FullPath)] = struct{}{}
			sources = append(sources, source)
		}
	}

	return sources, nil
}

func (a *LocalDocumentFSAdapter) load(ctx context.Context, path string) (m.Source, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return m.Source{}, err
	}

	content, err := a.ReadFile(ctx, m.Path(abs))
	if err != nil {
		return m.Source{}, err
	}

	return m.Source{
		Path:     m.Path(path),
		FullPath: m.Path(abs),
		FileName: filepath.Base(path),
		Raw:      string(content),
	}, nil
}

// findManifests walks root in lexical order and returns every manifest file.
func findManifests(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		if _, ok := manifestExts[strings.ToLower(filepath.Ext(path))]; ok {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}

	return files, nil
}

// normalizeRootPath returns the display form of root (with ~ expanded and a
// trailing /... removed) together with its absolute form.
func normalizeRootPath(root string) (string, string, error) {
	rootStr := strings.TrimSuffix(root, "/...")

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", "", err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	abs, err := filepath.Abs(rootStr)
	if err != nil {
		return "", "", err
	}

	return rootStr, abs, nil
}
