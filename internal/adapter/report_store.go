package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/minio/highwayhash"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/solint/internal/model"
)

const indexFileName = "_index.yaml"

var reportHashKey = []byte("solint-report-store-hash-key-32b")

// ReportStore persists and retrieves per-document problem reports.
type ReportStore interface {
	SaveReports(dir m.Path, results []m.FileResult) error
	LoadReports(dir m.Path) ([]m.FileResult, error)
	RegenerateIndex(dir m.Path) error
}

// LocalReportStore writes one YAML file per linted document into a
// directory. File names are a highwayhash of the document's full path so
// re-runs overwrite the previous report of the same document.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

type reportYAML struct {
	Path       m.Path       `yaml:"path"`
	FullPath   m.Path       `yaml:"fullpath"`
	FileName   string       `yaml:"filename"`
	Fixed      bool         `yaml:"fixed,omitempty"`
	Statistics m.Statistics `yaml:"statistics"`
	Problems   []m.Problem  `yaml:"problems"`
}

type indexEntry struct {
	Documents int            `yaml:"documents"`
	Problems  int            `yaml:"problems"`
	ByKind    map[m.Kind]int `yaml:"by_kind"`
	Files     []string       `yaml:"files"`
}

// SaveReports writes a report for every result that has problems. The
// report left by an earlier run for a now clean document is removed.
func (rs *LocalReportStore) SaveReports(dir m.Path, results []m.FileResult) error {
	if err := os.MkdirAll(string(dir), 0o755); err != nil {
		return fmt.Errorf("failed to create reports dir: %w", err)
	}

	for _, result := range results {
		name, err := rs.computeReportHash(result.Source.FullPath)
		if err != nil {
			return err
		}

		target := filepath.Join(string(dir), name+".yaml")

		if len(result.Problems) == 0 {
			if err := os.Remove(target); err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to remove stale report %s: %w", target, err)
			}

			continue
		}

		doc := reportYAML{
			Path:       result.Source.Path,
			FullPath:   result.Source.FullPath,
			FileName:   result.Source.FileName,
			Fixed:      result.Fixed,
			Statistics: result.Statistics,
			Problems:   result.Problems,
		}

		data, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to encode report for %s: %w", result.Source.Path, err)
		}

		if err := os.WriteFile(target, data, 0o600); err != nil {
			return fmt.Errorf("failed to write report %s: %w", target, err)
		}
	}

	return nil
}

// LoadReports reads every report file in dir, sorted by document path.
func (rs *LocalReportStore) LoadReports(dir m.Path) ([]m.FileResult, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", dir, ErrNotFound)
		}

		return nil, fmt.Errorf("failed to read reports dir: %w", err)
	}

	var results []m.FileResult

	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == indexFileName || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(string(dir), entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read report %s: %w", entry.Name(), err)
		}

		var doc reportYAML
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode report %s: %w", entry.Name(), err)
		}

		results = append(results, m.FileResult{
			Source: m.Source{
				Path:     doc.Path,
				FullPath: doc.FullPath,
				FileName: doc.FileName,
			},
			Problems:   doc.Problems,
			Statistics: doc.Statistics,
			Fixed:      doc.Fixed,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Source.Path < results[j].Source.Path
	})

	return results, nil
}

// RegenerateIndex summarises every stored report into _index.yaml.
func (rs *LocalReportStore) RegenerateIndex(dir m.Path) error {
	results, err := rs.LoadReports(dir)
	if err != nil {
		return err
	}

	idx := indexEntry{
		Documents: len(results),
		ByKind:    m.NewStatistics(),
		Files:     make([]string, 0, len(results)),
	}

	for _, result := range results {
		idx.Problems += len(result.Problems)
		idx.Files = append(idx.Files, string(result.Source.Path))

		for _, p := range result.Problems {
			idx.ByKind[p.Kind]++
		}
	}

	data, err := yaml.Marshal(idx)
	if err != nil {
		return fmt.Errorf("failed to encode index: %w", err)
	}

	if err := os.WriteFile(filepath.Join(string(dir), indexFileName), data, 0o600); err != nil {
		return fmt.Errorf("failed to write index: %w", err)
	}

	return nil
}

func (rs *LocalReportStore) computeReportHash(fullPath m.Path) (string, error) {
	hash, err := highwayhash.New64(reportHashKey)
	if err != nil {
		return "", fmt.Errorf("failed to init report hash: %w", err)
	}

	if _, err := hash.Write([]byte(fullPath)); err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", fullPath, err)
	}

	return fmt.Sprintf("%016x", hash.Sum64()), nil
}
