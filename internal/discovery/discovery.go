// Package discovery finds profile snapshot files under a root directory.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns are the glob patterns used to locate snapshot files.
// Patterns overlap; matches are deduplicated by relative path.
var DefaultPatterns = []string{
	"snapshots/**/*.json",
	"snapshots/**/*.yaml",
	"snapshots/**/*.yml",
	"*.profile.json",
	"*.profile.yaml",
	"*.profile.yml",
}

// File represents a discovered snapshot file.
type File struct {
	Path    string
	RelPath string
	Size    int64
}

// FileDiscovery manages snapshot discovery for one root directory.
type FileDiscovery struct {
	rootPath string
	patterns []string
}

// NewFileDiscovery creates a FileDiscovery using the default patterns.
func NewFileDiscovery(rootPath string) *FileDiscovery {
	return &FileDiscovery{rootPath: rootPath, patterns: DefaultPatterns}
}

// NewFileDiscoveryWithPatterns creates a FileDiscovery with custom
// patterns, used by tests and future config overrides.
func NewFileDiscoveryWithPatterns(rootPath string, patterns []string) *FileDiscovery {
	return &FileDiscovery{rootPath: rootPath, patterns: patterns}
}

// DiscoverSnapshots returns every snapshot file under the root, sorted
// by relative path for stable output ordering.
func (fd *FileDiscovery) DiscoverSnapshots() ([]File, error) {
	seen := make(map[string]File)

	for _, pattern := range fd.patterns {
		matches, err := doublestar.Glob(os.DirFS(fd.rootPath), pattern)
		if err != nil {
			return nil, fmt.Errorf("error evaluating pattern %s: %w", pattern, err)
		}

		for _, match := range matches {
			if _, ok := seen[match]; ok {
				continue
			}
			fullPath := filepath.Join(fd.rootPath, match)
			info, err := os.Stat(fullPath)
			if err != nil || info.IsDir() {
				continue
			}
			seen[match] = File{
				Path:    fullPath,
				RelPath: match,
				Size:    info.Size(),
			}
		}
	}

	files := make([]File, 0, len(seen))
	for _, f := range seen {
		files = append(files, f)
	}
	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })

	return files, nil
}
