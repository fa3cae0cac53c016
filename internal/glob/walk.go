package glob

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindFiles walks the tree under baseDir depth-first and returns the paths
// of every entry whose rendered path matches the pattern. Sibling order
// follows the directory read order, which os.ReadDir keeps sorted, so
// results are deterministic. With an expanded alternative set the tree is
// walked once per alternative and results are de-duplicated by path.
//
// A directory that cannot be read aborts the walk of that subtree and the
// error propagates to the caller; no partial result is returned.
func (p *Pattern) FindFiles(baseDir string) ([]string, error) {
	if len(p.alternatives) > 0 {
		var results []string
		seen := make(map[string]bool)
		for _, alt := range p.alternatives {
			paths, err := New(alt).FindFiles(baseDir)
			if err != nil {
				return nil, err
			}
			for _, path := range paths {
				if !seen[path] {
					seen[path] = true
					results = append(results, path)
				}
			}
		}
		return results, nil
	}

	var results []string
	if err := p.walk(baseDir, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (p *Pattern) walk(dir string, results *[]string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if p.Matches(path) {
			*results = append(*results, path)
		}

		// Recursion is independent of whether the directory's own
		// path matched.
		if entry.IsDir() {
			if err := p.walk(path, results); err != nil {
				return err
			}
		}
	}

	return nil
}
