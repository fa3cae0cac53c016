// Package ignore loads ignore rules from a .gitignore-style file. Each line
// supplies one glob pattern source string, matched against absolute path
// strings assembled by the caller.
package ignore

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/drgrep/internal/glob"
)

// IgnoreFileName is the default rule file read from the search root.
const IgnoreFileName = ".gitignore"

// Rules is a compiled set of ignore patterns for one search root.
type Rules struct {
	patterns []*glob.Pattern
	entries  []string
}

// Load reads dir's ignore file and compiles one glob per non-blank,
// non-comment line, anchored under dir. The .git directory is always
// ignored. A missing or unreadable ignore file yields just that built-in
// rule; loading never fails.
func Load(dir string) *Rules {
	return LoadFile(dir, filepath.Join(dir, IgnoreFileName))
}

// LoadFile is Load with an explicit rule file path.
func LoadFile(dir, path string) *Rules {
	r := &Rules{}

	if content, err := os.ReadFile(path); err == nil {
		for _, line := range strings.Split(string(content), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			r.patterns = append(r.patterns, glob.New(dir+"/"+line))
			r.entries = append(r.entries, line)
		}
	}

	r.patterns = append(r.patterns, glob.New(dir+"/.git/**"))
	return r
}

// Ignored reports whether path is excluded: true when any compiled pattern
// matches it, or when any raw rule line occurs as a substring of it.
func (r *Rules) Ignored(path string) bool {
	for _, p := range r.patterns {
		if p.Matches(path) {
			return true
		}
	}
	for _, e := range r.entries {
		if strings.Contains(path, e) {
			return true
		}
	}
	return false
}

// Len returns the number of loaded rules, including the built-in .git rule.
func (r *Rules) Len() int {
	return len(r.patterns)
}
