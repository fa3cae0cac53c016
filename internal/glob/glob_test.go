package glob

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestSimpleLiterals(t *testing.T) {
	p := New("hello")
	if !p.Matches("hello") {
		t.Error("hello should match hello")
	}
	if p.Matches("world") || p.Matches("hello world") {
		t.Error("hello should match only hello")
	}
}

func TestSingleWildcard(t *testing.T) {
	p := New("h?llo")
	if !p.Matches("hello") || !p.Matches("hallo") {
		t.Error("h?llo should match hello and hallo")
	}
	if p.Matches("hllo") || p.Matches("helloo") {
		t.Error("? must consume exactly one character")
	}
}

func TestMultiWildcard(t *testing.T) {
	p := New("h*o")
	for _, s := range []string{"hello", "ho", "hello world hello"} {
		if !p.Matches(s) {
			t.Errorf("h*o should match %q", s)
		}
	}
	if p.Matches("world") {
		t.Error("h*o should not match world")
	}
}

func TestAdjacentWildcardsBacktrack(t *testing.T) {
	// The first * must be retried with longer consumptions for the
	// trailing literal to line up.
	p := New("*a*b")
	if !p.Matches("xaxaxb") {
		t.Error("*a*b should match xaxaxb")
	}
	if p.Matches("xaxax") {
		t.Error("*a*b should not match xaxax")
	}
}

func TestCharacterClass(t *testing.T) {
	p := New("h[ae]llo")
	if !p.Matches("hello") || !p.Matches("hallo") {
		t.Error("h[ae]llo should match hello and hallo")
	}
	if p.Matches("hillo") || p.Matches("hllo") {
		t.Error("h[ae]llo membership failed")
	}

	p = New("h[a-z]llo")
	for _, s := range []string{"hello", "hallo", "hzllo"} {
		if !p.Matches(s) {
			t.Errorf("h[a-z]llo should match %q", s)
		}
	}
	if p.Matches("h1llo") {
		t.Error("h[a-z]llo should not match h1llo")
	}

	p = New("h[!aeiou]llo")
	if p.Matches("hello") || p.Matches("hallo") {
		t.Error("negated class should reject vowels")
	}
	if !p.Matches("hbllo") || !p.Matches("hzllo") {
		t.Error("negated class should accept consonants")
	}
}

func TestReversedRangeIsEmpty(t *testing.T) {
	// A reversed range yields an empty set, not an error.
	p := New("h[z-a]llo")
	for _, s := range []string{"hallo", "hmllo", "hzllo"} {
		if p.Matches(s) {
			t.Errorf("h[z-a]llo should match nothing, matched %q", s)
		}
	}

	negated := New("h[!z-a]llo")
	if !negated.Matches("hxllo") {
		t.Error("negated empty set should match any character")
	}
}

func TestUnterminatedClass(t *testing.T) {
	// Consumes to end of input rather than failing.
	p := New("h[ae")
	if !p.Matches("ha") || !p.Matches("he") {
		t.Error("unterminated class should still test membership")
	}
	if p.Matches("hx") || p.Matches("hae") {
		t.Error("unterminated class matched too much")
	}
}

func TestAlternatives(t *testing.T) {
	p := New("hello.{go,txt,md}")
	for _, s := range []string{"hello.go", "hello.txt", "hello.md"} {
		if !p.Matches(s) {
			t.Errorf("should match %q", s)
		}
	}
	if p.Matches("hello.rs") {
		t.Error("should not match hello.rs")
	}

	p = New("{src,tests}/*.go")
	if !p.Matches("src/main.go") || !p.Matches("tests/util_test.go") {
		t.Error("alternative prefix should match")
	}
	if p.Matches("docs/readme.go") {
		t.Error("docs/ is not an alternative")
	}
}

func TestNestedAlternatives(t *testing.T) {
	p := New("{src/{lib,bin},tests}/*.x")
	for _, s := range []string{"src/lib/foo.x", "src/bin/foo.x", "tests/foo.x"} {
		if !p.Matches(s) {
			t.Errorf("should match %q", s)
		}
	}
	if p.Matches("docs/foo.x") {
		t.Error("should not match docs/foo.x")
	}
}

func TestCombinedPatterns(t *testing.T) {
	p := New("src/[a-z]*/{*.go,*.yaml}")
	if !p.Matches("src/util/mod.go") || !p.Matches("src/config/settings.yaml") {
		t.Error("combined pattern should match")
	}
	if p.Matches("src/123/test.go") || p.Matches("src/util/test.js") {
		t.Error("combined pattern matched too much")
	}
}

func TestExpandAlternatives(t *testing.T) {
	got := expand("a{b,c}d")
	want := []string{"abd", "acd"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expand(a{b,c}d) = %q, want %q", got, want)
	}

	got = expand("{src/{lib,bin},tests}/*.x")
	want = []string{"src/lib/*.x", "src/bin/*.x", "tests/*.x"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("nested expand = %q, want %q", got, want)
	}
}

func TestMalformedBraces(t *testing.T) {
	// An unbalanced brace is an ordinary literal.
	p := New("a{b")
	if !p.Matches("a{b") {
		t.Error("a{b should match itself")
	}
	if p.Matches("ab") {
		t.Error("a{b should not match ab")
	}

	p = New("}a{")
	if !p.Matches("}a{") {
		t.Error("}a{ should match itself")
	}
}

func TestEscapes(t *testing.T) {
	p := New(`\*`)
	if !p.Matches("*") {
		t.Error(`\* should match a literal star`)
	}
	if p.Matches("anything") {
		t.Error(`\* should not act as a wildcard`)
	}

	p = New(`\{a,b\}`)
	if !p.Matches("{a,b}") {
		t.Error("escaped braces should be literals")
	}
}

func TestEdgeCases(t *testing.T) {
	star := New("*")
	if !star.Matches("") || !star.Matches("anything") {
		t.Error("* should match everything including empty")
	}

	q := New("?")
	if !q.Matches("a") {
		t.Error("? should match one character")
	}
	if q.Matches("") || q.Matches("ab") {
		t.Error("? should match exactly one character")
	}

	empty := New("")
	if !empty.Matches("") {
		t.Error("empty pattern should match empty string")
	}
	if empty.Matches("anything") {
		t.Error("empty pattern should match only the empty string")
	}

	trailing := New("a*")
	if !trailing.Matches("a") {
		t.Error("trailing * should absorb zero length")
	}
}

func TestCompileDeterminism(t *testing.T) {
	a := New("h[a-c]*{x,y}?")
	b := New("h[a-c]*{x,y}?")
	for _, s := range []string{"", "haxz", "hbbbyq", "hdxz", "hax"} {
		if a.Matches(s) != b.Matches(s) {
			t.Errorf("identical patterns disagree on %q", s)
		}
	}
}

// writeTree builds the fixture tree used by the walker tests.
func writeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	for _, dir := range []string{"src/lib", "src/bin", "tests", "docs", ".git"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	for _, file := range []string{
		"src/lib/utils.go",
		"src/lib/errors.go",
		"src/bin/main.go",
		"tests/utils_test.go",
		".git/conf",
		"README.md",
		"docs/guide.md",
		"docs/api.html",
	} {
		if err := os.WriteFile(filepath.Join(root, file), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func containsSuffix(paths []string, suffix string) bool {
	for _, p := range paths {
		if strings.HasSuffix(p, suffix) {
			return true
		}
	}
	return false
}

func TestFindFiles(t *testing.T) {
	root := writeTree(t)

	p := New(root + "/*/*/*.go")
	paths, err := p.FindFiles(root)
	if err != nil {
		t.Fatalf("FindFiles: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("got %d paths %q, want 3", len(paths), paths)
	}
	for _, suffix := range []string{"src/lib/utils.go", "src/lib/errors.go", "src/bin/main.go"} {
		if !containsSuffix(paths, suffix) {
			t.Errorf("missing %s in %q", suffix, paths)
		}
	}
}

func TestFindFilesWithAlternatives(t *testing.T) {
	root := writeTree(t)

	p := New(root + "/{src/lib,tests}/*.go")
	paths, err := p.FindFiles(root)
	if err != nil {
		t.Fatalf("FindFiles: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("got %d paths %q, want 3", len(paths), paths)
	}
	if containsSuffix(paths, "src/bin/main.go") {
		t.Error("src/bin is not an alternative")
	}
}

func TestFindFilesDeduplicatesAcrossAlternatives(t *testing.T) {
	root := writeTree(t)

	// Both alternatives match the same files.
	p := New(root + "/{src/*/*.go,src/lib/*.go}")
	paths, err := p.FindFiles(root)
	if err != nil {
		t.Fatalf("FindFiles: %v", err)
	}
	seen := make(map[string]int)
	for _, path := range paths {
		seen[path]++
		if seen[path] > 1 {
			t.Errorf("path %s reported twice", path)
		}
	}
	if len(paths) != 3 {
		t.Errorf("got %d paths %q, want 3", len(paths), paths)
	}
}

func TestFindFilesCharacterClass(t *testing.T) {
	root := writeTree(t)

	// * crosses path separators, so this also reaches docs/guide.md.
	p := New(root + "/*.[mM][dD]")
	paths, err := p.FindFiles(root)
	if err != nil {
		t.Fatalf("FindFiles: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %d paths %q, want 2", len(paths), paths)
	}
	for _, suffix := range []string{"README.md", "docs/guide.md"} {
		if !containsSuffix(paths, suffix) {
			t.Errorf("missing %s in %q", suffix, paths)
		}
	}
}

func TestFindFilesMissingBase(t *testing.T) {
	p := New("*.go")
	paths, err := p.FindFiles(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("missing base dir should not error, got %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("got %q, want none", paths)
	}
}
