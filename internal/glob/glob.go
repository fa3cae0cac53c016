// Package glob implements a hand-built filesystem glob engine.
//
// Supported syntax: "*" for any character run (including empty), "?" for
// exactly one character, "[abc]" and "[!abc]" character classes with "a-z"
// ranges, "\" to escape the next character, and "{a,b}" brace alternation
// which may nest.
//
// Compilation is deliberately lenient: unbalanced braces and unterminated
// character classes degrade to literals instead of failing, so New never
// returns an error. Matching uses true backtracking, which adjacent
// wildcards require.
package glob

// componentKind identifies the variant held by a component.
type componentKind int

const (
	compLiteral componentKind = iota
	compSingle
	compMulti
	compClass
)

// component is one compiled unit of a glob pattern.
type component struct {
	kind    componentKind
	lit     []rune
	class   map[rune]bool
	negated bool
}

// Pattern is a compiled glob. It holds exactly one of two representations:
// an ordered component sequence, or, when the source uses brace alternation,
// a set of fully expanded alternative pattern strings. Pattern is immutable
// after New and safe for concurrent use.
type Pattern struct {
	source       string
	components   []component
	alternatives []string
}

// New compiles pattern. The representation is fixed here: a source
// containing balanced brace syntax becomes an alternative set, anything
// else a component sequence.
func New(pattern string) *Pattern {
	p := &Pattern{source: pattern}

	if containsBraces(pattern) {
		expanded := expand(pattern)
		// No balanced group was found: fall through to component
		// parsing, which treats the braces as literals.
		if len(expanded) != 1 || expanded[0] != pattern {
			p.alternatives = expanded
			return p
		}
	}

	p.components = tokenize(pattern)
	return p
}

// String returns the original pattern source.
func (p *Pattern) String() string {
	return p.source
}

func containsBraces(pattern string) bool {
	hasOpen, hasClose := false, false
	for _, r := range pattern {
		switch r {
		case '{':
			hasOpen = true
		case '}':
			hasClose = true
		}
	}
	return hasOpen && hasClose
}

// tokenize parses a brace-free pattern into components. Literal runs are
// flushed at each metacharacter boundary.
func tokenize(pattern string) []component {
	var components []component
	var lit []rune

	flush := func() {
		if len(lit) > 0 {
			components = append(components, component{kind: compLiteral, lit: lit})
			lit = nil
		}
	}

	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '*':
			flush()
			components = append(components, component{kind: compMulti})
		case '?':
			flush()
			components = append(components, component{kind: compSingle})
		case '[':
			flush()
			class, next := parseClass(runes, i+1)
			components = append(components, class)
			i = next - 1
		case '\\':
			if i+1 < len(runes) {
				i++
				lit = append(lit, runes[i])
			} else {
				lit = append(lit, '\\')
			}
		default:
			lit = append(lit, runes[i])
		}
	}
	flush()

	return components
}

// parseClass parses a character class beginning just after "[". It returns
// the component and the index just past the closing "]". An unterminated
// class consumes to end of input. A reversed range adds nothing: the set
// stays empty rather than producing an error.
func parseClass(runes []rune, start int) (component, int) {
	set := make(map[rune]bool)
	negated := false

	i := start
	if i < len(runes) && runes[i] == '!' {
		negated = true
		i++
	}

	for i < len(runes) && runes[i] != ']' {
		if i+2 < len(runes) && runes[i+1] == '-' {
			for r := runes[i]; r <= runes[i+2]; r++ {
				set[r] = true
			}
			i += 3
		} else {
			set[runes[i]] = true
			i++
		}
	}
	if i < len(runes) {
		i++ // closing bracket
	}

	return component{kind: compClass, class: set, negated: negated}, i
}

// Matches reports whether candidate matches the pattern. With an expanded
// alternative set it is true as soon as any alternative matches; each
// alternative is compiled through the component path independently.
func (p *Pattern) Matches(candidate string) bool {
	if len(p.alternatives) > 0 {
		for _, alt := range p.alternatives {
			if New(alt).Matches(candidate) {
				return true
			}
		}
		return false
	}
	return matchFrom([]rune(candidate), p.components, 0, 0)
}

// matchFrom is the recursive backtracking matcher over (component index,
// text position). Success requires both to be exhausted together; trailing
// multi-wildcards may absorb zero length.
func matchFrom(text []rune, components []component, ci, pos int) bool {
	if ci >= len(components) {
		return pos >= len(text)
	}

	if pos >= len(text) {
		for _, c := range components[ci:] {
			if c.kind != compMulti {
				return false
			}
		}
		return true
	}

	switch c := components[ci]; c.kind {
	case compLiteral:
		if pos+len(c.lit) > len(text) {
			return false
		}
		for k, r := range c.lit {
			if text[pos+k] != r {
				return false
			}
		}
		return matchFrom(text, components, ci+1, pos+len(c.lit))

	case compSingle:
		return matchFrom(text, components, ci+1, pos+1)

	case compMulti:
		// Try the empty consumption first, then grow one character at
		// a time until something downstream matches.
		if matchFrom(text, components, ci+1, pos) {
			return true
		}
		return matchFrom(text, components, ci, pos+1)

	case compClass:
		if c.class[text[pos]] == c.negated {
			return false
		}
		return matchFrom(text, components, ci+1, pos+1)
	}

	return false
}
