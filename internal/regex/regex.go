// Package regex implements a small hand-built regular expression engine.
//
// The supported grammar is deliberately constrained: literal characters,
// "." for any character, the "\d", "\w" and "\s" character classes (negated
// by their uppercase forms), the "^" and "$" anchors, and the "*", "+" and
// "?" quantifiers. There is no grouping, no alternation and no lazy
// matching. Patterns are compiled once into an immutable element sequence
// and matched many times; matching itself never fails.
//
// All offsets reported by the engine are byte offsets into the original
// text, even though matching scans decoded runes internally.
package regex

import (
	"errors"
	"fmt"
)

// ErrSyntax is the sentinel for pattern compilation failures. Use errors.Is
// to test a returned error against it.
var ErrSyntax = errors.New("invalid pattern")

// quantifier selects how many repetitions of the wrapped element may match.
type quantifier int

const (
	zeroOrMore quantifier = iota // *
	oneOrMore                    // +
	zeroOrOne                    // ?
)

// elemKind identifies the variant held by an element.
type elemKind int

const (
	elemLiteral elemKind = iota
	elemAny
	elemDigit
	elemWord
	elemSpace
	elemStartAnchor
	elemEndAnchor
	elemQuantified
)

// element is one compiled unit of a pattern. Exactly the fields relevant to
// its kind are populated: lit for literals, negated for the character
// classes, inner and quant for quantified elements.
type element struct {
	kind    elemKind
	lit     []rune
	negated bool
	inner   *element
	quant   quantifier
}

// Pattern is a compiled regular expression. It is immutable after Compile
// and safe for concurrent use.
type Pattern struct {
	source   string
	elements []element
}

// Compile parses pattern into a Pattern.
//
// A "^" is only an anchor when it is the very first character, and a "$"
// only when it is the very last unescaped character; anywhere else both are
// literals. A trailing lone backslash compiles to a literal backslash.
// Compile fails when a quantifier has no element to apply to.
func Compile(pattern string) (*Pattern, error) {
	runes := []rune(pattern)
	var elems []element
	var lit []rune

	flush := func() {
		if len(lit) > 0 {
			elems = append(elems, element{kind: elemLiteral, lit: lit})
			lit = nil
		}
	}

	startAnchor := false
	endAnchor := false

	i := 0
	if len(runes) > 0 && runes[0] == '^' {
		startAnchor = true
		i = 1
	}

	for ; i < len(runes); i++ {
		switch r := runes[i]; r {
		case '\\':
			if i+1 >= len(runes) {
				lit = append(lit, '\\')
				continue
			}
			i++
			switch esc := runes[i]; esc {
			case 'd', 'D':
				flush()
				elems = append(elems, element{kind: elemDigit, negated: esc == 'D'})
			case 'w', 'W':
				flush()
				elems = append(elems, element{kind: elemWord, negated: esc == 'W'})
			case 's', 'S':
				flush()
				elems = append(elems, element{kind: elemSpace, negated: esc == 'S'})
			default:
				lit = append(lit, esc)
			}
		case '.':
			flush()
			elems = append(elems, element{kind: elemAny})
		case '$':
			if i == len(runes)-1 {
				endAnchor = true
			} else {
				lit = append(lit, '$')
			}
		case '*', '+', '?':
			inner, err := takePreceding(&elems, &lit, r)
			if err != nil {
				return nil, err
			}
			flush()
			var q quantifier
			switch r {
			case '*':
				q = zeroOrMore
			case '+':
				q = oneOrMore
			case '?':
				q = zeroOrOne
			}
			elems = append(elems, element{kind: elemQuantified, inner: inner, quant: q})
		default:
			lit = append(lit, r)
		}
	}
	flush()

	if startAnchor {
		elems = append([]element{{kind: elemStartAnchor}}, elems...)
	}
	if endAnchor {
		elems = append(elems, element{kind: elemEndAnchor})
	}

	return &Pattern{source: pattern, elements: elems}, nil
}

// takePreceding removes and returns the element a quantifier applies to,
// which is either the last character of the pending literal run or the last
// compiled element.
func takePreceding(elems *[]element, lit *[]rune, q rune) (*element, error) {
	if n := len(*lit); n > 0 {
		last := (*lit)[n-1]
		*lit = (*lit)[:n-1]
		return &element{kind: elemLiteral, lit: []rune{last}}, nil
	}
	if n := len(*elems); n > 0 {
		prev := (*elems)[n-1]
		if prev.kind == elemQuantified {
			return nil, fmt.Errorf("%w: quantifier %q applied to quantifier", ErrSyntax, string(q))
		}
		*elems = (*elems)[:n-1]
		return &prev, nil
	}
	return nil, fmt.Errorf("%w: quantifier %q without preceding element", ErrSyntax, string(q))
}

// MustCompile is like Compile but panics on error. Intended for patterns
// known valid at build time.
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("regex: MustCompile(%q): %v", pattern, err))
	}
	return p
}

// String returns the original pattern source.
func (p *Pattern) String() string {
	return p.source
}
