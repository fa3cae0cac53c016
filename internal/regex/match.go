package regex

import "unicode"

// Match is one successful match of a pattern against a text. Start and End
// are byte offsets into the original text; Text is the matched substring.
type Match struct {
	Text  string
	Start int
	End   int
}

// input is a text prepared for matching: the decoded rune sequence plus a
// translation table from rune index to byte offset. byteOff has one extra
// entry so byteOff[len(runes)] is the total byte length.
type input struct {
	text    string
	runes   []rune
	byteOff []int
}

func newInput(text string) *input {
	in := &input{text: text}
	for off, r := range text {
		in.runes = append(in.runes, r)
		in.byteOff = append(in.byteOff, off)
	}
	in.byteOff = append(in.byteOff, len(text))
	return in
}

// matchAt converts a rune-indexed match span into a byte-offset Match.
func (in *input) matchAt(start, end int) Match {
	return Match{
		Text:  in.text[in.byteOff[start]:in.byteOff[end]],
		Start: in.byteOff[start],
		End:   in.byteOff[end],
	}
}

// matchHere is the recursive interpreter over (element index, rune
// position). Quantifiers consume greedily and are never retried with a
// shorter run; the supported grammar does not require it. On success it
// returns the rune position one past the match.
func matchHere(in *input, elems []element, ei, pos int) (int, bool) {
	if ei == len(elems) {
		return pos, true
	}
	e := elems[ei]
	switch e.kind {
	case elemStartAnchor:
		// Line-relative: offset 0 or just after a newline.
		if pos == 0 || in.runes[pos-1] == '\n' {
			return matchHere(in, elems, ei+1, pos)
		}
		return 0, false
	case elemEndAnchor:
		// Line-relative: end of text or just before a newline.
		if pos == len(in.runes) || in.runes[pos] == '\n' {
			return matchHere(in, elems, ei+1, pos)
		}
		return 0, false
	case elemLiteral:
		if pos+len(e.lit) > len(in.runes) {
			return 0, false
		}
		for k, r := range e.lit {
			if in.runes[pos+k] != r {
				return 0, false
			}
		}
		return matchHere(in, elems, ei+1, pos+len(e.lit))
	case elemQuantified:
		n := 0
		max := len(in.runes) - pos
		if e.quant == zeroOrOne {
			max = min(max, 1)
		}
		for n < max && matchOne(e.inner, in.runes[pos+n]) {
			n++
		}
		if e.quant == oneOrMore && n == 0 {
			return 0, false
		}
		return matchHere(in, elems, ei+1, pos+n)
	default:
		if pos >= len(in.runes) || !matchOne(&e, in.runes[pos]) {
			return 0, false
		}
		return matchHere(in, elems, ei+1, pos+1)
	}
}

// matchOne tests a single-character element against one rune.
func matchOne(e *element, r rune) bool {
	switch e.kind {
	case elemAny:
		return true
	case elemDigit:
		return unicode.IsDigit(r) != e.negated
	case elemWord:
		word := r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
		return word != e.negated
	case elemSpace:
		return unicode.IsSpace(r) != e.negated
	case elemLiteral:
		return len(e.lit) == 1 && e.lit[0] == r
	}
	return false
}

// IsMatch reports whether text contains at least one match of the pattern.
func (p *Pattern) IsMatch(text string) bool {
	_, ok := p.find(newInput(text))
	return ok
}

// Find returns the leftmost match in text, or nil when there is none.
func (p *Pattern) Find(text string) *Match {
	in := newInput(text)
	m, ok := p.find(in)
	if !ok {
		return nil
	}
	return &m
}

func (p *Pattern) find(in *input) (Match, bool) {
	// An empty pattern matches only the empty string.
	if len(p.elements) == 0 {
		if len(in.runes) == 0 {
			return in.matchAt(0, 0), true
		}
		return Match{}, false
	}
	for pos := 0; pos <= len(in.runes); pos++ {
		if end, ok := matchHere(in, p.elements, 0, pos); ok {
			return in.matchAt(pos, end), true
		}
	}
	return Match{}, false
}

// FindAll returns every match in text, scanning left to right. Results are
// non-overlapping and strictly forward-progressing: after each match the
// cursor resumes at its end, or one rune further when the match was empty.
func (p *Pattern) FindAll(text string) []Match {
	in := newInput(text)
	if len(p.elements) == 0 {
		if len(in.runes) == 0 {
			return []Match{in.matchAt(0, 0)}
		}
		return nil
	}
	var matches []Match
	pos := 0
	for pos <= len(in.runes) {
		end, ok := matchHere(in, p.elements, 0, pos)
		if !ok {
			pos++
			continue
		}
		matches = append(matches, in.matchAt(pos, end))
		if end == pos {
			pos++
		} else {
			pos = end
		}
	}
	return matches
}

// ReplaceAll returns text with every match replaced by replacement.
func (p *Pattern) ReplaceAll(text, replacement string) string {
	return p.ReplaceAllFunc(text, func(Match) string { return replacement })
}

// ReplaceAllFunc returns text with every match replaced by the result of
// repl applied to that match.
func (p *Pattern) ReplaceAllFunc(text string, repl func(Match) string) string {
	matches := p.FindAll(text)
	if len(matches) == 0 {
		return text
	}
	var b []byte
	prev := 0
	for _, m := range matches {
		b = append(b, text[prev:m.Start]...)
		b = append(b, repl(m)...)
		prev = m.End
	}
	b = append(b, text[prev:]...)
	return string(b)
}

// Split returns the segments of text strictly between matches, in order. A
// match at the very start yields an empty leading segment, a match at the
// very end an empty trailing one.
func (p *Pattern) Split(text string) []string {
	segments := []string{}
	prev := 0
	for _, m := range p.FindAll(text) {
		segments = append(segments, text[prev:m.Start])
		prev = m.End
	}
	return append(segments, text[prev:])
}
