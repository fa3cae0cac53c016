package glob

// expand rewrites brace alternation into a set of concrete pattern strings,
// one per combination of options, in left-to-right option order. It is a
// pure function: each call returns a fresh slice and shares no state with
// recursive calls.
//
// The first top-level balanced "{...}" group is located, its interior is
// split on commas at that group's depth, and each option is substituted
// between the surrounding prefix and suffix before being expanded again.
// Escaped characters never open or close a group. A "{" with no matching
// "}" is left in place to be treated as a literal by the component parser.
func expand(pattern string) []string {
	runes := []rune(pattern)

	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '\\':
			if i+1 < len(runes) {
				i++
			}
		case '{':
			end := matchingBrace(runes, i)
			if end < 0 {
				continue // unbalanced, keep as literal
			}

			prefix := string(runes[:i])
			suffix := string(runes[end+1:])

			var expanded []string
			for _, option := range splitOptions(string(runes[i+1 : end])) {
				expanded = append(expanded, expand(prefix+option+suffix)...)
			}
			return expanded
		}
	}

	return []string{pattern}
}

// matchingBrace returns the index of the "}" closing the "{" at open,
// or -1 when the group is unbalanced.
func matchingBrace(runes []rune, open int) int {
	depth := 1
	for j := open + 1; j < len(runes); j++ {
		switch runes[j] {
		case '\\':
			j++
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

// splitOptions splits a group interior on commas, counting only commas at
// depth zero relative to the group so nested braces stay intact.
func splitOptions(s string) []string {
	var options []string
	var current []rune
	depth := 0

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; r {
		case '\\':
			current = append(current, r)
			if i+1 < len(runes) {
				i++
				current = append(current, runes[i])
			}
		case '{':
			depth++
			current = append(current, r)
		case '}':
			depth--
			current = append(current, r)
		case ',':
			if depth == 0 {
				options = append(options, string(current))
				current = nil
			} else {
				current = append(current, r)
			}
		default:
			current = append(current, r)
		}
	}
	if len(current) > 0 {
		options = append(options, string(current))
	}

	return options
}
