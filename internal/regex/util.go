package regex

// One-shot helpers that compile a pattern and apply a single operation.
// Callers matching repeatedly should compile once and reuse the Pattern.

// IsMatch compiles pattern and reports whether it matches anywhere in text.
func IsMatch(pattern, text string) (bool, error) {
	p, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return p.IsMatch(text), nil
}

// Find compiles pattern and returns its leftmost match in text.
func Find(pattern, text string) (*Match, error) {
	p, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	return p.Find(text), nil
}

// FindAll compiles pattern and returns every match in text.
func FindAll(pattern, text string) ([]Match, error) {
	p, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	return p.FindAll(text), nil
}

// ReplaceAll compiles pattern and replaces every match in text with
// replacement.
func ReplaceAll(pattern, text, replacement string) (string, error) {
	p, err := Compile(pattern)
	if err != nil {
		return "", err
	}
	return p.ReplaceAll(text, replacement), nil
}

// ReplaceAllFunc compiles pattern and replaces every match in text with the
// result of repl.
func ReplaceAllFunc(pattern, text string, repl func(Match) string) (string, error) {
	p, err := Compile(pattern)
	if err != nil {
		return "", err
	}
	return p.ReplaceAllFunc(text, repl), nil
}

// Split compiles pattern and splits text around its matches.
func Split(pattern, text string) ([]string, error) {
	p, err := Compile(pattern)
	if err != nil {
		return nil, err
	}
	return p.Split(text), nil
}
