// Package search implements the line-scanning search loop: it walks a text
// line by line, selects the lines a key or compiled regex hits, and splits
// each selected line into segments so callers can highlight the hits.
package search

import (
	"strings"

	"github.com/harrison/drgrep/internal/regex"
)

// Segment is one space-delimited piece of a matched line. Highlight marks
// the segments that contain the search hit.
type Segment struct {
	Text      string
	Highlight bool
}

// Result is one matched line. Line is 1-based; Source names where the line
// came from (a file path, or empty for inline content).
type Result struct {
	Segments []Segment
	Source   string
	Line     int
}

// Sensitive returns the lines of content containing key, case sensitively.
func Sensitive(key, content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if strings.Contains(line, key) {
			lines = append(lines, line)
		}
	}
	return lines
}

// Insensitive returns the lines of content containing key, ignoring case.
func Insensitive(key, content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		if containsFold(line, key) {
			lines = append(lines, line)
		}
	}
	return lines
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// LinesContaining returns a Result for every line of content containing
// key, case sensitively, with the containing segments highlighted.
func LinesContaining(key, source, content string) []Result {
	return scanLines(source, content,
		func(line string) bool { return strings.Contains(line, key) },
		func(word string) bool { return strings.Contains(word, key) },
	)
}

// LinesContainingFold is LinesContaining ignoring case.
func LinesContainingFold(key, source, content string) []Result {
	return scanLines(source, content,
		func(line string) bool { return containsFold(line, key) },
		func(word string) bool { return containsFold(word, key) },
	)
}

// LinesMatching returns a Result for every line of content the compiled
// regex matches, with the matching segments highlighted.
func LinesMatching(re *regex.Pattern, source, content string) []Result {
	return scanLines(source, content, re.IsMatch, re.IsMatch)
}

// scanLines selects lines with lineHit and splits them on spaces, flagging
// the segments wordHit accepts.
func scanLines(source, content string, lineHit, wordHit func(string) bool) []Result {
	var results []Result
	for idx, line := range strings.Split(content, "\n") {
		if !lineHit(line) {
			continue
		}
		words := strings.Split(line, " ")
		segments := make([]Segment, 0, len(words))
		for _, word := range words {
			segments = append(segments, Segment{Text: word, Highlight: wordHit(word)})
		}
		results = append(results, Result{
			Segments: segments,
			Source:   source,
			Line:     idx + 1,
		})
	}
	return results
}
