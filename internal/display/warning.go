package display

import (
	"io"

	"github.com/fatih/color"
)

// Warning represents a user-facing warning message
type Warning struct {
	Title      string   // Main warning title
	Message    string   // Detailed explanation (optional)
	Paths      []string // Related paths (optional)
	Suggestion string   // Action to take (optional)
}

// Display shows a formatted warning in yellow
func (w Warning) Display(out io.Writer) {
	yellow := color.New(color.FgYellow)

	yellow.Fprintf(out, "Warning: %s\n", w.Title)

	if w.Message != "" {
		yellow.Fprintf(out, "    %s\n", w.Message)
	}

	if len(w.Paths) > 0 {
		if len(w.Paths) == 1 {
			yellow.Fprint(out, "    Affected path:\n")
		} else {
			yellow.Fprint(out, "    Affected paths:\n")
		}
		for i, path := range w.Paths {
			yellow.Fprintf(out, "      %d. %s\n", i+1, path)
		}
	}

	if w.Suggestion != "" {
		yellow.Fprint(out, "    Suggestion:\n")
		yellow.Fprintf(out, "    %s\n", w.Suggestion)
	}
}

// WarnSkippedPaths builds a Warning listing paths the search skipped.
func WarnSkippedPaths(title string, paths []string) Warning {
	return Warning{
		Title:      title,
		Paths:      paths,
		Suggestion: "Check that the paths exist and contain UTF-8 text",
	}
}
