package display

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/harrison/drgrep/internal/search"
)

// resultSeparator closes each printed result block.
const resultSeparator = "=================================\n"

// Printer writes search results and file listings to a single destination.
type Printer struct {
	out         io.Writer
	colorOutput bool

	source    *color.Color
	lineNo    *color.Color
	highlight *color.Color
	plain     *color.Color
}

// NewPrinter creates a Printer for out. enabled allows callers to force
// color off (config or flag); even when enabled, color is only used if out
// is a terminal.
func NewPrinter(out io.Writer, enabled bool) *Printer {
	return &Printer{
		out:         out,
		colorOutput: enabled && writerIsTerminal(out),
		source:      color.New(color.FgHiBlue),
		lineNo:      color.New(color.FgRed),
		highlight:   color.New(color.FgHiYellow),
		plain:       color.New(color.FgWhite),
	}
}

// writerIsTerminal reports whether out is a TTY.
func writerIsTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PrintResult writes one matched line: a source header, the 1-based line
// number, then the line's segments with hits highlighted.
func (p *Printer) PrintResult(res search.Result) {
	if res.Source != "" {
		p.println(p.source, fmt.Sprintf("source: %s", res.Source))
	}
	p.println(p.lineNo, fmt.Sprintf("line: %d", res.Line))

	for i, seg := range res.Segments {
		if i > 0 {
			fmt.Fprint(p.out, " ")
		}
		c := p.plain
		if seg.Highlight {
			c = p.highlight
		}
		p.print(c, seg.Text)
	}
	fmt.Fprint(p.out, "\n")
	fmt.Fprint(p.out, resultSeparator)
}

// PrintResults writes a sequence of results.
func (p *Printer) PrintResults(results []search.Result) {
	for _, res := range results {
		p.PrintResult(res)
	}
}

// PrintPaths writes one path per line.
func (p *Printer) PrintPaths(paths []string) {
	for _, path := range paths {
		fmt.Fprintln(p.out, path)
	}
}

func (p *Printer) print(c *color.Color, s string) {
	if p.colorOutput {
		c.Fprint(p.out, s)
		return
	}
	fmt.Fprint(p.out, s)
}

func (p *Printer) println(c *color.Color, s string) {
	p.print(c, s)
	fmt.Fprint(p.out, "\n")
}
