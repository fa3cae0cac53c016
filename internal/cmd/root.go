package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for drgrep
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drgrep",
		Short: "Text search with hand-built regex and glob engines",
		Long: `drgrep searches files, directory trees, and inline content for a key
or a regular expression, and finds files by glob pattern.

Both pattern engines are built in: a constrained regular-expression
matcher (literals, ".", "\d" "\w" "\s" classes, "^" "$" anchors,
"*" "+" "?" quantifiers) and a filesystem glob matcher ("*", "?",
"[a-z]" classes and "{a,b}" brace alternation).`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	// Add subcommands
	cmd.AddCommand(NewSearchCommand())
	cmd.AddCommand(NewFindCommand())
	cmd.AddCommand(NewReplaceCommand())

	return cmd
}
