package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/drgrep/internal/config"
	"github.com/harrison/drgrep/internal/display"
	"github.com/harrison/drgrep/internal/glob"
)

// NewFindCommand creates the find command
func NewFindCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <glob-pattern> [base-directory]",
		Short: "Find files matching a glob pattern",
		Long: `Find walks the base directory (default: current directory) and prints
every path matching the glob pattern.

Patterns support "*" (any run of characters, including across path
separators), "?" (exactly one character), "[a-z]" character classes
with "!" negation, and "{a,b}" brace alternation, which may nest.
Unbalanced braces and unterminated classes are matched literally.

Examples:
  drgrep find '*.go'
  drgrep find 'src/*_test.go' .
  drgrep find '*.{yaml,yml}' ./deploy
  drgrep find '{cmd,internal}/*/[a-m]*.go'`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runFind,
	}

	cmd.Flags().Bool("count", false, "Print only the number of matching paths")

	return cmd
}

// runFind implements the find command logic
func runFind(cmd *cobra.Command, args []string) error {
	pattern := args[0]
	baseDir := "."
	if len(args) == 2 {
		baseDir = args[1]
	}

	paths, err := glob.New(pattern).FindFiles(baseDir)
	if err != nil {
		return fmt.Errorf("find failed: %w", err)
	}

	if countOnly, _ := cmd.Flags().GetBool("count"); countOnly {
		fmt.Fprintln(cmd.OutOrStdout(), len(paths))
		return nil
	}

	printer := display.NewPrinter(cmd.OutOrStdout(), config.DefaultConfig().Color)
	printer.PrintPaths(paths)
	return nil
}
