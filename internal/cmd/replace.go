package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harrison/drgrep/internal/fileutil"
	"github.com/harrison/drgrep/internal/regex"
)

// NewReplaceCommand creates the replace command
func NewReplaceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replace",
		Short: "Replace every regex match in a file or content",
		Long: `Replace rewrites its input by substituting every match of the regular
expression and prints the result to stdout; the input is never
modified in place.

Examples:
  drgrep replace -r '\d+' -w N --path report.txt
  drgrep replace -r '\s+' -w ' ' --content 'too   many spaces'
  cat notes.txt | drgrep replace -r 'TODO' -w DONE --content -`,
		RunE: runReplace,
	}

	cmd.Flags().StringP("regex", "r", "", "Regular expression selecting the text to replace")
	cmd.Flags().StringP("with", "w", "", "Replacement text")
	cmd.Flags().StringP("path", "p", "", "File whose content to rewrite")
	cmd.Flags().StringP("content", "c", "", "Inline content to rewrite; use - to read stdin")
	_ = cmd.MarkFlagRequired("regex")

	return cmd
}

// runReplace implements the replace command logic
func runReplace(cmd *cobra.Command, args []string) error {
	regexStr, _ := cmd.Flags().GetString("regex")
	replacement, _ := cmd.Flags().GetString("with")
	path, _ := cmd.Flags().GetString("path")
	content, _ := cmd.Flags().GetString("content")

	re, err := regex.Compile(regexStr)
	if err != nil {
		return fmt.Errorf("invalid regex %q: %w", regexStr, err)
	}

	var text string
	switch {
	case content == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	case content != "":
		text = content
	case path != "":
		text, err = fileutil.ReadTextFile(path)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("no input: provide --path or --content")
	}

	fmt.Fprint(cmd.OutOrStdout(), re.ReplaceAll(text, replacement))
	return nil
}
