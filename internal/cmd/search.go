package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harrison/drgrep/internal/config"
	"github.com/harrison/drgrep/internal/display"
	"github.com/harrison/drgrep/internal/fileutil"
	"github.com/harrison/drgrep/internal/ignore"
	"github.com/harrison/drgrep/internal/logger"
	"github.com/harrison/drgrep/internal/regex"
	"github.com/harrison/drgrep/internal/search"
)

// NewSearchCommand creates the search command
func NewSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search files or content for a key or regular expression",
		Long: `Search a file, a directory tree, or inline content.

A key (--key) selects lines containing it; a regular expression
(--regex) selects lines it matches. Directory searches honor the
ignore rules of the search root (one glob pattern per line of its
.gitignore, plus .git itself) and silently skip files that are not
UTF-8 text.

Configuration is loaded from .drgrep/config.yaml if present.
CLI flags override configuration file settings.

Examples:
  # Key search in the current tree
  drgrep search -k TODO

  # Case-sensitive key search in one file
  drgrep search --key Error --path server.log --sensitive

  # Regex search across a directory
  drgrep search --regex 'user_\d+' --path ./logs

  # Search inline content, or stdin with --content -
  drgrep search -k duct --content 'a productive day'
  cat notes.txt | drgrep search -r '^- ' --content -`,
		RunE: runSearch,
	}

	cmd.Flags().StringP("key", "k", "", "Word to search for")
	cmd.Flags().StringP("regex", "r", "", "Regular expression to match lines against")
	cmd.Flags().StringP("path", "p", "", "File or directory to search (default: current directory)")
	cmd.Flags().StringP("content", "c", "", "Inline content to search; use - to read stdin")
	cmd.Flags().BoolP("sensitive", "s", false, "Case-sensitive key search")
	cmd.Flags().Bool("no-ignore", false, "Do not load ignore rules")
	cmd.Flags().String("config", "", "Path to config file (default: .drgrep/config.yaml)")
	cmd.Flags().Bool("verbose", false, "Show per-file progress at debug level")

	return cmd
}

// searcher selects matching lines from one piece of content.
type searcher func(source, content string) []search.Result

// runSearch implements the search command logic
func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	key, _ := cmd.Flags().GetString("key")
	regexStr, _ := cmd.Flags().GetString("regex")
	content, _ := cmd.Flags().GetString("content")
	path, _ := cmd.Flags().GetString("path")

	if sensitiveFlag, _ := cmd.Flags().GetBool("sensitive"); sensitiveFlag {
		cfg.Sensitive = true
	}
	if noIgnoreFlag, _ := cmd.Flags().GetBool("no-ignore"); noIgnoreFlag {
		cfg.NoIgnore = true
	}

	if key == "" && regexStr == "" && content == "" {
		return fmt.Errorf("no search key, regex, or content provided")
	}

	var sel searcher
	switch {
	case regexStr != "":
		re, err := regex.Compile(regexStr)
		if err != nil {
			return fmt.Errorf("invalid regex %q: %w", regexStr, err)
		}
		sel = func(source, content string) []search.Result {
			return search.LinesMatching(re, source, content)
		}
	case cfg.Sensitive:
		sel = func(source, content string) []search.Result {
			return search.LinesContaining(key, source, content)
		}
	default:
		sel = func(source, content string) []search.Result {
			return search.LinesContainingFold(key, source, content)
		}
	}

	log := newLogger(cmd, cfg)
	printer := display.NewPrinter(cmd.OutOrStdout(), cfg.Color)

	if content != "" {
		if content == "-" {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading stdin: %w", err)
			}
			content = string(data)
		}
		printer.PrintResults(sel("", content))
		return nil
	}

	if path == "" {
		path = "."
	}
	info, err := os.Stat(path)
	if err != nil {
		display.Warning{
			Title:   "Search path not found",
			Message: path,
		}.Display(cmd.ErrOrStderr())
		return fmt.Errorf("cannot search %s: %w", path, err)
	}

	if !info.IsDir() {
		text, err := fileutil.ReadTextFile(path)
		if err != nil {
			return err
		}
		printer.PrintResults(sel(path, text))
		return nil
	}

	return searchTree(path, cfg, sel, printer, log)
}

// searchTree searches every readable UTF-8 text file under root, honoring
// ignore rules unless disabled.
func searchTree(root string, cfg *config.Config, sel searcher, printer *display.Printer, log logger.Logger) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", root, err)
	}

	var skip func(string) bool
	if !cfg.NoIgnore {
		rules := ignore.LoadFile(absRoot, filepath.Join(absRoot, cfg.IgnoreFile))
		log.Debug("loaded %d ignore rules for %s", rules.Len(), absRoot)
		skip = rules.Ignored
	}

	return fileutil.VisitFiles(absRoot, skip, func(path string) {
		text, err := fileutil.ReadTextFile(path)
		if err != nil {
			// Binary and unreadable files are skipped, not fatal.
			log.Debug("skipping %s: %v", path, err)
			return
		}
		results := sel(path, text)
		log.Debug("searched %s: %d matching lines", path, len(results))
		printer.PrintResults(results)
	})
}

// loadConfig reads the config file named by --config, or the default
// location when the flag is unset.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
		return cfg, nil
	}
	cfg, err := config.LoadConfigFromDir(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the command's logger; --verbose lowers the level to
// debug regardless of configuration.
func newLogger(cmd *cobra.Command, cfg *config.Config) logger.Logger {
	level := cfg.LogLevel
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}
	return logger.NewConsoleLogger(cmd.ErrOrStderr(), level)
}
