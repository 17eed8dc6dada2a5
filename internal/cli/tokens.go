package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdtree/internal/logging"
	"github.com/yaklabco/mdtree/pkg/parser"
	"github.com/yaklabco/mdtree/pkg/reporter"
)

type tokensFlags struct {
	format  string
	compact bool
}

func newTokensCommand() *cobra.Command {
	flags := &tokensFlags{}

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Dump the token stream for a Markdown file",
		Long: `Tokenize a single Markdown file and dump the raw token stream.

Every byte of the file belongs to exactly one token, so the table doubles
as a coverage check: the footer reports whether the stream covers the file
with no gaps or overlaps.

Examples:
  mdtree tokens README.md
  mdtree tokens README.md --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")

	return cmd
}

func runTokens(cmd *cobra.Command, args []string, flags *tokensFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logging.Default())

	path := args[0]

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	tokens := parser.Tokenize(content)

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}
	if format != reporter.FormatText && format != reporter.FormatJSON {
		return fmt.Errorf("invalid format: token output supports text and json, not %q", flags.format)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	workDir, err := os.Getwd()
	if err != nil {
		workDir = ""
	}

	rend := reporter.NewTokensRenderer(reporter.Options{
		Writer:     cmd.OutOrStdout(),
		Format:     format,
		Color:      colorMode,
		Compact:    flags.compact,
		WorkingDir: workDir,
	})

	if err := rend.Render(ctx, path, tokens, content); err != nil {
		return fmt.Errorf("render tokens: %w", err)
	}

	return nil
}
