package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdtree/internal/logging"
	"github.com/yaklabco/mdtree/pkg/config"
	"github.com/yaklabco/mdtree/pkg/parser"
	"github.com/yaklabco/mdtree/pkg/reporter"
	"github.com/yaklabco/mdtree/pkg/runner"
)

type outlineFlags struct {
	ignore    []string
	jobs      int
	noSummary bool
}

func newOutlineCommand() *cobra.Command {
	flags := &outlineFlags{}

	cmd := &cobra.Command{
		Use:   "outline [paths...]",
		Short: "Print heading outlines of Markdown files",
		Long: `Print a heading outline for each Markdown file.

Headings are indented by level with their line numbers; fenced code
blocks appear under the heading they belong to, with their language and
body size.

Examples:
  mdtree outline                 # Outline current directory
  mdtree outline README.md       # Outline single file
  mdtree outline docs/ --ignore "**/CHANGELOG.md"`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOutline(cmd, args, flags)
		},
	}

	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "hide the summary line")

	return cmd
}

func runOutline(cmd *cobra.Command, args []string, flags *outlineFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	cliCfg := &config.Config{
		Ignore: flags.ignore,
		Jobs:   flags.jobs,
	}

	cfg, workDir, err := resolveConfig(ctx, cmd, cliCfg)
	if err != nil {
		return err
	}

	// The outline only needs headings and fences, but disabled rules from
	// config still apply so the tree matches what parse would build.
	p := parser.New(parser.Options{DisabledRules: cfg.DisabledRules})
	parseRunner := runner.New(p)

	result, err := parseRunner.Run(ctx, runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   runner.DefaultExtensions(),
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
	})
	if err != nil {
		return fmt.Errorf("parse run: %w", err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep := reporter.NewOutlineReporter(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Color:       colorMode,
		ShowSummary: !flags.noSummary,
		WorkingDir:  workDir,
	})
	if err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report outline: %w", err)
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrParseFailures
	}

	return nil
}
