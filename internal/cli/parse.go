package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdtree/internal/configloader"
	"github.com/yaklabco/mdtree/internal/logging"
	"github.com/yaklabco/mdtree/pkg/config"
	"github.com/yaklabco/mdtree/pkg/fsutil"
	"github.com/yaklabco/mdtree/pkg/parser"
	"github.com/yaklabco/mdtree/pkg/reporter"
	"github.com/yaklabco/mdtree/pkg/runner"
)

// ErrParseFailures is returned when some files could not be parsed. The
// details were already reported, so main suppresses the error message.
var ErrParseFailures = errors.New("parse failures")

type parseFlags struct {
	format         string
	output         string
	ignore         []string
	disable        []string
	jobs           int
	failFast       bool
	followSymlinks bool
	leaves         bool
	noSummary      bool
	compact        bool
}

func newParseCommand() *cobra.Command {
	flags := &parseFlags{}

	cmd := &cobra.Command{
		Use:   "parse [paths...]",
		Short: "Parse Markdown files into block trees",
		Long:  parseLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, flags)
		},
	}

	addParseFlags(cmd, flags)

	return cmd
}

const parseLongDescription = `Parse Markdown files and print their block trees.

By default, parses all .md and .markdown files in the current directory
and subdirectories. Specify paths to parse specific files or directories.

Examples:
  mdtree parse                   # Parse current directory
  mdtree parse docs/             # Parse docs directory
  mdtree parse README.md         # Parse single file
  mdtree parse --leaves          # Include inline leaf nodes in the tree
  mdtree parse --format json     # Output as JSON for tooling
  mdtree parse --format summary  # File list and statistics only
  mdtree parse --disable fence   # Parse without the fence rule
  mdtree parse -o tree.json --format json   # Write output to a file`

func runParse(cmd *cobra.Command, args []string, flags *parseFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = logging.WithLogger(ctx, logger)

	// Map flags to typed config values. Slices are nil unless the flag
	// was given, so assigning them unconditionally is merge-safe; the
	// format flag carries a non-zero default and must be gated.
	cliCfg := &config.Config{}
	if cmd.Flags().Changed("format") {
		cliCfg.Format = config.OutputFormat(flags.format)
	}
	cliCfg.Ignore = flags.ignore
	cliCfg.DisabledRules = flags.disable
	cliCfg.Jobs = flags.jobs
	cliCfg.FailFast = flags.failFast
	cliCfg.Output = flags.output

	cfg, workDir, err := resolveConfig(ctx, cmd, cliCfg)
	if err != nil {
		return err
	}

	logger.Debug("configuration resolved",
		logging.FieldFormat, cfg.Format,
		logging.FieldJobs, cfg.Jobs,
		logging.FieldDisabledRules, cfg.DisabledRules,
	)

	p := parser.New(parser.Options{DisabledRules: cfg.DisabledRules})
	parseRunner := runner.New(p)

	runOpts := runner.Options{
		Paths:          args,
		WorkingDir:     workDir,
		Extensions:     runner.DefaultExtensions(),
		ExcludeGlobs:   cfg.Ignore,
		FollowSymlinks: flags.followSymlinks,
		Jobs:           cfg.Jobs,
		FailFast:       cfg.FailFast,
	}

	logger.Debug("starting parse run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := parseRunner.Run(ctx, runOpts)
	if err != nil {
		return fmt.Errorf("parse run: %w", err)
	}

	logger.Debug("parse run complete",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesParsed, result.Stats.FilesParsed,
		logging.FieldFilesFailed, result.Stats.FilesFailed,
		logging.FieldNodesTotal, result.Stats.NodesTotal,
		logging.FieldBytesTotal, result.Stats.BytesTotal,
		logging.FieldDuration, result.Stats.Duration,
	)

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	repOpts := reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       colorMode,
		ShowLeaves:  flags.leaves,
		ShowSummary: !flags.noSummary,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	}

	if cfg.Output != "" {
		if err := reportToFile(ctx, cfg.Output, repOpts, result); err != nil {
			return err
		}
	} else {
		rep, err := reporter.New(repOpts)
		if err != nil {
			return fmt.Errorf("create reporter: %w", err)
		}
		if err := rep.Report(ctx, result); err != nil {
			return fmt.Errorf("report results: %w", err)
		}
	}

	if ExitCodeFromResult(result) != ExitSuccess {
		return ErrParseFailures
	}

	return nil
}

// resolveConfig merges config files, environment variables, and the given
// CLI flag values for commands that run the parse pipeline. It returns the
// final config and the working directory used for discovery.
func resolveConfig(ctx context.Context, cmd *cobra.Command, cliCfg *config.Config) (*config.Config, string, error) {
	logger := logging.Default()

	// The config path comes from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, "", fmt.Errorf("get working directory: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, "", fmt.Errorf("load configuration: %w", err)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldFiles, loadResult.LoadedFrom)
	}

	return loadResult.Config, workDir, nil
}

// reportToFile renders the result into a buffer and writes it atomically,
// leaving the file untouched when the content is unchanged. File output
// never carries ANSI styling.
func reportToFile(ctx context.Context, path string, repOpts reporter.Options, result *runner.Result) error {
	logger := logging.Default()

	var buf bytes.Buffer
	repOpts.Writer = &buf
	repOpts.Color = "never"
	repOpts.ShowSummary = false

	rep, err := reporter.New(repOpts)
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}
	if err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	changed, err := fsutil.WriteAtomicIfChanged(ctx, path, buf.Bytes(), 0)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if changed {
		logger.Info("wrote output", logging.FieldOutput, path)
	} else {
		logger.Info("output unchanged", logging.FieldOutput, path)
	}

	return nil
}

func addParseFlags(cmd *cobra.Command, flags *parseFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, summary")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "write output to a file instead of stdout")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "block rules to disable (heading, fence, list)")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&flags.failFast, "fail-fast", false, "stop at the first file that fails")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "traverse directory symlinks during discovery")
	cmd.Flags().BoolVar(&flags.leaves, "leaves", false, "include inline leaf nodes in text trees")
	cmd.Flags().BoolVar(&flags.noSummary, "no-summary", false, "hide the summary line")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output where the format supports it")
}
