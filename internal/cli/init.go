package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdtree/internal/configloader"
	"github.com/yaklabco/mdtree/internal/logging"
	"github.com/yaklabco/mdtree/pkg/config"
	"github.com/yaklabco/mdtree/pkg/fsutil"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0644

// defaultConfigFileName is what init creates; it is the first name the
// config discovery searches for.
const defaultConfigFileName = ".mdtree.yaml"

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new mdtree configuration file",
		Long: `Create a new .mdtree.yaml configuration file in the current directory
with sensible defaults. The file can be customized to change the output
format, disable block rules, and tune discovery.

Examples:
  mdtree init                    Create minimal .mdtree.yaml
  mdtree init --full             Create full config with every option documented
  mdtree init --output custom.yaml  Write to a custom file path`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return runInit(ctx, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "Overwrite existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "Generate full template with every option documented")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path (default: .mdtree.yaml)")

	return cmd
}

func runInit(ctx context.Context, flags *initFlags) error {
	logger := logging.NewInteractive()

	// Determine output path
	outputPath := flags.output
	if outputPath == "" {
		outputPath = defaultConfigFileName
	}

	// Make path absolute
	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	// Check if file exists
	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("file %q already exists; use --force to overwrite", outputPath)
		}

		// Keep the old file around as a sidecar backup before replacing it.
		created, err := fsutil.CreateBackup(ctx, absPath)
		if err != nil {
			return fmt.Errorf("back up existing file: %w", err)
		}
		if created {
			logger.Info("backed up existing file", logging.FieldPath, fsutil.BackupPath(outputPath))
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	content := config.GenerateTemplate(config.TemplateOptions{Full: flags.full})
	if flags.full {
		content = append(content, envVarsAppendix()...)
	}

	if err := fsutil.WriteAtomic(ctx, absPath, content, configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)

	if flags.full {
		logger.Info("full template documents every option and environment variable")
	}

	logger.Info("customize your configuration by editing the file")

	return nil
}

// envVarsAppendix renders the supported environment variables as a
// trailing comment block for the full template.
func envVarsAppendix() []byte {
	vars := configloader.ListEnvVars()

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("\n# Environment variable overrides (highest precedence after CLI flags):\n")
	for _, name := range names {
		fmt.Fprintf(&b, "#   %s: %s\n", name, vars[name])
	}
	return []byte(b.String())
}
