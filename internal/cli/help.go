package cli

import (
	"io"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdtree/internal/ui/pretty"
)

// helpStyles holds the Lipgloss styles used in rendered help text. The
// palette mirrors the tree renderer so help and output look related.
type helpStyles struct {
	command    lipgloss.Style
	heading    lipgloss.Style
	subcommand lipgloss.Style
	flag       lipgloss.Style
	muted      lipgloss.Style
}

func newHelpStyles(colorEnabled bool) *helpStyles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return &helpStyles{
			command:    plain,
			heading:    plain,
			subcommand: plain,
			flag:       plain,
			muted:      plain,
		}
	}
	return &helpStyles{
		command:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		heading:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		subcommand: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		flag:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

const usageTemplate = `{{heading "Usage:"}}
  {{if .Runnable}}{{command .UseLine}}{{end}}
  {{if .HasAvailableSubCommands}}{{command .CommandPath}} [command]{{end}}

{{- if gt (len .Aliases) 0}}

{{heading "Aliases:"}}
  {{muted (join .Aliases ", ")}}
{{- end}}

{{- if .HasExample}}

{{heading "Examples:"}}
{{muted .Example}}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{heading "Available Commands:"}}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{subcommand (rpad .Name .NamePadding)}} {{.Short}}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{heading "Flags:"}}
{{flagUsages .LocalFlags}}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{heading "Global Flags:"}}
{{flagUsages .InheritedFlags}}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{command (print .CommandPath " [command] --help")}}" for more information about a command.
{{- end}}
`

const helpTemplate = `{{with (or .Long .Short)}}{{. | trimRight}}

{{end}}` + usageTemplate

// HelpFormatter renders styled usage and help text for Cobra commands.
// Templates are parsed once at construction.
type HelpFormatter struct {
	styles *helpStyles
	usage  *template.Template
	help   *template.Template
}

// NewHelpFormatter creates a help formatter for the given color mode.
func NewHelpFormatter(colorMode string, writer io.Writer) *HelpFormatter {
	f := &HelpFormatter{
		styles: newHelpStyles(pretty.IsColorEnabled(colorMode, writer)),
	}

	funcs := template.FuncMap{
		"heading":    f.styles.heading.Render,
		"command":    f.styles.command.Render,
		"subcommand": f.styles.subcommand.Render,
		"muted":      f.styles.muted.Render,
		"flagUsages": f.renderFlagUsages,
		"rpad":       rpad,
		"trimRight":  trimTrailingSpace,
		"join":       strings.Join,
	}

	f.usage = template.Must(template.New("usage").Funcs(funcs).Parse(usageTemplate))
	f.help = template.Must(template.New("help").Funcs(funcs).Parse(helpTemplate))

	return f
}

// ApplyToCommand installs the styled templates on a command. Cobra
// resolves usage and help functions through the parent chain, so applying
// to the root covers every subcommand.
func (f *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		return f.usage.Execute(c.OutOrStdout(), c)
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := f.help.Execute(c.OutOrStdout(), c); err != nil {
			c.PrintErrln(err)
		}
	})
}

// renderFlagUsages styles the pflag usage block line by line.
func (f *HelpFormatter) renderFlagUsages(flags interface{ FlagUsages() string }) string {
	usages := strings.TrimSuffix(flags.FlagUsages(), "\n")
	if usages == "" {
		return ""
	}

	lines := strings.Split(usages, "\n")
	for i, line := range lines {
		lines[i] = f.renderFlagLine(line)
	}
	return strings.Join(lines, "\n")
}

// renderFlagLine styles one usage line of the form
// "  -f, --flag type   description". Wrapped description continuation
// lines have no flag part and pass through unstyled.
func (f *HelpFormatter) renderFlagLine(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(trimmed)]

	boundary := strings.Index(trimmed, "  ")
	if boundary < 0 {
		return line
	}
	flagPart := strings.TrimRight(trimmed[:boundary], " ")
	desc := strings.TrimLeft(trimmed[boundary:], " ")

	tokens := strings.Fields(flagPart)
	for i, tok := range tokens {
		if name, hadComma := strings.CutSuffix(tok, ","); strings.HasPrefix(name, "-") {
			tok = f.styles.flag.Render(name)
			if hadComma {
				tok += ","
			}
		} else {
			// Value type hint, e.g. "string" or "int".
			tok = f.styles.muted.Render(tok)
		}
		tokens[i] = tok
	}

	return indent + strings.Join(tokens, " ") + "   " + desc
}

// rpad pads a string to the given width with trailing spaces.
func rpad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// trimTrailingSpace trims trailing spaces and tabs from every line.
func trimTrailingSpace(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
