// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Severity styles
	Error   lipgloss.Style
	Warning lipgloss.Style

	// Tree components
	FilePath  lipgloss.Style
	TreeGuide lipgloss.Style
	Document  lipgloss.Style
	Heading   lipgloss.Style
	Container lipgloss.Style
	Fence     lipgloss.Style
	Paragraph lipgloss.Style
	Leaf      lipgloss.Style
	Attr      lipgloss.Style
	Span      lipgloss.Style
	Snippet   lipgloss.Style

	// Token components
	TokenKind lipgloss.Style
	TokenText lipgloss.Style

	// Summary styles
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	// Table styles
	TableHeader    lipgloss.Style
	TableSeparator lipgloss.Style
	TableLegend    lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		// Severity colors
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),

		// Tree components
		FilePath:  lipgloss.NewStyle().Bold(true),
		TreeGuide: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Document:  lipgloss.NewStyle().Bold(true),
		Heading:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		Container: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Fence:     lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Paragraph: lipgloss.NewStyle(),
		Leaf:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Attr:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Span:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Snippet:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),

		// Token components
		TokenKind: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		TokenText: lipgloss.NewStyle().Foreground(lipgloss.Color("7")),

		// Summary styles
		SummaryTitle: lipgloss.NewStyle().Bold(true),
		SummaryValue: lipgloss.NewStyle(),
		Success:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		// Table styles
		TableHeader:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7")),
		TableSeparator: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		TableLegend:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),

		// Misc
		Dim:  lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: lipgloss.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Error:          plain,
		Warning:        plain,
		FilePath:       plain,
		TreeGuide:      plain,
		Document:       plain,
		Heading:        plain,
		Container:      plain,
		Fence:          plain,
		Paragraph:      plain,
		Leaf:           plain,
		Attr:           plain,
		Span:           plain,
		Snippet:        plain,
		TokenKind:      plain,
		TokenText:      plain,
		SummaryTitle:   plain,
		SummaryValue:   plain,
		Success:        plain,
		Failure:        plain,
		TableHeader:    plain,
		TableSeparator: plain,
		TableLegend:    plain,
		Dim:            plain,
		Bold:           plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		// Check if output is a TTY
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
