package config

import (
	"bytes"
	"fmt"
	"strings"
)

// commentWrapWidth is the maximum width for wrapped comments in templates.
const commentWrapWidth = 70

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes every block rule with its documentation.
	// If false, generates a minimal template.
	Full bool
}

// RuleInfo contains block rule metadata for template generation.
type RuleInfo struct {
	Name        string
	Description string
}

// GenerateTemplate creates a configuration file template.
func GenerateTemplate(opts TemplateOptions) []byte {
	if opts.Full {
		return generateFullTemplate()
	}
	return generateMinimalTemplate()
}

// generateMinimalTemplate creates a minimal commented template.
func generateMinimalTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(`# mdtree configuration
# See: https://github.com/yaklabco/mdtree

# Default output format: text, json, or summary
format: text

# Number of parallel workers (0 = auto)
# jobs: 0

# File patterns to ignore (glob patterns)
# ignore:
#   - "vendor/**"
#   - "node_modules/**"

# Block rules to disable; disabled markers fall through to the
# paragraph rule, which always runs
# disabled_rules:
#   - fence
#   - list
`)

	return buf.Bytes()
}

// generateFullTemplate creates a full template with all block rules documented.
func generateFullTemplate() []byte {
	var buf bytes.Buffer

	buf.WriteString(`# mdtree configuration - Full Template
# See: https://github.com/yaklabco/mdtree
#
# This template lists every block rule with its documentation.
# Uncomment and modify settings as needed.

# Default output format: text, json, or summary
format: text

# Number of parallel workers (0 = auto based on CPU cores)
jobs: 0

# File patterns to ignore (glob patterns)
ignore:
  - "vendor/**"
  - "node_modules/**"
  - ".git/**"

# Block rules to disable. Lines a disabled rule would have claimed fall
# through to the paragraph rule, which cannot be disabled.
disabled_rules: []

# Available block rules:
`)

	for _, rule := range blockRuleInfos() {
		buf.WriteString("#\n")
		buf.WriteString(fmt.Sprintf("#   %s:\n", rule.Name))
		buf.WriteString(fmt.Sprintf("#     %s\n", wrapComment(rule.Description, commentWrapWidth)))
	}

	return buf.Bytes()
}

// blockRuleInfos returns information about the block rules the parser knows.
func blockRuleInfos() []RuleInfo {
	return []RuleInfo{
		{
			Name:        "blockquote",
			Description: "Lines starting with > collected into a flat quote block",
		},
		{
			Name:        "heading",
			Description: "ATX headings: one to six # characters, a space, then the heading text",
		},
		{
			Name:        "fence",
			Description: "Backtick code fences with an optional info string; blank lines stay inside the fence until the closing fence or end of file",
		},
		{
			Name:        "list",
			Description: "Bullet (-, *, +) and ordered (1. or 1)) lists, one marker line per item",
		},
	}
}

// wrapComment wraps a comment to fit within maxWidth characters.
func wrapComment(text string, maxWidth int) string {
	if len(text) <= maxWidth {
		return text
	}

	var lines []string
	words := strings.Fields(text)
	currentLine := ""

	for _, word := range words {
		switch {
		case currentLine == "":
			currentLine = word
		case len(currentLine)+1+len(word) <= maxWidth:
			currentLine += " " + word
		default:
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n#     ")
}

// DefaultTemplateHeader returns the default header for generated configs.
func DefaultTemplateHeader() string {
	return `# mdtree configuration
# See: https://github.com/yaklabco/mdtree`
}
