package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/mdtree/pkg/mdast"
)

// Table formatting constants.
const (
	tablePadding     = 2
	tableColumnCount = 3 // KIND, SPAN, TEXT
	minKindWidth     = 10
	minSpanWidth     = 12
	minTextWidth     = 20
	heavySeparator   = "="
	defaultTermWidth = 100

	// tokenTextMaxLen bounds the raw text echoed per token before quoting.
	tokenTextMaxLen = 60
)

// TokenRow represents a single row in the token table.
type TokenRow struct {
	Kind string
	Span string
	Text string
}

// TableFormatter formats token streams as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

// FormatTokenTable formats a token stream as a styled table with a
// coverage footer. Token text is echoed quoted so whitespace and
// newlines stay visible.
func (t *TableFormatter) FormatTokenTable(tokens []mdast.Token, content []byte) string {
	rows := make([]TokenRow, 0, len(tokens))
	for _, tok := range tokens {
		rows = append(rows, TokenRow{
			Kind: tok.Kind.String(),
			Span: fmt.Sprintf("[%d..%d)", tok.StartOffset, tok.EndOffset),
			Text: strconv.Quote(truncateString(string(tok.Text(content)), tokenTextMaxLen)),
		})
	}

	colWidths := t.calculateColumnWidths(rows)

	var builder strings.Builder

	builder.WriteString(t.formatHeader(colWidths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(colWidths))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(t.formatRow(row, colWidths))
		builder.WriteString("\n")
	}

	builder.WriteString(t.formatSeparator(colWidths))
	builder.WriteString("\n")

	builder.WriteString(t.formatCoverage(tokens, len(content)))
	builder.WriteString("\n")

	builder.WriteString(t.styles.TableLegend.Render(" text is quoted with Go escapes and truncated past " +
		strconv.Itoa(tokenTextMaxLen) + " bytes"))
	builder.WriteString("\n")

	return builder.String()
}

type tokenColumnWidths struct {
	kind int
	span int
	text int
}

// calculateColumnWidths sizes columns to content, constrained to the
// terminal width; only the TEXT column shrinks.
func (t *TableFormatter) calculateColumnWidths(rows []TokenRow) tokenColumnWidths {
	widths := tokenColumnWidths{
		kind: minKindWidth,
		span: minSpanWidth,
		text: minTextWidth,
	}

	for _, row := range rows {
		if len(row.Kind) > widths.kind {
			widths.kind = len(row.Kind)
		}
		if len(row.Span) > widths.span {
			widths.span = len(row.Span)
		}
		if len(row.Text) > widths.text {
			widths.text = len(row.Text)
		}
	}

	totalWidth := widths.kind + widths.span + widths.text + (tablePadding * tableColumnCount)
	if totalWidth > t.termWidth {
		excess := totalWidth - t.termWidth
		widths.text = max(minTextWidth, widths.text-excess)
	}

	return widths
}

// formatHeader formats the table header row.
func (t *TableFormatter) formatHeader(widths tokenColumnWidths) string {
	header := fmt.Sprintf(" %-*s  %-*s  %-*s",
		widths.kind, "KIND",
		widths.span, "SPAN",
		widths.text, "TEXT",
	)
	return t.styles.TableHeader.Render(header)
}

// formatSeparator formats a full-width separator line.
func (t *TableFormatter) formatSeparator(widths tokenColumnWidths) string {
	totalWidth := widths.kind + widths.span + widths.text + (tablePadding * tableColumnCount)
	return t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, totalWidth))
}

// formatRow formats a single token row.
func (t *TableFormatter) formatRow(row TokenRow, widths tokenColumnWidths) string {
	return fmt.Sprintf(" %s  %s  %s",
		t.styles.TokenKind.Render(padRight(row.Kind, widths.kind)),
		t.styles.Span.Render(padRight(row.Span, widths.span)),
		t.styles.TokenText.Render(truncateString(row.Text, widths.text)),
	)
}

// formatCoverage formats the footer line stating whether the tokens
// tile the content exactly.
func (t *TableFormatter) formatCoverage(tokens []mdast.Token, contentLen int) string {
	tokenWord := "tokens"
	if len(tokens) == 1 {
		tokenWord = "token"
	}
	counts := fmt.Sprintf(" %d %s, %d bytes, ", len(tokens), tokenWord, contentLen)

	if mdast.ValidateTokens(tokens, contentLen) {
		return counts + t.styles.Success.Render("coverage ok")
	}
	return counts + t.styles.Failure.Render("coverage broken")
}

// padRight pads a string to the given width with spaces on the right.
// This must be called BEFORE applying ANSI styles.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(str string, maxLen int) string {
	if len(str) <= maxLen {
		return str
	}
	if maxLen <= 3 {
		return str[:maxLen]
	}
	return str[:maxLen-3] + "..."
}
