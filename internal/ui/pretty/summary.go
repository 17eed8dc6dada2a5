package pretty

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/yaklabco/mdtree/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "parsed 3 files (214 nodes, 8.4 KiB, 1.2ms)".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats) string {
	if stats.FilesDiscovered == 0 {
		return s.Warning.Render("no Markdown files found") + "\n"
	}

	detail := s.Dim.Render(fmt.Sprintf(" (%d nodes, %s, %s)",
		stats.NodesTotal,
		formatBytes(stats.BytesTotal),
		formatDuration(stats.Duration),
	))

	parsedWord := wordFiles
	if stats.FilesParsed == 1 {
		parsedWord = wordFile
	}

	if stats.FilesFailed == 0 {
		return s.Success.Render(fmt.Sprintf("parsed %d %s", stats.FilesParsed, parsedWord)) + detail + "\n"
	}

	failedWord := wordFiles
	if stats.FilesFailed == 1 {
		failedWord = wordFile
	}

	var parts []string
	parts = append(parts, s.Failure.Render(fmt.Sprintf("%d %s failed", stats.FilesFailed, failedWord)))
	parts = append(parts, fmt.Sprintf("%d parsed", stats.FilesParsed))

	return strings.Join(parts, ", ") + detail + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats) string {
	var builder strings.Builder

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	// Files
	builder.WriteString("  Files discovered: " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesDiscovered)) + "\n")

	builder.WriteString("  Files parsed:     " +
		s.SummaryValue.Render(strconv.Itoa(stats.FilesParsed)) + "\n")

	if stats.FilesFailed > 0 {
		builder.WriteString("  Files failed:     " +
			s.Failure.Render(strconv.Itoa(stats.FilesFailed)) + "\n")
	}

	builder.WriteString("\n")

	// Content totals
	builder.WriteString("  Nodes:            " +
		s.SummaryValue.Render(strconv.Itoa(stats.NodesTotal)) + "\n")
	builder.WriteString("  Lines:            " +
		s.SummaryValue.Render(strconv.Itoa(stats.LinesTotal)) + "\n")
	builder.WriteString("  Bytes:            " +
		s.SummaryValue.Render(formatBytes(stats.BytesTotal)) + "\n")
	builder.WriteString("  Duration:         " +
		s.SummaryValue.Render(formatDuration(stats.Duration)) + "\n")

	builder.WriteString("\n")

	// Overall status
	switch {
	case stats.FilesFailed > 0:
		builder.WriteString(s.Failure.Render("Parse completed with failures"))
	case stats.FilesDiscovered == 0:
		builder.WriteString(s.Warning.Render("No files found"))
	default:
		builder.WriteString(s.Success.Render("Parse succeeded"))
	}
	builder.WriteString("\n")

	return builder.String()
}

// formatBytes renders a byte count in binary units with one decimal.
func formatBytes(n int) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := int64(n) / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMG"[exp])
}

// formatDuration rounds a duration to a readable precision.
func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return d.Round(10 * time.Millisecond).String()
	case d >= time.Millisecond:
		return d.Round(10 * time.Microsecond).String()
	default:
		return d.Round(time.Microsecond).String()
	}
}
