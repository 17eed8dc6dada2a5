package reporter

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/mdtree/internal/ui/pretty"
	"github.com/yaklabco/mdtree/pkg/mdast"
	"github.com/yaklabco/mdtree/pkg/runner"
)

// outlineIndent is the per-level indent for nested headings.
const outlineIndent = "  "

// OutlineReporter renders the heading skeleton of each document: one
// line per heading with its source line number, and fenced code blocks
// listed under the heading they follow.
type OutlineReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewOutlineReporter creates a new outline reporter.
func NewOutlineReporter(opts Options) *OutlineReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &OutlineReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *OutlineReporter) Report(_ context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Warning.Render("No Markdown files found."))
		}
		return nil
	}

	multi := len(result.Files) > 1

	for i, file := range result.Files {
		path := displayPath(file.Path, r.opts.WorkingDir)

		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		if file.Document == nil || file.Document.Tree == nil {
			continue
		}

		if multi {
			if i > 0 {
				fmt.Fprintln(r.bw)
			}
			fmt.Fprintln(r.bw, r.styles.FilePath.Render(path))
		}

		r.writeOutline(file.Document)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return nil
}

// writeOutline walks one document and prints its heading and fence
// lines in source order. Fences indent one step past the heading that
// precedes them.
func (r *OutlineReporter) writeOutline(doc *mdast.Document) {
	depth := 0
	printed := false

	//nolint:errcheck // the callback never returns an error
	doc.Tree.Walk(doc.Tree.Root(), func(t *mdast.Tree, id mdast.NodeID) error {
		n := t.Node(id)
		switch n.Kind {
		case mdast.NodeHeading:
			depth = n.HeadingLevel
			printed = true
			r.writeHeadingLine(doc, id, n.HeadingLevel)
		case mdast.NodeCodeFence:
			printed = true
			r.writeFenceLine(doc, id, depth)
		}
		return nil
	})

	if !printed {
		fmt.Fprintln(r.bw, r.styles.Dim.Render("(no headings)"))
	}
}

func (r *OutlineReporter) writeHeadingLine(doc *mdast.Document, id mdast.NodeID, level int) {
	pos := doc.PositionFor(doc.Tree.SourceRange(id))
	title := string(bytes.TrimSpace(doc.ContentText(id)))
	if title == "" {
		title = "(untitled)"
	}

	fmt.Fprintf(r.bw, "%s  %s%s\n",
		r.styles.Dim.Render(fmt.Sprintf("%5d", pos.StartLine)),
		strings.Repeat(outlineIndent, level-1),
		r.styles.Heading.Render(title),
	)
}

func (r *OutlineReporter) writeFenceLine(doc *mdast.Document, id mdast.NodeID, depth int) {
	pos := doc.PositionFor(doc.Tree.SourceRange(id))
	language := resolveLanguage(doc, id)
	lines := countLines(doc.ContentText(id))
	word := "lines"
	if lines == 1 {
		word = "line"
	}

	fmt.Fprintf(r.bw, "%s  %s%s\n",
		r.styles.Dim.Render(fmt.Sprintf("%5d", pos.StartLine)),
		strings.Repeat(outlineIndent, depth),
		r.styles.Fence.Render(fmt.Sprintf("[%s, %d %s]", language, lines, word)),
	)
}

// countLines returns the number of lines covered by text. A final line
// without a trailing newline still counts.
func countLines(text []byte) int {
	n := bytes.Count(text, []byte{'\n'})
	if len(text) > 0 && text[len(text)-1] != '\n' {
		n++
	}
	return n
}
