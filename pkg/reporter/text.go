package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/mdtree/internal/ui/pretty"
	"github.com/yaklabco/mdtree/pkg/mdast"
	"github.com/yaklabco/mdtree/pkg/runner"
)

// Tree guide fragments. Child prefixes are the same width as the
// guides so nested labels stay aligned.
const (
	treeGuideMid  = "├── "
	treeGuideLast = "└── "
	treeGuideBar  = "│   "
	treeGuideGap  = "    "
)

// TextReporter renders document trees as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (err error) {
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

	// Single-file output skips the per-file header.
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
			fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, file.Document.Tree.Len()))
		}

		r.writeTree(file.Document)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return nil
}

// writeTree writes one document's tree, root label first.
func (r *TextReporter) writeTree(doc *mdast.Document) {
	root := doc.Tree.Root()
	fmt.Fprintln(r.bw, r.styles.FormatNodeLine(doc, root))
	r.writeChildren(doc, root, "")
}

// writeChildren recursively writes the subtree below id with box-drawing
// guides. prefix accumulates the guide columns of the ancestors.
func (r *TextReporter) writeChildren(doc *mdast.Document, id mdast.NodeID, prefix string) {
	children := r.visibleChildren(doc, id)

	for i, child := range children {
		guide, childPrefix := treeGuideMid, prefix+treeGuideBar
		if i == len(children)-1 {
			guide, childPrefix = treeGuideLast, prefix+treeGuideGap
		}

		fmt.Fprintln(r.bw, r.styles.TreeGuide.Render(prefix+guide)+r.styles.FormatNodeLine(doc, child))
		r.writeChildren(doc, child, childPrefix)
	}
}

// visibleChildren filters inline leaves out of text output unless
// ShowLeaves is set.
func (r *TextReporter) visibleChildren(doc *mdast.Document, id mdast.NodeID) []mdast.NodeID {
	children := doc.Tree.Node(id).Children
	if r.opts.ShowLeaves {
		return children
	}

	visible := make([]mdast.NodeID, 0, len(children))
	for _, child := range children {
		if doc.Tree.Node(child).IsContainer() {
			visible = append(visible, child)
		}
	}
	return visible
}
