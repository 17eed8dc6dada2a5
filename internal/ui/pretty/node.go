package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/mdtree/pkg/mdast"
)

// snippetMaxLen bounds the source text echoed next to a node label.
const snippetMaxLen = 40

// FormatNodeLine formats a single node label for tree output: the kind,
// kind-specific attributes, the byte span, and a short source snippet
// for text-bearing nodes.
func (s *Styles) FormatNodeLine(doc *mdast.Document, id mdast.NodeID) string {
	n := doc.Tree.Node(id)

	parts := []string{s.FormatKind(n.Kind)}

	if attrs := attrString(n); attrs != "" {
		parts = append(parts, s.Attr.Render(attrs))
	}

	parts = append(parts, s.FormatSpan(n.StartOffset, n.EndOffset))

	if text := snippetText(doc, id); len(text) > 0 {
		parts = append(parts, s.FormatSnippet(text))
	}

	return strings.Join(parts, " ")
}

// FormatKind returns the styled kind name for a node.
func (s *Styles) FormatKind(kind mdast.NodeKind) string {
	return s.kindStyle(kind).Render(kind.String())
}

// FormatSpan returns a styled half-open byte interval.
func (s *Styles) FormatSpan(start, end int) string {
	return s.Span.Render(fmt.Sprintf("[%d..%d)", start, end))
}

// FormatSnippet returns a quoted, truncated echo of source text. Go
// escaping keeps newlines and tabs visible on a single output line.
func (s *Styles) FormatSnippet(text []byte) string {
	return s.Snippet.Render(strconv.Quote(truncateString(string(text), snippetMaxLen)))
}

// FormatFileHeader formats a file header for multi-file tree output.
func (s *Styles) FormatFileHeader(path string, nodeCount int) string {
	header := s.FilePath.Render(path)
	if nodeCount > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d nodes)", nodeCount))
	}
	return header
}

// kindStyle maps a node kind to its display style.
func (s *Styles) kindStyle(kind mdast.NodeKind) lipgloss.Style {
	switch kind {
	case mdast.NodeDocument:
		return s.Document
	case mdast.NodeHeading:
		return s.Heading
	case mdast.NodeBlockquote, mdast.NodeList, mdast.NodeListItem:
		return s.Container
	case mdast.NodeCodeFence:
		return s.Fence
	case mdast.NodeParagraph:
		return s.Paragraph
	default:
		return s.Leaf
	}
}

// attrString builds the unstyled attribute summary for a node. Most
// kinds have none.
func attrString(n *mdast.Node) string {
	switch n.Kind {
	case mdast.NodeHeading:
		return fmt.Sprintf("level=%d", n.HeadingLevel)
	case mdast.NodeList:
		if n.List == nil {
			return ""
		}
		if n.List.Ordered {
			return fmt.Sprintf("ordered start=%d delim=%c", n.List.StartNumber, n.List.Delimiter)
		}
		return fmt.Sprintf("bullet marker=%c", n.List.BulletMarker)
	case mdast.NodeCodeFence:
		if n.Fence == nil {
			return ""
		}
		if n.Fence.Info == "" {
			return fmt.Sprintf("fence=%d", n.Fence.FenceLength)
		}
		return fmt.Sprintf("fence=%d info=%q", n.Fence.FenceLength, n.Fence.Info)
	default:
		return ""
	}
}

// snippetText picks the source text echoed for a node. Headings echo
// their title (children start past the marker), paragraphs and leaves
// echo their own span, structural containers echo nothing.
func snippetText(doc *mdast.Document, id mdast.NodeID) []byte {
	switch doc.Tree.Node(id).Kind {
	case mdast.NodeHeading:
		return doc.ContentText(id)
	case mdast.NodeParagraph, mdast.NodePlaintext, mdast.NodeWhitespace:
		return doc.NodeText(id)
	default:
		return nil
	}
}
