package reporter

import (
	"github.com/yaklabco/mdtree/pkg/langdetect"
	"github.com/yaklabco/mdtree/pkg/mdast"
)

// resolveLanguage returns the display language for a fenced code block.
// A non-empty info string wins after normalization; otherwise the fence
// body is classified by content.
func resolveLanguage(doc *mdast.Document, id mdast.NodeID) string {
	n := doc.Tree.Node(id)
	if n.Fence != nil && n.Fence.Info != "" {
		return langdetect.Normalize(n.Fence.Info)
	}

	// Fence children cover only the body lines, so the content range
	// excludes the opening and closing fence markers.
	return langdetect.Detect(doc.ContentText(id))
}
