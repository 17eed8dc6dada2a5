package parser

import (
	"github.com/yaklabco/mdtree/pkg/mdast"
)

// paragraphRule is the fallback block: any content line no other rule
// claims becomes paragraph text. Paragraphs stay open across lines and
// are closed by the driver on a blank line, at end of input, or when
// another rule opens a new block.
type paragraphRule struct{}

func (paragraphRule) Name() string { return "paragraph" }

// Open matches any present, non-newline lookahead. Nothing is consumed
// at open time; the first Consume takes the whole line.
func (paragraphRule) Open(t *mdast.Tree, _ mdast.NodeID, a, _, _ mdast.Token) (Link, bool) {
	if a.IsNone() || a.Kind == mdast.TokNewline {
		return Link{}, false
	}

	node := t.NewNode(mdast.NodeParagraph, a.StartOffset)
	return Link{Node: node, Pos: a.StartOffset}, true
}

// Consume takes one line of inline content and leaves the paragraph
// open for lazy continuation.
func (paragraphRule) Consume(t *mdast.Tree, node mdast.NodeID, start int, source []byte) (int, bool) {
	return consumeLeaf(t, node, start, source)
}
