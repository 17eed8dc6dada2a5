package parser

import (
	"github.com/yaklabco/mdtree/pkg/mdast"
)

// maxHeadingLevel bounds how long a hash run can be and still open a
// heading.
const maxHeadingLevel = 6

// headingRule recognizes ATX headings: a run of one to six '#'
// characters followed by whitespace.
type headingRule struct{}

func (headingRule) Name() string { return "heading" }

// Open matches the lookahead pattern Hash, Whitespace, <anything>. The
// heading's level is the hash run's length and its start is the run's
// start; consumption stops right after the separating whitespace,
// before any heading text. The third lookahead slot is not inspected.
func (headingRule) Open(t *mdast.Tree, _ mdast.NodeID, a, b, _ mdast.Token) (Link, bool) {
	if a.Kind != mdast.TokHash || b.Kind != mdast.TokWhitespace {
		return Link{}, false
	}

	level := a.Len()
	if level > maxHeadingLevel {
		return Link{}, false
	}

	node := t.NewNode(mdast.NodeHeading, a.StartOffset)
	t.Node(node).HeadingLevel = level
	return Link{Node: node, Pos: b.EndOffset}, true
}

// Consume takes the rest of the line as inline content. Headings cannot
// be continued onto the next line, so the node closes on this first
// Consume regardless of outcome: at the scanned position on success, or
// as an empty heading at start when the line has nothing left.
func (headingRule) Consume(t *mdast.Tree, node mdast.NodeID, start int, source []byte) (int, bool) {
	if p, ok := consumeLeaf(t, node, start, source); ok {
		t.Close(node, p)
		return p, true
	}

	t.Close(node, start)
	return 0, false
}
