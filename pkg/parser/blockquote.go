package parser

import (
	"github.com/yaklabco/mdtree/pkg/mdast"
)

// blockquoteRule recognizes '>' quote lines. Quote content is held as
// flat inline leaves: markers inside a quote degrade to plaintext
// rather than opening nested blocks.
type blockquoteRule struct{}

func (blockquoteRule) Name() string { return "blockquote" }

// Open matches a leading right-caret. Nothing is consumed at open time;
// every Consume call handles one full marker line, the first included.
func (blockquoteRule) Open(t *mdast.Tree, _ mdast.NodeID, a, _, _ mdast.Token) (Link, bool) {
	if a.Kind != mdast.TokRightCaret {
		return Link{}, false
	}

	node := t.NewNode(mdast.NodeBlockquote, a.StartOffset)
	return Link{Node: node, Pos: a.StartOffset}, true
}

// Consume continues the quote when the line at start opens with a
// right-caret: the marker and its optional separating whitespace are
// skipped and the remainder of the line is taken as inline content. A
// bare marker line continues the quote without content. A line without
// the marker ends the quote.
func (blockquoteRule) Consume(t *mdast.Tree, node mdast.NodeID, start int, source []byte) (int, bool) {
	a, b, _ := lookahead(source, start)
	if a.Kind != mdast.TokRightCaret {
		return 0, false
	}

	pos := a.EndOffset
	if b.Kind == mdast.TokWhitespace {
		pos = b.EndOffset
	}

	if p, ok := consumeLeaf(t, node, pos, source); ok {
		return p, true
	}
	return pos, true
}
