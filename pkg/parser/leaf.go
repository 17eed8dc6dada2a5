package parser

import (
	"github.com/yaklabco/mdtree/pkg/mdast"
)

// consumeLeaf scans inline content from start to the end of the current
// line, converting each token to a leaf child of node. The terminating
// newline is not consumed; line boundaries belong to the driver. It
// reports false when nothing stands before the line boundary.
func consumeLeaf(t *mdast.Tree, node mdast.NodeID, start int, source []byte) (int, bool) {
	tz := NewTokenizer(start, source)
	pos := start
	consumed := false

	for {
		tok, ok := tz.Next()
		if !ok || tok.Kind == mdast.TokNewline {
			break
		}
		t.AppendLeaf(node, tok)
		pos = tok.EndOffset
		consumed = true
	}

	if !consumed {
		return 0, false
	}
	return pos, true
}
