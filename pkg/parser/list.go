package parser

import (
	"strconv"

	"github.com/yaklabco/mdtree/pkg/mdast"
)

// listRule recognizes bullet lists ('-', '*', '+' markers) and ordered
// lists ('1.', '1)' markers). A list holds one list item per marker
// line; item content is flat inline leaves.
type listRule struct{}

func (listRule) Name() string { return "list" }

// Open matches a list marker followed by whitespace. The marker
// character and delimiter are derived from the token kind; the ordered
// start number is filled in when the first item is consumed, since the
// lookahead carries no source text. Nothing is consumed at open time.
func (listRule) Open(t *mdast.Tree, _ mdast.NodeID, a, b, _ mdast.Token) (Link, bool) {
	if b.Kind != mdast.TokWhitespace {
		return Link{}, false
	}

	var attrs *mdast.ListAttrs
	switch a.Kind {
	case mdast.TokDash:
		attrs = &mdast.ListAttrs{BulletMarker: '-'}
	case mdast.TokAsterisk:
		attrs = &mdast.ListAttrs{BulletMarker: '*'}
	case mdast.TokPlus:
		attrs = &mdast.ListAttrs{BulletMarker: '+'}
	case mdast.TokNumDot:
		attrs = &mdast.ListAttrs{Ordered: true, Delimiter: '.'}
	case mdast.TokNumParen:
		attrs = &mdast.ListAttrs{Ordered: true, Delimiter: ')'}
	default:
		return Link{}, false
	}

	node := t.NewNode(mdast.NodeList, a.StartOffset)
	t.Node(node).List = attrs
	return Link{Node: node, Pos: a.StartOffset}, true
}

// Consume continues the list when the line at start opens with a marker
// of the same family (ordered vs bullet) followed by whitespace, taking
// the line as a new list item. Items close at their line end; a line
// without a matching marker ends the list.
func (listRule) Consume(t *mdast.Tree, node mdast.NodeID, start int, source []byte) (int, bool) {
	a, b, _ := lookahead(source, start)
	attrs := t.Node(node).List
	if !isListMarker(a.Kind, attrs.Ordered) || b.Kind != mdast.TokWhitespace {
		return 0, false
	}

	if attrs.Ordered && len(t.Node(node).Children) == 0 {
		attrs.StartNumber = markerNumber(a.Text(source))
	}

	item := t.NewNode(mdast.NodeListItem, a.StartOffset)
	t.Append(node, item)

	pos := b.EndOffset
	if p, ok := consumeLeaf(t, item, pos, source); ok {
		pos = p
	}
	t.Close(item, pos)
	return pos, true
}

// isListMarker reports whether a token kind is a list marker of the
// given family.
func isListMarker(k mdast.TokenKind, ordered bool) bool {
	if ordered {
		return k == mdast.TokNumDot || k == mdast.TokNumParen
	}
	return k == mdast.TokDash || k == mdast.TokAsterisk || k == mdast.TokPlus
}

// markerNumber parses the digits of an ordered-list marker token, whose
// final byte is the delimiter.
func markerNumber(text []byte) int {
	if len(text) < 2 {
		return 0
	}
	// The token shape guarantees digits before the delimiter.
	n, _ := strconv.Atoi(string(text[:len(text)-1]))
	return n
}
