package parser

import (
	"bytes"
	"strings"

	"github.com/yaklabco/mdtree/pkg/mdast"
)

// minFenceLength is the smallest run of backticks that opens a code
// fence.
const minFenceLength = 3

// fenceRule recognizes fenced code blocks opened by a run of three or
// more backticks. Fences are greedy: blank lines become content rather
// than closing the block, and every line before the closing marker is
// kept as a raw plaintext leaf. The rule carries the document source
// because the opener's info string extends past the lookahead tokens.
type fenceRule struct {
	source []byte
}

func (fenceRule) Name() string { return "fence" }

// Open matches a plaintext token that begins with at least three
// backticks. The rest of the opener line is taken as the info string,
// and the opening position skips to the line end so content starts on
// the following line.
func (r fenceRule) Open(t *mdast.Tree, _ mdast.NodeID, a, _, _ mdast.Token) (Link, bool) {
	if a.Kind != mdast.TokPlaintext {
		return Link{}, false
	}
	n := countBackticks(a.Text(r.source))
	if n < minFenceLength {
		return Link{}, false
	}

	node := t.NewNode(mdast.NodeCodeFence, a.StartOffset)
	end := lineEnd(r.source, a.StartOffset)
	t.Node(node).Fence = &mdast.FenceAttrs{
		FenceLength: n,
		Info:        strings.TrimSpace(string(r.source[a.StartOffset+n : end])),
	}
	return Link{Node: node, Pos: end}, true
}

// Consume takes one line. A closing marker of at least the opening
// length closes the fence at the marker's end; any other line becomes a
// single raw plaintext leaf, empty lines included as fence content with
// no leaf.
func (r fenceRule) Consume(t *mdast.Tree, node mdast.NodeID, start int, source []byte) (int, bool) {
	a, b, c := lookahead(source, start)
	if a.IsNone() {
		return 0, false
	}
	if isClosingFence(source, a, b, c, t.Node(node).Fence.FenceLength) {
		pos := a.EndOffset
		if b.Kind == mdast.TokWhitespace {
			pos = b.EndOffset
		}
		t.Close(node, a.EndOffset)
		return pos, true
	}

	end := lineEnd(source, start)
	if end > start {
		leaf := t.NewNode(mdast.NodePlaintext, start)
		t.Append(node, leaf)
		t.Close(leaf, end)
	}
	return end, true
}

// isClosingFence reports whether the lookahead is a run of backticks at
// least minLen long with nothing but optional whitespace before the
// line break.
func isClosingFence(source []byte, a, b, c mdast.Token, minLen int) bool {
	if a.Kind != mdast.TokPlaintext {
		return false
	}
	text := a.Text(source)
	if countBackticks(text) != len(text) || len(text) < minLen {
		return false
	}
	switch b.Kind {
	case mdast.TokNone, mdast.TokNewline:
		return true
	case mdast.TokWhitespace:
		return c.Kind == mdast.TokNone || c.Kind == mdast.TokNewline
	}
	return false
}

// countBackticks returns the length of the leading backtick run.
func countBackticks(text []byte) int {
	n := 0
	for n < len(text) && text[n] == '`' {
		n++
	}
	return n
}

// lineEnd returns the offset of the next newline at or after start, or
// the end of source.
func lineEnd(source []byte, start int) int {
	if i := bytes.IndexByte(source[start:], '\n'); i >= 0 {
		return start + i
	}
	return len(source)
}
