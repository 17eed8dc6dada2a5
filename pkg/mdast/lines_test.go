package mdast_test

import (
	"testing"

	"github.com/yaklabco/mdtree/pkg/mdast"
)

func TestBuildLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected []mdast.LineInfo
	}{
		{
			name:     "empty content",
			content:  "",
			expected: []mdast.LineInfo{},
		},
		{
			name:    "single line no newline",
			content: "# Title",
			expected: []mdast.LineInfo{
				{StartOffset: 0, NewlineStart: 7, EndOffset: 7},
			},
		},
		{
			name:    "single line with LF",
			content: "hello\n",
			expected: []mdast.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 6},
				{StartOffset: 6, NewlineStart: 6, EndOffset: 6},
			},
		},
		{
			name:    "single line with CRLF",
			content: "hello\r\n",
			expected: []mdast.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 7},
				{StartOffset: 7, NewlineStart: 7, EndOffset: 7},
			},
		},
		{
			name:    "multiple lines LF",
			content: "line1\nline2\nline3",
			expected: []mdast.LineInfo{
				{StartOffset: 0, NewlineStart: 5, EndOffset: 6},
				{StartOffset: 6, NewlineStart: 11, EndOffset: 12},
				{StartOffset: 12, NewlineStart: 17, EndOffset: 17},
			},
		},
		{
			name:    "blank line between blocks",
			content: "# Title\n\ntext",
			expected: []mdast.LineInfo{
				{StartOffset: 0, NewlineStart: 7, EndOffset: 8},
				{StartOffset: 8, NewlineStart: 8, EndOffset: 9},
				{StartOffset: 9, NewlineStart: 13, EndOffset: 13},
			},
		},
		{
			name:    "single character",
			content: "x",
			expected: []mdast.LineInfo{
				{StartOffset: 0, NewlineStart: 1, EndOffset: 1},
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := mdast.BuildLines([]byte(testCase.content))

			if len(got) != len(testCase.expected) {
				t.Fatalf("expected %d lines, got %d: %+v", len(testCase.expected), len(got), got)
			}
			for i, line := range testCase.expected {
				if got[i] != line {
					t.Errorf("line %d: expected %+v, got %+v", i, line, got[i])
				}
			}
		})
	}
}

func TestDocument_LineAt(t *testing.T) {
	t.Parallel()

	doc := mdast.NewDocument("test.md", []byte("# Title\ntext here\n"))

	tests := []struct {
		name         string
		offset       int
		expectedLine int
		expectedCol  int
	}{
		{name: "start of first line", offset: 0, expectedLine: 1, expectedCol: 1},
		{name: "middle of first line", offset: 2, expectedLine: 1, expectedCol: 3},
		{name: "newline of first line", offset: 7, expectedLine: 1, expectedCol: 8},
		{name: "start of second line", offset: 8, expectedLine: 2, expectedCol: 1},
		{name: "middle of second line", offset: 13, expectedLine: 2, expectedCol: 6},
		{name: "negative offset", offset: -1, expectedLine: 0, expectedCol: 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			line, col := doc.LineAt(testCase.offset)
			if line != testCase.expectedLine || col != testCase.expectedCol {
				t.Errorf("offset %d: expected %d:%d, got %d:%d",
					testCase.offset, testCase.expectedLine, testCase.expectedCol, line, col)
			}
		})
	}
}

func TestDocument_LineAtEndOfContent(t *testing.T) {
	t.Parallel()

	doc := mdast.NewDocument("test.md", []byte("ab\ncd"))

	// Offset at exactly len(content) resolves to just past the last line.
	line, col := doc.LineAt(5)
	if line != 2 || col != 3 {
		t.Errorf("expected 2:3 at end of content, got %d:%d", line, col)
	}
}

func TestDocument_Offset(t *testing.T) {
	t.Parallel()

	doc := mdast.NewDocument("test.md", []byte("# Title\ntext\n"))

	tests := []struct {
		name           string
		line, col      int
		expectedOffset int
		expectedOK     bool
	}{
		{name: "first line first column", line: 1, col: 1, expectedOffset: 0, expectedOK: true},
		{name: "second line first column", line: 2, col: 1, expectedOffset: 8, expectedOK: true},
		{name: "second line mid", line: 2, col: 3, expectedOffset: 10, expectedOK: true},
		{name: "line zero", line: 0, col: 1, expectedOK: false},
		{name: "column zero", line: 1, col: 0, expectedOK: false},
		{name: "line past end", line: 10, col: 1, expectedOK: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			offset, ok := doc.Offset(testCase.line, testCase.col)
			if ok != testCase.expectedOK {
				t.Fatalf("expected ok=%v, got %v", testCase.expectedOK, ok)
			}
			if ok && offset != testCase.expectedOffset {
				t.Errorf("expected offset %d, got %d", testCase.expectedOffset, offset)
			}
		})
	}
}

func TestDocument_LineContent(t *testing.T) {
	t.Parallel()

	doc := mdast.NewDocument("test.md", []byte("# Title\ntext\n"))

	if got := string(doc.LineContent(1)); got != "# Title" {
		t.Errorf("expected %q, got %q", "# Title", got)
	}
	if got := string(doc.LineContent(2)); got != "text" {
		t.Errorf("expected %q, got %q", "text", got)
	}
	if got := doc.LineContent(99); got != nil {
		t.Errorf("expected nil for out-of-range line, got %q", got)
	}
	if doc.LineCount() != 3 {
		t.Errorf("expected 3 lines, got %d", doc.LineCount())
	}
}

func TestTree_SourceRangeAndContentRange(t *testing.T) {
	t.Parallel()

	content := []byte("## Title\n")
	doc := mdast.NewDocument("test.md", content)

	tree := mdast.NewTree()
	heading := tree.NewNode(mdast.NodeHeading, 0)
	tree.Append(tree.Root(), heading)
	tree.AppendLeaf(heading, mdast.Token{Kind: mdast.TokPlaintext, StartOffset: 3, EndOffset: 8})
	tree.Close(heading, 8)
	tree.Close(tree.Root(), len(content))
	doc.Tree = tree

	r := tree.SourceRange(heading)
	if r.StartOffset != 0 || r.EndOffset != 8 {
		t.Errorf("expected range [0,8), got [%d,%d)", r.StartOffset, r.EndOffset)
	}

	cr := tree.ContentRange(heading)
	if cr.StartOffset != 3 || cr.EndOffset != 8 {
		t.Errorf("expected content range [3,8), got [%d,%d)", cr.StartOffset, cr.EndOffset)
	}

	if got := string(doc.NodeText(heading)); got != "## Title" {
		t.Errorf("expected %q, got %q", "## Title", got)
	}
	if got := string(doc.ContentText(heading)); got != "Title" {
		t.Errorf("expected %q, got %q", "Title", got)
	}

	pos := doc.PositionFor(r)
	if pos.StartLine != 1 || pos.StartColumn != 1 || pos.EndLine != 1 || pos.EndColumn != 9 {
		t.Errorf("unexpected position %+v", pos)
	}
}

func TestTree_SourceRangeOpenNode(t *testing.T) {
	t.Parallel()

	tree := mdast.NewTree()
	para := tree.NewNode(mdast.NodeParagraph, 4)

	r := tree.SourceRange(para)
	if r.StartOffset != 4 || r.EndOffset != 4 {
		t.Errorf("expected empty range at 4 for open node, got [%d,%d)", r.StartOffset, r.EndOffset)
	}
}
