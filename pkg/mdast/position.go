package mdast

// SourceRange represents a byte range in the source content.
type SourceRange struct {
	// StartOffset is the byte index where the range begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the range ends (exclusive).
	EndOffset int
}

// Len returns the length of the range in bytes.
func (r SourceRange) Len() int {
	return r.EndOffset - r.StartOffset
}

// IsEmpty returns true if the range has zero length.
func (r SourceRange) IsEmpty() bool {
	return r.StartOffset == r.EndOffset
}

// Contains returns true if the given offset is within this range.
func (r SourceRange) Contains(offset int) bool {
	return offset >= r.StartOffset && offset < r.EndOffset
}

// Position represents a 1-based line and column in a document.
type Position struct {
	Line   int
	Column int
}

// IsValid returns true if this position has valid (positive) values.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// SourcePosition represents a range in terms of line/column positions.
type SourcePosition struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// Start returns the start position.
func (sp SourcePosition) Start() Position {
	return Position{Line: sp.StartLine, Column: sp.StartColumn}
}

// End returns the end position.
func (sp SourcePosition) End() Position {
	return Position{Line: sp.EndLine, Column: sp.EndColumn}
}

// IsValid returns true if both start and end positions are valid.
func (sp SourcePosition) IsValid() bool {
	return sp.StartLine > 0 && sp.StartColumn > 0 &&
		sp.EndLine > 0 && sp.EndColumn > 0
}

// IsSingleLine returns true if start and end are on the same line.
func (sp SourcePosition) IsSingleLine() bool {
	return sp.StartLine == sp.EndLine
}

// SourceRange returns the byte range for a node. A still-open node yields
// an empty range at its start offset.
func (t *Tree) SourceRange(id NodeID) SourceRange {
	n := t.Node(id)
	end := n.EndOffset
	if end == openEnd {
		end = n.StartOffset
	}
	return SourceRange{StartOffset: n.StartOffset, EndOffset: end}
}

// ContentRange returns the byte range spanned by a node's children, which
// for a heading is the title text after the marker. A node without
// children yields an empty range at its start offset.
func (t *Tree) ContentRange(id NodeID) SourceRange {
	n := t.Node(id)
	if len(n.Children) == 0 {
		return SourceRange{StartOffset: n.StartOffset, EndOffset: n.StartOffset}
	}
	first := t.Node(n.Children[0])
	return SourceRange{StartOffset: first.StartOffset, EndOffset: t.LastEnd(id)}
}

// PositionFor resolves a byte range to line/column positions.
func (d *Document) PositionFor(r SourceRange) SourcePosition {
	startLine, startCol := d.LineAt(r.StartOffset)
	endLine, endCol := d.LineAt(r.EndOffset)

	return SourcePosition{
		StartLine:   startLine,
		StartColumn: startCol,
		EndLine:     endLine,
		EndColumn:   endCol,
	}
}

// NodeText returns the source text for a node's span.
func (d *Document) NodeText(id NodeID) []byte {
	r := d.Tree.SourceRange(id)
	if r.StartOffset < 0 || r.EndOffset > len(d.Content) {
		return nil
	}
	return d.Content[r.StartOffset:r.EndOffset]
}

// ContentText returns the source text spanned by a node's children.
func (d *Document) ContentText(id NodeID) []byte {
	r := d.Tree.ContentRange(id)
	if r.StartOffset < 0 || r.EndOffset > len(d.Content) {
		return nil
	}
	return d.Content[r.StartOffset:r.EndOffset]
}
