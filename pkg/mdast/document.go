// Package mdast provides the core tree representation for parsed Markdown.
// It defines a lossless, offset-addressed view of a source file:
// - Token: every scanned byte classified into contiguous spans
// - Tree: an arena of nodes referencing byte spans, never text copies
// - Document: the parse artifact bundling content, line index, and tree
package mdast

// Document is an immutable view of a parsed Markdown file.
// It holds the raw content, line metadata, and the block tree.
// Tokens are transient: they are produced one at a time during parsing
// and are not retained here.
type Document struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full file bytes.
	Content []byte

	// Lines contains metadata for each line in the file.
	Lines []LineInfo

	// Tree is the block tree; its root spans the whole content.
	Tree *Tree
}

// NewDocument creates a Document shell from content.
// It builds the line index but no tree (that requires a parser).
func NewDocument(path string, content []byte) *Document {
	return &Document{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
		Tree:    nil,
	}
}
