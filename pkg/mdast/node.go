package mdast

// NodeKind classifies the type of a tree node.
type NodeKind uint16

// Node kinds for container-level and inline-level Markdown elements.
const (
	NodeDocument NodeKind = iota

	// Container nodes.
	NodeHeading
	NodeParagraph
	NodeBlockquote
	NodeList
	NodeListItem
	NodeCodeFence

	// Inline leaf nodes.
	NodePlaintext
	NodeWhitespace
)

// String returns a human-readable name for the node kind.
func (k NodeKind) String() string {
	switch k {
	case NodeDocument:
		return "document"
	case NodeHeading:
		return "heading"
	case NodeParagraph:
		return "paragraph"
	case NodeBlockquote:
		return "blockquote"
	case NodeList:
		return "list"
	case NodeListItem:
		return "list-item"
	case NodeCodeFence:
		return "code-fence"
	case NodePlaintext:
		return "plaintext"
	case NodeWhitespace:
		return "whitespace"
	default:
		return "unknown"
	}
}

// NodeID addresses a node inside a Tree. IDs are stable for the lifetime
// of the tree; the root document node is always ID 0.
type NodeID int32

// NilNode is the absent node reference (no parent, not attached).
const NilNode NodeID = -1

// openEnd marks a node whose end offset has not been set yet.
const openEnd = -1

// Node is a single element in the tree: either a structural container
// (document, heading, paragraph, ...) or an inline leaf (plaintext,
// whitespace). Nodes carry byte spans into the source, never text copies.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// StartOffset is the byte index where this node begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where this node ends (exclusive).
	// It is -1 while the block is still open and is set exactly once,
	// at closure.
	EndOffset int

	// Parent is the owning node, or NilNode for the root and for nodes
	// not yet attached.
	Parent NodeID

	// Children are the direct children in source order.
	Children []NodeID

	// HeadingLevel is the heading level (1-6) for NodeHeading.
	HeadingLevel int

	// List holds list-specific attributes for NodeList.
	List *ListAttrs

	// Fence holds fence-specific attributes for NodeCodeFence.
	Fence *FenceAttrs
}

// IsContainer returns true if this is a container-level node.
func (n *Node) IsContainer() bool {
	switch n.Kind {
	case NodeDocument, NodeHeading, NodeParagraph, NodeBlockquote,
		NodeList, NodeListItem, NodeCodeFence:
		return true
	default:
		return false
	}
}

// IsLeaf returns true if this is an inline leaf node.
func (n *Node) IsLeaf() bool {
	switch n.Kind {
	case NodePlaintext, NodeWhitespace:
		return true
	default:
		return false
	}
}

// Tree is an arena of nodes addressed by NodeID. Construction appends,
// attachment links parent and child indices, and closing a node sets its
// end offset; nodes are never removed.
type Tree struct {
	nodes []Node
}

// NewTree creates a tree holding a single open document root at offset 0.
func NewTree() *Tree {
	t := &Tree{nodes: make([]Node, 0, 16)}
	t.NewNode(NodeDocument, 0)
	return t
}

// Root returns the document root's ID.
func (t *Tree) Root() NodeID {
	return 0
}

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns the node for the given ID. The pointer stays valid only
// until the next NewNode or AppendLeaf call; callers that build the tree
// must hold IDs, not pointers. Panics on an invalid ID.
func (t *Tree) Node(id NodeID) *Node {
	return &t.nodes[id]
}

// NewNode allocates an unattached, open node of the given kind starting
// at the given offset and returns its ID.
func (t *Tree) NewNode(kind NodeKind, start int) NodeID {
	t.nodes = append(t.nodes, Node{
		Kind:        kind,
		StartOffset: start,
		EndOffset:   openEnd,
		Parent:      NilNode,
	})
	return NodeID(len(t.nodes) - 1)
}

// Append attaches child to parent. A node is owned by exactly one parent;
// attaching an already-attached node panics.
func (t *Tree) Append(parent, child NodeID) {
	c := t.Node(child)
	if c.Parent != NilNode {
		panic("mdast: node already attached")
	}
	c.Parent = parent
	p := t.Node(parent)
	p.Children = append(p.Children, child)
}

// Close sets the node's end offset. The end offset is set exactly once;
// closing a closed node panics.
func (t *Tree) Close(id NodeID, end int) {
	n := t.Node(id)
	if n.EndOffset != openEnd {
		panic("mdast: node already closed")
	}
	n.EndOffset = end
}

// IsOpen returns true while the node's end offset has not been set.
func (t *Tree) IsOpen(id NodeID) bool {
	return t.Node(id).EndOffset == openEnd
}

// LastEnd returns the end offset of the node's last closed descendant
// along the last-child chain, or the node's own start when it has no
// children. It is the natural closing offset for a container whose final
// content has already been consumed.
func (t *Tree) LastEnd(id NodeID) int {
	n := t.Node(id)
	if len(n.Children) == 0 {
		return n.StartOffset
	}
	last := n.Children[len(n.Children)-1]
	if c := t.Node(last); c.EndOffset != openEnd {
		return c.EndOffset
	}
	return t.LastEnd(last)
}

// LeafKind maps a token kind to the node kind of its inline leaf form.
// The mapping is total: marker tokens that did not open a block degrade
// to plaintext, and both whitespace and newline tokens become whitespace.
func LeafKind(k TokenKind) NodeKind {
	switch k {
	case TokWhitespace, TokNewline:
		return NodeWhitespace
	default:
		return NodePlaintext
	}
}

// AppendLeaf converts a token to a closed inline leaf over the same span
// and attaches it to parent, returning the new node's ID.
func (t *Tree) AppendLeaf(parent NodeID, tok Token) NodeID {
	id := t.NewNode(LeafKind(tok.Kind), tok.StartOffset)
	t.Close(id, tok.EndOffset)
	t.Append(parent, id)
	return id
}
