package mdast

// ListAttrs holds attributes for list nodes.
type ListAttrs struct {
	// Ordered is true for ordered lists (1., 2., etc.).
	Ordered bool

	// BulletMarker is the bullet character used ('-', '+', '*').
	// Zero for ordered lists.
	BulletMarker byte

	// StartNumber is the starting number for ordered lists.
	StartNumber int

	// Delimiter is the delimiter for ordered lists ('.' or ')').
	// Zero for bullet lists.
	Delimiter byte
}

// FenceAttrs holds attributes for fenced code nodes.
type FenceAttrs struct {
	// FenceLength is the number of backticks in the opening fence.
	FenceLength int

	// Info is the whitespace-trimmed info string following the opening
	// fence, stored as written. Empty when the fence carries no info
	// string.
	Info string
}
