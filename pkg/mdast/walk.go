package mdast

// WalkFunc is the function signature for Walk callbacks.
// Return a non-nil error to stop the walk.
type WalkFunc func(t *Tree, id NodeID) error

// Walk performs a pre-order traversal of the tree starting at id.
// The callback walkFunc is called for each node. If walkFunc returns a
// non-nil error, the walk stops immediately and returns that error.
func (t *Tree) Walk(id NodeID, walkFunc WalkFunc) error {
	if err := walkFunc(t, id); err != nil {
		return err
	}

	// Children is re-read by index: the callback may grow the arena.
	for i := 0; i < len(t.Node(id).Children); i++ {
		child := t.Node(id).Children[i]
		if err := t.Walk(child, walkFunc); err != nil {
			return err
		}
	}

	return nil
}

// WalkContainers walks only container-level nodes.
func (t *Tree) WalkContainers(id NodeID, fn WalkFunc) error {
	return t.Walk(id, func(t *Tree, id NodeID) error {
		if t.Node(id).IsContainer() {
			return fn(t, id)
		}
		return nil
	})
}

// FindAll returns the IDs of all nodes under id matching the predicate,
// in pre-order.
func (t *Tree) FindAll(id NodeID, predicate func(t *Tree, id NodeID) bool) []NodeID {
	var result []NodeID

	//nolint:errcheck // Walk only returns nil errors in this usage
	t.Walk(id, func(t *Tree, id NodeID) error {
		if predicate(t, id) {
			result = append(result, id)
		}
		return nil
	})

	return result
}

// FindFirst returns the first node under id matching the predicate, or
// NilNode if none matches.
func (t *Tree) FindFirst(id NodeID, predicate func(t *Tree, id NodeID) bool) NodeID {
	found := NilNode

	//nolint:errcheck // errStopWalk is expected and intentionally ignored
	t.Walk(id, func(t *Tree, id NodeID) error {
		if predicate(t, id) {
			found = id
			return errStopWalk
		}
		return nil
	})

	return found
}

// FindByKind returns the IDs of all nodes of the specified kind under id.
func (t *Tree) FindByKind(id NodeID, kind NodeKind) []NodeID {
	return t.FindAll(id, func(t *Tree, id NodeID) bool {
		return t.Node(id).Kind == kind
	})
}

// errStopWalk is a sentinel error used to stop walking early.
var errStopWalk = &stopWalkError{}

type stopWalkError struct{}

func (e *stopWalkError) Error() string {
	return "stop walk"
}
