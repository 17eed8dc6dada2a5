package mdast_test

import (
	"errors"
	"testing"

	"github.com/yaklabco/mdtree/pkg/mdast"
)

// buildTestTree builds:
//
//	document
//	  heading
//	    plaintext
//	  paragraph
//	    plaintext
//	    whitespace
//	    plaintext
func buildTestTree() *mdast.Tree {
	tree := mdast.NewTree()

	heading := tree.NewNode(mdast.NodeHeading, 0)
	tree.Node(heading).HeadingLevel = 1
	tree.Append(tree.Root(), heading)
	tree.AppendLeaf(heading, mdast.Token{Kind: mdast.TokPlaintext, StartOffset: 2, EndOffset: 7})
	tree.Close(heading, 7)

	para := tree.NewNode(mdast.NodeParagraph, 8)
	tree.Append(tree.Root(), para)
	tree.AppendLeaf(para, mdast.Token{Kind: mdast.TokPlaintext, StartOffset: 8, EndOffset: 12})
	tree.AppendLeaf(para, mdast.Token{Kind: mdast.TokWhitespace, StartOffset: 12, EndOffset: 13})
	tree.AppendLeaf(para, mdast.Token{Kind: mdast.TokPlaintext, StartOffset: 13, EndOffset: 17})
	tree.Close(para, 17)

	tree.Close(tree.Root(), 17)

	return tree
}

func TestTree_Walk(t *testing.T) {
	t.Parallel()

	tree := buildTestTree()

	var visited []mdast.NodeKind
	err := tree.Walk(tree.Root(), func(tr *mdast.Tree, id mdast.NodeID) error {
		visited = append(visited, tr.Node(id).Kind)
		return nil
	})

	if err != nil {
		t.Fatalf("Walk returned error: %v", err)
	}

	expected := []mdast.NodeKind{
		mdast.NodeDocument,
		mdast.NodeHeading,
		mdast.NodePlaintext,
		mdast.NodeParagraph,
		mdast.NodePlaintext,
		mdast.NodeWhitespace,
		mdast.NodePlaintext,
	}

	if len(visited) != len(expected) {
		t.Fatalf("expected %d nodes, got %d", len(expected), len(visited))
	}
	for i, kind := range expected {
		if visited[i] != kind {
			t.Errorf("node %d: expected %s, got %s", i, kind, visited[i])
		}
	}
}

func TestTree_WalkStopsOnError(t *testing.T) {
	t.Parallel()

	tree := buildTestTree()
	sentinel := errors.New("stop here")

	count := 0
	err := tree.Walk(tree.Root(), func(tr *mdast.Tree, id mdast.NodeID) error {
		count++
		if tr.Node(id).Kind == mdast.NodeHeading {
			return sentinel
		}
		return nil
	})

	if !errors.Is(err, sentinel) {
		t.Errorf("expected sentinel error, got %v", err)
	}
	if count != 2 {
		t.Errorf("expected walk to stop after 2 nodes, got %d", count)
	}
}

func TestTree_WalkContainers(t *testing.T) {
	t.Parallel()

	tree := buildTestTree()

	var visited []mdast.NodeKind
	err := tree.WalkContainers(tree.Root(), func(tr *mdast.Tree, id mdast.NodeID) error {
		visited = append(visited, tr.Node(id).Kind)
		return nil
	})

	if err != nil {
		t.Fatalf("WalkContainers returned error: %v", err)
	}

	expected := []mdast.NodeKind{
		mdast.NodeDocument,
		mdast.NodeHeading,
		mdast.NodeParagraph,
	}

	if len(visited) != len(expected) {
		t.Fatalf("expected %d containers, got %d: %v", len(expected), len(visited), visited)
	}
	for i, kind := range expected {
		if visited[i] != kind {
			t.Errorf("container %d: expected %s, got %s", i, kind, visited[i])
		}
	}
}

func TestTree_FindAll(t *testing.T) {
	t.Parallel()

	tree := buildTestTree()

	leaves := tree.FindAll(tree.Root(), func(tr *mdast.Tree, id mdast.NodeID) bool {
		return tr.Node(id).IsLeaf()
	})

	if len(leaves) != 4 {
		t.Errorf("expected 4 leaves, got %d", len(leaves))
	}
}

func TestTree_FindFirst(t *testing.T) {
	t.Parallel()

	tree := buildTestTree()

	para := tree.FindFirst(tree.Root(), func(tr *mdast.Tree, id mdast.NodeID) bool {
		return tr.Node(id).Kind == mdast.NodeParagraph
	})

	if para == mdast.NilNode {
		t.Fatal("expected to find a paragraph")
	}
	if tree.Node(para).StartOffset != 8 {
		t.Errorf("expected paragraph at offset 8, got %d", tree.Node(para).StartOffset)
	}

	missing := tree.FindFirst(tree.Root(), func(tr *mdast.Tree, id mdast.NodeID) bool {
		return tr.Node(id).Kind == mdast.NodeCodeFence
	})

	if missing != mdast.NilNode {
		t.Errorf("expected nil node for absent kind, got %d", missing)
	}
}

func TestTree_FindByKind(t *testing.T) {
	t.Parallel()

	tree := buildTestTree()

	headings := tree.FindByKind(tree.Root(), mdast.NodeHeading)
	if len(headings) != 1 {
		t.Fatalf("expected 1 heading, got %d", len(headings))
	}
	if tree.Node(headings[0]).HeadingLevel != 1 {
		t.Errorf("expected level 1, got %d", tree.Node(headings[0]).HeadingLevel)
	}

	plains := tree.FindByKind(tree.Root(), mdast.NodePlaintext)
	if len(plains) != 3 {
		t.Errorf("expected 3 plaintext leaves, got %d", len(plains))
	}
}
