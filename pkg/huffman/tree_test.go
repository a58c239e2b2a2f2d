package huffman

import (
	"errors"
	"strings"
	"testing"
)

func TestBuildTree_Empty(t *testing.T) {
	tree, err := BuildTree(CountString(""))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if tree != nil {
		t.Errorf("expected nil tree, got %v", tree)
	}
}

func TestBuildTree_BadCount(t *testing.T) {
	_, err := BuildTree(Frequencies{'a': 3, 'b': 0})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	var herr *Error
	if !errors.As(err, &herr) || herr.Symbol != 'b' {
		t.Errorf("expected error naming 'b', got %v", err)
	}
}

func TestBuildTree_Shape(t *testing.T) {
	tree, err := BuildTree(CountString("abbcd"))
	if err != nil {
		t.Fatal(err)
	}

	if got := tree.Len(); got != 7 {
		t.Errorf("Len() = %d, expected 7", got)
	}
	if got := tree.Leaves(); got != 4 {
		t.Errorf("Leaves() = %d, expected 4", got)
	}
	if got := tree.Weight(); got != 5 {
		t.Errorf("Weight() = %d, expected 5", got)
	}
	if got := tree.Depth(); got != 2 {
		t.Errorf("Depth() = %d, expected 2", got)
	}

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\t(5)\n",
		"\t0 (2)\n",
		"\t  0 'a' (1)\n",
		"\t  1 'c' (1)\n",
		"\t1 (3)\n",
		"\t  0 'd' (1)\n",
		"\t  1 'b' (2)\n",
		"}\n",
	}, "")
	var buf strings.Builder
	_, _ = tree.Dump(&buf)
	if actualDump := buf.String(); expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestBuildTree_SingleSymbol(t *testing.T) {
	tree, err := BuildTree(CountString("aaaa"))
	if err != nil {
		t.Fatal(err)
	}
	root := tree.Node(tree.Root())
	if !root.IsLeaf() || root.Symbol != 'a' || root.Weight != 4 {
		t.Errorf("expected leaf 'a' (4) at root, got %v", root)
	}
	if tree.Len() != 1 || tree.Depth() != 0 {
		t.Errorf("expected one node of depth 0, got %d nodes of depth %d", tree.Len(), tree.Depth())
	}
}

func TestBuildTree_Invariants(t *testing.T) {
	tree, err := BuildTree(Frequencies{'a': 5, 'b': 9, 'c': 12, 'd': 13, 'e': 16, 'f': 45})
	if err != nil {
		t.Fatal(err)
	}
	for id := NodeID(0); int(id) < tree.Len(); id++ {
		n := tree.Node(id)
		if n.IsLeaf() {
			if n.Left != NoNode || n.Right != NoNode {
				t.Errorf("leaf %d has children %d, %d", id, n.Left, n.Right)
			}
			continue
		}
		if n.Symbol != 0 {
			t.Errorf("internal node %d carries symbol %q", id, n.Symbol)
		}
		l, r := tree.Node(n.Left), tree.Node(n.Right)
		if l.Weight+r.Weight != n.Weight {
			t.Errorf("node %d weight %d != %d + %d", id, n.Weight, l.Weight, r.Weight)
		}
		if CompareNodes(l, r) > 0 {
			t.Errorf("node %d: left %v sorts after right %v", id, l, r)
		}
	}
}
