package huffman

import (
	"fmt"
	"strconv"
)

// NodeID addresses a Node within its Tree.
type NodeID int32

// NoNode is the child reference held by leaves.
const NoNode = NodeID(-1)

// Node is one vertex of a Tree.  A leaf carries a Symbol and no children; an
// internal node carries exactly two children and no Symbol.
type Node struct {
	Weight int
	Symbol rune
	Leaf   bool
	Left   NodeID
	Right  NodeID
}

// IsLeaf reports whether n carries a symbol.
func (n Node) IsLeaf() bool {
	return n.Leaf
}

// String returns the string representation of this Node.
func (n Node) String() string {
	if n.Leaf {
		return fmt.Sprintf("%s (%d)", strconv.QuoteRune(n.Symbol), n.Weight)
	}
	return fmt.Sprintf("(%d)", n.Weight)
}

var _ fmt.Stringer = Node{}

// CompareNodes defines the priority order used while building a Tree.  It
// returns a negative number when a must leave the queue before b, a positive
// number when b must leave first, and 0 when they are interchangeable.
//
// Lower weights come first.  At equal weight a leaf precedes an internal node,
// and two leaves are ordered by symbol.  Two internal nodes of equal weight
// compare equal.
//
func CompareNodes(a, b Node) int {
	switch {
	case a.Weight < b.Weight:
		return -1
	case a.Weight > b.Weight:
		return 1
	case a.Leaf && !b.Leaf:
		return -1
	case !a.Leaf && b.Leaf:
		return 1
	case !a.Leaf:
		return 0
	case a.Symbol < b.Symbol:
		return -1
	case a.Symbol > b.Symbol:
		return 1
	}
	return 0
}
