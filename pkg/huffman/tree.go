package huffman

import (
	"bytes"
	"container/heap"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Tree is a Huffman tree stored as an arena of nodes.  The zero value is not
// usable; obtain a Tree from BuildTree.  A Tree is never modified after
// BuildTree returns it.
type Tree struct {
	nodes []Node
	root  NodeID
}

// BuildTree builds the Huffman tree for the given frequencies by repeatedly
// merging the two lowest-priority nodes (see CompareNodes) until one remains.
// The first node extracted becomes the left child of the merged node.
//
// An empty mapping, or a count below 1, fails with ErrInvalidInput.  A mapping
// with one symbol yields a Tree whose root is that symbol's leaf.
//
func BuildTree(freq Frequencies) (*Tree, error) {
	if len(freq) == 0 {
		return nil, &Error{Op: "build", Pos: -1, Err: ErrInvalidInput}
	}

	symbols := freq.Symbols()
	t := &Tree{nodes: make([]Node, 0, 2*len(symbols)-1)}
	q := nodeQueue{tree: t, list: make([]NodeID, 0, len(symbols))}
	for _, sym := range symbols {
		weight := freq[sym]
		if weight < 1 {
			return nil, &Error{Op: "build", Pos: -1, Symbol: sym, HasSymbol: true, Err: ErrInvalidInput}
		}
		q.list = append(q.list, t.add(Node{
			Weight: weight,
			Symbol: sym,
			Leaf:   true,
			Left:   NoNode,
			Right:  NoNode,
		}))
	}
	heap.Init(&q)

	for q.Len() > 1 {
		a := heap.Pop(&q).(NodeID)
		b := heap.Pop(&q).(NodeID)
		sum := t.nodes[a].Weight + t.nodes[b].Weight
		assert.Assertf(sum >= t.nodes[a].Weight, "weight overflow merging %d and %d", a, b)
		heap.Push(&q, t.add(Node{Weight: sum, Left: a, Right: b}))
	}

	t.root = heap.Pop(&q).(NodeID)
	assert.Assertf(len(t.nodes) == 2*len(symbols)-1, "tree has %d nodes for %d symbols", len(t.nodes), len(symbols))
	return t, nil
}

func (t *Tree) add(n Node) NodeID {
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

// Root returns the ID of the root node.
func (t *Tree) Root() NodeID {
	return t.root
}

// Node returns a copy of the node with the given ID.
func (t *Tree) Node(id NodeID) Node {
	return t.nodes[id]
}

// Len returns the total number of nodes, leaves and internal.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Leaves returns the number of leaves, which equals the number of distinct
// symbols the Tree was built from.
func (t *Tree) Leaves() int {
	return (len(t.nodes) + 1) / 2
}

// Weight returns the weight of the root, i.e. the length of the counted input.
func (t *Tree) Weight() int {
	return t.nodes[t.root].Weight
}

// Depth returns the number of edges on the longest root-to-leaf path.
func (t *Tree) Depth() int {
	var maxDepth int
	t.walk(func(_ NodeID, _ string, depth int) {
		if depth > maxDepth {
			maxDepth = depth
		}
	})
	return maxDepth
}

// walk visits every node in pre-order, left before right, passing the path
// from the root.  It keeps its own stack so skewed trees do not grow the
// goroutine stack.
func (t *Tree) walk(visit func(id NodeID, path string, depth int)) {
	type stackItem struct {
		id   NodeID
		path string
	}

	stack := []stackItem{{t.root, ""}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		visit(top.id, top.path, len(top.path))

		n := t.nodes[top.id]
		if n.Leaf {
			continue
		}
		stack = append(stack,
			stackItem{n.Right, top.path + "1"},
			stackItem{n.Left, top.path + "0"})
	}
}

// Dump writes a programmer-readable drawing of the Tree to the given writer,
// one node per line, indented by depth and prefixed by the edge bit.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	t.walk(func(id NodeID, path string, depth int) {
		buf.WriteByte('\t')
		if depth > 0 {
			buf.WriteString(strings.Repeat("  ", depth-1))
			buf.WriteByte(path[depth-1])
			buf.WriteByte(' ')
		}
		buf.WriteString(t.nodes[id].String())
		buf.WriteByte('\n')
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type nodeQueue {{{

// nodeQueue is a min-heap of node IDs ordered by CompareNodes.  Nodes that
// compare equal leave in creation order, so the tree shape never depends on
// map iteration or heap internals.
type nodeQueue struct {
	tree *Tree
	list []NodeID
}

func (q *nodeQueue) Len() int {
	return len(q.list)
}

func (q *nodeQueue) Swap(i, j int) {
	q.list[i], q.list[j] = q.list[j], q.list[i]
}

func (q *nodeQueue) Less(i, j int) bool {
	a, b := q.list[i], q.list[j]
	if c := CompareNodes(q.tree.nodes[a], q.tree.nodes[b]); c != 0 {
		return c < 0
	}
	return a < b
}

func (q *nodeQueue) Push(x interface{}) {
	q.list = append(q.list, x.(NodeID))
}

func (q *nodeQueue) Pop() interface{} {
	last := len(q.list) - 1
	x := q.list[last]
	q.list = q.list[:last]
	return x
}

var _ heap.Interface = (*nodeQueue)(nil)

// }}}
