package hac

import (
	"strconv"
	"strings"
)

// Node is one entry of a cluster tree. A node with no children is a leaf
// and its ID is the index of an original point. A node built by the merge
// loop has exactly two children and carries the distance at which they were
// joined. Group builds nodes of any arity for callers that assemble nested
// structures themselves.
type Node struct {
	// ID is the point index for a leaf, the dendrogram id for a merged
	// node (n, n+1, ... for a run started from singleton leaves), or -1
	// for a Group.
	ID int

	// Children is nil for a leaf.
	Children []*Node

	// Distance is the single-linkage distance at which Children were merged.
	// Zero for leaves and groups.
	Distance float64

	// Size is the number of leaves below this node.
	Size int
}

// NewLeaf returns a leaf for original point id.
func NewLeaf(id int) *Node {
	return &Node{ID: id, Size: 1}
}

// Leaves returns n singleton leaves with ids 0..n-1.
func Leaves(n int) []*Node {
	nodes := make([]*Node, n)
	for i := range nodes {
		nodes[i] = NewLeaf(i)
	}
	return nodes
}

// newInternal joins left and right under a new node with the given id.
func newInternal(id int, left, right *Node, distance float64) *Node {
	return &Node{
		ID:       id,
		Children: []*Node{left, right},
		Distance: distance,
		Size:     left.Size + right.Size,
	}
}

// Group nests children under an anonymous node. Nil children are dropped.
func Group(children ...*Node) *Node {
	g := &Node{ID: -1, Children: make([]*Node, 0, len(children))}
	for _, c := range children {
		if c == nil {
			continue
		}
		g.Children = append(g.Children, c)
		g.Size += c.Size
	}
	return g
}

// IsLeaf reports whether n is an original point. An empty Group is not a
// leaf.
func (n *Node) IsLeaf() bool {
	return n.Children == nil
}

// Left returns the first child, or nil for a leaf.
func (n *Node) Left() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// Right returns the last child, or nil for a leaf.
func (n *Node) Right() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[len(n.Children)-1]
}

// Leaves returns the point ids below n in left-to-right order.
func (n *Node) Leaves() []int {
	return Flatten(n)
}

// String renders leaves as their id and inner nodes as a bracketed list,
// e.g. "[[0 1] 2]".
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder) {
	if n == nil {
		sb.WriteString("<nil>")
		return
	}
	if n.IsLeaf() {
		sb.WriteString(strconv.Itoa(n.ID))
		return
	}
	sb.WriteByte('[')
	for i, c := range n.Children {
		if i > 0 {
			sb.WriteByte(' ')
		}
		c.write(sb)
	}
	sb.WriteByte(']')
}
