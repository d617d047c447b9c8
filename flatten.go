package hac

// Flatten returns the ids of every leaf reachable from nodes, in
// left-to-right order of appearance. A list made only of leaves comes back as
// their ids in the same order. Nil nodes are skipped and inputs are never
// modified.
//
// The walk keeps its own stack instead of recursing, so depth is bounded only
// by memory: a chain of n-1 unbalanced merges flattens the same as a
// balanced tree.
func Flatten(nodes ...*Node) []int {
	size := 0
	for _, n := range nodes {
		if n != nil {
			size += max(n.Size, 1)
		}
	}
	out := make([]int, 0, size)

	// Children are pushed right to left so the leftmost pops first.
	stack := make([]*Node, 0, len(nodes))
	for i := len(nodes) - 1; i >= 0; i-- {
		if nodes[i] != nil {
			stack = append(stack, nodes[i])
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.IsLeaf() {
			out = append(out, top.ID)
			continue
		}
		for i := len(top.Children) - 1; i >= 0; i-- {
			if c := top.Children[i]; c != nil {
				stack = append(stack, c)
			}
		}
	}

	return out
}
