package hac

// unionFind is a disjoint-set forest over dendrogram ids: points 0..n-1 and
// merged clusters n..2n-2. A merge makes its new id the parent of both
// joined roots, so the root of any point is the newest cluster holding it.
type unionFind struct {
	parent []int
	size   []int
}

// newUnionFind creates a forest of n points with room for n-1 merges.
func newUnionFind(n int) *unionFind {
	total := max(2*n-1, 1)
	parent := make([]int, total)
	size := make([]int, total)
	for i := range parent {
		parent[i] = -1 // -1 means "is a root"
	}
	for i := 0; i < n; i++ {
		size[i] = 1
	}
	return &unionFind{parent: parent, size: size}
}

// find returns the root of the set containing x, with path compression.
func (uf *unionFind) find(x int) int {
	root := x
	for uf.parent[root] != -1 {
		root = uf.parent[root]
	}
	for uf.parent[x] != -1 {
		x, uf.parent[x] = uf.parent[x], root
	}
	return root
}

// link places the sets containing a and b under the fresh root id and
// returns the size of the new set.
func (uf *unionFind) link(a, b, id int) int {
	ra, rb := uf.find(a), uf.find(b)
	uf.size[id] = uf.size[ra] + uf.size[rb]
	uf.parent[ra] = id
	uf.parent[rb] = id
	return uf.size[id]
}
