package hac

import "fmt"

// CutTree replays the first n-k merges of a run that started from
// singleton leaves 0..n-1 and returns each point's 1-based cluster.
// Clusters are numbered in order of their lowest point, so the partition
// matches Assign over Agglomerate(d, nil, k, cfg) while the numbering may
// differ.
//
// A single full run (k=1) therefore yields the clustering at every k.
func CutTree(merges []Merge, n, k int) ([]int, error) {
	if n == 0 {
		return nil, fmt.Errorf("hac: %w: no points", ErrEmptyInput)
	}
	if k < 1 || k > n {
		return nil, fmt.Errorf("hac: %w: k must be in [1, %d], got %d", ErrInvalidClusterCount, n, k)
	}
	steps := n - k
	if len(merges) < steps {
		return nil, fmt.Errorf("hac: %w: cutting at k=%d needs %d merges, have %d", ErrInvalidClusterCount, k, steps, len(merges))
	}

	uf := newUnionFind(n)
	limit := 2*n - 1
	for _, m := range merges[:steps] {
		if m.ID < n || m.ID >= limit || uf.size[m.ID] != 0 {
			return nil, fmt.Errorf("hac: %w: merge %d creates id %d, want an unused id in [%d, %d)", ErrLeafOutOfRange, m.Step, m.ID, n, limit)
		}
		if m.LeftID < 0 || m.LeftID >= m.ID || m.RightID < 0 || m.RightID >= m.ID {
			return nil, fmt.Errorf("hac: %w: merge %d joins ids %d and %d into %d", ErrLeafOutOfRange, m.Step, m.LeftID, m.RightID, m.ID)
		}
		uf.link(m.LeftID, m.RightID, m.ID)
	}

	labels := make([]int, n)
	ids := make(map[int]int, k)
	for i := range labels {
		root := uf.find(i)
		id, ok := ids[root]
		if !ok {
			id = len(ids) + 1
			ids[root] = id
		}
		labels[i] = id
	}
	return labels, nil
}
