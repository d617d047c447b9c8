package hac

import "fmt"

// Assign maps every original point to the 1-based index of the cluster in
// clusters that contains it. Only the length of labels is used; leaf i of
// any cluster refers to labels[i].
//
// clusters is expected to partition 0..len(labels)-1, as the output of
// Agglomerate does. Points no cluster covers stay 0, and a point covered
// twice keeps the later cluster.
func Assign[T any](labels []T, clusters []*Node) ([]int, error) {
	n, m := len(labels), len(clusters)
	if n == 0 {
		return nil, fmt.Errorf("hac: %w: no labels", ErrEmptyInput)
	}
	if m > n {
		return nil, fmt.Errorf("hac: %w: %d clusters for %d labels", ErrInvalidClusterCount, m, n)
	}

	out := make([]int, n)
	for c, root := range clusters {
		for _, leaf := range Flatten(root) {
			if leaf < 0 || leaf >= n {
				return nil, fmt.Errorf("hac: %w: cluster %d holds leaf %d, want [0, %d)", ErrLeafOutOfRange, c, leaf, n)
			}
			out[leaf] = c + 1
		}
	}
	return out, nil
}
