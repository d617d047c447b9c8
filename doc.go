// Package hac implements single-linkage hierarchical agglomerative
// clustering over a dense distance matrix.
//
// Every point starts as its own cluster. The two closest clusters are
// merged, the merged cluster's distance to every other cluster becomes the
// smaller of its two halves' distances, and the loop repeats until k
// clusters remain. Each iteration scans the whole active matrix, so a full
// run costs O(n³); it is meant for small to moderate n.
//
// Basic usage:
//
//	result, err := hac.Cluster(distances, 3, hac.DefaultConfig())
//	// result.Clusters[c] is the merge tree of cluster c
//	// result.Labels[i] is the 1-based cluster of point i
//
// For raw points, ClusterPoints builds the matrix with Config.Metric first.
// Agglomerate takes any initial cluster list and leaves the mapping to
// Assign:
//
//	d, err := hac.NewDistanceMatrix(distances)
//	r, err := hac.Agglomerate(d, hac.Leaves(d.N()), 2, hac.DefaultConfig())
//	labels, err := hac.Assign(names, r.Clusters)
//
// # Ties and zero distances
//
// When several pairs share the minimum distance, the first one in row-major
// order of the active matrix wins, so repeated runs merge identically.
// Off-diagonal zeros are skipped unless Config.MergeZeroDistances is set.
//
// # Stepping
//
// Engine exposes the loop one merge at a time, together with the shrinking
// matrix, for callers that want to inspect intermediate states.
package hac
