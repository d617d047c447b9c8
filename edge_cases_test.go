package hac

import (
	"math"
	"slices"
	"testing"
)

func TestEdgeCase_TwoPoints(t *testing.T) {
	r, err := Cluster([][]float64{{0, 3}, {3, 0}}, 1, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s := r.Clusters[0].String(); s != "[0 1]" {
		t.Errorf("tree = %s, want [0 1]", s)
	}
	if r.Clusters[0].Distance != 3 {
		t.Errorf("Distance = %v, want 3", r.Clusters[0].Distance)
	}
}

func TestEdgeCase_DuplicatePoints(t *testing.T) {
	// Points 0 and 2 coincide. Default: the zero pair waits until nothing
	// positive is left. With MergeZeroDistances it goes first.
	points := [][]float64{{0, 0}, {5, 0}, {0, 0}}

	r, err := ClusterPoints(points, 1, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Merges[0].Distance != 5 {
		t.Errorf("default first merge distance = %v, want 5", r.Merges[0].Distance)
	}

	cfg := DefaultConfig()
	cfg.MergeZeroDistances = true
	r, err = ClusterPoints(points, 2, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(r.Labels, []int{1, 2, 1}) {
		t.Errorf("Labels = %v, want [1 2 1]", r.Labels)
	}
}

func TestEdgeCase_DisconnectedComponents(t *testing.T) {
	inf := math.Inf(1)
	rows := [][]float64{
		{0, 1, inf, inf},
		{1, 0, inf, inf},
		{inf, inf, 0, 2},
		{inf, inf, 2, 0},
	}
	r, err := Cluster(rows, 1, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	last := r.Merges[len(r.Merges)-1]
	if !math.IsInf(last.Distance, 1) {
		t.Errorf("final merge distance = %v, want +Inf", last.Distance)
	}

	r, err = Cluster(rows, 2, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(r.Labels, []int{1, 1, 2, 2}) {
		t.Errorf("Labels = %v, want [1 1 2 2]", r.Labels)
	}
}

func TestEdgeCase_UnbalancedChainFlattens(t *testing.T) {
	// Points on a line with growing gaps produce a single ever-deeper
	// branch: ((((0 1) 2) 3) ...).
	n := 40
	points := make([][]float64, n)
	pos := 0.0
	for i := range points {
		points[i] = []float64{pos}
		pos += float64(i + 1)
	}
	r, err := ClusterPoints(points, 1, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := r.Clusters[0].Leaves()
	for i, id := range got {
		if id != i {
			t.Fatalf("Leaves[%d] = %d, want %d", i, id, i)
		}
	}
	if len(got) != n {
		t.Errorf("len(Leaves) = %d, want %d", len(got), n)
	}
}
