package hac

import (
	"errors"
	"slices"
	"testing"
)

func TestAssign_TwoClusters(t *testing.T) {
	clusters := []*Node{
		newInternal(4, NewLeaf(0), NewLeaf(1), 1),
		newInternal(5, NewLeaf(2), NewLeaf(3), 2),
	}
	got, err := Assign([]int{0, 1, 2, 3}, clusters)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{1, 1, 2, 2}
	if !slices.Equal(got, want) {
		t.Errorf("Assign = %v, want %v", got, want)
	}
}

func TestAssign_StringLabelsAndInterleaving(t *testing.T) {
	clusters := []*Node{
		Group(leaves(3, 0)...),
		NewLeaf(2),
		Group(NewLeaf(1), Group(NewLeaf(4))),
	}
	got, err := Assign([]string{"a", "b", "c", "d", "e"}, clusters)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{1, 3, 2, 1, 3}
	if !slices.Equal(got, want) {
		t.Errorf("Assign = %v, want %v", got, want)
	}
}

func TestAssign_Singletons(t *testing.T) {
	got, err := Assign(make([]int, 3), Leaves(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("Assign = %v, want [1 2 3]", got)
	}
}

func TestAssign_Incomplete(t *testing.T) {
	// Uncovered points stay 0; a repeated point keeps the last cluster.
	got, err := Assign(make([]int, 4), []*Node{Group(leaves(0, 1)...), NewLeaf(1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{1, 2, 0, 0}
	if !slices.Equal(got, want) {
		t.Errorf("Assign = %v, want %v", got, want)
	}
}

func TestAssign_Errors(t *testing.T) {
	tests := []struct {
		name     string
		labels   []int
		clusters []*Node
		want     error
	}{
		{"more clusters than labels", []int{0, 1}, Leaves(3), ErrInvalidClusterCount},
		{"no labels", nil, nil, ErrEmptyInput},
		{"leaf past end", []int{0, 1}, []*Node{Group(leaves(0, 2)...)}, ErrLeafOutOfRange},
		{"negative leaf", []int{0, 1}, []*Node{NewLeaf(-1)}, ErrLeafOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Assign(tt.labels, tt.clusters)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}
