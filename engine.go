package hac

import (
	"fmt"
	"slices"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// Merge records one iteration of the merge loop.
type Merge struct {
	// Step is the 0-based iteration number.
	Step int

	// Left and Right are the active-list positions that were joined,
	// Left < Right. The merged node takes position Left; position Right is
	// removed and every later position shifts down by one.
	Left, Right int

	// LeftID and RightID are the ids of the joined nodes, ID is the id
	// given to the new node.
	LeftID, RightID, ID int

	// Distance is the single-linkage distance between the joined clusters.
	Distance float64

	// Size is the number of leaves in the new node.
	Size int
}

// Engine runs single-linkage agglomeration one merge at a time.
//
// The distance buffer is an index arena: it is allocated once at n×n and
// never compacted. active lists the arena slots still in play, in position
// order, and nodes holds the cluster at each position. Both shrink together
// on every merge. An Engine is not safe for concurrent use.
type Engine struct {
	dist   []float64
	stride int
	active []int
	nodes  []*Node
	merges []Merge
	nextID int
	cfg    Config
	log    *zap.Logger
}

// NewEngine prepares a merge run over d. labels is the initial active
// cluster list, one node per matrix row; nil means singleton leaves
// 0..n-1. The engine copies d and the label slice; the nodes themselves are
// shared and never modified.
func NewEngine(d *DistanceMatrix, labels []*Node, cfg Config) (*Engine, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	if d == nil || d.n == 0 {
		return nil, fmt.Errorf("hac: %w: no distance matrix", ErrEmptyInput)
	}

	n := d.n
	if labels == nil {
		labels = Leaves(n)
	}
	if len(labels) != n {
		return nil, fmt.Errorf("hac: %w: %d labels for a %d×%d matrix", ErrInvalidMatrixShape, len(labels), n, n)
	}

	nextID := n
	for i, l := range labels {
		if l == nil {
			return nil, fmt.Errorf("hac: %w: label %d is nil", ErrInvalidMatrixShape, i)
		}
		nextID = max(nextID, maxID(l)+1)
	}

	dist := make([]float64, len(d.data))
	copy(dist, d.data)

	active := make([]int, n)
	for i := range active {
		active[i] = i
	}

	return &Engine{
		dist:   dist,
		stride: n,
		active: active,
		nodes:  slices.Clone(labels),
		merges: make([]Merge, 0, n-1),
		nextID: nextID,
		cfg:    cfg,
		log:    cfg.Logger,
	}, nil
}

// maxID returns the largest id anywhere under root.
func maxID(root *Node) int {
	best := root.ID
	stack := []*Node{root}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		best = max(best, top.ID)
		for _, c := range top.Children {
			if c != nil {
				stack = append(stack, c)
			}
		}
	}
	return best
}

// Len returns the number of active clusters.
func (e *Engine) Len() int { return len(e.nodes) }

// Clusters returns a copy of the active cluster list.
func (e *Engine) Clusters() []*Node { return slices.Clone(e.nodes) }

// Merges returns a copy of the merges performed so far.
func (e *Engine) Merges() []Merge { return slices.Clone(e.merges) }

// Matrix returns the current distances between the active clusters, in
// position order.
func (e *Engine) Matrix() *mat.SymDense {
	m := len(e.active)
	out := mat.NewSymDense(m, nil)
	for p := 0; p < m; p++ {
		row := e.dist[e.active[p]*e.stride:]
		for q := p + 1; q < m; q++ {
			out.SetSym(p, q, row[e.active[q]])
		}
	}
	return out
}

// Step merges the two closest active clusters. It returns false, doing
// nothing, when fewer than two clusters remain.
func (e *Engine) Step() (Merge, bool) {
	if len(e.active) < 2 {
		return Merge{}, false
	}

	c := scanParallel(e.dist, e.stride, e.active, e.cfg.MergeZeroDistances, e.cfg.Workers)
	if !c.ok {
		// Every remaining off-diagonal entry is zero.
		c = candidate{p: 0, q: 1, dist: e.dist[e.active[0]*e.stride+e.active[1]], ok: true}
		e.log.Warn("hac: no positive distance left, merging zero-distance pair",
			zap.Int("step", len(e.merges)),
			zap.Int("remaining", len(e.active)),
		)
	}
	p, q := c.p, c.q

	// Single linkage: the merged cluster is as close to x as the closer of
	// its two halves. Slot sp takes the merged row; slot sq is retired.
	sp, sq := e.active[p], e.active[q]
	rowP := e.dist[sp*e.stride : (sp+1)*e.stride]
	rowQ := e.dist[sq*e.stride : (sq+1)*e.stride]
	for x, sx := range e.active {
		if x == p || x == q {
			continue
		}
		v := min(rowP[sx], rowQ[sx])
		rowP[sx] = v
		e.dist[sx*e.stride+sp] = v
	}

	left, right := e.nodes[p], e.nodes[q]
	merged := newInternal(e.nextID, left, right, c.dist)
	e.nextID++

	e.nodes[p] = merged
	e.nodes = slices.Delete(e.nodes, q, q+1)
	e.active = slices.Delete(e.active, q, q+1)

	rec := Merge{
		Step:     len(e.merges),
		Left:     p,
		Right:    q,
		LeftID:   left.ID,
		RightID:  right.ID,
		ID:       merged.ID,
		Distance: c.dist,
		Size:     merged.Size,
	}
	e.merges = append(e.merges, rec)

	e.log.Debug("merged clusters",
		zap.Int("step", rec.Step),
		zap.Int("left", p),
		zap.Int("right", q),
		zap.Int("id", rec.ID),
		zap.Float64("distance", rec.Distance),
		zap.Int("size", rec.Size),
		zap.Int("remaining", len(e.nodes)),
	)

	return rec, true
}
