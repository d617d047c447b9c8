package hac

import (
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
)

// Config controls the merge loop. Start with [DefaultConfig] and override
// the fields you need; the zero value is also valid.
type Config struct {
	// Metric measures point distances for ClusterPoints. It is ignored when
	// a distance matrix is supplied. Default: EuclideanMetric.
	Metric DistanceMetric

	// MergeZeroDistances lets off-diagonal zero distances (duplicate points)
	// be chosen as merge pairs. When false, only positive distances are
	// candidates and zero pairs are merged only once nothing positive is
	// left. Default: false.
	MergeZeroDistances bool

	// Workers sets how many goroutines share the closest-pair scan and
	// the pairwise distance computation. Scans over fewer than 128 active
	// clusters always run on the calling goroutine. 0 means
	// runtime.NumCPU(). Must be >= 0.
	Workers int

	// Logger receives a debug entry per merge and a summary per run.
	// Default: a no-op logger.
	Logger *zap.Logger
}

// Result is the outcome of a merge run.
type Result struct {
	// Clusters holds the k final cluster trees in active-list order.
	Clusters []*Node

	// Labels maps each original point to its 1-based index in Clusters.
	// Only set by Cluster and ClusterPoints, whose leaves are 0..n-1.
	Labels []int

	// Merges lists every merge in the order performed.
	Merges []Merge
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Metric: EuclideanMetric{},
		Logger: zap.NewNop(),
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Metric == nil {
		cfg.Metric = EuclideanMetric{}
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if cfg.Workers < 0 {
		return fmt.Errorf("hac: Workers must be >= 0 (0 means runtime.NumCPU()), got %d", cfg.Workers)
	}
	if m, ok := cfg.Metric.(MinkowskiMetric); ok && m.P < 1 {
		return fmt.Errorf("hac: MinkowskiMetric P must be >= 1, got %f", m.P)
	}
	return nil
}

// Agglomerate merges the clusters in labels until k remain. labels holds
// one node per row of d, usually Leaves(d.N()); nil means exactly that.
// Each iteration joins the closest pair under single linkage, taking the
// first pair in row-major order on ties.
func Agglomerate(d *DistanceMatrix, labels []*Node, k int, cfg Config) (*Result, error) {
	if d == nil || d.n == 0 {
		return nil, fmt.Errorf("hac: %w: no distance matrix", ErrEmptyInput)
	}
	if k < 1 || k > d.n {
		return nil, fmt.Errorf("hac: %w: k must be in [1, %d], got %d", ErrInvalidClusterCount, d.n, k)
	}

	e, err := NewEngine(d, labels, cfg)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	for e.Len() > k {
		e.Step()
	}

	e.log.Info("hac: clustering complete",
		zap.Int("n", d.n),
		zap.Int("k", k),
		zap.Int("merges", len(e.merges)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return &Result{
		Clusters: e.Clusters(),
		Merges:   e.Merges(),
	}, nil
}

// Cluster validates rows as a distance matrix, agglomerates singleton
// leaves 0..n-1 down to k clusters, and assigns every point its cluster.
func Cluster(rows [][]float64, k int, cfg Config) (*Result, error) {
	d, err := NewDistanceMatrix(rows)
	if err != nil {
		return nil, err
	}
	return clusterMatrix(d, k, cfg)
}

// ClusterPoints computes distances between points with cfg.Metric and then
// behaves like Cluster.
func ClusterPoints(points [][]float64, k int, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	d, err := PairwiseDistances(points, cfg.Metric, cfg.Workers)
	if err != nil {
		return nil, err
	}
	return clusterMatrix(d, k, cfg)
}

func clusterMatrix(d *DistanceMatrix, k int, cfg Config) (*Result, error) {
	r, err := Agglomerate(d, nil, k, cfg)
	if err != nil {
		return nil, err
	}
	labels, err := Assign(make([]struct{}, d.n), r.Clusters)
	if err != nil {
		return nil, err
	}
	r.Labels = labels
	return r, nil
}

// Linkage returns the merges in scipy linkage format: each row is
// [leftID, rightID, distance, size].
func (r *Result) Linkage() [][4]float64 {
	rows := make([][4]float64, len(r.Merges))
	for i, m := range r.Merges {
		rows[i] = [4]float64{float64(m.LeftID), float64(m.RightID), m.Distance, float64(m.Size)}
	}
	return rows
}
