package hac

import "sync"

// parallelScanMinRows is the active cluster count below which the minimum
// scan stays on the calling goroutine.
const parallelScanMinRows = 128

// computePairwiseParallel computes the full n×n distance matrix using
// multiple goroutines. If numWorkers <= 1 it falls back to computePairwise.
// The result is bitwise identical to computePairwise.
func computePairwiseParallel(points [][]float64, metric DistanceMetric, numWorkers int) []float64 {
	n := len(points)
	if numWorkers <= 1 || n <= 1 {
		return computePairwise(points, metric)
	}

	result := make([]float64, n*n)

	// Each worker owns a contiguous range of source rows and writes only
	// (i,j) and (j,i) for i in that range, so writes never overlap.
	var wg sync.WaitGroup
	rowsPerWorker := (n + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		startRow := w * rowsPerWorker
		endRow := min(startRow+rowsPerWorker, n)
		if startRow >= n {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				for j := i + 1; j < n; j++ {
					d := metric.Distance(points[i], points[j])
					result[i*n+j] = d
					result[j*n+i] = d
				}
			}
		}(startRow, endRow)
	}

	wg.Wait()
	return result
}

// candidate is a merge pair at active positions p < q.
type candidate struct {
	p, q int
	dist float64
	ok   bool
}

// better reports whether c should replace best. Strict < keeps the earlier
// pair on ties.
func (c candidate) better(best candidate) bool {
	return c.ok && (!best.ok || c.dist < best.dist)
}

// scanRows returns the first minimum, in row-major order, over the strict
// upper triangle of active positions for rows [start, end). data is the
// flat arena with the given stride; active maps positions to arena slots.
// Zero entries are candidates only when zeros is set.
func scanRows(data []float64, stride int, active []int, start, end int, zeros bool) candidate {
	var best candidate
	m := len(active)
	for p := start; p < end; p++ {
		row := data[active[p]*stride:]
		for q := p + 1; q < m; q++ {
			v := row[active[q]]
			if v == 0 && !zeros {
				continue
			}
			if !best.ok || v < best.dist {
				best = candidate{p: p, q: q, dist: v, ok: true}
			}
		}
	}
	return best
}

// scanParallel splits the rows of the active upper triangle into contiguous
// blocks, scans each on its own goroutine, and reduces the block results in
// row order. The answer equals scanRows over every row.
func scanParallel(data []float64, stride int, active []int, zeros bool, numWorkers int) candidate {
	m := len(active)
	if numWorkers <= 1 || m < parallelScanMinRows {
		return scanRows(data, stride, active, 0, m, zeros)
	}

	rowsPerWorker := (m + numWorkers - 1) / numWorkers
	results := make([]candidate, numWorkers)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		startRow := w * rowsPerWorker
		endRow := min(startRow+rowsPerWorker, m)
		if startRow >= m {
			break
		}

		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			results[w] = scanRows(data, stride, active, start, end, zeros)
		}(w, startRow, endRow)
	}
	wg.Wait()

	var best candidate
	for _, c := range results {
		if c.better(best) {
			best = c
		}
	}
	return best
}
