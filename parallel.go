package kdtree

import (
	"sync"
)

// QueryParallel runs every query in queries against the tree using up to
// numWorkers goroutines and returns one result slice per query, in the same
// order. Falls back to sequential queries if numWorkers <= 1.
//
// The results are identical to calling [KDTree.Query] with a nil buffer for
// each query in turn.
func (t *KDTree[K, O]) QueryParallel(queries []Query[O], numWorkers int) [][]K {
	results := make([][]K, len(queries))
	n := len(queries)

	if numWorkers <= 1 || n <= 1 {
		for i, q := range queries {
			results[i] = t.Query(q, nil)
		}
		return results
	}

	// Each worker owns a contiguous range of results, so writes never overlap.
	var wg sync.WaitGroup
	perWorker := (n + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		start := w * perWorker
		end := min(start+perWorker, n)
		if start >= n {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				results[i] = t.Query(queries[i], nil)
			}
		}(start, end)
	}

	wg.Wait()
	return results
}
