package hamming

import (
	"sync"

	"gopkg.in/guregu/null.v3"
)

// Match is a target string found within the search threshold of a query.
type Match struct {
	Target   string
	Distance int
}

// Searcher runs bulk threshold searches. Queries are spread over Workers
// goroutines; results never depend on the worker count.
type Searcher struct {
	Workers int

	// IgnoreExactMatch drops targets at distance zero from results.
	IgnoreExactMatch bool
}

func NewSearcher(workers int) *Searcher {
	if workers < 1 {
		workers = 1
	}

	return &Searcher{Workers: workers}
}

// NearbyWithinThreshold returns, for each query, every target within
// threshold of it, in target order. The result has one entry per query, in
// query order.
func (s *Searcher) NearbyWithinThreshold(queries, targets []string, threshold int, caseInsensitive bool) [][]Match {
	out := make([][]Match, len(queries))

	s.each(len(queries), func(i int) {
		var matches []Match
		for _, target := range targets {
			distance, ok := within(queries[i], target, threshold, caseInsensitive)
			if !ok || (s.IgnoreExactMatch && distance == 0) {
				continue
			}
			matches = append(matches, Match{Target: target, Distance: distance})
		}
		out[i] = matches
	})

	return out
}

// Distances computes the distance from every string in a to every string in
// b. Cells whose distance exceeds threshold, or whose strings differ in
// length, are null.
func (s *Searcher) Distances(a, b []string, threshold int) [][]null.Int {
	out := make([][]null.Int, len(a))

	s.each(len(a), func(i int) {
		row := make([]null.Int, len(b))
		for j := range b {
			if distance, ok := Within(a[i], b[j], threshold); ok {
				row[j] = null.IntFrom(int64(distance))
			}
		}
		out[i] = row
	})

	return out
}

// each calls fn(i) for every i in [0, n), running at most s.Workers calls at
// once, and returns after all of them have finished.
func (s *Searcher) each(n int, fn func(i int)) {
	concurrency := s.Workers
	if concurrency < 1 {
		concurrency = 1
	}

	if concurrency == 1 || n < 2 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	// Hand out contiguous blocks of indices so that very large query sets do
	// not cost one goroutine per query.
	block := n / (4 * concurrency)
	if block < 1 {
		block = 1
	}

	sem := make(chan struct{}, concurrency)
	var pool sync.WaitGroup

	for start := 0; start < n; start += block {
		end := start + block
		if end > n {
			end = n
		}

		sem <- struct{}{}
		pool.Add(1)
		go func(start, end int) {
			defer pool.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
			<-sem
		}(start, end)
	}

	pool.Wait()
}
